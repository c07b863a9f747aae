package inmemdb

import (
	"sort"

	"github.com/edulab/markboard/core/student"
)

type studentRepository struct {
	db *studentTable
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.student}
}

// query returns roster copies ordered by id ascending for deterministic
// iteration.
func (repo *studentRepository) query() []student.Student {
	roster := make([]student.Student, 0, len(repo.db.table))
	for _, st := range repo.db.table {
		roster = append(roster, st.Clone())
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].ID < roster[j].ID })
	return roster
}

func (repo *studentRepository) CheckRollNoUniqueness(rollNo string) error {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, st := range repo.db.table {
		if st.RollNo == rollNo { // case-sensitive exact match
			return student.ErrRollNoExists
		}
	}
	return nil
}

func (repo *studentRepository) CreateStudent(st student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// ids stay unique and stable: next id = max(existing) + 1, 1 when empty
	maxID := 0
	for id := range repo.db.table {
		if id > maxID {
			maxID = id
		}
	}
	st.ID = maxID + 1
	st.Marks = st.Marks.Clone()
	repo.db.table[st.ID] = &st
	return st.Clone(), nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByID(id int) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if st, ok := repo.db.table[id]; ok {
		return st.Clone(), nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) UpdateStudentMark(id int, subj student.Subject, mark int) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	st, ok := repo.db.table[id]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}
	st.Marks[subj] = mark
	return st.Clone(), nil
}

func (repo *studentRepository) DeleteStudentsByID(ids ...int) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
