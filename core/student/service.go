package student

import (
	"errors"
	"strconv"

	"github.com/edulab/markboard/core"
)

var (
	// errors
	ErrNotFound       = errors.New("student not found")
	ErrRollNoExists   = errors.New("a student with this roll number already exists")
	ErrUnknownSubject = errors.New("unknown subject")
	ErrInvalidMark    = errors.New("mark must be an integer between 0 and 100")
)

type (
	Repository interface {
		// CheckRollNoUniqueness returns ErrRollNoExists on a case-sensitive
		// exact match against any active student's roll number.
		CheckRollNoUniqueness(rollNo string) error
		// CreateStudent persists the record, assigning the next id
		// (max of existing ids + 1, or 1 on an empty roster).
		CreateStudent(st Student) (Student, error)
		// QueryAllStudents returns the roster ordered by id ascending.
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id int) (Student, error)
		UpdateStudentMark(id int, subj Subject, mark int) (Student, error)
		// DeleteStudentsByID removes records; absent ids are no-ops.
		DeleteStudentsByID(ids ...int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CheckRollNoUniqueness(rollNo string) error {
	if err := svc.repo.CheckRollNoUniqueness(rollNo); err != nil {
		if errors.Is(err, ErrRollNoExists) {
			return core.NewValidationError(err, core.FieldError{Field: "roll_no", Error: err.Error()})
		}
		return err
	}
	return nil
}

// Create adds a roster record. The roster is left unchanged when the roll
// number is already taken.
func (svc *Service) Create(ns NewStudent) (Student, error) {
	if err := svc.CheckRollNoUniqueness(ns.RollNo); err != nil {
		return Student{}, err
	}
	st := Student{
		RollNo: ns.RollNo,
		Name:   ns.Name,
		Marks:  ns.Marks.Clone(),
	}
	return svc.repo.CreateStudent(st)
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id int) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

// Ranked recomputes the annotated roster from scratch. Derived data is never
// cached across mutations.
func (svc *Service) Ranked() ([]RankedStudent, error) {
	roster, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	return Rank(roster), nil
}

// Filter returns the view list for the given criteria.
func (svc *Service) Filter(qf QueryFilter) ([]RankedStudent, error) {
	qf.Clean()
	ranked, err := svc.Ranked()
	if err != nil {
		return nil, err
	}
	return ApplyFilter(ranked, qf), nil
}

func (svc *Service) InsightFor(id int) (Insight, error) {
	st, err := svc.repo.GetStudentByID(id)
	if err != nil {
		return Insight{}, err
	}
	return ComputeInsight(st), nil
}

// EditMark parses and validates the raw input, then overwrites the single
// subject mark. A non-integer or out-of-range value is rejected with a
// ValidationError and the roster is not touched; the caller reverts the
// displayed value to the last committed one.
func (svc *Service) EditMark(id int, subj Subject, rawValue string) (Student, error) {
	if !subj.IsValid() {
		return Student{}, ErrUnknownSubject
	}
	mark, err := strconv.Atoi(core.CleanString(rawValue))
	if err != nil || mark < 0 || mark > 100 {
		return Student{}, core.NewValidationError(
			ErrInvalidMark,
			core.FieldError{Field: "value", Error: ErrInvalidMark.Error()},
		)
	}
	return svc.repo.UpdateStudentMark(id, subj, mark)
}

func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteStudentsByID(ids...)
}
