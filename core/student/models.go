package student

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/edulab/markboard/core"
)

// Subject identifies one of the fixed graded subjects.
type Subject string

const (
	SubjectMath     Subject = "math"
	SubjectScience  Subject = "science"
	SubjectEnglish  Subject = "english"
	SubjectHistory  Subject = "history"
	SubjectComputer Subject = "computer"
)

// Subjects is the fixed subject set. Its order defines the iteration order
// everywhere subjects are enumerated: marks entry, radar axes, comparison
// bars and CSV columns.
var Subjects = []Subject{
	SubjectMath,
	SubjectScience,
	SubjectEnglish,
	SubjectHistory,
	SubjectComputer,
}

func (s Subject) IsValid() bool {
	switch s {
	case SubjectMath, SubjectScience, SubjectEnglish, SubjectHistory, SubjectComputer:
		return true
	default:
		return false
	}
}

// Label returns the display label for the subject.
func (s Subject) Label() string {
	switch s {
	case SubjectMath:
		return "Math"
	case SubjectScience:
		return "Science"
	case SubjectEnglish:
		return "English"
	case SubjectHistory:
		return "History"
	case SubjectComputer:
		return "Computer"
	default:
		return string(s)
	}
}

// ParseSubject resolves a raw path/query value into a Subject.
func ParseSubject(raw string) (Subject, error) {
	s := Subject(strings.ToLower(core.CleanString(raw)))
	if !s.IsValid() {
		return "", ErrUnknownSubject
	}
	return s, nil
}

// Marks maps each subject to an integer mark in [0, 100].
type Marks map[Subject]int

// Clone returns an independent copy of the marks map.
func (m Marks) Clone() Marks {
	c := make(Marks, len(m))
	for subj, mark := range m {
		c[subj] = mark
	}
	return c
}

// Grade is the 5-band letter grade derived from an average.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeFail  Grade = "Fail"
)

// Performance is the coarser 3-band scale used for single marks and for the
// insight status. It is intentionally NOT unified with Grade: the insight
// panel does not distinguish above 75 while the grade column does.
type Performance string

const (
	PerformanceExcellent Performance = "excellent"
	PerformanceAverage   Performance = "average"
	PerformanceNeedsWork Performance = "needs_improvement"
)

// Student is a roster record. IDs are unique and stable for the record's
// lifetime; RollNo is unique among active students (case-sensitive).
type Student struct {
	ID     int    `json:"id"`
	RollNo string `json:"roll_no"`
	Name   string `json:"name"`
	Marks  Marks  `json:"marks"`
}

// Clone returns a deep copy of the student.
func (st Student) Clone() Student {
	st.Marks = st.Marks.Clone()
	return st
}

// RankedStudent is the ephemeral derived view of a Student: never stored,
// recomputed from the full roster whenever ranks are needed.
type RankedStudent struct {
	Student
	Average float64 `json:"average"`
	Rank    int     `json:"rank"`
	Grade   Grade   `json:"grade"`
}

// Insight summarizes one student's standing for the insight panel.
type Insight struct {
	Status     Performance `json:"status"`
	Strengths  []string    `json:"strengths"`  // subject labels with mark >= 75
	Weaknesses []string    `json:"weaknesses"` // subject labels with mark < 50
	Average    float64     `json:"average"`
}

// NewStudent contains information needed to add a roster record.
type NewStudent struct {
	Name   string `json:"name" validate:"required"`
	RollNo string `json:"roll_no" validate:"required"`
	Marks  Marks  `json:"marks" validate:"required,allsubjects,dive,gte=0,lte=100"`
}

func (ns *NewStudent) Validate(validate *validator.Validate, svc *Service) error {
	ns.Name = core.CleanString(ns.Name)
	ns.RollNo = core.CleanString(ns.RollNo)

	if err := validate.Struct(ns); err != nil {
		return err
	}
	return svc.CheckRollNoUniqueness(ns.RollNo)
}
