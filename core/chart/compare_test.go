package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/markboard/core/student"
)

func namedStudent(name string, marks student.Marks) student.Student {
	return student.Student{Name: name, Marks: marks}
}

func TestComparison_strictWinnerPerSubject(t *testing.T) {
	a := namedStudent("Alice", student.Marks{
		student.SubjectMath:     80,
		student.SubjectScience:  90,
		student.SubjectEnglish:  70,
		student.SubjectHistory:  60,
		student.SubjectComputer: 50,
	})
	b := namedStudent("Bob", student.Marks{
		student.SubjectMath:     80, // tie: no winner
		student.SubjectScience:  85,
		student.SubjectEnglish:  75,
		student.SubjectHistory:  60, // tie: no winner
		student.SubjectComputer: 95,
	})

	view := Comparison(a, b, testChartConfig())

	require.Len(t, view.Legend, 3, "tied subjects get no legend entry")
	assert.Equal(t, []SubjectWinner{
		{Subject: "Science", Winner: "Alice"},
		{Subject: "English", Winner: "Bob"},
		{Subject: "Computer", Winner: "Bob"},
	}, view.Legend)

	var markers int
	for _, p := range view.Primitives {
		if c, ok := p.(Circle); ok && c.Class == "winner" {
			markers++
		}
	}
	assert.Equal(t, 3, markers, "one marker per non-tied subject")
}

func TestComparison_allTiedHasEmptyLegend(t *testing.T) {
	marks := student.Marks{}
	for _, subj := range student.Subjects {
		marks[subj] = 80
	}
	view := Comparison(namedStudent("a", marks), namedStudent("b", marks), testChartConfig())

	assert.Empty(t, view.Legend)
}

func TestComparison_barGeometry(t *testing.T) {
	cfg := testChartConfig()
	plotH := float64(cfg.Height) - 2*cfg.Margin
	baseline := float64(cfg.Height) - cfg.Margin

	a := uniformStudent(100)
	b := uniformStudent(0)
	b.Name = "zero"

	view := Comparison(a, b, cfg)

	var fullBars, emptyBars int
	for _, p := range view.Primitives {
		r, ok := p.(Rect)
		if !ok {
			continue
		}
		switch r.Class {
		case "bar-a":
			assert.InDelta(t, plotH, r.Height, 1e-9, "100 fills the plot height")
			assert.InDelta(t, baseline-plotH, r.Y, 1e-9)
			fullBars++
		case "bar-b":
			assert.InDelta(t, 0.0, r.Height, 1e-9)
			assert.InDelta(t, baseline, r.Y, 1e-9)
			emptyBars++
		}
	}
	assert.Equal(t, len(student.Subjects), fullBars)
	assert.Equal(t, len(student.Subjects), emptyBars)
}

func TestComparison_scaffolding(t *testing.T) {
	view := Comparison(uniformStudent(50), uniformStudent(60), testChartConfig())

	var gridlines, subjectLabels int
	for _, p := range view.Primitives {
		switch prim := p.(type) {
		case Line:
			if prim.Class == "grid" {
				gridlines++
			}
		case Text:
			if prim.Class == "label" {
				subjectLabels++
			}
		}
	}
	assert.Equal(t, 5, gridlines, "one gridline per band of 20")
	assert.Equal(t, len(student.Subjects), subjectLabels)
}
