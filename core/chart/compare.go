package chart

import (
	"strconv"

	"github.com/edulab/markboard/core/student"
)

// SubjectWinner records which student strictly won a subject. Tied subjects
// get no entry.
type SubjectWinner struct {
	Subject string `json:"subject"`
	Winner  string `json:"winner"`
}

// ComparisonView is the grouped-bar projection of two students plus its
// winner legend.
type ComparisonView struct {
	Primitives []Primitive     `json:"primitives"`
	Legend     []SubjectWinner `json:"legend"`
}

// Comparison projects two students side by side: one equal-width slot per
// subject, two bars per slot, bar height = plot height × mark/100. A strictly
// higher mark wins the subject and earns a marker above its bar plus a legend
// entry; equal marks are a tie with neither.
func Comparison(a, b student.Student, cfg Config) ComparisonView {
	plotW := float64(cfg.Width) - 2*cfg.Margin
	plotH := float64(cfg.Height) - 2*cfg.Margin
	baseline := float64(cfg.Height) - cfg.Margin
	n := len(student.Subjects)
	slotW := plotW / float64(n)
	barW := slotW * 0.3

	view := ComparisonView{
		Primitives: make([]Primitive, 0, 2*gridBands+4*n),
		Legend:     make([]SubjectWinner, 0, n),
	}

	// y gridlines, one per band of 20
	for i := 1; i <= gridBands; i++ {
		y := baseline - plotH*float64(i)/gridBands
		view.Primitives = append(view.Primitives,
			Line{
				From:  Point{X: cfg.Margin, Y: y},
				To:    Point{X: float64(cfg.Width) - cfg.Margin, Y: y},
				Class: "grid",
			},
			Text{
				At:      Point{X: cfg.Margin - 6, Y: y},
				Content: strconv.Itoa(i * 20),
				Anchor:  "end",
				Class:   "tick",
			},
		)
	}

	for i, subj := range student.Subjects {
		slotX := cfg.Margin + slotW*float64(i)

		bars := []struct {
			st    student.Student
			x     float64
			class string
		}{
			{a, slotX + slotW*0.15, "bar-a"},
			{b, slotX + slotW*0.55, "bar-b"},
		}
		for _, bar := range bars {
			h := plotH * float64(bar.st.Marks[subj]) / 100
			view.Primitives = append(view.Primitives, Rect{
				X:      bar.x,
				Y:      baseline - h,
				Width:  barW,
				Height: h,
				Class:  bar.class,
			})
		}

		// strict winner gets a marker above its bar and a legend entry
		markA, markB := a.Marks[subj], b.Marks[subj]
		if markA != markB {
			winner := bars[0]
			if markB > markA {
				winner = bars[1]
			}
			h := plotH * float64(winner.st.Marks[subj]) / 100
			view.Primitives = append(view.Primitives, Circle{
				Center: Point{X: winner.x + barW/2, Y: baseline - h - 8},
				Radius: 4,
				Filled: true,
				Class:  "winner",
			})
			view.Legend = append(view.Legend, SubjectWinner{
				Subject: subj.Label(),
				Winner:  winner.st.Name,
			})
		}

		view.Primitives = append(view.Primitives, Text{
			At:      Point{X: slotX + slotW/2, Y: baseline + 16},
			Content: subj.Label(),
			Anchor:  "middle",
			Class:   "label",
		})
	}

	return view
}
