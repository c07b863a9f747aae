package chart

import (
	"math"

	"github.com/edulab/markboard/core/student"
)

const labelOffset = 14

// Radar projects one student's marks onto a radial chart. Axes sit at equal
// angular steps starting at 12 o'clock (-90°) and proceed clockwise in
// subject order; each data radius is outer × mark/100. The returned list
// holds the concentric gridline rings, the radial axes with labels just
// outside the outer ring, and the closed data polygon.
func Radar(st student.Student, cfg Config) []Primitive {
	cx := float64(cfg.Width) / 2
	cy := float64(cfg.Height) / 2
	outer := math.Min(cx, cy) - cfg.Margin
	n := len(student.Subjects)

	prims := make([]Primitive, 0, gridBands+2*n+1)

	// gridline rings, one per band of 20
	for ring := 1; ring <= gridBands; ring++ {
		prims = append(prims, Circle{
			Center: Point{X: cx, Y: cy},
			Radius: outer * float64(ring) / gridBands,
			Class:  "grid",
		})
	}

	// radial axes and subject labels
	for i, subj := range student.Subjects {
		angle := axisAngle(i, n)
		prims = append(prims,
			Line{
				From:  Point{X: cx, Y: cy},
				To:    polar(cx, cy, outer, angle),
				Class: "axis",
			},
			Text{
				At:      polar(cx, cy, outer+labelOffset, angle),
				Content: subj.Label(),
				Anchor:  "middle",
				Class:   "label",
			},
		)
	}

	// data polygon, no smoothing
	points := make([]Point, 0, n)
	for i, subj := range student.Subjects {
		r := outer * float64(st.Marks[subj]) / 100
		points = append(points, polar(cx, cy, r, axisAngle(i, n)))
	}
	prims = append(prims, Polygon{Points: points, Filled: true, Class: "data"})

	return prims
}

// axisAngle places axis i of n at -90° plus i equal clockwise steps.
// With the y axis pointing down, increasing angles run clockwise on screen.
func axisAngle(i, n int) float64 {
	return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
}

func polar(cx, cy, r, angle float64) Point {
	return Point{
		X: cx + r*math.Cos(angle),
		Y: cy + r*math.Sin(angle),
	}
}
