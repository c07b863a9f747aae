// Package chart turns student data into drawable geometry. Projections are
// pure functions of (data, dimensions): every redraw recomputes the full
// primitive list, there is no persistent chart state to mutate.
package chart

// Point is a position on the drawing surface, in pixels, origin top-left.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Primitive is one drawable element. Concrete types are plain structs; the
// renderer switches on them.
type Primitive interface {
	primitive()
}

type Line struct {
	From  Point  `json:"from"`
	To    Point  `json:"to"`
	Class string `json:"class"`
}

// Polygon is a closed path through Points in order.
type Polygon struct {
	Points []Point `json:"points"`
	Filled bool    `json:"filled"`
	Class  string  `json:"class"`
}

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Class  string  `json:"class"`
}

type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
	Filled bool    `json:"filled"`
	Class  string  `json:"class"`
}

// Text is a label anchored at At ("start", "middle" or "end").
type Text struct {
	At      Point  `json:"at"`
	Content string `json:"content"`
	Anchor  string `json:"anchor"`
	Class   string `json:"class"`
}

func (Line) primitive()    {}
func (Polygon) primitive() {}
func (Rect) primitive()    {}
func (Circle) primitive()  {}
func (Text) primitive()    {}

// Config carries the drawing surface dimensions and margins.
type Config struct {
	Width  int
	Height int
	Margin float64
}

// gridBands is the number of concentric rings / y-gridlines; each band
// represents 20 value points.
const gridBands = 5
