package rendersvc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edulab/markboard/core/chart"
)

func TestRender(t *testing.T) {
	prims := []chart.Primitive{
		chart.Line{From: chart.Point{X: 0, Y: 0}, To: chart.Point{X: 10, Y: 10}, Class: "grid"},
		chart.Polygon{Points: []chart.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, Filled: true, Class: "data"},
		chart.Rect{X: 5, Y: 5, Width: 20, Height: 40, Class: "bar-a"},
		chart.Circle{Center: chart.Point{X: 50, Y: 50}, Radius: 30, Class: "grid"},
		chart.Text{At: chart.Point{X: 9, Y: 9}, Content: "Math", Anchor: "middle", Class: "label"},
	}

	svg := Render(prims, 400, 300)

	assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, svg, `<svg width="400" height="300"`)
	assert.Contains(t, svg, `<line x1="0.0" y1="0.0" x2="10.0" y2="10.0"`)
	assert.Contains(t, svg, `<polygon points="1.0,2.0 3.0,4.0 5.0,6.0"`)
	assert.Contains(t, svg, `<rect x="5.0" y="5.0" width="20.0" height="40.0"`)
	assert.Contains(t, svg, `<circle cx="50.0" cy="50.0" r="30.0"`)
	assert.Contains(t, svg, `>Math</text>`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(svg), "</svg>"))
}

func TestRender_escapesText(t *testing.T) {
	svg := Render([]chart.Primitive{
		chart.Text{Content: "a < b & c", Anchor: "start", Class: "label"},
	}, 100, 100)

	assert.Contains(t, svg, "a &lt; b &amp; c")
}

func TestRender_unfilledShapesUseNone(t *testing.T) {
	svg := Render([]chart.Primitive{
		chart.Circle{Center: chart.Point{X: 1, Y: 1}, Radius: 2, Filled: false, Class: "grid"},
	}, 100, 100)

	assert.Contains(t, svg, `fill="none"`)
}

func TestRenderEmpty(t *testing.T) {
	svg := RenderEmpty(400, 300)

	assert.Contains(t, svg, "Select a student to view analysis")
	assert.Contains(t, svg, `x="200.0" y="150.0"`)
}
