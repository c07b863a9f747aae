// Package rendersvc renders chart primitives onto an SVG drawing surface.
// The output carries semantic classes only; styling belongs to the consumer.
package rendersvc

import (
	"fmt"
	"strings"

	"github.com/edulab/markboard/core/chart"
)

var classFills = map[string]string{
	"grid":   "none",
	"axis":   "none",
	"data":   "rgba(79, 70, 229, 0.35)",
	"bar-a":  "#4f46e5",
	"bar-b":  "#f59e0b",
	"winner": "#16a34a",
}

// Render serializes a primitive list into a standalone SVG document of the
// given pixel dimensions.
func Render(prims []chart.Primitive, width, height int) string {
	var svg strings.Builder
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(&svg, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height)

	for _, prim := range prims {
		switch p := prim.(type) {
		case chart.Line:
			fmt.Fprintf(&svg,
				`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" class="%s" stroke="#9ca3af"/>`+"\n",
				p.From.X, p.From.Y, p.To.X, p.To.Y, p.Class)
		case chart.Polygon:
			points := make([]string, 0, len(p.Points))
			for _, pt := range p.Points {
				points = append(points, fmt.Sprintf("%.1f,%.1f", pt.X, pt.Y))
			}
			fmt.Fprintf(&svg,
				`<polygon points="%s" class="%s" fill="%s" stroke="#4f46e5"/>`+"\n",
				strings.Join(points, " "), p.Class, fill(p.Class, p.Filled))
		case chart.Rect:
			fmt.Fprintf(&svg,
				`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" class="%s" fill="%s"/>`+"\n",
				p.X, p.Y, p.Width, p.Height, p.Class, fill(p.Class, true))
		case chart.Circle:
			fmt.Fprintf(&svg,
				`<circle cx="%.1f" cy="%.1f" r="%.1f" class="%s" fill="%s" stroke="#d1d5db"/>`+"\n",
				p.Center.X, p.Center.Y, p.Radius, p.Class, fill(p.Class, p.Filled))
		case chart.Text:
			fmt.Fprintf(&svg,
				`<text x="%.1f" y="%.1f" text-anchor="%s" class="%s">%s</text>`+"\n",
				p.At.X, p.At.Y, p.Anchor, p.Class, escape(p.Content))
		}
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

// RenderEmpty produces the placeholder surface shown when no student is
// focused or selected.
func RenderEmpty(width, height int) string {
	prims := []chart.Primitive{
		chart.Text{
			At:      chart.Point{X: float64(width) / 2, Y: float64(height) / 2},
			Content: "Select a student to view analysis",
			Anchor:  "middle",
			Class:   "placeholder",
		},
	}
	return Render(prims, width, height)
}

func fill(class string, filled bool) string {
	if !filled {
		return "none"
	}
	if f, ok := classFills[class]; ok {
		return f
	}
	return "currentColor"
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
