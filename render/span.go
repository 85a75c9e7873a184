package render

import "github.com/lixenwraith/windrift/boundary"

// Span is the covered run of one raster row: cells with x in [X0, X1) lie
// inside the boundary region.
type Span struct {
	Y  int
	X0 int
	X1 int
}

// ClipSpans rasterizes the boundary into one span per row of a w by h grid.
// The region extends from the far edge to the smoothed organic edge; rows the
// region does not reach carry an empty span so the slice always has h entries
// and rows index directly.
func ClipSpans(p boundary.Path, w, h int) []Span {
	spans := make([]Span, h)
	for y := 0; y < h; y++ {
		// Sample at the row center so a half-covered first row reads as in.
		edge := p.EdgeXAt(float64(y) + 0.5)

		x1 := int(edge)
		if x1 > w {
			x1 = w
		}

		s := Span{Y: y}
		if x1 > 0 {
			s.X1 = x1
		}
		spans[y] = s
	}
	return spans
}

// Covered reports whether any span admits at least one cell.
func Covered(spans []Span) bool {
	for _, s := range spans {
		if s.X1 > s.X0 {
			return true
		}
	}
	return false
}
