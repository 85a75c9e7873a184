// Package render rasterizes the frame boundary into per-row clip spans and
// composites the two layers the transition mediates between. It owns no
// terminal or display handle; callers hand the composed cell grid to whatever
// presents it.
package render

// RGB is a true-color value.
type RGB struct {
	R, G, B uint8
}

// Cell is one composed character cell.
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Lerp interpolates between two colors with t clamped to [0,1].
func Lerp(a, b RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// Scale multiplies a color by intensity clamped to [0,1].
func Scale(c RGB, intensity float64) RGB {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	return RGB{
		R: uint8(float64(c.R) * intensity),
		G: uint8(float64(c.G) * intensity),
		B: uint8(float64(c.B) * intensity),
	}
}
