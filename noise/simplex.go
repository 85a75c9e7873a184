package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Simplex adapts the OpenSimplex generator to the Source interface. It trades
// the fixed permutation-table layout of Field for a smoother isotropic look;
// the fractal normalization contract is identical.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex builds a normalized OpenSimplex source from seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.NewNormalized(seed)}
}

// Sample returns a single-octave value in [0,1].
func (s *Simplex) Sample(x, y float64) float64 {
	return s.n.Eval2(x, y)
}

// Fractal returns a normalized fBm value in [0,1].
func (s *Simplex) Fractal(x, y float64, octaves int) float64 {
	return fractalSum(s.Sample, x, y, octaves)
}
