package noise

import (
	"fmt"
	"math"
	"math/rand"
)

// Source is a deterministic coherent-noise generator. Implementations are
// referentially transparent: the same coordinates always produce the same value.
type Source interface {
	// Sample returns a single-octave value in [0,1].
	Sample(x, y float64) float64

	// Fractal returns a multi-octave (fBm) value in [0,1] for any octave count >= 1.
	Fractal(x, y float64, octaves int) float64
}

// Backend selects the generator implementation behind a Source.
type Backend string

const (
	BackendGradient Backend = "gradient"
	BackendSimplex  Backend = "simplex"
)

// New constructs a Source for the given backend and seed.
func New(backend Backend, seed int64) (Source, error) {
	switch backend {
	case BackendGradient, "":
		return NewField(seed), nil
	case BackendSimplex:
		return NewSimplex(seed), nil
	default:
		return nil, fmt.Errorf("unknown noise backend %q", backend)
	}
}

// Field is classic 2D gradient noise backed by a seeded permutation table.
// The 256-entry table is duplicated to 512 so corner hashing never needs a
// wraparound branch. Immutable after construction.
type Field struct {
	perm [512]uint8
}

// NewField builds a noise field from seed.
func NewField(seed int64) *Field {
	f := &Field{}
	rng := rand.New(rand.NewSource(seed))

	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })

	copy(f.perm[:256], p[:])
	copy(f.perm[256:], p[:])
	return f
}

// fade is the quintic smoothing curve 6t^5 - 15t^4 + 10t^3. Linear
// interpolation leaves visible grid artifacts at cell boundaries.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// grad projects the in-cell offset onto one of eight gradient directions
// chosen by the corner hash.
func grad(hash uint8, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return x - y
	case 2:
		return -x + y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}

// Sample returns gradient noise at (x, y), remapped to [0,1].
func (f *Field) Sample(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)

	px := int(fx) & 255
	py := int(fy) & 255

	xf := x - fx
	yf := y - fy

	u := fade(xf)
	v := fade(yf)

	aa := f.perm[int(f.perm[px])+py]
	ab := f.perm[int(f.perm[px])+py+1]
	ba := f.perm[int(f.perm[px+1])+py]
	bb := f.perm[int(f.perm[px+1])+py+1]

	x0 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x1 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)
	val := lerp(x0, x1, v)

	// 2D gradient noise with these directions is bounded by sqrt(2)/2,
	// so scale up before remapping to [0,1].
	val = val * math.Sqrt2

	val = val*0.5 + 0.5
	if val < 0 {
		return 0
	}
	if val > 1 {
		return 1
	}
	return val
}

// Fractal sums octaves at doubled frequency and halved amplitude, divided by
// the total amplitude used so the result stays in [0,1] for any octave count.
func (f *Field) Fractal(x, y float64, octaves int) float64 {
	return fractalSum(f.Sample, x, y, octaves)
}

func fractalSum(sample func(x, y float64) float64, x, y float64, octaves int) float64 {
	if octaves < 1 {
		octaves = 1
	}

	sum := 0.0
	norm := 0.0
	amp := 1.0
	freq := 1.0

	for o := 0; o < octaves; o++ {
		sum += sample(x*freq, y*freq) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}

	return sum / norm
}
