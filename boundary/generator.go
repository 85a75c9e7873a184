// Package boundary turns a scalar edge position plus time into a closed 2D
// region boundary: one straight far edge kept outside the viewport, one
// noise-perturbed organic edge. Geometry only; painting is the caller's
// concern.
package boundary

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/windrift/config"
	"github.com/lixenwraith/windrift/noise"
	"github.com/lixenwraith/windrift/parameter"
)

// Viewport holds the host dimensions in pixels. Updated on resize; the next
// Generate call picks the new dimensions up.
type Viewport struct {
	Width  float64
	Height float64
}

// Generator produces the boundary path each frame. The per-sample noise
// offsets are drawn once at construction and reused every frame so the
// organic silhouette is temporally coherent: the same bubble shapes recur,
// only shifted and waved, instead of re-randomizing per frame.
type Generator struct {
	cfg     config.Config
	src     noise.Source
	offsets []float64
	vp      Viewport
}

// NewGenerator validates cfg and draws the fixed per-sample offsets from seed.
func NewGenerator(cfg config.Config, src noise.Source, seed int64, vp Viewport) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	offsets := make([]float64, cfg.EdgeSamples)
	for i := range offsets {
		offsets[i] = rng.Float64() * 100
	}

	return &Generator{
		cfg:     cfg,
		src:     src,
		offsets: offsets,
		vp:      vp,
	}, nil
}

// SetViewport records new host dimensions. Safe mid-animation: the current
// phase and progress are untouched, only the next frame's geometry changes.
func (g *Generator) SetViewport(vp Viewport) {
	g.vp = vp
}

// Viewport returns the current host dimensions.
func (g *Generator) Viewport() Viewport {
	return g.vp
}

// maxDisplacement is the largest organic displacement in pixels.
func (g *Generator) maxDisplacement() float64 {
	return g.cfg.MaxDisplacementFrac * g.vp.Width
}

// waveAmplitude is the ripple amplitude in pixels.
func (g *Generator) waveAmplitude() float64 {
	return g.cfg.WaveAmplitudeFrac * g.vp.Width
}

// overshoot is the off-screen slack: an edge at least this far past a screen
// edge keeps the entire organic silhouette off-screen.
func (g *Generator) overshoot() float64 {
	return g.maxDisplacement() + g.waveAmplitude() + parameter.OffscreenEpsilon
}

// IdleEdgeX is the guaranteed-off-screen edge position used while Idle and as
// the driven interpolation origin. Generate with this edgeX produces no
// sample with x >= 0 for any time or velocity.
func (g *Generator) IdleEdgeX() float64 {
	return -g.overshoot()
}

// DrivenEdgeX maps progress in [0,1] linearly from the off-screen bound to
// the fully revealed position at the far side of the viewport. Monotonically
// non-decreasing in progress.
func (g *Generator) DrivenEdgeX(progress float64) float64 {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return g.IdleEdgeX() + (g.vp.Width-g.IdleEdgeX())*progress
}

// ExitTargetX is the edge position past full reveal at which the organic
// silhouette has fully cleared the right screen edge.
func (g *Generator) ExitTargetX() float64 {
	return g.vp.Width + g.overshoot()
}

// Generate builds the boundary path for the given edge position, elapsed time
// in seconds, and clamped scroll velocity. Pure: identical arguments yield an
// identical path.
func (g *Generator) Generate(edgeX, timeSec, velocity float64) Path {
	if velocity < 0 {
		velocity = 0
	}
	if velocity > 1 {
		velocity = 1
	}

	// Faster scroll visibly speeds the ripple, not just the edge position.
	effective := timeSec * (1 + velocity*g.cfg.VelocityMultiplier)

	maxDisp := g.maxDisplacement()
	waveAmp := g.waveAmplitude()

	n := g.cfg.EdgeSamples
	edge := make([]EdgePoint, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)

		noiseVal := g.src.Fractal(t*g.cfg.NoiseFrequency+g.offsets[i], g.offsets[i], g.cfg.NoiseOctaves)
		disp := noiseVal * g.cfg.NoiseAmplitude * maxDisp
		wave := math.Sin(effective*g.cfg.WaveSpeed+t*4*math.Pi) * waveAmp

		edge[i] = EdgePoint{
			T:            t,
			Displacement: disp,
			Wave:         wave,
			X:            edgeX - disp + wave,
			Y:            t * g.vp.Height,
		}
	}

	over := g.overshoot()
	return Path{
		Edge: edge,
		// The far edge sits a full overshoot left of the worst-case organic
		// sample, and runs past both vertical bounds, so two independently
		// positioned shapes can never open a seam.
		FarX:   g.IdleEdgeX() - maxDisp - waveAmp - over,
		Top:    -over,
		Bottom: g.vp.Height + over,
	}
}
