package parameter

import (
	"time"
)

// Organic Edge Geometry
const (
	// EdgeSamples is the number of vertical samples along the organic edge
	EdgeSamples = 40

	// MaxDisplacementFrac is the maximum organic displacement as a fraction
	// of viewport width
	MaxDisplacementFrac = 0.18

	// WaveAmplitudeFrac is the ripple amplitude as a fraction of viewport width
	WaveAmplitudeFrac = 0.012

	// OffscreenEpsilon is extra slack (px) added to the idle edge bound so the
	// organic silhouette never peeks past the viewport origin
	OffscreenEpsilon = 2.0
)

// Noise Field
const (
	// NoiseFrequency scales the vertical fraction before sampling
	NoiseFrequency = 3.0

	// NoiseOctaves is the fractal octave count for the organic silhouette
	NoiseOctaves = 4

	// NoiseAmplitude scales the fractal value before displacement
	NoiseAmplitude = 1.0
)

// Wave Motion
const (
	// WaveSpeed is the ripple phase velocity (radians per second at rest)
	WaveSpeed = 2.0

	// VelocityMultiplier scales effective time by scroll velocity, so a flick
	// of the wheel reads as a gust rather than a position jump
	VelocityMultiplier = 3.0
)

// Scroll Coupling
const (
	// ScrollSensitivity converts a single-step progress delta into the [0,1]
	// velocity estimate
	ScrollSensitivity = 60.0
)

// Phase Timing
const (
	// ExitDuration is the eased run-off animation after leaving the region forward
	ExitDuration = 600 * time.Millisecond

	// EnterDuration is the eased reconcile animation after re-entering backward
	EnterDuration = 400 * time.Millisecond

	// FrameInterval is the frame clock tick interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond
)
