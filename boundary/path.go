package boundary

import (
	"fmt"
	"math"
	"strings"
)

// EdgePoint is one sampled position along the organic edge. Ephemeral:
// regenerated every frame, never persisted.
type EdgePoint struct {
	T            float64 // vertical fraction in [0,1]
	Displacement float64 // organic displacement magnitude (px)
	Wave         float64 // instantaneous wave offset (px)
	X            float64
	Y            float64
}

// Path is the closed region boundary for one frame: the organic edge samples
// plus the straight far edge extended past the visible bounds. The region is
// everything between the far edge and the organic edge. No identity across
// frames.
type Path struct {
	Edge []EdgePoint // ordered top to bottom

	// Straight far edge, deliberately outside the viewport on all three
	// sides so a resize between frames never exposes a gap.
	FarX   float64
	Top    float64
	Bottom float64
}

// EdgeXAt returns the horizontal position of the smoothed organic edge at
// vertical position y. Between samples the edge follows piecewise quadratic
// segments whose control points are the samples themselves and whose on-curve
// endpoints are the midpoints between consecutive samples, so no facets show.
// Outside the sampled span the nearest end sample's x is used.
func (p Path) EdgeXAt(y float64) float64 {
	n := len(p.Edge)
	if n == 0 {
		return p.FarX
	}
	if n == 1 || y <= p.Edge[0].Y {
		return p.Edge[0].X
	}
	if y >= p.Edge[n-1].Y {
		return p.Edge[n-1].X
	}

	// First and last half-segments are straight runs to the first and last
	// midpoints; everything between is quadratic.
	firstMid := midpoint(p.Edge[0], p.Edge[1])
	if y <= firstMid.Y {
		return segmentLerpX(point{p.Edge[0].X, p.Edge[0].Y}, firstMid, y)
	}
	lastMid := midpoint(p.Edge[n-2], p.Edge[n-1])
	if y >= lastMid.Y {
		return segmentLerpX(lastMid, point{p.Edge[n-1].X, p.Edge[n-1].Y}, y)
	}

	for i := 1; i < n-1; i++ {
		m0 := midpoint(p.Edge[i-1], p.Edge[i])
		m1 := midpoint(p.Edge[i], p.Edge[i+1])
		if y < m0.Y || y > m1.Y {
			continue
		}
		return quadXAt(m0, p.Edge[i], m1, y)
	}

	return p.Edge[n-1].X
}

// MaxEdgeX returns the rightmost coordinate the smoothed edge reaches. The
// quadratic segments are contained in the convex hull of their control
// points, so the sample maximum bounds the curve as well.
func (p Path) MaxEdgeX() float64 {
	max := math.Inf(-1)
	for _, e := range p.Edge {
		if e.X > max {
			max = e.X
		}
	}
	return max
}

// Data emits the closed path as an SVG-style command string, suitable for a
// clip-path consumer: move to the far top corner, line to the first organic
// sample, quadratic chain through the midpoints, then close along the far
// edge.
func (p Path) Data() string {
	n := len(p.Edge)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M %.2f %.2f", p.FarX, p.Top)
	fmt.Fprintf(&b, " L %.2f %.2f", p.Edge[0].X, p.Edge[0].Y)

	for i := 1; i < n-1; i++ {
		m := midpoint(p.Edge[i], p.Edge[i+1])
		fmt.Fprintf(&b, " Q %.2f %.2f %.2f %.2f", p.Edge[i].X, p.Edge[i].Y, m.X, m.Y)
	}
	if n > 1 {
		fmt.Fprintf(&b, " L %.2f %.2f", p.Edge[n-1].X, p.Edge[n-1].Y)
	}

	fmt.Fprintf(&b, " L %.2f %.2f Z", p.FarX, p.Bottom)
	return b.String()
}

type point struct {
	X, Y float64
}

func midpoint(a, b EdgePoint) point {
	return point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func segmentLerpX(a, b point, y float64) float64 {
	if b.Y == a.Y {
		return a.X
	}
	t := (y - a.Y) / (b.Y - a.Y)
	return a.X + (b.X-a.X)*t
}

// quadXAt evaluates the quadratic Bezier (m0, ctrl, m1) at the parameter
// matching vertical position y. The samples are evenly spaced vertically, so
// y(s) is monotone and the root is unique in [0,1].
func quadXAt(m0 point, ctrl EdgePoint, m1 point, y float64) float64 {
	a := m0.Y - 2*ctrl.Y + m1.Y
	b := 2 * (ctrl.Y - m0.Y)
	c := m0.Y - y

	var s float64
	if math.Abs(a) < 1e-9 {
		if b == 0 {
			return ctrl.X
		}
		s = -c / b
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			disc = 0
		}
		root := math.Sqrt(disc)
		s = (-b + root) / (2 * a)
		if s < 0 || s > 1 {
			s = (-b - root) / (2 * a)
		}
	}

	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}

	inv := 1 - s
	return inv*inv*m0.X + 2*s*inv*ctrl.X + s*s*m1.X
}
