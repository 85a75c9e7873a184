package render

import (
	"sync"

	"github.com/lixenwraith/windrift/boundary"
)

// Source paints one full layer. Implementations are pure lookups; the
// compositor drives them cell by cell during Compose.
type Source interface {
	CellAt(x, y int) Cell
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(x, y int) Cell

func (f SourceFunc) CellAt(x, y int) Cell { return f(x, y) }

// Compositor holds the outgoing and incoming layers and the current clip, and
// implements the layer directives the transition engine emits. Directive
// callbacks arrive from the frame clock goroutine while Compose runs on the
// presenter's loop, so all state is mutex guarded.
type Compositor struct {
	mu sync.Mutex

	outgoing Source
	incoming Source

	outgoingVisible bool
	incomingVisible bool
	clip            []Span
	clipW, clipH    int
}

// NewCompositor starts with only the outgoing layer visible, matching the
// Idle phase where the incoming content is entirely off-screen.
func NewCompositor(outgoing, incoming Source) *Compositor {
	return &Compositor{
		outgoing:        outgoing,
		incoming:        incoming,
		outgoingVisible: true,
	}
}

// SetIncoming swaps the incoming layer source. Used when a resize changes
// what the layer paints.
func (c *Compositor) SetIncoming(s Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.incoming = s
}

// SetOutgoing swaps the outgoing layer source.
func (c *Compositor) SetOutgoing(s Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outgoing = s
}

// ApplyClip rasterizes the frame boundary at the last composed grid size.
func (c *Compositor) ApplyClip(p boundary.Path) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.clipW > 0 && c.clipH > 0 {
		c.clip = ClipSpans(p, c.clipW, c.clipH)
	}
}

// ShowIncoming brings the incoming layer in with both layers visible. The
// incoming layer paints above the outgoing one, restricted to the clip.
func (c *Compositor) ShowIncoming() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outgoingVisible = true
	c.incomingVisible = true
}

// HideOutgoing drops the outgoing layer once the incoming region has fully
// run off past it.
func (c *Compositor) HideOutgoing() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outgoingVisible = false
	c.incomingVisible = true
	c.clip = nil
}

// RestoreLayers returns to both layers visible with normal ordering.
func (c *Compositor) RestoreLayers() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outgoingVisible = true
	c.incomingVisible = true
}

// Compose paints the current layer stack into cells, a row-major w by h grid.
// The grid size is remembered so the next ApplyClip rasterizes to match.
func (c *Compositor) Compose(cells []Cell, w, h int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clipW != w || c.clipH != h {
		c.clipW, c.clipH = w, h
		// Stale spans from the old size would misindex; drop them and let
		// the next frame's ApplyClip regenerate.
		c.clip = nil
	}

	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			if c.outgoingVisible {
				cells[row+x] = c.outgoing.CellAt(x, y)
			} else {
				cells[row+x] = c.incoming.CellAt(x, y)
			}
		}
	}

	if !c.incomingVisible || !c.outgoingVisible {
		return
	}

	if c.clip == nil {
		return
	}
	for _, s := range c.clip {
		if s.Y >= h {
			break
		}
		row := s.Y * w
		x1 := s.X1
		if x1 > w {
			x1 = w
		}
		for x := s.X0; x < x1; x++ {
			cells[row+x] = c.incoming.CellAt(x, s.Y)
		}
	}
}
