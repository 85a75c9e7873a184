// Package engine owns the transition phase and mediates between the scroll
// coupler and the boundary generator. The controller is the composition root:
// it receives the scroll-timeline provider and the layer host as explicit
// dependencies, with no ambient lookup, and drives a frame clock only while a
// phase requires continuous redraw.
package engine

import (
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/lixenwraith/windrift/boundary"
	"github.com/lixenwraith/windrift/config"
	"github.com/lixenwraith/windrift/noise"
	"github.com/lixenwraith/windrift/scroll"
)

// TimelineProvider is the external scroll-timeline collaborator. The engine
// consumes a single callback surface delivering progress plus discrete
// region-crossing signals; it never observes raw pixel offsets.
type TimelineProvider interface {
	// Subscribe registers the listener and returns a detach function.
	Subscribe(l TimelineListener) (detach func(), err error)
}

// TimelineListener receives the scroll timeline callbacks.
type TimelineListener interface {
	OnProgress(p float64)
	OnSignal(sig scroll.Signal)
}

// LayerHost is the boundary with the two stacked visual layers. Each active
// frame receives one closed-path clip; the three discrete directives bracket
// the transition lifecycle.
type LayerHost interface {
	// ApplyClip applies the frame's boundary as the shared clip region.
	ApplyClip(p boundary.Path)

	// ShowIncoming brings the incoming layer to front with both visible.
	ShowIncoming()

	// HideOutgoing hides the outgoing layer after the Exiting phase completes.
	HideOutgoing()

	// RestoreLayers restores full visibility and ordering after Entering
	// completes.
	RestoreLayers()
}

// Deps are the controller's collaborators. Timeline and Layers are external;
// a nil Clock, Time, or Logger falls back to a working default.
type Deps struct {
	Timeline TimelineProvider
	Layers   LayerHost
	Clock    Clock
	Time     TimeProvider
	Logger   *charmlog.Logger
	Viewport boundary.Viewport
}

// Controller wires the noise field, boundary generator, scroll coupler, and
// state machine to the two visual layers it mediates between.
type Controller struct {
	cfg  config.Config
	deps Deps
	seed int64

	mu       sync.Mutex
	gen      *boundary.Generator
	machine  *Machine
	inert    bool
	disposed bool
	detach   func()
}

// Snapshot is the debug/inspection surface.
type Snapshot struct {
	Phase         Phase
	Progress      float64
	Velocity      float64
	EdgeX         float64
	ClockRunning  bool
	Inert         bool
	ReducedMotion bool
	Seed          int64
}

// New validates cfg and constructs the controller. Invalid configuration is a
// programming error and fails here, before any collaborator is touched.
func New(cfg config.Config, deps Deps) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if deps.Time == nil {
		deps.Time = NewSystemTimeProvider()
	}
	if deps.Logger == nil {
		deps.Logger = charmlog.Default()
	}
	if deps.Clock == nil {
		deps.Clock = NewTickerClock(cfg.FrameInterval.Duration, deps.Time)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = deps.Time.Now().UnixNano()
	}

	src, err := noise.New(cfg.NoiseBackend, seed)
	if err != nil {
		return nil, err
	}

	gen, err := boundary.NewGenerator(cfg, src, seed, deps.Viewport)
	if err != nil {
		return nil, err
	}

	coupler := scroll.NewCoupler(cfg.ScrollSensitivity)

	return &Controller{
		cfg:     cfg,
		deps:    deps,
		seed:    seed,
		gen:     gen,
		machine: NewMachine(cfg, gen, coupler, deps.Time.Now()),
	}, nil
}

// Init attaches to the scroll timeline and returns the lifecycle handle. If
// the visual layers or the timeline provider are absent, initialization is a
// no-op reported once as a warning: the page renders without the cosmetic
// transition, never broken.
func (c *Controller) Init() *Handle {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := &Handle{c: c}

	if c.deps.Timeline == nil || c.deps.Layers == nil {
		c.deps.Logger.Warn("transition disabled: missing collaborator",
			"timeline", c.deps.Timeline != nil,
			"layers", c.deps.Layers != nil)
		c.inert = true
		return h
	}

	detach, err := c.deps.Timeline.Subscribe(c)
	if err != nil {
		c.deps.Logger.Warn("transition disabled: timeline subscription failed", "err", err)
		c.inert = true
		return h
	}
	c.detach = detach

	return h
}

// SetViewport records new host dimensions. The current phase and progress
// are preserved; the next frame regenerates with the new geometry.
func (c *Controller) SetViewport(vp boundary.Viewport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen.SetViewport(vp)
}

// OnProgress implements TimelineListener.
func (c *Controller) OnProgress(p float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inert || c.disposed || c.cfg.ReducedMotion {
		return
	}
	c.machine.SetProgress(p, c.deps.Time.Now())
}

// OnSignal implements TimelineListener.
func (c *Controller) OnSignal(sig scroll.Signal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inert || c.disposed {
		return
	}

	if c.cfg.ReducedMotion {
		c.reducedMotionSwap(sig)
		return
	}

	effect, changed := c.machine.HandleSignal(sig, c.deps.Time.Now())
	c.applyEffect(effect)
	if !changed {
		return
	}

	if c.machine.Phase().Active() {
		// Start is a no-op on a live subscription, so re-entering an active
		// phase never double-registers.
		c.deps.Clock.Start(c.onTick)
	} else {
		c.deps.Clock.Stop()
	}
}

// reducedMotionSwap performs the single discrete visibility directive per
// region crossing. No geometry, no frame clock.
func (c *Controller) reducedMotionSwap(sig scroll.Signal) {
	switch sig {
	case scroll.SignalEntered, scroll.SignalReEntered:
		c.deps.Layers.ShowIncoming()
	case scroll.SignalLeftForward:
		c.deps.Layers.HideOutgoing()
	case scroll.SignalLeftBackward:
		c.deps.Layers.RestoreLayers()
	}
}

// onTick is the frame callback: advance the timed phases, forward any
// completion directive, and emit the frame's clip geometry.
func (c *Controller) onTick(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed || c.inert {
		return
	}

	effect := c.machine.Tick(now)
	c.applyEffect(effect)

	if !c.machine.Phase().Active() {
		// Cancelled outright rather than left to lapse.
		c.deps.Clock.Stop()
		return
	}

	c.deps.Layers.ApplyClip(c.machine.Path(now))
}

func (c *Controller) applyEffect(e Effect) {
	switch e {
	case EffectShowIncoming:
		c.deps.Layers.ShowIncoming()
	case EffectHideOutgoing:
		c.deps.Layers.HideOutgoing()
	case EffectRestoreLayers:
		c.deps.Layers.RestoreLayers()
	}
}

// snapshot builds the inspection record. Caller holds the lock.
func (c *Controller) snapshot() Snapshot {
	return Snapshot{
		Phase:         c.machine.Phase(),
		Progress:      c.machine.Progress(),
		Velocity:      c.machine.Velocity(),
		EdgeX:         c.machine.EdgeX(),
		ClockRunning:  c.deps.Clock.Running(),
		Inert:         c.inert,
		ReducedMotion: c.cfg.ReducedMotion,
		Seed:          c.seed,
	}
}

// Handle is the public lifecycle surface returned by Init.
type Handle struct {
	c *Controller
}

// Dispose tears the subsystem down. Safe from any phase and idempotent; the
// clock subscription and the timeline attachment are both released.
func (h *Handle) Dispose() {
	c := h.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	c.disposed = true

	c.deps.Clock.Stop()
	if c.detach != nil {
		c.detach()
		c.detach = nil
	}
}

// SetProgress drives progress directly, bypassing the timeline provider.
func (h *Handle) SetProgress(p float64) {
	h.c.OnProgress(p)
}

// Phase returns the active phase.
func (h *Handle) Phase() Phase {
	h.c.mu.Lock()
	defer h.c.mu.Unlock()
	return h.c.machine.Phase()
}

// Inspect returns the debug snapshot.
func (h *Handle) Inspect() Snapshot {
	h.c.mu.Lock()
	defer h.c.mu.Unlock()
	return h.c.snapshot()
}
