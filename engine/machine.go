package engine

import (
	"time"

	"github.com/lixenwraith/windrift/boundary"
	"github.com/lixenwraith/windrift/config"
	"github.com/lixenwraith/windrift/scroll"
)

// Effect is a layer directive emitted by a phase transition. The controller
// forwards effects to the LayerHost; the machine itself never touches layers.
type Effect uint8

const (
	EffectNone Effect = iota

	// EffectShowIncoming brings the incoming layer to front with both layers
	// visible. Emitted on entering the transition region.
	EffectShowIncoming

	// EffectHideOutgoing hides the outgoing layer. Emitted when the Exiting
	// phase completes.
	EffectHideOutgoing

	// EffectRestoreLayers restores full visibility and ordering. Emitted when
	// the Entering phase completes.
	EffectRestoreLayers
)

// Machine owns the transition phase and the effective edge position. It is
// not goroutine safe on its own; the controller serializes access. All time
// flows in through method arguments so tests drive it with a mock provider.
type Machine struct {
	cfg     config.Config
	gen     *boundary.Generator
	coupler *scroll.Coupler

	phase Phase
	epoch time.Time // zero point for the wave time argument

	progress float64
	velocity float64

	// Eased animation bookkeeping for Exiting and Entering.
	animStart time.Time
	animFromX float64

	edgeX float64
}

// NewMachine creates a machine in the Idle phase with the edge pinned at the
// off-screen bound.
func NewMachine(cfg config.Config, gen *boundary.Generator, coupler *scroll.Coupler, now time.Time) *Machine {
	return &Machine{
		cfg:     cfg,
		gen:     gen,
		coupler: coupler,
		phase:   PhaseIdle,
		epoch:   now,
		edgeX:   gen.IdleEdgeX(),
	}
}

// Phase returns the active phase.
func (m *Machine) Phase() Phase { return m.phase }

// Progress returns the current driven progress.
func (m *Machine) Progress() float64 { return m.progress }

// Velocity returns the current velocity estimate.
func (m *Machine) Velocity() float64 { return m.velocity }

// EdgeX returns the last computed effective edge position.
func (m *Machine) EdgeX() float64 { return m.edgeX }

// SetProgress ingests a scroll progress value. Stored in every phase; only
// Driven and Entering read it back when computing the edge.
func (m *Machine) SetProgress(raw float64, now time.Time) {
	s := m.coupler.Update(raw, now)
	m.progress = s.Progress
	m.velocity = s.Velocity
}

// easeOut is the deceleration curve 1-(1-p)^2 used by both timed phases.
func easeOut(p float64) float64 {
	inv := 1 - p
	return 1 - inv*inv
}

// animProgress returns the normalized position of the running timed phase.
func (m *Machine) animProgress(now time.Time, dur time.Duration) float64 {
	p := float64(now.Sub(m.animStart)) / float64(dur)
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}

// exitEdgeX computes the in-flight Exiting edge position at the given time.
func (m *Machine) exitEdgeX(now time.Time) float64 {
	p := m.animProgress(now, m.cfg.ExitDuration.Duration)
	return m.animFromX + (m.gen.ExitTargetX()-m.animFromX)*easeOut(p)
}

// enterEdgeX computes the in-flight Entering edge position. The target is
// wherever driven progress currently is, re-sampled every frame, so a reverse
// scroll reconciles to the live scroll position instead of restarting from
// zero.
func (m *Machine) enterEdgeX(now time.Time) float64 {
	p := m.animProgress(now, m.cfg.EnterDuration.Duration)
	target := m.gen.DrivenEdgeX(m.progress)
	return m.animFromX + (target-m.animFromX)*easeOut(p)
}

// HandleSignal applies a region crossing. Returns the layer directive for the
// transition and whether the signal changed the phase; crossings illegal for
// the current phase are ignored.
func (m *Machine) HandleSignal(sig scroll.Signal, now time.Time) (Effect, bool) {
	switch {
	case m.phase == PhaseIdle && sig == scroll.SignalEntered:
		m.transition(PhaseDriven)
		m.edgeX = m.gen.DrivenEdgeX(m.progress)
		return EffectShowIncoming, true

	case m.phase == PhaseDriven && sig == scroll.SignalLeftForward:
		m.animStart = now
		m.animFromX = m.edgeX
		m.transition(PhaseExiting)
		return EffectNone, true

	case m.phase == PhaseDriven && sig == scroll.SignalLeftBackward:
		m.reset()
		return EffectNone, true

	case m.phase == PhaseIdle && sig == scroll.SignalReEntered:
		// Re-entry backward after the exit finished: reconcile from the
		// fully-run-off position, with both layers visible again.
		m.animStart = now
		m.animFromX = m.gen.ExitTargetX()
		m.transition(PhaseEntering)
		m.edgeX = m.animFromX
		return EffectShowIncoming, true

	case m.phase == PhaseExiting && sig == scroll.SignalReEntered:
		// Continuity tie-break: the Entering phase starts from the exit
		// position at the moment of reversal, never a canonical start point.
		fromX := m.exitEdgeX(now)
		m.animStart = now
		m.animFromX = fromX
		m.transition(PhaseEntering)
		m.edgeX = fromX
		return EffectNone, true
	}

	return EffectNone, false
}

// Tick advances the timed phases. Returns the layer directive when a timed
// phase completes on this tick.
func (m *Machine) Tick(now time.Time) Effect {
	switch m.phase {
	case PhaseDriven:
		m.edgeX = m.gen.DrivenEdgeX(m.progress)

	case PhaseExiting:
		m.edgeX = m.exitEdgeX(now)
		if m.animProgress(now, m.cfg.ExitDuration.Duration) >= 1 {
			m.reset()
			return EffectHideOutgoing
		}

	case PhaseEntering:
		m.edgeX = m.enterEdgeX(now)
		if m.animProgress(now, m.cfg.EnterDuration.Duration) >= 1 {
			m.transition(PhaseDriven)
			m.edgeX = m.gen.DrivenEdgeX(m.progress)
			return EffectRestoreLayers
		}
	}

	return EffectNone
}

// Path generates the frame's boundary geometry for the current edge position.
func (m *Machine) Path(now time.Time) boundary.Path {
	return m.gen.Generate(m.edgeX, now.Sub(m.epoch).Seconds(), m.velocity)
}

// reset returns to Idle with progress pinned at 0 and the edge at the
// off-screen bound.
func (m *Machine) reset() {
	m.transition(PhaseIdle)
	m.progress = 0
	m.velocity = 0
	m.coupler.Reset()
	m.edgeX = m.gen.IdleEdgeX()
}

func (m *Machine) transition(to Phase) {
	if !CanTransition(m.phase, to) {
		// Transition legality is enforced by the signal dispatch above; a
		// miss here is a programming error worth surfacing loudly in tests.
		panic("engine: illegal phase transition " + m.phase.String() + " -> " + to.String())
	}
	m.phase = to
}
