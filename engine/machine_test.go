package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/windrift/boundary"
	"github.com/lixenwraith/windrift/config"
	"github.com/lixenwraith/windrift/noise"
	"github.com/lixenwraith/windrift/scroll"
)

func newTestMachine(t *testing.T) (*Machine, *boundary.Generator, *MockTimeProvider) {
	t.Helper()

	cfg := config.Default()
	cfg.Seed = 42

	src, err := noise.New(cfg.NoiseBackend, cfg.Seed)
	if err != nil {
		t.Fatalf("noise.New: %v", err)
	}

	gen, err := boundary.NewGenerator(cfg, src, cfg.Seed, boundary.Viewport{Width: 1000, Height: 800})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	tp := NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewMachine(cfg, gen, scroll.NewCoupler(cfg.ScrollSensitivity), tp.Now()), gen, tp
}

func TestMachineStartsIdleOffscreen(t *testing.T) {
	m, gen, _ := newTestMachine(t)

	if m.Phase() != PhaseIdle {
		t.Fatalf("initial phase = %v, want Idle", m.Phase())
	}
	if m.EdgeX() != gen.IdleEdgeX() {
		t.Errorf("initial edge = %v, want off-screen bound %v", m.EdgeX(), gen.IdleEdgeX())
	}
}

func TestMachineEnterDrive(t *testing.T) {
	m, gen, tp := newTestMachine(t)

	effect, changed := m.HandleSignal(scroll.SignalEntered, tp.Now())
	if !changed || m.Phase() != PhaseDriven {
		t.Fatalf("Entered: phase = %v changed = %v, want Driven", m.Phase(), changed)
	}
	if effect != EffectShowIncoming {
		t.Errorf("Entered effect = %v, want EffectShowIncoming", effect)
	}

	m.SetProgress(0.5, tp.Now())
	m.Tick(tp.Now())
	want := gen.DrivenEdgeX(0.5)
	if m.EdgeX() != want {
		t.Errorf("edge at progress 0.5 = %v, want %v", m.EdgeX(), want)
	}

	m.SetProgress(1.0, tp.Now())
	m.Tick(tp.Now())
	if m.EdgeX() != gen.DrivenEdgeX(1.0) {
		t.Errorf("edge at progress 1 = %v, want %v", m.EdgeX(), gen.DrivenEdgeX(1.0))
	}
	t.Logf("✓ driven edge tracks progress: %.1f at p=1", m.EdgeX())
}

func TestMachineLeftBackwardResets(t *testing.T) {
	m, gen, tp := newTestMachine(t)

	m.HandleSignal(scroll.SignalEntered, tp.Now())
	m.SetProgress(0.3, tp.Now())
	m.Tick(tp.Now())

	effect, changed := m.HandleSignal(scroll.SignalLeftBackward, tp.Now())
	if !changed || m.Phase() != PhaseIdle {
		t.Fatalf("LeftBackward: phase = %v, want Idle", m.Phase())
	}
	if effect != EffectNone {
		t.Errorf("LeftBackward effect = %v, want EffectNone", effect)
	}
	if m.Progress() != 0 || m.Velocity() != 0 {
		t.Errorf("after reset progress = %v velocity = %v, want 0, 0", m.Progress(), m.Velocity())
	}
	if m.EdgeX() != gen.IdleEdgeX() {
		t.Errorf("after reset edge = %v, want %v", m.EdgeX(), gen.IdleEdgeX())
	}
}

func TestMachineExitRunsToCompletion(t *testing.T) {
	m, gen, tp := newTestMachine(t)

	m.HandleSignal(scroll.SignalEntered, tp.Now())
	m.SetProgress(1.0, tp.Now())
	m.Tick(tp.Now())

	if _, changed := m.HandleSignal(scroll.SignalLeftForward, tp.Now()); !changed {
		t.Fatal("LeftForward did not change phase")
	}
	if m.Phase() != PhaseExiting {
		t.Fatalf("phase = %v, want Exiting", m.Phase())
	}

	// Scroll input must not steer the exit run-off.
	startX := m.EdgeX()
	m.SetProgress(0.0, tp.Now())
	tp.Advance(300 * time.Millisecond)
	m.Tick(tp.Now())
	if m.EdgeX() < startX {
		t.Errorf("exit edge moved backward: %v -> %v", startX, m.EdgeX())
	}

	tp.Advance(400 * time.Millisecond)
	effect := m.Tick(tp.Now())
	if m.Phase() != PhaseIdle {
		t.Fatalf("after exit duration phase = %v, want Idle", m.Phase())
	}
	if effect != EffectHideOutgoing {
		t.Errorf("completion effect = %v, want EffectHideOutgoing", effect)
	}
	if m.EdgeX() != gen.IdleEdgeX() {
		t.Errorf("post-exit edge = %v, want off-screen %v", m.EdgeX(), gen.IdleEdgeX())
	}
	t.Log("✓ exit completed to Idle with hide directive")
}

func TestMachineExitReversalContinuity(t *testing.T) {
	m, _, tp := newTestMachine(t)

	m.HandleSignal(scroll.SignalEntered, tp.Now())
	m.SetProgress(1.0, tp.Now())
	m.Tick(tp.Now())

	m.HandleSignal(scroll.SignalLeftForward, tp.Now())

	// Reverse halfway through the 600ms exit run-off.
	tp.Advance(300 * time.Millisecond)
	m.Tick(tp.Now())
	exitX := m.EdgeX()

	effect, changed := m.HandleSignal(scroll.SignalReEntered, tp.Now())
	if !changed || m.Phase() != PhaseEntering {
		t.Fatalf("ReEntered mid-exit: phase = %v, want Entering", m.Phase())
	}
	if effect != EffectNone {
		t.Errorf("ReEntered effect = %v, want EffectNone", effect)
	}

	// No jump: the entering animation starts exactly where the exit was.
	if math.Abs(m.EdgeX()-exitX) > 1e-9 {
		t.Errorf("entering start edge = %v, want exit position %v", m.EdgeX(), exitX)
	}
	t.Logf("✓ reversal continuous at x=%.2f", exitX)
}

func TestMachineEnteringReconcilesToDriven(t *testing.T) {
	m, gen, tp := newTestMachine(t)

	m.HandleSignal(scroll.SignalEntered, tp.Now())
	m.SetProgress(1.0, tp.Now())
	m.Tick(tp.Now())
	m.HandleSignal(scroll.SignalLeftForward, tp.Now())

	tp.Advance(300 * time.Millisecond)
	m.Tick(tp.Now())
	m.HandleSignal(scroll.SignalReEntered, tp.Now())

	// The user keeps scrolling backward while the reconcile runs; the target
	// must follow the live driven position, not a snapshot.
	m.SetProgress(0.4, tp.Now())
	tp.Advance(500 * time.Millisecond) // past the 400ms enter duration
	effect := m.Tick(tp.Now())

	if m.Phase() != PhaseDriven {
		t.Fatalf("after enter duration phase = %v, want Driven", m.Phase())
	}
	if effect != EffectRestoreLayers {
		t.Errorf("completion effect = %v, want EffectRestoreLayers", effect)
	}
	want := gen.DrivenEdgeX(0.4)
	if math.Abs(m.EdgeX()-want) > 1e-9 {
		t.Errorf("reconciled edge = %v, want driven position %v", m.EdgeX(), want)
	}
	t.Logf("✓ entering reconciled to live driven x=%.2f", want)
}

func TestMachineIgnoresIllegalSignals(t *testing.T) {
	m, _, tp := newTestMachine(t)

	illegal := []scroll.Signal{scroll.SignalLeftForward, scroll.SignalLeftBackward}
	for _, sig := range illegal {
		if effect, changed := m.HandleSignal(sig, tp.Now()); changed || effect != EffectNone {
			t.Errorf("Idle + %v: changed = %v effect = %v, want ignored", sig, changed, effect)
		}
	}
	if m.Phase() != PhaseIdle {
		t.Errorf("phase drifted to %v", m.Phase())
	}
}

func TestMachineReEnterAfterExitCompletes(t *testing.T) {
	m, gen, tp := newTestMachine(t)

	m.HandleSignal(scroll.SignalEntered, tp.Now())
	m.SetProgress(1.0, tp.Now())
	m.Tick(tp.Now())
	m.HandleSignal(scroll.SignalLeftForward, tp.Now())
	tp.Advance(700 * time.Millisecond)
	m.Tick(tp.Now())

	if m.Phase() != PhaseIdle {
		t.Fatalf("exit did not complete: phase = %v", m.Phase())
	}

	// Scrolling back into the region after the run-off finished reconciles
	// from the fully-run-off position with both layers restored.
	effect, changed := m.HandleSignal(scroll.SignalReEntered, tp.Now())
	if !changed || m.Phase() != PhaseEntering {
		t.Fatalf("ReEntered from Idle: phase = %v, want Entering", m.Phase())
	}
	if effect != EffectShowIncoming {
		t.Errorf("effect = %v, want EffectShowIncoming", effect)
	}
	if m.EdgeX() != gen.ExitTargetX() {
		t.Errorf("entering start edge = %v, want run-off position %v", m.EdgeX(), gen.ExitTargetX())
	}

	m.SetProgress(0.9, tp.Now())
	tp.Advance(500 * time.Millisecond)
	if effect := m.Tick(tp.Now()); effect != EffectRestoreLayers {
		t.Errorf("completion effect = %v, want EffectRestoreLayers", effect)
	}
	if m.Phase() != PhaseDriven {
		t.Errorf("after reconcile phase = %v, want Driven", m.Phase())
	}
	if want := gen.DrivenEdgeX(0.9); math.Abs(m.EdgeX()-want) > 1e-9 {
		t.Errorf("reconciled edge = %v, want %v", m.EdgeX(), want)
	}
	t.Log("✓ post-exit re-entry reconciles from the run-off position")
}

func TestMachinePathOffscreenWhileIdle(t *testing.T) {
	m, _, tp := newTestMachine(t)

	for i := 0; i < 10; i++ {
		tp.Advance(100 * time.Millisecond)
		path := m.Path(tp.Now())
		if x := path.MaxEdgeX(); x >= 0 {
			t.Fatalf("idle path visible at t=%v: max edge x = %v", tp.Now(), x)
		}
	}
	t.Log("✓ idle silhouette stays off-screen across time")
}
