package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerClockDeliversTicks(t *testing.T) {
	clk := NewTickerClock(time.Millisecond, nil)

	var ticks atomic.Int64
	clk.Start(func(time.Time) { ticks.Add(1) })
	if !clk.Running() {
		t.Fatal("Running() false after Start")
	}

	deadline := time.Now().Add(time.Second)
	for ticks.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	clk.Stop()

	if got := ticks.Load(); got < 3 {
		t.Fatalf("got %d ticks before deadline, want >= 3", got)
	}
	if clk.Running() {
		t.Error("Running() true after Stop")
	}
	t.Logf("✓ delivered %d ticks", ticks.Load())
}

func TestTickerClockDoubleStart(t *testing.T) {
	clk := NewTickerClock(time.Millisecond, nil)

	var first, second atomic.Int64
	clk.Start(func(time.Time) { first.Add(1) })
	clk.Start(func(time.Time) { second.Add(1) })

	deadline := time.Now().Add(time.Second)
	for first.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	clk.Stop()

	if first.Load() == 0 {
		t.Fatal("original subscription starved")
	}
	if second.Load() != 0 {
		t.Fatalf("second Start replaced a live subscription: %d ticks", second.Load())
	}
	t.Log("✓ second Start on a running clock is a no-op")
}

func TestTickerClockStopFromCallback(t *testing.T) {
	clk := NewTickerClock(time.Millisecond, nil)

	var ticks atomic.Int64
	done := make(chan struct{})
	clk.Start(func(time.Time) {
		if ticks.Add(1) == 1 {
			clk.Stop()
			close(done)
		}
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop from inside the tick callback deadlocked")
	}

	// Give a stray tick every chance to fire, then confirm none did.
	time.Sleep(20 * time.Millisecond)
	if got := ticks.Load(); got != 1 {
		t.Errorf("ticks after self-stop = %d, want 1", got)
	}
	if clk.Running() {
		t.Error("Running() true after self-stop")
	}
}

func TestTickerClockStopIdempotent(t *testing.T) {
	clk := NewTickerClock(time.Millisecond, nil)
	clk.Stop() // never started
	clk.Start(func(time.Time) {})
	clk.Stop()
	clk.Stop()
	if clk.Running() {
		t.Error("Running() true after repeated Stop")
	}
}

func TestManualClockFire(t *testing.T) {
	clk := &ManualClock{}

	var got time.Time
	clk.Fire(time.Now()) // not subscribed: dropped
	clk.Start(func(now time.Time) { got = now })

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clk.Fire(at)
	if !got.Equal(at) {
		t.Fatalf("tick time = %v, want %v", got, at)
	}

	clk.Start(func(time.Time) { t.Fatal("second Start replaced callback") })
	clk.Fire(at.Add(time.Second))
	if clk.StartCalls != 2 {
		t.Errorf("StartCalls = %d, want 2", clk.StartCalls)
	}

	clk.Stop()
	if clk.Running() {
		t.Error("Running() true after Stop")
	}
}
