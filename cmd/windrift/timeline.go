package main

import (
	"sync"

	"github.com/lixenwraith/windrift/engine"
	"github.com/lixenwraith/windrift/scroll"
)

// Simulated page layout: scroll offset runs [0, 2] with the transition region
// occupying the middle span. Progress is the region's traversal of that span.
const (
	regionEnterAt = 0.5
	regionLeaveAt = 1.5
	offsetMax     = 2.0
)

// simTimeline stands in for a browser scroll timeline. It tracks a virtual
// scroll offset and emits region-crossing signals plus normalized progress to
// the single subscribed listener.
type simTimeline struct {
	mu       sync.Mutex
	listener engine.TimelineListener
	offset   float64
}

func (s *simTimeline) Subscribe(l engine.TimelineListener) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listener = nil
	}, nil
}

// Scroll moves the virtual offset by delta and dispatches the crossings the
// move produced, in traversal order, followed by the new progress.
func (s *simTimeline) Scroll(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.offset
	next := old + delta
	if next < 0 {
		next = 0
	}
	if next > offsetMax {
		next = offsetMax
	}
	s.offset = next

	l := s.listener
	if l == nil || next == old {
		return
	}

	if delta > 0 {
		if old < regionEnterAt && next >= regionEnterAt {
			l.OnSignal(scroll.SignalEntered)
		}
		if old < regionLeaveAt && next >= regionLeaveAt {
			l.OnSignal(scroll.SignalLeftForward)
		}
	} else {
		if old > regionLeaveAt && next <= regionLeaveAt {
			l.OnSignal(scroll.SignalReEntered)
		}
		if old > regionEnterAt && next <= regionEnterAt {
			l.OnSignal(scroll.SignalLeftBackward)
		}
	}

	l.OnProgress(s.progressLocked())
}

// Offset returns the current virtual scroll offset.
func (s *simTimeline) Offset() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

func (s *simTimeline) progressLocked() float64 {
	p := (s.offset - regionEnterAt) / (regionLeaveAt - regionEnterAt)
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}
