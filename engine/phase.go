package engine

// Phase is the transition state. Exactly one is active at a time; the frame
// clock runs only while a phase other than Idle is active.
type Phase uint8

const (
	// PhaseIdle pins progress at 0 with the edge held at the off-screen bound.
	PhaseIdle Phase = iota

	// PhaseDriven maps edge position directly from scroll progress while the
	// transition region is inside the scroll viewport window.
	PhaseDriven

	// PhaseEntering runs a fixed-duration eased reconcile from a
	// past-full-reveal position back to wherever driven progress currently is.
	PhaseEntering

	// PhaseExiting runs a fixed-duration eased run-off past full reveal,
	// independent of further scroll input.
	PhaseExiting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseDriven:
		return "Driven"
	case PhaseEntering:
		return "Entering"
	case PhaseExiting:
		return "Exiting"
	default:
		return "Unknown"
	}
}

// Active reports whether the phase requires continuous redraw.
func (p Phase) Active() bool {
	return p != PhaseIdle
}

// validTransitions is the full phase graph. Anything absent is rejected.
var validTransitions = map[Phase][]Phase{
	PhaseIdle:     {PhaseDriven, PhaseEntering},
	PhaseDriven:   {PhaseExiting, PhaseIdle},
	PhaseExiting:  {PhaseIdle, PhaseEntering},
	PhaseEntering: {PhaseDriven},
}

// CanTransition reports whether moving from one phase to another is legal.
func CanTransition(from, to Phase) bool {
	for _, t := range validTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}
