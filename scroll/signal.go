package scroll

// Signal is a discrete region-boundary crossing reported by the scroll
// timeline provider. The engine never observes raw pixel offsets; it only
// sees progress values and these crossings.
type Signal uint8

const (
	// SignalEntered fires when the scroll position crosses into the
	// transition region.
	SignalEntered Signal = iota

	// SignalLeftForward fires when scroll passes beyond the region moving
	// forward.
	SignalLeftForward

	// SignalLeftBackward fires when scroll leaves backward past the start
	// boundary.
	SignalLeftBackward

	// SignalReEntered fires when scroll re-enters the region from beyond it,
	// moving backward.
	SignalReEntered
)

func (s Signal) String() string {
	switch s {
	case SignalEntered:
		return "Entered"
	case SignalLeftForward:
		return "LeftForward"
	case SignalLeftBackward:
		return "LeftBackward"
	case SignalReEntered:
		return "ReEntered"
	default:
		return "Unknown"
	}
}
