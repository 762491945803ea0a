package leakcheck

// EventKind distinguishes allocation from deallocation events.
type EventKind uint8

const (
	Allocation EventKind = iota + 1
	Deallocation
)

func (k EventKind) String() string {
	switch k {
	case Allocation:
		return "allocation"
	case Deallocation:
		return "deallocation"
	default:
		return "unknown"
	}
}

// Event is a single entry of the ledger history. Events are immutable once recorded.
type Event struct {
	Kind     EventKind
	Identity Identity
	// Tag is optional; the empty string means untagged.
	Tag string
}

// delta is the event's contribution to a live count.
func (e Event) delta() int {
	switch e.Kind {
	case Allocation:
		return 1
	case Deallocation:
		return -1
	default:
		return 0
	}
}
