package resource

// Handle is an opaque reference to a guard in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Guard is the part of a guard the containers need. Every guard type of
// package guard implements it.
type Guard interface {
	Close() error
	Armed() bool
	Disarm()
}

// Event types for guard lifecycle notifications.
type EventType uint8

const (
	EventInserted EventType = iota
	EventDropped
	EventRemoved
)

func (t EventType) String() string {
	switch t {
	case EventInserted:
		return "inserted"
	case EventDropped:
		return "dropped"
	case EventRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event represents a guard lifecycle event.
type Event struct {
	Guard  Guard
	Err    error // deleter error, EventDropped only
	Name   string
	Handle Handle
	Type   EventType
}

// Observer receives notifications about guard lifecycle events.
type Observer interface {
	OnGuardEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// OnGuardEvent calls f(e).
func (f ObserverFunc) OnGuardEvent(e Event) {
	f(e)
}
