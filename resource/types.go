package resource

// Handle is an opaque reference to an object in a table.
// Handle 0 is reserved and always invalid. Handles are never reused.
type Handle uint64

// EventType identifies a lifecycle notification.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
)

// Event represents an object lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	Parent Handle
	Kind   Kind
	Type   EventType
}

// Observer receives notifications about lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// Backend provides the underlying storage mechanism for objects.
type Backend interface {
	// Create stores a value owned by parent and returns a fresh handle.
	Create(kind Kind, parent Handle, value any) (Handle, error)

	// Get retrieves a value by handle.
	Get(handle Handle) (any, bool)

	// Drop removes an object and returns (value, true) if it was live.
	Drop(handle Handle) (any, bool)

	// Close releases all objects held by the backend.
	Close() error
}

// Table manages objects with kind information, ownership and observers.
type Table interface {
	// Insert adds a value and returns its handle.
	Insert(kind Kind, parent Handle, value any) Handle

	// Get retrieves a value by handle.
	Get(handle Handle) (any, bool)

	// GetKind retrieves a value only if it is of the expected kind.
	GetKind(handle Handle, kind Kind) (any, bool)

	// Remove drops an object and everything it owns, returning the
	// object's value and true if it was live.
	Remove(handle Handle) (any, bool)

	// Subscribe adds an observer for lifecycle events.
	Subscribe(Observer)

	// Unsubscribe removes an observer.
	Unsubscribe(Observer)

	// Len returns the number of live objects.
	Len() int

	// Clear drops all objects.
	Clear()

	// Close releases all objects and stops accepting operations.
	Close() error
}

// Dropper is optionally implemented by values that need cleanup.
type Dropper interface {
	Drop()
}
