package resource

import (
	"sync"
)

// UnifiedTable implements the Table interface on a LocalBackend.
// Removing an object removes everything it owns first, deepest objects
// first, each with its own EventDropped notification.
type UnifiedTable struct {
	backend   *LocalBackend
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
	closeMu   sync.RWMutex
}

// NewTable creates a new unified table with a LocalBackend.
func NewTable() *UnifiedTable {
	return &UnifiedTable{
		backend: NewLocalBackend(),
	}
}

// Insert adds a value and returns its handle, or 0 once the table is closed.
func (t *UnifiedTable) Insert(kind Kind, parent Handle, value any) Handle {
	t.closeMu.RLock()
	if t.closed {
		t.closeMu.RUnlock()
		return 0
	}
	t.closeMu.RUnlock()

	handle, err := t.backend.Create(kind, parent, value)
	if err != nil {
		return 0
	}

	t.notify(Event{
		Type:   EventCreated,
		Handle: handle,
		Parent: parent,
		Kind:   kind,
		Value:  value,
	})

	return handle
}

// Get retrieves a value by handle.
func (t *UnifiedTable) Get(handle Handle) (any, bool) {
	return t.backend.Get(handle)
}

// GetKind retrieves a value only if it is of the expected kind.
func (t *UnifiedTable) GetKind(handle Handle, kind Kind) (any, bool) {
	actual, ok := t.backend.Kind(handle)
	if !ok || actual != kind {
		return nil, false
	}
	return t.backend.Get(handle)
}

// Kind reports the kind of a live handle.
func (t *UnifiedTable) Kind(handle Handle) (Kind, bool) {
	return t.backend.Kind(handle)
}

// Parent reports the owner of a live handle.
func (t *UnifiedTable) Parent(handle Handle) (Handle, bool) {
	return t.backend.Parent(handle)
}

// Children returns the live objects directly owned by handle.
func (t *UnifiedTable) Children(handle Handle) []Handle {
	return t.backend.Children(handle)
}

// Remove drops an object and everything it owns.
func (t *UnifiedTable) Remove(handle Handle) (any, bool) {
	kind, ok := t.backend.Kind(handle)
	if !ok {
		return nil, false
	}
	parent, _ := t.backend.Parent(handle)

	for _, child := range t.backend.Children(handle) {
		t.Remove(child)
	}

	value, ok := t.backend.Drop(handle)
	if !ok {
		return nil, false
	}

	if d, ok := value.(Dropper); ok {
		d.Drop()
	}

	t.notify(Event{
		Type:   EventDropped,
		Handle: handle,
		Parent: parent,
		Kind:   kind,
		Value:  value,
	})

	return value, true
}

// Subscribe adds an observer for lifecycle events.
func (t *UnifiedTable) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *UnifiedTable) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of live objects.
func (t *UnifiedTable) Len() int {
	return t.backend.Len()
}

// Clear drops all objects.
func (t *UnifiedTable) Clear() {
	// Collect handles first to avoid holding the lock during Remove.
	// Owners precede what they own, so each Remove takes a whole subtree.
	var handles []Handle
	t.backend.Each(func(h Handle, _ Kind, _ any) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Remove(h)
	}
}

// Close releases all objects and stops accepting operations.
func (t *UnifiedTable) Close() error {
	t.closeMu.Lock()
	t.closed = true
	t.closeMu.Unlock()

	return t.backend.Close()
}

func (t *UnifiedTable) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
