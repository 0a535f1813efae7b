package resource

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("resource backend closed")

// LocalBackend is an in-memory backend. Handles are issued in increasing
// order and dropped slots are tombstoned, so a stale handle never aliases
// a newer object.
type LocalBackend struct {
	entries []entry
	live    int
	mu      sync.RWMutex
	closed  bool
}

type entry struct {
	value  any
	parent Handle
	kind   Kind
	valid  bool
}

// NewLocalBackend creates a new in-memory backend.
func NewLocalBackend() *LocalBackend {
	return &LocalBackend{
		entries: make([]entry, 0, 64),
	}
}

// Create stores a value and returns a handle.
func (b *LocalBackend) Create(kind Kind, parent Handle, value any) (Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, ErrClosed
	}

	b.entries = append(b.entries, entry{
		kind:   kind,
		parent: parent,
		value:  value,
		valid:  true,
	})
	b.live++
	return Handle(len(b.entries)), nil
}

// lookup returns the live entry for handle. Caller holds mu.
func (b *LocalBackend) lookup(handle Handle) (*entry, bool) {
	if handle == 0 || handle > Handle(len(b.entries)) {
		return nil, false
	}
	e := &b.entries[handle-1]
	if !e.valid {
		return nil, false
	}
	return e, true
}

// Get retrieves a value by handle.
func (b *LocalBackend) Get(handle Handle) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.lookup(handle)
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Drop removes an object and returns (value, true) if it was live.
// Children are left in place; UnifiedTable handles cascades.
func (b *LocalBackend) Drop(handle Handle) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.lookup(handle)
	if !ok {
		return nil, false
	}

	value := e.value
	e.valid = false
	e.value = nil
	b.live--
	return value, true
}

// Close releases all objects.
func (b *LocalBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for i := range b.entries {
		if b.entries[i].valid {
			if d, ok := b.entries[i].value.(Dropper); ok {
				d.Drop()
			}
			b.entries[i].valid = false
			b.entries[i].value = nil
		}
	}

	b.entries = nil
	b.live = 0
	return nil
}

// Kind returns the kind for a handle.
func (b *LocalBackend) Kind(handle Handle) (Kind, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.lookup(handle)
	if !ok {
		return KindInvalid, false
	}
	return e.kind, true
}

// Parent returns the owner of a handle, or 0 for a root object.
func (b *LocalBackend) Parent(handle Handle) (Handle, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.lookup(handle)
	if !ok {
		return 0, false
	}
	return e.parent, true
}

// Children returns the live objects directly owned by handle, in creation order.
func (b *LocalBackend) Children(handle Handle) []Handle {
	if handle == 0 {
		return nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []Handle
	for i := int(handle); i < len(b.entries); i++ {
		e := b.entries[i]
		if e.valid && e.parent == handle {
			out = append(out, Handle(i+1))
		}
	}
	return out
}

// Len returns the number of live objects.
func (b *LocalBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.live
}

// Each iterates over all live objects.
func (b *LocalBackend) Each(fn func(Handle, Kind, any) bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i, e := range b.entries {
		if e.valid {
			if !fn(Handle(i+1), e.kind, e.value) {
				break
			}
		}
	}
}
