package resource

// Typed provides type-safe access to the objects of one kind in a table.
type Typed[T any] struct {
	table *UnifiedTable
	kind  Kind
}

// NewTyped binds a typed view to table for objects of kind.
func NewTyped[T any](table *UnifiedTable, kind Kind) *Typed[T] {
	return &Typed[T]{table: table, kind: kind}
}

// Insert adds a value owned by parent and returns its handle.
func (t *Typed[T]) Insert(parent Handle, value T) Handle {
	return t.table.Insert(t.kind, parent, value)
}

// Get retrieves a value by handle. Handles of another kind are rejected.
func (t *Typed[T]) Get(handle Handle) (T, bool) {
	var zero T
	v, ok := t.table.GetKind(handle, t.kind)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Remove drops a value and everything it owns.
func (t *Typed[T]) Remove(handle Handle) (T, bool) {
	var zero T
	if _, ok := t.table.GetKind(handle, t.kind); !ok {
		return zero, false
	}
	v, ok := t.table.Remove(handle)
	if !ok {
		return zero, false
	}
	typed, _ := v.(T)
	return typed, true
}

// Len returns the number of live objects of this kind.
func (t *Typed[T]) Len() int {
	n := 0
	t.table.backend.Each(func(_ Handle, k Kind, _ any) bool {
		if k == t.kind {
			n++
		}
		return true
	})
	return n
}

// Each iterates over the live objects of this kind.
func (t *Typed[T]) Each(fn func(Handle, T) bool) {
	type item struct {
		h Handle
		v T
	}
	var items []item
	t.table.backend.Each(func(h Handle, k Kind, v any) bool {
		if k == t.kind {
			if typed, ok := v.(T); ok {
				items = append(items, item{h, typed})
			}
		}
		return true
	})
	for _, it := range items {
		if !fn(it.h, it.v) {
			return
		}
	}
}
