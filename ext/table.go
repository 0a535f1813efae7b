package ext

import (
	"github.com/wippyai/openxr/abi"
)

// Table caches resolved addresses for one instance. It is not safe for
// concurrent use.
type Table struct {
	rt       abi.Runtime
	procs    map[string]abi.Proc
	instance abi.Instance
}

// NewTable creates an empty table bound to instance.
func NewTable(rt abi.Runtime, instance abi.Instance) *Table {
	return &Table{
		rt:       rt,
		instance: instance,
		procs:    make(map[string]abi.Proc),
	}
}

// Instance returns the instance lookups are made against.
func (t *Table) Instance() abi.Instance {
	return t.instance
}

// Lookup returns the address for name, resolving it on first use.
// Failures are returned every time and never stored.
func (t *Table) Lookup(name string) (abi.Proc, error) {
	if proc, ok := t.procs[name]; ok {
		return proc, nil
	}
	proc, err := Lookup(t.rt, t.instance, name)
	if err != nil {
		return 0, err
	}
	t.procs[name] = proc
	return proc, nil
}

// Cached reports whether name has been resolved successfully.
func (t *Table) Cached(name string) bool {
	_, ok := t.procs[name]
	return ok
}

// Len returns the number of cached addresses.
func (t *Table) Len() int {
	return len(t.procs)
}

// Reset forgets every address. Called when the instance is destroyed.
func (t *Table) Reset() {
	clear(t.procs)
	t.instance = abi.NullHandle
}

// Bind resolves name through t and adapts it with shape.
func Bind[F any](t *Table, name string, shape Shape[F]) (F, error) {
	proc, err := t.Lookup(name)
	if err != nil {
		var zero F
		return zero, err
	}
	return shape(t.rt, proc), nil
}
