// Package resource provides handle tables for runtime-owned objects.
//
// A runtime hands out opaque 64-bit handles for instances, sessions,
// spaces and the rest. This package implements the table behind them:
// handle issue, kind checks, ownership and lifecycle notifications.
//
// # Handle Table
//
// The UnifiedTable maps integer handles to Go values:
//
//	table := resource.NewTable()
//
//	// Insert a root object
//	inst := table.Insert(resource.KindInstance, 0, instanceState)
//
//	// Insert an object owned by inst
//	sess := table.Insert(resource.KindSession, inst, sessionState)
//
//	// Kind-checked retrieval
//	v, ok := table.GetKind(sess, resource.KindSession) // ok
//	v, ok = table.GetKind(sess, resource.KindSpace)    // !ok
//
// Handles are issued in increasing order and never reused. After Remove,
// a handle stays invalid for the life of the table.
//
// # Ownership
//
// Every object records the handle that owns it. Remove takes the whole
// subtree with it, children first:
//
//	table.Remove(inst) // drops sess, then inst
//
// # Observers
//
// Register observers to track lifecycle events. Counter tallies them per
// kind:
//
//	c := resource.NewCounter()
//	table.Subscribe(c)
//	...
//	c.Dropped(resource.KindSwapchain)
//
// # Typed Access
//
// Typed wraps a table for one kind and value type:
//
//	sessions := resource.NewTyped[*sessionState](table, resource.KindSession)
//	s, ok := sessions.Get(h)
package resource
