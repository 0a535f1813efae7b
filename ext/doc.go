// Package ext binds runtime functions that are not part of the core table.
//
// Vendor and KHR extension entry points are looked up by name with
// xrGetInstanceProcAddr against the instance that enabled them. A lookup
// yields an abi.Proc; a Shape turns that address into a typed Go function
// that calls through the runtime's abi.ProcInvoker.
//
//	create, err := ext.Resolve(rt, inst, ext.CreatePassthroughFB, ext.CreatePassthrough)
//	if err != nil {
//	    // errors.KindProcUnavailable: the runtime does not expose the function
//	}
//	r := create(session, &info, &out)
//
// Table caches successful lookups for one instance. Failed lookups are not
// cached and nothing is shared between instances.
package ext
