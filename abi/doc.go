// Package abi describes the native OpenXR boundary in Go terms.
//
// Everything the facade sends to or receives from a runtime is defined here:
// status codes, structure-type discriminators, opaque handle types, the
// fixed-layout input/output records and the declared maximum sizes of the
// fixed-capacity name buffers.
//
// # Function Table
//
// Runtime is the core function table. Each method corresponds to exactly one
// native entry point and returns the runtime's Result unchanged:
//
//	var inst abi.Instance
//	info := abi.InstanceCreateInfo{Type: abi.TypeInstanceCreateInfo}
//	if r := rt.CreateInstance(&info, &inst); r != abi.Success {
//	    // inst is unspecified
//	}
//
// Vendor extension functions are not part of the table. They are looked up by
// name with GetInstanceProcAddr, which yields an opaque Proc, and invoked
// through ProcInvoker with one method per function shape.
//
// # Records
//
// Every record carries a Type discriminator and a Next extensibility pointer.
// Callers must set Type to the record's discriminator and either leave Next
// nil or point it at a chain the runtime understands. Backends that talk to
// native code require Next chains to live in C memory.
//
// # Enumeration
//
// Enumerate-style methods follow the two-call protocol: a first call with
// capacity 0 and a nil buffer reports the element count; a second call with
// that capacity fills the buffer.
//
// # Implementations
//
// The sim package implements Runtime in process. The loader package binds it
// to the Khronos loader through cgo.
package abi
