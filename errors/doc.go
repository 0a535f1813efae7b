// Package errors provides structured error types for the OpenXR facade.
//
// Errors are categorized by Phase (which part of the API issued the call)
// and Kind (the failure class). Runtime status failures additionally carry
// the native function name and its abi.Result, unchanged.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseFrame, errors.KindRuntimeStatus).
//		Function("xrBeginFrame").
//		Result(abi.ErrorCallOrderInvalid).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Status(errors.PhaseSession, "xrBeginSession", r)
//	err := errors.ProcUnavailable("xrCreatePassthroughFB", r)
//
// Recover the status code from any error returned by the facade:
//
//	if r, ok := errors.ResultOf(err); ok && r == abi.TimeoutExpired {
//	    // retry next frame
//	}
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
