// Package xr wraps OpenXR objects in Go values with explicit lifetimes.
//
// Every wrapper owns exactly one native handle. Close destroys it at most
// once: the second Close is a no-op, and the handle reads as zero from then
// on even if the runtime reported a failure while destroying it.
//
// # Status Codes
//
// Each operation fills its input record, calls one runtime function and
// returns that function's status unchanged. Outputs are only produced on
// XR_SUCCESS. Anything else, including qualified successes such as
// XR_TIMEOUT_EXPIRED, becomes an *errors.Error:
//
//	if err := sc.WaitImage(timeout); errors.IsResult(err, abi.TimeoutExpired) {
//	    // skip this frame
//	}
//
// PollEvent is the exception: an empty queue is reported as ok == false
// with a nil error.
//
// # Frame Loop
//
//	state, err := sess.WaitFrame()
//	err = sess.BeginFrame()
//	idx, err := sc.AcquireImage()
//	err = sc.WaitImage(timeout)
//	// render into image idx
//	err = sc.ReleaseImage()
//	err = sess.EndFrame(xr.FrameEnd{DisplayTime: state.PredictedDisplayTime, Layers: layers})
//
// The facade does not check this order. The runtime does, and reports
// violations as XR_ERROR_CALL_ORDER_INVALID.
//
// # Extension Functions
//
// Passthrough objects call XR_FB_passthrough functions resolved through
// the instance's ext.Table. The extension must be enabled at instance
// creation; all functions an object needs are resolved before it is
// created.
//
// # Caller Obligations
//
// Wrappers are not synchronized; use each from one goroutine at a time.
// Close children before their parents. Using a wrapper after Close passes
// a null handle to the runtime; build with -tags xrdebug to panic instead.
package xr
