// Package openxr provides a Go facade over an OpenXR runtime.
//
// Native handles (instance, session, space, swapchain, action set, action,
// passthrough and passthrough layer) are exposed as Go values with an
// explicit Close. Destruction happens at most once per handle, extension
// functions are bound per instance at call time, and every runtime status
// code reaches the caller unchanged.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	openxr/          Root package with the API version and extension names
//	├── abi/         Native records, status codes and the Runtime function table
//	├── xr/          Entry point, handle wrappers, actions, frames, swapchains
//	├── ext/         Dynamic binding of extension functions
//	├── resource/    Monotonic handle tables used by runtimes
//	├── errors/      Structured error types carrying status codes
//	├── config/      viper-backed bootstrap configuration
//	├── sim/         In-process simulated runtime for tests and tooling
//	└── loader/      cgo binding to libopenxr_loader (build tag openxr)
//
// # Quick Start
//
// Create an instance and run one frame:
//
//	rt, err := loader.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ep := xr.Open(rt)
//	inst, err := ep.CreateInstance("demo", "engine", []string{openxr.KHRVulkanEnable})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer inst.Close()
//
//	sess, err := inst.CreateSession(graphicsBinding)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Close()
//
//	state, err := sess.WaitFrame()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := sess.BeginFrame(); err != nil {
//	    log.Fatal(err)
//	}
//	// render
//	err = sess.EndFrame(xr.FrameEnd{DisplayTime: state.PredictedDisplayTime})
//
// # Status Codes
//
// Every failed runtime call returns an *errors.Error whose Result is the
// exact code the runtime reported. Qualified successes such as
// XR_TIMEOUT_EXPIRED and XR_FRAME_DISCARDED are reported the same way:
//
//	if r, ok := errors.ResultOf(err); ok && r == abi.TimeoutExpired {
//	    // try again next frame
//	}
//
// # Thread Safety
//
// Nothing in xr is synchronized. An entry point and everything created
// from it belong to one goroutine at a time, typically the one that runs
// the frame loop. WaitFrame and WaitImage are the only blocking calls.
//
// # Ownership
//
// Destroying a parent before its children is a caller error. The runtime
// decides what happens to the children; the facade does not track them.
package openxr
