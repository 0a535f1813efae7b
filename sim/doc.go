// Package sim is an in-process OpenXR runtime for tests and headless
// tooling. Runtime implements abi.Runtime and abi.ProcInvoker without any
// native code.
//
// The simulated runtime enforces the parts of the OpenXR contract that a
// host facade depends on:
//
//   - handles are issued from a resource table, never reused, and
//     destroying a parent destroys its children
//   - every record's Type field is checked (XR_ERROR_VALIDATION_FAILURE)
//   - enumerations follow the two-call protocol (XR_ERROR_SIZE_INSUFFICIENT)
//   - the session lifecycle runs idle, ready, synchronized, visible,
//     focused, stopping, exiting and is reported through PollEvent
//   - frame and swapchain calls are checked for order
//     (XR_ERROR_CALL_ORDER_INVALID)
//   - action sets attach once per session and SyncActions snapshots the
//     input injected with SetBoolean, SetFloat, SetVector2 and SetPose
//   - XR_FB_passthrough functions resolve only when the extension is enabled
//
// The system is described by a Profile, loadable from YAML:
//
//	p, err := sim.LoadProfile("quest.yaml")
//	rt := sim.New(sim.WithProfile(p))
//
// Failures can be injected per function with WithFailure or SetFailure,
// and Calls reports how often each function was invoked.
package sim
