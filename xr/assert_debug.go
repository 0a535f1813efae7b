//go:build xrdebug

package xr

// debugAssertions makes operations on destroyed wrappers panic instead of
// passing the null handle to the runtime.
const debugAssertions = true
