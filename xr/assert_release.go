//go:build !xrdebug

package xr

const debugAssertions = false
