package xr

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
)

// owned holds one native handle. The handle is either live or zero;
// zero means the object was never created or has been destroyed.
type owned[H ~uint64] struct {
	kind   string
	phase  errors.Phase
	handle H
}

func bind[H ~uint64](kind string, phase errors.Phase, h H) owned[H] {
	Logger().Debug("created",
		zap.String("kind", kind),
		zap.Uint64("handle", uint64(h)))
	return owned[H]{kind: kind, phase: phase, handle: h}
}

// Handle returns the native handle, or zero after Close.
func (o *owned[H]) Handle() H {
	return o.handle
}

// Valid reports whether the handle has not been destroyed.
func (o *owned[H]) Valid() bool {
	return o.handle != abi.NullHandle
}

// live returns the handle for a runtime call. A destroyed wrapper yields
// zero and the runtime reports XR_ERROR_HANDLE_INVALID; xrdebug builds
// panic instead.
func (o *owned[H]) live() H {
	if debugAssertions && o.handle == abi.NullHandle {
		panic(errors.CallerDiscipline(o.phase, fmt.Sprintf("%s used after Close", o.kind)))
	}
	return o.handle
}

// release issues destroy at most once. The handle is zeroed whatever the
// destroy status; a failed status is still returned.
func (o *owned[H]) release(function string, destroy func(H) abi.Result) error {
	if o.handle == abi.NullHandle {
		return nil
	}
	h := o.handle
	r := destroy(h)
	o.handle = abi.NullHandle

	if r != abi.Success {
		Logger().Warn("destroy failed",
			zap.String("kind", o.kind),
			zap.Uint64("handle", uint64(h)),
			zap.Stringer("result", r))
		return errors.Status(o.phase, function, r)
	}
	Logger().Debug("destroyed",
		zap.String("kind", o.kind),
		zap.Uint64("handle", uint64(h)))
	return nil
}
