package xr

import (
	"unsafe"

	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
)

// FrameState is the runtime's prediction for the frame admitted by WaitFrame.
type FrameState struct {
	PredictedDisplayTime   abi.Time
	PredictedDisplayPeriod abi.Duration
	ShouldRender           bool
}

// WaitFrame blocks until the runtime admits the next frame. The facade
// adds no timeout of its own.
func (s *Session) WaitFrame() (FrameState, error) {
	info := abi.FrameWaitInfo{Type: abi.TypeFrameWaitInfo}
	state := abi.FrameState{Type: abi.TypeFrameState}
	if r := s.rt().WaitFrame(s.live(), &info, &state); r != abi.Success {
		return FrameState{}, errors.Status(errors.PhaseFrame, "xrWaitFrame", r)
	}
	return FrameState{
		PredictedDisplayTime:   state.PredictedDisplayTime,
		PredictedDisplayPeriod: state.PredictedDisplayPeriod,
		ShouldRender:           state.ShouldRender.Go(),
	}, nil
}

// BeginFrame marks the start of rendering for the frame admitted by the
// last WaitFrame. Calling it out of order yields the runtime's
// XR_ERROR_CALL_ORDER_INVALID; XR_FRAME_DISCARDED is also returned as an
// error so the caller sees the exact code.
func (s *Session) BeginFrame() error {
	info := abi.FrameBeginInfo{Type: abi.TypeFrameBeginInfo}
	return errors.Check(errors.PhaseFrame, "xrBeginFrame", s.rt().BeginFrame(s.live(), &info))
}

// FrameEnd describes the layers submitted for one frame. A zero
// BlendMode means opaque.
type FrameEnd struct {
	Next        unsafe.Pointer
	Layers      []abi.CompositionLayer
	DisplayTime abi.Time
	BlendMode   abi.EnvironmentBlendMode
}

// EndFrame submits the frame's composition layers.
func (s *Session) EndFrame(frame FrameEnd) error {
	blend := frame.BlendMode
	if blend == 0 {
		blend = abi.BlendModeOpaque
	}
	info := abi.FrameEndInfo{
		Type:                 abi.TypeFrameEndInfo,
		Next:                 frame.Next,
		DisplayTime:          frame.DisplayTime,
		EnvironmentBlendMode: blend,
		Layers:               frame.Layers,
	}
	return errors.Check(errors.PhaseFrame, "xrEndFrame", s.rt().EndFrame(s.live(), &info))
}

// ProjectionLayer builds a projection layer with one view per located
// view. View i samples array slice i of sc over its full extent.
func ProjectionLayer(space *Space, views []abi.View, sc *Swapchain) *abi.CompositionLayerProjection {
	layer := &abi.CompositionLayerProjection{
		Type:  abi.TypeCompositionLayerProjection,
		Space: space.Handle(),
		Views: make([]abi.CompositionLayerProjectionView, len(views)),
	}
	for i, v := range views {
		layer.Views[i] = abi.CompositionLayerProjectionView{
			Type:     abi.TypeCompositionLayerProjectionView,
			Pose:     v.Pose,
			Fov:      v.Fov,
			SubImage: sc.SubImage(uint32(i)),
		}
	}
	return layer
}
