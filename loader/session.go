//go:build openxr

package loader

// #include "gxr.h"
import "C"

import (
	"unsafe"

	"github.com/wippyai/openxr/abi"
)

func (rt *Runtime) DestroySession(session abi.Session) abi.Result {
	return result(C.gxr_DestroySession(C.uint64_t(session)))
}

func (rt *Runtime) BeginSession(session abi.Session, info *abi.SessionBeginInfo) abi.Result {
	if info == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrSessionBeginInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	c.primaryViewConfigurationType = C.XrViewConfigurationType(info.PrimaryViewConfigurationType)
	return result(C.gxr_BeginSession(C.uint64_t(session), c))
}

func (rt *Runtime) EndSession(session abi.Session) abi.Result {
	return result(C.gxr_EndSession(C.uint64_t(session)))
}

func (rt *Runtime) RequestExitSession(session abi.Session) abi.Result {
	return result(C.gxr_RequestExitSession(C.uint64_t(session)))
}

func (rt *Runtime) EnumerateReferenceSpaces(session abi.Session, capacity uint32, count *uint32, spaces []abi.ReferenceSpaceType) abi.Result {
	if int(capacity) > len(spaces) {
		return abi.ErrorValidationFailure
	}
	return result(C.gxr_EnumerateReferenceSpaces(C.uint64_t(session), C.uint32_t(capacity), cCount(count),
		(*C.XrReferenceSpaceType)(unsafe.Pointer(first(spaces)))))
}

func (rt *Runtime) CreateReferenceSpace(session abi.Session, info *abi.ReferenceSpaceCreateInfo, space *abi.Space) abi.Result {
	if info == nil || space == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrReferenceSpaceCreateInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	c.referenceSpaceType = C.XrReferenceSpaceType(info.ReferenceSpaceType)
	c.poseInReferenceSpace = pod[C.XrPosef](info.PoseInReferenceSpace)

	var h C.uint64_t
	r := result(C.gxr_CreateReferenceSpace(C.uint64_t(session), c, &h))
	if r == abi.Success {
		*space = abi.Space(h)
	}
	return r
}

func (rt *Runtime) GetReferenceSpaceBoundsRect(session abi.Session, spaceType abi.ReferenceSpaceType, bounds *abi.Extent2Df) abi.Result {
	if bounds == nil {
		return abi.ErrorValidationFailure
	}
	var e C.XrExtent2Df
	r := result(C.gxr_GetReferenceSpaceBoundsRect(C.uint64_t(session), C.XrReferenceSpaceType(spaceType), &e))
	// Bounds are written for XR_SPACE_BOUNDS_UNAVAILABLE too (as zero).
	*bounds = pod[abi.Extent2Df](e)
	return r
}

func (rt *Runtime) CreateActionSpace(session abi.Session, info *abi.ActionSpaceCreateInfo, space *abi.Space) abi.Result {
	if info == nil || space == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrActionSpaceCreateInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	setHandle(&c.action, uint64(info.Action))
	c.subactionPath = C.XrPath(info.SubactionPath)
	c.poseInActionSpace = pod[C.XrPosef](info.PoseInActionSpace)

	var h C.uint64_t
	r := result(C.gxr_CreateActionSpace(C.uint64_t(session), c, &h))
	if r == abi.Success {
		*space = abi.Space(h)
	}
	return r
}

func (rt *Runtime) LocateSpace(space, baseSpace abi.Space, time abi.Time, location *abi.SpaceLocation) abi.Result {
	if location == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrSpaceLocation](&a)
	c._type = C.XrStructureType(location.Type)
	c.next = location.Next
	r := result(C.gxr_LocateSpace(C.uint64_t(space), C.uint64_t(baseSpace), C.XrTime(time), c))
	if r == abi.Success {
		location.LocationFlags = abi.SpaceLocationFlags(c.locationFlags)
		location.Pose = pod[abi.Posef](c.pose)
	}
	return r
}

func (rt *Runtime) DestroySpace(space abi.Space) abi.Result {
	return result(C.gxr_DestroySpace(C.uint64_t(space)))
}

func (rt *Runtime) EnumerateSwapchainFormats(session abi.Session, capacity uint32, count *uint32, formats []int64) abi.Result {
	if int(capacity) > len(formats) {
		return abi.ErrorValidationFailure
	}
	return result(C.gxr_EnumerateSwapchainFormats(C.uint64_t(session), C.uint32_t(capacity), cCount(count),
		(*C.int64_t)(unsafe.Pointer(first(formats)))))
}

func (rt *Runtime) CreateSwapchain(session abi.Session, info *abi.SwapchainCreateInfo, swapchain *abi.Swapchain) abi.Result {
	if info == nil || swapchain == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrSwapchainCreateInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	c.createFlags = C.XrSwapchainCreateFlags(info.CreateFlags)
	c.usageFlags = C.XrSwapchainUsageFlags(info.UsageFlags)
	c.format = C.int64_t(info.Format)
	c.sampleCount = C.uint32_t(info.SampleCount)
	c.width = C.uint32_t(info.Width)
	c.height = C.uint32_t(info.Height)
	c.faceCount = C.uint32_t(info.FaceCount)
	c.arraySize = C.uint32_t(info.ArraySize)
	c.mipCount = C.uint32_t(info.MipCount)

	var h C.uint64_t
	r := result(C.gxr_CreateSwapchain(C.uint64_t(session), c, &h))
	if r == abi.Success {
		*swapchain = abi.Swapchain(h)
	}
	return r
}

func (rt *Runtime) DestroySwapchain(swapchain abi.Swapchain) abi.Result {
	return result(C.gxr_DestroySwapchain(C.uint64_t(swapchain)))
}

func (rt *Runtime) EnumerateSwapchainImages(swapchain abi.Swapchain, capacity uint32, count *uint32) abi.Result {
	if capacity != 0 {
		return abi.ErrorValidationFailure
	}
	return result(C.gxr_EnumerateSwapchainImages(C.uint64_t(swapchain), cCount(count)))
}

func (rt *Runtime) AcquireSwapchainImage(swapchain abi.Swapchain, info *abi.SwapchainImageAcquireInfo, index *uint32) abi.Result {
	var a arena
	defer a.free()

	var c *C.XrSwapchainImageAcquireInfo
	if info != nil {
		c = alloc[C.XrSwapchainImageAcquireInfo](&a)
		c._type = C.XrStructureType(info.Type)
		c.next = info.Next
	}
	var idx C.uint32_t
	r := result(C.gxr_AcquireSwapchainImage(C.uint64_t(swapchain), c, &idx))
	if r == abi.Success && index != nil {
		*index = uint32(idx)
	}
	return r
}

func (rt *Runtime) WaitSwapchainImage(swapchain abi.Swapchain, info *abi.SwapchainImageWaitInfo) abi.Result {
	if info == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrSwapchainImageWaitInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	c.timeout = C.XrDuration(info.Timeout)
	return result(C.gxr_WaitSwapchainImage(C.uint64_t(swapchain), c))
}

func (rt *Runtime) ReleaseSwapchainImage(swapchain abi.Swapchain, info *abi.SwapchainImageReleaseInfo) abi.Result {
	var a arena
	defer a.free()

	var c *C.XrSwapchainImageReleaseInfo
	if info != nil {
		c = alloc[C.XrSwapchainImageReleaseInfo](&a)
		c._type = C.XrStructureType(info.Type)
		c.next = info.Next
	}
	return result(C.gxr_ReleaseSwapchainImage(C.uint64_t(swapchain), c))
}

func (rt *Runtime) WaitFrame(session abi.Session, info *abi.FrameWaitInfo, state *abi.FrameState) abi.Result {
	if state == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	var c *C.XrFrameWaitInfo
	if info != nil {
		c = alloc[C.XrFrameWaitInfo](&a)
		c._type = C.XrStructureType(info.Type)
		c.next = info.Next
	}
	s := alloc[C.XrFrameState](&a)
	s._type = C.XrStructureType(state.Type)
	s.next = state.Next
	r := result(C.gxr_WaitFrame(C.uint64_t(session), c, s))
	if r == abi.Success {
		state.PredictedDisplayTime = abi.Time(s.predictedDisplayTime)
		state.PredictedDisplayPeriod = abi.Duration(s.predictedDisplayPeriod)
		state.ShouldRender = abi.Bool32(s.shouldRender)
	}
	return r
}

func (rt *Runtime) BeginFrame(session abi.Session, info *abi.FrameBeginInfo) abi.Result {
	var a arena
	defer a.free()

	var c *C.XrFrameBeginInfo
	if info != nil {
		c = alloc[C.XrFrameBeginInfo](&a)
		c._type = C.XrStructureType(info.Type)
		c.next = info.Next
	}
	return result(C.gxr_BeginFrame(C.uint64_t(session), c))
}

func (rt *Runtime) EndFrame(session abi.Session, info *abi.FrameEndInfo) abi.Result {
	if info == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrFrameEndInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	c.displayTime = C.XrTime(info.DisplayTime)
	c.environmentBlendMode = C.XrEnvironmentBlendMode(info.EnvironmentBlendMode)

	layers := allocN[*C.XrCompositionLayerBaseHeader](&a, len(info.Layers))
	for i, l := range info.Layers {
		p := layer(&a, l)
		if p == nil {
			return abi.ErrorLayerInvalid
		}
		layers[i] = p
	}
	c.layerCount = C.uint32_t(len(layers))
	c.layers = first(layers)
	return result(C.gxr_EndFrame(C.uint64_t(session), c))
}

// layer converts one composition layer into C memory, or returns nil for
// a layer type the loader binding does not know.
func layer(a *arena, l abi.CompositionLayer) *C.XrCompositionLayerBaseHeader {
	switch l := l.(type) {
	case *abi.CompositionLayerProjection:
		c := alloc[C.XrCompositionLayerProjection](a)
		c._type = C.XrStructureType(l.Type)
		c.next = l.Next
		c.layerFlags = C.XrCompositionLayerFlags(l.LayerFlags)
		setHandle(&c.space, uint64(l.Space))
		views := allocN[C.XrCompositionLayerProjectionView](a, len(l.Views))
		for i, v := range l.Views {
			views[i]._type = C.XrStructureType(v.Type)
			views[i].next = v.Next
			views[i].pose = pod[C.XrPosef](v.Pose)
			views[i].fov = pod[C.XrFovf](v.Fov)
			subImage(&views[i].subImage, v.SubImage)
		}
		c.viewCount = C.uint32_t(len(views))
		c.views = first(views)
		return (*C.XrCompositionLayerBaseHeader)(unsafe.Pointer(c))

	case *abi.CompositionLayerQuad:
		c := alloc[C.XrCompositionLayerQuad](a)
		c._type = C.XrStructureType(l.Type)
		c.next = l.Next
		c.layerFlags = C.XrCompositionLayerFlags(l.LayerFlags)
		setHandle(&c.space, uint64(l.Space))
		c.eyeVisibility = C.XrEyeVisibility(l.EyeVisibility)
		subImage(&c.subImage, l.SubImage)
		c.pose = pod[C.XrPosef](l.Pose)
		c.size = pod[C.XrExtent2Df](l.Size)
		return (*C.XrCompositionLayerBaseHeader)(unsafe.Pointer(c))

	case *abi.CompositionLayerPassthroughFB:
		c := alloc[C.XrCompositionLayerPassthroughFB](a)
		c._type = C.XrStructureType(l.Type)
		c.next = l.Next
		c.flags = C.XrCompositionLayerFlags(l.Flags)
		setHandle(&c.space, uint64(l.Space))
		setHandle(&c.layerHandle, uint64(l.LayerHandle))
		return (*C.XrCompositionLayerBaseHeader)(unsafe.Pointer(c))
	}
	return nil
}

func subImage(dst *C.XrSwapchainSubImage, src abi.SwapchainSubImage) {
	setHandle(&dst.swapchain, uint64(src.Swapchain))
	dst.imageRect = pod[C.XrRect2Di](src.ImageRect)
	dst.imageArrayIndex = C.uint32_t(src.ImageArrayIndex)
}

func (rt *Runtime) LocateViews(session abi.Session, info *abi.ViewLocateInfo, state *abi.ViewState, capacity uint32, count *uint32, views []abi.View) abi.Result {
	if info == nil || state == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrViewLocateInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	c.viewConfigurationType = C.XrViewConfigurationType(info.ViewConfigurationType)
	c.displayTime = C.XrTime(info.DisplayTime)
	setHandle(&c.space, uint64(info.Space))

	s := alloc[C.XrViewState](&a)
	s._type = C.XrStructureType(state.Type)
	s.next = state.Next

	buf := allocN[C.XrView](&a, int(capacity))
	for i := range buf {
		buf[i]._type = C.XR_TYPE_VIEW
	}
	r := result(C.gxr_LocateViews(C.uint64_t(session), c, s, C.uint32_t(capacity), cCount(count), first(buf)))
	if r != abi.Success {
		return r
	}
	state.ViewStateFlags = abi.ViewStateFlags(s.viewStateFlags)
	for i := range filled(count, capacity, len(views)) {
		views[i].Type = abi.StructureType(buf[i]._type)
		views[i].Pose = pod[abi.Posef](buf[i].pose)
		views[i].Fov = pod[abi.Fovf](buf[i].fov)
	}
	return r
}
