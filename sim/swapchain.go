package sim

import (
	"slices"

	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/resource"
)

func (r *Runtime) swapchain(h abi.Swapchain) (*swapchain, bool) {
	return lookup[*swapchain](r, uint64(h), resource.KindSwapchain)
}

func (r *Runtime) EnumerateSwapchainFormats(h abi.Session, capacity uint32, count *uint32, formats []int64) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrEnumerateSwapchainFormats"); res != abi.Success {
		return res
	}

	if _, ok := r.session(h); !ok {
		return abi.ErrorHandleInvalid
	}
	return fill(capacity, count, formats, r.profile.SwapchainFormats)
}

func (r *Runtime) CreateSwapchain(h abi.Session, info *abi.SwapchainCreateInfo, out *abi.Swapchain) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrCreateSwapchain"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || out == nil || info.Type != abi.TypeSwapchainCreateInfo {
		return abi.ErrorValidationFailure
	}
	if !slices.Contains(r.profile.SwapchainFormats, info.Format) {
		return abi.ErrorSwapchainFormatUnsupported
	}
	v := r.profile.Views
	switch {
	case info.UsageFlags == 0,
		info.Width == 0 || info.Height == 0,
		info.Width > v.MaxWidth || info.Height > v.MaxHeight,
		info.FaceCount != 1 && info.FaceCount != 6,
		info.ArraySize == 0 || info.MipCount == 0 || info.SampleCount == 0:
		return abi.ErrorValidationFailure
	}
	if info.SampleCount > max(v.MaxSampleCount, v.SampleCount, 1) {
		return abi.ErrorFeatureUnsupported
	}

	sc := &swapchain{
		sess:      s,
		format:    info.Format,
		width:     info.Width,
		height:    info.Height,
		arraySize: info.ArraySize,
		images:    r.profile.SwapchainImageCount,
	}
	sh, res := r.insert(resource.KindSwapchain, uint64(h), sc)
	if res != abi.Success {
		return res
	}
	sc.handle = abi.Swapchain(sh)
	*out = sc.handle
	return abi.Success
}

func (r *Runtime) DestroySwapchain(h abi.Swapchain) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrDestroySwapchain"); res != abi.Success {
		return res
	}
	return r.remove(resource.KindSwapchain, uint64(h))
}

func (r *Runtime) EnumerateSwapchainImages(h abi.Swapchain, capacity uint32, count *uint32) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrEnumerateSwapchainImages"); res != abi.Success {
		return res
	}

	sc, ok := r.swapchain(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if count == nil {
		return abi.ErrorValidationFailure
	}
	*count = sc.images
	if capacity != 0 && capacity < sc.images {
		return abi.ErrorSizeInsufficient
	}
	return abi.Success
}

// AcquireSwapchainImage hands out images in round-robin order. Every
// image may be acquired before any is released.
func (r *Runtime) AcquireSwapchainImage(h abi.Swapchain, info *abi.SwapchainImageAcquireInfo, index *uint32) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrAcquireSwapchainImage"); res != abi.Success {
		return res
	}

	sc, ok := r.swapchain(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if (info != nil && info.Type != abi.TypeSwapchainImageAcquireInfo) || index == nil {
		return abi.ErrorValidationFailure
	}
	if uint32(len(sc.acquired)) == sc.images {
		return abi.ErrorCallOrderInvalid
	}
	*index = sc.next
	sc.acquired = append(sc.acquired, sc.next)
	sc.next = (sc.next + 1) % sc.images
	return abi.Success
}

// WaitSwapchainImage waits on the oldest acquired image. Only one image
// may be waited on at a time.
func (r *Runtime) WaitSwapchainImage(h abi.Swapchain, info *abi.SwapchainImageWaitInfo) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrWaitSwapchainImage"); res != abi.Success {
		return res
	}

	sc, ok := r.swapchain(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || info.Type != abi.TypeSwapchainImageWaitInfo {
		return abi.ErrorValidationFailure
	}
	if len(sc.acquired) == 0 || sc.waited {
		return abi.ErrorCallOrderInvalid
	}
	if r.holdImages {
		return abi.TimeoutExpired
	}
	sc.waited = true
	return abi.Success
}

func (r *Runtime) ReleaseSwapchainImage(h abi.Swapchain, info *abi.SwapchainImageReleaseInfo) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrReleaseSwapchainImage"); res != abi.Success {
		return res
	}

	sc, ok := r.swapchain(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info != nil && info.Type != abi.TypeSwapchainImageReleaseInfo {
		return abi.ErrorValidationFailure
	}
	if !sc.waited {
		return abi.ErrorCallOrderInvalid
	}
	sc.acquired = sc.acquired[1:]
	sc.waited = false
	sc.released = true
	return abi.Success
}
