package xr

import (
	"unsafe"

	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
)

// SwapchainOptions describes a swapchain. Zero counts default to 1 and a
// zero Usage means color attachment plus sampled.
type SwapchainOptions struct {
	Next        unsafe.Pointer
	Format      int64
	Usage       abi.SwapchainUsageFlags
	Flags       abi.SwapchainCreateFlags
	Width       uint32
	Height      uint32
	SampleCount uint32
	FaceCount   uint32
	ArraySize   uint32
	MipCount    uint32
}

func orOne(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	return v
}

// CreateSwapchain creates a swapchain. Width, height and format are kept
// on the wrapper since the handle alone cannot report them.
func (s *Session) CreateSwapchain(opts SwapchainOptions) (*Swapchain, error) {
	usage := opts.Usage
	if usage == 0 {
		usage = abi.SwapchainUsageColorAttachment | abi.SwapchainUsageSampled
	}
	info := abi.SwapchainCreateInfo{
		Type:        abi.TypeSwapchainCreateInfo,
		Next:        opts.Next,
		CreateFlags: opts.Flags,
		UsageFlags:  usage,
		Format:      opts.Format,
		SampleCount: orOne(opts.SampleCount),
		Width:       opts.Width,
		Height:      opts.Height,
		FaceCount:   orOne(opts.FaceCount),
		ArraySize:   orOne(opts.ArraySize),
		MipCount:    orOne(opts.MipCount),
	}
	var h abi.Swapchain
	if r := s.rt().CreateSwapchain(s.live(), &info, &h); r != abi.Success {
		return nil, errors.New(errors.PhaseSwapchain, errors.KindRuntimeStatus).
			Function("xrCreateSwapchain").
			Result(r).
			Detail("%dx%d format %d", opts.Width, opts.Height, opts.Format).
			Build()
	}
	return &Swapchain{
		owned:     bind("swapchain", errors.PhaseSwapchain, h),
		sess:      s,
		width:     info.Width,
		height:    info.Height,
		format:    info.Format,
		arraySize: info.ArraySize,
	}, nil
}

// Swapchain is a live XrSwapchain. Per frame: AcquireImage, WaitImage,
// render into the returned index, ReleaseImage. The facade does not
// enforce the order; the runtime reports violations.
type Swapchain struct {
	owned[abi.Swapchain]
	sess      *Session
	format    int64
	width     uint32
	height    uint32
	arraySize uint32
}

func (sc *Swapchain) Width() uint32     { return sc.width }
func (sc *Swapchain) Height() uint32    { return sc.height }
func (sc *Swapchain) Format() int64     { return sc.format }
func (sc *Swapchain) ArraySize() uint32 { return sc.arraySize }

// Session returns the session the swapchain was created on.
func (sc *Swapchain) Session() *Session { return sc.sess }

// ImageCount returns the number of images in the swapchain. Retrieving
// the images themselves is graphics-API specific.
func (sc *Swapchain) ImageCount() (uint32, error) {
	var count uint32
	if r := sc.sess.rt().EnumerateSwapchainImages(sc.live(), 0, &count); r != abi.Success {
		return 0, errors.Status(errors.PhaseSwapchain, "xrEnumerateSwapchainImages", r)
	}
	return count, nil
}

// AcquireImage returns the index of the next image to render into. The
// runtime picks the index; do not assume round-robin.
func (sc *Swapchain) AcquireImage() (uint32, error) {
	info := abi.SwapchainImageAcquireInfo{Type: abi.TypeSwapchainImageAcquireInfo}
	var index uint32
	if r := sc.sess.rt().AcquireSwapchainImage(sc.live(), &info, &index); r != abi.Success {
		return 0, errors.Status(errors.PhaseSwapchain, "xrAcquireSwapchainImage", r)
	}
	return index, nil
}

// WaitImage blocks until the acquired image is writable or timeout
// elapses. A timeout is returned as an error carrying XR_TIMEOUT_EXPIRED.
func (sc *Swapchain) WaitImage(timeout abi.Duration) error {
	info := abi.SwapchainImageWaitInfo{Type: abi.TypeSwapchainImageWaitInfo, Timeout: timeout}
	return errors.Check(errors.PhaseSwapchain, "xrWaitSwapchainImage", sc.sess.rt().WaitSwapchainImage(sc.live(), &info))
}

// ReleaseImage hands the waited image back to the compositor.
func (sc *Swapchain) ReleaseImage() error {
	info := abi.SwapchainImageReleaseInfo{Type: abi.TypeSwapchainImageReleaseInfo}
	return errors.Check(errors.PhaseSwapchain, "xrReleaseSwapchainImage", sc.sess.rt().ReleaseSwapchainImage(sc.live(), &info))
}

// SubImage describes the full extent of one array slice of the swapchain.
func (sc *Swapchain) SubImage(arrayIndex uint32) abi.SwapchainSubImage {
	return abi.SwapchainSubImage{
		Swapchain: sc.Handle(),
		ImageRect: abi.Rect2Di{
			Extent: abi.Extent2Di{Width: int32(sc.width), Height: int32(sc.height)},
		},
		ImageArrayIndex: arrayIndex,
	}
}

// Close destroys the swapchain.
func (sc *Swapchain) Close() error {
	if sc == nil {
		return nil
	}
	return sc.release("xrDestroySwapchain", sc.sess.rt().DestroySwapchain)
}
