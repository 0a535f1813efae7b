package sim

import (
	"go.uber.org/zap"

	"github.com/wippyai/openxr"
	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/ext"
	"github.com/wippyai/openxr/resource"
)

// procBase is the address of the first extension function. Addresses
// are spaced like real code pointers so a stray zero is easy to spot.
const procBase abi.Proc = 0x7f0000001000

// extensionProcs lists the functions reachable through
// xrGetInstanceProcAddr and the extension each belongs to. A function's
// address is derived from its position.
var extensionProcs = []struct {
	name      string
	extension string
}{
	{ext.InitializeLoaderKHR, openxr.KHRLoaderInit},
	{ext.CreatePassthroughFB, openxr.FBPassthrough},
	{ext.DestroyPassthroughFB, openxr.FBPassthrough},
	{ext.PassthroughStartFB, openxr.FBPassthrough},
	{ext.PassthroughPauseFB, openxr.FBPassthrough},
	{ext.CreatePassthroughLayerFB, openxr.FBPassthrough},
	{ext.DestroyPassthroughLayerFB, openxr.FBPassthrough},
	{ext.PassthroughLayerPauseFB, openxr.FBPassthrough},
	{ext.PassthroughLayerResumeFB, openxr.FBPassthrough},
	{ext.PassthroughLayerSetStyleFB, openxr.FBPassthrough},
	{ext.GetVulkanGraphicsRequirements, openxr.KHRVulkanEnable},
}

func procAddr(i int) abi.Proc {
	return procBase + abi.Proc(i)*0x40
}

// procName maps an address handed out by GetInstanceProcAddr back to
// its function name.
func procName(proc abi.Proc) (string, bool) {
	if proc < procBase || (proc-procBase)%0x40 != 0 {
		return "", false
	}
	i := int((proc - procBase) / 0x40)
	if i >= len(extensionProcs) {
		return "", false
	}
	return extensionProcs[i].name, true
}

// GetInstanceProcAddr resolves extension functions. With the null
// instance only xrInitializeLoaderKHR resolves, and only when the
// profile enables loader init. Otherwise the function's extension must
// be enabled on the instance.
func (r *Runtime) GetInstanceProcAddr(h abi.Instance, name string, proc *abi.Proc) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrGetInstanceProcAddr"); res != abi.Success {
		return res
	}

	if proc == nil {
		return abi.ErrorValidationFailure
	}
	*proc = 0
	if res, ok := r.missingProcs[name]; ok {
		return res
	}

	index := -1
	for i, p := range extensionProcs {
		if p.name == name {
			index = i
		}
	}
	if index < 0 {
		return abi.ErrorFunctionUnsupported
	}
	entry := extensionProcs[index]

	if h == abi.NullHandle {
		if entry.name != ext.InitializeLoaderKHR {
			return abi.ErrorHandleInvalid
		}
		if !r.profile.LoaderInit {
			return abi.ErrorFunctionUnsupported
		}
	} else {
		in, ok := r.instance(h)
		if !ok {
			return abi.ErrorHandleInvalid
		}
		if entry.name != ext.InitializeLoaderKHR && !in.extensions[entry.extension] {
			return abi.ErrorFunctionUnsupported
		}
	}

	if r.nullProcs[name] {
		return abi.Success
	}
	*proc = procAddr(index)
	return abi.Success
}

// dispatch resolves proc for an Invoke call and checks that it has the
// shape the caller invoked it with.
func (r *Runtime) dispatch(proc abi.Proc, shape ...string) (string, abi.Result) {
	name, ok := procName(proc)
	if !ok {
		return "", abi.ErrorFunctionUnsupported
	}
	for _, s := range shape {
		if s == name {
			r.calls[name]++
			if res, ok := r.failures[name]; ok {
				return name, res
			}
			return name, abi.Success
		}
	}
	Logger().Warn("proc invoked with the wrong shape", zap.String("function", name))
	return name, abi.ErrorValidationFailure
}

func (r *Runtime) InvokeLoaderInit(proc abi.Proc, info *abi.LoaderInitInfo) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, res := r.dispatch(proc, ext.InitializeLoaderKHR); res != abi.Success {
		return res
	}

	if info == nil || info.Type != abi.TypeLoaderInitInfoAndroidKHR {
		return abi.ErrorValidationFailure
	}
	if r.loaderInitResult != abi.Success {
		return r.loaderInitResult
	}
	r.loaderInitialized = true
	return abi.Success
}

func (r *Runtime) InvokeHandle(proc abi.Proc, handle uint64) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	name, res := r.dispatch(proc,
		ext.DestroyPassthroughFB, ext.PassthroughStartFB, ext.PassthroughPauseFB,
		ext.DestroyPassthroughLayerFB, ext.PassthroughLayerPauseFB, ext.PassthroughLayerResumeFB)
	if res != abi.Success {
		return res
	}

	switch name {
	case ext.DestroyPassthroughFB:
		return r.remove(resource.KindPassthrough, handle)
	case ext.DestroyPassthroughLayerFB:
		return r.remove(resource.KindPassthroughLayer, handle)
	case ext.PassthroughStartFB, ext.PassthroughPauseFB:
		pt, ok := r.passthrough(abi.PassthroughFB(handle))
		if !ok {
			return abi.ErrorHandleInvalid
		}
		return setRunning(&pt.running, name == ext.PassthroughStartFB)
	default:
		pl, ok := r.passthroughLayer(abi.PassthroughLayerFB(handle))
		if !ok {
			return abi.ErrorHandleInvalid
		}
		return setRunning(&pl.running, name == ext.PassthroughLayerResumeFB)
	}
}

// setRunning rejects starting what runs and pausing what is paused.
func setRunning(running *bool, want bool) abi.Result {
	if *running == want {
		return abi.ErrorUnexpectedStatePassthroughFB
	}
	*running = want
	return abi.Success
}

func (r *Runtime) passthrough(h abi.PassthroughFB) (*passthrough, bool) {
	return lookup[*passthrough](r, uint64(h), resource.KindPassthrough)
}

func (r *Runtime) passthroughLayer(h abi.PassthroughLayerFB) (*passthroughLayer, bool) {
	return lookup[*passthroughLayer](r, uint64(h), resource.KindPassthroughLayer)
}

// InvokeCreatePassthroughFB allows one passthrough feature per session.
func (r *Runtime) InvokeCreatePassthroughFB(proc abi.Proc, h abi.Session, info *abi.PassthroughCreateInfoFB, out *abi.PassthroughFB) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, res := r.dispatch(proc, ext.CreatePassthroughFB); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || out == nil || info.Type != abi.TypePassthroughCreateInfoFB {
		return abi.ErrorValidationFailure
	}
	if len(children[*passthrough](r, uint64(h), resource.KindPassthrough)) > 0 {
		return abi.ErrorFeatureAlreadyCreatedPassthroughFB
	}

	pt := &passthrough{sess: s, running: info.Flags&abi.PassthroughIsRunningAtCreationFB != 0}
	ph, res := r.insert(resource.KindPassthrough, uint64(h), pt)
	if res != abi.Success {
		return res
	}
	pt.handle = abi.PassthroughFB(ph)
	*out = pt.handle
	return abi.Success
}

// InvokeCreatePassthroughLayerFB creates a layer owned by its passthrough
// feature, so destroying the feature destroys its layers.
func (r *Runtime) InvokeCreatePassthroughLayerFB(proc abi.Proc, h abi.Session, info *abi.PassthroughLayerCreateInfoFB, out *abi.PassthroughLayerFB) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, res := r.dispatch(proc, ext.CreatePassthroughLayerFB); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || out == nil || info.Type != abi.TypePassthroughLayerCreateInfoFB {
		return abi.ErrorValidationFailure
	}
	pt, ok := r.passthrough(info.Passthrough)
	if !ok || pt.sess != s {
		return abi.ErrorHandleInvalid
	}
	switch info.Purpose {
	case abi.PassthroughLayerPurposeReconstructionFB, abi.PassthroughLayerPurposeProjectedFB:
	default:
		return abi.ErrorValidationFailure
	}

	pl := &passthroughLayer{
		pt:      pt,
		purpose: info.Purpose,
		running: info.Flags&abi.PassthroughIsRunningAtCreationFB != 0,
		style:   abi.PassthroughStyleFB{Type: abi.TypePassthroughStyleFB, TextureOpacityFactor: 1},
	}
	lh, res := r.insert(resource.KindPassthroughLayer, uint64(pt.handle), pl)
	if res != abi.Success {
		return res
	}
	pl.handle = abi.PassthroughLayerFB(lh)
	*out = pl.handle
	return abi.Success
}

func (r *Runtime) InvokePassthroughLayerSetStyleFB(proc abi.Proc, layer abi.PassthroughLayerFB, style *abi.PassthroughStyleFB) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, res := r.dispatch(proc, ext.PassthroughLayerSetStyleFB); res != abi.Success {
		return res
	}

	pl, ok := r.passthroughLayer(layer)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if style == nil || style.Type != abi.TypePassthroughStyleFB {
		return abi.ErrorValidationFailure
	}
	if style.TextureOpacityFactor < 0 || style.TextureOpacityFactor > 1 {
		return abi.ErrorValidationFailure
	}
	pl.style = *style
	pl.style.Next = nil
	return abi.Success
}

// PassthroughRunning reports whether a passthrough feature is running.
func (r *Runtime) PassthroughRunning(h abi.PassthroughFB) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	pt, ok := r.passthrough(h)
	return ok && pt.running
}

// PassthroughLayerStyle returns the last style applied to a layer.
func (r *Runtime) PassthroughLayerStyle(h abi.PassthroughLayerFB) (abi.PassthroughStyleFB, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pl, ok := r.passthroughLayer(h)
	if !ok {
		return abi.PassthroughStyleFB{}, false
	}
	return pl.style, true
}
