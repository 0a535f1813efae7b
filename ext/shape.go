package ext

import "github.com/wippyai/openxr/abi"

// Shape adapts a resolved Proc into a typed function F. The shape must
// match the signature of the native function the Proc was resolved from.
type Shape[F any] func(inv abi.ProcInvoker, proc abi.Proc) F

// Typed signatures for the extension functions the facade calls.
type (
	LoaderInitFunc             func(info *abi.LoaderInitInfo) abi.Result
	HandleFunc                 func(handle uint64) abi.Result
	CreatePassthroughFunc      func(session abi.Session, info *abi.PassthroughCreateInfoFB, out *abi.PassthroughFB) abi.Result
	CreatePassthroughLayerFunc func(session abi.Session, info *abi.PassthroughLayerCreateInfoFB, out *abi.PassthroughLayerFB) abi.Result
	SetPassthroughStyleFunc    func(layer abi.PassthroughLayerFB, style *abi.PassthroughStyleFB) abi.Result
)

// LoaderInit is the shape of xrInitializeLoaderKHR.
func LoaderInit(inv abi.ProcInvoker, proc abi.Proc) LoaderInitFunc {
	return func(info *abi.LoaderInitInfo) abi.Result {
		return inv.InvokeLoaderInit(proc, info)
	}
}

// HandleCall is the shape of functions taking a single handle: destroy,
// start, pause and resume.
func HandleCall(inv abi.ProcInvoker, proc abi.Proc) HandleFunc {
	return func(handle uint64) abi.Result {
		return inv.InvokeHandle(proc, handle)
	}
}

func CreatePassthrough(inv abi.ProcInvoker, proc abi.Proc) CreatePassthroughFunc {
	return func(session abi.Session, info *abi.PassthroughCreateInfoFB, out *abi.PassthroughFB) abi.Result {
		return inv.InvokeCreatePassthroughFB(proc, session, info, out)
	}
}

func CreatePassthroughLayer(inv abi.ProcInvoker, proc abi.Proc) CreatePassthroughLayerFunc {
	return func(session abi.Session, info *abi.PassthroughLayerCreateInfoFB, out *abi.PassthroughLayerFB) abi.Result {
		return inv.InvokeCreatePassthroughLayerFB(proc, session, info, out)
	}
}

func SetPassthroughStyle(inv abi.ProcInvoker, proc abi.Proc) SetPassthroughStyleFunc {
	return func(layer abi.PassthroughLayerFB, style *abi.PassthroughStyleFB) abi.Result {
		return inv.InvokePassthroughLayerSetStyleFB(proc, layer, style)
	}
}

// Raw hands back the address itself, for graphics-binding code that calls
// the function through its own means.
func Raw(_ abi.ProcInvoker, proc abi.Proc) abi.Proc {
	return proc
}
