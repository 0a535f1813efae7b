//go:build openxr

package loader

// #cgo LDFLAGS: -lopenxr_loader
// #include "gxr.h"
import "C"

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/openxr/abi"
)

// Runtime calls the Khronos loader. It holds no state of its own; every
// method converts its records to C memory, makes one call and copies the
// outputs back.
type Runtime struct{}

var _ abi.Runtime = (*Runtime)(nil)

// Available reports whether the package was built against the loader.
func Available() bool { return true }

// New returns a Runtime bound to the linked loader. The loader locates the
// active runtime lazily, on the first enumerate or create call.
func New() (abi.Runtime, error) {
	Logger().Debug("openxr loader linked")
	return &Runtime{}, nil
}

// arena owns the C allocations made for one call. Records built in it
// take caller Next pointers as they are, so those chains must be C
// memory too.
type arena struct {
	blocks []unsafe.Pointer
}

func allocN[T any](a *arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	p := C.calloc(C.size_t(n), C.size_t(unsafe.Sizeof(zero)))
	if p == nil {
		panic("loader: out of C memory")
	}
	a.blocks = append(a.blocks, p)
	return unsafe.Slice((*T)(p), n)
}

func alloc[T any](a *arena) *T {
	return &allocN[T](a, 1)[0]
}

func (a *arena) cstring(s string) *C.char {
	p := C.CString(s)
	a.blocks = append(a.blocks, unsafe.Pointer(p))
	return p
}

func (a *arena) cstrings(ss []string) **C.char {
	if len(ss) == 0 {
		return nil
	}
	out := allocN[*C.char](a, len(ss))
	for i, s := range ss {
		out[i] = a.cstring(s)
	}
	return &out[0]
}

func (a *arena) free() {
	for _, p := range a.blocks {
		C.free(p)
	}
	a.blocks = nil
}

// setHandle stores h into a handle-typed field of a record in C memory.
// Handles are 64 bits wide on every platform.
func setHandle[T any](field *T, h uint64) {
	*(*uint64)(unsafe.Pointer(field)) = h
}

// pod reinterprets plain float/int records whose Go and C layouts match.
func pod[To, From any](v From) To {
	return *(*To)(unsafe.Pointer(&v))
}

func first[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

func putChars(dst []C.char, src []byte) {
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), len(dst)), src)
}

func getChars(dst []byte, src []C.char) {
	copy(dst, unsafe.Slice((*byte)(unsafe.Pointer(&src[0])), len(src)))
}

func cCount(count *uint32) *C.uint32_t {
	return (*C.uint32_t)(unsafe.Pointer(count))
}

func filled(count *uint32, capacity uint32, buf int) int {
	if count == nil {
		return 0
	}
	return min(int(*count), int(capacity), buf)
}

func result(r C.XrResult) abi.Result {
	return abi.Result(r)
}

func (rt *Runtime) GetInstanceProcAddr(instance abi.Instance, name string, proc *abi.Proc) abi.Result {
	var a arena
	defer a.free()

	var fn C.uintptr_t
	r := result(C.gxr_GetInstanceProcAddr(C.uint64_t(instance), a.cstring(name), &fn))
	if proc != nil {
		*proc = abi.Proc(fn)
	}
	if r != abi.Success {
		Logger().Debug("proc lookup failed", zap.String("function", name), zap.Stringer("result", r))
	}
	return r
}

func (rt *Runtime) InvokeLoaderInit(proc abi.Proc, info *abi.LoaderInitInfo) abi.Result {
	if info == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.gxr_LoaderInitInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	c.applicationVM = info.ApplicationVM
	c.applicationContext = info.ApplicationContext
	return result(C.gxr_CallLoaderInit(C.uintptr_t(proc), c))
}

func (rt *Runtime) InvokeHandle(proc abi.Proc, handle uint64) abi.Result {
	return result(C.gxr_CallHandle(C.uintptr_t(proc), C.uint64_t(handle)))
}

func (rt *Runtime) InvokeCreatePassthroughFB(proc abi.Proc, session abi.Session, info *abi.PassthroughCreateInfoFB, out *abi.PassthroughFB) abi.Result {
	if info == nil || out == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrPassthroughCreateInfoFB](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	c.flags = C.XrPassthroughFlagsFB(info.Flags)

	var h C.uint64_t
	r := result(C.gxr_CallCreatePassthroughFB(C.uintptr_t(proc), C.uint64_t(session), c, &h))
	if r == abi.Success {
		*out = abi.PassthroughFB(h)
	}
	return r
}

func (rt *Runtime) InvokeCreatePassthroughLayerFB(proc abi.Proc, session abi.Session, info *abi.PassthroughLayerCreateInfoFB, out *abi.PassthroughLayerFB) abi.Result {
	if info == nil || out == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrPassthroughLayerCreateInfoFB](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	setHandle(&c.passthrough, uint64(info.Passthrough))
	c.flags = C.XrPassthroughFlagsFB(info.Flags)
	c.purpose = C.XrPassthroughLayerPurposeFB(info.Purpose)

	var h C.uint64_t
	r := result(C.gxr_CallCreatePassthroughLayerFB(C.uintptr_t(proc), C.uint64_t(session), c, &h))
	if r == abi.Success {
		*out = abi.PassthroughLayerFB(h)
	}
	return r
}

func (rt *Runtime) InvokePassthroughLayerSetStyleFB(proc abi.Proc, layer abi.PassthroughLayerFB, style *abi.PassthroughStyleFB) abi.Result {
	if style == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrPassthroughStyleFB](&a)
	c._type = C.XrStructureType(style.Type)
	c.next = style.Next
	c.textureOpacityFactor = C.float(style.TextureOpacityFactor)
	c.edgeColor = pod[C.XrColor4f](style.EdgeColor)
	return result(C.gxr_CallPassthroughLayerSetStyleFB(C.uintptr_t(proc), C.uint64_t(layer), c))
}
