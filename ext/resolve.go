package ext

import (
	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
)

// Lookup performs one xrGetInstanceProcAddr call. A failed status or a
// null address is reported as errors.KindProcUnavailable.
func Lookup(rt abi.Runtime, instance abi.Instance, name string) (abi.Proc, error) {
	var proc abi.Proc
	if r := rt.GetInstanceProcAddr(instance, name, &proc); r != abi.Success {
		return 0, errors.ProcUnavailable(name, r)
	}
	if proc == 0 {
		return 0, errors.ProcUnavailable(name, abi.Success)
	}
	return proc, nil
}

// Resolve looks up name against instance and adapts it with shape.
// There is no retry and no fallback to a core function.
func Resolve[F any](rt abi.Runtime, instance abi.Instance, name string, shape Shape[F]) (F, error) {
	proc, err := Lookup(rt, instance, name)
	if err != nil {
		var zero F
		return zero, err
	}
	return shape(rt, proc), nil
}
