//go:build xrdebug

package xr

import (
	"testing"

	"github.com/wippyai/openxr/errors"
	"github.com/wippyai/openxr/sim"
)

func TestUseAfterClose_Panics(t *testing.T) {
	inst, err := Open(sim.New()).CreateInstance("app", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	inst.Close()

	defer func() {
		v := recover()
		err, ok := v.(*errors.Error)
		if !ok || err.Kind != errors.KindCallerDiscipline {
			t.Fatalf("recovered %#v", v)
		}
	}()
	inst.StringToPath("/user/hand/left")
}
