//go:build !openxr

package loader

import (
	"testing"

	"github.com/wippyai/openxr/errors"
)

func TestNew_Unavailable(t *testing.T) {
	if Available() {
		t.Fatal("Available() = true without the openxr tag")
	}
	rt, err := New()
	if rt != nil {
		t.Errorf("New() runtime = %v", rt)
	}
	if !errors.IsKind(err, errors.KindUnsupported) {
		t.Errorf("New() err = %v", err)
	}
}
