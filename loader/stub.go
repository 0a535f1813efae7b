//go:build !openxr

package loader

import (
	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
)

// Available reports whether the package was built against the loader.
func Available() bool { return false }

// New always fails in builds without the openxr tag.
func New() (abi.Runtime, error) {
	return nil, errors.Unsupported(errors.PhaseLoader, "built without the openxr tag")
}
