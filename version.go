package openxr

import "github.com/wippyai/openxr/abi"

// Version is a packed OpenXR version number.
type Version = abi.Version

// CurrentAPIVersion is the API version requested when creating an instance.
var CurrentAPIVersion = abi.MakeVersion(1, 0, 34)

// MakeVersion packs major.minor.patch.
func MakeVersion(major, minor uint16, patch uint32) Version {
	return abi.MakeVersion(major, minor, patch)
}
