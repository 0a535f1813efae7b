package abi

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a packed XR_MAKE_VERSION value: 16 bits major, 16 bits minor,
// 32 bits patch.
type Version uint64

// MakeVersion packs a version triple.
func MakeVersion(major, minor uint16, patch uint32) Version {
	return Version(uint64(major)<<48 | uint64(minor)<<32 | uint64(patch))
}

func (v Version) Major() uint16 { return uint16(v >> 48) }
func (v Version) Minor() uint16 { return uint16(v >> 32) }
func (v Version) Patch() uint32 { return uint32(v) }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// ParseVersion parses "major.minor.patch".
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return 0, fmt.Errorf("version %q: want major.minor.patch", s)
	}
	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return 0, fmt.Errorf("version %q: major: %w", s, err)
	}
	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return 0, fmt.Errorf("version %q: minor: %w", s, err)
	}
	patch, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("version %q: patch: %w", s, err)
	}
	return MakeVersion(uint16(major), uint16(minor), uint32(patch)), nil
}
