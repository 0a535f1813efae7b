package abi

import "fmt"

// NullHandle is the sentinel for "unbound" or "already destroyed".
const NullHandle = 0

// Opaque runtime-issued handles. The zero value is never a live object.
type (
	Instance           uint64
	Session            uint64
	Space              uint64
	Swapchain          uint64
	ActionSet          uint64
	Action             uint64
	PassthroughFB      uint64
	PassthroughLayerFB uint64
)

// Atoms issued by the runtime. Zero means unset.
type (
	SystemID uint64
	Path     uint64
)

// NullPath is XR_NULL_PATH.
const NullPath Path = 0

// Time is a runtime timestamp in nanoseconds.
type Time int64

// Duration is a span of runtime time in nanoseconds.
type Duration int64

const (
	NoDuration        Duration = 0
	InfiniteDuration  Duration = 0x7fffffffffffffff
	MinHapticDuration Duration = -1
)

// FrequencyUnspecified lets the runtime pick a haptic frequency.
const FrequencyUnspecified float32 = 0

// Bool32 is the native 32-bit boolean.
type Bool32 uint32

const (
	False Bool32 = 0
	True  Bool32 = 1
)

// Bool converts a Go bool.
func Bool(v bool) Bool32 {
	if v {
		return True
	}
	return False
}

// Go converts to a Go bool.
func (b Bool32) Go() bool { return b != False }

func (h Instance) String() string      { return fmt.Sprintf("XrInstance(%#x)", uint64(h)) }
func (h Session) String() string       { return fmt.Sprintf("XrSession(%#x)", uint64(h)) }
func (h Space) String() string         { return fmt.Sprintf("XrSpace(%#x)", uint64(h)) }
func (h Swapchain) String() string     { return fmt.Sprintf("XrSwapchain(%#x)", uint64(h)) }
func (h ActionSet) String() string     { return fmt.Sprintf("XrActionSet(%#x)", uint64(h)) }
func (h Action) String() string        { return fmt.Sprintf("XrAction(%#x)", uint64(h)) }
func (h PassthroughFB) String() string { return fmt.Sprintf("XrPassthroughFB(%#x)", uint64(h)) }
func (h PassthroughLayerFB) String() string {
	return fmt.Sprintf("XrPassthroughLayerFB(%#x)", uint64(h))
}
