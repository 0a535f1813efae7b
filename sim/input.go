package sim

import (
	"math"

	"github.com/wippyai/openxr/abi"
)

// input is the injected state of one source path. Boolean and float
// sources use X only.
type input struct {
	value   abi.Vector2f
	pose    abi.Posef
	hasPose bool
}

// SetBoolean injects a button state at a full source path such as
// /user/hand/right/input/select/click.
func (r *Runtime) SetBoolean(path string, pressed bool) {
	var x float32
	if pressed {
		x = 1
	}
	r.setValue(path, abi.Vector2f{X: x})
}

// SetFloat injects an analog value, e.g. a trigger.
func (r *Runtime) SetFloat(path string, v float32) {
	r.setValue(path, abi.Vector2f{X: v})
}

// SetVector2 injects a thumbstick or trackpad position.
func (r *Runtime) SetVector2(path string, v abi.Vector2f) {
	r.setValue(path, v)
}

// SetPose injects a tracked pose in stage space, e.g. at
// /user/hand/left/input/grip/pose.
func (r *Runtime) SetPose(path string, pose abi.Posef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in := r.input[path]
	in.pose = pose
	in.hasPose = true
	r.input[path] = in
}

// ClearInput removes all injected state for path.
func (r *Runtime) ClearInput(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.input, path)
}

func (r *Runtime) setValue(path string, v abi.Vector2f) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in := r.input[path]
	in.value = v
	r.input[path] = in
}

// HapticEvent is one recorded haptic request.
type HapticEvent struct {
	Action        abi.Action
	SubactionPath abi.Path
	Time          abi.Time
	Duration      abi.Duration
	Frequency     float32
	Amplitude     float32
	Stop          bool
}

// Haptics returns the haptic requests received so far, oldest first.
func (r *Runtime) Haptics() []HapticEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]HapticEvent(nil), r.haptics...)
}

type stateKey struct {
	action    abi.Action
	subaction abi.Path
}

// actionState is one action's value as of the last SyncActions.
// Boolean actions store 0 or 1 in value.X.
type actionState struct {
	value      abi.Vector2f
	lastChange abi.Time
	active     bool
	changed    bool
}

func magnitude(v abi.Vector2f) float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// merge combines two states of the same action: any pressed button
// wins, and analog values keep the larger magnitude.
func merge(t abi.ActionType, a, b actionState) actionState {
	if !a.active {
		return b
	}
	if !b.active {
		return a
	}
	switch t {
	case abi.ActionTypeBooleanInput:
		if b.value.X > a.value.X {
			return b
		}
	case abi.ActionTypeFloatInput:
		if math.Abs(float64(b.value.X)) > math.Abs(float64(a.value.X)) {
			return b
		}
	case abi.ActionTypeVector2fInput:
		if magnitude(b.value) > magnitude(a.value) {
			return b
		}
	}
	return a
}
