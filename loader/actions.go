//go:build openxr

package loader

// #include "gxr.h"
import "C"

import (
	"unsafe"

	"github.com/wippyai/openxr/abi"
)

func (rt *Runtime) CreateActionSet(instance abi.Instance, info *abi.ActionSetCreateInfo, actionSet *abi.ActionSet) abi.Result {
	if info == nil || actionSet == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrActionSetCreateInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	putChars(c.actionSetName[:], info.ActionSetName[:])
	putChars(c.localizedActionSetName[:], info.LocalizedActionSetName[:])
	c.priority = C.uint32_t(info.Priority)

	var h C.uint64_t
	r := result(C.gxr_CreateActionSet(C.uint64_t(instance), c, &h))
	if r == abi.Success {
		*actionSet = abi.ActionSet(h)
	}
	return r
}

func (rt *Runtime) DestroyActionSet(actionSet abi.ActionSet) abi.Result {
	return result(C.gxr_DestroyActionSet(C.uint64_t(actionSet)))
}

func (rt *Runtime) CreateAction(actionSet abi.ActionSet, info *abi.ActionCreateInfo, action *abi.Action) abi.Result {
	if info == nil || action == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrActionCreateInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	putChars(c.actionName[:], info.ActionName[:])
	c.actionType = C.XrActionType(info.ActionType)
	paths := allocN[C.XrPath](&a, len(info.SubactionPaths))
	for i, p := range info.SubactionPaths {
		paths[i] = C.XrPath(p)
	}
	c.countSubactionPaths = C.uint32_t(len(paths))
	c.subactionPaths = first(paths)
	putChars(c.localizedActionName[:], info.LocalizedActionName[:])

	var h C.uint64_t
	r := result(C.gxr_CreateAction(C.uint64_t(actionSet), c, &h))
	if r == abi.Success {
		*action = abi.Action(h)
	}
	return r
}

func (rt *Runtime) DestroyAction(action abi.Action) abi.Result {
	return result(C.gxr_DestroyAction(C.uint64_t(action)))
}

func (rt *Runtime) SuggestInteractionProfileBindings(instance abi.Instance, info *abi.InteractionProfileSuggestedBinding) abi.Result {
	if info == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrInteractionProfileSuggestedBinding](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	c.interactionProfile = C.XrPath(info.InteractionProfile)
	bindings := allocN[C.XrActionSuggestedBinding](&a, len(info.SuggestedBindings))
	for i, b := range info.SuggestedBindings {
		setHandle(&bindings[i].action, uint64(b.Action))
		bindings[i].binding = C.XrPath(b.Binding)
	}
	c.countSuggestedBindings = C.uint32_t(len(bindings))
	c.suggestedBindings = first(bindings)
	return result(C.gxr_SuggestInteractionProfileBindings(C.uint64_t(instance), c))
}

func (rt *Runtime) AttachSessionActionSets(session abi.Session, info *abi.SessionActionSetsAttachInfo) abi.Result {
	if info == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrSessionActionSetsAttachInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	sets := allocN[C.XrActionSet](&a, len(info.ActionSets))
	for i, s := range info.ActionSets {
		setHandle(&sets[i], uint64(s))
	}
	c.countActionSets = C.uint32_t(len(sets))
	c.actionSets = first(sets)
	return result(C.gxr_AttachSessionActionSets(C.uint64_t(session), c))
}

func (rt *Runtime) GetCurrentInteractionProfile(session abi.Session, topLevelUserPath abi.Path, state *abi.InteractionProfileState) abi.Result {
	if state == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrInteractionProfileState](&a)
	c._type = C.XrStructureType(state.Type)
	c.next = state.Next
	r := result(C.gxr_GetCurrentInteractionProfile(C.uint64_t(session), C.XrPath(topLevelUserPath), c))
	if r == abi.Success {
		state.InteractionProfile = abi.Path(c.interactionProfile)
	}
	return r
}

func getInfo(a *arena, info *abi.ActionStateGetInfo) *C.XrActionStateGetInfo {
	c := alloc[C.XrActionStateGetInfo](a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	setHandle(&c.action, uint64(info.Action))
	c.subactionPath = C.XrPath(info.SubactionPath)
	return c
}

func (rt *Runtime) GetActionStateBoolean(session abi.Session, info *abi.ActionStateGetInfo, state *abi.ActionStateBoolean) abi.Result {
	if info == nil || state == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	s := alloc[C.XrActionStateBoolean](&a)
	s._type = C.XrStructureType(state.Type)
	s.next = state.Next
	r := result(C.gxr_GetActionStateBoolean(C.uint64_t(session), getInfo(&a, info), s))
	if r == abi.Success {
		state.CurrentState = abi.Bool32(s.currentState)
		state.ChangedSinceLastSync = abi.Bool32(s.changedSinceLastSync)
		state.LastChangeTime = abi.Time(s.lastChangeTime)
		state.IsActive = abi.Bool32(s.isActive)
	}
	return r
}

func (rt *Runtime) GetActionStateFloat(session abi.Session, info *abi.ActionStateGetInfo, state *abi.ActionStateFloat) abi.Result {
	if info == nil || state == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	s := alloc[C.XrActionStateFloat](&a)
	s._type = C.XrStructureType(state.Type)
	s.next = state.Next
	r := result(C.gxr_GetActionStateFloat(C.uint64_t(session), getInfo(&a, info), s))
	if r == abi.Success {
		state.CurrentState = float32(s.currentState)
		state.ChangedSinceLastSync = abi.Bool32(s.changedSinceLastSync)
		state.LastChangeTime = abi.Time(s.lastChangeTime)
		state.IsActive = abi.Bool32(s.isActive)
	}
	return r
}

func (rt *Runtime) GetActionStateVector2f(session abi.Session, info *abi.ActionStateGetInfo, state *abi.ActionStateVector2f) abi.Result {
	if info == nil || state == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	s := alloc[C.XrActionStateVector2f](&a)
	s._type = C.XrStructureType(state.Type)
	s.next = state.Next
	r := result(C.gxr_GetActionStateVector2f(C.uint64_t(session), getInfo(&a, info), s))
	if r == abi.Success {
		state.CurrentState = pod[abi.Vector2f](s.currentState)
		state.ChangedSinceLastSync = abi.Bool32(s.changedSinceLastSync)
		state.LastChangeTime = abi.Time(s.lastChangeTime)
		state.IsActive = abi.Bool32(s.isActive)
	}
	return r
}

func (rt *Runtime) GetActionStatePose(session abi.Session, info *abi.ActionStateGetInfo, state *abi.ActionStatePose) abi.Result {
	if info == nil || state == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	s := alloc[C.XrActionStatePose](&a)
	s._type = C.XrStructureType(state.Type)
	s.next = state.Next
	r := result(C.gxr_GetActionStatePose(C.uint64_t(session), getInfo(&a, info), s))
	if r == abi.Success {
		state.IsActive = abi.Bool32(s.isActive)
	}
	return r
}

func (rt *Runtime) SyncActions(session abi.Session, info *abi.ActionsSyncInfo) abi.Result {
	if info == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrActionsSyncInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	active := allocN[C.XrActiveActionSet](&a, len(info.ActiveActionSets))
	for i, s := range info.ActiveActionSets {
		setHandle(&active[i].actionSet, uint64(s.ActionSet))
		active[i].subactionPath = C.XrPath(s.SubactionPath)
	}
	c.countActiveActionSets = C.uint32_t(len(active))
	c.activeActionSets = first(active)
	return result(C.gxr_SyncActions(C.uint64_t(session), c))
}

func (rt *Runtime) EnumerateBoundSourcesForAction(session abi.Session, info *abi.BoundSourcesForActionEnumerateInfo, capacity uint32, count *uint32, sources []abi.Path) abi.Result {
	if info == nil || int(capacity) > len(sources) {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrBoundSourcesForActionEnumerateInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	setHandle(&c.action, uint64(info.Action))
	return result(C.gxr_EnumerateBoundSourcesForAction(C.uint64_t(session), c, C.uint32_t(capacity), cCount(count),
		(*C.XrPath)(unsafe.Pointer(first(sources)))))
}

func hapticInfo(a *arena, info *abi.HapticActionInfo) *C.XrHapticActionInfo {
	c := alloc[C.XrHapticActionInfo](a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	setHandle(&c.action, uint64(info.Action))
	c.subactionPath = C.XrPath(info.SubactionPath)
	return c
}

func (rt *Runtime) ApplyHapticFeedback(session abi.Session, info *abi.HapticActionInfo, vibration *abi.HapticVibration) abi.Result {
	if info == nil || vibration == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	v := alloc[C.XrHapticVibration](&a)
	v._type = C.XrStructureType(vibration.Type)
	v.next = vibration.Next
	v.duration = C.XrDuration(vibration.Duration)
	v.frequency = C.float(vibration.Frequency)
	v.amplitude = C.float(vibration.Amplitude)
	return result(C.gxr_ApplyHapticFeedback(C.uint64_t(session), hapticInfo(&a, info), v))
}

func (rt *Runtime) StopHapticFeedback(session abi.Session, info *abi.HapticActionInfo) abi.Result {
	if info == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	return result(C.gxr_StopHapticFeedback(C.uint64_t(session), hapticInfo(&a, info)))
}
