package sim

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/resource"
)

func (r *Runtime) actionSet(h abi.ActionSet) (*actionSet, bool) {
	return lookup[*actionSet](r, uint64(h), resource.KindActionSet)
}

func (r *Runtime) action(h abi.Action) (*action, bool) {
	return lookup[*action](r, uint64(h), resource.KindAction)
}

func (r *Runtime) CreateActionSet(h abi.Instance, info *abi.ActionSetCreateInfo, out *abi.ActionSet) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrCreateActionSet"); res != abi.Success {
		return res
	}

	in, ok := r.instance(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || out == nil || info.Type != abi.TypeActionSetCreateInfo {
		return abi.ErrorValidationFailure
	}
	name := abi.GoString(info.ActionSetName[:])
	localized := abi.GoString(info.LocalizedActionSetName[:])
	if !validName(name) {
		return abi.ErrorNameInvalid
	}
	if localized == "" {
		return abi.ErrorLocalizedNameInvalid
	}
	for _, other := range children[*actionSet](r, uint64(h), resource.KindActionSet) {
		if other.name == name {
			return abi.ErrorNameDuplicated
		}
		if other.localizedName == localized {
			return abi.ErrorLocalizedNameDuplicated
		}
	}

	set := &actionSet{inst: in, name: name, localizedName: localized, priority: info.Priority}
	sh, res := r.insert(resource.KindActionSet, uint64(h), set)
	if res != abi.Success {
		return res
	}
	set.handle = abi.ActionSet(sh)
	*out = set.handle
	return abi.Success
}

func (r *Runtime) DestroyActionSet(h abi.ActionSet) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrDestroyActionSet"); res != abi.Success {
		return res
	}
	return r.remove(resource.KindActionSet, uint64(h))
}

func (r *Runtime) CreateAction(h abi.ActionSet, info *abi.ActionCreateInfo, out *abi.Action) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrCreateAction"); res != abi.Success {
		return res
	}

	set, ok := r.actionSet(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || out == nil || info.Type != abi.TypeActionCreateInfo {
		return abi.ErrorValidationFailure
	}
	if set.attached {
		return abi.ErrorActionSetsAlreadyAttached
	}
	switch info.ActionType {
	case abi.ActionTypeBooleanInput, abi.ActionTypeFloatInput, abi.ActionTypeVector2fInput,
		abi.ActionTypePoseInput, abi.ActionTypeVibrationOutput:
	default:
		return abi.ErrorValidationFailure
	}
	name := abi.GoString(info.ActionName[:])
	localized := abi.GoString(info.LocalizedActionName[:])
	if !validName(name) {
		return abi.ErrorNameInvalid
	}
	if localized == "" {
		return abi.ErrorLocalizedNameInvalid
	}
	for _, other := range children[*action](r, uint64(h), resource.KindAction) {
		if other.name == name {
			return abi.ErrorNameDuplicated
		}
		if other.localizedName == localized {
			return abi.ErrorLocalizedNameDuplicated
		}
	}
	seen := make(map[abi.Path]bool, len(info.SubactionPaths))
	for _, p := range info.SubactionPaths {
		text, ok := set.inst.paths.text(p)
		if !ok {
			return abi.ErrorPathInvalid
		}
		if !isTopLevelPath(text) || seen[p] {
			return abi.ErrorPathUnsupported
		}
		seen[p] = true
	}

	a := &action{
		set:           set,
		name:          name,
		localizedName: localized,
		actionType:    info.ActionType,
		subactions:    append([]abi.Path(nil), info.SubactionPaths...),
	}
	ah, res := r.insert(resource.KindAction, uint64(h), a)
	if res != abi.Success {
		return res
	}
	a.handle = abi.Action(ah)
	*out = a.handle
	return abi.Success
}

func (r *Runtime) DestroyAction(h abi.Action) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrDestroyAction"); res != abi.Success {
		return res
	}
	return r.remove(resource.KindAction, uint64(h))
}

// SuggestInteractionProfileBindings validates every binding before any is
// stored, so a rejected call leaves the profile's previous bindings in
// place.
func (r *Runtime) SuggestInteractionProfileBindings(h abi.Instance, info *abi.InteractionProfileSuggestedBinding) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrSuggestInteractionProfileBindings"); res != abi.Success {
		return res
	}

	in, ok := r.instance(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || info.Type != abi.TypeInteractionProfileSuggestedBinding || len(info.SuggestedBindings) == 0 {
		return abi.ErrorValidationFailure
	}
	if in.attached {
		return abi.ErrorActionSetsAlreadyAttached
	}
	if res := r.checkBindings(in, info); res != abi.Success {
		// A rejected submission leaves the profile with no bindings.
		in.dropBindings(info.InteractionProfile)
		return res
	}

	if _, ok := in.bindings[info.InteractionProfile]; !ok {
		in.profileOrder = append(in.profileOrder, info.InteractionProfile)
	}
	in.bindings[info.InteractionProfile] = append([]abi.ActionSuggestedBinding(nil), info.SuggestedBindings...)
	return abi.Success
}

func (r *Runtime) checkBindings(in *instance, info *abi.InteractionProfileSuggestedBinding) abi.Result {
	profile, ok := in.paths.text(info.InteractionProfile)
	if !ok {
		return abi.ErrorPathInvalid
	}
	if !r.profile.supportsInteractionProfile(profile) {
		return abi.ErrorPathUnsupported
	}
	for _, b := range info.SuggestedBindings {
		a, ok := r.action(b.Action)
		if !ok || a.set.inst != in {
			return abi.ErrorHandleInvalid
		}
		text, ok := in.paths.text(b.Binding)
		if !ok {
			return abi.ErrorPathInvalid
		}
		if res := r.checkBinding(in, profile, a, text); res != abi.Success {
			Logger().Debug("binding rejected",
				zap.String("profile", profile),
				zap.String("binding", text),
				zap.Stringer("result", res))
			return res
		}
	}
	return abi.Success
}

// checkBinding requires a binding under a top-level user path, naming a
// component of the interaction profile, and under one of the action's
// subaction paths when it declares any.
func (r *Runtime) checkBinding(in *instance, profile string, a *action, binding string) abi.Result {
	topLevel := ""
	for _, p := range topLevelPaths {
		if underPath(binding, p) && binding != p {
			topLevel = p
		}
	}
	if topLevel == "" {
		return abi.ErrorPathUnsupported
	}
	if !r.profile.hasComponent(profile, strings.TrimPrefix(binding, topLevel)) {
		return abi.ErrorPathUnsupported
	}
	if len(a.subactions) == 0 {
		return abi.Success
	}
	for _, sub := range a.subactions {
		if text, _ := in.paths.text(sub); underPath(binding, text) {
			return abi.Success
		}
	}
	return abi.ErrorPathUnsupported
}

// AttachSessionActionSets freezes the sets and picks the first suggested
// interaction profile that binds any of their actions.
func (r *Runtime) AttachSessionActionSets(h abi.Session, info *abi.SessionActionSetsAttachInfo) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrAttachSessionActionSets"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || info.Type != abi.TypeSessionActionSetsAttachInfo || len(info.ActionSets) == 0 {
		return abi.ErrorValidationFailure
	}
	if len(s.attachedSets) > 0 {
		return abi.ErrorActionSetsAlreadyAttached
	}
	sets := make([]*actionSet, len(info.ActionSets))
	for i, handle := range info.ActionSets {
		set, ok := r.actionSet(handle)
		if !ok || set.inst != s.inst {
			return abi.ErrorHandleInvalid
		}
		sets[i] = set
	}

	for _, set := range sets {
		set.attached = true
		s.attachedSets = append(s.attachedSets, set.handle)
	}
	s.inst.attached = true
	s.profile = r.pickProfile(s)
	if s.profile != abi.NullPath {
		var buf abi.EventDataBuffer
		abi.EventDataInteractionProfileChanged{Session: s.handle}.Encode(&buf)
		s.inst.push(buf)
	}
	return abi.Success
}

func (r *Runtime) pickProfile(s *session) abi.Path {
	for _, profile := range s.inst.profileOrder {
		for _, b := range s.inst.bindings[profile] {
			if a, ok := r.action(b.Action); ok && s.attachedTo(a.set.handle) {
				return profile
			}
		}
	}
	return abi.NullPath
}

// boundPaths returns the source paths bound to a in the session's
// current interaction profile.
func (r *Runtime) boundPaths(s *session, a *action) []string {
	if s.profile == abi.NullPath {
		return nil
	}
	var out []string
	for _, b := range s.inst.bindings[s.profile] {
		if b.Action != a.handle {
			continue
		}
		if text, ok := s.inst.paths.text(b.Binding); ok {
			out = append(out, text)
		}
	}
	return out
}

func (r *Runtime) filteredPaths(s *session, a *action, filter abi.Path) []string {
	paths := r.boundPaths(s, a)
	if filter == abi.NullPath {
		return paths
	}
	prefix, _ := s.inst.paths.text(filter)
	out := paths[:0:0]
	for _, p := range paths {
		if underPath(p, prefix) {
			out = append(out, p)
		}
	}
	return out
}

// evaluate reads the injected input for a's bindings under filter. A
// bound source is active whether or not input was injected; pose
// actions additionally need an injected pose.
func (r *Runtime) evaluate(s *session, a *action, filter abi.Path) actionState {
	var st actionState
	for _, p := range r.filteredPaths(s, a, filter) {
		in := r.input[p]
		cur := actionState{active: true}
		switch a.actionType {
		case abi.ActionTypeBooleanInput:
			if in.value.X >= 0.5 {
				cur.value.X = 1
			}
		case abi.ActionTypeFloatInput:
			cur.value.X = in.value.X
		case abi.ActionTypeVector2fInput:
			cur.value = in.value
		case abi.ActionTypePoseInput:
			cur.active = in.hasPose
		}
		st = merge(a.actionType, st, cur)
	}
	return st
}

// actionPose returns the live pose for an action space.
func (r *Runtime) actionPose(s *session, a *action, filter abi.Path) (abi.Posef, bool) {
	if !s.attachedTo(a.set.handle) {
		return abi.Posef{}, false
	}
	for _, p := range r.filteredPaths(s, a, filter) {
		if in, ok := r.input[p]; ok && in.hasPose {
			return in.pose, true
		}
	}
	return abi.Posef{}, false
}

// SyncActions takes a new snapshot for the actions of the active sets.
// Actions of sets not listed become inactive.
func (r *Runtime) SyncActions(h abi.Session, info *abi.ActionsSyncInfo) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrSyncActions"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || info.Type != abi.TypeActionsSyncInfo {
		return abi.ErrorValidationFailure
	}
	if len(s.attachedSets) == 0 {
		return abi.ErrorActionSetNotAttached
	}
	for _, as := range info.ActiveActionSets {
		if !s.attachedTo(as.ActionSet) {
			return abi.ErrorActionSetNotAttached
		}
		if as.SubactionPath != abi.NullPath {
			text, ok := s.inst.paths.text(as.SubactionPath)
			if !ok {
				return abi.ErrorPathInvalid
			}
			if !isTopLevelPath(text) {
				return abi.ErrorPathUnsupported
			}
		}
	}

	prev := s.snapshot
	s.snapshot = make(map[stateKey]actionState)
	s.lastSync = r.clock
	if s.state != abi.SessionStateFocused {
		return abi.SessionNotFocused
	}

	for _, as := range info.ActiveActionSets {
		for _, a := range children[*action](r, uint64(as.ActionSet), resource.KindAction) {
			subs := append([]abi.Path{abi.NullPath}, a.subactions...)
			for _, sub := range subs {
				filter := sub
				if as.SubactionPath != abi.NullPath {
					if sub != abi.NullPath && sub != as.SubactionPath {
						continue
					}
					filter = as.SubactionPath
				}
				key := stateKey{action: a.handle, subaction: sub}
				s.snapshot[key] = merge(a.actionType, s.snapshot[key], r.evaluate(s, a, filter))
			}
		}
	}

	for key, st := range s.snapshot {
		if !st.active {
			continue
		}
		old, ok := prev[key]
		switch {
		case !ok || !old.active:
			st.lastChange = r.clock
		case old.value != st.value:
			st.changed = true
			st.lastChange = r.clock
		default:
			st.lastChange = old.lastChange
		}
		s.snapshot[key] = st
	}
	return abi.Success
}

// stateOf checks a state query and returns the snapshot entry.
func (r *Runtime) stateOf(h abi.Session, info *abi.ActionStateGetInfo, want abi.ActionType) (actionState, abi.Result) {
	s, ok := r.session(h)
	if !ok {
		return actionState{}, abi.ErrorHandleInvalid
	}
	if info == nil || info.Type != abi.TypeActionStateGetInfo {
		return actionState{}, abi.ErrorValidationFailure
	}
	a, ok := r.action(info.Action)
	if !ok {
		return actionState{}, abi.ErrorHandleInvalid
	}
	if !s.attachedTo(a.set.handle) {
		return actionState{}, abi.ErrorActionSetNotAttached
	}
	if a.actionType != want {
		return actionState{}, abi.ErrorActionTypeMismatch
	}
	if !a.hasSubaction(info.SubactionPath) {
		return actionState{}, abi.ErrorPathUnsupported
	}
	return s.snapshot[stateKey{action: a.handle, subaction: info.SubactionPath}], abi.Success
}

func (r *Runtime) GetActionStateBoolean(h abi.Session, info *abi.ActionStateGetInfo, state *abi.ActionStateBoolean) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrGetActionStateBoolean"); res != abi.Success {
		return res
	}

	if state == nil || state.Type != abi.TypeActionStateBoolean {
		return abi.ErrorValidationFailure
	}
	st, res := r.stateOf(h, info, abi.ActionTypeBooleanInput)
	if res != abi.Success {
		return res
	}
	state.CurrentState = abi.Bool(st.value.X != 0)
	state.ChangedSinceLastSync = abi.Bool(st.changed)
	state.LastChangeTime = st.lastChange
	state.IsActive = abi.Bool(st.active)
	return abi.Success
}

func (r *Runtime) GetActionStateFloat(h abi.Session, info *abi.ActionStateGetInfo, state *abi.ActionStateFloat) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrGetActionStateFloat"); res != abi.Success {
		return res
	}

	if state == nil || state.Type != abi.TypeActionStateFloat {
		return abi.ErrorValidationFailure
	}
	st, res := r.stateOf(h, info, abi.ActionTypeFloatInput)
	if res != abi.Success {
		return res
	}
	state.CurrentState = st.value.X
	state.ChangedSinceLastSync = abi.Bool(st.changed)
	state.LastChangeTime = st.lastChange
	state.IsActive = abi.Bool(st.active)
	return abi.Success
}

func (r *Runtime) GetActionStateVector2f(h abi.Session, info *abi.ActionStateGetInfo, state *abi.ActionStateVector2f) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrGetActionStateVector2f"); res != abi.Success {
		return res
	}

	if state == nil || state.Type != abi.TypeActionStateVector2f {
		return abi.ErrorValidationFailure
	}
	st, res := r.stateOf(h, info, abi.ActionTypeVector2fInput)
	if res != abi.Success {
		return res
	}
	state.CurrentState = st.value
	state.ChangedSinceLastSync = abi.Bool(st.changed)
	state.LastChangeTime = st.lastChange
	state.IsActive = abi.Bool(st.active)
	return abi.Success
}

func (r *Runtime) GetActionStatePose(h abi.Session, info *abi.ActionStateGetInfo, state *abi.ActionStatePose) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrGetActionStatePose"); res != abi.Success {
		return res
	}

	if state == nil || state.Type != abi.TypeActionStatePose {
		return abi.ErrorValidationFailure
	}
	st, res := r.stateOf(h, info, abi.ActionTypePoseInput)
	if res != abi.Success {
		return res
	}
	state.IsActive = abi.Bool(st.active)
	return abi.Success
}

func (r *Runtime) GetCurrentInteractionProfile(h abi.Session, topLevelUserPath abi.Path, state *abi.InteractionProfileState) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrGetCurrentInteractionProfile"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if state == nil || state.Type != abi.TypeInteractionProfileState {
		return abi.ErrorValidationFailure
	}
	top, ok := s.inst.paths.text(topLevelUserPath)
	if !ok {
		return abi.ErrorPathInvalid
	}
	if !isTopLevelPath(top) {
		return abi.ErrorPathUnsupported
	}
	if len(s.attachedSets) == 0 {
		return abi.ErrorActionSetNotAttached
	}

	state.InteractionProfile = abi.NullPath
	for _, b := range s.inst.bindings[s.profile] {
		if text, _ := s.inst.paths.text(b.Binding); underPath(text, top) {
			state.InteractionProfile = s.profile
			break
		}
	}
	return abi.Success
}

func (r *Runtime) EnumerateBoundSourcesForAction(h abi.Session, info *abi.BoundSourcesForActionEnumerateInfo, capacity uint32, count *uint32, sources []abi.Path) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrEnumerateBoundSourcesForAction"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || info.Type != abi.TypeBoundSourcesForActionEnumerateInfo {
		return abi.ErrorValidationFailure
	}
	a, ok := r.action(info.Action)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if !s.attachedTo(a.set.handle) {
		return abi.ErrorActionSetNotAttached
	}

	var src []abi.Path
	for _, b := range s.inst.bindings[s.profile] {
		if b.Action == a.handle {
			src = append(src, b.Binding)
		}
	}
	return fill(capacity, count, sources, src)
}

// haptic checks a haptic request against the session and action.
func (r *Runtime) haptic(h abi.Session, info *abi.HapticActionInfo) (*action, abi.Result) {
	s, ok := r.session(h)
	if !ok {
		return nil, abi.ErrorHandleInvalid
	}
	if info == nil || info.Type != abi.TypeHapticActionInfo {
		return nil, abi.ErrorValidationFailure
	}
	a, ok := r.action(info.Action)
	if !ok {
		return nil, abi.ErrorHandleInvalid
	}
	if !s.attachedTo(a.set.handle) {
		return nil, abi.ErrorActionSetNotAttached
	}
	if a.actionType != abi.ActionTypeVibrationOutput {
		return nil, abi.ErrorActionTypeMismatch
	}
	if !a.hasSubaction(info.SubactionPath) {
		return nil, abi.ErrorPathUnsupported
	}
	return a, abi.Success
}

func (r *Runtime) ApplyHapticFeedback(h abi.Session, info *abi.HapticActionInfo, vibration *abi.HapticVibration) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrApplyHapticFeedback"); res != abi.Success {
		return res
	}

	if vibration == nil || vibration.Type != abi.TypeHapticVibration {
		return abi.ErrorValidationFailure
	}
	a, res := r.haptic(h, info)
	if res != abi.Success {
		return res
	}
	r.haptics = append(r.haptics, HapticEvent{
		Action:        a.handle,
		SubactionPath: info.SubactionPath,
		Time:          r.clock,
		Duration:      vibration.Duration,
		Frequency:     vibration.Frequency,
		Amplitude:     vibration.Amplitude,
	})
	return abi.Success
}

func (r *Runtime) StopHapticFeedback(h abi.Session, info *abi.HapticActionInfo) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrStopHapticFeedback"); res != abi.Success {
		return res
	}

	a, res := r.haptic(h, info)
	if res != abi.Success {
		return res
	}
	r.haptics = append(r.haptics, HapticEvent{
		Action:        a.handle,
		SubactionPath: info.SubactionPath,
		Time:          r.clock,
		Stop:          true,
	})
	return abi.Success
}
