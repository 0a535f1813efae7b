package xr

import (
	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
)

// ActionSet is a live XrActionSet.
type ActionSet struct {
	owned[abi.ActionSet]
	inst     *Instance
	name     string
	priority uint32
}

// CreateActionSet creates an action set. Names longer than the runtime
// maximum are truncated; an empty localized name defaults to name.
func (i *Instance) CreateActionSet(priority uint32, name, localizedName string) (*ActionSet, error) {
	if localizedName == "" {
		localizedName = name
	}
	info := abi.ActionSetCreateInfo{
		Type:     abi.TypeActionSetCreateInfo,
		Priority: priority,
	}
	abi.PutName(info.ActionSetName[:], name)
	abi.PutName(info.LocalizedActionSetName[:], localizedName)

	var h abi.ActionSet
	if r := i.rt().CreateActionSet(i.live(), &info, &h); r != abi.Success {
		return nil, errors.New(errors.PhaseAction, errors.KindRuntimeStatus).
			Function("xrCreateActionSet").
			Result(r).
			Value(name).
			Build()
	}
	return &ActionSet{
		owned:    bind("action_set", errors.PhaseAction, h),
		inst:     i,
		name:     abi.GoString(info.ActionSetName[:]),
		priority: priority,
	}, nil
}

// Name returns the name as stored in the create info, after truncation.
func (as *ActionSet) Name() string { return as.name }

func (as *ActionSet) Priority() uint32 { return as.priority }

// Instance returns the instance the set was created on.
func (as *ActionSet) Instance() *Instance { return as.inst }

// Close destroys the action set and, per the runtime, its actions.
func (as *ActionSet) Close() error {
	if as == nil {
		return nil
	}
	return as.release("xrDestroyActionSet", as.inst.rt().DestroyActionSet)
}

// Action is a live XrAction.
type Action struct {
	owned[abi.Action]
	set        *ActionSet
	name       string
	actionType abi.ActionType
}

// CreateAction creates an action in the set. Names are truncated like
// action set names; an empty localized name defaults to name.
func (as *ActionSet) CreateAction(actionType abi.ActionType, name, localizedName string, subactionPaths []abi.Path) (*Action, error) {
	if localizedName == "" {
		localizedName = name
	}
	info := abi.ActionCreateInfo{
		Type:           abi.TypeActionCreateInfo,
		ActionType:     actionType,
		SubactionPaths: subactionPaths,
	}
	abi.PutName(info.ActionName[:], name)
	abi.PutName(info.LocalizedActionName[:], localizedName)

	var h abi.Action
	if r := as.inst.rt().CreateAction(as.live(), &info, &h); r != abi.Success {
		return nil, errors.New(errors.PhaseAction, errors.KindRuntimeStatus).
			Function("xrCreateAction").
			Result(r).
			Value(name).
			Build()
	}
	return &Action{
		owned:      bind("action", errors.PhaseAction, h),
		set:        as,
		name:       abi.GoString(info.ActionName[:]),
		actionType: actionType,
	}, nil
}

func (a *Action) Name() string         { return a.name }
func (a *Action) Type() abi.ActionType { return a.actionType }
func (a *Action) Set() *ActionSet      { return a.set }

// Close destroys the action.
func (a *Action) Close() error {
	if a == nil {
		return nil
	}
	return a.release("xrDestroyAction", a.set.inst.rt().DestroyAction)
}

// SuggestedBinding interns bindingPath and pairs it with action.
func (i *Instance) SuggestedBinding(action *Action, bindingPath string) (abi.ActionSuggestedBinding, error) {
	p, err := i.StringToPath(bindingPath)
	if err != nil {
		return abi.ActionSuggestedBinding{}, err
	}
	return abi.ActionSuggestedBinding{Action: action.live(), Binding: p}, nil
}

// SuggestInteractionProfileBindings submits the whole binding set for one
// interaction profile in a single call. After a failure no bindings are
// registered for the profile.
func (i *Instance) SuggestInteractionProfileBindings(profile abi.Path, bindings []abi.ActionSuggestedBinding) error {
	info := abi.InteractionProfileSuggestedBinding{
		Type:               abi.TypeInteractionProfileSuggestedBinding,
		InteractionProfile: profile,
		SuggestedBindings:  bindings,
	}
	return errors.Check(errors.PhaseAction, "xrSuggestInteractionProfileBindings",
		i.rt().SuggestInteractionProfileBindings(i.live(), &info))
}

// AttachActionSets attaches sets to the session. The runtime allows this
// once per session.
func (s *Session) AttachActionSets(sets ...*ActionSet) error {
	handles := make([]abi.ActionSet, len(sets))
	for i, as := range sets {
		handles[i] = as.live()
	}
	info := abi.SessionActionSetsAttachInfo{
		Type:       abi.TypeSessionActionSetsAttachInfo,
		ActionSets: handles,
	}
	return errors.Check(errors.PhaseAction, "xrAttachSessionActionSets",
		s.rt().AttachSessionActionSets(s.live(), &info))
}

// ActiveActionSet selects an action set, optionally narrowed to one
// subaction path, for SyncActions.
type ActiveActionSet struct {
	Set           *ActionSet
	SubactionPath abi.Path
}

// SyncActions snapshots input for the active sets. Call it once per frame
// before querying action state.
func (s *Session) SyncActions(active ...ActiveActionSet) error {
	sets := make([]abi.ActiveActionSet, len(active))
	for i, a := range active {
		sets[i] = abi.ActiveActionSet{ActionSet: a.Set.live(), SubactionPath: a.SubactionPath}
	}
	info := abi.ActionsSyncInfo{
		Type:             abi.TypeActionsSyncInfo,
		ActiveActionSets: sets,
	}
	return errors.Check(errors.PhaseAction, "xrSyncActions", s.rt().SyncActions(s.live(), &info))
}

// CurrentInteractionProfile returns the profile bound to a top-level user
// path such as /user/hand/left, or NullPath when none is bound.
func (s *Session) CurrentInteractionProfile(topLevelUserPath abi.Path) (abi.Path, error) {
	state := abi.InteractionProfileState{Type: abi.TypeInteractionProfileState}
	if r := s.rt().GetCurrentInteractionProfile(s.live(), topLevelUserPath, &state); r != abi.Success {
		return abi.NullPath, errors.Status(errors.PhaseAction, "xrGetCurrentInteractionProfile", r)
	}
	return state.InteractionProfile, nil
}

// Action state snapshots. They are valid for the sync in which they were
// taken; nothing is cached or compared across frames.
type (
	BooleanState struct {
		LastChangeTime       abi.Time
		Current              bool
		ChangedSinceLastSync bool
		Active               bool
	}

	FloatState struct {
		LastChangeTime       abi.Time
		Current              float32
		ChangedSinceLastSync bool
		Active               bool
	}

	Vector2State struct {
		LastChangeTime       abi.Time
		Current              abi.Vector2f
		ChangedSinceLastSync bool
		Active               bool
	}

	PoseState struct {
		Active bool
	}
)

func stateInfo(action *Action, subactionPath abi.Path) abi.ActionStateGetInfo {
	return abi.ActionStateGetInfo{
		Type:          abi.TypeActionStateGetInfo,
		Action:        action.live(),
		SubactionPath: subactionPath,
	}
}

func (s *Session) GetActionStateBoolean(action *Action, subactionPath abi.Path) (BooleanState, error) {
	info := stateInfo(action, subactionPath)
	st := abi.ActionStateBoolean{Type: abi.TypeActionStateBoolean}
	if r := s.rt().GetActionStateBoolean(s.live(), &info, &st); r != abi.Success {
		return BooleanState{}, errors.Status(errors.PhaseAction, "xrGetActionStateBoolean", r)
	}
	return BooleanState{
		Current:              st.CurrentState.Go(),
		ChangedSinceLastSync: st.ChangedSinceLastSync.Go(),
		LastChangeTime:       st.LastChangeTime,
		Active:               st.IsActive.Go(),
	}, nil
}

func (s *Session) GetActionStateFloat(action *Action, subactionPath abi.Path) (FloatState, error) {
	info := stateInfo(action, subactionPath)
	st := abi.ActionStateFloat{Type: abi.TypeActionStateFloat}
	if r := s.rt().GetActionStateFloat(s.live(), &info, &st); r != abi.Success {
		return FloatState{}, errors.Status(errors.PhaseAction, "xrGetActionStateFloat", r)
	}
	return FloatState{
		Current:              st.CurrentState,
		ChangedSinceLastSync: st.ChangedSinceLastSync.Go(),
		LastChangeTime:       st.LastChangeTime,
		Active:               st.IsActive.Go(),
	}, nil
}

func (s *Session) GetActionStateVector2(action *Action, subactionPath abi.Path) (Vector2State, error) {
	info := stateInfo(action, subactionPath)
	st := abi.ActionStateVector2f{Type: abi.TypeActionStateVector2f}
	if r := s.rt().GetActionStateVector2f(s.live(), &info, &st); r != abi.Success {
		return Vector2State{}, errors.Status(errors.PhaseAction, "xrGetActionStateVector2f", r)
	}
	return Vector2State{
		Current:              st.CurrentState,
		ChangedSinceLastSync: st.ChangedSinceLastSync.Go(),
		LastChangeTime:       st.LastChangeTime,
		Active:               st.IsActive.Go(),
	}, nil
}

func (s *Session) GetActionStatePose(action *Action, subactionPath abi.Path) (PoseState, error) {
	info := stateInfo(action, subactionPath)
	st := abi.ActionStatePose{Type: abi.TypeActionStatePose}
	if r := s.rt().GetActionStatePose(s.live(), &info, &st); r != abi.Success {
		return PoseState{}, errors.Status(errors.PhaseAction, "xrGetActionStatePose", r)
	}
	return PoseState{Active: st.IsActive.Go()}, nil
}

// EnumerateBoundSources lists the input source paths currently bound to
// action. No bindings yields an empty, freshly allocated slice.
func (s *Session) EnumerateBoundSources(action *Action) ([]abi.Path, error) {
	info := abi.BoundSourcesForActionEnumerateInfo{
		Type:   abi.TypeBoundSourcesForActionEnumerateInfo,
		Action: action.live(),
	}
	h := s.live()
	return enumerate(errors.PhaseAction, "xrEnumerateBoundSourcesForAction", nil,
		func(capacity uint32, count *uint32, buf []abi.Path) abi.Result {
			return s.rt().EnumerateBoundSourcesForAction(h, &info, capacity, count, buf)
		})
}

// Vibration is a haptic output request. abi.MinHapticDuration asks for
// the shortest pulse the runtime supports; abi.FrequencyUnspecified lets
// the runtime pick the frequency.
type Vibration struct {
	Duration  abi.Duration
	Frequency float32
	Amplitude float32
}

// ApplyHapticFeedback starts a vibration on a haptic output action.
func (s *Session) ApplyHapticFeedback(action *Action, subactionPath abi.Path, v Vibration) error {
	info := abi.HapticActionInfo{
		Type:          abi.TypeHapticActionInfo,
		Action:        action.live(),
		SubactionPath: subactionPath,
	}
	vib := abi.HapticVibration{
		Type:      abi.TypeHapticVibration,
		Duration:  v.Duration,
		Frequency: v.Frequency,
		Amplitude: v.Amplitude,
	}
	return errors.Check(errors.PhaseAction, "xrApplyHapticFeedback", s.rt().ApplyHapticFeedback(s.live(), &info, &vib))
}

// StopHapticFeedback stops any vibration on the action.
func (s *Session) StopHapticFeedback(action *Action, subactionPath abi.Path) error {
	info := abi.HapticActionInfo{
		Type:          abi.TypeHapticActionInfo,
		Action:        action.live(),
		SubactionPath: subactionPath,
	}
	return errors.Check(errors.PhaseAction, "xrStopHapticFeedback", s.rt().StopHapticFeedback(s.live(), &info))
}
