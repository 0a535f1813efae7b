package sim

import (
	"testing"

	"github.com/wippyai/openxr/abi"
)

type actionFixture struct {
	rt     *Runtime
	inst   abi.Instance
	sess   abi.Session
	set    abi.ActionSet
	selekt abi.Action
	grip   abi.Action
	left   abi.Path
	right  abi.Path
}

func newActionFixture(t *testing.T) *actionFixture {
	t.Helper()
	f := &actionFixture{rt: New()}
	f.inst = createInstance(t, f.rt)
	f.sess = createSession(t, f.rt, f.inst)
	f.left = pathOf(t, f.rt, f.inst, "/user/hand/left")
	f.right = pathOf(t, f.rt, f.inst, "/user/hand/right")

	setInfo := abi.ActionSetCreateInfo{Type: abi.TypeActionSetCreateInfo}
	abi.PutName(setInfo.ActionSetName[:], "gameplay")
	abi.PutName(setInfo.LocalizedActionSetName[:], "Gameplay")
	if r := f.rt.CreateActionSet(f.inst, &setInfo, &f.set); r != abi.Success {
		t.Fatalf("CreateActionSet = %v", r)
	}

	f.selekt = f.createAction(t, "select", abi.ActionTypeBooleanInput)
	f.grip = f.createAction(t, "grip", abi.ActionTypePoseInput)
	return f
}

func (f *actionFixture) createAction(t *testing.T, name string, typ abi.ActionType) abi.Action {
	t.Helper()
	info := abi.ActionCreateInfo{
		Type:           abi.TypeActionCreateInfo,
		ActionType:     typ,
		SubactionPaths: []abi.Path{f.left, f.right},
	}
	abi.PutName(info.ActionName[:], name)
	abi.PutName(info.LocalizedActionName[:], name)
	var a abi.Action
	if r := f.rt.CreateAction(f.set, &info, &a); r != abi.Success {
		t.Fatalf("CreateAction(%s) = %v", name, r)
	}
	return a
}

func (f *actionFixture) suggest(t *testing.T) {
	t.Helper()
	info := abi.InteractionProfileSuggestedBinding{
		Type:               abi.TypeInteractionProfileSuggestedBinding,
		InteractionProfile: pathOf(t, f.rt, f.inst, SimpleControllerProfile),
		SuggestedBindings: []abi.ActionSuggestedBinding{
			{Action: f.selekt, Binding: pathOf(t, f.rt, f.inst, "/user/hand/left/input/select/click")},
			{Action: f.selekt, Binding: pathOf(t, f.rt, f.inst, "/user/hand/right/input/select/click")},
			{Action: f.grip, Binding: pathOf(t, f.rt, f.inst, "/user/hand/left/input/grip/pose")},
		},
	}
	if r := f.rt.SuggestInteractionProfileBindings(f.inst, &info); r != abi.Success {
		t.Fatalf("SuggestInteractionProfileBindings = %v", r)
	}
}

func (f *actionFixture) attach(t *testing.T) {
	t.Helper()
	info := abi.SessionActionSetsAttachInfo{Type: abi.TypeSessionActionSetsAttachInfo, ActionSets: []abi.ActionSet{f.set}}
	if r := f.rt.AttachSessionActionSets(f.sess, &info); r != abi.Success {
		t.Fatalf("AttachSessionActionSets = %v", r)
	}
}

func (f *actionFixture) sync() abi.Result {
	info := abi.ActionsSyncInfo{Type: abi.TypeActionsSyncInfo, ActiveActionSets: []abi.ActiveActionSet{{ActionSet: f.set}}}
	return f.rt.SyncActions(f.sess, &info)
}

func (f *actionFixture) boolean(t *testing.T, sub abi.Path) abi.ActionStateBoolean {
	t.Helper()
	info := abi.ActionStateGetInfo{Type: abi.TypeActionStateGetInfo, Action: f.selekt, SubactionPath: sub}
	state := abi.ActionStateBoolean{Type: abi.TypeActionStateBoolean}
	if r := f.rt.GetActionStateBoolean(f.sess, &info, &state); r != abi.Success {
		t.Fatalf("GetActionStateBoolean = %v", r)
	}
	return state
}

func TestCreateAction_Names(t *testing.T) {
	f := newActionFixture(t)

	tests := []struct {
		name      string
		localized string
		want      abi.Result
	}{
		{"", "Empty", abi.ErrorNameInvalid},
		{"Upper", "Upper", abi.ErrorNameInvalid},
		{"ok_name", "", abi.ErrorLocalizedNameInvalid},
		{"select", "Other", abi.ErrorNameDuplicated},
		{"other", "select", abi.ErrorLocalizedNameDuplicated},
		{"teleport", "Teleport", abi.Success},
	}
	for _, tt := range tests {
		info := abi.ActionCreateInfo{Type: abi.TypeActionCreateInfo, ActionType: abi.ActionTypeBooleanInput}
		abi.PutName(info.ActionName[:], tt.name)
		abi.PutName(info.LocalizedActionName[:], tt.localized)
		var a abi.Action
		if r := f.rt.CreateAction(f.set, &info, &a); r != tt.want {
			t.Errorf("CreateAction(%q, %q) = %v, want %v", tt.name, tt.localized, r, tt.want)
		}
	}

	info := abi.ActionCreateInfo{
		Type:           abi.TypeActionCreateInfo,
		ActionType:     abi.ActionTypeFloatInput,
		SubactionPaths: []abi.Path{pathOf(t, f.rt, f.inst, "/user/hand/left/input")},
	}
	abi.PutName(info.ActionName[:], "trigger")
	abi.PutName(info.LocalizedActionName[:], "Trigger")
	var a abi.Action
	if r := f.rt.CreateAction(f.set, &info, &a); r != abi.ErrorPathUnsupported {
		t.Errorf("non top-level subaction = %v", r)
	}
}

func TestSuggestBindings_Rejects(t *testing.T) {
	f := newActionFixture(t)
	profile := pathOf(t, f.rt, f.inst, SimpleControllerProfile)

	tests := []struct {
		name    string
		profile abi.Path
		binding abi.Path
		want    abi.Result
	}{
		{"unknown profile", pathOf(t, f.rt, f.inst, "/interaction_profiles/acme/wand"), pathOf(t, f.rt, f.inst, "/user/hand/left/input/select/click"), abi.ErrorPathUnsupported},
		{"binding outside subactions", profile, pathOf(t, f.rt, f.inst, "/user/head/input/select/click"), abi.ErrorPathUnsupported},
		{"unknown component", profile, pathOf(t, f.rt, f.inst, "/user/hand/left/input/no_such_button/click"), abi.ErrorPathUnsupported},
		{"uninterned binding", profile, abi.Path(4096), abi.ErrorPathInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := abi.InteractionProfileSuggestedBinding{
				Type:               abi.TypeInteractionProfileSuggestedBinding,
				InteractionProfile: tt.profile,
				SuggestedBindings:  []abi.ActionSuggestedBinding{{Action: f.selekt, Binding: tt.binding}},
			}
			if r := f.rt.SuggestInteractionProfileBindings(f.inst, &info); r != tt.want {
				t.Errorf("got %v, want %v", r, tt.want)
			}
		})
	}
}

func TestSuggestBindings_FailureClearsProfile(t *testing.T) {
	f := newActionFixture(t)
	f.suggest(t)

	info := abi.InteractionProfileSuggestedBinding{
		Type:               abi.TypeInteractionProfileSuggestedBinding,
		InteractionProfile: pathOf(t, f.rt, f.inst, SimpleControllerProfile),
		SuggestedBindings: []abi.ActionSuggestedBinding{
			{Action: f.selekt, Binding: pathOf(t, f.rt, f.inst, "/user/hand/left/input/trackpad/click")},
		},
	}
	if r := f.rt.SuggestInteractionProfileBindings(f.inst, &info); r != abi.ErrorPathUnsupported {
		t.Fatalf("resubmission = %v", r)
	}

	f.attach(t)
	beginSession(t, f.rt, f.sess)
	f.rt.SetBoolean("/user/hand/left/input/select/click", true)
	if r := f.sync(); r != abi.Success {
		t.Fatalf("SyncActions = %v", r)
	}
	if s := f.boolean(t, abi.NullPath); s.IsActive.Go() || s.CurrentState.Go() {
		t.Errorf("select after rejected resubmission = %+v", s)
	}

	var state abi.InteractionProfileState
	state.Type = abi.TypeInteractionProfileState
	if r := f.rt.GetCurrentInteractionProfile(f.sess, f.left, &state); r != abi.Success || state.InteractionProfile != abi.NullPath {
		t.Errorf("current profile = %v, %v", r, state.InteractionProfile)
	}
}

func TestSyncActions(t *testing.T) {
	f := newActionFixture(t)

	if r := f.sync(); r != abi.ErrorActionSetNotAttached {
		t.Errorf("sync before attach = %v", r)
	}

	f.suggest(t)
	f.attach(t)

	if r := f.sync(); r != abi.SessionNotFocused {
		t.Errorf("sync while unfocused = %v", r)
	}
	if st := f.boolean(t, abi.NullPath); st.IsActive.Go() {
		t.Errorf("unfocused state active: %+v", st)
	}

	beginSession(t, f.rt, f.sess)

	f.rt.SetBoolean("/user/hand/right/input/select/click", true)
	if r := f.sync(); r != abi.Success {
		t.Fatalf("SyncActions = %v", r)
	}

	st := f.boolean(t, abi.NullPath)
	if !st.IsActive.Go() || !st.CurrentState.Go() || !st.ChangedSinceLastSync.Go() {
		t.Errorf("pressed state = %+v", st)
	}
	if left := f.boolean(t, f.left); left.CurrentState.Go() {
		t.Errorf("left hand reports right-hand press: %+v", left)
	}
	if right := f.boolean(t, f.right); !right.CurrentState.Go() {
		t.Errorf("right hand = %+v", right)
	}

	if r := f.sync(); r != abi.Success {
		t.Fatalf("second SyncActions = %v", r)
	}
	if st := f.boolean(t, abi.NullPath); st.ChangedSinceLastSync.Go() {
		t.Errorf("changed flag survived an unchanged sync: %+v", st)
	}

	info := abi.ActionStateGetInfo{Type: abi.TypeActionStateGetInfo, Action: f.selekt}
	fl := abi.ActionStateFloat{Type: abi.TypeActionStateFloat}
	if r := f.rt.GetActionStateFloat(f.sess, &info, &fl); r != abi.ErrorActionTypeMismatch {
		t.Errorf("float read of boolean action = %v", r)
	}

	info.SubactionPath = pathOf(t, f.rt, f.inst, "/user/head")
	bl := abi.ActionStateBoolean{Type: abi.TypeActionStateBoolean}
	if r := f.rt.GetActionStateBoolean(f.sess, &info, &bl); r != abi.ErrorPathUnsupported {
		t.Errorf("undeclared subaction = %v", r)
	}
}

func TestAttach_FreezesActions(t *testing.T) {
	f := newActionFixture(t)
	f.suggest(t)
	f.attach(t)

	info := abi.ActionCreateInfo{Type: abi.TypeActionCreateInfo, ActionType: abi.ActionTypeBooleanInput}
	abi.PutName(info.ActionName[:], "late")
	abi.PutName(info.LocalizedActionName[:], "Late")
	var a abi.Action
	if r := f.rt.CreateAction(f.set, &info, &a); r != abi.ErrorActionSetsAlreadyAttached {
		t.Errorf("CreateAction after attach = %v", r)
	}

	attach := abi.SessionActionSetsAttachInfo{Type: abi.TypeSessionActionSetsAttachInfo, ActionSets: []abi.ActionSet{f.set}}
	if r := f.rt.AttachSessionActionSets(f.sess, &attach); r != abi.ErrorActionSetsAlreadyAttached {
		t.Errorf("second attach = %v", r)
	}
}

func TestInteractionProfile(t *testing.T) {
	f := newActionFixture(t)
	f.suggest(t)
	f.attach(t)

	buf := abi.EventDataBuffer{Type: abi.TypeEventDataBuffer}
	found := false
	for f.rt.PollEvent(f.inst, &buf) == abi.Success {
		if buf.Type == abi.TypeEventDataInteractionProfileChanged {
			found = true
		}
		buf = abi.EventDataBuffer{Type: abi.TypeEventDataBuffer}
	}
	if !found {
		t.Errorf("no interaction profile changed event")
	}

	state := abi.InteractionProfileState{Type: abi.TypeInteractionProfileState}
	if r := f.rt.GetCurrentInteractionProfile(f.sess, f.left, &state); r != abi.Success {
		t.Fatalf("GetCurrentInteractionProfile = %v", r)
	}
	if state.InteractionProfile != pathOf(t, f.rt, f.inst, SimpleControllerProfile) {
		t.Errorf("profile = %v", state.InteractionProfile)
	}

	head := pathOf(t, f.rt, f.inst, "/user/head")
	if r := f.rt.GetCurrentInteractionProfile(f.sess, head, &state); r != abi.Success || state.InteractionProfile != abi.NullPath {
		t.Errorf("unbound top-level path = %v, %v", r, state.InteractionProfile)
	}

	enum := abi.BoundSourcesForActionEnumerateInfo{Type: abi.TypeBoundSourcesForActionEnumerateInfo, Action: f.selekt}
	var count uint32
	if r := f.rt.EnumerateBoundSourcesForAction(f.sess, &enum, 0, &count, nil); r != abi.Success || count != 2 {
		t.Errorf("bound sources = %v, %d", r, count)
	}
}

func TestActionSpace(t *testing.T) {
	f := newActionFixture(t)
	f.suggest(t)
	f.attach(t)
	beginSession(t, f.rt, f.sess)

	create := abi.ActionSpaceCreateInfo{Type: abi.TypeActionSpaceCreateInfo, Action: f.selekt, PoseInActionSpace: abi.IdentityPose}
	var sp abi.Space
	if r := f.rt.CreateActionSpace(f.sess, &create, &sp); r != abi.ErrorActionTypeMismatch {
		t.Errorf("action space over boolean = %v", r)
	}
	create.Action = f.grip
	if r := f.rt.CreateActionSpace(f.sess, &create, &sp); r != abi.Success {
		t.Fatalf("CreateActionSpace = %v", r)
	}

	ref := abi.ReferenceSpaceCreateInfo{Type: abi.TypeReferenceSpaceCreateInfo, ReferenceSpaceType: abi.ReferenceSpaceStage, PoseInReferenceSpace: abi.IdentityPose}
	var stage abi.Space
	f.rt.CreateReferenceSpace(f.sess, &ref, &stage)

	loc := abi.SpaceLocation{Type: abi.TypeSpaceLocation}
	if r := f.rt.LocateSpace(sp, stage, f.rt.Now(), &loc); r != abi.Success || loc.LocationFlags != 0 {
		t.Errorf("untracked hand = %v, %#x", r, loc.LocationFlags)
	}

	hand := abi.Posef{Orientation: abi.Quaternionf{W: 1}, Position: abi.Vector3f{X: -0.2, Y: 1.1, Z: -0.3}}
	f.rt.SetPose("/user/hand/left/input/grip/pose", hand)
	if r := f.rt.LocateSpace(sp, stage, f.rt.Now(), &loc); r != abi.Success {
		t.Fatalf("LocateSpace = %v", r)
	}
	if loc.LocationFlags&abi.SpaceLocationPositionValid == 0 || loc.Pose.Position != hand.Position {
		t.Errorf("tracked hand = %#x %+v", loc.LocationFlags, loc.Pose.Position)
	}
}

func TestHaptics(t *testing.T) {
	f := newActionFixture(t)
	buzz := f.createAction(t, "buzz", abi.ActionTypeVibrationOutput)
	f.suggest(t)
	f.attach(t)

	info := abi.HapticActionInfo{Type: abi.TypeHapticActionInfo, Action: f.selekt}
	vib := abi.HapticVibration{Type: abi.TypeHapticVibration, Duration: abi.MinHapticDuration, Amplitude: 0.5}
	if r := f.rt.ApplyHapticFeedback(f.sess, &info, &vib); r != abi.ErrorActionTypeMismatch {
		t.Errorf("haptic on input action = %v", r)
	}

	info.Action = buzz
	if r := f.rt.ApplyHapticFeedback(f.sess, &info, &vib); r != abi.Success {
		t.Fatalf("ApplyHapticFeedback = %v", r)
	}
	if r := f.rt.StopHapticFeedback(f.sess, &info); r != abi.Success {
		t.Fatalf("StopHapticFeedback = %v", r)
	}

	got := f.rt.Haptics()
	if len(got) != 2 || got[0].Amplitude != 0.5 || got[0].Stop || !got[1].Stop {
		t.Errorf("Haptics = %+v", got)
	}
}
