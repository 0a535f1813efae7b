package xr

import (
	"strings"
	"testing"

	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
	"github.com/wippyai/openxr/sim"
)

func TestCreateActionSet_TruncatesName(t *testing.T) {
	inst := newInstance(t, sim.New())

	long := strings.Repeat("a", 100)
	as, err := inst.CreateActionSet(0, long, "Long")
	if err != nil {
		t.Fatalf("CreateActionSet: %v", err)
	}
	defer as.Close()

	if got := len(as.Name()); got != abi.MaxActionSetNameSize-1 {
		t.Errorf("len(Name) = %d, want %d", got, abi.MaxActionSetNameSize-1)
	}
	if as.Instance() != inst {
		t.Error("Instance accessor")
	}

	a, err := as.CreateAction(abi.ActionTypeBooleanInput, strings.Repeat("b", 80), "", nil)
	if err != nil {
		t.Fatalf("CreateAction: %v", err)
	}
	if got := len(a.Name()); got != abi.MaxActionNameSize-1 {
		t.Errorf("len(action Name) = %d", got)
	}
}

func TestCreateActionSet_Rejected(t *testing.T) {
	inst := newInstance(t, sim.New())

	_, err := inst.CreateActionSet(0, "Bad Name", "")
	if !errors.IsResult(err, abi.ErrorNameInvalid) {
		t.Fatalf("err = %v", err)
	}
	if xe, ok := err.(*errors.Error); !ok || xe.Value != "Bad Name" {
		t.Errorf("name not carried: %#v", err)
	}
}

func TestActions_EndToEnd(t *testing.T) {
	rt := sim.New()
	inst := newInstance(t, rt)
	sess := newSession(t, inst)

	left, _ := inst.StringToPath("/user/hand/left")
	right, _ := inst.StringToPath("/user/hand/right")
	hands := []abi.Path{left, right}

	set, err := inst.CreateActionSet(1, "gameplay", "Gameplay")
	if err != nil {
		t.Fatal(err)
	}
	defer set.Close()

	trigger, err := set.CreateAction(abi.ActionTypeFloatInput, "trigger", "Trigger", hands)
	if err != nil {
		t.Fatal(err)
	}
	stick, err := set.CreateAction(abi.ActionTypeVector2fInput, "move", "Move", hands)
	if err != nil {
		t.Fatal(err)
	}
	aim, err := set.CreateAction(abi.ActionTypePoseInput, "aim", "Aim", hands)
	if err != nil {
		t.Fatal(err)
	}
	buzz, err := set.CreateAction(abi.ActionTypeVibrationOutput, "buzz", "Buzz", hands)
	if err != nil {
		t.Fatal(err)
	}

	profile, _ := inst.StringToPath(sim.TouchControllerProfile)
	var bindings []abi.ActionSuggestedBinding
	for action, path := range map[*Action]string{
		trigger: "/user/hand/right/input/trigger/value",
		stick:   "/user/hand/left/input/thumbstick",
		aim:     "/user/hand/right/input/aim/pose",
		buzz:    "/user/hand/right/output/haptic",
	} {
		b, err := inst.SuggestedBinding(action, path)
		if err != nil {
			t.Fatal(err)
		}
		bindings = append(bindings, b)
	}
	if err := inst.SuggestInteractionProfileBindings(profile, bindings); err != nil {
		t.Fatalf("SuggestInteractionProfileBindings: %v", err)
	}
	if err := sess.AttachActionSets(set); err != nil {
		t.Fatalf("AttachActionSets: %v", err)
	}
	if err := sess.AttachActionSets(set); !errors.IsResult(err, abi.ErrorActionSetsAlreadyAttached) {
		t.Errorf("second attach = %v", err)
	}
	if err := sess.BeginSession(abi.ViewConfigurationPrimaryStereo); err != nil {
		t.Fatal(err)
	}

	rt.SetFloat("/user/hand/right/input/trigger/value", 0.75)
	rt.SetVector2("/user/hand/left/input/thumbstick", abi.Vector2f{X: 0.5, Y: -1})
	rt.SetPose("/user/hand/right/input/aim/pose", abi.Posef{
		Orientation: abi.Quaternionf{W: 1},
		Position:    abi.Vector3f{X: 0.2, Y: 1.2, Z: -0.4},
	})

	if err := sess.SyncActions(ActiveActionSet{Set: set}); err != nil {
		t.Fatalf("SyncActions: %v", err)
	}

	fs, err := sess.GetActionStateFloat(trigger, abi.NullPath)
	if err != nil || !fs.Active || fs.Current != 0.75 {
		t.Errorf("trigger = %+v, %v", fs, err)
	}
	if fs, _ := sess.GetActionStateFloat(trigger, left); fs.Active {
		t.Errorf("left trigger active without a binding: %+v", fs)
	}
	vs, err := sess.GetActionStateVector2(stick, left)
	if err != nil || vs.Current != (abi.Vector2f{X: 0.5, Y: -1}) {
		t.Errorf("stick = %+v, %v", vs, err)
	}
	ps, err := sess.GetActionStatePose(aim, right)
	if err != nil || !ps.Active {
		t.Errorf("aim = %+v, %v", ps, err)
	}
	if _, err := sess.GetActionStateBoolean(trigger, abi.NullPath); !errors.IsResult(err, abi.ErrorActionTypeMismatch) {
		t.Errorf("boolean read of float action = %v", err)
	}

	rt.SetFloat("/user/hand/right/input/trigger/value", 0.75)
	sess.SyncActions(ActiveActionSet{Set: set})
	if fs, _ := sess.GetActionStateFloat(trigger, abi.NullPath); fs.ChangedSinceLastSync {
		t.Errorf("unchanged trigger reported as changed")
	}
	rt.SetFloat("/user/hand/right/input/trigger/value", 0.1)
	sess.SyncActions(ActiveActionSet{Set: set})
	if fs, _ := sess.GetActionStateFloat(trigger, abi.NullPath); !fs.ChangedSinceLastSync || fs.Current != 0.1 {
		t.Errorf("changed trigger = %+v", fs)
	}

	got, err := sess.CurrentInteractionProfile(right)
	if err != nil || got != profile {
		t.Errorf("CurrentInteractionProfile = %v, %v", got, err)
	}
	sources, err := sess.EnumerateBoundSources(aim)
	if err != nil || len(sources) != 1 {
		t.Errorf("bound sources = %v, %v", sources, err)
	}

	aimSpace, err := sess.CreateActionSpace(aim, right, abi.IdentityPose)
	if err != nil {
		t.Fatalf("CreateActionSpace: %v", err)
	}
	defer aimSpace.Close()
	stage, err := sess.CreateReferenceSpace(abi.ReferenceSpaceStage, abi.IdentityPose)
	if err != nil {
		t.Fatal(err)
	}
	defer stage.Close()
	loc, err := inst.LocateSpace(aimSpace, stage, rt.Now())
	if err != nil || !loc.PositionValid() || loc.Pose.Position.Z != -0.4 {
		t.Errorf("aim location = %+v, %v", loc, err)
	}

	if err := sess.ApplyHapticFeedback(buzz, right, Vibration{Duration: abi.MinHapticDuration, Amplitude: 1}); err != nil {
		t.Fatalf("ApplyHapticFeedback: %v", err)
	}
	if err := sess.StopHapticFeedback(buzz, right); err != nil {
		t.Fatalf("StopHapticFeedback: %v", err)
	}
	if h := rt.Haptics(); len(h) != 2 || h[0].Action != buzz.Handle() || h[0].SubactionPath != right {
		t.Errorf("haptics = %+v", h)
	}
}

func TestSuggestBindings_FailedResubmission(t *testing.T) {
	rt := sim.New()
	inst := newInstance(t, rt)
	sess := newSession(t, inst)

	set, err := inst.CreateActionSet(0, "gameplay", "Gameplay")
	if err != nil {
		t.Fatal(err)
	}
	defer set.Close()
	trigger, err := set.CreateAction(abi.ActionTypeFloatInput, "trigger", "Trigger", nil)
	if err != nil {
		t.Fatal(err)
	}

	profile, _ := inst.StringToPath(sim.TouchControllerProfile)
	good, err := inst.SuggestedBinding(trigger, "/user/hand/right/input/trigger/value")
	if err != nil {
		t.Fatal(err)
	}
	if err := inst.SuggestInteractionProfileBindings(profile, []abi.ActionSuggestedBinding{good}); err != nil {
		t.Fatalf("first submission: %v", err)
	}

	bad, err := inst.SuggestedBinding(trigger, "/user/hand/right/input/no_such_button/click")
	if err != nil {
		t.Fatal(err)
	}
	err = inst.SuggestInteractionProfileBindings(profile, []abi.ActionSuggestedBinding{good, bad})
	if !errors.IsResult(err, abi.ErrorPathUnsupported) {
		t.Fatalf("second submission = %v", err)
	}

	if err := sess.AttachActionSets(set); err != nil {
		t.Fatal(err)
	}
	if err := sess.BeginSession(abi.ViewConfigurationPrimaryStereo); err != nil {
		t.Fatal(err)
	}
	rt.SetFloat("/user/hand/right/input/trigger/value", 0.75)
	if err := sess.SyncActions(ActiveActionSet{Set: set}); err != nil {
		t.Fatal(err)
	}

	fs, err := sess.GetActionStateFloat(trigger, abi.NullPath)
	if err != nil || fs.Active || fs.Current != 0 {
		t.Errorf("trigger after failed submission = %+v, %v", fs, err)
	}
	sources, err := sess.EnumerateBoundSources(trigger)
	if err != nil || len(sources) != 0 {
		t.Errorf("bound sources = %v, %v", sources, err)
	}
}

func TestSyncActions_Unfocused(t *testing.T) {
	inst := newInstance(t, sim.New())
	sess := newSession(t, inst)

	set, _ := inst.CreateActionSet(0, "menu", "Menu")
	if _, err := set.CreateAction(abi.ActionTypeBooleanInput, "open", "Open", nil); err != nil {
		t.Fatal(err)
	}
	if err := sess.AttachActionSets(set); err != nil {
		t.Fatal(err)
	}

	err := sess.SyncActions(ActiveActionSet{Set: set})
	if !errors.IsResult(err, abi.SessionNotFocused) {
		t.Errorf("SyncActions while ready = %v", err)
	}
}
