package sim

import (
	"testing"

	"github.com/wippyai/openxr"
	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/ext"
	"github.com/wippyai/openxr/resource"
)

func createInstance(t *testing.T, rt *Runtime, extensions ...string) abi.Instance {
	t.Helper()
	info := abi.InstanceCreateInfo{
		Type:                  abi.TypeInstanceCreateInfo,
		EnabledExtensionNames: extensions,
	}
	abi.PutName(info.ApplicationInfo.ApplicationName[:], "sim-test")
	info.ApplicationInfo.APIVersion = abi.MakeVersion(1, 0, 34)

	var h abi.Instance
	if r := rt.CreateInstance(&info, &h); r != abi.Success {
		t.Fatalf("CreateInstance = %v", r)
	}
	return h
}

func createSession(t *testing.T, rt *Runtime, inst abi.Instance) abi.Session {
	t.Helper()
	info := abi.SessionCreateInfo{Type: abi.TypeSessionCreateInfo, SystemID: SystemID}
	var h abi.Session
	if r := rt.CreateSession(inst, &info, &h); r != abi.Success {
		t.Fatalf("CreateSession = %v", r)
	}
	return h
}

func beginSession(t *testing.T, rt *Runtime, s abi.Session) {
	t.Helper()
	info := abi.SessionBeginInfo{
		Type:                         abi.TypeSessionBeginInfo,
		PrimaryViewConfigurationType: abi.ViewConfigurationPrimaryStereo,
	}
	if r := rt.BeginSession(s, &info); r != abi.Success {
		t.Fatalf("BeginSession = %v", r)
	}
}

func pathOf(t *testing.T, rt *Runtime, inst abi.Instance, s string) abi.Path {
	t.Helper()
	var p abi.Path
	if r := rt.StringToPath(inst, s, &p); r != abi.Success {
		t.Fatalf("StringToPath(%q) = %v", s, r)
	}
	return p
}

func TestCreateInstance_Validation(t *testing.T) {
	rt := New()

	tests := []struct {
		name   string
		mutate func(*abi.InstanceCreateInfo)
		want   abi.Result
	}{
		{"wrong type", func(i *abi.InstanceCreateInfo) { i.Type = abi.TypeSessionCreateInfo }, abi.ErrorValidationFailure},
		{"empty name", func(i *abi.InstanceCreateInfo) {
			i.ApplicationInfo.ApplicationName = [abi.MaxApplicationNameSize]byte{}
		}, abi.ErrorNameInvalid},
		{"api version", func(i *abi.InstanceCreateInfo) { i.ApplicationInfo.APIVersion = abi.MakeVersion(2, 0, 0) }, abi.ErrorAPIVersionUnsupported},
		{"unknown extension", func(i *abi.InstanceCreateInfo) { i.EnabledExtensionNames = []string{"XR_FOO_bar"} }, abi.ErrorExtensionNotPresent},
		{"unknown layer", func(i *abi.InstanceCreateInfo) { i.EnabledAPILayerNames = []string{"XR_APILAYER_nope"} }, abi.ErrorAPILayerNotPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := abi.InstanceCreateInfo{Type: abi.TypeInstanceCreateInfo}
			abi.PutName(info.ApplicationInfo.ApplicationName[:], "app")
			info.ApplicationInfo.APIVersion = abi.MakeVersion(1, 0, 34)
			tt.mutate(&info)

			var h abi.Instance
			if r := rt.CreateInstance(&info, &h); r != tt.want {
				t.Errorf("CreateInstance = %v, want %v", r, tt.want)
			}
			if h != abi.NullHandle {
				t.Errorf("handle written on failure: %v", h)
			}
		})
	}

	if rt.Live(resource.KindInstance) != 0 {
		t.Errorf("failed creates left %d live instances", rt.Live(resource.KindInstance))
	}
}

func TestDestroy_StaleHandle(t *testing.T) {
	rt := New()
	inst := createInstance(t, rt)

	if r := rt.DestroyInstance(inst); r != abi.Success {
		t.Fatalf("DestroyInstance = %v", r)
	}
	if r := rt.DestroyInstance(inst); r != abi.ErrorHandleInvalid {
		t.Errorf("second DestroyInstance = %v, want %v", r, abi.ErrorHandleInvalid)
	}
	if got := rt.Destroyed(resource.KindInstance); got != 1 {
		t.Errorf("Destroyed(instance) = %d, want 1", got)
	}
	if got := rt.Calls("xrDestroyInstance"); got != 2 {
		t.Errorf("Calls = %d, want 2", got)
	}

	again := createInstance(t, rt)
	if again == inst {
		t.Errorf("handle %v reused", inst)
	}
}

func TestDestroyInstance_CascadesChildren(t *testing.T) {
	rt := New()
	inst := createInstance(t, rt)
	sess := createSession(t, rt, inst)

	info := abi.ReferenceSpaceCreateInfo{
		Type:                 abi.TypeReferenceSpaceCreateInfo,
		ReferenceSpaceType:   abi.ReferenceSpaceLocal,
		PoseInReferenceSpace: abi.IdentityPose,
	}
	var sp abi.Space
	if r := rt.CreateReferenceSpace(sess, &info, &sp); r != abi.Success {
		t.Fatalf("CreateReferenceSpace = %v", r)
	}

	rt.DestroyInstance(inst)

	if rt.Live(resource.KindSession) != 0 || rt.Live(resource.KindSpace) != 0 {
		t.Errorf("children survived instance destruction")
	}
	if r := rt.DestroySpace(sp); r != abi.ErrorHandleInvalid {
		t.Errorf("DestroySpace after cascade = %v", r)
	}
}

func TestEnumerateExtensions_TwoCall(t *testing.T) {
	rt := New()

	var count uint32
	if r := rt.EnumerateInstanceExtensionProperties("", 0, &count, nil); r != abi.Success {
		t.Fatalf("count call = %v", r)
	}
	if int(count) != len(rt.Profile().Extensions) {
		t.Fatalf("count = %d, want %d", count, len(rt.Profile().Extensions))
	}

	small := make([]abi.ExtensionProperties, count-1)
	for i := range small {
		small[i].Type = abi.TypeExtensionProperties
	}
	if r := rt.EnumerateInstanceExtensionProperties("", count-1, &count, small); r != abi.ErrorSizeInsufficient {
		t.Errorf("short buffer = %v, want %v", r, abi.ErrorSizeInsufficient)
	}

	untagged := make([]abi.ExtensionProperties, count)
	if r := rt.EnumerateInstanceExtensionProperties("", count, &count, untagged); r != abi.ErrorValidationFailure {
		t.Errorf("untagged records = %v, want %v", r, abi.ErrorValidationFailure)
	}

	props := make([]abi.ExtensionProperties, count)
	for i := range props {
		props[i].Type = abi.TypeExtensionProperties
	}
	var filled uint32
	if r := rt.EnumerateInstanceExtensionProperties("", count, &filled, props); r != abi.Success {
		t.Fatalf("fill = %v", r)
	}
	if filled != count {
		t.Errorf("filled = %d, want %d", filled, count)
	}
	if got := abi.GoString(props[0].ExtensionName[:]); got != rt.Profile().Extensions[0].Name {
		t.Errorf("first extension = %q", got)
	}
}

func TestPaths(t *testing.T) {
	rt := New()
	inst := createInstance(t, rt)

	p := pathOf(t, rt, inst, "/user/hand/left")
	if again := pathOf(t, rt, inst, "/user/hand/left"); again != p {
		t.Errorf("interning not stable: %v then %v", p, again)
	}

	var count uint32
	if r := rt.PathToString(inst, p, 0, &count, nil); r != abi.Success {
		t.Fatalf("count call = %v", r)
	}
	if count != uint32(len("/user/hand/left")+1) {
		t.Errorf("count = %d, want length plus NUL", count)
	}
	buf := make([]byte, count)
	if r := rt.PathToString(inst, p, count, &count, buf); r != abi.Success {
		t.Fatalf("PathToString = %v", r)
	}
	if got := abi.GoString(buf); got != "/user/hand/left" {
		t.Errorf("PathToString = %q", got)
	}

	for _, bad := range []string{"", "user", "/user/", "/user//hand", "/User", "/user/./x", "/a b"} {
		var out abi.Path
		if r := rt.StringToPath(inst, bad, &out); r != abi.ErrorPathFormatInvalid {
			t.Errorf("StringToPath(%q) = %v, want %v", bad, r, abi.ErrorPathFormatInvalid)
		}
	}

	if r := rt.PathToString(inst, abi.Path(999), 0, &count, nil); r != abi.ErrorPathInvalid {
		t.Errorf("unknown path = %v", r)
	}
}

func TestSystem(t *testing.T) {
	rt := New()
	inst := createInstance(t, rt)

	var id abi.SystemID
	hmd := abi.SystemGetInfo{Type: abi.TypeSystemGetInfo, FormFactor: abi.FormFactorHeadMountedDisplay}
	if r := rt.GetSystem(inst, &hmd, &id); r != abi.Success || id != SystemID {
		t.Fatalf("GetSystem = %v, %v", r, id)
	}

	handheld := abi.SystemGetInfo{Type: abi.TypeSystemGetInfo, FormFactor: abi.FormFactorHandheldDisplay}
	if r := rt.GetSystem(inst, &handheld, &id); r != abi.ErrorFormFactorUnsupported {
		t.Errorf("handheld = %v", r)
	}

	rt.SetFailure("xrGetSystem", abi.ErrorFormFactorUnavailable)
	if r := rt.GetSystem(inst, &hmd, &id); r != abi.ErrorFormFactorUnavailable {
		t.Errorf("injected = %v", r)
	}
	rt.ClearFailure("xrGetSystem")

	props := abi.SystemProperties{Type: abi.TypeSystemProperties}
	if r := rt.GetSystemProperties(inst, abi.SystemID(1), &props); r != abi.ErrorSystemInvalid {
		t.Errorf("wrong system id = %v", r)
	}
	if r := rt.GetSystemProperties(inst, SystemID, &props); r != abi.Success {
		t.Fatalf("GetSystemProperties = %v", r)
	}
	if abi.GoString(props.SystemName[:]) != rt.Profile().SystemName {
		t.Errorf("SystemName = %q", abi.GoString(props.SystemName[:]))
	}

	var count uint32
	if r := rt.EnumerateViewConfigurationViews(inst, SystemID, abi.ViewConfigurationPrimaryStereo, 0, &count, nil); r != abi.Success || count != 2 {
		t.Errorf("stereo views = %v, %d", r, count)
	}
}

func TestSessionLifecycle(t *testing.T) {
	rt := New()
	inst := createInstance(t, rt)
	sess := createSession(t, rt, inst)

	if r := rt.EndSession(sess); r != abi.ErrorSessionNotRunning {
		t.Errorf("EndSession before begin = %v", r)
	}
	beginSession(t, rt, sess)
	if r := rt.BeginSession(sess, &abi.SessionBeginInfo{Type: abi.TypeSessionBeginInfo, PrimaryViewConfigurationType: abi.ViewConfigurationPrimaryStereo}); r != abi.ErrorSessionRunning {
		t.Errorf("second BeginSession = %v", r)
	}
	if r := rt.EndSession(sess); r != abi.ErrorSessionNotStopping {
		t.Errorf("EndSession while focused = %v", r)
	}
	if r := rt.RequestExitSession(sess); r != abi.Success {
		t.Fatalf("RequestExitSession = %v", r)
	}
	if r := rt.EndSession(sess); r != abi.Success {
		t.Fatalf("EndSession = %v", r)
	}

	want := []abi.SessionState{
		abi.SessionStateIdle, abi.SessionStateReady,
		abi.SessionStateSynchronized, abi.SessionStateVisible, abi.SessionStateFocused,
		abi.SessionStateStopping, abi.SessionStateIdle, abi.SessionStateExiting,
	}
	for i, state := range want {
		buf := abi.EventDataBuffer{Type: abi.TypeEventDataBuffer}
		if r := rt.PollEvent(inst, &buf); r != abi.Success {
			t.Fatalf("event %d: PollEvent = %v", i, r)
		}
		var ev abi.EventDataSessionStateChanged
		ev.Decode(&buf)
		if buf.Type != abi.TypeEventDataSessionStateChanged || ev.State != state || ev.Session != sess {
			t.Errorf("event %d = %v %v, want %v", i, buf.Type, ev.State, state)
		}
	}
	buf := abi.EventDataBuffer{Type: abi.TypeEventDataBuffer}
	if r := rt.PollEvent(inst, &buf); r != abi.EventUnavailable {
		t.Errorf("drained queue = %v", r)
	}
}

func TestCreateSession_OnePerInstance(t *testing.T) {
	rt := New()
	inst := createInstance(t, rt)
	createSession(t, rt, inst)

	var h abi.Session
	info := abi.SessionCreateInfo{Type: abi.TypeSessionCreateInfo, SystemID: SystemID}
	if r := rt.CreateSession(inst, &info, &h); r != abi.ErrorLimitReached {
		t.Errorf("second CreateSession = %v", r)
	}
}

func TestFrameOrder(t *testing.T) {
	rt := New()
	inst := createInstance(t, rt)
	sess := createSession(t, rt, inst)

	wait := abi.FrameWaitInfo{Type: abi.TypeFrameWaitInfo}
	state := abi.FrameState{Type: abi.TypeFrameState}
	if r := rt.WaitFrame(sess, &wait, &state); r != abi.ErrorSessionNotRunning {
		t.Errorf("WaitFrame before begin = %v", r)
	}
	beginSession(t, rt, sess)

	begin := abi.FrameBeginInfo{Type: abi.TypeFrameBeginInfo}
	if r := rt.BeginFrame(sess, &begin); r != abi.ErrorCallOrderInvalid {
		t.Errorf("BeginFrame without WaitFrame = %v", r)
	}

	before := rt.Now()
	if r := rt.WaitFrame(sess, &wait, &state); r != abi.Success {
		t.Fatalf("WaitFrame = %v", r)
	}
	if !state.ShouldRender.Go() || state.PredictedDisplayTime <= before {
		t.Errorf("frame state = %+v", state)
	}
	if r := rt.BeginFrame(sess, &begin); r != abi.Success {
		t.Fatalf("BeginFrame = %v", r)
	}

	end := abi.FrameEndInfo{
		Type:                 abi.TypeFrameEndInfo,
		DisplayTime:          state.PredictedDisplayTime,
		EnvironmentBlendMode: abi.BlendModeAdditive,
	}
	if r := rt.EndFrame(sess, &end); r != abi.ErrorEnvironmentBlendModeUnsupported {
		t.Errorf("unsupported blend mode = %v", r)
	}
	end.EnvironmentBlendMode = abi.BlendModeOpaque
	if r := rt.EndFrame(sess, &end); r != abi.Success {
		t.Fatalf("EndFrame = %v", r)
	}
	if r := rt.EndFrame(sess, &end); r != abi.ErrorCallOrderInvalid {
		t.Errorf("EndFrame twice = %v", r)
	}
	if rt.Frames(sess) != 1 {
		t.Errorf("Frames = %d", rt.Frames(sess))
	}

	rt.WaitFrame(sess, &wait, &state)
	rt.BeginFrame(sess, &begin)
	rt.WaitFrame(sess, &wait, &state)
	if r := rt.BeginFrame(sess, &begin); r != abi.FrameDiscarded {
		t.Errorf("BeginFrame over an open frame = %v", r)
	}
}

func TestSwapchainOrder(t *testing.T) {
	rt := New()
	inst := createInstance(t, rt)
	sess := createSession(t, rt, inst)

	info := abi.SwapchainCreateInfo{
		Type:        abi.TypeSwapchainCreateInfo,
		UsageFlags:  abi.SwapchainUsageColorAttachment,
		Format:      99,
		SampleCount: 1, Width: 64, Height: 64, FaceCount: 1, ArraySize: 1, MipCount: 1,
	}
	var sc abi.Swapchain
	if r := rt.CreateSwapchain(sess, &info, &sc); r != abi.ErrorSwapchainFormatUnsupported {
		t.Errorf("unknown format = %v", r)
	}
	info.Format = rt.Profile().SwapchainFormats[0]
	if r := rt.CreateSwapchain(sess, &info, &sc); r != abi.Success {
		t.Fatalf("CreateSwapchain = %v", r)
	}

	var count uint32
	if r := rt.EnumerateSwapchainImages(sc, 0, &count); r != abi.Success || count != rt.Profile().SwapchainImageCount {
		t.Errorf("images = %v, %d", r, count)
	}

	acquire := abi.SwapchainImageAcquireInfo{Type: abi.TypeSwapchainImageAcquireInfo}
	wait := abi.SwapchainImageWaitInfo{Type: abi.TypeSwapchainImageWaitInfo, Timeout: abi.InfiniteDuration}
	release := abi.SwapchainImageReleaseInfo{Type: abi.TypeSwapchainImageReleaseInfo}

	if r := rt.WaitSwapchainImage(sc, &wait); r != abi.ErrorCallOrderInvalid {
		t.Errorf("wait before acquire = %v", r)
	}
	var index uint32
	if r := rt.AcquireSwapchainImage(sc, &acquire, &index); r != abi.Success {
		t.Fatalf("Acquire = %v", r)
	}
	if r := rt.ReleaseSwapchainImage(sc, &release); r != abi.ErrorCallOrderInvalid {
		t.Errorf("release without wait = %v", r)
	}
	if r := rt.WaitSwapchainImage(sc, &wait); r != abi.Success {
		t.Fatalf("Wait = %v", r)
	}
	if r := rt.WaitSwapchainImage(sc, &wait); r != abi.ErrorCallOrderInvalid {
		t.Errorf("second wait = %v", r)
	}
	if r := rt.ReleaseSwapchainImage(sc, &release); r != abi.Success {
		t.Fatalf("Release = %v", r)
	}

	rt.SetHoldImages(true)
	rt.AcquireSwapchainImage(sc, &acquire, &index)
	if r := rt.WaitSwapchainImage(sc, &wait); r != abi.TimeoutExpired {
		t.Errorf("held image = %v", r)
	}
}

func TestReferenceSpaces(t *testing.T) {
	rt := New()
	inst := createInstance(t, rt)
	sess := createSession(t, rt, inst)

	var count uint32
	rt.EnumerateReferenceSpaces(sess, 0, &count, nil)
	if count != 3 {
		t.Errorf("reference spaces without local floor = %d, want 3", count)
	}

	var bounds abi.Extent2Df
	if r := rt.GetReferenceSpaceBoundsRect(sess, abi.ReferenceSpaceStage, &bounds); r != abi.Success || bounds.Width != 2 {
		t.Errorf("stage bounds = %v, %+v", r, bounds)
	}
	if r := rt.GetReferenceSpaceBoundsRect(sess, abi.ReferenceSpaceLocal, &bounds); r != abi.SpaceBoundsUnavailable {
		t.Errorf("local bounds = %v", r)
	}

	create := func(t abi.ReferenceSpaceType, pose abi.Posef) (abi.Space, abi.Result) {
		info := abi.ReferenceSpaceCreateInfo{Type: abi.TypeReferenceSpaceCreateInfo, ReferenceSpaceType: t, PoseInReferenceSpace: pose}
		var sp abi.Space
		r := rt.CreateReferenceSpace(sess, &info, &sp)
		return sp, r
	}
	if _, r := create(abi.ReferenceSpaceLocalFloor, abi.IdentityPose); r != abi.ErrorReferenceSpaceUnsupported {
		t.Errorf("local floor without extension = %v", r)
	}
	if _, r := create(abi.ReferenceSpaceLocal, abi.Posef{}); r != abi.ErrorPoseInvalid {
		t.Errorf("zero quaternion = %v", r)
	}

	view, _ := create(abi.ReferenceSpaceView, abi.IdentityPose)
	stage, _ := create(abi.ReferenceSpaceStage, abi.IdentityPose)

	loc := abi.SpaceLocation{Type: abi.TypeSpaceLocation}
	if r := rt.LocateSpace(view, stage, 0, &loc); r != abi.ErrorTimeInvalid {
		t.Errorf("zero time = %v", r)
	}
	if r := rt.LocateSpace(view, stage, rt.Now(), &loc); r != abi.Success {
		t.Fatalf("LocateSpace = %v", r)
	}
	if loc.LocationFlags&abi.SpaceLocationPositionValid == 0 {
		t.Errorf("flags = %#x", loc.LocationFlags)
	}
	if y := loc.Pose.Position.Y; y < eyeHeight-1e-4 || y > eyeHeight+1e-4 {
		t.Errorf("view height above stage = %v, want %v", y, eyeHeight)
	}
}

func TestLocateViews(t *testing.T) {
	rt := New()
	inst := createInstance(t, rt)
	sess := createSession(t, rt, inst)

	info := abi.ReferenceSpaceCreateInfo{Type: abi.TypeReferenceSpaceCreateInfo, ReferenceSpaceType: abi.ReferenceSpaceView, PoseInReferenceSpace: abi.IdentityPose}
	var view abi.Space
	rt.CreateReferenceSpace(sess, &info, &view)

	locate := abi.ViewLocateInfo{
		Type:                  abi.TypeViewLocateInfo,
		ViewConfigurationType: abi.ViewConfigurationPrimaryStereo,
		DisplayTime:           rt.Now(),
		Space:                 view,
	}
	state := abi.ViewState{Type: abi.TypeViewState}
	var count uint32
	if r := rt.LocateViews(sess, &locate, &state, 0, &count, nil); r != abi.Success || count != 2 {
		t.Fatalf("count call = %v, %d", r, count)
	}
	views := []abi.View{{Type: abi.TypeView}, {Type: abi.TypeView}}
	if r := rt.LocateViews(sess, &locate, &state, 2, &count, views); r != abi.Success {
		t.Fatalf("LocateViews = %v", r)
	}
	if views[0].Pose.Position.X >= 0 || views[1].Pose.Position.X <= 0 {
		t.Errorf("eyes not separated: %+v %+v", views[0].Pose.Position, views[1].Pose.Position)
	}
	if state.ViewStateFlags&abi.ViewStateOrientationValid == 0 {
		t.Errorf("view state = %#x", state.ViewStateFlags)
	}
}

func TestProcs(t *testing.T) {
	rt := New()
	plain := createInstance(t, rt)

	var proc abi.Proc
	if r := rt.GetInstanceProcAddr(plain, ext.CreatePassthroughFB, &proc); r != abi.ErrorFunctionUnsupported || proc != 0 {
		t.Errorf("passthrough not enabled = %v, %#x", r, proc)
	}
	if r := rt.GetInstanceProcAddr(plain, "xrNoSuchFunction", &proc); r != abi.ErrorFunctionUnsupported {
		t.Errorf("unknown function = %v", r)
	}
	if r := rt.GetInstanceProcAddr(abi.NullHandle, ext.InitializeLoaderKHR, &proc); r != abi.ErrorFunctionUnsupported {
		t.Errorf("loader init disabled = %v", r)
	}
	rt.DestroyInstance(plain)

	inst := createInstance(t, rt, openxr.FBPassthrough)
	sess := createSession(t, rt, inst)

	resolve := func(name string) abi.Proc {
		var p abi.Proc
		if r := rt.GetInstanceProcAddr(inst, name, &p); r != abi.Success || p == 0 {
			t.Fatalf("GetInstanceProcAddr(%s) = %v, %#x", name, r, p)
		}
		return p
	}

	create := resolve(ext.CreatePassthroughFB)
	if r := rt.InvokeHandle(create, 1); r != abi.ErrorValidationFailure {
		t.Errorf("wrong shape = %v", r)
	}

	var pt abi.PassthroughFB
	info := abi.PassthroughCreateInfoFB{Type: abi.TypePassthroughCreateInfoFB}
	if r := rt.InvokeCreatePassthroughFB(create, sess, &info, &pt); r != abi.Success {
		t.Fatalf("create passthrough = %v", r)
	}
	if r := rt.InvokeCreatePassthroughFB(create, sess, &info, new(abi.PassthroughFB)); r != abi.ErrorFeatureAlreadyCreatedPassthroughFB {
		t.Errorf("second passthrough = %v", r)
	}

	start := resolve(ext.PassthroughStartFB)
	if r := rt.InvokeHandle(start, uint64(pt)); r != abi.Success || !rt.PassthroughRunning(pt) {
		t.Errorf("start = %v", r)
	}
	if r := rt.InvokeHandle(start, uint64(pt)); r != abi.ErrorUnexpectedStatePassthroughFB {
		t.Errorf("start twice = %v", r)
	}

	createLayer := resolve(ext.CreatePassthroughLayerFB)
	var layer abi.PassthroughLayerFB
	layerInfo := abi.PassthroughLayerCreateInfoFB{
		Type:        abi.TypePassthroughLayerCreateInfoFB,
		Passthrough: pt,
		Purpose:     abi.PassthroughLayerPurposeReconstructionFB,
	}
	if r := rt.InvokeCreatePassthroughLayerFB(createLayer, sess, &layerInfo, &layer); r != abi.Success {
		t.Fatalf("create layer = %v", r)
	}

	setStyle := resolve(ext.PassthroughLayerSetStyleFB)
	style := abi.PassthroughStyleFB{Type: abi.TypePassthroughStyleFB, TextureOpacityFactor: 2}
	if r := rt.InvokePassthroughLayerSetStyleFB(setStyle, layer, &style); r != abi.ErrorValidationFailure {
		t.Errorf("opacity out of range = %v", r)
	}
	style.TextureOpacityFactor = 0.5
	if r := rt.InvokePassthroughLayerSetStyleFB(setStyle, layer, &style); r != abi.Success {
		t.Fatalf("SetStyle = %v", r)
	}
	if got, _ := rt.PassthroughLayerStyle(layer); got.TextureOpacityFactor != 0.5 {
		t.Errorf("stored style = %+v", got)
	}

	destroy := resolve(ext.DestroyPassthroughFB)
	if r := rt.InvokeHandle(destroy, uint64(pt)); r != abi.Success {
		t.Fatalf("destroy = %v", r)
	}
	if rt.Live(resource.KindPassthroughLayer) != 0 {
		t.Errorf("layer survived its passthrough")
	}
}

func TestProcs_Injected(t *testing.T) {
	rt := New(
		WithMissingProc(ext.PassthroughPauseFB, abi.ErrorFunctionUnsupported),
		WithNullProc(ext.PassthroughStartFB),
	)
	inst := createInstance(t, rt, openxr.FBPassthrough)

	var proc abi.Proc
	if r := rt.GetInstanceProcAddr(inst, ext.PassthroughPauseFB, &proc); r != abi.ErrorFunctionUnsupported {
		t.Errorf("missing = %v", r)
	}
	if r := rt.GetInstanceProcAddr(inst, ext.PassthroughStartFB, &proc); r != abi.Success || proc != 0 {
		t.Errorf("null = %v, %#x", r, proc)
	}
}

func TestLoaderInit(t *testing.T) {
	p := DefaultProfile()
	p.LoaderInit = true
	rt := New(WithProfile(p))

	info := abi.InstanceCreateInfo{Type: abi.TypeInstanceCreateInfo}
	abi.PutName(info.ApplicationInfo.ApplicationName[:], "app")
	info.ApplicationInfo.APIVersion = abi.MakeVersion(1, 0, 34)
	var h abi.Instance
	if r := rt.CreateInstance(&info, &h); r != abi.ErrorInitializationFailed {
		t.Errorf("CreateInstance before loader init = %v", r)
	}

	var proc abi.Proc
	if r := rt.GetInstanceProcAddr(abi.NullHandle, ext.InitializeLoaderKHR, &proc); r != abi.Success {
		t.Fatalf("resolve = %v", r)
	}
	if r := rt.InvokeLoaderInit(proc, &abi.LoaderInitInfo{}); r != abi.ErrorValidationFailure {
		t.Errorf("untagged info = %v", r)
	}
	if r := rt.InvokeLoaderInit(proc, &abi.LoaderInitInfo{Type: abi.TypeLoaderInitInfoAndroidKHR}); r != abi.Success {
		t.Fatalf("InvokeLoaderInit = %v", r)
	}
	if r := rt.CreateInstance(&info, &h); r != abi.Success {
		t.Errorf("CreateInstance after loader init = %v", r)
	}
}

func TestEventQueueOverflow(t *testing.T) {
	rt := New()
	inst := createInstance(t, rt)
	sess := createSession(t, rt, inst)

	beginSession(t, rt, sess)
	for i := 0; i < maxQueuedEvents; i++ {
		rt.StopSession(sess)
	}

	buf := abi.EventDataBuffer{Type: abi.TypeEventDataBuffer}
	if r := rt.PollEvent(inst, &buf); r != abi.Success {
		t.Fatalf("PollEvent = %v", r)
	}
	var lost abi.EventDataEventsLost
	lost.Decode(&buf)
	if buf.Type != abi.TypeEventDataEventsLost || lost.LostEventCount == 0 {
		t.Errorf("first event = %v (%d lost), want events lost", buf.Type, lost.LostEventCount)
	}
}
