package sim

import (
	"go.uber.org/zap"

	"github.com/wippyai/openxr"
	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/resource"
)

func (r *Runtime) session(h abi.Session) (*session, bool) {
	return lookup[*session](r, uint64(h), resource.KindSession)
}

// transition moves s to state and queues the state-changed event.
func (r *Runtime) transition(s *session, state abi.SessionState) {
	Logger().Debug("session state",
		zap.Uint64("session", uint64(s.handle)),
		zap.Stringer("from", s.state),
		zap.Stringer("to", state))
	s.state = state
	var buf abi.EventDataBuffer
	abi.EventDataSessionStateChanged{Session: s.handle, State: state, Time: r.clock}.Encode(&buf)
	s.inst.push(buf)
}

// CreateSession accepts one live session per instance. The new session
// reports idle and then ready.
func (r *Runtime) CreateSession(h abi.Instance, info *abi.SessionCreateInfo, out *abi.Session) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrCreateSession"); res != abi.Success {
		return res
	}

	in, ok := r.instance(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || out == nil || info.Type != abi.TypeSessionCreateInfo {
		return abi.ErrorValidationFailure
	}
	if info.SystemID != SystemID {
		return abi.ErrorSystemInvalid
	}
	if len(children[*session](r, uint64(h), resource.KindSession)) > 0 {
		return abi.ErrorLimitReached
	}

	s := &session{inst: in}
	sh, res := r.insert(resource.KindSession, uint64(h), s)
	if res != abi.Success {
		return res
	}
	s.handle = abi.Session(sh)
	r.transition(s, abi.SessionStateIdle)
	r.transition(s, abi.SessionStateReady)
	*out = s.handle
	return abi.Success
}

func (r *Runtime) DestroySession(h abi.Session) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrDestroySession"); res != abi.Success {
		return res
	}
	return r.remove(resource.KindSession, uint64(h))
}

// BeginSession runs a ready session straight through to focused.
func (r *Runtime) BeginSession(h abi.Session, info *abi.SessionBeginInfo) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrBeginSession"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || info.Type != abi.TypeSessionBeginInfo {
		return abi.ErrorValidationFailure
	}
	if s.begun {
		return abi.ErrorSessionRunning
	}
	if s.state != abi.SessionStateReady {
		return abi.ErrorSessionNotReady
	}
	if !r.profile.supportsViewConfiguration(info.PrimaryViewConfigurationType) {
		return abi.ErrorViewConfigurationTypeUnsupported
	}

	s.begun = true
	s.viewType = info.PrimaryViewConfigurationType
	r.transition(s, abi.SessionStateSynchronized)
	r.transition(s, abi.SessionStateVisible)
	r.transition(s, abi.SessionStateFocused)
	return abi.Success
}

func (r *Runtime) RequestExitSession(h abi.Session) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrRequestExitSession"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if !s.begun {
		return abi.ErrorSessionNotRunning
	}
	s.exiting = true
	if s.state != abi.SessionStateStopping {
		r.transition(s, abi.SessionStateStopping)
	}
	return abi.Success
}

// EndSession returns a stopping session to idle. After an exit request
// the session then reports exiting; otherwise it becomes ready again.
func (r *Runtime) EndSession(h abi.Session) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrEndSession"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if !s.begun {
		return abi.ErrorSessionNotRunning
	}
	if s.state != abi.SessionStateStopping {
		return abi.ErrorSessionNotStopping
	}
	s.begun = false
	s.waited = false
	s.inFrame = false
	r.transition(s, abi.SessionStateIdle)
	if s.exiting {
		r.transition(s, abi.SessionStateExiting)
	} else {
		r.transition(s, abi.SessionStateReady)
	}
	return abi.Success
}

// StopSession moves a running session to stopping without an exit
// request, as a runtime does when the user takes the headset off.
func (r *Runtime) StopSession(h abi.Session) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if !s.begun {
		return abi.ErrorSessionNotRunning
	}
	r.transition(s, abi.SessionStateStopping)
	return abi.Success
}

// State returns the current lifecycle state of a session.
func (r *Runtime) State(h abi.Session) abi.SessionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.session(h); ok {
		return s.state
	}
	return abi.SessionStateUnknown
}

func (r *Runtime) EnumerateReferenceSpaces(h abi.Session, capacity uint32, count *uint32, spaces []abi.ReferenceSpaceType) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrEnumerateReferenceSpaces"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	return fill(capacity, count, spaces, r.referenceSpaces(s))
}

// referenceSpaces filters the profile's list by the extensions enabled
// on the session's instance.
func (r *Runtime) referenceSpaces(s *session) []abi.ReferenceSpaceType {
	all := r.profile.referenceSpaces()
	out := make([]abi.ReferenceSpaceType, 0, len(all))
	for _, t := range all {
		if t == abi.ReferenceSpaceLocalFloor && !s.inst.extensions[openxr.EXTLocalFloor] {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (r *Runtime) referenceSpaceSupported(s *session, t abi.ReferenceSpaceType) bool {
	for _, v := range r.referenceSpaces(s) {
		if v == t {
			return true
		}
	}
	return false
}

func (r *Runtime) CreateReferenceSpace(h abi.Session, info *abi.ReferenceSpaceCreateInfo, out *abi.Space) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrCreateReferenceSpace"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || out == nil || info.Type != abi.TypeReferenceSpaceCreateInfo {
		return abi.ErrorValidationFailure
	}
	if !r.referenceSpaceSupported(s, info.ReferenceSpaceType) {
		return abi.ErrorReferenceSpaceUnsupported
	}
	if !validPose(info.PoseInReferenceSpace) {
		return abi.ErrorPoseInvalid
	}

	sp := &space{sess: s, reference: info.ReferenceSpaceType, offset: info.PoseInReferenceSpace}
	spaceHandle, res := r.insert(resource.KindSpace, uint64(h), sp)
	if res != abi.Success {
		return res
	}
	sp.handle = abi.Space(spaceHandle)
	*out = sp.handle
	return abi.Success
}

// GetReferenceSpaceBoundsRect reports the stage bounds from the profile.
// Other reference spaces have no bounds.
func (r *Runtime) GetReferenceSpaceBoundsRect(h abi.Session, spaceType abi.ReferenceSpaceType, bounds *abi.Extent2Df) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrGetReferenceSpaceBoundsRect"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if bounds == nil {
		return abi.ErrorValidationFailure
	}
	if !r.referenceSpaceSupported(s, spaceType) {
		return abi.ErrorReferenceSpaceUnsupported
	}
	*bounds = abi.Extent2Df{}
	b := r.profile.StageBounds
	if spaceType != abi.ReferenceSpaceStage || b.Width == 0 || b.Height == 0 {
		return abi.SpaceBoundsUnavailable
	}
	*bounds = abi.Extent2Df{Width: b.Width, Height: b.Height}
	return abi.Success
}

func (r *Runtime) CreateActionSpace(h abi.Session, info *abi.ActionSpaceCreateInfo, out *abi.Space) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrCreateActionSpace"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || out == nil || info.Type != abi.TypeActionSpaceCreateInfo {
		return abi.ErrorValidationFailure
	}
	a, ok := r.action(info.Action)
	if !ok || a.set.inst != s.inst {
		return abi.ErrorHandleInvalid
	}
	if a.actionType != abi.ActionTypePoseInput {
		return abi.ErrorActionTypeMismatch
	}
	if !a.hasSubaction(info.SubactionPath) {
		return abi.ErrorPathUnsupported
	}
	if !validPose(info.PoseInActionSpace) {
		return abi.ErrorPoseInvalid
	}

	sp := &space{sess: s, action: a, subaction: info.SubactionPath, offset: info.PoseInActionSpace}
	spaceHandle, res := r.insert(resource.KindSpace, uint64(h), sp)
	if res != abi.Success {
		return res
	}
	sp.handle = abi.Space(spaceHandle)
	*out = sp.handle
	return abi.Success
}

func (r *Runtime) DestroySpace(h abi.Space) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrDestroySpace"); res != abi.Success {
		return res
	}
	return r.remove(resource.KindSpace, uint64(h))
}

func (r *Runtime) space(h abi.Space) (*space, bool) {
	return lookup[*space](r, uint64(h), resource.KindSpace)
}

// worldPose locates sp relative to the stage origin. Action spaces are
// located only while a pose is injected on one of their bindings.
func (r *Runtime) worldPose(sp *space) (abi.Posef, bool) {
	if sp.action == nil {
		return compose(referenceOrigin(sp.reference), sp.offset), true
	}
	pose, ok := r.actionPose(sp.sess, sp.action, sp.subaction)
	if !ok {
		return abi.Posef{}, false
	}
	return compose(pose, sp.offset), true
}

const locatedFlags = abi.SpaceLocationOrientationValid | abi.SpaceLocationPositionValid |
	abi.SpaceLocationOrientationTracked | abi.SpaceLocationPositionTracked

func (r *Runtime) LocateSpace(h, base abi.Space, time abi.Time, location *abi.SpaceLocation) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrLocateSpace"); res != abi.Success {
		return res
	}

	sp, ok := r.space(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	bs, ok := r.space(base)
	if !ok || bs.sess != sp.sess {
		return abi.ErrorHandleInvalid
	}
	if location == nil || location.Type != abi.TypeSpaceLocation {
		return abi.ErrorValidationFailure
	}
	if time <= 0 {
		return abi.ErrorTimeInvalid
	}

	location.LocationFlags = 0
	location.Pose = abi.IdentityPose
	target, ok := r.worldPose(sp)
	if !ok {
		return abi.Success
	}
	origin, ok := r.worldPose(bs)
	if !ok {
		return abi.Success
	}
	location.Pose = relative(origin, target)
	location.LocationFlags = locatedFlags
	return abi.Success
}

// WaitFrame advances the simulated clock by one display period instead
// of blocking.
func (r *Runtime) WaitFrame(h abi.Session, info *abi.FrameWaitInfo, state *abi.FrameState) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrWaitFrame"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if (info != nil && info.Type != abi.TypeFrameWaitInfo) || state == nil || state.Type != abi.TypeFrameState {
		return abi.ErrorValidationFailure
	}
	if !s.begun {
		return abi.ErrorSessionNotRunning
	}

	period := abi.Duration(r.profile.DisplayPeriodNs)
	r.clock += abi.Time(period)
	s.waited = true
	state.PredictedDisplayTime = r.clock + abi.Time(period)
	state.PredictedDisplayPeriod = period
	state.ShouldRender = abi.Bool(s.state == abi.SessionStateVisible || s.state == abi.SessionStateFocused)
	return abi.Success
}

// BeginFrame requires a preceding WaitFrame. Beginning a frame while the
// previous one was never ended discards the previous one.
func (r *Runtime) BeginFrame(h abi.Session, info *abi.FrameBeginInfo) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrBeginFrame"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info != nil && info.Type != abi.TypeFrameBeginInfo {
		return abi.ErrorValidationFailure
	}
	if !s.begun {
		return abi.ErrorSessionNotRunning
	}
	if !s.waited {
		return abi.ErrorCallOrderInvalid
	}
	s.waited = false
	if s.inFrame {
		return abi.FrameDiscarded
	}
	s.inFrame = true
	return abi.Success
}

func (r *Runtime) EndFrame(h abi.Session, info *abi.FrameEndInfo) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrEndFrame"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || info.Type != abi.TypeFrameEndInfo {
		return abi.ErrorValidationFailure
	}
	if !s.begun {
		return abi.ErrorSessionNotRunning
	}
	if !s.inFrame {
		return abi.ErrorCallOrderInvalid
	}
	if info.DisplayTime <= 0 {
		return abi.ErrorTimeInvalid
	}
	supported := false
	for _, m := range r.profile.blendModes() {
		if m == info.EnvironmentBlendMode {
			supported = true
		}
	}
	if !supported {
		return abi.ErrorEnvironmentBlendModeUnsupported
	}
	if uint32(len(info.Layers)) > r.profile.MaxLayerCount {
		return abi.ErrorLayerLimitExceeded
	}
	for _, layer := range info.Layers {
		if res := r.checkLayer(s, layer); res != abi.Success {
			return res
		}
	}

	s.inFrame = false
	s.frameCount++
	return abi.Success
}

// Frames returns how many frames a session has ended successfully.
func (r *Runtime) Frames(h abi.Session) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.session(h); ok {
		return s.frameCount
	}
	return 0
}

func (r *Runtime) checkLayer(s *session, layer abi.CompositionLayer) abi.Result {
	switch l := layer.(type) {
	case *abi.CompositionLayerProjection:
		if l == nil || l.Type != abi.TypeCompositionLayerProjection {
			return abi.ErrorLayerInvalid
		}
		if sp, ok := r.space(l.Space); !ok || sp.sess != s {
			return abi.ErrorHandleInvalid
		}
		if len(l.Views) != s.viewType.ViewCount() {
			return abi.ErrorValidationFailure
		}
		for i := range l.Views {
			if l.Views[i].Type != abi.TypeCompositionLayerProjectionView {
				return abi.ErrorValidationFailure
			}
			if res := r.checkSubImage(s, l.Views[i].SubImage); res != abi.Success {
				return res
			}
		}
	case *abi.CompositionLayerQuad:
		if l == nil || l.Type != abi.TypeCompositionLayerQuad {
			return abi.ErrorLayerInvalid
		}
		if sp, ok := r.space(l.Space); !ok || sp.sess != s {
			return abi.ErrorHandleInvalid
		}
		return r.checkSubImage(s, l.SubImage)
	case *abi.CompositionLayerPassthroughFB:
		if l == nil || l.Type != abi.TypeCompositionLayerPassthroughFB || !s.inst.extensions[openxr.FBPassthrough] {
			return abi.ErrorLayerInvalid
		}
		pl, ok := r.passthroughLayer(l.LayerHandle)
		if !ok || pl.pt.sess != s {
			return abi.ErrorHandleInvalid
		}
	default:
		return abi.ErrorLayerInvalid
	}
	return abi.Success
}

// checkSubImage requires a swapchain of this session with at least one
// released image and a rectangle inside its extent.
func (r *Runtime) checkSubImage(s *session, sub abi.SwapchainSubImage) abi.Result {
	sc, ok := r.swapchain(sub.Swapchain)
	if !ok || sc.sess != s {
		return abi.ErrorHandleInvalid
	}
	if !sc.released {
		return abi.ErrorLayerInvalid
	}
	rect := sub.ImageRect
	if rect.Offset.X < 0 || rect.Offset.Y < 0 || rect.Extent.Width <= 0 || rect.Extent.Height <= 0 ||
		int64(rect.Offset.X)+int64(rect.Extent.Width) > int64(sc.width) ||
		int64(rect.Offset.Y)+int64(rect.Extent.Height) > int64(sc.height) {
		return abi.ErrorSwapchainRectInvalid
	}
	if sub.ImageArrayIndex >= sc.arraySize {
		return abi.ErrorValidationFailure
	}
	return abi.Success
}

// LocateViews places the eyes around the resting head pose.
func (r *Runtime) LocateViews(h abi.Session, info *abi.ViewLocateInfo, state *abi.ViewState, capacity uint32, count *uint32, views []abi.View) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrLocateViews"); res != abi.Success {
		return res
	}

	s, ok := r.session(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || info.Type != abi.TypeViewLocateInfo || state == nil || state.Type != abi.TypeViewState {
		return abi.ErrorValidationFailure
	}
	if !r.profile.supportsViewConfiguration(info.ViewConfigurationType) {
		return abi.ErrorViewConfigurationTypeUnsupported
	}
	if info.DisplayTime <= 0 {
		return abi.ErrorTimeInvalid
	}
	base, ok := r.space(info.Space)
	if !ok || base.sess != s {
		return abi.ErrorHandleInvalid
	}

	state.ViewStateFlags = 0
	offsets := eyeOffsets(info.ViewConfigurationType)
	src := make([]abi.View, len(offsets))
	origin, located := r.worldPose(base)
	head := referenceOrigin(abi.ReferenceSpaceView)
	for i, off := range offsets {
		src[i] = abi.View{Type: abi.TypeView, Pose: abi.IdentityPose, Fov: eyeFov()}
		if located {
			src[i].Pose = relative(origin, compose(head, off))
		}
	}
	if located {
		state.ViewStateFlags = abi.ViewStateOrientationValid | abi.ViewStatePositionValid |
			abi.ViewStateOrientationTracked | abi.ViewStatePositionTracked
	}
	return fillTyped(capacity, count, views, src, abi.TypeView,
		func(v *abi.View) abi.StructureType { return v.Type })
}
