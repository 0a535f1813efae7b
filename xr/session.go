package xr

import (
	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
)

// Session is a live XrSession. The session lifecycle is driven by the
// runtime and reported through session-state events on the instance.
type Session struct {
	owned[abi.Session]
	inst *Instance
}

func (s *Session) rt() abi.Runtime { return s.inst.ep.rt }

// Instance returns the instance the session was created on.
func (s *Session) Instance() *Instance { return s.inst }

// BeginSession starts the session with the given primary view
// configuration, normally after the ready state is reported.
func (s *Session) BeginSession(viewType abi.ViewConfigurationType) error {
	info := abi.SessionBeginInfo{
		Type:                         abi.TypeSessionBeginInfo,
		PrimaryViewConfigurationType: viewType,
	}
	return errors.Check(errors.PhaseSession, "xrBeginSession", s.rt().BeginSession(s.live(), &info))
}

// EndSession ends a session in the stopping state.
func (s *Session) EndSession() error {
	return errors.Check(errors.PhaseSession, "xrEndSession", s.rt().EndSession(s.live()))
}

// RequestExit asks the runtime to move a running session to stopping.
func (s *Session) RequestExit() error {
	return errors.Check(errors.PhaseSession, "xrRequestExitSession", s.rt().RequestExitSession(s.live()))
}

// EnumerateReferenceSpaces lists the reference space types the session supports.
func (s *Session) EnumerateReferenceSpaces() ([]abi.ReferenceSpaceType, error) {
	h := s.live()
	return enumerate(errors.PhaseSpace, "xrEnumerateReferenceSpaces", nil,
		func(capacity uint32, count *uint32, buf []abi.ReferenceSpaceType) abi.Result {
			return s.rt().EnumerateReferenceSpaces(h, capacity, count, buf)
		})
}

// EnumerateSwapchainFormats lists the graphics-API format codes the
// runtime accepts, in preference order.
func (s *Session) EnumerateSwapchainFormats() ([]int64, error) {
	h := s.live()
	return enumerate(errors.PhaseSwapchain, "xrEnumerateSwapchainFormats", nil,
		func(capacity uint32, count *uint32, buf []int64) abi.Result {
			return s.rt().EnumerateSwapchainFormats(h, capacity, count, buf)
		})
}

// CreateReferenceSpace creates a space of the given type, offset by pose.
func (s *Session) CreateReferenceSpace(spaceType abi.ReferenceSpaceType, pose abi.Posef) (*Space, error) {
	info := abi.ReferenceSpaceCreateInfo{
		Type:                 abi.TypeReferenceSpaceCreateInfo,
		ReferenceSpaceType:   spaceType,
		PoseInReferenceSpace: pose,
	}
	var h abi.Space
	if r := s.rt().CreateReferenceSpace(s.live(), &info, &h); r != abi.Success {
		return nil, errors.New(errors.PhaseSpace, errors.KindRuntimeStatus).
			Function("xrCreateReferenceSpace").
			Result(r).
			Value(spaceType).
			Build()
	}
	return &Space{
		owned:     bind("space", errors.PhaseSpace, h),
		sess:      s,
		reference: spaceType,
	}, nil
}

// ReferenceSpaceBounds returns the play-area rectangle of a reference
// space. XR_SPACE_BOUNDS_UNAVAILABLE is returned as an error carrying
// that status.
func (s *Session) ReferenceSpaceBounds(spaceType abi.ReferenceSpaceType) (abi.Extent2Df, error) {
	var bounds abi.Extent2Df
	if r := s.rt().GetReferenceSpaceBoundsRect(s.live(), spaceType, &bounds); r != abi.Success {
		return abi.Extent2Df{}, errors.Status(errors.PhaseSpace, "xrGetReferenceSpaceBoundsRect", r)
	}
	return bounds, nil
}

// CreateActionSpace creates a space that tracks a pose action.
func (s *Session) CreateActionSpace(action *Action, subactionPath abi.Path, pose abi.Posef) (*Space, error) {
	info := abi.ActionSpaceCreateInfo{
		Type:              abi.TypeActionSpaceCreateInfo,
		Action:            action.live(),
		SubactionPath:     subactionPath,
		PoseInActionSpace: pose,
	}
	var h abi.Space
	if r := s.rt().CreateActionSpace(s.live(), &info, &h); r != abi.Success {
		return nil, errors.Status(errors.PhaseSpace, "xrCreateActionSpace", r)
	}
	return &Space{
		owned: bind("space", errors.PhaseSpace, h),
		sess:  s,
	}, nil
}

// LocateViews returns the per-view pose and field of view at time,
// relative to space, using the two-call protocol.
func (s *Session) LocateViews(viewType abi.ViewConfigurationType, time abi.Time, space *Space) ([]abi.View, abi.ViewStateFlags, error) {
	info := abi.ViewLocateInfo{
		Type:                  abi.TypeViewLocateInfo,
		ViewConfigurationType: viewType,
		DisplayTime:           time,
		Space:                 space.live(),
	}
	state := abi.ViewState{Type: abi.TypeViewState}
	h := s.live()
	views, err := enumerate(errors.PhaseFrame, "xrLocateViews",
		func(v *abi.View) { v.Type = abi.TypeView },
		func(capacity uint32, count *uint32, buf []abi.View) abi.Result {
			return s.rt().LocateViews(h, &info, &state, capacity, count, buf)
		})
	if err != nil {
		return nil, 0, err
	}
	return views, state.ViewStateFlags, nil
}

// Close destroys the session. Spaces, swapchains and passthrough objects
// created from it must be closed first.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	return s.release("xrDestroySession", s.rt().DestroySession)
}

// Space is a live XrSpace. It has no operations of its own beyond being
// located; see Instance.LocateSpace.
type Space struct {
	owned[abi.Space]
	sess      *Session
	reference abi.ReferenceSpaceType
}

// Session returns the session the space was created on.
func (sp *Space) Session() *Session { return sp.sess }

// ReferenceType returns the reference space type, or zero for an action space.
func (sp *Space) ReferenceType() abi.ReferenceSpaceType { return sp.reference }

// Close destroys the space.
func (sp *Space) Close() error {
	if sp == nil {
		return nil
	}
	return sp.release("xrDestroySpace", sp.sess.rt().DestroySpace)
}
