package abi

type FormFactor int32

const (
	FormFactorHeadMountedDisplay FormFactor = 1
	FormFactorHandheldDisplay    FormFactor = 2
)

type ViewConfigurationType int32

const (
	ViewConfigurationPrimaryMono   ViewConfigurationType = 1
	ViewConfigurationPrimaryStereo ViewConfigurationType = 2
)

type EnvironmentBlendMode int32

const (
	BlendModeOpaque     EnvironmentBlendMode = 1
	BlendModeAdditive   EnvironmentBlendMode = 2
	BlendModeAlphaBlend EnvironmentBlendMode = 3
)

type ReferenceSpaceType int32

const (
	ReferenceSpaceView       ReferenceSpaceType = 1
	ReferenceSpaceLocal      ReferenceSpaceType = 2
	ReferenceSpaceStage      ReferenceSpaceType = 3
	ReferenceSpaceLocalFloor ReferenceSpaceType = 1000426000
)

func (t ReferenceSpaceType) String() string {
	switch t {
	case ReferenceSpaceView:
		return "view"
	case ReferenceSpaceLocal:
		return "local"
	case ReferenceSpaceStage:
		return "stage"
	case ReferenceSpaceLocalFloor:
		return "local_floor"
	}
	return "unknown"
}

type ActionType int32

const (
	ActionTypeBooleanInput    ActionType = 1
	ActionTypeFloatInput      ActionType = 2
	ActionTypeVector2fInput   ActionType = 3
	ActionTypePoseInput       ActionType = 4
	ActionTypeVibrationOutput ActionType = 100
)

// SessionState is the runtime-driven session lifecycle, reported through
// session-state-changed events.
type SessionState int32

const (
	SessionStateUnknown      SessionState = 0
	SessionStateIdle         SessionState = 1
	SessionStateReady        SessionState = 2
	SessionStateSynchronized SessionState = 3
	SessionStateVisible      SessionState = 4
	SessionStateFocused      SessionState = 5
	SessionStateStopping     SessionState = 6
	SessionStateLossPending  SessionState = 7
	SessionStateExiting      SessionState = 8
)

func (s SessionState) String() string {
	switch s {
	case SessionStateIdle:
		return "idle"
	case SessionStateReady:
		return "ready"
	case SessionStateSynchronized:
		return "synchronized"
	case SessionStateVisible:
		return "visible"
	case SessionStateFocused:
		return "focused"
	case SessionStateStopping:
		return "stopping"
	case SessionStateLossPending:
		return "loss_pending"
	case SessionStateExiting:
		return "exiting"
	}
	return "unknown"
}

// Running reports whether frames may be submitted in this state.
func (s SessionState) Running() bool {
	return s >= SessionStateSynchronized && s <= SessionStateFocused
}

type EyeVisibility int32

const (
	EyeVisibilityBoth  EyeVisibility = 0
	EyeVisibilityLeft  EyeVisibility = 1
	EyeVisibilityRight EyeVisibility = 2
)

type SpaceLocationFlags uint64

const (
	SpaceLocationOrientationValid   SpaceLocationFlags = 0x1
	SpaceLocationPositionValid      SpaceLocationFlags = 0x2
	SpaceLocationOrientationTracked SpaceLocationFlags = 0x4
	SpaceLocationPositionTracked    SpaceLocationFlags = 0x8
)

type ViewStateFlags uint64

const (
	ViewStateOrientationValid   ViewStateFlags = 0x1
	ViewStatePositionValid      ViewStateFlags = 0x2
	ViewStateOrientationTracked ViewStateFlags = 0x4
	ViewStatePositionTracked    ViewStateFlags = 0x8
)

type SwapchainUsageFlags uint64

const (
	SwapchainUsageColorAttachment        SwapchainUsageFlags = 0x1
	SwapchainUsageDepthStencilAttachment SwapchainUsageFlags = 0x2
	SwapchainUsageUnorderedAccess        SwapchainUsageFlags = 0x4
	SwapchainUsageTransferSrc            SwapchainUsageFlags = 0x8
	SwapchainUsageTransferDst            SwapchainUsageFlags = 0x10
	SwapchainUsageSampled                SwapchainUsageFlags = 0x20
	SwapchainUsageMutableFormat          SwapchainUsageFlags = 0x40
)

type SwapchainCreateFlags uint64

type CompositionLayerFlags uint64

const (
	CompositionLayerCorrectChromaticAberration CompositionLayerFlags = 0x1
	CompositionLayerBlendTextureSourceAlpha    CompositionLayerFlags = 0x2
	CompositionLayerUnpremultipliedAlpha       CompositionLayerFlags = 0x4
)

type PassthroughFlagsFB uint64

const (
	PassthroughIsRunningAtCreationFB PassthroughFlagsFB = 0x1
	PassthroughLayerDepthFB          PassthroughFlagsFB = 0x2
)

type PassthroughLayerPurposeFB int32

const (
	PassthroughLayerPurposeReconstructionFB PassthroughLayerPurposeFB = 0
	PassthroughLayerPurposeProjectedFB      PassthroughLayerPurposeFB = 1
)
