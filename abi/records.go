package abi

import "unsafe"

type Vector2f struct{ X, Y float32 }

type Vector3f struct{ X, Y, Z float32 }

type Quaternionf struct{ X, Y, Z, W float32 }

type Posef struct {
	Orientation Quaternionf
	Position    Vector3f
}

// IdentityPose has a unit orientation and zero translation.
var IdentityPose = Posef{Orientation: Quaternionf{W: 1}}

type Fovf struct {
	AngleLeft, AngleRight, AngleUp, AngleDown float32
}

type Extent2Df struct{ Width, Height float32 }

type Extent2Di struct{ Width, Height int32 }

type Offset2Di struct{ X, Y int32 }

type Rect2Di struct {
	Offset Offset2Di
	Extent Extent2Di
}

type Color4f struct{ R, G, B, A float32 }

type APILayerProperties struct {
	Type         StructureType
	Next         unsafe.Pointer
	LayerName    [MaxAPILayerNameSize]byte
	SpecVersion  Version
	LayerVersion uint32
	Description  [MaxAPILayerDescriptionSize]byte
}

type ExtensionProperties struct {
	Type             StructureType
	Next             unsafe.Pointer
	ExtensionName    [MaxExtensionNameSize]byte
	ExtensionVersion uint32
}

type ApplicationInfo struct {
	ApplicationName    [MaxApplicationNameSize]byte
	ApplicationVersion uint32
	EngineName         [MaxEngineNameSize]byte
	EngineVersion      uint32
	APIVersion         Version
}

// InstanceCreateInfo carries the enabled layer and extension names as Go
// strings; backends marshal them into native string arrays.
type InstanceCreateInfo struct {
	Type                  StructureType
	Next                  unsafe.Pointer
	CreateFlags           uint64
	ApplicationInfo       ApplicationInfo
	EnabledAPILayerNames  []string
	EnabledExtensionNames []string
}

type InstanceProperties struct {
	Type           StructureType
	Next           unsafe.Pointer
	RuntimeVersion Version
	RuntimeName    [MaxRuntimeNameSize]byte
}

type SystemGetInfo struct {
	Type       StructureType
	Next       unsafe.Pointer
	FormFactor FormFactor
}

type SystemGraphicsProperties struct {
	MaxSwapchainImageHeight uint32
	MaxSwapchainImageWidth  uint32
	MaxLayerCount           uint32
}

type SystemTrackingProperties struct {
	OrientationTracking Bool32
	PositionTracking    Bool32
}

type SystemProperties struct {
	Type               StructureType
	Next               unsafe.Pointer
	SystemID           SystemID
	VendorID           uint32
	SystemName         [MaxSystemNameSize]byte
	GraphicsProperties SystemGraphicsProperties
	TrackingProperties SystemTrackingProperties
}

type ViewConfigurationProperties struct {
	Type                  StructureType
	Next                  unsafe.Pointer
	ViewConfigurationType ViewConfigurationType
	FovMutable            Bool32
}

type ViewConfigurationView struct {
	Type                            StructureType
	Next                            unsafe.Pointer
	RecommendedImageRectWidth       uint32
	MaxImageRectWidth               uint32
	RecommendedImageRectHeight      uint32
	MaxImageRectHeight              uint32
	RecommendedSwapchainSampleCount uint32
	MaxSwapchainSampleCount         uint32
}

type SessionCreateInfo struct {
	Type        StructureType
	Next        unsafe.Pointer
	CreateFlags uint64
	SystemID    SystemID
}

type SessionBeginInfo struct {
	Type                         StructureType
	Next                         unsafe.Pointer
	PrimaryViewConfigurationType ViewConfigurationType
}

type FrameWaitInfo struct {
	Type StructureType
	Next unsafe.Pointer
}

type FrameState struct {
	Type                   StructureType
	Next                   unsafe.Pointer
	PredictedDisplayTime   Time
	PredictedDisplayPeriod Duration
	ShouldRender           Bool32
}

type FrameBeginInfo struct {
	Type StructureType
	Next unsafe.Pointer
}

// CompositionLayer is implemented by every layer record that can be
// submitted in FrameEndInfo.
type CompositionLayer interface {
	LayerType() StructureType
}

type FrameEndInfo struct {
	Type                 StructureType
	Next                 unsafe.Pointer
	DisplayTime          Time
	EnvironmentBlendMode EnvironmentBlendMode
	Layers               []CompositionLayer
}

type SwapchainSubImage struct {
	Swapchain       Swapchain
	ImageRect       Rect2Di
	ImageArrayIndex uint32
}

type CompositionLayerProjectionView struct {
	Type     StructureType
	Next     unsafe.Pointer
	Pose     Posef
	Fov      Fovf
	SubImage SwapchainSubImage
}

type CompositionLayerProjection struct {
	Type       StructureType
	Next       unsafe.Pointer
	LayerFlags CompositionLayerFlags
	Space      Space
	Views      []CompositionLayerProjectionView
}

func (l *CompositionLayerProjection) LayerType() StructureType { return l.Type }

type CompositionLayerQuad struct {
	Type          StructureType
	Next          unsafe.Pointer
	LayerFlags    CompositionLayerFlags
	Space         Space
	EyeVisibility EyeVisibility
	SubImage      SwapchainSubImage
	Pose          Posef
	Size          Extent2Df
}

func (l *CompositionLayerQuad) LayerType() StructureType { return l.Type }

type CompositionLayerPassthroughFB struct {
	Type        StructureType
	Next        unsafe.Pointer
	Flags       CompositionLayerFlags
	Space       Space
	LayerHandle PassthroughLayerFB
}

func (l *CompositionLayerPassthroughFB) LayerType() StructureType { return l.Type }

type ReferenceSpaceCreateInfo struct {
	Type                 StructureType
	Next                 unsafe.Pointer
	ReferenceSpaceType   ReferenceSpaceType
	PoseInReferenceSpace Posef
}

type ActionSpaceCreateInfo struct {
	Type              StructureType
	Next              unsafe.Pointer
	Action            Action
	SubactionPath     Path
	PoseInActionSpace Posef
}

type SpaceLocation struct {
	Type          StructureType
	Next          unsafe.Pointer
	LocationFlags SpaceLocationFlags
	Pose          Posef
}

type ViewLocateInfo struct {
	Type                  StructureType
	Next                  unsafe.Pointer
	ViewConfigurationType ViewConfigurationType
	DisplayTime           Time
	Space                 Space
}

type ViewState struct {
	Type           StructureType
	Next           unsafe.Pointer
	ViewStateFlags ViewStateFlags
}

type View struct {
	Type StructureType
	Next unsafe.Pointer
	Pose Posef
	Fov  Fovf
}

type SwapchainCreateInfo struct {
	Type        StructureType
	Next        unsafe.Pointer
	CreateFlags SwapchainCreateFlags
	UsageFlags  SwapchainUsageFlags
	Format      int64
	SampleCount uint32
	Width       uint32
	Height      uint32
	FaceCount   uint32
	ArraySize   uint32
	MipCount    uint32
}

type SwapchainImageAcquireInfo struct {
	Type StructureType
	Next unsafe.Pointer
}

type SwapchainImageWaitInfo struct {
	Type    StructureType
	Next    unsafe.Pointer
	Timeout Duration
}

type SwapchainImageReleaseInfo struct {
	Type StructureType
	Next unsafe.Pointer
}

type ActionSetCreateInfo struct {
	Type                   StructureType
	Next                   unsafe.Pointer
	ActionSetName          [MaxActionSetNameSize]byte
	LocalizedActionSetName [MaxLocalizedActionSetNameSize]byte
	Priority               uint32
}

type ActionCreateInfo struct {
	Type                StructureType
	Next                unsafe.Pointer
	ActionName          [MaxActionNameSize]byte
	ActionType          ActionType
	SubactionPaths      []Path
	LocalizedActionName [MaxLocalizedActionNameSize]byte
}

type ActionSuggestedBinding struct {
	Action  Action
	Binding Path
}

type InteractionProfileSuggestedBinding struct {
	Type               StructureType
	Next               unsafe.Pointer
	InteractionProfile Path
	SuggestedBindings  []ActionSuggestedBinding
}

type SessionActionSetsAttachInfo struct {
	Type       StructureType
	Next       unsafe.Pointer
	ActionSets []ActionSet
}

type ActiveActionSet struct {
	ActionSet     ActionSet
	SubactionPath Path
}

type ActionsSyncInfo struct {
	Type             StructureType
	Next             unsafe.Pointer
	ActiveActionSets []ActiveActionSet
}

type ActionStateGetInfo struct {
	Type          StructureType
	Next          unsafe.Pointer
	Action        Action
	SubactionPath Path
}

type ActionStateBoolean struct {
	Type                 StructureType
	Next                 unsafe.Pointer
	CurrentState         Bool32
	ChangedSinceLastSync Bool32
	LastChangeTime       Time
	IsActive             Bool32
}

type ActionStateFloat struct {
	Type                 StructureType
	Next                 unsafe.Pointer
	CurrentState         float32
	ChangedSinceLastSync Bool32
	LastChangeTime       Time
	IsActive             Bool32
}

type ActionStateVector2f struct {
	Type                 StructureType
	Next                 unsafe.Pointer
	CurrentState         Vector2f
	ChangedSinceLastSync Bool32
	LastChangeTime       Time
	IsActive             Bool32
}

type ActionStatePose struct {
	Type     StructureType
	Next     unsafe.Pointer
	IsActive Bool32
}

type HapticActionInfo struct {
	Type          StructureType
	Next          unsafe.Pointer
	Action        Action
	SubactionPath Path
}

type HapticVibration struct {
	Type      StructureType
	Next      unsafe.Pointer
	Duration  Duration
	Frequency float32
	Amplitude float32
}

type InteractionProfileState struct {
	Type               StructureType
	Next               unsafe.Pointer
	InteractionProfile Path
}

type BoundSourcesForActionEnumerateInfo struct {
	Type   StructureType
	Next   unsafe.Pointer
	Action Action
}

// LoaderInitInfo is the platform payload for xrInitializeLoaderKHR. On
// Android Type is TypeLoaderInitInfoAndroidKHR and the two pointers carry
// the JavaVM and the application context.
type LoaderInitInfo struct {
	Type               StructureType
	Next               unsafe.Pointer
	ApplicationVM      unsafe.Pointer
	ApplicationContext unsafe.Pointer
}

type PassthroughCreateInfoFB struct {
	Type  StructureType
	Next  unsafe.Pointer
	Flags PassthroughFlagsFB
}

type PassthroughLayerCreateInfoFB struct {
	Type        StructureType
	Next        unsafe.Pointer
	Passthrough PassthroughFB
	Flags       PassthroughFlagsFB
	Purpose     PassthroughLayerPurposeFB
}

type PassthroughStyleFB struct {
	Type                 StructureType
	Next                 unsafe.Pointer
	TextureOpacityFactor float32
	EdgeColor            Color4f
}
