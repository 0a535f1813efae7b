package abi

// Proc is the address of a function returned by GetInstanceProcAddr.
// Zero means the function was not resolved.
type Proc uintptr

// Runtime is the native function table. Each method maps onto one OpenXR
// entry point and returns its status unchanged. Output parameters are only
// meaningful when the returned Result is Success.
//
// Methods taking (capacity, count, buffer) follow the two-call enumeration
// protocol.
type Runtime interface {
	ProcInvoker

	GetInstanceProcAddr(instance Instance, name string, proc *Proc) Result

	EnumerateAPILayerProperties(capacity uint32, count *uint32, props []APILayerProperties) Result
	EnumerateInstanceExtensionProperties(layerName string, capacity uint32, count *uint32, props []ExtensionProperties) Result

	CreateInstance(info *InstanceCreateInfo, instance *Instance) Result
	DestroyInstance(instance Instance) Result
	GetInstanceProperties(instance Instance, props *InstanceProperties) Result
	PollEvent(instance Instance, event *EventDataBuffer) Result

	StringToPath(instance Instance, s string, path *Path) Result
	PathToString(instance Instance, path Path, capacity uint32, count *uint32, buf []byte) Result

	GetSystem(instance Instance, info *SystemGetInfo, systemID *SystemID) Result
	GetSystemProperties(instance Instance, systemID SystemID, props *SystemProperties) Result
	EnumerateViewConfigurations(instance Instance, systemID SystemID, capacity uint32, count *uint32, types []ViewConfigurationType) Result
	GetViewConfigurationProperties(instance Instance, systemID SystemID, viewType ViewConfigurationType, props *ViewConfigurationProperties) Result
	EnumerateViewConfigurationViews(instance Instance, systemID SystemID, viewType ViewConfigurationType, capacity uint32, count *uint32, views []ViewConfigurationView) Result
	EnumerateEnvironmentBlendModes(instance Instance, systemID SystemID, viewType ViewConfigurationType, capacity uint32, count *uint32, modes []EnvironmentBlendMode) Result

	CreateSession(instance Instance, info *SessionCreateInfo, session *Session) Result
	DestroySession(session Session) Result
	BeginSession(session Session, info *SessionBeginInfo) Result
	EndSession(session Session) Result
	RequestExitSession(session Session) Result

	EnumerateReferenceSpaces(session Session, capacity uint32, count *uint32, spaces []ReferenceSpaceType) Result
	CreateReferenceSpace(session Session, info *ReferenceSpaceCreateInfo, space *Space) Result
	GetReferenceSpaceBoundsRect(session Session, spaceType ReferenceSpaceType, bounds *Extent2Df) Result
	CreateActionSpace(session Session, info *ActionSpaceCreateInfo, space *Space) Result
	LocateSpace(space, baseSpace Space, time Time, location *SpaceLocation) Result
	DestroySpace(space Space) Result

	EnumerateSwapchainFormats(session Session, capacity uint32, count *uint32, formats []int64) Result
	CreateSwapchain(session Session, info *SwapchainCreateInfo, swapchain *Swapchain) Result
	DestroySwapchain(swapchain Swapchain) Result
	// EnumerateSwapchainImages only supports the count query (capacity 0);
	// image arrays are graphics-API specific.
	EnumerateSwapchainImages(swapchain Swapchain, capacity uint32, count *uint32) Result
	AcquireSwapchainImage(swapchain Swapchain, info *SwapchainImageAcquireInfo, index *uint32) Result
	WaitSwapchainImage(swapchain Swapchain, info *SwapchainImageWaitInfo) Result
	ReleaseSwapchainImage(swapchain Swapchain, info *SwapchainImageReleaseInfo) Result

	WaitFrame(session Session, info *FrameWaitInfo, state *FrameState) Result
	BeginFrame(session Session, info *FrameBeginInfo) Result
	EndFrame(session Session, info *FrameEndInfo) Result
	LocateViews(session Session, info *ViewLocateInfo, state *ViewState, capacity uint32, count *uint32, views []View) Result

	CreateActionSet(instance Instance, info *ActionSetCreateInfo, actionSet *ActionSet) Result
	DestroyActionSet(actionSet ActionSet) Result
	CreateAction(actionSet ActionSet, info *ActionCreateInfo, action *Action) Result
	DestroyAction(action Action) Result
	SuggestInteractionProfileBindings(instance Instance, info *InteractionProfileSuggestedBinding) Result
	AttachSessionActionSets(session Session, info *SessionActionSetsAttachInfo) Result
	GetCurrentInteractionProfile(session Session, topLevelUserPath Path, state *InteractionProfileState) Result
	GetActionStateBoolean(session Session, info *ActionStateGetInfo, state *ActionStateBoolean) Result
	GetActionStateFloat(session Session, info *ActionStateGetInfo, state *ActionStateFloat) Result
	GetActionStateVector2f(session Session, info *ActionStateGetInfo, state *ActionStateVector2f) Result
	GetActionStatePose(session Session, info *ActionStateGetInfo, state *ActionStatePose) Result
	SyncActions(session Session, info *ActionsSyncInfo) Result
	EnumerateBoundSourcesForAction(session Session, info *BoundSourcesForActionEnumerateInfo, capacity uint32, count *uint32, sources []Path) Result
	ApplyHapticFeedback(session Session, info *HapticActionInfo, vibration *HapticVibration) Result
	StopHapticFeedback(session Session, info *HapticActionInfo) Result
}

// ProcInvoker calls a resolved Proc. There is one method per function
// shape; the caller is responsible for pairing a Proc with the shape of
// the function it was resolved from.
type ProcInvoker interface {
	// InvokeLoaderInit calls an xrInitializeLoaderKHR-shaped function.
	InvokeLoaderInit(proc Proc, info *LoaderInitInfo) Result

	// InvokeHandle calls a function taking a single handle, such as
	// xrDestroyPassthroughFB or xrPassthroughLayerPauseFB.
	InvokeHandle(proc Proc, handle uint64) Result

	InvokeCreatePassthroughFB(proc Proc, session Session, info *PassthroughCreateInfoFB, out *PassthroughFB) Result
	InvokeCreatePassthroughLayerFB(proc Proc, session Session, info *PassthroughLayerCreateInfoFB, out *PassthroughLayerFB) Result
	InvokePassthroughLayerSetStyleFB(proc Proc, layer PassthroughLayerFB, style *PassthroughStyleFB) Result
}
