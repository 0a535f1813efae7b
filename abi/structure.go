package abi

// StructureType is the discriminator stored in the Type field of every record.
type StructureType int32

const (
	TypeUnknown                              StructureType = 0
	TypeAPILayerProperties                   StructureType = 1
	TypeExtensionProperties                  StructureType = 2
	TypeInstanceCreateInfo                   StructureType = 3
	TypeSystemGetInfo                        StructureType = 4
	TypeSystemProperties                     StructureType = 5
	TypeViewLocateInfo                       StructureType = 6
	TypeView                                 StructureType = 7
	TypeSessionCreateInfo                    StructureType = 8
	TypeSwapchainCreateInfo                  StructureType = 9
	TypeSessionBeginInfo                     StructureType = 10
	TypeViewState                            StructureType = 11
	TypeFrameEndInfo                         StructureType = 12
	TypeHapticVibration                      StructureType = 13
	TypeEventDataBuffer                      StructureType = 16
	TypeEventDataInstanceLossPending         StructureType = 17
	TypeEventDataSessionStateChanged         StructureType = 18
	TypeActionStateBoolean                   StructureType = 23
	TypeActionStateFloat                     StructureType = 24
	TypeActionStateVector2f                  StructureType = 25
	TypeActionStatePose                      StructureType = 27
	TypeActionSetCreateInfo                  StructureType = 28
	TypeActionCreateInfo                     StructureType = 29
	TypeInstanceProperties                   StructureType = 32
	TypeFrameWaitInfo                        StructureType = 33
	TypeCompositionLayerProjection           StructureType = 35
	TypeCompositionLayerQuad                 StructureType = 36
	TypeReferenceSpaceCreateInfo             StructureType = 37
	TypeActionSpaceCreateInfo                StructureType = 38
	TypeEventDataReferenceSpaceChangePending StructureType = 40
	TypeViewConfigurationView                StructureType = 41
	TypeSpaceLocation                        StructureType = 42
	TypeSpaceVelocity                        StructureType = 43
	TypeFrameState                           StructureType = 44
	TypeViewConfigurationProperties          StructureType = 45
	TypeFrameBeginInfo                       StructureType = 46
	TypeCompositionLayerProjectionView       StructureType = 48
	TypeEventDataEventsLost                  StructureType = 49
	TypeInteractionProfileSuggestedBinding   StructureType = 51
	TypeEventDataInteractionProfileChanged   StructureType = 52
	TypeInteractionProfileState              StructureType = 53
	TypeSwapchainImageAcquireInfo            StructureType = 55
	TypeSwapchainImageWaitInfo               StructureType = 56
	TypeSwapchainImageReleaseInfo            StructureType = 57
	TypeActionStateGetInfo                   StructureType = 58
	TypeHapticActionInfo                     StructureType = 59
	TypeSessionActionSetsAttachInfo          StructureType = 60
	TypeActionsSyncInfo                      StructureType = 61
	TypeBoundSourcesForActionEnumerateInfo   StructureType = 62

	TypeLoaderInitInfoAndroidKHR StructureType = 1000089000

	TypeSystemPassthroughPropertiesFB    StructureType = 1000118000
	TypePassthroughCreateInfoFB          StructureType = 1000118001
	TypePassthroughLayerCreateInfoFB     StructureType = 1000118002
	TypeCompositionLayerPassthroughFB    StructureType = 1000118003
	TypePassthroughStyleFB               StructureType = 1000118020
	TypeEventDataPassthroughStateChanged StructureType = 1000118030
)
