package ext

// Function names resolved through xrGetInstanceProcAddr.
const (
	InitializeLoaderKHR = "xrInitializeLoaderKHR"

	CreatePassthroughFB           = "xrCreatePassthroughFB"
	DestroyPassthroughFB          = "xrDestroyPassthroughFB"
	PassthroughStartFB            = "xrPassthroughStartFB"
	PassthroughPauseFB            = "xrPassthroughPauseFB"
	CreatePassthroughLayerFB      = "xrCreatePassthroughLayerFB"
	DestroyPassthroughLayerFB     = "xrDestroyPassthroughLayerFB"
	PassthroughLayerPauseFB       = "xrPassthroughLayerPauseFB"
	PassthroughLayerResumeFB      = "xrPassthroughLayerResumeFB"
	PassthroughLayerSetStyleFB    = "xrPassthroughLayerSetStyleFB"
	GetVulkanGraphicsRequirements = "xrGetVulkanGraphicsRequirementsKHR"
)
