package openxr

// Extension names known to the facade.
const (
	KHRLoaderInit               = "XR_KHR_loader_init"
	KHRLoaderInitAndroid        = "XR_KHR_loader_init_android"
	KHRAndroidCreateInstance    = "XR_KHR_android_create_instance"
	KHRVulkanEnable             = "XR_KHR_vulkan_enable"
	KHRVulkanEnable2            = "XR_KHR_vulkan_enable2"
	KHROpenGLEnable             = "XR_KHR_opengl_enable"
	KHROpenGLESEnable           = "XR_KHR_opengl_es_enable"
	KHRD3D11Enable              = "XR_KHR_D3D11_enable"
	KHRD3D12Enable              = "XR_KHR_D3D12_enable"
	KHRCompositionLayerDepth    = "XR_KHR_composition_layer_depth"
	KHRCompositionLayerCylinder = "XR_KHR_composition_layer_cylinder"
	KHRVisibilityMask           = "XR_KHR_visibility_mask"
	EXTDebugUtils               = "XR_EXT_debug_utils"
	EXTHandTracking             = "XR_EXT_hand_tracking"
	EXTLocalFloor               = "XR_EXT_local_floor"
	FBPassthrough               = "XR_FB_passthrough"
	FBDisplayRefreshRate        = "XR_FB_display_refresh_rate"
	FBColorSpace                = "XR_FB_color_space"
	METAPerformanceMetrics      = "XR_META_performance_metrics"
	MNDHeadless                 = "XR_MND_headless"
)
