//go:build openxr

package loader

// #include "gxr.h"
import "C"

import (
	"unsafe"

	"github.com/wippyai/openxr/abi"
)

func (rt *Runtime) EnumerateAPILayerProperties(capacity uint32, count *uint32, props []abi.APILayerProperties) abi.Result {
	var a arena
	defer a.free()

	buf := allocN[C.XrApiLayerProperties](&a, int(capacity))
	for i := range buf {
		buf[i]._type = C.XR_TYPE_API_LAYER_PROPERTIES
	}
	r := result(C.gxr_EnumerateApiLayerProperties(C.uint32_t(capacity), cCount(count), first(buf)))
	if r != abi.Success {
		return r
	}
	for i := range filled(count, capacity, len(props)) {
		p := &props[i]
		p.Type = abi.StructureType(buf[i]._type)
		getChars(p.LayerName[:], buf[i].layerName[:])
		p.SpecVersion = abi.Version(buf[i].specVersion)
		p.LayerVersion = uint32(buf[i].layerVersion)
		getChars(p.Description[:], buf[i].description[:])
	}
	return r
}

func (rt *Runtime) EnumerateInstanceExtensionProperties(layerName string, capacity uint32, count *uint32, props []abi.ExtensionProperties) abi.Result {
	var a arena
	defer a.free()

	var layer *C.char
	if layerName != "" {
		layer = a.cstring(layerName)
	}
	buf := allocN[C.XrExtensionProperties](&a, int(capacity))
	for i := range buf {
		buf[i]._type = C.XR_TYPE_EXTENSION_PROPERTIES
	}
	r := result(C.gxr_EnumerateInstanceExtensionProperties(layer, C.uint32_t(capacity), cCount(count), first(buf)))
	if r != abi.Success {
		return r
	}
	for i := range filled(count, capacity, len(props)) {
		p := &props[i]
		p.Type = abi.StructureType(buf[i]._type)
		getChars(p.ExtensionName[:], buf[i].extensionName[:])
		p.ExtensionVersion = uint32(buf[i].extensionVersion)
	}
	return r
}

func (rt *Runtime) CreateInstance(info *abi.InstanceCreateInfo, instance *abi.Instance) abi.Result {
	if info == nil || instance == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrInstanceCreateInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	c.createFlags = C.XrInstanceCreateFlags(info.CreateFlags)

	app := &info.ApplicationInfo
	putChars(c.applicationInfo.applicationName[:], app.ApplicationName[:])
	c.applicationInfo.applicationVersion = C.uint32_t(app.ApplicationVersion)
	putChars(c.applicationInfo.engineName[:], app.EngineName[:])
	c.applicationInfo.engineVersion = C.uint32_t(app.EngineVersion)
	c.applicationInfo.apiVersion = C.XrVersion(app.APIVersion)

	c.enabledApiLayerCount = C.uint32_t(len(info.EnabledAPILayerNames))
	c.enabledApiLayerNames = a.cstrings(info.EnabledAPILayerNames)
	c.enabledExtensionCount = C.uint32_t(len(info.EnabledExtensionNames))
	c.enabledExtensionNames = a.cstrings(info.EnabledExtensionNames)

	var h C.uint64_t
	r := result(C.gxr_CreateInstance(c, &h))
	if r == abi.Success {
		*instance = abi.Instance(h)
	}
	return r
}

func (rt *Runtime) DestroyInstance(instance abi.Instance) abi.Result {
	return result(C.gxr_DestroyInstance(C.uint64_t(instance)))
}

func (rt *Runtime) GetInstanceProperties(instance abi.Instance, props *abi.InstanceProperties) abi.Result {
	if props == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrInstanceProperties](&a)
	c._type = C.XrStructureType(props.Type)
	c.next = props.Next
	r := result(C.gxr_GetInstanceProperties(C.uint64_t(instance), c))
	if r == abi.Success {
		props.RuntimeVersion = abi.Version(c.runtimeVersion)
		getChars(props.RuntimeName[:], c.runtimeName[:])
	}
	return r
}

func (rt *Runtime) PollEvent(instance abi.Instance, event *abi.EventDataBuffer) abi.Result {
	if event == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrEventDataBuffer](&a)
	c._type = C.XR_TYPE_EVENT_DATA_BUFFER
	r := result(C.gxr_PollEvent(C.uint64_t(instance), c))
	if r == abi.Success {
		event.Type = abi.StructureType(c._type)
		event.Next = nil
		copy(event.Varying[:], unsafe.Slice((*byte)(unsafe.Pointer(&c.varying[0])), len(c.varying)))
	}
	return r
}

func (rt *Runtime) StringToPath(instance abi.Instance, s string, path *abi.Path) abi.Result {
	var a arena
	defer a.free()

	var p C.XrPath
	r := result(C.gxr_StringToPath(C.uint64_t(instance), a.cstring(s), &p))
	if r == abi.Success && path != nil {
		*path = abi.Path(p)
	}
	return r
}

func (rt *Runtime) PathToString(instance abi.Instance, path abi.Path, capacity uint32, count *uint32, buf []byte) abi.Result {
	if int(capacity) > len(buf) {
		return abi.ErrorValidationFailure
	}
	return result(C.gxr_PathToString(C.uint64_t(instance), C.XrPath(path), C.uint32_t(capacity), cCount(count),
		(*C.char)(unsafe.Pointer(first(buf)))))
}

func (rt *Runtime) GetSystem(instance abi.Instance, info *abi.SystemGetInfo, systemID *abi.SystemID) abi.Result {
	if info == nil || systemID == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrSystemGetInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	c.formFactor = C.XrFormFactor(info.FormFactor)

	var id C.XrSystemId
	r := result(C.gxr_GetSystem(C.uint64_t(instance), c, &id))
	if r == abi.Success {
		*systemID = abi.SystemID(id)
	}
	return r
}

func (rt *Runtime) GetSystemProperties(instance abi.Instance, systemID abi.SystemID, props *abi.SystemProperties) abi.Result {
	if props == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrSystemProperties](&a)
	c._type = C.XrStructureType(props.Type)
	c.next = props.Next
	r := result(C.gxr_GetSystemProperties(C.uint64_t(instance), C.XrSystemId(systemID), c))
	if r != abi.Success {
		return r
	}
	props.SystemID = abi.SystemID(c.systemId)
	props.VendorID = uint32(c.vendorId)
	getChars(props.SystemName[:], c.systemName[:])
	props.GraphicsProperties = abi.SystemGraphicsProperties{
		MaxSwapchainImageHeight: uint32(c.graphicsProperties.maxSwapchainImageHeight),
		MaxSwapchainImageWidth:  uint32(c.graphicsProperties.maxSwapchainImageWidth),
		MaxLayerCount:           uint32(c.graphicsProperties.maxLayerCount),
	}
	props.TrackingProperties = abi.SystemTrackingProperties{
		OrientationTracking: abi.Bool32(c.trackingProperties.orientationTracking),
		PositionTracking:    abi.Bool32(c.trackingProperties.positionTracking),
	}
	return r
}

func (rt *Runtime) EnumerateViewConfigurations(instance abi.Instance, systemID abi.SystemID, capacity uint32, count *uint32, types []abi.ViewConfigurationType) abi.Result {
	if int(capacity) > len(types) {
		return abi.ErrorValidationFailure
	}
	return result(C.gxr_EnumerateViewConfigurations(C.uint64_t(instance), C.XrSystemId(systemID),
		C.uint32_t(capacity), cCount(count), (*C.XrViewConfigurationType)(unsafe.Pointer(first(types)))))
}

func (rt *Runtime) GetViewConfigurationProperties(instance abi.Instance, systemID abi.SystemID, viewType abi.ViewConfigurationType, props *abi.ViewConfigurationProperties) abi.Result {
	if props == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrViewConfigurationProperties](&a)
	c._type = C.XrStructureType(props.Type)
	c.next = props.Next
	r := result(C.gxr_GetViewConfigurationProperties(C.uint64_t(instance), C.XrSystemId(systemID), C.XrViewConfigurationType(viewType), c))
	if r == abi.Success {
		props.ViewConfigurationType = abi.ViewConfigurationType(c.viewConfigurationType)
		props.FovMutable = abi.Bool32(c.fovMutable)
	}
	return r
}

func (rt *Runtime) EnumerateViewConfigurationViews(instance abi.Instance, systemID abi.SystemID, viewType abi.ViewConfigurationType, capacity uint32, count *uint32, views []abi.ViewConfigurationView) abi.Result {
	var a arena
	defer a.free()

	buf := allocN[C.XrViewConfigurationView](&a, int(capacity))
	for i := range buf {
		buf[i]._type = C.XR_TYPE_VIEW_CONFIGURATION_VIEW
	}
	r := result(C.gxr_EnumerateViewConfigurationViews(C.uint64_t(instance), C.XrSystemId(systemID),
		C.XrViewConfigurationType(viewType), C.uint32_t(capacity), cCount(count), first(buf)))
	if r != abi.Success {
		return r
	}
	for i := range filled(count, capacity, len(views)) {
		c := &buf[i]
		views[i] = abi.ViewConfigurationView{
			Type:                            abi.StructureType(c._type),
			RecommendedImageRectWidth:       uint32(c.recommendedImageRectWidth),
			MaxImageRectWidth:               uint32(c.maxImageRectWidth),
			RecommendedImageRectHeight:      uint32(c.recommendedImageRectHeight),
			MaxImageRectHeight:              uint32(c.maxImageRectHeight),
			RecommendedSwapchainSampleCount: uint32(c.recommendedSwapchainSampleCount),
			MaxSwapchainSampleCount:         uint32(c.maxSwapchainSampleCount),
		}
	}
	return r
}

func (rt *Runtime) EnumerateEnvironmentBlendModes(instance abi.Instance, systemID abi.SystemID, viewType abi.ViewConfigurationType, capacity uint32, count *uint32, modes []abi.EnvironmentBlendMode) abi.Result {
	if int(capacity) > len(modes) {
		return abi.ErrorValidationFailure
	}
	return result(C.gxr_EnumerateEnvironmentBlendModes(C.uint64_t(instance), C.XrSystemId(systemID),
		C.XrViewConfigurationType(viewType), C.uint32_t(capacity), cCount(count),
		(*C.XrEnvironmentBlendMode)(unsafe.Pointer(first(modes)))))
}

func (rt *Runtime) CreateSession(instance abi.Instance, info *abi.SessionCreateInfo, session *abi.Session) abi.Result {
	if info == nil || session == nil {
		return abi.ErrorValidationFailure
	}
	var a arena
	defer a.free()

	c := alloc[C.XrSessionCreateInfo](&a)
	c._type = C.XrStructureType(info.Type)
	c.next = info.Next
	c.createFlags = C.XrSessionCreateFlags(info.CreateFlags)
	c.systemId = C.XrSystemId(info.SystemID)

	var h C.uint64_t
	r := result(C.gxr_CreateSession(C.uint64_t(instance), c, &h))
	if r == abi.Success {
		*session = abi.Session(h)
	}
	return r
}
