package sim

import (
	"slices"

	"go.uber.org/zap"

	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/resource"
)

func (r *Runtime) EnumerateAPILayerProperties(capacity uint32, count *uint32, props []abi.APILayerProperties) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrEnumerateApiLayerProperties"); res != abi.Success {
		return res
	}

	src := make([]abi.APILayerProperties, len(r.profile.Layers))
	for i, l := range r.profile.Layers {
		src[i] = abi.APILayerProperties{
			Type:         abi.TypeAPILayerProperties,
			SpecVersion:  abi.MakeVersion(1, 0, 34),
			LayerVersion: l.Version,
		}
		abi.PutName(src[i].LayerName[:], l.Name)
		abi.PutName(src[i].Description[:], l.Description)
	}
	return fillTyped(capacity, count, props, src, abi.TypeAPILayerProperties,
		func(p *abi.APILayerProperties) abi.StructureType { return p.Type })
}

func (r *Runtime) EnumerateInstanceExtensionProperties(layerName string, capacity uint32, count *uint32, props []abi.ExtensionProperties) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrEnumerateInstanceExtensionProperties"); res != abi.Success {
		return res
	}

	// Simulated layers contribute no extensions of their own.
	if layerName != "" {
		if !r.profile.hasLayer(layerName) {
			return abi.ErrorAPILayerNotPresent
		}
		return fill(capacity, count, props, nil)
	}

	src := make([]abi.ExtensionProperties, len(r.profile.Extensions))
	for i, e := range r.profile.Extensions {
		src[i] = abi.ExtensionProperties{
			Type:             abi.TypeExtensionProperties,
			ExtensionVersion: e.Version,
		}
		abi.PutName(src[i].ExtensionName[:], e.Name)
	}
	return fillTyped(capacity, count, props, src, abi.TypeExtensionProperties,
		func(p *abi.ExtensionProperties) abi.StructureType { return p.Type })
}

func (r *Runtime) CreateInstance(info *abi.InstanceCreateInfo, out *abi.Instance) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrCreateInstance"); res != abi.Success {
		return res
	}

	if info == nil || out == nil || info.Type != abi.TypeInstanceCreateInfo {
		return abi.ErrorValidationFailure
	}
	if r.profile.LoaderInit && !r.loaderInitialized {
		return abi.ErrorInitializationFailed
	}
	app := info.ApplicationInfo
	name := abi.GoString(app.ApplicationName[:])
	if name == "" {
		return abi.ErrorNameInvalid
	}
	if app.APIVersion.Major() != 1 {
		return abi.ErrorAPIVersionUnsupported
	}
	for _, l := range info.EnabledAPILayerNames {
		if !r.profile.hasLayer(l) {
			return abi.ErrorAPILayerNotPresent
		}
	}
	enabled := make(map[string]bool, len(info.EnabledExtensionNames))
	for _, e := range info.EnabledExtensionNames {
		if !r.profile.hasExtension(e) {
			Logger().Debug("extension not present", zap.String("extension", e))
			return abi.ErrorExtensionNotPresent
		}
		enabled[e] = true
	}

	in := &instance{
		appName:      name,
		engineName:   abi.GoString(app.EngineName[:]),
		apiVersion:   app.APIVersion,
		extensions:   enabled,
		enabledNames: slices.Clone(info.EnabledExtensionNames),
		bindings:     make(map[abi.Path][]abi.ActionSuggestedBinding),
	}
	h, res := r.insert(resource.KindInstance, 0, in)
	if res != abi.Success {
		return res
	}
	in.handle = abi.Instance(h)
	*out = in.handle
	return abi.Success
}

func (r *Runtime) DestroyInstance(h abi.Instance) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrDestroyInstance"); res != abi.Success {
		return res
	}
	return r.remove(resource.KindInstance, uint64(h))
}

func (r *Runtime) instance(h abi.Instance) (*instance, bool) {
	return lookup[*instance](r, uint64(h), resource.KindInstance)
}

func (r *Runtime) GetInstanceProperties(h abi.Instance, props *abi.InstanceProperties) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrGetInstanceProperties"); res != abi.Success {
		return res
	}

	if _, ok := r.instance(h); !ok {
		return abi.ErrorHandleInvalid
	}
	if props == nil || props.Type != abi.TypeInstanceProperties {
		return abi.ErrorValidationFailure
	}
	version, err := abi.ParseVersion(r.profile.RuntimeVersion)
	if err != nil {
		return abi.ErrorRuntimeFailure
	}
	props.RuntimeVersion = version
	abi.PutName(props.RuntimeName[:], r.profile.RuntimeName)
	return abi.Success
}

func (r *Runtime) PollEvent(h abi.Instance, event *abi.EventDataBuffer) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrPollEvent"); res != abi.Success {
		return res
	}

	in, ok := r.instance(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if event == nil || event.Type != abi.TypeEventDataBuffer {
		return abi.ErrorValidationFailure
	}
	if in.lostEvents > 0 {
		abi.EventDataEventsLost{LostEventCount: in.lostEvents}.Encode(event)
		in.lostEvents = 0
		return abi.Success
	}
	if len(in.events) == 0 {
		return abi.EventUnavailable
	}
	*event = in.events[0]
	in.events = in.events[1:]
	return abi.Success
}

func (r *Runtime) StringToPath(h abi.Instance, s string, path *abi.Path) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrStringToPath"); res != abi.Success {
		return res
	}

	in, ok := r.instance(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	if path == nil {
		return abi.ErrorValidationFailure
	}
	if !validPath(s) {
		return abi.ErrorPathFormatInvalid
	}
	*path = in.paths.intern(s)
	return abi.Success
}

// PathToString reports the text length including the terminating NUL.
func (r *Runtime) PathToString(h abi.Instance, path abi.Path, capacity uint32, count *uint32, buf []byte) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrPathToString"); res != abi.Success {
		return res
	}

	in, ok := r.instance(h)
	if !ok {
		return abi.ErrorHandleInvalid
	}
	text, ok := in.paths.text(path)
	if !ok {
		return abi.ErrorPathInvalid
	}
	return fill(capacity, count, buf, append([]byte(text), 0))
}

func (r *Runtime) GetSystem(h abi.Instance, info *abi.SystemGetInfo, systemID *abi.SystemID) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrGetSystem"); res != abi.Success {
		return res
	}

	if _, ok := r.instance(h); !ok {
		return abi.ErrorHandleInvalid
	}
	if info == nil || systemID == nil || info.Type != abi.TypeSystemGetInfo {
		return abi.ErrorValidationFailure
	}
	if !r.profile.supportsFormFactor(info.FormFactor) {
		return abi.ErrorFormFactorUnsupported
	}
	*systemID = SystemID
	return abi.Success
}

// system checks an instance and system id pair.
func (r *Runtime) system(h abi.Instance, id abi.SystemID) abi.Result {
	if _, ok := r.instance(h); !ok {
		return abi.ErrorHandleInvalid
	}
	if id != SystemID {
		return abi.ErrorSystemInvalid
	}
	return abi.Success
}

func (r *Runtime) GetSystemProperties(h abi.Instance, id abi.SystemID, props *abi.SystemProperties) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrGetSystemProperties"); res != abi.Success {
		return res
	}

	if res := r.system(h, id); res != abi.Success {
		return res
	}
	if props == nil || props.Type != abi.TypeSystemProperties {
		return abi.ErrorValidationFailure
	}
	props.SystemID = SystemID
	props.VendorID = r.profile.VendorID
	abi.PutName(props.SystemName[:], r.profile.SystemName)
	props.GraphicsProperties = abi.SystemGraphicsProperties{
		MaxSwapchainImageWidth:  r.profile.Views.MaxWidth,
		MaxSwapchainImageHeight: r.profile.Views.MaxHeight,
		MaxLayerCount:           r.profile.MaxLayerCount,
	}
	props.TrackingProperties = abi.SystemTrackingProperties{
		OrientationTracking: abi.True,
		PositionTracking:    abi.True,
	}
	return abi.Success
}

func (r *Runtime) EnumerateViewConfigurations(h abi.Instance, id abi.SystemID, capacity uint32, count *uint32, types []abi.ViewConfigurationType) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrEnumerateViewConfigurations"); res != abi.Success {
		return res
	}

	if res := r.system(h, id); res != abi.Success {
		return res
	}
	return fill(capacity, count, types, r.profile.viewConfigurations())
}

func (r *Runtime) GetViewConfigurationProperties(h abi.Instance, id abi.SystemID, viewType abi.ViewConfigurationType, props *abi.ViewConfigurationProperties) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrGetViewConfigurationProperties"); res != abi.Success {
		return res
	}

	if res := r.system(h, id); res != abi.Success {
		return res
	}
	if props == nil || props.Type != abi.TypeViewConfigurationProperties {
		return abi.ErrorValidationFailure
	}
	if !r.profile.supportsViewConfiguration(viewType) {
		return abi.ErrorViewConfigurationTypeUnsupported
	}
	props.ViewConfigurationType = viewType
	props.FovMutable = abi.Bool(r.profile.FovMutable)
	return abi.Success
}

func (r *Runtime) EnumerateViewConfigurationViews(h abi.Instance, id abi.SystemID, viewType abi.ViewConfigurationType, capacity uint32, count *uint32, views []abi.ViewConfigurationView) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrEnumerateViewConfigurationViews"); res != abi.Success {
		return res
	}

	if res := r.system(h, id); res != abi.Success {
		return res
	}
	if !r.profile.supportsViewConfiguration(viewType) {
		return abi.ErrorViewConfigurationTypeUnsupported
	}
	v := r.profile.Views
	src := make([]abi.ViewConfigurationView, viewType.ViewCount())
	for i := range src {
		src[i] = abi.ViewConfigurationView{
			Type:                            abi.TypeViewConfigurationView,
			RecommendedImageRectWidth:       v.RecommendedWidth,
			MaxImageRectWidth:               v.MaxWidth,
			RecommendedImageRectHeight:      v.RecommendedHeight,
			MaxImageRectHeight:              v.MaxHeight,
			RecommendedSwapchainSampleCount: max(v.SampleCount, 1),
			MaxSwapchainSampleCount:         max(v.MaxSampleCount, v.SampleCount, 1),
		}
	}
	return fillTyped(capacity, count, views, src, abi.TypeViewConfigurationView,
		func(v *abi.ViewConfigurationView) abi.StructureType { return v.Type })
}

func (r *Runtime) EnumerateEnvironmentBlendModes(h abi.Instance, id abi.SystemID, viewType abi.ViewConfigurationType, capacity uint32, count *uint32, modes []abi.EnvironmentBlendMode) abi.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res := r.enter("xrEnumerateEnvironmentBlendModes"); res != abi.Success {
		return res
	}

	if res := r.system(h, id); res != abi.Success {
		return res
	}
	if !r.profile.supportsViewConfiguration(viewType) {
		return abi.ErrorViewConfigurationTypeUnsupported
	}
	return fill(capacity, count, modes, r.profile.blendModes())
}
