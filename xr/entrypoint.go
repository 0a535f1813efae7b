package xr

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/openxr"
	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
	"github.com/wippyai/openxr/ext"
)

// EntryPoint is the runtime's function table plus the calls that are
// valid before any instance exists.
type EntryPoint struct {
	rt abi.Runtime
}

// Open wraps a runtime whose loader needs no platform initialization.
func Open(rt abi.Runtime) *EntryPoint {
	return &EntryPoint{rt: rt}
}

// InitializeLoader resolves xrInitializeLoaderKHR against the null
// instance and calls it with info. On failure no EntryPoint is returned.
func InitializeLoader(rt abi.Runtime, info *abi.LoaderInitInfo) (*EntryPoint, error) {
	if info == nil {
		return nil, errors.InvalidInput(errors.PhaseLoader, "loader init info is nil")
	}

	initialize, err := ext.Resolve(rt, abi.NullHandle, ext.InitializeLoaderKHR, ext.LoaderInit)
	if err != nil {
		return nil, err
	}
	if r := initialize(info); r != abi.Success {
		return nil, errors.Status(errors.PhaseLoader, ext.InitializeLoaderKHR, r)
	}
	return &EntryPoint{rt: rt}, nil
}

// Runtime returns the underlying function table.
func (ep *EntryPoint) Runtime() abi.Runtime {
	return ep.rt
}

// LayerProperties enumerates the available API layers.
func (ep *EntryPoint) LayerProperties() ([]abi.APILayerProperties, error) {
	return enumerate(errors.PhaseLoader, "xrEnumerateApiLayerProperties",
		func(p *abi.APILayerProperties) { p.Type = abi.TypeAPILayerProperties },
		ep.rt.EnumerateAPILayerProperties)
}

// EnumerateLayers returns the names of the available API layers in
// runtime order.
func (ep *EntryPoint) EnumerateLayers() ([]string, error) {
	props, err := ep.LayerProperties()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(props))
	for i := range props {
		names[i] = abi.GoString(props[i].LayerName[:])
	}
	return names, nil
}

// ExtensionProperties enumerates the instance extensions advertised by
// the runtime and its implicit layers.
func (ep *EntryPoint) ExtensionProperties() ([]abi.ExtensionProperties, error) {
	return enumerate(errors.PhaseLoader, "xrEnumerateInstanceExtensionProperties",
		func(p *abi.ExtensionProperties) { p.Type = abi.TypeExtensionProperties },
		func(capacity uint32, count *uint32, buf []abi.ExtensionProperties) abi.Result {
			return ep.rt.EnumerateInstanceExtensionProperties("", capacity, count, buf)
		})
}

// EnumerateExtensions returns the advertised extension names in runtime order.
func (ep *EntryPoint) EnumerateExtensions() ([]string, error) {
	props, err := ep.ExtensionProperties()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(props))
	for i := range props {
		names[i] = abi.GoString(props[i].ExtensionName[:])
	}
	return names, nil
}

// InstanceOptions controls instance creation. Zero fields take defaults:
// openxr.CurrentAPIVersion and a head-mounted display form factor.
type InstanceOptions struct {
	Next               unsafe.Pointer
	ApplicationName    string
	EngineName         string
	Layers             []string
	Extensions         []string
	APIVersion         abi.Version
	ApplicationVersion uint32
	EngineVersion      uint32
	FormFactor         abi.FormFactor
}

// CreateInstance creates an instance with the given names and extensions.
// Names longer than the runtime maximum are truncated.
//
// On success the system for a head-mounted display is looked up right
// away. If that lookup fails the live Instance is still returned together
// with an errors.KindPartialConstruction error; SystemID is then zero
// and RefreshSystem can retry. The caller owns the Instance either way.
func (ep *EntryPoint) CreateInstance(applicationName, engineName string, extensions []string) (*Instance, error) {
	return ep.CreateInstanceWith(InstanceOptions{
		ApplicationName: applicationName,
		EngineName:      engineName,
		Extensions:      extensions,
	})
}

// CreateInstanceWith is CreateInstance with full control over the
// create info. See CreateInstance for the partial-construction contract.
func (ep *EntryPoint) CreateInstanceWith(opts InstanceOptions) (*Instance, error) {
	info := abi.InstanceCreateInfo{
		Type:                  abi.TypeInstanceCreateInfo,
		Next:                  opts.Next,
		EnabledAPILayerNames:  opts.Layers,
		EnabledExtensionNames: opts.Extensions,
	}
	app := &info.ApplicationInfo
	abi.PutName(app.ApplicationName[:], opts.ApplicationName)
	abi.PutName(app.EngineName[:], opts.EngineName)
	app.ApplicationVersion = opts.ApplicationVersion
	app.EngineVersion = opts.EngineVersion
	app.APIVersion = opts.APIVersion
	if app.APIVersion == 0 {
		app.APIVersion = openxr.CurrentAPIVersion
	}

	var h abi.Instance
	if r := ep.rt.CreateInstance(&info, &h); r != abi.Success {
		return nil, errors.Status(errors.PhaseInstance, "xrCreateInstance", r)
	}

	formFactor := opts.FormFactor
	if formFactor == 0 {
		formFactor = abi.FormFactorHeadMountedDisplay
	}

	enabled := make(map[string]struct{}, len(opts.Extensions))
	for _, name := range opts.Extensions {
		enabled[name] = struct{}{}
	}

	inst := &Instance{
		owned:      bind("instance", errors.PhaseInstance, h),
		ep:         ep,
		procs:      ext.NewTable(ep.rt, h),
		extensions: enabled,
		formFactor: formFactor,
	}

	props := abi.InstanceProperties{Type: abi.TypeInstanceProperties}
	if r := ep.rt.GetInstanceProperties(h, &props); r != abi.Success {
		return inst, inst.partial("runtime properties unavailable",
			errors.Status(errors.PhaseInstance, "xrGetInstanceProperties", r))
	}
	inst.runtimeName = abi.GoString(props.RuntimeName[:])
	inst.runtimeVersion = props.RuntimeVersion

	if err := inst.RefreshSystem(); err != nil {
		return inst, inst.partial("system unavailable", err)
	}
	return inst, nil
}

func (i *Instance) partial(what string, cause error) error {
	Logger().Warn("instance partially constructed",
		zap.Uint64("handle", uint64(i.handle)),
		zap.String("detail", what),
		zap.Error(cause))
	return errors.PartialConstruction(errors.PhaseInstance, what, cause)
}
