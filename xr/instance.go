package xr

import (
	"sort"
	"unsafe"

	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
	"github.com/wippyai/openxr/ext"
)

// Instance is a live XrInstance. Runtime name and version are captured at
// creation and never change.
type Instance struct {
	owned[abi.Instance]
	ep             *EntryPoint
	procs          *ext.Table
	extensions     map[string]struct{}
	runtimeName    string
	runtimeVersion abi.Version
	systemID       abi.SystemID
	formFactor     abi.FormFactor
}

func (i *Instance) rt() abi.Runtime { return i.ep.rt }

// EntryPoint returns the entry point the instance was created from.
func (i *Instance) EntryPoint() *EntryPoint { return i.ep }

// SystemID returns the system resolved at creation, or zero when the
// lookup failed.
func (i *Instance) SystemID() abi.SystemID { return i.systemID }

// RuntimeName returns the runtime's self-reported name.
func (i *Instance) RuntimeName() string { return i.runtimeName }

// RuntimeVersion returns the runtime's self-reported version.
func (i *Instance) RuntimeVersion() abi.Version { return i.runtimeVersion }

// FormFactor returns the form factor used for system lookups.
func (i *Instance) FormFactor() abi.FormFactor { return i.formFactor }

// Procs returns the instance's table of resolved extension functions.
func (i *Instance) Procs() *ext.Table { return i.procs }

// ExtensionEnabled reports whether name was enabled at creation.
func (i *Instance) ExtensionEnabled(name string) bool {
	_, ok := i.extensions[name]
	return ok
}

// Extensions returns the enabled extension names, sorted.
func (i *Instance) Extensions() []string {
	out := make([]string, 0, len(i.extensions))
	for name := range i.extensions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// RefreshSystem repeats the xrGetSystem lookup for the instance's form
// factor. SystemID is only updated on success.
func (i *Instance) RefreshSystem() error {
	info := abi.SystemGetInfo{Type: abi.TypeSystemGetInfo, FormFactor: i.formFactor}
	var id abi.SystemID
	if r := i.rt().GetSystem(i.live(), &info, &id); r != abi.Success {
		return errors.Status(errors.PhaseSystem, "xrGetSystem", r)
	}
	i.systemID = id
	return nil
}

// SystemProperties describes the resolved system.
type SystemProperties struct {
	Name                    string
	SystemID                abi.SystemID
	VendorID                uint32
	MaxSwapchainImageWidth  uint32
	MaxSwapchainImageHeight uint32
	MaxLayerCount           uint32
	OrientationTracking     bool
	PositionTracking        bool
}

// SystemProperties queries the properties of the resolved system.
func (i *Instance) SystemProperties() (SystemProperties, error) {
	props := abi.SystemProperties{Type: abi.TypeSystemProperties}
	if r := i.rt().GetSystemProperties(i.live(), i.systemID, &props); r != abi.Success {
		return SystemProperties{}, errors.Status(errors.PhaseSystem, "xrGetSystemProperties", r)
	}
	return SystemProperties{
		Name:                    abi.GoString(props.SystemName[:]),
		SystemID:                props.SystemID,
		VendorID:                props.VendorID,
		MaxSwapchainImageWidth:  props.GraphicsProperties.MaxSwapchainImageWidth,
		MaxSwapchainImageHeight: props.GraphicsProperties.MaxSwapchainImageHeight,
		MaxLayerCount:           props.GraphicsProperties.MaxLayerCount,
		OrientationTracking:     props.TrackingProperties.OrientationTracking.Go(),
		PositionTracking:        props.TrackingProperties.PositionTracking.Go(),
	}, nil
}

// EnumerateViewConfigurations lists the view configurations of the system.
func (i *Instance) EnumerateViewConfigurations() ([]abi.ViewConfigurationType, error) {
	h, sys := i.live(), i.systemID
	return enumerate(errors.PhaseSystem, "xrEnumerateViewConfigurations", nil,
		func(capacity uint32, count *uint32, buf []abi.ViewConfigurationType) abi.Result {
			return i.rt().EnumerateViewConfigurations(h, sys, capacity, count, buf)
		})
}

// ViewConfigurationProperties reports whether the field of view of a view
// configuration is mutable.
func (i *Instance) ViewConfigurationProperties(viewType abi.ViewConfigurationType) (fovMutable bool, err error) {
	props := abi.ViewConfigurationProperties{Type: abi.TypeViewConfigurationProperties}
	if r := i.rt().GetViewConfigurationProperties(i.live(), i.systemID, viewType, &props); r != abi.Success {
		return false, errors.Status(errors.PhaseSystem, "xrGetViewConfigurationProperties", r)
	}
	return props.FovMutable.Go(), nil
}

// EnumerateViewConfigurationViews lists the per-view recommended image sizes.
func (i *Instance) EnumerateViewConfigurationViews(viewType abi.ViewConfigurationType) ([]abi.ViewConfigurationView, error) {
	h, sys := i.live(), i.systemID
	return enumerate(errors.PhaseSystem, "xrEnumerateViewConfigurationViews",
		func(v *abi.ViewConfigurationView) { v.Type = abi.TypeViewConfigurationView },
		func(capacity uint32, count *uint32, buf []abi.ViewConfigurationView) abi.Result {
			return i.rt().EnumerateViewConfigurationViews(h, sys, viewType, capacity, count, buf)
		})
}

// EnumerateEnvironmentBlendModes lists the blend modes in runtime
// preference order.
func (i *Instance) EnumerateEnvironmentBlendModes(viewType abi.ViewConfigurationType) ([]abi.EnvironmentBlendMode, error) {
	h, sys := i.live(), i.systemID
	return enumerate(errors.PhaseSystem, "xrEnumerateEnvironmentBlendModes", nil,
		func(capacity uint32, count *uint32, buf []abi.EnvironmentBlendMode) abi.Result {
			return i.rt().EnumerateEnvironmentBlendModes(h, sys, viewType, capacity, count, buf)
		})
}

// CreateSession creates a session on the resolved system. next is
// forwarded as the create info's next chain and normally carries the
// graphics binding. With the loader backend the whole chain must be
// allocated in C memory: it is stored into C records, where cgo does not
// allow Go pointers.
func (i *Instance) CreateSession(next unsafe.Pointer) (*Session, error) {
	info := abi.SessionCreateInfo{
		Type:     abi.TypeSessionCreateInfo,
		Next:     next,
		SystemID: i.systemID,
	}
	var h abi.Session
	if r := i.rt().CreateSession(i.live(), &info, &h); r != abi.Success {
		return nil, errors.Status(errors.PhaseSession, "xrCreateSession", r)
	}
	return &Session{
		owned: bind("session", errors.PhaseSession, h),
		inst:  i,
	}, nil
}

// StringToPath interns text with the runtime. Nothing is cached here;
// every call goes to the runtime.
func (i *Instance) StringToPath(text string) (abi.Path, error) {
	var p abi.Path
	if r := i.rt().StringToPath(i.live(), text, &p); r != abi.Success {
		return abi.NullPath, errors.New(errors.PhaseAction, errors.KindRuntimeStatus).
			Function("xrStringToPath").
			Result(r).
			Value(text).
			Build()
	}
	return p, nil
}

// PathToString returns the text of an interned path.
func (i *Instance) PathToString(p abi.Path) (string, error) {
	h := i.live()
	buf, err := enumerate(errors.PhaseAction, "xrPathToString", nil,
		func(capacity uint32, count *uint32, buf []byte) abi.Result {
			return i.rt().PathToString(h, p, capacity, count, buf)
		})
	if err != nil {
		return "", err
	}
	return abi.GoString(buf), nil
}

// Location is the result of locating a space.
type Location struct {
	Pose  abi.Posef
	Flags abi.SpaceLocationFlags
}

// OrientationValid reports whether Pose.Orientation may be used.
func (l Location) OrientationValid() bool {
	return l.Flags&abi.SpaceLocationOrientationValid != 0
}

// PositionValid reports whether Pose.Position may be used.
func (l Location) PositionValid() bool {
	return l.Flags&abi.SpaceLocationPositionValid != 0
}

// LocateSpace locates space relative to base at time.
func (i *Instance) LocateSpace(space, base *Space, time abi.Time) (Location, error) {
	loc := abi.SpaceLocation{Type: abi.TypeSpaceLocation}
	if r := i.rt().LocateSpace(space.live(), base.live(), time, &loc); r != abi.Success {
		return Location{}, errors.Status(errors.PhaseSpace, "xrLocateSpace", r)
	}
	return Location{Pose: loc.Pose, Flags: loc.LocationFlags}, nil
}

// Close destroys the instance and forgets its resolved functions.
// Children are not destroyed here; close them first.
func (i *Instance) Close() error {
	if i == nil {
		return nil
	}
	err := i.release("xrDestroyInstance", i.rt().DestroyInstance)
	i.procs.Reset()
	return err
}
