package sim

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/openxr"
	"github.com/wippyai/openxr/abi"
)

// Profile describes the simulated runtime and the system behind it.
type Profile struct {
	// RuntimeName is reported by xrGetInstanceProperties.
	RuntimeName string `yaml:"runtime_name"`

	// RuntimeVersion is a "major.minor.patch" string.
	RuntimeVersion string `yaml:"runtime_version"`

	SystemName string `yaml:"system_name"`
	VendorID   uint32 `yaml:"vendor_id"`

	Layers     []LayerProfile     `yaml:"layers,omitempty"`
	Extensions []ExtensionProfile `yaml:"extensions"`

	// FormFactors lists the form factors the system answers to.
	FormFactors []string `yaml:"form_factors"`

	// ViewConfigurations are listed in runtime preference order.
	ViewConfigurations []string     `yaml:"view_configurations"`
	Views              ViewsProfile `yaml:"views"`
	FovMutable         bool         `yaml:"fov_mutable,omitempty"`

	BlendModes      []string `yaml:"blend_modes"`
	ReferenceSpaces []string `yaml:"reference_spaces"`

	// StageBounds is the play-area rectangle. A zero rectangle makes the
	// stage report XR_SPACE_BOUNDS_UNAVAILABLE.
	StageBounds BoundsProfile `yaml:"stage_bounds,omitempty"`

	// SwapchainFormats are graphics-API format codes, preferred first.
	SwapchainFormats    []int64 `yaml:"swapchain_formats"`
	SwapchainImageCount uint32  `yaml:"swapchain_image_count"`
	MaxLayerCount       uint32  `yaml:"max_layer_count"`

	// DisplayPeriodNs is the simulated display period in nanoseconds.
	DisplayPeriodNs int64 `yaml:"display_period_ns"`

	// InteractionProfiles accepted by xrSuggestInteractionProfileBindings.
	InteractionProfiles []string `yaml:"interaction_profiles"`

	// Components lists, per interaction profile, the input and output
	// paths below a top-level user path that bindings may name, such as
	// "/input/select/click". A profile without an entry accepts any.
	Components map[string][]string `yaml:"components,omitempty"`

	// LoaderInit exposes xrInitializeLoaderKHR on the null instance.
	LoaderInit bool `yaml:"loader_init,omitempty"`
}

type LayerProfile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Version     uint32 `yaml:"version,omitempty"`
}

type ExtensionProfile struct {
	Name    string `yaml:"name"`
	Version uint32 `yaml:"version,omitempty"`
}

type ViewsProfile struct {
	RecommendedWidth  uint32 `yaml:"recommended_width"`
	RecommendedHeight uint32 `yaml:"recommended_height"`
	MaxWidth          uint32 `yaml:"max_width"`
	MaxHeight         uint32 `yaml:"max_height"`
	SampleCount       uint32 `yaml:"sample_count,omitempty"`
	MaxSampleCount    uint32 `yaml:"max_sample_count,omitempty"`
}

type BoundsProfile struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Interaction profile paths used by DefaultProfile.
const (
	SimpleControllerProfile = "/interaction_profiles/khr/simple_controller"
	TouchControllerProfile  = "/interaction_profiles/oculus/touch_controller"
)

// DefaultProfile returns a stereo head-mounted display with Vulkan,
// passthrough and headless support.
func DefaultProfile() *Profile {
	return &Profile{
		RuntimeName:    "Simulated OpenXR Runtime",
		RuntimeVersion: "1.0.34",
		SystemName:     "Simulated HMD",
		VendorID:       0x5a5a,
		Layers: []LayerProfile{
			{Name: "XR_APILAYER_sim_validation", Description: "Simulated validation layer", Version: 1},
		},
		Extensions: []ExtensionProfile{
			{Name: openxr.KHRVulkanEnable, Version: 8},
			{Name: openxr.KHRVulkanEnable2, Version: 2},
			{Name: openxr.KHRCompositionLayerDepth, Version: 6},
			{Name: openxr.EXTLocalFloor, Version: 1},
			{Name: openxr.FBPassthrough, Version: 3},
			{Name: openxr.MNDHeadless, Version: 2},
		},
		FormFactors:        []string{"hmd"},
		ViewConfigurations: []string{"stereo", "mono"},
		Views: ViewsProfile{
			RecommendedWidth:  1832,
			RecommendedHeight: 1920,
			MaxWidth:          4096,
			MaxHeight:         4096,
			SampleCount:       1,
			MaxSampleCount:    4,
		},
		BlendModes:          []string{"opaque", "alpha_blend"},
		ReferenceSpaces:     []string{"view", "local", "stage", "local_floor"},
		StageBounds:         BoundsProfile{Width: 2, Height: 2},
		SwapchainFormats:    []int64{43, 50, 37, 44},
		SwapchainImageCount: 3,
		MaxLayerCount:       16,
		DisplayPeriodNs:     11_111_111,
		InteractionProfiles: []string{SimpleControllerProfile, TouchControllerProfile},
		Components: map[string][]string{
			SimpleControllerProfile: {
				"/input/select/click", "/input/menu/click",
				"/input/grip/pose", "/input/aim/pose",
				"/output/haptic",
			},
			TouchControllerProfile: {
				"/input/trigger/value", "/input/trigger/touch",
				"/input/squeeze/value",
				"/input/thumbstick", "/input/thumbstick/x", "/input/thumbstick/y",
				"/input/thumbstick/click", "/input/thumbstick/touch",
				"/input/x/click", "/input/y/click", "/input/a/click", "/input/b/click",
				"/input/menu/click", "/input/system/click",
				"/input/grip/pose", "/input/aim/pose",
				"/output/haptic",
			},
		},
	}
}

// LoadProfile reads and validates a YAML profile. Unknown keys are errors.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes and validates a YAML profile.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &p, nil
}

// Validate checks that every name in the profile is known and that the
// numeric limits are usable.
func (p *Profile) Validate() error {
	if p.RuntimeName == "" {
		return fmt.Errorf("runtime_name is required")
	}
	if _, err := abi.ParseVersion(p.RuntimeVersion); err != nil {
		return fmt.Errorf("runtime_version: %w", err)
	}
	if len(p.FormFactors) == 0 {
		return fmt.Errorf("form_factors list is required and must be non-empty")
	}
	for _, name := range p.FormFactors {
		if _, ok := abi.ParseFormFactor(name); !ok {
			return fmt.Errorf("unknown form factor %q (want one of %s)", name, strings.Join(abi.FormFactorNames(), ", "))
		}
	}
	if len(p.ViewConfigurations) == 0 {
		return fmt.Errorf("view_configurations list is required and must be non-empty")
	}
	for _, name := range p.ViewConfigurations {
		if _, ok := abi.ParseViewConfigurationType(name); !ok {
			return fmt.Errorf("unknown view configuration %q (want one of %s)", name, strings.Join(abi.ViewConfigurationTypeNames(), ", "))
		}
	}
	if len(p.BlendModes) == 0 {
		return fmt.Errorf("blend_modes list is required and must be non-empty")
	}
	for _, name := range p.BlendModes {
		if _, ok := abi.ParseEnvironmentBlendMode(name); !ok {
			return fmt.Errorf("unknown blend mode %q (want one of %s)", name, strings.Join(abi.EnvironmentBlendModeNames(), ", "))
		}
	}
	for _, name := range p.ReferenceSpaces {
		if _, ok := abi.ParseReferenceSpaceType(name); !ok {
			return fmt.Errorf("unknown reference space %q (want one of %s)", name, strings.Join(abi.ReferenceSpaceTypeNames(), ", "))
		}
	}
	seen := make(map[string]bool, len(p.Extensions))
	for _, e := range p.Extensions {
		if !strings.HasPrefix(e.Name, "XR_") {
			return fmt.Errorf("extension %q must start with XR_", e.Name)
		}
		if seen[e.Name] {
			return fmt.Errorf("extension %q listed twice", e.Name)
		}
		seen[e.Name] = true
	}
	for _, ip := range p.InteractionProfiles {
		if !strings.HasPrefix(ip, "/interaction_profiles/") || !validPath(ip) {
			return fmt.Errorf("invalid interaction profile path %q", ip)
		}
	}
	for ip, components := range p.Components {
		if !p.supportsInteractionProfile(ip) {
			return fmt.Errorf("components for unlisted interaction profile %q", ip)
		}
		for _, c := range components {
			if !(strings.HasPrefix(c, "/input/") || strings.HasPrefix(c, "/output/")) || !validPath(c) {
				return fmt.Errorf("invalid component path %q for %s", c, ip)
			}
		}
	}
	if p.Views.RecommendedWidth == 0 || p.Views.RecommendedHeight == 0 {
		return fmt.Errorf("views.recommended_width and views.recommended_height are required")
	}
	if p.Views.MaxWidth < p.Views.RecommendedWidth || p.Views.MaxHeight < p.Views.RecommendedHeight {
		return fmt.Errorf("views max size is smaller than the recommended size")
	}
	if len(p.SwapchainFormats) == 0 {
		return fmt.Errorf("swapchain_formats list is required and must be non-empty")
	}
	if p.SwapchainImageCount == 0 {
		return fmt.Errorf("swapchain_image_count must be positive")
	}
	if p.MaxLayerCount == 0 {
		return fmt.Errorf("max_layer_count must be positive")
	}
	if p.DisplayPeriodNs <= 0 {
		return fmt.Errorf("display_period_ns must be positive")
	}
	if p.StageBounds.Width < 0 || p.StageBounds.Height < 0 {
		return fmt.Errorf("stage_bounds must not be negative")
	}
	return nil
}

func (p *Profile) hasExtension(name string) bool {
	for _, e := range p.Extensions {
		if e.Name == name {
			return true
		}
	}
	return false
}

func (p *Profile) hasLayer(name string) bool {
	for _, l := range p.Layers {
		if l.Name == name {
			return true
		}
	}
	return false
}

func (p *Profile) supportsFormFactor(ff abi.FormFactor) bool {
	for _, name := range p.FormFactors {
		if v, _ := abi.ParseFormFactor(name); v == ff {
			return true
		}
	}
	return false
}

func (p *Profile) viewConfigurations() []abi.ViewConfigurationType {
	out := make([]abi.ViewConfigurationType, 0, len(p.ViewConfigurations))
	for _, name := range p.ViewConfigurations {
		v, _ := abi.ParseViewConfigurationType(name)
		out = append(out, v)
	}
	return out
}

func (p *Profile) supportsViewConfiguration(t abi.ViewConfigurationType) bool {
	for _, v := range p.viewConfigurations() {
		if v == t {
			return true
		}
	}
	return false
}

func (p *Profile) blendModes() []abi.EnvironmentBlendMode {
	out := make([]abi.EnvironmentBlendMode, 0, len(p.BlendModes))
	for _, name := range p.BlendModes {
		v, _ := abi.ParseEnvironmentBlendMode(name)
		out = append(out, v)
	}
	return out
}

func (p *Profile) referenceSpaces() []abi.ReferenceSpaceType {
	out := make([]abi.ReferenceSpaceType, 0, len(p.ReferenceSpaces))
	for _, name := range p.ReferenceSpaces {
		v, _ := abi.ParseReferenceSpaceType(name)
		out = append(out, v)
	}
	return out
}

func (p *Profile) supportsReferenceSpace(t abi.ReferenceSpaceType) bool {
	for _, v := range p.referenceSpaces() {
		if v == t {
			return true
		}
	}
	return false
}

// hasComponent reports whether bindings for the interaction profile may
// name component.
func (p *Profile) hasComponent(profile, component string) bool {
	components, ok := p.Components[profile]
	return !ok || slices.Contains(components, component)
}

func (p *Profile) supportsInteractionProfile(path string) bool {
	for _, ip := range p.InteractionProfiles {
		if ip == path {
			return true
		}
	}
	return false
}
