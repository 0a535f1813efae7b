package abi

import "sort"

// Configuration-file spellings of the enums.
var (
	formFactorNames = map[string]FormFactor{
		"hmd":      FormFactorHeadMountedDisplay,
		"handheld": FormFactorHandheldDisplay,
	}
	viewConfigurationNames = map[string]ViewConfigurationType{
		"mono":   ViewConfigurationPrimaryMono,
		"stereo": ViewConfigurationPrimaryStereo,
	}
	blendModeNames = map[string]EnvironmentBlendMode{
		"opaque":      BlendModeOpaque,
		"additive":    BlendModeAdditive,
		"alpha_blend": BlendModeAlphaBlend,
	}
	referenceSpaceNames = map[string]ReferenceSpaceType{
		"view":        ReferenceSpaceView,
		"local":       ReferenceSpaceLocal,
		"stage":       ReferenceSpaceStage,
		"local_floor": ReferenceSpaceLocalFloor,
	}
)

func ParseFormFactor(s string) (FormFactor, bool) {
	v, ok := formFactorNames[s]
	return v, ok
}

func ParseViewConfigurationType(s string) (ViewConfigurationType, bool) {
	v, ok := viewConfigurationNames[s]
	return v, ok
}

func ParseEnvironmentBlendMode(s string) (EnvironmentBlendMode, bool) {
	v, ok := blendModeNames[s]
	return v, ok
}

func ParseReferenceSpaceType(s string) (ReferenceSpaceType, bool) {
	v, ok := referenceSpaceNames[s]
	return v, ok
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FormFactorNames lists the accepted spellings, sorted.
func FormFactorNames() []string { return sortedKeys(formFactorNames) }

func ViewConfigurationTypeNames() []string { return sortedKeys(viewConfigurationNames) }

func EnvironmentBlendModeNames() []string { return sortedKeys(blendModeNames) }

func ReferenceSpaceTypeNames() []string { return sortedKeys(referenceSpaceNames) }

// ViewCount returns the number of views of a primary view configuration.
func (t ViewConfigurationType) ViewCount() int {
	switch t {
	case ViewConfigurationPrimaryMono:
		return 1
	case ViewConfigurationPrimaryStereo:
		return 2
	}
	return 0
}
