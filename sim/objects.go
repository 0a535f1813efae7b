package sim

import (
	"slices"
	"strings"

	"github.com/wippyai/openxr/abi"
)

// maxQueuedEvents bounds an instance's event queue. Older events are
// dropped and reported through XrEventDataEventsLost.
const maxQueuedEvents = 64

type instance struct {
	handle     abi.Instance
	appName    string
	engineName string
	apiVersion abi.Version
	extensions map[string]bool
	// enabledNames is the extension list as received, duplicates included.
	enabledNames []string
	paths        pathTable
	events       []abi.EventDataBuffer
	lostEvents   uint32

	// Suggested bindings per interaction profile, and the order in which
	// profiles were first suggested.
	bindings     map[abi.Path][]abi.ActionSuggestedBinding
	profileOrder []abi.Path
	attached     bool
}

func (in *instance) push(buf abi.EventDataBuffer) {
	if len(in.events) >= maxQueuedEvents {
		in.events = in.events[1:]
		in.lostEvents++
	}
	in.events = append(in.events, buf)
}

func (in *instance) dropBindings(profile abi.Path) {
	if _, ok := in.bindings[profile]; !ok {
		return
	}
	delete(in.bindings, profile)
	in.profileOrder = slices.DeleteFunc(in.profileOrder, func(p abi.Path) bool { return p == profile })
}

type session struct {
	inst     *instance
	handle   abi.Session
	state    abi.SessionState
	viewType abi.ViewConfigurationType
	begun    bool
	exiting  bool

	// Frame loop: waited is set by WaitFrame and consumed by BeginFrame;
	// inFrame spans BeginFrame to EndFrame.
	waited     bool
	inFrame    bool
	frameCount uint64

	attachedSets []abi.ActionSet
	profile      abi.Path
	snapshot     map[stateKey]actionState
	lastSync     abi.Time
}

func (s *session) attachedTo(set abi.ActionSet) bool {
	for _, h := range s.attachedSets {
		if h == set {
			return true
		}
	}
	return false
}

type space struct {
	sess      *session
	handle    abi.Space
	reference abi.ReferenceSpaceType
	action    *action
	subaction abi.Path
	offset    abi.Posef
}

type swapchain struct {
	sess      *session
	handle    abi.Swapchain
	format    int64
	width     uint32
	height    uint32
	arraySize uint32
	images    uint32
	next      uint32

	// acquired holds image indices in acquire order. The oldest is the
	// one WaitSwapchainImage and ReleaseSwapchainImage operate on.
	acquired []uint32
	waited   bool
	released bool
}

type actionSet struct {
	inst          *instance
	handle        abi.ActionSet
	name          string
	localizedName string
	priority      uint32
	attached      bool
}

type action struct {
	set           *actionSet
	handle        abi.Action
	name          string
	localizedName string
	actionType    abi.ActionType
	subactions    []abi.Path
}

func (a *action) hasSubaction(p abi.Path) bool {
	if p == abi.NullPath {
		return true
	}
	for _, s := range a.subactions {
		if s == p {
			return true
		}
	}
	return false
}

type passthrough struct {
	sess    *session
	handle  abi.PassthroughFB
	running bool
}

type passthroughLayer struct {
	pt      *passthrough
	handle  abi.PassthroughLayerFB
	purpose abi.PassthroughLayerPurposeFB
	running bool
	style   abi.PassthroughStyleFB
}

// topLevelPaths are the user paths actions may be filtered by.
var topLevelPaths = []string{
	"/user/hand/left",
	"/user/hand/right",
	"/user/head",
	"/user/gamepad",
	"/user/treadmill",
}

func isTopLevelPath(s string) bool {
	for _, p := range topLevelPaths {
		if p == s {
			return true
		}
	}
	return false
}

// underPath reports whether s equals prefix or lies below it.
func underPath(s, prefix string) bool {
	return s == prefix || strings.HasPrefix(s, prefix+"/")
}

// validPath checks the well-formed path rules: absolute, no empty or
// dot-only components, no trailing slash, lowercase ASCII letters,
// digits, '-', '_' and '.' only.
func validPath(s string) bool {
	if len(s) < 2 || len(s) >= abi.MaxPathLength || s[0] != '/' || s[len(s)-1] == '/' {
		return false
	}
	for _, part := range strings.Split(s[1:], "/") {
		if part == "" || strings.Trim(part, ".") == "" {
			return false
		}
		for i := 0; i < len(part); i++ {
			if !nameChar(part[i]) {
				return false
			}
		}
	}
	return true
}

// validName checks action and action set names.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !nameChar(s[i]) {
			return false
		}
	}
	return true
}

func nameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' || c == '_' || c == '.'
}

// pathTable interns path strings. Ids start at 1 and are stable for the
// lifetime of the instance.
type pathTable struct {
	ids   map[string]abi.Path
	texts []string
}

func (t *pathTable) intern(s string) abi.Path {
	if t.ids == nil {
		t.ids = make(map[string]abi.Path)
	}
	if p, ok := t.ids[s]; ok {
		return p
	}
	t.texts = append(t.texts, s)
	p := abi.Path(len(t.texts))
	t.ids[s] = p
	return p
}

func (t *pathTable) text(p abi.Path) (string, bool) {
	if p == abi.NullPath || uint64(p) > uint64(len(t.texts)) {
		return "", false
	}
	return t.texts[p-1], true
}

func (t *pathTable) lookup(s string) (abi.Path, bool) {
	p, ok := t.ids[s]
	return p, ok
}
