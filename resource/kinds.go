package resource

// Kind identifies the type of object a handle refers to.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInstance
	KindSession
	KindSpace
	KindSwapchain
	KindActionSet
	KindAction
	KindPassthrough
	KindPassthroughLayer
)

var kindNames = [...]string{
	KindInvalid:          "invalid",
	KindInstance:         "instance",
	KindSession:          "session",
	KindSpace:            "space",
	KindSwapchain:        "swapchain",
	KindActionSet:        "action_set",
	KindAction:           "action",
	KindPassthrough:      "passthrough",
	KindPassthroughLayer: "passthrough_layer",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
