package abi

// Declared capacities of the fixed-size name buffers, including the
// terminating NUL.
const (
	MaxApplicationNameSize        = 128
	MaxEngineNameSize             = 128
	MaxRuntimeNameSize            = 128
	MaxSystemNameSize             = 256
	MaxExtensionNameSize          = 128
	MaxAPILayerNameSize           = 256
	MaxAPILayerDescriptionSize    = 256
	MaxActionSetNameSize          = 64
	MaxLocalizedActionSetNameSize = 128
	MaxActionNameSize             = 64
	MaxLocalizedActionNameSize    = 128
	MaxPathLength                 = 256
	EventDataBufferVaryingSize    = 4000
)

// PutName copies s into the fixed buffer dst. Input longer than len(dst)-1
// bytes is truncated so that the buffer always ends in NUL; the rest of
// dst is zeroed. It returns the number of name bytes written.
func PutName(dst []byte, s string) int {
	if len(dst) == 0 {
		return 0
	}
	n := copy(dst[:len(dst)-1], s)
	clear(dst[n:])
	return n
}

// GoString decodes a fixed buffer, stopping at the first NUL byte.
func GoString(src []byte) string {
	for i, c := range src {
		if c == 0 {
			return string(src[:i])
		}
	}
	return string(src)
}
