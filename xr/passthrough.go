package xr

import (
	"github.com/wippyai/openxr"
	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
	"github.com/wippyai/openxr/ext"
)

// Passthrough is a live XrPassthroughFB. Its extension functions are
// resolved before the native object is created, so a missing function
// never leaves an object without a destroy call.
type Passthrough struct {
	owned[abi.PassthroughFB]
	sess    *Session
	destroy ext.HandleFunc
	start   ext.HandleFunc
	pause   ext.HandleFunc
}

// requirePassthrough checks that XR_FB_passthrough was enabled on the
// session's instance.
func (s *Session) requirePassthrough() error {
	if !s.inst.ExtensionEnabled(openxr.FBPassthrough) {
		return errors.ExtensionNotEnabled(openxr.FBPassthrough)
	}
	return nil
}

// CreatePassthrough creates the passthrough feature for the session.
func (s *Session) CreatePassthrough(flags abi.PassthroughFlagsFB) (*Passthrough, error) {
	if err := s.requirePassthrough(); err != nil {
		return nil, err
	}
	procs := s.inst.procs

	create, err := ext.Bind(procs, ext.CreatePassthroughFB, ext.CreatePassthrough)
	if err != nil {
		return nil, err
	}
	pt := &Passthrough{sess: s}
	if pt.destroy, err = ext.Bind(procs, ext.DestroyPassthroughFB, ext.HandleCall); err != nil {
		return nil, err
	}
	if pt.start, err = ext.Bind(procs, ext.PassthroughStartFB, ext.HandleCall); err != nil {
		return nil, err
	}
	if pt.pause, err = ext.Bind(procs, ext.PassthroughPauseFB, ext.HandleCall); err != nil {
		return nil, err
	}

	info := abi.PassthroughCreateInfoFB{Type: abi.TypePassthroughCreateInfoFB, Flags: flags}
	var h abi.PassthroughFB
	if r := create(s.live(), &info, &h); r != abi.Success {
		return nil, errors.Status(errors.PhaseExtension, ext.CreatePassthroughFB, r)
	}
	pt.owned = bind("passthrough", errors.PhaseExtension, h)
	return pt, nil
}

// Start resumes the passthrough feature.
func (pt *Passthrough) Start() error {
	return errors.Check(errors.PhaseExtension, ext.PassthroughStartFB, pt.start(uint64(pt.live())))
}

// Pause pauses the passthrough feature.
func (pt *Passthrough) Pause() error {
	return errors.Check(errors.PhaseExtension, ext.PassthroughPauseFB, pt.pause(uint64(pt.live())))
}

// Close destroys the passthrough feature. Close its layers first.
func (pt *Passthrough) Close() error {
	if pt == nil {
		return nil
	}
	return pt.release(ext.DestroyPassthroughFB, func(h abi.PassthroughFB) abi.Result {
		return pt.destroy(uint64(h))
	})
}

// PassthroughLayer is a live XrPassthroughLayerFB.
type PassthroughLayer struct {
	owned[abi.PassthroughLayerFB]
	pt       *Passthrough
	destroy  ext.HandleFunc
	resume   ext.HandleFunc
	pause    ext.HandleFunc
	setStyle ext.SetPassthroughStyleFunc
	purpose  abi.PassthroughLayerPurposeFB
}

// CreatePassthroughLayer creates a layer fed by pt.
func (s *Session) CreatePassthroughLayer(pt *Passthrough, purpose abi.PassthroughLayerPurposeFB, flags abi.PassthroughFlagsFB) (*PassthroughLayer, error) {
	if err := s.requirePassthrough(); err != nil {
		return nil, err
	}
	procs := s.inst.procs

	create, err := ext.Bind(procs, ext.CreatePassthroughLayerFB, ext.CreatePassthroughLayer)
	if err != nil {
		return nil, err
	}
	layer := &PassthroughLayer{pt: pt, purpose: purpose}
	if layer.destroy, err = ext.Bind(procs, ext.DestroyPassthroughLayerFB, ext.HandleCall); err != nil {
		return nil, err
	}
	if layer.resume, err = ext.Bind(procs, ext.PassthroughLayerResumeFB, ext.HandleCall); err != nil {
		return nil, err
	}
	if layer.pause, err = ext.Bind(procs, ext.PassthroughLayerPauseFB, ext.HandleCall); err != nil {
		return nil, err
	}
	if layer.setStyle, err = ext.Bind(procs, ext.PassthroughLayerSetStyleFB, ext.SetPassthroughStyle); err != nil {
		return nil, err
	}

	info := abi.PassthroughLayerCreateInfoFB{
		Type:        abi.TypePassthroughLayerCreateInfoFB,
		Passthrough: pt.live(),
		Flags:       flags,
		Purpose:     purpose,
	}
	var h abi.PassthroughLayerFB
	if r := create(s.live(), &info, &h); r != abi.Success {
		return nil, errors.Status(errors.PhaseExtension, ext.CreatePassthroughLayerFB, r)
	}
	layer.owned = bind("passthrough_layer", errors.PhaseExtension, h)
	return layer, nil
}

// Purpose returns the purpose the layer was created with.
func (l *PassthroughLayer) Purpose() abi.PassthroughLayerPurposeFB { return l.purpose }

// Resume resumes rendering of the layer.
func (l *PassthroughLayer) Resume() error {
	return errors.Check(errors.PhaseExtension, ext.PassthroughLayerResumeFB, l.resume(uint64(l.live())))
}

// Pause pauses rendering of the layer.
func (l *PassthroughLayer) Pause() error {
	return errors.Check(errors.PhaseExtension, ext.PassthroughLayerPauseFB, l.pause(uint64(l.live())))
}

// PassthroughStyle controls how the camera image is composited.
type PassthroughStyle struct {
	EdgeColor            abi.Color4f
	TextureOpacityFactor float32
}

// SetStyle applies a style to the layer.
func (l *PassthroughLayer) SetStyle(style PassthroughStyle) error {
	s := abi.PassthroughStyleFB{
		Type:                 abi.TypePassthroughStyleFB,
		TextureOpacityFactor: style.TextureOpacityFactor,
		EdgeColor:            style.EdgeColor,
	}
	return errors.Check(errors.PhaseExtension, ext.PassthroughLayerSetStyleFB, l.setStyle(l.live(), &s))
}

// CompositionLayer returns the record that submits this layer in EndFrame.
func (l *PassthroughLayer) CompositionLayer(space *Space) *abi.CompositionLayerPassthroughFB {
	cl := &abi.CompositionLayerPassthroughFB{
		Type:        abi.TypeCompositionLayerPassthroughFB,
		LayerHandle: l.Handle(),
	}
	if space != nil {
		cl.Space = space.Handle()
	}
	return cl
}

// Close destroys the layer.
func (l *PassthroughLayer) Close() error {
	if l == nil {
		return nil
	}
	return l.release(ext.DestroyPassthroughLayerFB, func(h abi.PassthroughLayerFB) abi.Result {
		return l.destroy(uint64(h))
	})
}
