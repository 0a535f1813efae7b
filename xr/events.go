package xr

import (
	"github.com/wippyai/openxr/abi"
	"github.com/wippyai/openxr/errors"
)

// Event is one record drained from the instance's event queue. Use the
// typed accessors to decode it; each reports false for other event types.
type Event struct {
	buf *abi.EventDataBuffer
}

// Type returns the structure type of the event.
func (e Event) Type() abi.StructureType {
	if e.buf == nil {
		return abi.TypeUnknown
	}
	return e.buf.Type
}

// Buffer returns the raw record for event types without an accessor.
func (e Event) Buffer() *abi.EventDataBuffer {
	return e.buf
}

func (e Event) SessionStateChanged() (ev abi.EventDataSessionStateChanged, ok bool) {
	if e.Type() != abi.TypeEventDataSessionStateChanged {
		return ev, false
	}
	ev.Decode(e.buf)
	return ev, true
}

func (e Event) InstanceLossPending() (ev abi.EventDataInstanceLossPending, ok bool) {
	if e.Type() != abi.TypeEventDataInstanceLossPending {
		return ev, false
	}
	ev.Decode(e.buf)
	return ev, true
}

func (e Event) EventsLost() (ev abi.EventDataEventsLost, ok bool) {
	if e.Type() != abi.TypeEventDataEventsLost {
		return ev, false
	}
	ev.Decode(e.buf)
	return ev, true
}

func (e Event) InteractionProfileChanged() (ev abi.EventDataInteractionProfileChanged, ok bool) {
	if e.Type() != abi.TypeEventDataInteractionProfileChanged {
		return ev, false
	}
	ev.Decode(e.buf)
	return ev, true
}

func (e Event) ReferenceSpaceChangePending() (ev abi.EventDataReferenceSpaceChangePending, ok bool) {
	if e.Type() != abi.TypeEventDataReferenceSpaceChangePending {
		return ev, false
	}
	ev.Decode(e.buf)
	return ev, true
}

func (e Event) PassthroughStateChanged() (ev abi.EventDataPassthroughStateChangedFB, ok bool) {
	if e.Type() != abi.TypeEventDataPassthroughStateChanged {
		return ev, false
	}
	ev.Decode(e.buf)
	return ev, true
}

// PollEvent drains one event. An empty queue is not an error: it returns
// ok == false and a nil error.
func (i *Instance) PollEvent() (Event, bool, error) {
	buf := &abi.EventDataBuffer{Type: abi.TypeEventDataBuffer}
	switch r := i.rt().PollEvent(i.live(), buf); r {
	case abi.Success:
		return Event{buf: buf}, true, nil
	case abi.EventUnavailable:
		return Event{}, false, nil
	default:
		return Event{}, false, errors.Status(errors.PhaseEvent, "xrPollEvent", r)
	}
}
