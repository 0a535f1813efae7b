package abi

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// EventDataBuffer is the fixed-size record filled by PollEvent. Varying
// holds the bytes that follow the type/next header in native layout.
type EventDataBuffer struct {
	Type    StructureType
	Next    unsafe.Pointer
	Varying [EventDataBufferVaryingSize]byte
}

type EventDataSessionStateChanged struct {
	Session Session
	State   SessionState
	Time    Time
}

type EventDataInstanceLossPending struct {
	LossTime Time
}

type EventDataEventsLost struct {
	LostEventCount uint32
}

type EventDataInteractionProfileChanged struct {
	Session Session
}

type EventDataReferenceSpaceChangePending struct {
	Session             Session
	ReferenceSpaceType  ReferenceSpaceType
	ChangeTime          Time
	PoseValid           Bool32
	PoseInPreviousSpace Posef
}

type EventDataPassthroughStateChangedFB struct {
	Flags uint64
}

var ne = binary.NativeEndian

func (e *EventDataSessionStateChanged) Decode(b *EventDataBuffer) {
	e.Session = Session(ne.Uint64(b.Varying[0:]))
	e.State = SessionState(int32(ne.Uint32(b.Varying[8:])))
	e.Time = Time(int64(ne.Uint64(b.Varying[16:])))
}

func (e EventDataSessionStateChanged) Encode(b *EventDataBuffer) {
	b.reset(TypeEventDataSessionStateChanged)
	ne.PutUint64(b.Varying[0:], uint64(e.Session))
	ne.PutUint32(b.Varying[8:], uint32(e.State))
	ne.PutUint64(b.Varying[16:], uint64(e.Time))
}

func (e *EventDataInstanceLossPending) Decode(b *EventDataBuffer) {
	e.LossTime = Time(int64(ne.Uint64(b.Varying[0:])))
}

func (e EventDataInstanceLossPending) Encode(b *EventDataBuffer) {
	b.reset(TypeEventDataInstanceLossPending)
	ne.PutUint64(b.Varying[0:], uint64(e.LossTime))
}

func (e *EventDataEventsLost) Decode(b *EventDataBuffer) {
	e.LostEventCount = ne.Uint32(b.Varying[0:])
}

func (e EventDataEventsLost) Encode(b *EventDataBuffer) {
	b.reset(TypeEventDataEventsLost)
	ne.PutUint32(b.Varying[0:], e.LostEventCount)
}

func (e *EventDataInteractionProfileChanged) Decode(b *EventDataBuffer) {
	e.Session = Session(ne.Uint64(b.Varying[0:]))
}

func (e EventDataInteractionProfileChanged) Encode(b *EventDataBuffer) {
	b.reset(TypeEventDataInteractionProfileChanged)
	ne.PutUint64(b.Varying[0:], uint64(e.Session))
}

func (e *EventDataReferenceSpaceChangePending) Decode(b *EventDataBuffer) {
	e.Session = Session(ne.Uint64(b.Varying[0:]))
	e.ReferenceSpaceType = ReferenceSpaceType(int32(ne.Uint32(b.Varying[8:])))
	e.ChangeTime = Time(int64(ne.Uint64(b.Varying[16:])))
	e.PoseValid = Bool32(ne.Uint32(b.Varying[24:]))
	f := func(off int) float32 { return math.Float32frombits(ne.Uint32(b.Varying[off:])) }
	e.PoseInPreviousSpace = Posef{
		Orientation: Quaternionf{X: f(28), Y: f(32), Z: f(36), W: f(40)},
		Position:    Vector3f{X: f(44), Y: f(48), Z: f(52)},
	}
}

func (e EventDataReferenceSpaceChangePending) Encode(b *EventDataBuffer) {
	b.reset(TypeEventDataReferenceSpaceChangePending)
	ne.PutUint64(b.Varying[0:], uint64(e.Session))
	ne.PutUint32(b.Varying[8:], uint32(e.ReferenceSpaceType))
	ne.PutUint64(b.Varying[16:], uint64(e.ChangeTime))
	ne.PutUint32(b.Varying[24:], uint32(e.PoseValid))
	p := e.PoseInPreviousSpace
	for i, v := range []float32{
		p.Orientation.X, p.Orientation.Y, p.Orientation.Z, p.Orientation.W,
		p.Position.X, p.Position.Y, p.Position.Z,
	} {
		ne.PutUint32(b.Varying[28+4*i:], math.Float32bits(v))
	}
}

func (e *EventDataPassthroughStateChangedFB) Decode(b *EventDataBuffer) {
	e.Flags = ne.Uint64(b.Varying[0:])
}

func (e EventDataPassthroughStateChangedFB) Encode(b *EventDataBuffer) {
	b.reset(TypeEventDataPassthroughStateChanged)
	ne.PutUint64(b.Varying[0:], e.Flags)
}

func (b *EventDataBuffer) reset(t StructureType) {
	b.Type = t
	b.Next = nil
	clear(b.Varying[:])
}
