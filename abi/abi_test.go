package abi

import (
	"strings"
	"testing"
)

func TestPutName(t *testing.T) {
	var buf [8]byte
	copy(buf[:], "xxxxxxxx")

	if n := PutName(buf[:], "abc"); n != 3 {
		t.Errorf("n = %d", n)
	}
	if buf[3] != 0 || buf[7] != 0 {
		t.Errorf("tail not cleared: %v", buf)
	}
	if got := GoString(buf[:]); got != "abc" {
		t.Errorf("GoString = %q", got)
	}

	// Truncation keeps room for the terminator.
	n := PutName(buf[:], strings.Repeat("z", 20))
	if n != 7 || buf[7] != 0 || GoString(buf[:]) != "zzzzzzz" {
		t.Errorf("truncated: n=%d buf=%q", n, buf)
	}

	if PutName(nil, "a") != 0 {
		t.Error("nil buffer")
	}
}

func TestGoString_NoTerminator(t *testing.T) {
	if got := GoString([]byte("full")); got != "full" {
		t.Errorf("GoString = %q", got)
	}
}

func TestVersion(t *testing.T) {
	v := MakeVersion(1, 0, 34)
	if v.Major() != 1 || v.Minor() != 0 || v.Patch() != 34 {
		t.Errorf("fields = %d %d %d", v.Major(), v.Minor(), v.Patch())
	}
	if uint64(v) != 1<<48|34 {
		t.Errorf("packed = %#x", uint64(v))
	}
	if v.String() != "1.0.34" {
		t.Errorf("String = %q", v)
	}

	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{"1.0.34", MakeVersion(1, 0, 34), false},
		{" 1.1.0 ", MakeVersion(1, 1, 0), false},
		{"1.0", 0, true},
		{"1.x.0", 0, true},
		{"70000.0.0", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseVersion(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseVersion(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestResultString(t *testing.T) {
	if s := ErrorHandleInvalid.String(); s != "XR_ERROR_HANDLE_INVALID" {
		t.Errorf("String = %q", s)
	}
	if s := Result(-99999).String(); s != "XR_UNKNOWN_FAILURE_99999" {
		t.Errorf("unknown failure = %q", s)
	}
	if !TimeoutExpired.Succeeded() || TimeoutExpired.Failed() {
		t.Error("qualified success must count as succeeded")
	}
}

func TestParseNames(t *testing.T) {
	if v, ok := ParseViewConfigurationType("stereo"); !ok || v.ViewCount() != 2 {
		t.Errorf("stereo = %v, %v", v, ok)
	}
	if _, ok := ParseEnvironmentBlendMode("translucent"); ok {
		t.Error("unknown blend mode accepted")
	}
	names := ReferenceSpaceTypeNames()
	if len(names) != 4 || names[0] != "local" {
		t.Errorf("names = %v", names)
	}
}

func TestEventEncoding(t *testing.T) {
	var buf EventDataBuffer
	buf.Varying[60] = 0xff

	in := EventDataReferenceSpaceChangePending{
		Session:            7,
		ReferenceSpaceType: ReferenceSpaceStage,
		ChangeTime:         1234,
		PoseValid:          True,
		PoseInPreviousSpace: Posef{
			Orientation: Quaternionf{W: 1},
			Position:    Vector3f{X: 0.5, Y: -1, Z: 2},
		},
	}
	in.Encode(&buf)

	if buf.Type != TypeEventDataReferenceSpaceChangePending {
		t.Fatalf("Type = %d", buf.Type)
	}
	if buf.Varying[60] != 0 {
		t.Error("stale bytes from a previous event")
	}

	var out EventDataReferenceSpaceChangePending
	out.Decode(&buf)
	if out != in {
		t.Errorf("decoded %+v, want %+v", out, in)
	}
}
