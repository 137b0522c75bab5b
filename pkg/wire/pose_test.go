package wire

import "testing"

func TestPoseRoundTrip(t *testing.T) {
	p := Pose{X: 1.5, Y: -2.25, Z: 3.125}
	b := p.Bytes()
	if len(b) != PoseSize {
		t.Fatalf("expected %d bytes, got %d", PoseSize, len(b))
	}
	got, ok := PoseFromBytes(b)
	if !ok {
		t.Fatal("PoseFromBytes rejected valid bytes")
	}
	if got != p {
		t.Errorf("expected %+v, got %+v", p, got)
	}
}

func TestPoseFromBytesWrongLength(t *testing.T) {
	if _, ok := PoseFromBytes(make([]byte, PoseSize-1)); ok {
		t.Error("expected rejection of short buffer")
	}
	if _, ok := PoseFromBytes(make([]byte, PoseSize+1)); ok {
		t.Error("expected rejection of long buffer")
	}
}
