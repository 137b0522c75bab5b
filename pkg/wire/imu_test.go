package wire

import "testing"

func TestImuReadingsRoundTrip(t *testing.T) {
	r := ImuReadings{
		AngPosX: 0.1, AngPosY: 0.2, AngPosZ: 0.3,
		AngVelX: -1, AngVelY: -2, AngVelZ: -3,
	}
	b := r.Bytes()
	if len(b) != ImuReadingsSize {
		t.Fatalf("expected %d bytes, got %d", ImuReadingsSize, len(b))
	}
	got, ok := ImuReadingsFromBytes(b)
	if !ok {
		t.Fatal("ImuReadingsFromBytes rejected valid bytes")
	}
	if got != r {
		t.Errorf("expected %+v, got %+v", r, got)
	}
}
