package wire

import "testing"

func TestCommandRoundTrip(t *testing.T) {
	c := Command{
		Speed:         Pose{X: 1, Y: 2, Z: 3},
		DribblerSpeed: 0.5,
		RobotCommand:  RobotCommandKick,
		KickTime:      0.1,
		FanSpeed:      0.8,
	}
	b := c.Bytes()
	if len(b) != CommandSize {
		t.Fatalf("expected %d bytes, got %d", CommandSize, len(b))
	}
	got, ok := CommandFromBytes(b)
	if !ok {
		t.Fatal("CommandFromBytes rejected valid bytes")
	}
	if got != c {
		t.Errorf("expected %+v, got %+v", c, got)
	}
}

func TestCommandRejectsNonZeroPadding(t *testing.T) {
	b := Command{}.Bytes()
	b[18] = 1
	if _, ok := CommandFromBytes(b); ok {
		t.Error("expected rejection of non-zero padding")
	}
}

func TestCommandRejectsInvalidRobotCommand(t *testing.T) {
	b := Command{}.Bytes()
	b[16] = 200
	if _, ok := CommandFromBytes(b); ok {
		t.Error("expected rejection of out-of-range RobotCommand")
	}
}
