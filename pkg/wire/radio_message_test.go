package wire

import "testing"

func TestWrapCommandRoundTrip(t *testing.T) {
	c := Command{Speed: Pose{X: 1, Y: 2, Z: 3}, RobotCommand: RobotCommandArm}
	m := WrapCommand(c)
	if m.Type != RadioMessageCommand {
		t.Fatalf("expected type %v, got %v", RadioMessageCommand, m.Type)
	}

	b := m.Bytes()
	if len(b) != RadioMessageSize {
		t.Fatalf("expected %d bytes, got %d", RadioMessageSize, len(b))
	}
	decoded, ok := RadioMessageFromBytes(b)
	if !ok {
		t.Fatal("RadioMessageFromBytes rejected valid bytes")
	}
	got, ok := decoded.Command()
	if !ok {
		t.Fatal("Command() rejected a Command-tagged message")
	}
	if got != c {
		t.Errorf("expected %+v, got %+v", c, got)
	}
}

func TestWrapZeroesPayloadOutsideVariant(t *testing.T) {
	o := OverrideOdometry{Position: Pose{X: 1, Y: 1, Z: 1}}
	m := WrapOverrideOdometry(o)
	for i := OverrideOdometrySize; i < RadioMessagePayloadSize; i++ {
		if m.Payload[i] != 0 {
			t.Fatalf("payload byte %d outside OverrideOdometry's footprint is not zero", i)
		}
	}
}

func TestAccessorRejectsWrongVariant(t *testing.T) {
	m := WrapCommand(Command{})
	if _, ok := m.ImuReadings(); ok {
		t.Error("ImuReadings() accepted a Command-tagged message")
	}
}

func TestRadioMessageFromBytesRejectsUnknownTag(t *testing.T) {
	b := WrapNone().Bytes()
	b[0] = 200
	if _, ok := RadioMessageFromBytes(b); ok {
		t.Error("expected rejection of unrecognized type tag")
	}
}

func TestMessageWrapperRoundTrip(t *testing.T) {
	w := NewMessageWrapper(3, WrapCommand(Command{RobotCommand: RobotCommandKick}))
	b := w.Bytes()
	if len(b) != MessageWrapperSize {
		t.Fatalf("expected %d bytes, got %d", MessageWrapperSize, len(b))
	}
	got, ok := MessageWrapperFromBytes(b)
	if !ok {
		t.Fatal("MessageWrapperFromBytes rejected valid bytes")
	}
	if got.RobotID != 3 || got.Msg.Type != RadioMessageCommand {
		t.Errorf("unexpected round-trip result: %+v", got)
	}
}

func TestMessageWrapperAndBaseInformationSizesDiffer(t *testing.T) {
	if MessageWrapperSize == BaseInformationSize {
		t.Fatal("MessageWrapper and BaseInformation must be distinguishable by length")
	}
}
