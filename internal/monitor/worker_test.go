package monitor

import (
	"testing"

	"github.com/delftmercurians/basestation/pkg/frame"
	"github.com/delftmercurians/basestation/pkg/wire"
)

func newTestMonitor() *Monitor {
	return &Monitor{debug: newDebug()}
}

func encodeWrapperPayload(t *testing.T, w wire.MessageWrapper) []byte {
	t.Helper()
	return w.Bytes()
}

// scenario 1: empty inbound buffer -> no state change, no frames.
func TestDispatchFramesEmpty(t *testing.T) {
	m := newTestMonitor()
	base := &BaseStation{}

	robotsUpdated, baseInfoUpdated := m.dispatchFrames(base, nil)
	if robotsUpdated || baseInfoUpdated {
		t.Fatalf("expected no updates from an empty frame set")
	}
}

// scenario 2: a valid BaseInformation frame stamps the base info cell and
// appends the "B" debug line.
func TestDispatchFramesBaseInformation(t *testing.T) {
	m := newTestMonitor()
	base := &BaseStation{}

	bi := wire.BaseInformation{
		Version:      wire.HGVersion{Major: 1, Minor: 2, Patch: 3, ProtocolsMajor: 1, ProtocolsMinor: 0},
		RadioChannel: 7,
		UptimeMs:     1000,
	}

	_, baseInfoUpdated := m.dispatchFrames(base, [][]byte{bi.Bytes()})
	if !baseInfoUpdated {
		t.Fatalf("expected baseInfoUpdated")
	}
	got, ok := base.info.Get()
	if !ok {
		t.Fatalf("expected base.info to be stamped")
	}
	if got != bi {
		t.Errorf("base.info = %+v, want %+v", got, bi)
	}
	if len(m.debug.Lines) != 1 || m.debug.Lines[0] != "B" {
		t.Errorf("expected debug line [\"B\"], got %v", m.debug.Lines)
	}
}

// scenario 3: a valid MessageWrapper carrying PrimaryStatusHF for robot 3
// stamps that robot's HF cell and flags robotsUpdated.
func TestDispatchFramesPrimaryStatusHF(t *testing.T) {
	m := newTestMonitor()
	base := &BaseStation{}

	hf := wire.PrimaryStatusHF{Pressure: 42, MotorSpeeds: [5]float32{1, 2, 3, 4, 5}, BreakbeamBallDetected: true}
	mw := wire.NewMessageWrapper(3, wire.WrapPrimaryStatusHF(hf))

	robotsUpdated, _ := m.dispatchFrames(base, [][]byte{mw.Bytes()})
	if !robotsUpdated {
		t.Fatalf("expected robotsUpdated")
	}
	got, ok := base.robots[3].statusHF.Get()
	if !ok {
		t.Fatalf("expected robot 3's HF cell to be stamped")
	}
	if got != hf {
		t.Errorf("robot 3 HF = %+v, want %+v", got, hf)
	}
	for i, r := range base.robots {
		if i == 3 {
			continue
		}
		if _, ok := r.statusHF.Get(); ok {
			t.Errorf("robot %d should be untouched", i)
		}
	}
}

// scenario 4: robot_id >= 16 leaves the robot array unchanged.
func TestDispatchFramesRejectsOutOfRangeRobotID(t *testing.T) {
	m := newTestMonitor()
	base := &BaseStation{}

	hf := wire.PrimaryStatusHF{Pressure: 1}
	mw := wire.NewMessageWrapper(20, wire.WrapPrimaryStatusHF(hf))

	robotsUpdated, _ := m.dispatchFrames(base, [][]byte{mw.Bytes()})
	if robotsUpdated {
		t.Fatalf("expected no update for an out-of-range robot id")
	}
	for i, r := range base.robots {
		if _, ok := r.statusHF.Get(); ok {
			t.Errorf("robot %d should be untouched", i)
		}
	}
}

// A length-matched MessageWrapper whose embedded RadioMessage carries an
// unrecognized type tag still decodes its RobotID/shell: it must be
// logged as "Unknown Message Type" (spec.md §4.4's dispatch-time
// unknown-variant case), not "Unknown Data" (which is reserved for a
// frame of some other, wrong length entirely), and robot_id range
// checking still applies to it.
func TestDispatchFramesUnrecognizedInnerTagIsUnknownMessageType(t *testing.T) {
	m := newTestMonitor()
	base := &BaseStation{}

	mw := wire.NewMessageWrapper(3, wire.WrapCommand(wire.Command{}))
	b := mw.Bytes()
	b[4] = 200 // corrupt the inner RadioMessage's type tag past any known variant

	robotsUpdated, _ := m.dispatchFrames(base, [][]byte{b})
	if robotsUpdated {
		t.Fatalf("an unrecognized inner tag must not flag robotsUpdated")
	}
	if len(m.debug.Lines) != 1 || m.debug.Lines[0] != "Unknown Message Type" {
		t.Errorf("expected debug line [\"Unknown Message Type\"], got %v", m.debug.Lines)
	}
}

// The same unrecognized inner tag, but addressed to an out-of-range
// robot_id, must still be dropped by the robot_id check before dispatch
// ever inspects the tag.
func TestDispatchFramesUnrecognizedInnerTagOutOfRangeRobotID(t *testing.T) {
	m := newTestMonitor()
	base := &BaseStation{}

	mw := wire.NewMessageWrapper(20, wire.WrapCommand(wire.Command{}))
	b := mw.Bytes()
	b[4] = 200

	robotsUpdated, _ := m.dispatchFrames(base, [][]byte{b})
	if robotsUpdated {
		t.Fatalf("expected no update for an out-of-range robot id")
	}
	if len(m.debug.Lines) != 0 {
		t.Errorf("expected no debug line for an out-of-range robot id, got %v", m.debug.Lines)
	}
}

// scenario 5: a WRITE_RETURN MultiConfigMessage populates the config
// variable return table for the addressed robot.
func TestDispatchFramesConfigVariableReturn(t *testing.T) {
	m := newTestMonitor()
	base := &BaseStation{}

	mcm := wire.MultiConfigMessage{Operation: wire.HGConfigOpWriteReturn}
	mcm.Add(wire.HGVariableRadioChannel, 7)
	mw := wire.NewMessageWrapper(0, wire.WrapMultiConfigMessage(mcm))

	m.dispatchFrames(base, [][]byte{mw.Bytes()})

	cell, have := m.debug.ConfigVariableReturn(0, wire.HGVariableRadioChannel)
	if !have {
		t.Fatalf("expected config_variable_returns[0][RADIO_CHANNEL] to be stamped")
	}
	value, ok := cell.Get()
	if !ok || value != 7 {
		t.Errorf("config_variable_returns[0][RADIO_CHANNEL] = %v, ok=%v, want 7", value, ok)
	}
}

// OdometryReading and OverrideOdometry are logged, not aggregated.
func TestDispatchFramesOdometryIsLoggedOnly(t *testing.T) {
	m := newTestMonitor()
	base := &BaseStation{}

	o := wire.OdometryReading{Position: wire.Pose{X: 1, Y: 2, Z: 3}}
	mw := wire.NewMessageWrapper(5, wire.WrapOdometryReading(o))

	robotsUpdated, _ := m.dispatchFrames(base, [][]byte{mw.Bytes()})
	if robotsUpdated {
		t.Fatalf("odometry frames must not flag robotsUpdated")
	}
	if len(m.debug.RobotOdometry[5]) != 1 {
		t.Fatalf("expected one ring entry for robot 5, got %d", len(m.debug.RobotOdometry[5]))
	}
}

// An unrecognized payload length is logged as unknown data.
func TestDispatchFramesUnknownLength(t *testing.T) {
	m := newTestMonitor()
	base := &BaseStation{}

	m.dispatchFrames(base, [][]byte{{1, 2, 3}})
	if len(m.debug.Lines) != 1 {
		t.Fatalf("expected one debug line, got %d", len(m.debug.Lines))
	}
}

func TestDebugTrailTruncatesTo500(t *testing.T) {
	m := newTestMonitor()
	for i := 0; i < DebugTrailSize+50; i++ {
		m.debug.log("x")
	}
	if len(m.debug.Lines) != DebugTrailSize {
		t.Fatalf("debug trail length = %d, want %d", len(m.debug.Lines), DebugTrailSize)
	}
}

// scenario 6 (frame production side): SendBroadcast followed by a
// Transport.Send-equivalent encode round-trips through the frame codec.
func TestBroadcastCommandFrameRoundTrips(t *testing.T) {
	cmd := wire.Command{Speed: wire.Pose{X: 1}, RobotCommand: wire.RobotCommandArm}
	wrapper := wire.NewMessageWrapper(wire.BroadcastRobotID, wire.WrapCommand(cmd))

	encoded, err := frame.Encode(wrapper.Bytes())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if encoded[0] != frame.StartByte {
		t.Fatalf("expected first byte to be the start byte")
	}
	if len(encoded) != 2+wire.MessageWrapperSize+1 {
		t.Fatalf("unexpected frame length %d", len(encoded))
	}

	frames, consumed := frame.ExtractFrames(encoded)
	if len(frames) != 1 || consumed != len(encoded) {
		t.Fatalf("expected the encoded frame to decode back cleanly")
	}
	decoded, ok := wire.MessageWrapperFromBytes(frames[0])
	if !ok || decoded.RobotID != wire.BroadcastRobotID {
		t.Fatalf("expected decoded wrapper addressed to the broadcast id")
	}
}
