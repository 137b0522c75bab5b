package wire

// MessageWrapperSize is the packed size in bytes: RobotID(1) + pad[3] +
// RadioMessage(32) = 36.
const MessageWrapperSize = 4 + RadioMessageSize

// MessageWrapper addresses a RadioMessage to a specific robot slot.
// BroadcastRobotID and BaseStationRobotID are reserved RobotID values;
// routing on them is the monitor's concern, not the wire codec's.
type MessageWrapper struct {
	RobotID uint8
	Msg     RadioMessage
}

func NewMessageWrapper(robotID uint8, msg RadioMessage) MessageWrapper {
	return MessageWrapper{RobotID: robotID, Msg: msg}
}

func (w MessageWrapper) Bytes() []byte {
	b := make([]byte, MessageWrapperSize)
	b[0] = w.RobotID
	// b[1:4] padding, left zero
	copy(b[4:], w.Msg.Bytes())
	return b
}

// MessageWrapperFromBytes decodes a MessageWrapper shell: RobotID plus
// the embedded RadioMessage's type tag and payload bytes. It deliberately
// does not reject an unrecognized inner type tag the way the standalone
// RadioMessageFromBytes does — spec.md §4.4 dispatches an unrecognized
// variant as its own "unknown variant -> push 'Unknown Message Type'"
// case, which only makes sense if the wrapper (and the RobotID inside
// it) still decoded; a wrong-length payload remains the monitor's
// separate "Unknown Data" case. It also does not reject out-of-range
// RobotID values; the monitor's dispatch loop drops those before routing,
// per its own table (spec.md §4.4). Non-zero padding in the wrapper or
// in the embedded RadioMessage header is rejected.
func MessageWrapperFromBytes(b []byte) (MessageWrapper, bool) {
	if len(b) != MessageWrapperSize {
		return MessageWrapper{}, false
	}
	if b[1] != 0 || b[2] != 0 || b[3] != 0 || b[5] != 0 || b[6] != 0 || b[7] != 0 {
		return MessageWrapper{}, false
	}
	var msg RadioMessage
	msg.Type = RadioMessageType(b[4])
	copy(msg.Payload[:], b[8:])
	return MessageWrapper{RobotID: b[0], Msg: msg}, true
}
