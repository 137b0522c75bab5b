package wire

// RadioMessagePayloadSize is the size of the union payload: the largest of
// the variants below. Command, MultiConfigMessage and PrimaryStatusHF are
// all 28 bytes; every other variant is smaller and is zero-padded to this
// width when wrapped.
const RadioMessagePayloadSize = 28

// RadioMessageSize is the packed size in bytes: Type(1) + pad[3] +
// Payload(28) = 32.
const RadioMessageSize = 4 + RadioMessagePayloadSize

// RadioMessage is the external-tagged equivalent of the firmware's
// `{ type_tag, pad[3], union{...} }` layout. Construction through the
// WrapXxx helpers zeroes every payload byte outside the active variant's
// footprint, matching the firmware's union semantics on the wire.
type RadioMessage struct {
	Type    RadioMessageType
	Payload [RadioMessagePayloadSize]byte
}

func wrap(t RadioMessageType, payload []byte) RadioMessage {
	var m RadioMessage
	m.Type = t
	copy(m.Payload[:], payload)
	return m
}

func WrapNone() RadioMessage { return RadioMessage{Type: RadioMessageNone} }

func WrapCommand(c Command) RadioMessage {
	return wrap(RadioMessageCommand, c.Bytes())
}

func WrapImuReadings(r ImuReadings) RadioMessage {
	return wrap(RadioMessageImuReadings, r.Bytes())
}

func WrapMultiConfigMessage(m MultiConfigMessage) RadioMessage {
	return wrap(RadioMessageMultiConfig, m.Bytes())
}

func WrapOdometryReading(o OdometryReading) RadioMessage {
	return wrap(RadioMessageOdometryReading, o.Bytes())
}

func WrapOverrideOdometry(o OverrideOdometry) RadioMessage {
	return wrap(RadioMessageOverrideOdometry, o.Bytes())
}

func WrapPrimaryStatusHF(s PrimaryStatusHF) RadioMessage {
	return wrap(RadioMessagePrimaryStatusHF, s.Bytes())
}

func WrapPrimaryStatusLF(s PrimaryStatusLF) RadioMessage {
	return wrap(RadioMessagePrimaryStatusLF, s.Bytes())
}

func (m RadioMessage) Command() (Command, bool) {
	if m.Type != RadioMessageCommand {
		return Command{}, false
	}
	return CommandFromBytes(m.Payload[:CommandSize])
}

func (m RadioMessage) ImuReadings() (ImuReadings, bool) {
	if m.Type != RadioMessageImuReadings {
		return ImuReadings{}, false
	}
	return ImuReadingsFromBytes(m.Payload[:ImuReadingsSize])
}

func (m RadioMessage) MultiConfigMessage() (MultiConfigMessage, bool) {
	if m.Type != RadioMessageMultiConfig {
		return MultiConfigMessage{}, false
	}
	return MultiConfigMessageFromBytes(m.Payload[:MultiConfigMessageSize])
}

func (m RadioMessage) OdometryReading() (OdometryReading, bool) {
	if m.Type != RadioMessageOdometryReading {
		return OdometryReading{}, false
	}
	return OdometryReadingFromBytes(m.Payload[:OdometryReadingSize])
}

func (m RadioMessage) OverrideOdometry() (OverrideOdometry, bool) {
	if m.Type != RadioMessageOverrideOdometry {
		return OverrideOdometry{}, false
	}
	return OverrideOdometryFromBytes(m.Payload[:OverrideOdometrySize])
}

func (m RadioMessage) PrimaryStatusHF() (PrimaryStatusHF, bool) {
	if m.Type != RadioMessagePrimaryStatusHF {
		return PrimaryStatusHF{}, false
	}
	return PrimaryStatusHFFromBytes(m.Payload[:PrimaryStatusHFSize])
}

func (m RadioMessage) PrimaryStatusLF() (PrimaryStatusLF, bool) {
	if m.Type != RadioMessagePrimaryStatusLF {
		return PrimaryStatusLF{}, false
	}
	return PrimaryStatusLFFromBytes(m.Payload[:PrimaryStatusLFSize])
}

func (m RadioMessage) Bytes() []byte {
	b := make([]byte, RadioMessageSize)
	b[0] = byte(m.Type)
	copy(b[4:], m.Payload[:])
	return b
}

// RadioMessageFromBytes decodes a RadioMessage, rejecting unrecognized
// type tags (spec.md §3's RadioMessage invariant) and non-zero padding.
func RadioMessageFromBytes(b []byte) (RadioMessage, bool) {
	if len(b) != RadioMessageSize {
		return RadioMessage{}, false
	}
	if b[1] != 0 || b[2] != 0 || b[3] != 0 {
		return RadioMessage{}, false
	}
	t := RadioMessageType(b[0])
	if !t.Valid() {
		return RadioMessage{}, false
	}
	var m RadioMessage
	m.Type = t
	copy(m.Payload[:], b[4:])
	return m, true
}
