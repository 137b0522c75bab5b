package wire

import "encoding/binary"

// MultiConfigVars is the number of (variable, value) pairs a
// MultiConfigMessage carries per frame.
const MultiConfigVars = 5

// MultiConfigMessageSize is the packed size in bytes: Vars[5](5) +
// Operation(1) + Type(1) + pad(1) + Values[5]uint32(20) = 28.
const MultiConfigMessageSize = 28

// MultiConfigMessage batches up to five configuration read/write
// operations against a remote node's named variables.
type MultiConfigMessage struct {
	Vars      [MultiConfigVars]HGVariable
	Operation HGConfigOperation
	Type      HGVariableType
	Values    [MultiConfigVars]uint32
}

// NewConfigWrite builds an empty WRITE MultiConfigMessage; pairs are added
// with Add.
func NewConfigWrite() MultiConfigMessage {
	return MultiConfigMessage{Operation: HGConfigOpWrite}
}

// NewConfigRead builds an empty READ MultiConfigMessage; variables to read
// are added with Add (the value is ignored for a READ).
func NewConfigRead() MultiConfigMessage {
	return MultiConfigMessage{Operation: HGConfigOpRead}
}

// Add fills the first free (var, value) slot. It is a no-op once all five
// slots are occupied.
func (m *MultiConfigMessage) Add(v HGVariable, value uint32) {
	for i := range m.Vars {
		if m.Vars[i] != HGVariableNone {
			continue
		}
		m.Vars[i] = v
		m.Values[i] = value
		return
	}
}

func (m MultiConfigMessage) Bytes() []byte {
	b := make([]byte, MultiConfigMessageSize)
	for i, v := range m.Vars {
		b[i] = byte(v)
	}
	b[5] = byte(m.Operation)
	b[6] = byte(m.Type)
	// b[7] padding, left zero
	for i, v := range m.Values {
		binary.LittleEndian.PutUint32(b[8+i*4:12+i*4], v)
	}
	return b
}

func MultiConfigMessageFromBytes(b []byte) (MultiConfigMessage, bool) {
	if len(b) != MultiConfigMessageSize {
		return MultiConfigMessage{}, false
	}
	if b[7] != 0 {
		return MultiConfigMessage{}, false
	}
	var m MultiConfigMessage
	for i := range m.Vars {
		m.Vars[i] = HGVariable(b[i])
	}
	m.Operation = HGConfigOperation(b[5])
	m.Type = HGVariableType(b[6])
	if !m.Operation.Valid() {
		return MultiConfigMessage{}, false
	}
	for i := range m.Values {
		m.Values[i] = binary.LittleEndian.Uint32(b[8+i*4 : 12+i*4])
	}
	return m, true
}
