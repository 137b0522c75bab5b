// Package frame implements the byte-stream framing the base station link
// uses to carry wire.MessageWrapper and wire.BaseInformation payloads:
// `[0xA5 (start) | length (1 byte) | payload[length] | crc8]`. The CRC
// covers the length byte and payload, not the start byte.
package frame

import (
	"fmt"
	"log"
)

// StartByte marks the beginning of a frame on the wire.
const StartByte = 0xA5

// MaxPayloadSize is the largest payload Encode will accept; the length
// field is a single byte, so a frame can never exceed 258 bytes total.
const MaxPayloadSize = 255

// MaxDecodePayloadSize bounds the payload length ExtractFrames will
// accept from the wire. No real record this client decodes comes close
// to it; a LEN above this is treated as a corrupt start byte rather than
// a real (if oversized) frame, per spec.md §4.2/§7.
const MaxDecodePayloadSize = 50

// crc8Table is the lookup table for CRC-8/SMBUS: poly 0x07, init 0x00, no
// input/output reflection, no final xor.
var crc8Table = buildCRC8Table()

func buildCRC8Table() [256]byte {
	var table [256]byte
	for i := 0; i < 256; i++ {
		crc := byte(i)
		for b := 0; b < 8; b++ {
			if crc&0x80 != 0 {
				crc = (crc << 1) ^ 0x07
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
	return table
}

// CRC8 computes the CRC-8/SMBUS checksum of data. CRC8(nil) is 0x00;
// CRC8([]byte("123456789")) is 0xF4 (the standard SMBUS check value).
func CRC8(data []byte) byte {
	var crc byte
	for _, b := range data {
		crc = crc8Table[crc^b]
	}
	return crc
}

// Encode wraps payload in a start byte, length byte and trailing CRC-8. It
// fails if payload exceeds MaxPayloadSize.
func Encode(payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadSize {
		return nil, fmt.Errorf("frame: payload of %d bytes exceeds max %d", len(payload), MaxPayloadSize)
	}
	buf := make([]byte, 2+len(payload)+1)
	buf[0] = StartByte
	buf[1] = byte(len(payload))
	copy(buf[2:], payload)
	buf[len(buf)-1] = CRC8(buf[1 : 2+len(payload)])
	return buf, nil
}

// ExtractFrames scans buf for complete, CRC-valid frames. It returns the
// decoded payloads in order and the number of leading bytes of buf that
// were consumed (including any garbage skipped while resynchronizing);
// the caller should discard consumed bytes from its buffer and keep the
// remainder for the next read.
//
// A byte that doesn't start a valid frame (wrong start byte, or a start
// byte followed by a length/CRC combination that doesn't check out) is
// treated as stray data: ExtractFrames advances past it and keeps
// scanning, so a single corrupted byte can never wedge the stream.
func ExtractFrames(buf []byte) (frames [][]byte, consumed int) {
	i := 0
	for {
		for i < len(buf) && buf[i] != StartByte {
			i++
		}
		if i >= len(buf) {
			return frames, i
		}
		if i+2 > len(buf) {
			return frames, i
		}
		length := int(buf[i+1])
		if length > MaxDecodePayloadSize {
			log.Printf("frame: oversized length byte %d at offset %d, resynchronizing", length, i)
			i++
			continue
		}
		frameEnd := i + 2 + length + 1
		if frameEnd > len(buf) {
			return frames, i
		}
		wantCRC := CRC8(buf[i+1 : i+2+length])
		gotCRC := buf[frameEnd-1]
		if gotCRC != wantCRC {
			log.Printf("frame: CRC mismatch at offset %d, resynchronizing", i)
			i++
			continue
		}
		payload := make([]byte, length)
		copy(payload, buf[i+2:i+2+length])
		frames = append(frames, payload)
		i = frameEnd
	}
}
