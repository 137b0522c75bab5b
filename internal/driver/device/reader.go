package device

import (
	"errors"

	"github.com/delftmercurians/basestation/pkg/frame"
)

// ScratchBufferSize bounds how much unframed serial data Reader will hold
// before a frame can be completed. spec.md §7 lists overrunning it as its
// own, programmer-error-grade fatal condition ("Scratch-buffer overflow |
// Fatal (programmer error); abort."), distinct from an ordinary serial
// read error — the original `base_station_client::serial` (see
// original_source/src/base_station_client/serial.rs) panics outright when
// its buffer fills. A well-behaved base station never comes close to
// this; it only matters if the link wedges mid-frame for a long stretch.
const ScratchBufferSize = 100_000

// ErrScratchBufferOverflow is returned by Feed when accumulated unframed
// bytes would exceed ScratchBufferSize before a frame completes. The
// caller must treat this as fatal (spec.md §7), not recover from it —
// this package has no process-abort authority of its own, so it reports
// the condition up to Transport.Poll, which the monitor worker already
// routes through its one fatal-transport-error/disconnect path.
var ErrScratchBufferOverflow = errors.New("device: scratch buffer overflow")

// Reader accumulates bytes read off a serial link and extracts complete,
// CRC-valid frames from them. It holds no reference to any transport and
// is exercised directly by tests.
type Reader struct {
	buf []byte
}

// NewReader returns an empty Reader.
func NewReader() *Reader {
	return &Reader{buf: make([]byte, 0, ScratchBufferSize)}
}

// Feed appends newly read bytes and returns any complete frame payloads
// extracted from the accumulated buffer, in order. If the buffer would
// grow past ScratchBufferSize before a frame can be completed, Feed
// returns ErrScratchBufferOverflow and no frames; the Reader must not be
// fed again afterward (spec.md §7's "abort", not a resync point).
func (r *Reader) Feed(data []byte) ([][]byte, error) {
	r.buf = append(r.buf, data...)
	if len(r.buf) > ScratchBufferSize {
		return nil, ErrScratchBufferOverflow
	}
	frames, consumed := frame.ExtractFrames(r.buf)
	remaining := len(r.buf) - consumed
	copy(r.buf, r.buf[consumed:])
	r.buf = r.buf[:remaining]
	return frames, nil
}

// Pending returns the number of unconsumed bytes currently buffered.
func (r *Reader) Pending() int {
	return len(r.buf)
}
