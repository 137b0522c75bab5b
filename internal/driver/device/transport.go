// Package device owns the serial link to the base station: opening and
// configuring the port, framing outbound messages, and extracting
// inbound ones. Nothing in here knows about robots or the monitor loop;
// it just moves bytes.
package device

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	serial "github.com/daedaluz/goserial"

	"github.com/delftmercurians/basestation/pkg/frame"
	"github.com/delftmercurians/basestation/pkg/wire"
)

// Default link parameters: 115200 baud, 8 data bits, no parity, one stop
// bit, with a short read timeout so the monitor's poll loop never blocks
// for long on an idle line.
const (
	ReadTimeout = 10 * time.Millisecond

	DefaultVendorID  = 0x0483
	DefaultProductID = 0x5740
)

// Transport owns the primary serial connection to a base station and an
// optional mirror port that receives a copy of the raw inbound bytes while
// its carrier-detect line is asserted.
type Transport struct {
	port   *serial.Port
	mirror *serial.Port
	reader *Reader
}

// Open configures path as the primary link: raw mode, 115200 8N1, a 10ms
// read timeout, and DTR raised (the base station uses DTR to detect a
// live host).
func Open(path string) (*Transport, error) {
	port, err := openConfigured(path)
	if err != nil {
		return nil, err
	}
	return &Transport{port: port, reader: NewReader()}, nil
}

func openConfigured(path string) (*serial.Port, error) {
	opts := serial.NewOptions().SetReadTimeout(ReadTimeout)
	port, err := serial.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("device: open %s: %w", path, err)
	}
	if err := port.MakeRaw(); err != nil {
		port.Close()
		return nil, fmt.Errorf("device: set raw mode on %s: %w", path, err)
	}
	attrs, err := port.GetAttr()
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("device: get attrs on %s: %w", path, err)
	}
	attrs.SetSpeed(serial.B115200)
	attrs.Cflag &^= serial.CSIZE | serial.PARENB | serial.CSTOPB
	attrs.Cflag |= serial.CS8 | serial.CREAD | serial.CLOCAL
	if err := port.SetAttr(serial.TCSANOW, attrs); err != nil {
		port.Close()
		return nil, fmt.Errorf("device: set attrs on %s: %w", path, err)
	}
	if err := port.EnableModemLines(serial.TIOCM_DTR); err != nil {
		port.Close()
		return nil, fmt.Errorf("device: raise DTR on %s: %w", path, err)
	}
	return port, nil
}

// AttachMirror opens path as a secondary link. Raw bytes read from the
// primary port are forwarded to it verbatim, but only while its DCD line reports a
// carrier — this lets a passive logger listen in only when something is
// actually plugged into the far end.
func (t *Transport) AttachMirror(path string) error {
	port, err := openConfigured(path)
	if err != nil {
		return err
	}
	t.mirror = port
	return nil
}

// DetachMirror closes the mirror port, if any.
func (t *Transport) DetachMirror() error {
	if t.mirror == nil {
		return nil
	}
	err := t.mirror.Close()
	t.mirror = nil
	return err
}

func (t *Transport) mirrorCarrierPresent() bool {
	if t.mirror == nil {
		return false
	}
	lines, err := t.mirror.GetModemLines()
	if err != nil {
		return false
	}
	return lines&serial.TIOCM_CAR != 0
}

// Poll performs one non-blocking-ish read (bounded by ReadTimeout) from
// the primary port and returns any complete frames extracted from the
// accumulated stream. Raw bytes read this round are tee'd to the mirror
// port when its carrier-detect line is asserted.
func (t *Transport) Poll() ([][]byte, error) {
	buf := make([]byte, 4096)
	n, err := t.port.Read(buf)
	if err != nil {
		if isReadTimeout(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("device: read: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	if t.mirrorCarrierPresent() {
		t.mirror.Write(buf[:n])
	}
	frames, ferr := t.reader.Feed(buf[:n])
	if ferr != nil {
		// spec.md §7: scratch-buffer overflow is fatal, same as any other
		// unrecoverable transport error — the caller (the monitor worker)
		// tears the BaseStation down on any non-nil Poll error.
		return nil, fmt.Errorf("device: %w", ferr)
	}
	return frames, nil
}

// isReadTimeout reports whether err is the primary port's 10ms read
// timeout expiring with no data available — spec.md §7 treats that as
// normal ("return idle"), not the fatal condition any other read error
// is. goserial's underlying poll wait (github.com/daedaluz/fdev,
// transitive, not vendored in this tree) doesn't export a typed sentinel
// for this, so the match is on the OS-level deadline/timeout signals a
// poll(2)-backed wait actually produces.
func isReadTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, syscall.ETIMEDOUT) || errors.Is(err, syscall.EAGAIN) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}

// Send frames and writes payload to the primary port.
func (t *Transport) Send(payload []byte) error {
	encoded, err := frame.Encode(payload)
	if err != nil {
		return err
	}
	if _, err := t.port.Write(encoded); err != nil {
		return fmt.Errorf("device: write: %w", err)
	}
	return nil
}

// SendMessage frames and sends a MessageWrapper.
func (t *Transport) SendMessage(w wire.MessageWrapper) error {
	return t.Send(w.Bytes())
}

// Close releases the primary port and any attached mirror.
func (t *Transport) Close() error {
	t.DetachMirror()
	if t.port == nil {
		return nil
	}
	return t.port.Close()
}

// ttyVendorProductPath returns the sysfs path holding a tty's USB vendor
// and product id, walking up from /sys/class/tty/<name>/device the way
// udev rules do. It returns "" when no ancestor carries an idVendor file.
func ttyVendorProductPath(ttyName string) string {
	dir, err := filepath.EvalSymlinks(filepath.Join("/sys/class/tty", ttyName, "device"))
	if err != nil {
		return ""
	}
	for dir != "/" && dir != "." {
		if _, err := os.Stat(filepath.Join(dir, "idVendor")); err == nil {
			return dir
		}
		dir = filepath.Dir(dir)
	}
	return ""
}

func readHexID(path string) (uint16, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

// FindPort walks /sys/class/tty looking for a serial device whose USB
// vendor/product id matches vid/pid, returning its /dev node path.
func FindPort(vid, pid uint16) (string, error) {
	entries, err := os.ReadDir("/sys/class/tty")
	if err != nil {
		return "", fmt.Errorf("device: enumerate tty devices: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		base := ttyVendorProductPath(name)
		if base == "" {
			continue
		}
		gotVID, err := readHexID(filepath.Join(base, "idVendor"))
		if err != nil {
			continue
		}
		gotPID, err := readHexID(filepath.Join(base, "idProduct"))
		if err != nil {
			continue
		}
		if gotVID == vid && gotPID == pid {
			return filepath.Join("/dev", name), nil
		}
	}
	return "", fmt.Errorf("device: no tty found for VID:0x%04X PID:0x%04X", vid, pid)
}

// FindDefaultPort looks for a base station using DefaultVendorID/
// DefaultProductID.
func FindDefaultPort() (string, error) {
	return FindPort(DefaultVendorID, DefaultProductID)
}
