package monitor

import (
	"fmt"

	"github.com/delftmercurians/basestation/pkg/wire"
)

// DebugTrailSize bounds the number of lines and per-robot reading entries
// the Debug trail retains.
const DebugTrailSize = 500

// Debug is the bounded ring of recent parsed events the worker appends to
// and foreground code reads under a timed mutex (see Monitor.debugMu).
// It is never constructed directly by callers; the monitor owns the only
// instance.
type Debug struct {
	Lines           []string
	RobotImu        [wire.MaxRobots][]wire.ImuReadings
	RobotOdometry   [wire.MaxRobots][]wire.OdometryReading
	configVarReturn [wire.MaxRobots][256]Stamped[uint32]
}

func newDebug() *Debug {
	return &Debug{}
}

func (d *Debug) log(line string) {
	d.Lines = append(d.Lines, line)
	if len(d.Lines) > DebugTrailSize {
		d.Lines = d.Lines[len(d.Lines)-DebugTrailSize:]
	}
}

func (d *Debug) logf(format string, args ...any) {
	d.log(fmt.Sprintf(format, args...))
}

func (d *Debug) pushImu(robotID uint8, r wire.ImuReadings) {
	if int(robotID) >= wire.MaxRobots {
		return
	}
	ring := append(d.RobotImu[robotID], r)
	if len(ring) > DebugTrailSize {
		ring = ring[len(ring)-DebugTrailSize:]
	}
	d.RobotImu[robotID] = ring
}

func (d *Debug) pushOdometry(robotID uint8, o wire.OdometryReading) {
	if int(robotID) >= wire.MaxRobots {
		return
	}
	ring := append(d.RobotOdometry[robotID], o)
	if len(ring) > DebugTrailSize {
		ring = ring[len(ring)-DebugTrailSize:]
	}
	d.RobotOdometry[robotID] = ring
}

func (d *Debug) setConfigVariableReturn(robotID uint8, v wire.HGVariable, value uint32) {
	if int(robotID) >= wire.MaxRobots {
		return
	}
	d.configVarReturn[robotID][v].Set(value)
}

// ConfigVariableReturn reports the most recent stamped value for variable
// v returned by robotID, and whether a write/read-return has ever
// populated that slot. robotID must be in 0..15; v's zero value (NONE) is
// a valid, if uninteresting, lookup.
func (d *Debug) ConfigVariableReturn(robotID int, v wire.HGVariable) (Stamped[uint32], bool) {
	if robotID < 0 || robotID >= wire.MaxRobots {
		return Stamped[uint32]{}, false
	}
	cell := d.configVarReturn[robotID][v]
	_, have := cell.Get()
	return cell, have
}
