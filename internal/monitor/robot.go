package monitor

import (
	"time"

	"github.com/delftmercurians/basestation/pkg/wire"
)

// LivenessThreshold is the maximum time-since-update, across all three of
// a Robot's stamped cells, for the slot to be considered alive. spec.md
// §3 states this as a single threshold applied to the minimum
// time-since-update across the three cells — not the three independent
// per-cell thresholds the original Rust implementation used internally.
const LivenessThreshold = 400 * time.Millisecond

// Scale constants for the byte-valued PrimaryStatusLF fields. The
// authoritative schema header is out of scope (spec.md §1); these values
// are this library's own choice, not taken from firmware internals.
const (
	PackVoltageScale     = 0.1 // volts per count
	CapVoltageScale      = 0.1 // volts per count
	MotorDriverTempScale = 1.0 // degrees C per count
)

// Robot aggregates the three telemetry cells the monitor maintains for
// one robot slot. Derived accessors return the zero value and false when
// their backing cell is empty; spec.md calls this "unknown".
type Robot struct {
	statusHF Stamped[wire.PrimaryStatusHF]
	statusLF Stamped[wire.PrimaryStatusLF]
	imu      Stamped[wire.ImuReadings]
}

func (r *Robot) updateStatusHF(s wire.PrimaryStatusHF) { r.statusHF.Set(s) }
func (r *Robot) updateStatusLF(s wire.PrimaryStatusLF) { r.statusLF.Set(s) }
func (r *Robot) updateImu(i wire.ImuReadings)          { r.imu.Set(i) }

// IsAlive reports whether the minimum time-since-update across the three
// stamped cells is below LivenessThreshold.
func (r *Robot) IsAlive() bool {
	min := r.statusHF.Since()
	if d := r.statusLF.Since(); d < min {
		min = d
	}
	if d := r.imu.Since(); d < min {
		min = d
	}
	return min < LivenessThreshold
}

// MotorSpeeds returns the five HF motor speed readings.
func (r *Robot) MotorSpeeds() ([5]float32, bool) {
	s, ok := r.statusHF.Get()
	if !ok {
		return [5]float32{}, false
	}
	return s.MotorSpeeds, true
}

// Pressure returns the HF pressure reading (§3 of SPEC_FULL.md).
func (r *Robot) Pressure() (uint16, bool) {
	s, ok := r.statusHF.Get()
	if !ok {
		return 0, false
	}
	return s.Pressure, true
}

// BreakbeamBallDetected returns the HF breakbeam ball-detect flag.
func (r *Robot) BreakbeamBallDetected() (bool, bool) {
	s, ok := r.statusHF.Get()
	if !ok {
		return false, false
	}
	return s.BreakbeamBallDetected, true
}

// BreakbeamSensorOK returns the HF breakbeam sensor health flag.
func (r *Robot) BreakbeamSensorOK() (bool, bool) {
	s, ok := r.statusHF.Get()
	if !ok {
		return false, false
	}
	return s.BreakbeamSensorOK, true
}

// PackVoltages returns the two LF pack voltage readings, scaled to volts.
func (r *Robot) PackVoltages() ([2]float32, bool) {
	s, ok := r.statusLF.Get()
	if !ok {
		return [2]float32{}, false
	}
	var out [2]float32
	for i, b := range s.PackVoltages {
		out[i] = float32(b) * PackVoltageScale
	}
	return out, true
}

// CapVoltage returns the LF capacitor voltage, scaled to volts.
func (r *Robot) CapVoltage() (float32, bool) {
	s, ok := r.statusLF.Get()
	if !ok {
		return 0, false
	}
	return float32(s.CapVoltage) * CapVoltageScale, true
}

// MotorDriverTemps returns the five LF motor driver temperatures.
func (r *Robot) MotorDriverTemps() ([5]float32, bool) {
	s, ok := r.statusLF.Get()
	if !ok {
		return [5]float32{}, false
	}
	var out [5]float32
	for i, b := range s.MotorDriverTemps {
		out[i] = float32(b) * MotorDriverTempScale
	}
	return out, true
}

// KickerCapVoltage returns the LF kicker capacitor voltage, scaled to
// volts; it reads the same field as CapVoltage.
func (r *Robot) KickerCapVoltage() (float32, bool) {
	return r.CapVoltage()
}

// PrimaryStatus, KickerStatus, FanStatus and IMUStatus return the LF
// component health enums.
func (r *Robot) PrimaryStatus() (wire.HGStatus, bool) { return r.lfStatus(func(s wire.PrimaryStatusLF) wire.HGStatus { return s.PrimaryStatus }) }
func (r *Robot) KickerStatus() (wire.HGStatus, bool)  { return r.lfStatus(func(s wire.PrimaryStatusLF) wire.HGStatus { return s.KickerStatus }) }
func (r *Robot) FanStatus() (wire.HGStatus, bool)     { return r.lfStatus(func(s wire.PrimaryStatusLF) wire.HGStatus { return s.FanStatus }) }
func (r *Robot) IMUStatus() (wire.HGStatus, bool)     { return r.lfStatus(func(s wire.PrimaryStatusLF) wire.HGStatus { return s.IMUStatus }) }

func (r *Robot) lfStatus(pick func(wire.PrimaryStatusLF) wire.HGStatus) (wire.HGStatus, bool) {
	s, ok := r.statusLF.Get()
	if !ok {
		return 0, false
	}
	return pick(s), true
}

// MotorStatus returns the LF status of motor i (0..4).
func (r *Robot) MotorStatus(i int) (wire.HGStatus, bool) {
	s, ok := r.statusLF.Get()
	if !ok || i < 0 || i >= len(s.MotorStatus) {
		return 0, false
	}
	return s.MotorStatus[i], true
}

// ImuReadings returns the most recent IMU sample.
func (r *Robot) ImuReadings() (wire.ImuReadings, bool) {
	return r.imu.Get()
}
