package wire

// PrimaryStatusLFSize is the packed size in bytes:
//
//	0      PackVoltages[0]       byte
//	1      PackVoltages[1]       byte
//	2..7   MotorDriverTemps[5]   byte x5
//	7      CapVoltage            byte
//	8      KickerTemp            byte (deprecated; no Robot accessor reads it)
//	9      PrimaryStatus         HGStatus
//	10     KickerStatus          HGStatus
//	11     FanStatus             HGStatus
//	12     IMUStatus             HGStatus
//	13..18 MotorStatus[5]        HGStatus x5
const PrimaryStatusLFSize = 18

// PrimaryStatusLF is the low-frequency per-robot status sample.
type PrimaryStatusLF struct {
	PackVoltages     [2]byte
	MotorDriverTemps [5]byte
	CapVoltage       byte
	KickerTemp       byte

	PrimaryStatus HGStatus
	KickerStatus  HGStatus
	FanStatus     HGStatus
	IMUStatus     HGStatus
	MotorStatus   [5]HGStatus
}

func (s PrimaryStatusLF) Bytes() []byte {
	b := make([]byte, PrimaryStatusLFSize)
	b[0] = s.PackVoltages[0]
	b[1] = s.PackVoltages[1]
	copy(b[2:7], s.MotorDriverTemps[:])
	b[7] = s.CapVoltage
	b[8] = s.KickerTemp
	b[9] = byte(s.PrimaryStatus)
	b[10] = byte(s.KickerStatus)
	b[11] = byte(s.FanStatus)
	b[12] = byte(s.IMUStatus)
	for i, st := range s.MotorStatus {
		b[13+i] = byte(st)
	}
	return b
}

// PrimaryStatusLFFromBytes decodes and validates a PrimaryStatusLF. Every
// embedded HGStatus (primary, kicker, fan, imu, and all five motor
// statuses) must decode to a recognized value, or the frame is dropped
// entirely (spec.md §3's LF enum invariant).
func PrimaryStatusLFFromBytes(b []byte) (PrimaryStatusLF, bool) {
	if len(b) != PrimaryStatusLFSize {
		return PrimaryStatusLF{}, false
	}
	var s PrimaryStatusLF
	s.PackVoltages[0] = b[0]
	s.PackVoltages[1] = b[1]
	copy(s.MotorDriverTemps[:], b[2:7])
	s.CapVoltage = b[7]
	s.KickerTemp = b[8]
	s.PrimaryStatus = HGStatus(b[9])
	s.KickerStatus = HGStatus(b[10])
	s.FanStatus = HGStatus(b[11])
	s.IMUStatus = HGStatus(b[12])
	for i := range s.MotorStatus {
		s.MotorStatus[i] = HGStatus(b[13+i])
	}

	if !s.PrimaryStatus.Valid() || !s.KickerStatus.Valid() || !s.FanStatus.Valid() || !s.IMUStatus.Valid() {
		return PrimaryStatusLF{}, false
	}
	for _, st := range s.MotorStatus {
		if !st.Valid() {
			return PrimaryStatusLF{}, false
		}
	}
	return s, true
}
