package wire

// ImuReadingsSize is the packed size of ImuReadings in bytes.
const ImuReadingsSize = 24

// ImuReadings is a single IMU sample: three axes of angular position
// followed by three axes of angular velocity.
type ImuReadings struct {
	AngPosX, AngPosY, AngPosZ float32
	AngVelX, AngVelY, AngVelZ float32
}

func (r ImuReadings) Bytes() []byte {
	b := make([]byte, ImuReadingsSize)
	putFloat32(b[0:4], r.AngPosX)
	putFloat32(b[4:8], r.AngPosY)
	putFloat32(b[8:12], r.AngPosZ)
	putFloat32(b[12:16], r.AngVelX)
	putFloat32(b[16:20], r.AngVelY)
	putFloat32(b[20:24], r.AngVelZ)
	return b
}

func ImuReadingsFromBytes(b []byte) (ImuReadings, bool) {
	if len(b) != ImuReadingsSize {
		return ImuReadings{}, false
	}
	return ImuReadings{
		AngPosX: getFloat32(b[0:4]),
		AngPosY: getFloat32(b[4:8]),
		AngPosZ: getFloat32(b[8:12]),
		AngVelX: getFloat32(b[12:16]),
		AngVelY: getFloat32(b[16:20]),
		AngVelZ: getFloat32(b[20:24]),
	}, true
}
