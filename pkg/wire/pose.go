package wire

import "encoding/binary"
import "math"

// PoseSize is the packed size of Pose in bytes.
const PoseSize = 12

// Pose is a three-axis float triple, reused for command speeds and
// odometry positions.
type Pose struct {
	X, Y, Z float32
}

// Bytes encodes p in the firmware's native (little-endian) byte order.
func (p Pose) Bytes() []byte {
	b := make([]byte, PoseSize)
	putFloat32(b[0:4], p.X)
	putFloat32(b[4:8], p.Y)
	putFloat32(b[8:12], p.Z)
	return b
}

// PoseFromBytes decodes a Pose from exactly PoseSize bytes.
func PoseFromBytes(b []byte) (Pose, bool) {
	if len(b) != PoseSize {
		return Pose{}, false
	}
	return Pose{
		X: getFloat32(b[0:4]),
		Y: getFloat32(b[4:8]),
		Z: getFloat32(b[8:12]),
	}, true
}

func putFloat32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func getFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
