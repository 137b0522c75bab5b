package wire

// CommandSize is the packed size in bytes: Pose(12) + DribblerSpeed f32(4)
// + RobotCommand(1) + pad[3] + KickTime f32(4) + FanSpeed f32(4) = 28.
const CommandSize = 28

// Command is an outbound per-robot command.
type Command struct {
	Speed         Pose
	DribblerSpeed float32
	RobotCommand  RobotCommand
	KickTime      float32
	FanSpeed      float32
}

func (c Command) Bytes() []byte {
	b := make([]byte, CommandSize)
	copy(b[0:12], c.Speed.Bytes())
	putFloat32(b[12:16], c.DribblerSpeed)
	b[16] = byte(c.RobotCommand)
	// b[17:20] padding, left zero
	putFloat32(b[20:24], c.KickTime)
	putFloat32(b[24:28], c.FanSpeed)
	return b
}

func CommandFromBytes(b []byte) (Command, bool) {
	if len(b) != CommandSize {
		return Command{}, false
	}
	if b[17] != 0 || b[18] != 0 || b[19] != 0 {
		return Command{}, false
	}
	speed, ok := PoseFromBytes(b[0:12])
	if !ok {
		return Command{}, false
	}
	cmd := RobotCommand(b[16])
	if !cmd.Valid() {
		return Command{}, false
	}
	return Command{
		Speed:         speed,
		DribblerSpeed: getFloat32(b[12:16]),
		RobotCommand:  cmd,
		KickTime:      getFloat32(b[20:24]),
		FanSpeed:      getFloat32(b[24:28]),
	}, true
}
