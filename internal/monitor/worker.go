package monitor

import (
	"log"
	"time"

	"github.com/delftmercurians/basestation/pkg/wire"
)

// PacingInterval is how long the worker pauses each iteration once it has
// drained whatever was ready — spec.md §5 calls this a 15ms busy-wait,
// chosen over a longer sleep so the foreground's 40ms mutex-timeout keeps
// succeeding under normal load. A plain time.Sleep is one of the
// substitutions spec.md §9 explicitly allows in place of a true spin.
const PacingInterval = 15 * time.Millisecond

const (
	commandsPerIteration = 2
	messagesPerIteration = 1
)

type indexedCommand struct {
	id  uint8
	cmd wire.Command
}

type indexedMessage struct {
	id  uint8
	msg wire.RadioMessage
}

func (m *Monitor) run() {
	defer close(m.done)
	for {
		select {
		case <-m.stop:
			return
		default:
		}

		m.baseMu.Lock()
		m.debugMu.Lock()

		disconnect := false
		if m.base != nil {
			publishLatest(m.connectedCh, true)

			robotsUpdated, baseInfoUpdated, fatal := m.readAndParse(m.base)
			if fatal {
				disconnect = true
			}

			for _, c := range m.commands.drain(commandsPerIteration) {
				wrapper := wire.NewMessageWrapper(c.id, wire.WrapCommand(c.cmd))
				if err := m.base.transport.SendMessage(wrapper); err != nil {
					log.Printf("monitor: send command to robot %d: %v", c.id, err)
				}
			}
			for _, msg := range m.messages.drain(messagesPerIteration) {
				wrapper := wire.NewMessageWrapper(msg.id, msg.msg)
				if err := m.base.transport.SendMessage(wrapper); err != nil {
					log.Printf("monitor: send message to robot %d: %v", msg.id, err)
				}
			}

			if robotsUpdated {
				publishLatest(m.robotsCh, m.base.robots)
			}
			if baseInfoUpdated {
				publishLatest(m.baseInfoCh, m.base.info)
			}

			time.Sleep(PacingInterval)
		} else {
			publishLatest(m.connectedCh, false)
			time.Sleep(PacingInterval)
		}

		if disconnect {
			if err := m.base.close(); err != nil {
				log.Printf("monitor: error closing transport on disconnect: %v", err)
			}
			m.base = nil
		}

		m.debugMu.Unlock()
		m.baseMu.Unlock()
	}
}

// readAndParse drains every frame currently ready on base's transport and
// dispatches it per spec.md §4.4. It reports whether the robot array or
// the base info changed, and whether a fatal transport error occurred.
func (m *Monitor) readAndParse(base *BaseStation) (robotsUpdated, baseInfoUpdated, fatal bool) {
	frames, err := base.transport.Poll()
	if err != nil {
		m.debug.logf("fatal transport error: %v", err)
		return false, false, true
	}
	robotsUpdated, baseInfoUpdated = m.dispatchFrames(base, frames)
	return robotsUpdated, baseInfoUpdated, false
}

// dispatchFrames applies the per-frame routing table of spec.md §4.4 to
// already-extracted frame payloads. It has no transport dependency, so
// tests can drive it directly with synthetic frames.
func (m *Monitor) dispatchFrames(base *BaseStation, frames [][]byte) (robotsUpdated, baseInfoUpdated bool) {
	for _, payload := range frames {
		switch len(payload) {
		case wire.BaseInformationSize:
			bi, ok := wire.BaseInformationFromBytes(payload)
			if !ok {
				m.debug.logf("Unknown Data: %x", payload)
				continue
			}
			base.info.Set(bi)
			baseInfoUpdated = true
			m.debug.log("B")

		case wire.MessageWrapperSize:
			mw, ok := wire.MessageWrapperFromBytes(payload)
			if !ok {
				m.debug.logf("Unknown Data: %x", payload)
				continue
			}
			if int(mw.RobotID) >= wire.MaxRobots {
				continue
			}
			if m.dispatchWrapper(base, mw) {
				robotsUpdated = true
			}

		default:
			m.debug.logf("Unknown Data: %x", payload)
		}
	}
	return robotsUpdated, baseInfoUpdated
}

// dispatchWrapper routes one decoded MessageWrapper into the indexed
// robot slot. It reports whether the robot array changed.
func (m *Monitor) dispatchWrapper(base *BaseStation, mw wire.MessageWrapper) bool {
	robot := &base.robots[mw.RobotID]

	switch mw.Msg.Type {
	case wire.RadioMessagePrimaryStatusHF:
		s, ok := mw.Msg.PrimaryStatusHF()
		if !ok {
			m.debug.log("Unknown Message Type")
			return false
		}
		robot.updateStatusHF(s)
		m.debug.logf("HF %d", mw.RobotID)
		return true

	case wire.RadioMessagePrimaryStatusLF:
		s, ok := mw.Msg.PrimaryStatusLF()
		if !ok {
			m.debug.log("Unknown Message Type")
			return false
		}
		robot.updateStatusLF(s)
		m.debug.logf("LF %d", mw.RobotID)
		return true

	case wire.RadioMessageImuReadings:
		r, ok := mw.Msg.ImuReadings()
		if !ok {
			m.debug.log("Unknown Message Type")
			return false
		}
		robot.updateImu(r)
		m.debug.pushImu(mw.RobotID, r)
		m.debug.logf("IMU %d", mw.RobotID)
		return true

	case wire.RadioMessageOdometryReading:
		// spec.md §9: parsed and logged, not aggregated into the robot.
		o, ok := mw.Msg.OdometryReading()
		if ok {
			m.debug.pushOdometry(mw.RobotID, o)
		}
		m.debug.logf("Odometry %d", mw.RobotID)
		return false

	case wire.RadioMessageOverrideOdometry:
		// spec.md §9: same as above.
		m.debug.logf("OverrideOdometry %d", mw.RobotID)
		return false

	case wire.RadioMessageMultiConfig:
		mcm, ok := mw.Msg.MultiConfigMessage()
		if !ok {
			m.debug.log("Unknown Message Type")
			return false
		}
		if isConfigReturn(mcm.Operation) {
			for i, v := range mcm.Vars {
				if v == wire.HGVariableNone {
					continue
				}
				m.debug.setConfigVariableReturn(mw.RobotID, v, mcm.Values[i])
			}
		}
		m.debug.logf("MultiConfigMessage %d", mw.RobotID)
		return false

	case wire.RadioMessageNone:
		m.debug.log("Unknown Message Type")
		return false

	default:
		m.debug.log("Unknown Message Type")
		return false
	}
}

func isConfigReturn(op wire.HGConfigOperation) bool {
	switch op {
	case wire.HGConfigOpReadReturn, wire.HGConfigOpWriteReturn, wire.HGConfigOpSetDefaultReturn:
		return true
	default:
		return false
	}
}
