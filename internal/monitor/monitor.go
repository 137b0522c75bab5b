package monitor

import (
	"fmt"
	"time"

	"github.com/delftmercurians/basestation/internal/driver/device"
	"github.com/delftmercurians/basestation/pkg/wire"
)

// MutexAcquireTimeout bounds how long a foreground call waits to acquire
// the base-station or debug mutex before surfacing failure — spec.md
// §4.4/§7.
const MutexAcquireTimeout = 40 * time.Millisecond

// Monitor is the foreground handle onto the background worker. Foreground
// callers never touch the transport directly; all access goes through
// the queues, latest-value channels, and timed mutexes below.
type Monitor struct {
	baseMu timedMutex
	base   *BaseStation

	debugMu timedMutex
	debug   *Debug

	stop     chan struct{}
	commands queue[indexedCommand]
	messages queue[indexedMessage]

	robotsCh    chan [wire.MaxRobots]Robot
	baseInfoCh  chan Stamped[wire.BaseInformation]
	connectedCh chan bool

	cachedRobots   [wire.MaxRobots]Robot
	cachedBaseInfo Stamped[wire.BaseInformation]
	cachedConn     bool

	done chan struct{}
}

// Start constructs a Monitor and spawns its worker goroutine. No port is
// opened yet — spec.md §4.4 "start".
func Start() *Monitor {
	m := &Monitor{
		baseMu:      newTimedMutex(),
		debugMu:     newTimedMutex(),
		debug:       newDebug(),
		stop:        make(chan struct{}),
		robotsCh:    make(chan [wire.MaxRobots]Robot, 1),
		baseInfoCh:  make(chan Stamped[wire.BaseInformation], 1),
		connectedCh: make(chan bool, 1),
		done:        make(chan struct{}),
	}
	go m.run()
	return m
}

// Stop signals the worker to exit at its next iteration and waits for it
// to do so (at most one pacing interval).
func (m *Monitor) Stop() {
	close(m.stop)
	<-m.done
}

// ConnectTo opens port as the primary serial link and installs it as the
// active BaseStation. It fails if a BaseStation is already installed, if
// the port can't be opened, or if the base mutex isn't acquired within
// MutexAcquireTimeout.
func (m *Monitor) ConnectTo(port string) error {
	if !m.baseMu.TryLock(MutexAcquireTimeout) {
		return fmt.Errorf("monitor: timed out acquiring base station lock")
	}
	defer m.baseMu.Unlock()

	if m.base != nil {
		return fmt.Errorf("monitor: already connected")
	}
	base, err := connectBaseStation(port)
	if err != nil {
		return fmt.Errorf("monitor: connect to %s: %w", port, err)
	}
	m.base = base
	return nil
}

// ConnectToFirst lists the VID/PID-filtered ports and connects to the
// first one found.
func (m *Monitor) ConnectToFirst() error {
	port, err := device.FindDefaultPort()
	if err != nil {
		return fmt.Errorf("monitor: find base station: %w", err)
	}
	return m.ConnectTo(port)
}

// ConnectToMirror attaches port as the mirror link on the currently
// connected BaseStation's transport.
func (m *Monitor) ConnectToMirror(port string) error {
	if !m.baseMu.TryLock(MutexAcquireTimeout) {
		return fmt.Errorf("monitor: timed out acquiring base station lock")
	}
	defer m.baseMu.Unlock()

	if m.base == nil {
		return fmt.Errorf("monitor: not connected")
	}
	return m.base.transport.AttachMirror(port)
}

// DisconnectMirror detaches the mirror link, if any.
func (m *Monitor) DisconnectMirror() error {
	if !m.baseMu.TryLock(MutexAcquireTimeout) {
		return fmt.Errorf("monitor: timed out acquiring base station lock")
	}
	defer m.baseMu.Unlock()

	if m.base == nil {
		return nil
	}
	return m.base.transport.DetachMirror()
}

// Disconnect clears the active BaseStation, closing its transport.
func (m *Monitor) Disconnect() error {
	if !m.baseMu.TryLock(MutexAcquireTimeout) {
		return fmt.Errorf("monitor: timed out acquiring base station lock")
	}
	defer m.baseMu.Unlock()

	if m.base == nil {
		return nil
	}
	err := m.base.close()
	m.base = nil
	return err
}

// IsConnected returns the most recently published value on the connected
// channel, caching it so the call never blocks.
func (m *Monitor) IsConnected() bool {
	m.cachedConn = tryReceiveLatest(m.connectedCh, m.cachedConn)
	return m.cachedConn
}

// GetBaseInfo returns the most recently published BaseInformation,
// caching it so the call never blocks and never misses the latest state
// (though it may coalesce intermediate updates).
func (m *Monitor) GetBaseInfo() Stamped[wire.BaseInformation] {
	m.cachedBaseInfo = tryReceiveLatest(m.baseInfoCh, m.cachedBaseInfo)
	return m.cachedBaseInfo
}

// GetRobots returns the most recently published robot snapshot array.
func (m *Monitor) GetRobots() [wire.MaxRobots]Robot {
	m.cachedRobots = tryReceiveLatest(m.robotsCh, m.cachedRobots)
	return m.cachedRobots
}

// Send enqueues commands[i] for every present slot i, returning the first
// enqueue failure (enqueue onto an unbounded queue never actually fails
// in this implementation, but the signature mirrors spec.md §4.4 for
// parity with callers written against a queue that could back-pressure).
func (m *Monitor) Send(commands [wire.MaxRobots]*wire.Command) error {
	for i, c := range commands {
		if c == nil {
			continue
		}
		m.commands.push(indexedCommand{id: uint8(i), cmd: *c})
	}
	return nil
}

// SendSingle enqueues cmd addressed to robot id.
func (m *Monitor) SendSingle(id uint8, cmd wire.Command) {
	m.commands.push(indexedCommand{id: id, cmd: cmd})
}

// SendBroadcast enqueues cmd addressed to every robot.
func (m *Monitor) SendBroadcast(cmd wire.Command) {
	m.commands.push(indexedCommand{id: wire.BroadcastRobotID, cmd: cmd})
}

// SendMCM enqueues a MultiConfigMessage addressed to robot id.
func (m *Monitor) SendMCM(id uint8, mcm wire.MultiConfigMessage) {
	m.messages.push(indexedMessage{id: id, msg: wire.WrapMultiConfigMessage(mcm)})
}

// SendOverrideOdometry enqueues an OverrideOdometry addressed to robot id.
func (m *Monitor) SendOverrideOdometry(id uint8, o wire.OverrideOdometry) {
	m.messages.push(indexedMessage{id: id, msg: wire.WrapOverrideOdometry(o)})
}

// SetChannel addresses a WRITE MultiConfigMessage at the base station's
// own reserved id, setting its radio channel.
func (m *Monitor) SetChannel(channel uint8) {
	mcm := wire.NewConfigWrite()
	mcm.Add(wire.HGVariableRadioChannel, uint32(channel))
	m.SendMCM(wire.BaseStationRobotID, mcm)
}

// GetDebugMux acquires the debug mutex within MutexAcquireTimeout and
// returns the trail along with an unlock function. It returns (nil, nil)
// on timeout.
func (m *Monitor) GetDebugMux() (*Debug, func()) {
	if !m.debugMu.TryLock(MutexAcquireTimeout) {
		return nil, nil
	}
	return m.debug, m.debugMu.Unlock
}
