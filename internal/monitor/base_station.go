package monitor

import (
	"time"

	"github.com/delftmercurians/basestation/internal/driver/device"
	"github.com/delftmercurians/basestation/pkg/wire"
)

// BaseStation aggregates everything the monitor knows about one connected
// bridge: the sixteen robot slots, the bridge's own stamped identity, and
// the transport it owns. Created on connect, torn down on disconnect or
// transport fatal error — spec.md §3.
type BaseStation struct {
	robots      [wire.MaxRobots]Robot
	info        Stamped[wire.BaseInformation]
	transport   *device.Transport
	connectedAt time.Time
}

func connectBaseStation(port string) (*BaseStation, error) {
	t, err := device.Open(port)
	if err != nil {
		return nil, err
	}
	return &BaseStation{transport: t, connectedAt: time.Now()}, nil
}

// ConnectedFor reports how long this base station has been connected.
func (b *BaseStation) ConnectedFor() time.Duration {
	return time.Since(b.connectedAt)
}

// BaseConnectionDuration always reports unknown: spec.md §9 leaves this
// an open stub even though the timestamp needed to compute it already
// exists on the aggregate.
func (b *BaseStation) BaseConnectionDuration() (time.Duration, bool) {
	return 0, false
}

func (b *BaseStation) close() error {
	return b.transport.Close()
}
