// Command basestation-monitor is a small demo harness exercising the
// monitor package end to end: connect to a base station, print its
// identity and per-robot liveness on an interval, and optionally drive a
// radio channel change.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/delftmercurians/basestation/internal/config"
	"github.com/delftmercurians/basestation/internal/monitor"
	"github.com/delftmercurians/basestation/pkg/wire"
)

var (
	portFlag     = flag.String("port", "", "explicit serial port (empty = BASESTATION_PORT, else VID/PID auto-discovery)")
	mirrorFlag   = flag.String("mirror", "", "optional mirror port to tap inbound traffic")
	channelFlag  = flag.Int("channel", -1, "if >= 0, set the base station's radio channel on connect")
	durationFlag = flag.Duration("duration", 10*time.Second, "how long to run before exiting")
)

func main() {
	flag.Parse()

	port := *portFlag
	if port == "" {
		port = config.PortOrDefault()
	}

	m := monitor.Start()
	defer m.Stop()

	if port != "" {
		if err := m.ConnectTo(port); err != nil {
			log.Fatalf("connect to %s: %v", port, err)
		}
	} else if err := m.ConnectToFirst(); err != nil {
		log.Fatalf("auto-discover base station: %v", err)
	}

	if *mirrorFlag != "" {
		if err := m.ConnectToMirror(*mirrorFlag); err != nil {
			log.Printf("attach mirror %s: %v", *mirrorFlag, err)
		}
	}

	if *channelFlag >= 0 {
		m.SetChannel(uint8(*channelFlag))
	}

	deadline := time.Now().Add(*durationFlag)
	for time.Now().Before(deadline) {
		if !m.IsConnected() {
			fmt.Println("disconnected")
			time.Sleep(200 * time.Millisecond)
			continue
		}

		if info, ok := m.GetBaseInfo().Get(); ok {
			fmt.Printf("base station: firmware %s protocol %s channel %d\n",
				info.Version.String(), info.Version.ProtocolString(), info.RadioChannel)
		}

		robots := m.GetRobots()
		alive := 0
		for i := range robots {
			if robots[i].IsAlive() {
				alive++
			}
		}
		fmt.Printf("%d/%d robots alive\n", alive, wire.MaxRobots)

		time.Sleep(500 * time.Millisecond)
	}
}
