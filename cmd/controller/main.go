// Controller agent: discovers the rover over BLE or a UART bridge,
// holds the single live command session and translates console intents
// into wire symbols.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"RoverLink/internal/core"
	"RoverLink/internal/transport"
	"RoverLink/internal/util"
)

func main() {
	util.SetupLogger()

	kind := flag.String("transport", "ble", "transport: ble | bridge")
	bridgeBaud := flag.Int("baud", 9600, "baudrate for the bridge transport")
	name := flag.String("name", "", "auto-connect to the first device advertising this name")
	scanTimeoutMs := flag.Int("scantimeout", 10000, "scan self-cancel timeout ms")
	flag.Parse()

	var tr transport.Transport
	switch *kind {
	case "ble":
		tr = transport.NewBLE()
	case "bridge":
		tr = transport.NewSerialBridge(*bridgeBaud)
	default:
		log.Fatalf("unknown transport %q", *kind)
	}

	ctrl := core.NewController(tr, time.Duration(*scanTimeoutMs)*time.Millisecond)

	if *name != "" {
		if err := ctrl.AutoConnect(*name, 15*time.Second); err != nil {
			log.Fatalf("auto-connect: %v", err)
		}
		util.Info("connected to %s (transmit=%v)", *name, ctrl.Session.TransmitCapable())
	}

	core.RunConsole(ctrl, os.Stdin, os.Stdout)
	ctrl.Session.Disconnect()
}
