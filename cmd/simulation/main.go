// Command-stream simulator: writes a timed script of wire symbols into
// a serial device to exercise a rover agent without a controller. With
// -pty it creates its own socat PTY pair, writes into the left end and
// leaves the right end for the rover agent.
package main

import (
	"flag"
	"log"
	"strings"
	"time"

	serial "go.bug.st/serial"

	"RoverLink/internal/util"
)

func main() {
	util.SetupLogger()

	dev := flag.String("dev", "/dev/serial0", "serial device to write commands into")
	baud := flag.Int("baud", 9600, "baud rate")
	script := flag.String("script", "/,F,+,+,FR,S", "comma-separated wire symbols to send")
	interval := flag.Int("interval", 500, "ms between symbols")
	pty := flag.String("pty", "", "create a virtual serial pair as left:right and send into the left end")
	flag.Parse()

	if *pty != "" {
		left, right, ok := strings.Cut(*pty, ":")
		if !ok || left == "" || right == "" {
			log.Fatalf("bad -pty value %q, want left:right", *pty)
		}
		virt := util.NewSocatManager()
		if err := virt.CreatePair(left, right); err != nil {
			log.Fatalf("virt-serial: %v", err)
		}
		defer virt.Cleanup()
		// socat needs a moment to materialize the links
		time.Sleep(200 * time.Millisecond)
		*dev = left
	}

	port, err := serial.Open(*dev, &serial.Mode{BaudRate: *baud})
	if err != nil {
		log.Fatalf("open serial: %v", err)
	}
	defer func() {
		if cerr := port.Close(); cerr != nil {
			util.Error("close serial: %v", cerr)
		}
	}()

	symbols := strings.Split(*script, ",")
	util.Info("simulator sending %d symbols to %s every %dms", len(symbols), *dev, *interval)

	tick := time.NewTicker(time.Duration(*interval) * time.Millisecond)
	defer tick.Stop()

	for _, sym := range symbols {
		<-tick.C
		if _, err := port.Write([]byte(sym)); err != nil {
			util.Error("write err: %v", err)
			continue
		}
		util.Info("sent: %s", sym)
	}
}
