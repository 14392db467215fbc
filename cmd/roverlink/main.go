// Package main is the combined RoverLink runtime: controller and rover
// agents linked over an in-memory loopback, configured from YAML. It
// exists for bench runs and demos without radio or motor hardware.
package main

import (
	"flag"
	"log"
	"os"

	"RoverLink/internal/core"
	"RoverLink/internal/util"
)

func main() {
	util.SetupLogger()

	cfgPath := flag.String("c", "configs/roverlink.yml", "path to configuration file")
	flag.Parse()

	util.Info("using config: %s", *cfgPath)

	sys, err := core.NewSystem(*cfgPath)
	if err != nil {
		log.Fatalf("failed to create system: %v", err)
	}
	if err := sys.StartAll(); err != nil {
		log.Fatalf("failed to start system: %v", err)
	}

	core.RunConsole(sys.Controller, os.Stdin, os.Stdout)

	util.Info("shutting down system")
	sys.StopAll()
	util.Info("system stopped cleanly")
}
