// Rover agent: reads command bytes from a serial port, interprets them
// into motion commands and drives the motor board. Optionally serves a
// websocket monitor with the decoded command stream.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"RoverLink/internal/actuator"
	"RoverLink/internal/core"
	"RoverLink/internal/device"
	"RoverLink/internal/util"
	"RoverLink/internal/vehicle"
)

func main() {
	util.SetupLogger()

	id := flag.String("id", "rover-01", "rover id")
	cmdDev := flag.String("cmd", "/dev/serial0", "command input serial device")
	cmdBaud := flag.Int("cmdbaud", 9600, "command input baudrate")
	motorDev := flag.String("motor", "", "motor driver serial device (empty: log drive levels)")
	motorBaud := flag.Int("motorbaud", 9600, "motor driver baudrate")
	monitorAddr := flag.String("monitor", "", "websocket monitor address (empty: disabled)")
	settleMs := flag.Int("settle", 20, "inter-byte settle delay ms")
	flag.Parse()

	src, err := device.NewSerialDevice(*cmdDev, *cmdBaud)
	if err != nil {
		log.Fatalf("open command input: %v", err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			util.Error("close command input: %v", cerr)
		}
	}()

	var motors actuator.Motors = actuator.LogMotors{}
	if *motorDev != "" {
		m, err := actuator.NewSerialMotors(*motorDev, *motorBaud)
		if err != nil {
			log.Fatalf("open motor driver: %v", err)
		}
		motors = m
	}
	defer func() {
		if cerr := motors.Close(); cerr != nil {
			util.Error("close motors: %v", cerr)
		}
	}()

	var monitor *core.Monitor
	if *monitorAddr != "" {
		monitor = core.NewMonitor(*monitorAddr)
		go monitor.Start()
		defer monitor.Stop()
	}

	rover := core.NewRover(*id, src, vehicle.NewInterpreter(motors), monitor,
		time.Duration(*settleMs)*time.Millisecond)
	if err := rover.Start(); err != nil {
		log.Fatalf("start rover: %v", err)
	}

	util.Info("rover %s: cmd=%s motor=%s", *id, *cmdDev, *motorDev)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	util.Info("rover %s stopping", *id)
	rover.Stop()
}
