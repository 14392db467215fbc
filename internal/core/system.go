package core

import (
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"RoverLink/internal/actuator"
	"RoverLink/internal/model"
	"RoverLink/internal/transport"
	"RoverLink/internal/util"
	"RoverLink/internal/vehicle"
)

// System manages lifecycle of a combined controller + rover runtime
// linked over the in-memory loopback transport. It loads configuration
// from a YAML file and constructs the agents accordingly. Real
// deployments run cmd/controller and cmd/vehicle separately; this
// runtime exists for bench work and demos without hardware.
type System struct {
	cfg *model.Config

	Controller *Controller
	Rover      *Rover
	Monitor    *Monitor

	motors actuator.Motors

	started   bool
	startLock sync.Mutex
}

// NewSystem reads the YAML configuration at cfgPath and creates a
// System instance with both agents wired to a shared loopback link.
func NewSystem(cfgPath string) (*System, error) {
	b, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}
	var cfg model.Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Rover.ID == "" {
		cfg.Rover.ID = "rover-01"
	}

	link := transport.NewLoopback(transport.Observation{ID: "loopback-0", Name: cfg.Rover.ID})

	var motors actuator.Motors = actuator.LogMotors{}
	if cfg.Rover.MotorDev != "" {
		m, err := actuator.NewSerialMotors(cfg.Rover.MotorDev, cfg.Rover.MotorBaud)
		if err != nil {
			return nil, err
		}
		motors = m
	}

	var monitor *Monitor
	if cfg.Rover.MonitorAddr != "" {
		monitor = NewMonitor(cfg.Rover.MonitorAddr)
	}

	s := &System{
		cfg:     &cfg,
		Monitor: monitor,
		motors:  motors,
	}
	s.Rover = NewRover(
		cfg.Rover.ID,
		link,
		vehicle.NewInterpreter(motors),
		monitor,
		time.Duration(cfg.Rover.SettleDelayMs)*time.Millisecond,
	)
	s.Controller = NewController(link, time.Duration(cfg.Controller.ScanTimeoutMs)*time.Millisecond)
	return s, nil
}

// StartAll starts the monitor and the rover, then connects the
// controller to the rover over the loopback link.
func (s *System) StartAll() error {
	s.startLock.Lock()
	defer s.startLock.Unlock()
	if s.started {
		return nil
	}

	if s.Monitor != nil {
		go s.Monitor.Start()
	}
	if err := s.Rover.Start(); err != nil {
		return err
	}
	if err := s.Controller.AutoConnect(s.cfg.Rover.ID, 2*time.Second); err != nil {
		return err
	}
	util.Info("system: controller linked to %s (transmit=%v)",
		s.cfg.Rover.ID, s.Controller.Session.TransmitCapable())
	s.started = true
	return nil
}

// StopAll stops all running components gracefully.
func (s *System) StopAll() {
	s.startLock.Lock()
	defer s.startLock.Unlock()
	if !s.started {
		return
	}
	s.Controller.Session.Disconnect()
	s.Rover.Stop()
	if s.Monitor != nil {
		s.Monitor.Stop()
	}
	if err := s.motors.Close(); err != nil {
		util.Error("system: close motors: %v", err)
	}
	s.started = false
}
