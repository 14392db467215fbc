// Package model defines shared configuration structures used to initialize the RoverLink system.
// It includes controller settings and rover agent settings.
package model

// Config represents the root structure loaded from configs/roverlink.yml.
type Config struct {
	Controller ControllerConfig `yaml:"controller"`
	Rover      RoverConfig      `yaml:"rover"`
}

// ControllerConfig defines the controller-side session settings.
type ControllerConfig struct {
	Transport     string `yaml:"transport"`       // ble | bridge | loopback
	BridgeBaud    int    `yaml:"bridge_baud"`     // baud for the bridge transport
	NameFilter    string `yaml:"name_filter"`     // advertised name to auto-connect to (optional)
	ScanTimeoutMs int    `yaml:"scan_timeout_ms"` // scan self-cancel timeout
}

// RoverConfig defines the rover agent settings.
type RoverConfig struct {
	ID            string `yaml:"id"`
	CommandDev    string `yaml:"command_device"` // serial port carrying inbound command bytes
	CommandBaud   int    `yaml:"command_baud"`
	MotorDev      string `yaml:"motor_device"` // motor driver board port; empty logs drive levels
	MotorBaud     int    `yaml:"motor_baud"`
	SettleDelayMs int    `yaml:"settle_delay_ms"` // inter-byte settle delay before evaluation
	MonitorAddr   string `yaml:"monitor_addr"`    // websocket monitor address; empty disables
}
