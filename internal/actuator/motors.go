package actuator

import (
	"fmt"

	"RoverLink/internal/device"
	"RoverLink/internal/util"
)

// Motors applies a pair of drive levels to the physical motors.
// SetDrive takes effect immediately; there is no staging.
type Motors interface {
	SetDrive(left, right float64) error
	Close() error
}

// SerialMotors writes drive levels as a CSV line ("LEFT,RIGHT") to a
// motor driver board attached over a serial port.
type SerialMotors struct {
	dev device.Device
}

// NewSerialMotors opens the driver board port.
func NewSerialMotors(dev string, baud int) (*SerialMotors, error) {
	d, err := device.NewSerialDevice(dev, baud)
	if err != nil {
		return nil, fmt.Errorf("open motor driver: %w", err)
	}
	return &SerialMotors{dev: d}, nil
}

// SetDrive sends the level pair to the driver board.
func (m *SerialMotors) SetDrive(left, right float64) error {
	return m.dev.WriteLine(fmt.Sprintf("%.3f,%.3f", left, right))
}

// Close closes the driver board port.
func (m *SerialMotors) Close() error {
	return m.dev.Close()
}

// LogMotors logs drive changes instead of driving hardware. Used when
// the rover runs without a driver board (bench mode).
type LogMotors struct{}

// SetDrive logs the level pair.
func (LogMotors) SetDrive(left, right float64) error {
	util.Info("motors: left=%.3f right=%.3f", left, right)
	return nil
}

// Close is a no-op.
func (LogMotors) Close() error { return nil }
