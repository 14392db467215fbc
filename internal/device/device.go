// Package device defines a unified interface for serial communication
// endpoints such as the rover command input or a motor driver board.
// It abstracts byte and line oriented access with optional timeouts.
package device

import "time"

// Device defines an abstract interface for serial communication devices.
// Implementations provide byte reads with optional timeout and line
// writes.
type Device interface {
	// ReadByte reads a single byte. If timeout > 0, it must return
	// after timeout even if no data is available.
	ReadByte(timeout time.Duration) (byte, error)

	// WriteLine writes s followed by '\n' to the device.
	WriteLine(s string) error

	// Close closes the device and releases underlying resources.
	Close() error
}
