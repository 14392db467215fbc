package transport

import (
	"errors"
	"fmt"
	"path/filepath"

	serial "go.bug.st/serial"
)

// SerialBridge implements Transport over a transparent UART radio
// bridge (HC-06/HM-10 style modules exposed as local serial ports).
// Scanning enumerates the host's serial ports; connecting opens one;
// the single writable endpoint is the module's TX line.
type SerialBridge struct {
	baud int
}

// NewSerialBridge returns a transport that opens ports at baud.
func NewSerialBridge(baud int) *SerialBridge {
	return &SerialBridge{baud: baud}
}

// uartTarget is the one endpoint every bridged port exposes.
var uartTarget = WriteTarget{Service: "uart", Endpoint: "tx"}

// Ready checks that serial port enumeration works at all.
func (s *SerialBridge) Ready() error {
	if _, err := serial.GetPortsList(); err != nil {
		return fmt.Errorf("%w: %v", ErrCapabilityUnavailable, err)
	}
	return nil
}

// Scan reports each present serial port once. Port enumeration is
// instantaneous, so all observations are delivered before Scan
// returns; stop is a no-op kept for interface symmetry.
func (s *SerialBridge) Scan(onFound func(Observation)) (func(), error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapabilityUnavailable, err)
	}
	for _, p := range ports {
		onFound(Observation{ID: p, Name: filepath.Base(p)})
	}
	return func() {}, nil
}

// Connect opens the port at the configured baud rate.
func (s *SerialBridge) Connect(id string) (Conn, error) {
	port, err := serial.Open(id, &serial.Mode{BaudRate: s.baud})
	if err != nil {
		return nil, fmt.Errorf("open bridge %s: %w", id, err)
	}
	return &serialConn{port: port}, nil
}

// serialConn is one opened bridge port.
type serialConn struct {
	port serial.Port
}

// WritableEndpoints reports the single TX endpoint.
func (c *serialConn) WritableEndpoints() ([]WriteTarget, error) {
	return []WriteTarget{uartTarget}, nil
}

// Write sends raw command bytes down the bridge.
func (c *serialConn) Write(t WriteTarget, p []byte) error {
	if t != uartTarget {
		return errors.New("no such endpoint")
	}
	if _, err := c.port.Write(p); err != nil {
		return fmt.Errorf("bridge write: %w", err)
	}
	return nil
}

// Disconnect closes the port.
func (c *serialConn) Disconnect() error {
	return c.port.Close()
}
