// Package device implements the SerialDevice type using go.bug.st/serial,
// providing read and write operations for physical serial communication ports.
package device

import (
	"bufio"
	"errors"
	"fmt"
	"time"

	serial "go.bug.st/serial"
)

// ErrReadTimeout is returned by ReadByte when no byte arrives in time.
var ErrReadTimeout = errors.New("read timeout")

// SerialDevice implements Device using go.bug.st/serial package.
// A single reader goroutine feeds incoming bytes into a channel so a
// timed-out read never loses the byte that arrives right after.
type SerialDevice struct {
	port serial.Port
	in   chan byte
	errs chan error
}

// NewSerialDevice opens a serial device with given path and baudrate.
func NewSerialDevice(dev string, baud int) (*SerialDevice, error) {
	p, err := serial.Open(dev, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial %s: %w", dev, err)
	}
	s := &SerialDevice{port: p, in: make(chan byte, 256), errs: make(chan error, 1)}
	go s.readLoop()
	return s, nil
}

// readLoop pumps bytes from the port into the buffered channel until
// the port is closed or errors out.
func (s *SerialDevice) readLoop() {
	r := bufio.NewReader(s.port)
	for {
		b, err := r.ReadByte()
		if err != nil {
			select {
			case s.errs <- err:
			default:
			}
			close(s.in)
			return
		}
		s.in <- b
	}
}

// ReadByte reads a single byte from the serial port with optional timeout.
func (s *SerialDevice) ReadByte(timeout time.Duration) (byte, error) {
	if timeout <= 0 {
		b, ok := <-s.in
		if !ok {
			return 0, s.readErr()
		}
		return b, nil
	}

	select {
	case b, ok := <-s.in:
		if !ok {
			return 0, s.readErr()
		}
		return b, nil
	case <-time.After(timeout):
		return 0, ErrReadTimeout
	}
}

// readErr reports why the read loop stopped.
func (s *SerialDevice) readErr() error {
	select {
	case err := <-s.errs:
		return err
	default:
		return errors.New("serial device closed")
	}
}

// WriteLine writes a line followed by newline.
func (s *SerialDevice) WriteLine(line string) error {
	_, err := s.port.Write(append([]byte(line), '\n'))
	return err
}

// Close closes the underlying serial port.
func (s *SerialDevice) Close() error {
	if s.port == nil {
		return nil
	}
	return s.port.Close()
}
