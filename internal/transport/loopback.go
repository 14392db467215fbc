package transport

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"RoverLink/internal/device"
)

// Loopback implements Transport as an in-memory link: command bytes
// written by the controller session are delivered one at a time to a
// byte source the rover agent can read from. It replaces the radio
// during bench runs and in the combined runtime.
type Loopback struct {
	obs []Observation
	out chan byte
}

// NewLoopback returns a loopback transport advertising the given
// observations during scans.
func NewLoopback(obs ...Observation) *Loopback {
	return &Loopback{obs: obs, out: make(chan byte, 256)}
}

// loopbackTarget is the single endpoint a loopback peer exposes.
var loopbackTarget = WriteTarget{Service: "loopback", Endpoint: "rx"}

// Ready always succeeds; the loopback has no radio to enable.
func (l *Loopback) Ready() error { return nil }

// Scan reports the configured observations immediately.
func (l *Loopback) Scan(onFound func(Observation)) (func(), error) {
	for _, o := range l.obs {
		onFound(o)
	}
	return func() {}, nil
}

// Connect accepts any advertised observation ID.
func (l *Loopback) Connect(id string) (Conn, error) {
	for _, o := range l.obs {
		if o.ID == id {
			return &loopbackConn{out: l.out}, nil
		}
	}
	return nil, fmt.Errorf("unknown peripheral %q", id)
}

// ReadByte yields the next command byte written by the connected
// controller, or times out. It makes a Loopback usable as the rover
// agent's byte source.
func (l *Loopback) ReadByte(timeout time.Duration) (byte, error) {
	if timeout <= 0 {
		return <-l.out, nil
	}
	select {
	case b := <-l.out:
		return b, nil
	case <-time.After(timeout):
		return 0, device.ErrReadTimeout
	}
}

// loopbackConn delivers written bytes into the shared channel.
type loopbackConn struct {
	mu     sync.Mutex
	out    chan byte
	closed bool
}

// WritableEndpoints reports the single loopback endpoint.
func (c *loopbackConn) WritableEndpoints() ([]WriteTarget, error) {
	return []WriteTarget{loopbackTarget}, nil
}

// Write pushes each byte separately, mirroring the byte-by-byte
// delivery of a real link. A full buffer drops the remainder; the
// protocol is best effort.
func (c *loopbackConn) Write(t WriteTarget, p []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.New("connection closed")
	}
	if t != loopbackTarget {
		return errors.New("no such endpoint")
	}
	for _, b := range p {
		select {
		case c.out <- b:
		default:
			return errors.New("loopback buffer full")
		}
	}
	return nil
}

// Disconnect marks the connection dead; later writes are refused. The
// shared channel stays open for the next session's conn.
func (c *loopbackConn) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}
