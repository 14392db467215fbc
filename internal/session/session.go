// Package session implements the controller side of the rover link:
// the discovery/connection state machine, the speed controller and the
// fire-and-forget command channel. A Session exclusively owns its
// transport connection; nothing else writes to the link.
package session

import (
	"fmt"
	"sync"
	"time"

	"RoverLink/internal/transport"
	"RoverLink/internal/util"
	"RoverLink/internal/wire"
)

// State is the session's connection lifecycle position.
type State string

const (
	StateIdle         State = "idle"
	StateScanning     State = "scanning"
	StateConnecting   State = "connecting"
	StateReady        State = "ready"
	StateDisconnected State = "disconnected"
)

// DefaultScanTimeout bounds a scan that is never explicitly stopped.
const DefaultScanTimeout = 10 * time.Second

// Session is the one-per-controller connection session. All methods
// are safe for concurrent use; the session is single-writer by
// construction (one scan, one connection, sequential sends).
type Session struct {
	mu sync.Mutex

	tr      transport.Transport
	mapping *wire.Mapping
	speed   *Speed

	state       State
	discovered  []transport.Observation
	seen        map[string]bool
	conn        transport.Conn
	target      *transport.WriteTarget
	scanStop    func()
	scanTimer   *time.Timer
	scanTimeout time.Duration

	// OnState, when set, observes every state change. It runs with
	// the session lock held; keep it cheap.
	OnState func(State)
}

// New returns an idle session over the given transport and mapping.
// A zero scanTimeout selects DefaultScanTimeout.
func New(tr transport.Transport, mapping *wire.Mapping, scanTimeout time.Duration) *Session {
	if scanTimeout <= 0 {
		scanTimeout = DefaultScanTimeout
	}
	return &Session{
		tr:          tr,
		mapping:     mapping,
		speed:       NewSpeed(),
		state:       StateIdle,
		seen:        make(map[string]bool),
		scanTimeout: scanTimeout,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// TransmitCapable reports whether the session is connected with a
// resolved writable endpoint.
func (s *Session) TransmitCapable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateReady && s.target != nil
}

// Speed returns the current controller-side speed value.
func (s *Session) Speed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed.Value()
}

// Devices returns a snapshot of the discovered device set.
func (s *Session) Devices() []transport.Observation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]transport.Observation, len(s.discovered))
	copy(out, s.discovered)
	return out
}

// setState records and publishes a state change.
func (s *Session) setState(st State) {
	s.state = st
	if s.OnState != nil {
		s.OnState(st)
	}
}

// StartScan begins discovery. It is refused, with no state change,
// when the transport capability is unavailable or the session is
// connecting/connected. Scanning while already scanning silently
// cancels the previous scan and clears the discovered set. The scan
// stops by itself after the configured timeout.
func (s *Session) StartScan() error {
	s.mu.Lock()
	switch s.state {
	case StateIdle, StateScanning:
	default:
		s.mu.Unlock()
		return fmt.Errorf("%w: cannot scan while %s", ErrBusy, s.state)
	}
	if err := s.tr.Ready(); err != nil {
		s.mu.Unlock()
		return err
	}

	s.cancelScanLocked()
	s.discovered = nil
	s.seen = make(map[string]bool)
	s.setState(StateScanning)
	tr := s.tr
	s.mu.Unlock()

	// Some transports deliver observations synchronously from Scan,
	// so it runs without the lock.
	stop, err := tr.Scan(s.observe)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.setState(StateIdle)
		return err
	}
	if s.state != StateScanning {
		// stopped or reused while starting
		stop()
		return nil
	}
	s.scanStop = stop
	s.scanTimer = time.AfterFunc(s.scanTimeout, s.scanTimedOut)
	return nil
}

// observe filters one raw scan result: anonymous peripherals are
// dropped, already-seen IDs are suppressed.
func (s *Session) observe(o transport.Observation) {
	if o.Name == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateScanning || s.seen[o.ID] {
		return
	}
	s.seen[o.ID] = true
	s.discovered = append(s.discovered, o)
}

// scanTimedOut ends an expired scan.
func (s *Session) scanTimedOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateScanning {
		return
	}
	s.cancelScanLocked()
	s.setState(StateIdle)
}

// StopScan cancels an active scan. The discovered set is kept so a
// device can still be selected.
func (s *Session) StopScan() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateScanning {
		return
	}
	s.cancelScanLocked()
	s.setState(StateIdle)
}

// cancelScanLocked stops the scan and its timer. Caller holds the lock.
func (s *Session) cancelScanLocked() {
	if s.scanStop != nil {
		s.scanStop()
		s.scanStop = nil
	}
	if s.scanTimer != nil {
		s.scanTimer.Stop()
		s.scanTimer = nil
	}
}

// Connect selects a discovered device and establishes the single live
// connection. Any active scan is cancelled first. On success the
// session is ready; if a writable endpoint was resolved it is also
// transmit-capable and one speed-reset is sent so both ends agree on
// the baseline speed.
func (s *Session) Connect(id string) error {
	s.mu.Lock()
	switch s.state {
	case StateIdle, StateScanning:
	default:
		s.mu.Unlock()
		return fmt.Errorf("%w: cannot connect while %s", ErrBusy, s.state)
	}
	s.cancelScanLocked()
	s.setState(StateConnecting)
	tr := s.tr
	s.mu.Unlock()

	// The dial may block; do it without the lock.
	conn, err := tr.Connect(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateConnecting {
		// torn down while the dial was in flight; the late conn is
		// ours to close and the state is no longer ours to touch
		if err == nil {
			if derr := conn.Disconnect(); derr != nil {
				util.Error("session: stale dial teardown: %v", derr)
			}
		}
		return fmt.Errorf("%w: cancelled", ErrConnectionFailed)
	}
	if err != nil {
		s.setState(StateIdle)
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	s.conn = conn

	// First (service, endpoint) pair in the peripheral's own order
	// wins. None found is not an error: the session stays connected
	// but silent.
	targets, err := conn.WritableEndpoints()
	if err != nil {
		util.Error("session: endpoint enumeration: %v", err)
	}
	if len(targets) > 0 {
		t := targets[0]
		s.target = &t
	}
	s.setState(StateReady)

	if s.target != nil {
		if err := s.writeLocked(wire.SpeedResetSymbol); err != nil {
			util.Error("session: speed baseline sync: %v", err)
		}
		s.speed.Reset()
	}
	return nil
}

// Send resolves an action through the active mapping and transmits its
// wire string, fire and forget.
func (s *Session) Send(a wire.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(s.mapping.Resolve(a))
}

// AdjustSpeed applies a clamped, step-quantized delta, emitting one
// speed-step command per 10-unit increment. Without a writable
// endpoint nothing is sent and the value does not move.
func (s *Session) AdjustSpeed(delta int) (steps int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady || s.target == nil {
		return 0, ErrNotTransmittable
	}
	return s.speed.Adjust(delta, func(a wire.Action) error {
		return s.writeLocked(s.mapping.Resolve(a))
	})
}

// writeLocked is the command channel: one wire string to the resolved
// target. Write failures do not change session state. Caller holds the
// lock.
func (s *Session) writeLocked(symbol string) error {
	if s.state != StateReady || s.target == nil {
		return ErrNotTransmittable
	}
	if err := s.conn.Write(*s.target, []byte(symbol)); err != nil {
		return fmt.Errorf("%w: %v", ErrTransmit, err)
	}
	return nil
}

// Disconnect tears the connection down and clears all derived state.
// Teardown failures are logged and otherwise ignored; the session ends
// up idle either way, ready to scan again.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelScanLocked()
	if s.conn != nil {
		if err := s.conn.Disconnect(); err != nil {
			util.Error("session: disconnect: %v", err)
		}
	}
	s.conn = nil
	s.target = nil
	s.speed.Reset()
	s.setState(StateDisconnected)
	s.setState(StateIdle)
}
