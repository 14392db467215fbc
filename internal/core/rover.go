// Package core contains the main runtime logic and orchestration layer
// for RoverLink. It defines the Rover and Controller agents, the
// websocket Monitor and the System type that manages their lifecycle.
package core

import (
	"errors"
	"sync"
	"time"

	"RoverLink/internal/device"
	"RoverLink/internal/util"
	"RoverLink/internal/vehicle"
	"RoverLink/internal/wire"
)

// ByteSource is where the rover's command bytes come from: a serial
// port on real hardware, the loopback link on the bench.
type ByteSource interface {
	ReadByte(timeout time.Duration) (byte, error)
}

// DefaultSettleDelay paces byte accumulation: after this long with no
// new byte, the buffered input is evaluated as one command.
const DefaultSettleDelay = 20 * time.Millisecond

// Rover is the vehicle-side agent: a single-threaded loop that
// accumulates command bytes from its source, lets the interpreter
// evaluate them and reports the outcome to the monitor.
type Rover struct {
	ID      string
	Source  ByteSource
	Interp  *vehicle.Interpreter
	Monitor *Monitor
	Settle  time.Duration

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewRover constructs a rover agent. monitor may be nil.
func NewRover(id string, src ByteSource, interp *vehicle.Interpreter, monitor *Monitor, settle time.Duration) *Rover {
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	return &Rover{
		ID:      id,
		Source:  src,
		Interp:  interp,
		Monitor: monitor,
		Settle:  settle,
		stop:    make(chan struct{}),
	}
}

// Start begins the read/evaluate loop in a background goroutine.
func (r *Rover) Start() error {
	r.wg.Add(1)
	go r.loop()
	return nil
}

// loop reads bytes until they pause for a settle delay, then evaluates
// the accumulated buffer. Decoding never overlaps with actuation; both
// happen on this one goroutine.
func (r *Rover) loop() {
	defer r.wg.Done()
	for {
		select {
		case <-r.stop:
			return
		default:
		}

		b, err := r.Source.ReadByte(r.Settle)
		if err == nil {
			r.Interp.Feed(b)
			continue
		}
		if !errors.Is(err, device.ErrReadTimeout) {
			// transient source error: wait and retry
			time.Sleep(100 * time.Millisecond)
			continue
		}
		if !r.Interp.Pending() {
			continue
		}

		cmd := r.Interp.Evaluate()
		if cmd != wire.CmdInvalid {
			util.Info("rover %s: %s (speed=%d)", r.ID, cmd, r.Interp.Speed())
		}
		if r.Monitor != nil {
			left, right := r.Interp.Drive()
			r.Monitor.Broadcast(StatusEvent{
				Rover:   r.ID,
				Command: cmd.String(),
				Speed:   r.Interp.Speed(),
				Left:    left,
				Right:   right,
			})
		}
	}
}

// Stop stops the rover loop. Idempotent.
func (r *Rover) Stop() {
	select {
	case <-r.stop:
		// already closed
	default:
		close(r.stop)
	}
	r.wg.Wait()
}
