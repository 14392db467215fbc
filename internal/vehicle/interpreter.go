// Package vehicle implements the rover-side command interpreter: it
// accumulates inbound wire bytes, decodes them into motion commands,
// keeps the local speed counter in lockstep with the controller and
// applies the result to the motors.
package vehicle

import (
	"RoverLink/internal/actuator"
	"RoverLink/internal/util"
	"RoverLink/internal/wire"
)

// Speed bounds, matching the controller side.
const (
	speedMin   = 0
	speedMax   = 100
	speedStep  = 10
	speedStart = 50
)

// Interpreter decodes the accumulated input buffer one pass at a time.
// It remembers the last movement command so a speed-only command can
// re-apply the current direction at the new speed without the
// controller resending it. Not safe for concurrent use; the rover loop
// is single threaded.
type Interpreter struct {
	motors actuator.Motors
	buf    []byte
	last   wire.Command
	speed  int
}

// NewInterpreter returns an interpreter at the baseline speed with the
// rover stopped.
func NewInterpreter(motors actuator.Motors) *Interpreter {
	return &Interpreter{motors: motors, last: wire.CmdStop, speed: speedStart}
}

// Speed returns the rover's current speed value.
func (it *Interpreter) Speed() int { return it.speed }

// LastMovement returns the most recent non-speed motion command.
func (it *Interpreter) LastMovement() wire.Command { return it.last }

// Drive returns the motor levels currently in effect.
func (it *Interpreter) Drive() (left, right float64) {
	return actuator.Drive(it.last, it.speed)
}

// Feed appends one inbound byte to the input buffer.
func (it *Interpreter) Feed(b byte) {
	it.buf = append(it.buf, b)
}

// Pending reports whether there is buffered input to evaluate.
func (it *Interpreter) Pending() bool { return len(it.buf) > 0 }

// Evaluate runs one interpretation pass over the buffered input and
// returns the decoded command. The buffer is cleared afterwards no
// matter what was (or wasn't) recognized. An empty buffer is a no-op
// reported as CmdInvalid.
func (it *Interpreter) Evaluate() wire.Command {
	if len(it.buf) == 0 {
		return wire.CmdInvalid
	}
	cmd := wire.Decode(string(it.buf))
	it.buf = it.buf[:0]

	switch cmd {
	case wire.CmdSpeedUp:
		it.setSpeed(it.speed + speedStep)
	case wire.CmdSpeedDown:
		it.setSpeed(it.speed - speedStep)
	case wire.CmdSpeedReset:
		it.setSpeed(speedStart)
	case wire.CmdInvalid:
		// diagnostic only, no actuation change
		util.Error("interpreter: unrecognized input")
	default:
		it.last = cmd
		it.apply()
	}
	return cmd
}

// setSpeed clamps and stores the new speed, then re-issues the last
// movement so direction and speed stay synchronized. The re-issue
// happens even when the clamp made the speed change a no-op.
func (it *Interpreter) setSpeed(v int) {
	if v > speedMax {
		v = speedMax
	}
	if v < speedMin {
		v = speedMin
	}
	it.speed = v
	it.apply()
}

// apply maps the last movement at the current speed onto the motors.
func (it *Interpreter) apply() {
	left, right := actuator.Drive(it.last, it.speed)
	if err := it.motors.SetDrive(left, right); err != nil {
		util.Error("interpreter: motor drive: %v", err)
	}
}
