package session

import "RoverLink/internal/wire"

// Speed bounds and quantum. The rover keeps its own counter in
// lockstep, one wire step per 10-unit increment.
const (
	speedMin   = 0
	speedMax   = 100
	speedStep  = 10
	speedStart = 50
)

// Speed owns the controller-side speed value: an integer in [0,100],
// always a multiple of 10. It converts a requested delta into the
// sequence of atomic step commands the rover needs to stay in sync.
type Speed struct {
	cur int
}

// NewSpeed returns a speed controller at the baseline value.
func NewSpeed() *Speed {
	return &Speed{cur: speedStart}
}

// Value returns the current speed.
func (s *Speed) Value() int { return s.cur }

// Reset returns the speed to the baseline, mirroring the rover's
// reaction to the speed-reset symbol.
func (s *Speed) Reset() { s.cur = speedStart }

// Adjust clamps cur+delta into range and emits one SpeedUp or
// SpeedDown per 10-unit increment via emit before storing the new
// value. delta must be a multiple of 10. The stored value never holds
// a partial update: emit failures are the emitter's problem (the
// protocol is best effort) and do not roll the value back.
func (s *Speed) Adjust(delta int, emit func(wire.Action) error) (steps int, err error) {
	if delta%speedStep != 0 {
		return 0, ErrBadDelta
	}

	next := s.cur + delta
	if next > speedMax {
		next = speedMax
	}
	if next < speedMin {
		next = speedMin
	}

	action := wire.SpeedUp
	if next < s.cur {
		action = wire.SpeedDown
	}
	steps = (next - s.cur) / speedStep
	if steps < 0 {
		steps = -steps
	}

	for i := 0; i < steps; i++ {
		if emitErr := emit(action); emitErr != nil && err == nil {
			err = emitErr
		}
	}
	s.cur = next
	return steps, err
}
