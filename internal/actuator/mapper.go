// Package actuator converts decoded motion commands into the two
// independent drive levels of a differential two-motor rover and
// writes them to a motor driver.
package actuator

import "RoverLink/internal/wire"

// Drive ratios applied to the speed base unit. A driven side going
// straight runs at fullRatio, a turning side at halfRatio. The two
// fixed levels are the whole steering model; there is no proportional
// steering.
const (
	fullRatio = 2.25
	halfRatio = 1.125
)

// Drive maps (command, speed) to left/right motor drive levels. speed
// is the rover's current speed in [0,100]; the base unit is speed/10.
// Positive levels drive a side forward, negative backward, zero stops
// it. Speed-only and invalid commands map to no drive change and must
// not be passed here; they return a full stop to stay safe.
func Drive(cmd wire.Command, speed int) (left, right float64) {
	base := float64(speed) / 10.0
	full := base * fullRatio
	half := base * halfRatio

	switch cmd {
	case wire.CmdForward:
		return full, full
	case wire.CmdBackward:
		return -full, -full
	case wire.CmdLeft:
		// pivot: left side reverses, right side drives
		return -half, half
	case wire.CmdRight:
		return half, -half
	case wire.CmdForwardRight:
		return full, half
	case wire.CmdForwardLeft:
		return half, full
	case wire.CmdBackRight:
		return -full, -half
	case wire.CmdBackLeft:
		return -half, -full
	default:
		// CmdStop and anything non-movement
		return 0, 0
	}
}
