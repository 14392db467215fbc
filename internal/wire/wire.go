// Package wire defines the ASCII command protocol shared by the
// controller and the rover: the seven user-facing actions, their wire
// symbols, the remappable symbol table and the byte-stream decoder.
//
// Default wire symbols (controller -> rover):
//
//	F,B,L,R  movement    S  stop
//	+,-      speed step  /  speed reset
//	FR,FL,BR,BL  diagonal movement (fixed, not remappable)
package wire

// Action is one of the seven base intents a controller can issue.
// Diagonal commands share the movement symbols and are composed on the
// wire ("F"+"R" etc.), so they are not independent actions here.
type Action int

const (
	Forward Action = iota
	Backward
	Left
	Right
	Stop
	SpeedUp
	SpeedDown
)

// actionCount is the size of the closed Action set.
const actionCount = 7

// String returns the action name for logs and diagnostics.
func (a Action) String() string {
	switch a {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Stop:
		return "stop"
	case SpeedUp:
		return "speed_up"
	case SpeedDown:
		return "speed_down"
	default:
		return "unknown"
	}
}

// Actions returns the closed set of base actions in a fixed order.
func Actions() []Action {
	return []Action{Forward, Backward, Left, Right, Stop, SpeedUp, SpeedDown}
}

// SpeedResetSymbol is sent once when a session becomes transmit-capable
// so controller and rover agree on the speed baseline. It is not part
// of the remappable action set.
const SpeedResetSymbol = "/"

// defaultSymbols is the factory assignment of wire strings per action.
var defaultSymbols = [actionCount]string{
	Forward:   "F",
	Backward:  "B",
	Left:      "L",
	Right:     "R",
	Stop:      "S",
	SpeedUp:   "+",
	SpeedDown: "-",
}
