package wire

import "strings"

// Command is a decoded rover motion command. It is the vehicle-side
// counterpart of Action, extended with the diagonal combinations and
// the speed-reset/invalid variants that never originate from a single
// controller action.
type Command int

const (
	CmdForward Command = iota
	CmdBackward
	CmdLeft
	CmdRight
	CmdStop
	CmdForwardRight
	CmdForwardLeft
	CmdBackRight
	CmdBackLeft
	CmdSpeedUp
	CmdSpeedDown
	CmdSpeedReset
	CmdInvalid
)

// String returns the command name for logs and the monitor feed.
func (c Command) String() string {
	switch c {
	case CmdForward:
		return "forward"
	case CmdBackward:
		return "backward"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdStop:
		return "stop"
	case CmdForwardRight:
		return "forward_right"
	case CmdForwardLeft:
		return "forward_left"
	case CmdBackRight:
		return "back_right"
	case CmdBackLeft:
		return "back_left"
	case CmdSpeedUp:
		return "speed_up"
	case CmdSpeedDown:
		return "speed_down"
	case CmdSpeedReset:
		return "speed_reset"
	default:
		return "invalid"
	}
}

// IsMovement reports whether the command drives the motors (including
// Stop). Speed commands and Invalid are not movements.
func (c Command) IsMovement() bool {
	switch c {
	case CmdForward, CmdBackward, CmdLeft, CmdRight, CmdStop,
		CmdForwardRight, CmdForwardLeft, CmdBackRight, CmdBackLeft:
		return true
	}
	return false
}

// diagonalPrefixes are matched against the start of the buffer before
// single-character dispatch, in this fixed priority order.
var diagonalPrefixes = []struct {
	prefix string
	cmd    Command
}{
	{"FR", CmdForwardRight},
	{"FL", CmdForwardLeft},
	{"BR", CmdBackRight},
	{"BL", CmdBackLeft},
}

// Decode interprets an accumulated input buffer as a single command.
// Two-character diagonal prefixes win over the single-character table,
// so "FR" decodes as forward-right, never forward. Anything the table
// does not know decodes as CmdInvalid. Decode is a pure function of
// the buffer content.
func Decode(buf string) Command {
	if buf == "" {
		return CmdInvalid
	}
	for _, d := range diagonalPrefixes {
		if strings.HasPrefix(buf, d.prefix) {
			return d.cmd
		}
	}
	switch buf[0] {
	case 'F':
		return CmdForward
	case 'B':
		return CmdBackward
	case 'L':
		return CmdLeft
	case 'R':
		return CmdRight
	case 'S':
		return CmdStop
	case '+':
		return CmdSpeedUp
	case '-':
		return CmdSpeedDown
	case '/':
		return CmdSpeedReset
	default:
		return CmdInvalid
	}
}
