package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"RoverLink/internal/wire"
)

// actionsByName resolves console words to base actions.
var actionsByName = map[string]wire.Action{
	"forward":    wire.Forward,
	"backward":   wire.Backward,
	"left":       wire.Left,
	"right":      wire.Right,
	"stop":       wire.Stop,
	"speed_up":   wire.SpeedUp,
	"speed_down": wire.SpeedDown,
}

// RunConsole drives a controller from a line-oriented intent stream
// (normally stdin). It stands in for the UI layer: every press maps to
// a direction send, every release to a stop. It returns when the
// stream ends or "quit" is read.
func RunConsole(ctrl *Controller, in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "commands: scan | devices | connect <id> | f b l r s | + - | speed | edit | set <action> <symbol> | commit | discard | status | disconnect | quit")

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "scan":
			err = ctrl.Session.StartScan()
		case "devices":
			for _, o := range ctrl.Session.Devices() {
				fmt.Fprintf(out, "  %s  %s\n", o.ID, o.Name)
			}
		case "connect":
			if len(fields) < 2 {
				err = fmt.Errorf("usage: connect <id>")
				break
			}
			err = ctrl.Session.Connect(fields[1])
		case "f":
			err = ctrl.Session.Send(wire.Forward)
		case "b":
			err = ctrl.Session.Send(wire.Backward)
		case "l":
			err = ctrl.Session.Send(wire.Left)
		case "r":
			err = ctrl.Session.Send(wire.Right)
		case "s":
			err = ctrl.Session.Send(wire.Stop)
		case "+":
			_, err = ctrl.Session.AdjustSpeed(10)
		case "-":
			_, err = ctrl.Session.AdjustSpeed(-10)
		case "speed":
			fmt.Fprintf(out, "  speed=%d\n", ctrl.Session.Speed())
		case "edit":
			ctrl.Mapping.BeginEdit()
		case "set":
			if len(fields) < 3 {
				err = fmt.Errorf("usage: set <action> <symbol>")
				break
			}
			a, ok := actionsByName[fields[1]]
			if !ok {
				err = fmt.Errorf("unknown action %q", fields[1])
				break
			}
			err = ctrl.Mapping.SetSymbol(a, fields[2])
		case "commit":
			ctrl.Mapping.Commit()
		case "discard":
			ctrl.Mapping.Discard()
		case "status":
			fmt.Fprintf(out, "  state=%s transmit=%v speed=%d\n",
				ctrl.Session.State(), ctrl.Session.TransmitCapable(), ctrl.Session.Speed())
		case "disconnect":
			ctrl.Session.Disconnect()
		case "quit":
			return
		default:
			err = fmt.Errorf("unknown command %q", fields[0])
		}

		if err != nil {
			fmt.Fprintf(out, "  error: %v\n", err)
		}
	}
}
