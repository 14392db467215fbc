package vehicle

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"RoverLink/internal/wire"
)

// recordMotors remembers every drive level pair it was given.
type recordMotors struct {
	calls [][2]float64
}

func (m *recordMotors) SetDrive(left, right float64) error {
	m.calls = append(m.calls, [2]float64{left, right})
	return nil
}

func (m *recordMotors) Close() error { return nil }

func (m *recordMotors) last() [2]float64 {
	return m.calls[len(m.calls)-1]
}

// feed pushes a whole wire string into the buffer.
func feed(it *Interpreter, s string) {
	for i := 0; i < len(s); i++ {
		it.Feed(s[i])
	}
}

func TestInterpreter(t *testing.T) {
	Convey("a freshly started interpreter", t, func() {
		motors := &recordMotors{}
		it := NewInterpreter(motors)

		So(it.Speed(), ShouldEqual, 50)
		So(it.LastMovement(), ShouldEqual, wire.CmdStop)

		Convey("a diagonal burst then a stop", func() {
			feed(it, "FR")
			So(it.Evaluate(), ShouldEqual, wire.CmdForwardRight)
			So(it.LastMovement(), ShouldEqual, wire.CmdForwardRight)
			// full on the driven side, half on the turning side
			So(it.Pending(), ShouldBeFalse)
			So(motors.last(), ShouldResemble, [2]float64{5 * 2.25, 5 * 1.125})

			feed(it, "S")
			So(it.Evaluate(), ShouldEqual, wire.CmdStop)
			So(it.LastMovement(), ShouldEqual, wire.CmdStop)
			So(motors.last(), ShouldResemble, [2]float64{0, 0})
		})

		Convey("speed steps re-issue the current movement at the new speed", func() {
			feed(it, "F")
			it.Evaluate()
			So(motors.last(), ShouldResemble, [2]float64{5 * 2.25, 5 * 2.25})

			feed(it, "+")
			So(it.Evaluate(), ShouldEqual, wire.CmdSpeedUp)
			So(it.Speed(), ShouldEqual, 60)
			So(it.LastMovement(), ShouldEqual, wire.CmdForward)
			So(motors.last(), ShouldResemble, [2]float64{6 * 2.25, 6 * 2.25})
		})

		Convey("speed up at the ceiling is a value no-op but still re-issues", func() {
			for i := 0; i < 5; i++ {
				feed(it, "+")
				it.Evaluate()
			}
			So(it.Speed(), ShouldEqual, 100)

			applied := len(motors.calls)
			feed(it, "+")
			So(it.Evaluate(), ShouldEqual, wire.CmdSpeedUp)
			So(it.Speed(), ShouldEqual, 100)
			So(motors.calls, ShouldHaveLength, applied+1)
		})

		Convey("speed reset returns to 50 and re-issues the last movement", func() {
			feed(it, "B")
			it.Evaluate()
			feed(it, "-")
			it.Evaluate()
			So(it.Speed(), ShouldEqual, 40)

			feed(it, "/")
			So(it.Evaluate(), ShouldEqual, wire.CmdSpeedReset)
			So(it.Speed(), ShouldEqual, 50)
			So(it.LastMovement(), ShouldEqual, wire.CmdBackward)
			So(motors.last(), ShouldResemble, [2]float64{-5 * 2.25, -5 * 2.25})
		})

		Convey("an unknown byte changes nothing but the buffer", func() {
			feed(it, "F")
			it.Evaluate()
			applied := len(motors.calls)

			feed(it, "X")
			So(it.Evaluate(), ShouldEqual, wire.CmdInvalid)
			So(it.LastMovement(), ShouldEqual, wire.CmdForward)
			So(it.Speed(), ShouldEqual, 50)
			So(motors.calls, ShouldHaveLength, applied)
			So(it.Pending(), ShouldBeFalse)
		})

		Convey("the buffer is cleared after every pass", func() {
			feed(it, "F")
			it.Evaluate()
			feed(it, "R")
			// a lone R is a pivot right, not the tail of "FR"
			So(it.Evaluate(), ShouldEqual, wire.CmdRight)
		})

		Convey("evaluating an empty buffer is a no-op", func() {
			So(it.Evaluate(), ShouldEqual, wire.CmdInvalid)
			So(motors.calls, ShouldBeEmpty)
		})
	})
}
