package actuator

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"RoverLink/internal/wire"
)

func TestDrive(t *testing.T) {
	Convey("the differential drive table at speed 70", t, func() {
		// base unit 7, full 15.75, half 7.875
		full := 7 * 2.25
		half := 7 * 1.125

		cases := []struct {
			cmd         wire.Command
			left, right float64
		}{
			{wire.CmdForward, full, full},
			{wire.CmdBackward, -full, -full},
			{wire.CmdLeft, -half, half},
			{wire.CmdRight, half, -half},
			{wire.CmdForwardRight, full, half},
			{wire.CmdForwardLeft, half, full},
			{wire.CmdBackRight, -full, -half},
			{wire.CmdBackLeft, -half, -full},
			{wire.CmdStop, 0, 0},
		}
		for _, c := range cases {
			left, right := Drive(c.cmd, 70)
			So(left, ShouldAlmostEqual, c.left, 1e-9)
			So(right, ShouldAlmostEqual, c.right, 1e-9)
		}
	})

	Convey("speed zero stops both sides whatever the command", t, func() {
		for _, cmd := range []wire.Command{wire.CmdForward, wire.CmdLeft, wire.CmdBackRight} {
			left, right := Drive(cmd, 0)
			So(left, ShouldEqual, 0)
			So(right, ShouldEqual, 0)
		}
	})

	Convey("non-movement commands map to a full stop", t, func() {
		for _, cmd := range []wire.Command{wire.CmdSpeedUp, wire.CmdSpeedReset, wire.CmdInvalid} {
			left, right := Drive(cmd, 70)
			So(left, ShouldEqual, 0)
			So(right, ShouldEqual, 0)
		}
	})
}
