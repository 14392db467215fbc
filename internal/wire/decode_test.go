package wire

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDecode(t *testing.T) {
	Convey("decoding an accumulated input buffer", t, func() {

		Convey("diagonal prefixes win over single-character dispatch", func() {
			So(Decode("FR"), ShouldEqual, CmdForwardRight)
			So(Decode("FL"), ShouldEqual, CmdForwardLeft)
			So(Decode("BR"), ShouldEqual, CmdBackRight)
			So(Decode("BL"), ShouldEqual, CmdBackLeft)

			// trailing garbage after a prefix match is ignored
			So(Decode("FRS"), ShouldEqual, CmdForwardRight)
		})

		Convey("single characters dispatch by the fixed table", func() {
			So(Decode("F"), ShouldEqual, CmdForward)
			So(Decode("B"), ShouldEqual, CmdBackward)
			So(Decode("L"), ShouldEqual, CmdLeft)
			So(Decode("R"), ShouldEqual, CmdRight)
			So(Decode("S"), ShouldEqual, CmdStop)
			So(Decode("+"), ShouldEqual, CmdSpeedUp)
			So(Decode("-"), ShouldEqual, CmdSpeedDown)
			So(Decode("/"), ShouldEqual, CmdSpeedReset)
		})

		Convey("only the first character matters without a prefix match", func() {
			So(Decode("FB"), ShouldEqual, CmdForward)
			So(Decode("S+"), ShouldEqual, CmdStop)
		})

		Convey("unknown leading characters decode as invalid", func() {
			So(Decode("X"), ShouldEqual, CmdInvalid)
			So(Decode("fR"), ShouldEqual, CmdInvalid)
			So(Decode("?F"), ShouldEqual, CmdInvalid)
		})

		Convey("an empty buffer decodes as invalid", func() {
			So(Decode(""), ShouldEqual, CmdInvalid)
		})
	})
}

func TestCommandClassification(t *testing.T) {
	Convey("movement classification", t, func() {
		So(CmdForward.IsMovement(), ShouldBeTrue)
		So(CmdStop.IsMovement(), ShouldBeTrue)
		So(CmdBackLeft.IsMovement(), ShouldBeTrue)
		So(CmdSpeedUp.IsMovement(), ShouldBeFalse)
		So(CmdSpeedReset.IsMovement(), ShouldBeFalse)
		So(CmdInvalid.IsMovement(), ShouldBeFalse)
	})
}
