package transport

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"RoverLink/internal/device"
)

func TestLoopback(t *testing.T) {
	Convey("a loopback link with one advertised rover", t, func() {
		lb := NewLoopback(Observation{ID: "lo-0", Name: "rover"})

		conn, err := lb.Connect("lo-0")
		So(err, ShouldBeNil)

		Convey("written bytes come out the rover side one at a time", func() {
			So(conn.Write(loopbackTarget, []byte("FR")), ShouldBeNil)

			b, err := lb.ReadByte(time.Second)
			So(err, ShouldBeNil)
			So(b, ShouldEqual, byte('F'))
			b, err = lb.ReadByte(time.Second)
			So(err, ShouldBeNil)
			So(b, ShouldEqual, byte('R'))
		})

		Convey("an empty link times out with the device sentinel", func() {
			_, err := lb.ReadByte(10 * time.Millisecond)
			So(errors.Is(err, device.ErrReadTimeout), ShouldBeTrue)
		})

		Convey("a disconnected conn refuses further writes", func() {
			So(conn.Disconnect(), ShouldBeNil)
			So(conn.Write(loopbackTarget, []byte("F")), ShouldNotBeNil)

			// nothing leaked onto the link
			_, err := lb.ReadByte(10 * time.Millisecond)
			So(errors.Is(err, device.ErrReadTimeout), ShouldBeTrue)

			Convey("while a fresh conn on the same link still works", func() {
				conn2, err := lb.Connect("lo-0")
				So(err, ShouldBeNil)
				So(conn2.Write(loopbackTarget, []byte("S")), ShouldBeNil)

				b, err := lb.ReadByte(time.Second)
				So(err, ShouldBeNil)
				So(b, ShouldEqual, byte('S'))
			})
		})

		Convey("an unknown peripheral is refused", func() {
			_, err := lb.Connect("nope")
			So(err, ShouldNotBeNil)
		})
	})
}
