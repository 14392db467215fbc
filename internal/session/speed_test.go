package session

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"RoverLink/internal/wire"
)

// collect returns an emit func appending every action to out.
func collect(out *[]wire.Action) func(wire.Action) error {
	return func(a wire.Action) error {
		*out = append(*out, a)
		return nil
	}
}

func TestSpeedAdjust(t *testing.T) {
	Convey("a speed controller starting at the baseline", t, func() {
		s := NewSpeed()
		So(s.Value(), ShouldEqual, 50)

		Convey("one tap up emits one step and lands on 60", func() {
			var sent []wire.Action
			steps, err := s.Adjust(10, collect(&sent))
			So(err, ShouldBeNil)
			So(steps, ShouldEqual, 1)
			So(sent, ShouldResemble, []wire.Action{wire.SpeedUp})
			So(s.Value(), ShouldEqual, 60)
		})

		Convey("a +20 jump emits two steps and lands on 70", func() {
			var sent []wire.Action
			steps, err := s.Adjust(20, collect(&sent))
			So(err, ShouldBeNil)
			So(steps, ShouldEqual, 2)
			So(sent, ShouldResemble, []wire.Action{wire.SpeedUp, wire.SpeedUp})
			So(s.Value(), ShouldEqual, 70)
		})

		Convey("deltas clamp at the top", func() {
			var sent []wire.Action
			steps, err := s.Adjust(100, collect(&sent))
			So(err, ShouldBeNil)
			So(steps, ShouldEqual, 5)
			So(s.Value(), ShouldEqual, 100)

			Convey("and a further step up is a no-op with no wire traffic", func() {
				sent = nil
				steps, err := s.Adjust(10, collect(&sent))
				So(err, ShouldBeNil)
				So(steps, ShouldEqual, 0)
				So(sent, ShouldBeEmpty)
				So(s.Value(), ShouldEqual, 100)
			})
		})

		Convey("deltas clamp at the bottom", func() {
			var sent []wire.Action
			steps, err := s.Adjust(-80, collect(&sent))
			So(err, ShouldBeNil)
			So(steps, ShouldEqual, 5)
			So(sent, ShouldHaveLength, 5)
			So(sent[0], ShouldEqual, wire.SpeedDown)
			So(s.Value(), ShouldEqual, 0)
		})

		Convey("the value is always a multiple of 10 within range", func() {
			deltas := []int{10, 10, -30, 200, -200, 50}
			for _, d := range deltas {
				_, err := s.Adjust(d, func(wire.Action) error { return nil })
				So(err, ShouldBeNil)
				So(s.Value(), ShouldBeBetweenOrEqual, 0, 100)
				So(s.Value()%10, ShouldEqual, 0)
			}
		})

		Convey("a delta off the 10-unit grid is rejected", func() {
			_, err := s.Adjust(5, func(wire.Action) error { return nil })
			So(err, ShouldEqual, ErrBadDelta)
			So(s.Value(), ShouldEqual, 50)
		})

		Convey("reset returns to the baseline", func() {
			_, _ = s.Adjust(30, func(wire.Action) error { return nil })
			s.Reset()
			So(s.Value(), ShouldEqual, 50)
		})
	})
}
