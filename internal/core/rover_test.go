package core

import (
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"RoverLink/internal/transport"
	"RoverLink/internal/vehicle"
	"RoverLink/internal/wire"
)

// syncMotors records drive levels under a lock; the rover loop writes
// from its own goroutine.
type syncMotors struct {
	mu    sync.Mutex
	calls [][2]float64
}

func (m *syncMotors) SetDrive(left, right float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, [2]float64{left, right})
	return nil
}

func (m *syncMotors) Close() error { return nil }

func (m *syncMotors) snapshot() [][2]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][2]float64, len(m.calls))
	copy(out, m.calls)
	return out
}

// settle gives the rover loop time to drain and evaluate the link.
func settle() { time.Sleep(60 * time.Millisecond) }

func TestLoopbackEndToEnd(t *testing.T) {
	Convey("a controller linked to a rover over loopback", t, func() {
		link := transport.NewLoopback(transport.Observation{ID: "loopback-0", Name: "rover-01"})
		motors := &syncMotors{}
		interp := vehicle.NewInterpreter(motors)
		rover := NewRover("rover-01", link, interp, nil, 5*time.Millisecond)
		So(rover.Start(), ShouldBeNil)
		defer rover.Stop()

		ctrl := NewController(link, time.Minute)
		So(ctrl.AutoConnect("rover-01", time.Second), ShouldBeNil)
		So(ctrl.Session.TransmitCapable(), ShouldBeTrue)

		// the connection handshake carried one speed reset
		settle()
		So(interp.Speed(), ShouldEqual, 50)

		Convey("direction intents reach the motors", func() {
			So(ctrl.Session.Send(wire.Forward), ShouldBeNil)
			settle()

			calls := motors.snapshot()
			So(calls, ShouldNotBeEmpty)
			So(calls[len(calls)-1], ShouldResemble, [2]float64{5 * 2.25, 5 * 2.25})
			So(interp.LastMovement(), ShouldEqual, wire.CmdForward)
		})

		Convey("speed taps keep both counters in lockstep", func() {
			So(ctrl.Session.Send(wire.Forward), ShouldBeNil)
			settle()

			// one tap per settle window: back-to-back steps can merge
			// into a single evaluation pass on the unframed link
			for i := 0; i < 2; i++ {
				steps, err := ctrl.Session.AdjustSpeed(10)
				So(err, ShouldBeNil)
				So(steps, ShouldEqual, 1)
				settle()
			}

			So(ctrl.Session.Speed(), ShouldEqual, 70)
			So(interp.Speed(), ShouldEqual, 70)
			calls := motors.snapshot()
			So(calls[len(calls)-1], ShouldResemble, [2]float64{7 * 2.25, 7 * 2.25})
		})

		Convey("a stop intent zeroes the drive", func() {
			So(ctrl.Session.Send(wire.Forward), ShouldBeNil)
			settle()
			So(ctrl.Session.Send(wire.Stop), ShouldBeNil)
			settle()

			calls := motors.snapshot()
			So(calls[len(calls)-1], ShouldResemble, [2]float64{0, 0})
			So(interp.LastMovement(), ShouldEqual, wire.CmdStop)
		})
	})
}
