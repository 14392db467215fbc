package session

import "errors"

// Session error taxonomy. All of these are local and non-fatal: none
// of them crash or wedge the state machine.
var (
	// ErrConnectionFailed means a connect attempt did not establish;
	// the session returns to idle.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrNotTransmittable means a send was attempted without a
	// writable endpoint. The command is dropped, the session is
	// unaffected.
	ErrNotTransmittable = errors.New("session not transmit-capable")

	// ErrTransmit means the transport write failed. The command is
	// dropped, the session stays ready; retrying is the caller's call.
	ErrTransmit = errors.New("transmit failed")

	// ErrBusy means a scan or connect was requested while the session
	// is connecting or connected. Disconnect first.
	ErrBusy = errors.New("session busy")

	// ErrBadDelta means a speed adjustment was not a multiple of the
	// 10-unit step.
	ErrBadDelta = errors.New("speed delta must be a multiple of 10")
)
