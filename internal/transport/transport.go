// Package transport abstracts the short-range wireless link the
// controller drives the rover through: scanning for peripherals,
// connecting, enumerating writable endpoints and writing command
// bytes. Adapters exist for BLE, serial UART bridges and an in-memory
// loopback used for bench runs and tests.
package transport

import "errors"

// Capability errors reported by Ready before any scan is attempted.
var (
	// ErrCapabilityUnavailable means the radio or a service it needs is
	// disabled. A scan request is refused with no state change.
	ErrCapabilityUnavailable = errors.New("transport capability unavailable")
	// ErrPermissionDenied means platform authorization is missing.
	ErrPermissionDenied = errors.New("transport permission denied")
)

// Observation is one raw scan result: an opaque peripheral identity
// and its advertised name, which may be empty.
type Observation struct {
	ID   string
	Name string
}

// WriteTarget identifies where command bytes are written on a
// connected peripheral: a (service, endpoint) pair.
type WriteTarget struct {
	Service  string
	Endpoint string
}

// Conn is one live connection to a peripheral.
type Conn interface {
	// WritableEndpoints lists (service, endpoint) pairs that accept
	// byte writes, in the peripheral's own enumeration order. An empty
	// list is not an error; the connection is simply not usable for
	// transmission.
	WritableEndpoints() ([]WriteTarget, error)

	// Write sends p to the given target, best effort. No retry, no
	// acknowledgement.
	Write(t WriteTarget, p []byte) error

	// Disconnect tears the connection down.
	Disconnect() error
}

// Transport is the injected wireless capability. Implementations must
// be safe for use from a single session owner; they are not required
// to support concurrent scans.
type Transport interface {
	// Ready reports whether scanning may start. It returns nil,
	// ErrCapabilityUnavailable or ErrPermissionDenied.
	Ready() error

	// Scan starts discovery and invokes onFound for every raw
	// observation until the returned stop function is called. Scan
	// does not filter; that is the caller's job.
	Scan(onFound func(Observation)) (stop func(), err error)

	// Connect establishes a connection to a previously observed
	// peripheral.
	Connect(id string) (Conn, error)
}
