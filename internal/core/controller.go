package core

import (
	"fmt"
	"time"

	"RoverLink/internal/session"
	"RoverLink/internal/transport"
	"RoverLink/internal/wire"
)

// Controller is the controller-side agent: one session over an
// injected transport plus the remappable symbol table the session
// resolves actions through.
type Controller struct {
	Session *session.Session
	Mapping *wire.Mapping
}

// NewController constructs a controller over the given transport.
func NewController(tr transport.Transport, scanTimeout time.Duration) *Controller {
	mapping := wire.NewMapping()
	return &Controller{
		Session: session.New(tr, mapping, scanTimeout),
		Mapping: mapping,
	}
}

// AutoConnect scans until a device advertising name shows up, then
// connects to it. It gives up after wait.
func (c *Controller) AutoConnect(name string, wait time.Duration) error {
	if err := c.Session.StartScan(); err != nil {
		return err
	}
	deadline := time.Now().Add(wait)
	for time.Now().Before(deadline) {
		for _, o := range c.Session.Devices() {
			if o.Name == name {
				return c.Session.Connect(o.ID)
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	c.Session.StopScan()
	return fmt.Errorf("no device named %q found within %s", name, wait)
}
