package transport

import (
	"fmt"
	"sync"

	"tinygo.org/x/bluetooth"

	"RoverLink/internal/util"
)

// BLE implements Transport on top of the platform Bluetooth Low Energy
// stack. Peripheral IDs are the addresses reported during scanning.
type BLE struct {
	adapter *bluetooth.Adapter

	mu      sync.Mutex
	enabled bool
	// addresses seen while scanning, keyed by Observation.ID, kept so
	// Connect can resolve an ID back to a stack address
	seen map[string]bluetooth.Address
}

// NewBLE returns a transport over the default adapter.
func NewBLE() *BLE {
	return &BLE{
		adapter: bluetooth.DefaultAdapter,
		seen:    make(map[string]bluetooth.Address),
	}
}

// Ready enables the adapter on first use. A failure to enable is a
// capability problem, not a fatal one; the caller may retry later.
func (b *BLE) Ready() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.enabled {
		return nil
	}
	if err := b.adapter.Enable(); err != nil {
		return fmt.Errorf("%w: %v", ErrCapabilityUnavailable, err)
	}
	b.enabled = true
	return nil
}

// Scan starts BLE discovery. The stack delivers results on its own
// goroutine; stop ends the scan and is safe to call more than once.
func (b *BLE) Scan(onFound func(Observation)) (func(), error) {
	if err := b.Ready(); err != nil {
		return nil, err
	}

	go func() {
		err := b.adapter.Scan(func(_ *bluetooth.Adapter, res bluetooth.ScanResult) {
			id := res.Address.String()
			b.mu.Lock()
			b.seen[id] = res.Address
			b.mu.Unlock()
			onFound(Observation{ID: id, Name: res.LocalName()})
		})
		if err != nil {
			util.Error("ble scan: %v", err)
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			if err := b.adapter.StopScan(); err != nil {
				util.Error("ble stop scan: %v", err)
			}
		})
	}
	return stop, nil
}

// Connect dials a peripheral observed during a previous scan.
func (b *BLE) Connect(id string) (Conn, error) {
	b.mu.Lock()
	addr, ok := b.seen[id]
	b.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown peripheral %q", id)
	}

	dev, err := b.adapter.Connect(addr, bluetooth.ConnectionParams{})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", id, err)
	}
	return &bleConn{dev: dev}, nil
}

// bleConn is one live BLE connection. Characteristics are cached after
// the first enumeration so writes do not rediscover.
type bleConn struct {
	dev bluetooth.Device

	mu    sync.Mutex
	chars map[WriteTarget]bluetooth.DeviceCharacteristic
}

// WritableEndpoints enumerates every characteristic of every service,
// in the peripheral's own order. The stack does not surface property
// flags portably, so a non-writable characteristic is only found out
// at write time, where it surfaces as a write error.
func (c *bleConn) WritableEndpoints() ([]WriteTarget, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	services, err := c.dev.DiscoverServices(nil)
	if err != nil {
		return nil, fmt.Errorf("discover services: %w", err)
	}

	c.chars = make(map[WriteTarget]bluetooth.DeviceCharacteristic)
	var targets []WriteTarget
	for _, svc := range services {
		chars, err := svc.DiscoverCharacteristics(nil)
		if err != nil {
			return nil, fmt.Errorf("discover characteristics: %w", err)
		}
		for _, ch := range chars {
			t := WriteTarget{Service: svc.UUID().String(), Endpoint: ch.UUID().String()}
			c.chars[t] = ch
			targets = append(targets, t)
		}
	}
	return targets, nil
}

// Write sends p to a characteristic without acknowledgement.
func (c *bleConn) Write(t WriteTarget, p []byte) error {
	c.mu.Lock()
	ch, ok := c.chars[t]
	c.mu.Unlock()
	if !ok {
		return fmt.Errorf("no such endpoint %s/%s", t.Service, t.Endpoint)
	}
	if _, err := ch.WriteWithoutResponse(p); err != nil {
		return fmt.Errorf("ble write: %w", err)
	}
	return nil
}

// Disconnect tears the connection down.
func (c *bleConn) Disconnect() error {
	return c.dev.Disconnect()
}
