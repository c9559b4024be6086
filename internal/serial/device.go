package serial

// Device is a device that can be attached to the Controller.
// One byte moves in each direction per transfer.
type Device interface {
	Receive(uint8)
	Send() uint8
}

// nullDevice is an implementation of Device that acts as if
// no link cable is plugged in: the incoming line reads high.
type nullDevice struct{}

// Receive does nothing.
func (n nullDevice) Receive(uint8) {}

// Send always returns 0xFF.
func (n nullDevice) Send() uint8 { return 0xFF }

// Loopback is a Device that echoes back the last byte it
// received, useful for link-cable tests.
type Loopback struct {
	last uint8
}

// Receive stores the received byte.
func (l *Loopback) Receive(v uint8) { l.last = v }

// Send returns the last received byte.
func (l *Loopback) Send() uint8 { return l.last }
