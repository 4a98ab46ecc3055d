// Package hid implements the virtual absolute mouse and gamepad published
// through the kernel's uinput subsystem.
package hid

// Conn is the event transport a device drives. It is satisfied by
// *uinput.Device, by the dry-run trace connection, and by test fakes.
type Conn interface {
	// Emit forwards one event record; invalid transports drop it silently.
	Emit(typ, code uint16, value int32)
	// Sync emits a synchronization barrier after one or more value changes.
	Sync()
	// Close retracts the device. Safe to call more than once.
	Close() error
}

// Identity reported to the kernel. Existing consumers of the emitted events
// match on these values.
const (
	vendorID       = 0x1357
	mouseProduct   = 0x0001
	gamepadProduct = 0x0002
	deviceVersion  = 1

	mouseName   = "GestureLink Virtual Mouse"
	gamepadName = "GestureLink Virtual Gamepad"
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
