// Package uinput creates and drives virtual input devices through the Linux
// uinput subsystem. Devices published here are indistinguishable from real
// hardware to any consumer of kernel input events.
package uinput

// Event types and codes from linux/input-event-codes.h. The numeric values
// bound to each code are a compatibility contract with existing consumers of
// the emitted events.
const (
	EvSyn uint16 = 0x00
	EvKey uint16 = 0x01
	EvRel uint16 = 0x02
	EvAbs uint16 = 0x03

	SynReport uint16 = 0x00

	AbsX uint16 = 0x00
	AbsY uint16 = 0x01

	RelWheel uint16 = 0x08

	BtnLeft   uint16 = 0x110
	BtnRight  uint16 = 0x111
	BtnMiddle uint16 = 0x112

	BtnSouth  uint16 = 0x130 // gamepad A
	BtnEast   uint16 = 0x131 // gamepad B
	BtnNorth  uint16 = 0x133 // gamepad X
	BtnWest   uint16 = 0x134 // gamepad Y
	BtnTL     uint16 = 0x136 // left bumper
	BtnTR     uint16 = 0x137 // right bumper
	BtnSelect uint16 = 0x138
	BtnStart  uint16 = 0x139

	BusVirtual uint16 = 0x06
)

// DefaultPath is the uinput node used when none is configured.
const DefaultPath = "/dev/uinput"

// AbsAxis declares one absolute axis with its reported range and the
// fuzz/flat filtering consumers apply before reacting to movement.
type AbsAxis struct {
	Code uint16
	Min  int32
	Max  int32
	Fuzz int32
	Flat int32
}

// Capabilities declares everything a virtual device will emit, along with
// the identity it reports to the kernel. Registration happens before the
// device is published and cannot be changed afterwards.
type Capabilities struct {
	Name    string
	Bus     uint16
	Vendor  uint16
	Product uint16
	Version uint16
	Keys    []uint16
	RelAxes []uint16
	AbsAxes []AbsAxis
}
