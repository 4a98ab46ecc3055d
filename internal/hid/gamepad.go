package hid

import "gesturelink/internal/uinput"

// StickMax is the magnitude of the stick axis range.
const StickMax = 32767

// Stick axis noise rejection. Consumers of the gamepad rely on these exact
// values, so they are part of the compatibility surface.
const (
	stickFuzz = 16
	stickFlat = 128
)

// Gamepad is a virtual Xbox-style gamepad with eight digital buttons and one
// analog stick. Stick positions are stateless; every call reports absolute
// axis values.
type Gamepad struct {
	conn Conn
}

// NewGamepad wraps an already-open connection. Production code uses
// OpenGamepad; this constructor serves the dry-run trace connection and
// tests.
func NewGamepad(conn Conn) *Gamepad {
	return &Gamepad{conn: conn}
}

func gamepadCapabilities() uinput.Capabilities {
	return uinput.Capabilities{
		Name:    gamepadName,
		Bus:     uinput.BusVirtual,
		Vendor:  vendorID,
		Product: gamepadProduct,
		Version: deviceVersion,
		Keys: []uint16{
			uint16(GamepadA),
			uint16(GamepadB),
			uint16(GamepadX),
			uint16(GamepadY),
			uint16(GamepadLB),
			uint16(GamepadRB),
			uint16(GamepadSelect),
			uint16(GamepadStart),
		},
		AbsAxes: []uinput.AbsAxis{
			{Code: uinput.AbsX, Min: -StickMax, Max: StickMax, Fuzz: stickFuzz, Flat: stickFlat},
			{Code: uinput.AbsY, Min: -StickMax, Max: StickMax, Fuzz: stickFuzz, Flat: stickFlat},
		},
	}
}

// Button presses (pressed=true) or releases one button. Unlike a mouse
// click, press and release are independent calls driven by the producer.
func (g *Gamepad) Button(btn GamepadButton, pressed bool) {
	value := int32(0)
	if pressed {
		value = 1
	}
	g.conn.Emit(uinput.EvKey, uint16(btn), value)
	g.conn.Sync()
}

// Stick positions the analog stick. Both axes clamp independently to
// plus/minus StickMax.
func (g *Gamepad) Stick(x, y int) {
	g.conn.Emit(uinput.EvAbs, uinput.AbsX, int32(clamp(x, -StickMax, StickMax)))
	g.conn.Emit(uinput.EvAbs, uinput.AbsY, int32(clamp(y, -StickMax, StickMax)))
	g.conn.Sync()
}

// Close retracts the virtual gamepad. Safe to call more than once.
func (g *Gamepad) Close() error {
	return g.conn.Close()
}
