package hid

import "gesturelink/internal/uinput"

// Mouse is a virtual absolute-position mouse bounded by a fixed screen
// rectangle. Cursor positions are not tracked between calls; every move is
// expressed in absolute screen pixels.
type Mouse struct {
	conn    Conn
	screenW int
	screenH int
}

// NewMouse wraps an already-open connection. Production code uses OpenMouse;
// this constructor serves the dry-run trace connection and tests.
func NewMouse(conn Conn, screenW, screenH int) *Mouse {
	return &Mouse{conn: conn, screenW: screenW, screenH: screenH}
}

// mouseCapabilities declares the absolute cursor rectangle (exact
// positioning, zero fuzz/flat), the relative wheel and the three buttons for
// a screen of w by h pixels.
func mouseCapabilities(w, h int) uinput.Capabilities {
	return uinput.Capabilities{
		Name:    mouseName,
		Bus:     uinput.BusVirtual,
		Vendor:  vendorID,
		Product: mouseProduct,
		Version: deviceVersion,
		Keys:    []uint16{uinput.BtnLeft, uinput.BtnRight, uinput.BtnMiddle},
		RelAxes: []uint16{uinput.RelWheel},
		AbsAxes: []uinput.AbsAxis{
			{Code: uinput.AbsX, Min: 0, Max: int32(w) - 1},
			{Code: uinput.AbsY, Min: 0, Max: int32(h) - 1},
		},
	}
}

// MoveAbs places the cursor at (x, y) in screen pixels. Out-of-range values
// saturate at the screen edges rather than being rejected.
func (m *Mouse) MoveAbs(x, y int) {
	x = clamp(x, 0, m.screenW-1)
	y = clamp(y, 0, m.screenH-1)
	m.conn.Emit(uinput.EvAbs, uinput.AbsX, int32(x))
	m.conn.Emit(uinput.EvAbs, uinput.AbsY, int32(y))
	m.conn.Sync()
}

// Click presses and releases the button as two discrete transitions, each
// behind its own synchronization barrier.
func (m *Mouse) Click(button Button) {
	m.conn.Emit(uinput.EvKey, uint16(button), 1)
	m.conn.Sync()
	m.conn.Emit(uinput.EvKey, uint16(button), 0)
	m.conn.Sync()
}

// Scroll emits one wheel step; positive delta scrolls up. The delta passes
// through unclamped.
func (m *Mouse) Scroll(delta int) {
	m.conn.Emit(uinput.EvRel, uinput.RelWheel, int32(delta))
	m.conn.Sync()
}

// Close retracts the virtual mouse. Safe to call more than once.
func (m *Mouse) Close() error {
	return m.conn.Close()
}
