package hid

import (
	"testing"

	"go.viam.com/test"

	"gesturelink/internal/uinput"
)

func TestGamepadButtonPressAndRelease(t *testing.T) {
	conn := &fakeConn{}
	g := NewGamepad(conn)

	g.Button(GamepadA, true)
	test.That(t, conn.events, test.ShouldResemble, []recordedEvent{
		{uinput.EvKey, uinput.BtnSouth, 1},
		syncEvent(),
	})

	conn.events = nil
	g.Button(GamepadA, false)
	test.That(t, conn.events, test.ShouldResemble, []recordedEvent{
		{uinput.EvKey, uinput.BtnSouth, 0},
		syncEvent(),
	})
}

func TestGamepadStickClamps(t *testing.T) {
	for _, tc := range []struct {
		name         string
		x, y         int
		wantX, wantY int32
	}{
		{"center", 0, 0, 0, 0},
		{"extremes", 32767, -32767, 32767, -32767},
		{"overrange", -99999, 40000, -32767, 32767},
	} {
		t.Run(tc.name, func(t *testing.T) {
			conn := &fakeConn{}
			g := NewGamepad(conn)
			g.Stick(tc.x, tc.y)
			test.That(t, conn.events, test.ShouldResemble, []recordedEvent{
				{uinput.EvAbs, uinput.AbsX, tc.wantX},
				{uinput.EvAbs, uinput.AbsY, tc.wantY},
				syncEvent(),
			})
		})
	}
}

func TestGamepadCapabilities(t *testing.T) {
	caps := gamepadCapabilities()
	test.That(t, caps.Name, test.ShouldEqual, "GestureLink Virtual Gamepad")
	test.That(t, caps.Vendor, test.ShouldEqual, 0x1357)
	test.That(t, caps.Product, test.ShouldEqual, 0x0002)
	// Button registration order is part of the compatibility surface.
	test.That(t, caps.Keys, test.ShouldResemble, []uint16{
		0x130, 0x131, 0x133, 0x134, 0x136, 0x137, 0x138, 0x139,
	})
	test.That(t, caps.AbsAxes, test.ShouldResemble, []uinput.AbsAxis{
		{Code: uinput.AbsX, Min: -32767, Max: 32767, Fuzz: 16, Flat: 128},
		{Code: uinput.AbsY, Min: -32767, Max: 32767, Fuzz: 16, Flat: 128},
	})
}

func TestLookupGamepadButton(t *testing.T) {
	for name, want := range map[string]GamepadButton{
		"A": GamepadA, "B": GamepadB, "X": GamepadX, "Y": GamepadY,
		"LB": GamepadLB, "RB": GamepadRB, "START": GamepadStart, "SELECT": GamepadSelect,
	} {
		btn, ok := LookupGamepadButton(name)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, btn, test.ShouldEqual, want)
	}

	_, ok := LookupGamepadButton("UNKNOWN")
	test.That(t, ok, test.ShouldBeFalse)
	// Case-sensitive.
	_, ok = LookupGamepadButton("a")
	test.That(t, ok, test.ShouldBeFalse)
}
