package hid

import (
	"testing"

	"go.viam.com/test"

	"gesturelink/internal/uinput"
)

func TestMouseMoveClamps(t *testing.T) {
	for _, tc := range []struct {
		name         string
		x, y         int
		wantX, wantY int32
	}{
		{"inside", 100, 200, 100, 200},
		{"origin", 0, 0, 0, 0},
		{"bottom right corner", 1919, 1079, 1919, 1079},
		{"beyond both", 5000, 5000, 1919, 1079},
		{"negative both", -10, -99, 0, 0},
		{"mixed", -1, 2000, 0, 1079},
	} {
		t.Run(tc.name, func(t *testing.T) {
			conn := &fakeConn{}
			m := NewMouse(conn, 1920, 1080)
			m.MoveAbs(tc.x, tc.y)
			test.That(t, conn.events, test.ShouldResemble, []recordedEvent{
				{uinput.EvAbs, uinput.AbsX, tc.wantX},
				{uinput.EvAbs, uinput.AbsY, tc.wantY},
				syncEvent(),
			})
		})
	}
}

func TestMouseClickEmitsPressThenRelease(t *testing.T) {
	conn := &fakeConn{}
	m := NewMouse(conn, 1920, 1080)
	m.Click(ButtonLeft)
	test.That(t, conn.events, test.ShouldResemble, []recordedEvent{
		{uinput.EvKey, uinput.BtnLeft, 1},
		syncEvent(),
		{uinput.EvKey, uinput.BtnLeft, 0},
		syncEvent(),
	})

	conn.events = nil
	m.Click(ButtonRight)
	test.That(t, conn.events[0].code, test.ShouldEqual, uinput.BtnRight)
	test.That(t, conn.events[2].code, test.ShouldEqual, uinput.BtnRight)
}

func TestMouseScrollPassesDeltaUnclamped(t *testing.T) {
	for _, delta := range []int{1, -1, 0, 100000, -100000} {
		conn := &fakeConn{}
		m := NewMouse(conn, 1920, 1080)
		m.Scroll(delta)
		test.That(t, conn.events, test.ShouldResemble, []recordedEvent{
			{uinput.EvRel, uinput.RelWheel, int32(delta)},
			syncEvent(),
		})
	}
}

func TestMouseClose(t *testing.T) {
	conn := &fakeConn{}
	m := NewMouse(conn, 1920, 1080)
	test.That(t, m.Close(), test.ShouldBeNil)
	test.That(t, conn.closed, test.ShouldEqual, 1)
}

func TestMouseCapabilities(t *testing.T) {
	caps := mouseCapabilities(1920, 1080)
	test.That(t, caps.Name, test.ShouldEqual, "GestureLink Virtual Mouse")
	test.That(t, caps.Bus, test.ShouldEqual, uinput.BusVirtual)
	test.That(t, caps.Vendor, test.ShouldEqual, 0x1357)
	test.That(t, caps.Product, test.ShouldEqual, 0x0001)
	test.That(t, caps.Keys, test.ShouldResemble,
		[]uint16{uinput.BtnLeft, uinput.BtnRight, uinput.BtnMiddle})
	test.That(t, caps.RelAxes, test.ShouldResemble, []uint16{uinput.RelWheel})
	test.That(t, caps.AbsAxes, test.ShouldResemble, []uinput.AbsAxis{
		{Code: uinput.AbsX, Min: 0, Max: 1919},
		{Code: uinput.AbsY, Min: 0, Max: 1079},
	})
}
