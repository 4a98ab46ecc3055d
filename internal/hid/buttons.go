package hid

import "gesturelink/internal/uinput"

// Button identifies a mouse button by its evdev code.
type Button uint16

const (
	ButtonLeft   = Button(uinput.BtnLeft)
	ButtonRight  = Button(uinput.BtnRight)
	ButtonMiddle = Button(uinput.BtnMiddle)
)

// GamepadButton identifies one of the eight fixed gamepad buttons by its
// evdev code (Xbox-style layout).
type GamepadButton uint16

const (
	GamepadA      = GamepadButton(uinput.BtnSouth)
	GamepadB      = GamepadButton(uinput.BtnEast)
	GamepadX      = GamepadButton(uinput.BtnNorth)
	GamepadY      = GamepadButton(uinput.BtnWest)
	GamepadLB     = GamepadButton(uinput.BtnTL)
	GamepadRB     = GamepadButton(uinput.BtnTR)
	GamepadSelect = GamepadButton(uinput.BtnSelect)
	GamepadStart  = GamepadButton(uinput.BtnStart)
)

// gamepadButtons maps protocol button names to codes. Names are validated at
// dispatch time rather than trusted.
var gamepadButtons = map[string]GamepadButton{
	"A":      GamepadA,
	"B":      GamepadB,
	"X":      GamepadX,
	"Y":      GamepadY,
	"LB":     GamepadLB,
	"RB":     GamepadRB,
	"START":  GamepadStart,
	"SELECT": GamepadSelect,
}

// LookupGamepadButton resolves a protocol button name. Matching is
// case-sensitive.
func LookupGamepadButton(name string) (GamepadButton, bool) {
	btn, ok := gamepadButtons[name]
	return btn, ok
}
