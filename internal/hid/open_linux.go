//go:build linux

package hid

import (
	"github.com/edaniels/golog"

	"gesturelink/internal/uinput"
)

// OpenMouse publishes the virtual absolute mouse bounded to a
// screenW by screenH pixel rectangle on the given uinput node.
func OpenMouse(path string, screenW, screenH int, logger golog.Logger) (*Mouse, error) {
	dev, err := uinput.Open(path, mouseCapabilities(screenW, screenH), logger)
	if err != nil {
		return nil, err
	}
	return NewMouse(dev, screenW, screenH), nil
}

// OpenGamepad publishes the virtual gamepad on the given uinput node.
func OpenGamepad(path string, logger golog.Logger) (*Gamepad, error) {
	dev, err := uinput.Open(path, gamepadCapabilities(), logger)
	if err != nil {
		return nil, err
	}
	return NewGamepad(dev), nil
}
