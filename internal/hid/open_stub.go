//go:build !linux

package hid

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
)

// Virtual device creation requires the Linux uinput subsystem. The dry-run
// trace connection still works on other platforms.

func OpenMouse(path string, screenW, screenH int, logger golog.Logger) (*Mouse, error) {
	return nil, errors.New("virtual mouse requires linux uinput")
}

func OpenGamepad(path string, logger golog.Logger) (*Gamepad, error) {
	return nil, errors.New("virtual gamepad requires linux uinput")
}
