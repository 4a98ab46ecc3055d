//go:build linux

package uinput

import (
	"os"
	"unsafe"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Fallback node used on distros that expose uinput under /dev/input.
const fallbackPath = "/dev/input/uinput"

// ioctl requests from linux/uinput.h.
const (
	uiSetEvBit   = 0x40045564 // _IOW('U', 100, int)
	uiSetKeyBit  = 0x40045565 // _IOW('U', 101, int)
	uiSetRelBit  = 0x40045566 // _IOW('U', 102, int)
	uiSetAbsBit  = 0x40045567 // _IOW('U', 103, int)
	uiDevCreate  = 0x5501     // _IO('U', 1)
	uiDevDestroy = 0x5502     // _IO('U', 2)
)

const (
	maxNameSize = 80
	absCount    = 64
)

type inputID struct {
	BusType uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// userDev mirrors struct uinput_user_dev.
type userDev struct {
	Name         [maxNameSize]byte
	ID           inputID
	FFEffectsMax uint32
	AbsMax       [absCount]int32
	AbsMin       [absCount]int32
	AbsFuzz      [absCount]int32
	AbsFlat      [absCount]int32
}

// inputEvent mirrors struct input_event on 64-bit kernels.
type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// Device owns a single uinput handle. A Device is either fully registered
// and published (open) or invalid (never opened, or closed); no partially
// configured state is observable. Emitting on an invalid device is a no-op.
type Device struct {
	file   *os.File
	name   string
	logger golog.Logger
}

// Open acquires a uinput handle, registers the declared capabilities and
// publishes the device to the kernel. Any failure releases the handle and
// returns an error; there is no retry.
func Open(path string, caps Capabilities, logger golog.Logger) (*Device, error) {
	file, err := openNode(path)
	if err != nil {
		return nil, err
	}
	d := &Device{file: file, name: caps.Name, logger: logger}
	if err := d.register(caps); err != nil {
		_ = file.Close()
		d.file = nil
		return nil, errors.Wrapf(err, "register %q", caps.Name)
	}
	logger.Infow("virtual device created", "name", caps.Name)
	return d, nil
}

func openNode(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err == nil {
		return file, nil
	}
	if file, ferr := os.OpenFile(fallbackPath, os.O_WRONLY|unix.O_NONBLOCK, 0); ferr == nil {
		return file, nil
	}
	return nil, errors.Wrapf(err,
		"open %s (ensure the uinput module is loaded and that you have write permission)", path)
}

// register declares event type bits first, then the individual code bits,
// then writes the device record and creates the device.
func (d *Device) register(caps Capabilities) error {
	fd := int(d.file.Fd())

	if len(caps.Keys) > 0 {
		if err := unix.IoctlSetInt(fd, uiSetEvBit, int(EvKey)); err != nil {
			return errors.Wrap(err, "UI_SET_EVBIT EV_KEY")
		}
	}
	if len(caps.AbsAxes) > 0 {
		if err := unix.IoctlSetInt(fd, uiSetEvBit, int(EvAbs)); err != nil {
			return errors.Wrap(err, "UI_SET_EVBIT EV_ABS")
		}
	}
	if len(caps.RelAxes) > 0 {
		if err := unix.IoctlSetInt(fd, uiSetEvBit, int(EvRel)); err != nil {
			return errors.Wrap(err, "UI_SET_EVBIT EV_REL")
		}
	}
	for _, code := range caps.Keys {
		if err := unix.IoctlSetInt(fd, uiSetKeyBit, int(code)); err != nil {
			return errors.Wrapf(err, "UI_SET_KEYBIT 0x%x", code)
		}
	}
	for _, axis := range caps.AbsAxes {
		if err := unix.IoctlSetInt(fd, uiSetAbsBit, int(axis.Code)); err != nil {
			return errors.Wrapf(err, "UI_SET_ABSBIT 0x%x", axis.Code)
		}
	}
	for _, code := range caps.RelAxes {
		if err := unix.IoctlSetInt(fd, uiSetRelBit, int(code)); err != nil {
			return errors.Wrapf(err, "UI_SET_RELBIT 0x%x", code)
		}
	}

	var dev userDev
	copy(dev.Name[:], caps.Name)
	dev.ID = inputID{
		BusType: caps.Bus,
		Vendor:  caps.Vendor,
		Product: caps.Product,
		Version: caps.Version,
	}
	for _, axis := range caps.AbsAxes {
		dev.AbsMin[axis.Code] = axis.Min
		dev.AbsMax[axis.Code] = axis.Max
		dev.AbsFuzz[axis.Code] = axis.Fuzz
		dev.AbsFlat[axis.Code] = axis.Flat
	}
	buf := (*[unsafe.Sizeof(dev)]byte)(unsafe.Pointer(&dev))[:]
	if _, err := d.file.Write(buf); err != nil {
		return errors.Wrap(err, "write uinput_user_dev")
	}

	if err := unix.IoctlSetInt(fd, uiDevCreate, 0); err != nil {
		return errors.Wrap(err, "UI_DEV_CREATE")
	}
	return nil
}

// Emit forwards one event record to the kernel. Emitting on an unopened or
// closed device does nothing. A rejected write is logged and the device is
// left open; the event is not retried.
func (d *Device) Emit(typ, code uint16, value int32) {
	if d == nil || d.file == nil {
		return
	}
	ev := inputEvent{Type: typ, Code: code, Value: value}
	buf := (*[unsafe.Sizeof(ev)]byte)(unsafe.Pointer(&ev))[:]
	if _, err := d.file.Write(buf); err != nil {
		d.logger.Errorw("emit failed",
			"device", d.name, "type", typ, "code", code, "value", value, "error", err)
	}
}

// Sync emits a synchronization barrier so consumers apply the preceding
// value changes as one coherent state.
func (d *Device) Sync() {
	d.Emit(EvSyn, SynReport, 0)
}

// Close retracts the device from the kernel and releases the handle.
// Closing a never-opened or already-closed device is a no-op.
func (d *Device) Close() error {
	if d == nil || d.file == nil {
		return nil
	}
	fd := int(d.file.Fd())
	destroyErr := unix.IoctlSetInt(fd, uiDevDestroy, 0)
	closeErr := d.file.Close()
	d.file = nil
	d.logger.Infow("virtual device destroyed", "name", d.name)
	if destroyErr != nil {
		return errors.Wrapf(destroyErr, "UI_DEV_DESTROY %q", d.name)
	}
	return closeErr
}
