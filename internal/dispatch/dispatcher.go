// Package dispatch runs the read-evaluate loop that turns protocol lines
// into virtual device operations.
package dispatch

import (
	"bufio"
	"context"
	"io"
	"strconv"

	"github.com/edaniels/golog"

	"gesturelink/internal/hid"
	"gesturelink/internal/protocol"
)

// maxLineBytes bounds a single protocol line.
const maxLineBytes = 1 << 20

// MouseDevice is the subset of the virtual mouse the dispatcher drives.
type MouseDevice interface {
	MoveAbs(x, y int)
	Click(button hid.Button)
	Scroll(delta int)
}

// GamepadDevice is the subset of the virtual gamepad the dispatcher drives.
type GamepadDevice interface {
	Button(btn hid.GamepadButton, pressed bool)
	Stick(x, y int)
}

// Dispatcher owns the run loop. One command is fully processed before the
// next line is read, so the devices are never touched concurrently and need
// no locking.
type Dispatcher struct {
	mouse   MouseDevice
	gamepad GamepadDevice
	logger  golog.Logger
}

// New returns a dispatcher over the given devices.
func New(mouse MouseDevice, gamepad GamepadDevice, logger golog.Logger) *Dispatcher {
	return &Dispatcher{mouse: mouse, gamepad: gamepad, logger: logger}
}

// Run consumes r line by line until QUIT, end of stream, or cancellation.
// Cancellation is cooperative: the context is checked once per iteration
// before the next blocking read, so a read already in progress completes
// first. QUIT, end of stream and cancellation all return nil.
func (d *Dispatcher) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	// Producers may batch a whole gesture's worth of commands into one line;
	// lift the token cap well past bufio's 64KB default.
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if quit := d.dispatch(scanner.Text()); quit {
			return nil
		}
	}
}

// dispatch applies one line and reports whether the loop should terminate.
// Policy: unknown keywords and unknown button names log a diagnostic;
// missing or non-numeric arguments drop the line silently; extra trailing
// tokens are ignored.
func (d *Dispatcher) dispatch(line string) bool {
	cmd, ok := protocol.Parse(line)
	if !ok {
		return false
	}
	switch cmd.Keyword {
	case protocol.CmdQuit:
		return true
	case protocol.CmdMouseMove:
		if x, y, ok := intPair(cmd.Args); ok {
			d.mouse.MoveAbs(x, y)
		}
	case protocol.CmdMouseLeft:
		d.mouse.Click(hid.ButtonLeft)
	case protocol.CmdMouseRight:
		d.mouse.Click(hid.ButtonRight)
	case protocol.CmdMouseScroll:
		if delta, ok := intArg(cmd.Args); ok {
			d.mouse.Scroll(delta)
		}
	case protocol.CmdGamepadBtn:
		d.gamepadButton(cmd.Args)
	case protocol.CmdGamepadStick:
		if x, y, ok := intPair(cmd.Args); ok {
			d.gamepad.Stick(x, y)
		}
	default:
		d.logger.Warnw("unknown command", "keyword", cmd.Keyword)
	}
	return false
}

// gamepadButton resolves GAMEPAD_BTN <name> <state>. Both arguments must be
// present and the state numeric before the name is looked up; a bad name is
// the only argument failure that logs. Any nonzero state is a press.
func (d *Dispatcher) gamepadButton(args []string) {
	if len(args) < 2 {
		return
	}
	state, err := strconv.Atoi(args[1])
	if err != nil {
		return
	}
	btn, ok := hid.LookupGamepadButton(args[0])
	if !ok {
		d.logger.Warnw("unknown gamepad button", "name", args[0])
		return
	}
	d.gamepad.Button(btn, state != 0)
}

func intPair(args []string) (int, int, bool) {
	if len(args) < 2 {
		return 0, 0, false
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, false
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, false
	}
	return x, y, true
}

func intArg(args []string) (int, bool) {
	if len(args) < 1 {
		return 0, false
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	return v, true
}
