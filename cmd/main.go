// GestureLink HID bridge.
// Publishes a virtual absolute mouse and gamepad through Linux uinput and
// drives them from a line-oriented command stream produced by an external
// gesture pipeline.
//
// Usage:
//
//	gesturelink [flags] [screen_width screen_height]
//	python3 main.py | gesturelink 1920 1080
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"gesturelink/internal/api"
	"gesturelink/internal/config"
	"gesturelink/internal/dispatch"
	"gesturelink/internal/hid"
)

var (
	devicePath = flag.String("device", "", "uinput device node (default /dev/uinput)")
	listenAddr = flag.String("listen", "", "accept command producers over WebSocket on this address instead of stdin")
	dryRun     = flag.Bool("dry-run", false, "log events instead of creating uinput devices")
)

func main() {
	flag.Parse()
	logger := golog.NewDevelopmentLogger("gesturelink")

	cfg := config.DefaultConfig()
	cfg.ApplyArgs(flag.Args())
	if *devicePath != "" {
		cfg.DevicePath = *devicePath
	}
	cfg.ListenAddr = *listenAddr
	cfg.DryRun = *dryRun

	os.Exit(run(cfg, logger))
}

func run(cfg config.Config, logger golog.Logger) int {
	mouse, gamepad, err := openDevices(cfg, logger)
	if err != nil {
		logger.Errorw("failed to create virtual devices", "error", err)
		return 1
	}
	// Both devices are always retracted, even if one close fails.
	defer func() {
		if err := multierr.Combine(mouse.Close(), gamepad.Close()); err != nil {
			logger.Errorw("device close", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source := io.Reader(os.Stdin)
	if cfg.ListenAddr != "" {
		srv := api.NewServer(cfg.ListenAddr, logger)
		go func() {
			if err := srv.Start(); err != nil {
				logger.Errorw("command server", "error", err)
			}
		}()
		go func() {
			<-ctx.Done()
			_ = srv.Stop(context.Background())
		}()
		source = srv.Lines()
	} else {
		logger.Infow("ready, listening on stdin")
	}

	d := dispatch.New(mouse, gamepad, logger)
	if err := d.Run(ctx, source); err != nil {
		logger.Errorw("run loop", "error", err)
		return 1
	}
	logger.Infow("exited cleanly")
	return 0
}

// openDevices creates the mouse first, then the gamepad. Failure of either
// is fatal: whatever already opened is retracted and no command is ever
// read.
func openDevices(cfg config.Config, logger golog.Logger) (*hid.Mouse, *hid.Gamepad, error) {
	if cfg.DryRun {
		mouse := hid.NewMouse(hid.NewTraceConn("mouse", logger), cfg.ScreenWidth, cfg.ScreenHeight)
		gamepad := hid.NewGamepad(hid.NewTraceConn("gamepad", logger))
		return mouse, gamepad, nil
	}
	mouse, err := hid.OpenMouse(cfg.DevicePath, cfg.ScreenWidth, cfg.ScreenHeight, logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "virtual mouse")
	}
	gamepad, err := hid.OpenGamepad(cfg.DevicePath, logger)
	if err != nil {
		_ = mouse.Close()
		return nil, nil, errors.Wrap(err, "virtual gamepad")
	}
	return mouse, gamepad, nil
}
