// Package config carries the process configuration, consumed once at
// startup. Nothing is persisted between runs.
package config

import (
	"strconv"

	"gesturelink/internal/uinput"
)

// Config is the startup configuration for the bridge.
type Config struct {
	// ScreenWidth and ScreenHeight bound the absolute cursor rectangle in
	// pixels. Values are used as given; keeping them positive is the
	// caller's responsibility.
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`

	// DevicePath is the uinput node the virtual devices are created on.
	DevicePath string `json:"device_path"`

	// ListenAddr, when set, accepts command producers over WebSocket on
	// this address instead of stdin.
	ListenAddr string `json:"listen_addr,omitempty"`

	// DryRun logs events instead of publishing uinput devices.
	DryRun bool `json:"dry_run,omitempty"`
}

// DefaultConfig returns the defaults used when no arguments are given.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		DevicePath:   uinput.DefaultPath,
	}
}

// ApplyArgs consumes the two optional positional integers (screen width,
// screen height). Both must be present to take effect. Parse failures fall
// through to zero, matching the historical driver's atoi behavior.
func (c *Config) ApplyArgs(args []string) {
	if len(args) < 2 {
		return
	}
	c.ScreenWidth, _ = strconv.Atoi(args[0])
	c.ScreenHeight, _ = strconv.Atoi(args[1])
}
