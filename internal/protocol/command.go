// Package protocol defines the line-oriented command vocabulary spoken by
// the gesture producer. One command per UTF-8 line; no response channel.
package protocol

import "strings"

// Command keywords. Matching is case-sensitive.
const (
	CmdMouseMove    = "MOUSE_MOVE"
	CmdMouseLeft    = "MOUSE_LEFT"
	CmdMouseRight   = "MOUSE_RIGHT"
	CmdMouseScroll  = "MOUSE_SCROLL"
	CmdGamepadBtn   = "GAMEPAD_BTN"
	CmdGamepadStick = "GAMEPAD_STICK"
	CmdQuit         = "QUIT"
)

// Command is one parsed input line: a keyword and its raw arguments.
// Commands are built per line and discarded after dispatch.
type Command struct {
	Keyword string
	Args    []string
}

// Parse tokenizes one line on whitespace. Empty lines and lines beginning
// with '#' report ok=false: they are ignored without a diagnostic.
func Parse(line string) (Command, bool) {
	if line == "" || line[0] == '#' {
		return Command{}, false
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}
	return Command{Keyword: fields[0], Args: fields[1:]}, true
}
