package protocol

import (
	"testing"

	"go.viam.com/test"
)

func TestParse(t *testing.T) {
	cmd, ok := Parse("MOUSE_MOVE 100 200")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, cmd.Keyword, test.ShouldEqual, CmdMouseMove)
	test.That(t, cmd.Args, test.ShouldResemble, []string{"100", "200"})

	cmd, ok = Parse("MOUSE_LEFT")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, cmd.Keyword, test.ShouldEqual, CmdMouseLeft)
	test.That(t, cmd.Args, test.ShouldHaveLength, 0)

	// Repeated whitespace and tabs separate tokens.
	cmd, ok = Parse("GAMEPAD_BTN\tA   1")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, cmd.Args, test.ShouldResemble, []string{"A", "1"})
}

func TestParseIgnoredLines(t *testing.T) {
	_, ok := Parse("")
	test.That(t, ok, test.ShouldBeFalse)

	_, ok = Parse("# a comment")
	test.That(t, ok, test.ShouldBeFalse)

	_, ok = Parse("#MOUSE_MOVE 1 2")
	test.That(t, ok, test.ShouldBeFalse)
}

func TestParseKeywordIsCaseSensitive(t *testing.T) {
	cmd, ok := Parse("mouse_move 1 2")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, cmd.Keyword, test.ShouldNotEqual, CmdMouseMove)
}

func TestParseIndentedCommentIsNotAComment(t *testing.T) {
	// Only a '#' in column one marks a comment; an indented one becomes an
	// (unknown) keyword for the dispatcher to complain about.
	cmd, ok := Parse("  # indented")
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, cmd.Keyword, test.ShouldEqual, "#")
}
