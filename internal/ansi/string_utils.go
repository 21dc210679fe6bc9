package ansi

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
)

// sgrPattern matches SGR (color/style) sequences only. Cursor movement and
// other CSI sequences are left in place and count as visible.
var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// StripSGR removes every SGR escape sequence from s.
func StripSGR(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// VisibleLength returns the number of characters of s that would be visible
// on screen, ignoring SGR escape sequences.
func VisibleLength(s string) int {
	return uniseg.GraphemeClusterCount(StripSGR(s))
}

// Center prefixes s with enough spaces to center its visible text within
// width columns. s itself, escape codes included, is never modified; if it
// is already as wide as width it is returned unchanged.
func Center(s string, width int) string {
	visLen := VisibleLength(s)
	if visLen >= width {
		return s
	}
	return strings.Repeat(" ", (width-visLen)/2) + s
}

// PadVisible pads a string to the specified width using the given pad character.
// ANSI escape sequences do not count toward the width.
func PadVisible(s string, width int, padChar rune) string {
	visLen := VisibleLength(s)
	if visLen >= width {
		return s
	}

	padding := strings.Repeat(string(padChar), width-visLen)
	return s + padding
}
