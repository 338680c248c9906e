// Package ansi provides ANSI escape code constants and helpers for terminal output.
// CLI output that is not rendered through lipgloss references these constants.
package ansi

import "regexp"

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Dim       = "\033[2m"
	Underline = "\033[4m"
	Reverse   = "\033[7m"
	Blue      = "\033[34m"
	Yellow    = "\033[33m"
	Green     = "\033[32m"
	Red       = "\033[31m"
	Cyan      = "\033[36m"
	Magenta   = "\033[35m"
)

var sgr = regexp.MustCompile("\033\\[[0-9;]*m")

// Paint wraps s in the given codes followed by Reset. With no codes s is
// returned unchanged.
func Paint(s string, codes ...string) string {
	if len(codes) == 0 {
		return s
	}
	var prefix string
	for _, c := range codes {
		prefix += c
	}
	return prefix + s + Reset
}

// Strip removes SGR sequences, e.g. to measure visible width.
func Strip(s string) string {
	return sgr.ReplaceAllString(s, "")
}
