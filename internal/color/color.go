// Package color provides the raw ANSI escape helpers the CLI reporter uses
// to highlight severity headers and matched lines, adapted from the raw
// "\033[...]" sequences the donor's gocui search interface wrote directly
// into its views. The interactive browser uses these same helpers.
package color

import (
	"fmt"
	"os"
)

const (
	reset = "\033[0m"
	red   = "\033[31m"
	green = "\033[32m"
	yellow = "\033[33m"
)

// Enabled reports whether stdout is a terminal. No isatty-style library
// appears anywhere in the examined pack, so this falls back to inspecting
// os.Stdout's file mode directly.
func Enabled() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// Red wraps s in the red escape sequence when enabled is true, otherwise
// returns s unchanged.
func Red(s string, enabled bool) string {
	if !enabled {
		return s
	}
	return fmt.Sprintf("%s%s%s", red, s, reset)
}

// Green wraps s in the green escape sequence when enabled is true.
func Green(s string, enabled bool) string {
	if !enabled {
		return s
	}
	return fmt.Sprintf("%s%s%s", green, s, reset)
}

// Yellow wraps s in the yellow escape sequence when enabled is true.
func Yellow(s string, enabled bool) string {
	if !enabled {
		return s
	}
	return fmt.Sprintf("%s%s%s", yellow, s, reset)
}
