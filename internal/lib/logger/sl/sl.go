// Package sl holds small slog helpers shared across the codebase.
package sl

import "log/slog"

// Err wraps an error as a slog.Attr named "error", the form every
// log.Error call in this codebase passes it in.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
