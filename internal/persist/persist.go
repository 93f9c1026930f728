// Package persist reads and writes the cross-run ".cur.rent" state file
// that lets the CLI report how much duplicated code was refactored away
// since the previous run.
package persist

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultFilename is the state file name used when the CLI is not
// configured with an alternate path.
const DefaultFilename = ".cur.rent"

// State is the persisted summary of one run: the sum of every reported
// repeat's severity, and the sum of every reported repeat's line count.
type State struct {
	TotalSeverity int
	TotalLines    int
}

// Load reads path and parses its "<severity>/<lines>" contents. A missing
// file is not an error: it returns the zero State and ok == false so the
// caller can tell "no prior run" apart from "prior run reported zero".
func Load(path string) (state State, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, false, nil
		}
		return State{}, false, fmt.Errorf("persist: reading %s: %w", path, err)
	}

	text := strings.TrimSpace(string(data))
	sevStr, lineStr, found := strings.Cut(text, "/")
	if !found {
		return State{}, false, fmt.Errorf("persist: malformed state in %s: %q", path, text)
	}

	sev, err := strconv.Atoi(strings.TrimSpace(sevStr))
	if err != nil {
		return State{}, false, fmt.Errorf("persist: parsing severity in %s: %w", path, err)
	}
	lines, err := strconv.Atoi(strings.TrimSpace(lineStr))
	if err != nil {
		return State{}, false, fmt.Errorf("persist: parsing line count in %s: %w", path, err)
	}

	return State{TotalSeverity: sev, TotalLines: lines}, true, nil
}

// Save overwrites path with state's "<severity>/<lines>" representation.
func Save(path string, state State) error {
	text := fmt.Sprintf("%d/%d", state.TotalSeverity, state.TotalLines)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("persist: writing %s: %w", path, err)
	}
	return nil
}
