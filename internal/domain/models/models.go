// Package models holds the value types shared across the analyzer, the
// suffix trie and the reporting layer, so none of those packages need to
// import each other just to pass a Position or a MaximalRepeat around.
package models

import "fmt"

// Symbol is the dense integer identity of one interned canonical line.
type Symbol int

// Position locates one symbol (or, when Offset == length of the string, the
// string's unique end-marker) inside the combined corpus.
type Position struct {
	StringID int
	Offset   int
}

// Less orders positions lexicographically on (StringID, Offset).
func (p Position) Less(o Position) bool {
	if p.StringID != o.StringID {
		return p.StringID < o.StringID
	}
	return p.Offset < o.Offset
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.StringID, p.Offset)
}

// MaximalRepeat is an immutable record describing one maximal repeated run
// of canonical lines: Length symbols long, ending at each Position in
// Indices. Contains, when non-nil, points at a strictly shorter repeat on
// the same root-to-leaf path that occurs strictly more often.
type MaximalRepeat struct {
	Length  int
	Indices []Position
	Contains *MaximalRepeat
}

// Count is the number of occurrences of the repeat.
func (m *MaximalRepeat) Count() int {
	return len(m.Indices)
}

// RepeatLocation is a human-facing occurrence of a repeat: the basename of
// the file it was found in and the 1-based original line number of the
// first line of the occurrence.
type RepeatLocation struct {
	File    string
	LineNo  int
}

// Report is the fully rendered, human-readable form of a MaximalRepeat,
// produced by the analyzer façade for the CLI and TUI reporters.
type Report struct {
	Severity  int
	Count     int
	Length    int
	Lines     []string
	Locations []RepeatLocation
}

// TrieStats summarizes the shape of a built trie, for diagnostics (see
// App.Stats).
type TrieStats struct {
	Nodes         int
	Leaves        int
	MaxDepth      int
	AvgDepth      float64
	TotalChildren int
}
