// Package analyzer is the façade that wires the canonicalizer, alphabet
// and suffix trie together: it turns raw files into the symbol streams the
// trie consumes, and turns the trie's MaximalRepeat results back into
// human-readable reports with file/line locations.
package analyzer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"curgo/internal/canon"
	"curgo/internal/domain/models"
	"curgo/internal/suffixtrie"
)

// fileRecord is what Analyzer retains per added file: its path, and the
// map from kept canonical-line index (the offset used as Position.Offset)
// to the file's original 1-based line number.
type fileRecord struct {
	path       string
	lineNumber []int // lineNumber[offset] = original 1-based line number
}

// Analyzer owns the alphabet and trie for one analysis run and the
// bookkeeping needed to render trie-level results back to source
// locations.
type Analyzer struct {
	alphabet *suffixtrie.Alphabet
	trie     *suffixtrie.STrie
	canon    canon.Func
	files    []fileRecord
}

// New returns an Analyzer that canonicalizes lines with canonFn before
// interning them.
func New(canonFn canon.Func) *Analyzer {
	return &Analyzer{
		alphabet: suffixtrie.NewAlphabet(),
		trie:     suffixtrie.NewSTrie(),
		canon:    canonFn,
	}
}

// Trie exposes the underlying suffix trie, e.g. for Stats() or direct
// MaximalRepeats() calls with a caller-chosen metric.
func (a *Analyzer) Trie() *suffixtrie.STrie { return a.trie }

// Alphabet exposes the underlying alphabet, e.g. for the interactive
// browser to resolve a symbol to text without going through Render.
func (a *Analyzer) Alphabet() *suffixtrie.Alphabet { return a.alphabet }

// AddFile reads path, canonicalizes each line, skips lines whose canonical
// form is empty, and feeds the resulting symbol stream to the trie. It
// also retains the mapping from kept-line offset back to the file's
// original 1-based line number, needed later by Render.
func (a *Analyzer) AddFile(path string, onProgress suffixtrie.ProgressFunc) error {
	symbols, lineNumber, err := a.loadFile(path)
	if err != nil {
		return err
	}
	return a.addLoaded(path, symbols, lineNumber, onProgress)
}

// AddLoaded feeds an already-canonicalized symbol stream (e.g. one
// retrieved from the leveldb fingerprint cache) into the trie, bypassing
// the file read and canonicalization step entirely.
func (a *Analyzer) AddLoaded(path string, lines []string, lineNumber []int, onProgress suffixtrie.ProgressFunc) error {
	symbols := make([]models.Symbol, len(lines))
	for i, line := range lines {
		symbols[i] = a.alphabet.Intern(line)
	}
	return a.addLoaded(path, symbols, lineNumber, onProgress)
}

func (a *Analyzer) addLoaded(path string, symbols []models.Symbol, lineNumber []int, onProgress suffixtrie.ProgressFunc) error {
	a.files = append(a.files, fileRecord{path: path, lineNumber: lineNumber})
	a.trie.Add(symbols, onProgress)
	return nil
}

// LoadFile reads and canonicalizes path without touching the trie,
// returning the kept canonical lines and their original 1-based line
// numbers. This is the shape the leveldb cache stores and the worker pool
// produces, ahead of the sequential AddLoaded pass.
func (a *Analyzer) LoadFile(path string) (lines []string, lineNumber []int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("analyzer: opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		c := a.canon(scanner.Text())
		if c == "" {
			continue
		}
		lines = append(lines, c)
		lineNumber = append(lineNumber, lineNo)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("analyzer: reading %s: %w", path, err)
	}

	return lines, lineNumber, nil
}

func (a *Analyzer) loadFile(path string) (symbols []models.Symbol, lineNumber []int, err error) {
	lines, lineNumber, err := a.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	symbols = make([]models.Symbol, len(lines))
	for i, line := range lines {
		symbols[i] = a.alphabet.Intern(line)
	}
	return symbols, lineNumber, nil
}

// Render turns one extracted MaximalRepeat into a Report: the Length
// canonical lines it spans, and one RepeatLocation per occurrence.
func (a *Analyzer) Render(metric suffixtrie.CutoffMetric, r *models.MaximalRepeat) models.Report {
	first := r.Indices[0]
	symbols := a.trie.String(first.StringID)
	start := first.Offset - r.Length + 1

	lines := make([]string, r.Length)
	for i := 0; i < r.Length; i++ {
		lines[i] = a.alphabet.TextOf(symbols[start+i])
	}

	locations := make([]models.RepeatLocation, len(r.Indices))
	for i, idx := range r.Indices {
		rec := a.files[idx.StringID]
		lineOffset := idx.Offset - r.Length + 1
		lineNo := 0
		if lineOffset >= 0 && lineOffset < len(rec.lineNumber) {
			lineNo = rec.lineNumber[lineOffset]
		}
		locations[i] = models.RepeatLocation{
			File:   filepath.Base(rec.path),
			LineNo: lineNo,
		}
	}

	severity := metric(r.Count(), r.Length)
	return models.Report{
		Severity:  severity,
		Count:     r.Count(),
		Length:    r.Length,
		Lines:     lines,
		Locations: locations,
	}
}
