package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"curgo/internal/canon"
	"curgo/internal/metric"
)

// writeFile writes contents to a fresh temp file and returns its path.
func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// S6: a file containing an identical 10-line block three times, interleaved
// with unique filler lines. With the default metric, the 10-line block is
// reported with severity (3-1)*(10-1)-2 = 16, and shorter sub-blocks of the
// repeated block are suppressed by dedup.
func TestAnalyzer_S6_RepeatedBlockSeverity(t *testing.T) {
	dir := t.TempDir()

	block := []string{
		"a1 := 1",
		"a2 := 2",
		"a3 := a1 + a2",
		"a4 := a3 * 2",
		"a5 := a4 - 1",
		"a6 := a5 / 2",
		"a7 := a6 % 3",
		"a8 := a7 ^ 1",
		"a9 := a8 + a1",
		"fmt.Println(a9)",
	}
	var contents string
	contents += "package filler\n"
	contents += "var unique1 = 1\n"
	for _, l := range block {
		contents += l + "\n"
	}
	contents += "var unique2 = 2\n"
	for _, l := range block {
		contents += l + "\n"
	}
	contents += "var unique3 = 3\n"
	for _, l := range block {
		contents += l + "\n"
	}
	contents += "var unique4 = 4\n"

	path := writeFile(t, dir, "sample.go", contents)

	a := New(canon.Default)
	if err := a.AddFile(path, nil); err != nil {
		t.Fatalf("AddFile returned error: %v", err)
	}

	m := metric.MustCompile(metric.Default)
	repeats := a.Trie().MaximalRepeats(m)

	found := false
	for _, r := range repeats {
		if r.Length != 10 {
			t.Errorf("expected sub-blocks to be suppressed by dedup, got a repeat of length %d with %d occurrences", r.Length, r.Count())
			continue
		}
		found = true
		rep := a.Render(m, r)
		if rep.Count != 3 {
			t.Fatalf("expected 3 occurrences of the 10-line block, got %d", rep.Count)
		}
		if rep.Severity != 16 {
			t.Errorf("expected severity 16, got %d", rep.Severity)
		}
	}
	if !found {
		t.Fatalf("expected a length-10 repeat to be reported among %d repeats", len(repeats))
	}
}

func TestAnalyzer_RenderProducesLocationsWithOriginalLineNumbers(t *testing.T) {
	dir := t.TempDir()
	contents := "a\nb\nc\na\nb\nc\n"
	path := writeFile(t, dir, "dup.txt", contents)

	a := New(canon.Default)
	if err := a.AddFile(path, nil); err != nil {
		t.Fatalf("AddFile returned error: %v", err)
	}

	m := func(count, length int) int {
		if count >= 2 && length >= 3 {
			return 1
		}
		return 0
	}
	repeats := a.Trie().MaximalRepeats(m)
	if len(repeats) != 1 {
		t.Fatalf("expected 1 repeat, got %d", len(repeats))
	}

	rep := a.Render(m, repeats[0])
	if len(rep.Locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(rep.Locations))
	}
	wantLines := []int{1, 4}
	for i, loc := range rep.Locations {
		if loc.LineNo != wantLines[i] {
			t.Errorf("location %d: got line %d, want %d", i, loc.LineNo, wantLines[i])
		}
		if loc.File != "dup.txt" {
			t.Errorf("location %d: got file %q, want dup.txt", i, loc.File)
		}
	}
	if want := []string{"a", "b", "c"}; fmt.Sprint(rep.Lines) != fmt.Sprint(want) {
		t.Errorf("got lines %v, want %v", rep.Lines, want)
	}
}
