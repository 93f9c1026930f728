// Package leveldb caches a file's canonicalized symbol stream across runs,
// keyed on a fingerprint of its path, size and modification time. Adapted
// from the donor's leveldb document store: the JSON-per-entry encoding and
// Open/Close lifecycle survive, narrowed from a batched-write queue over
// indexed documents down to plain synchronous Get/Put over fingerprints.
package leveldb

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/syndtr/goleveldb/leveldb"

	"curgo/internal/lib/logger/sl"
)

// ErrNotFound is returned when a fingerprint has no cached entry.
var ErrNotFound = errors.New("cache: entry not found")

// Entry is what gets cached for one file: its canonicalized symbol stream
// (as interned text, so it survives across alphabets) and the map from
// kept canonical-line index to original 1-based line number.
type Entry struct {
	Lines      []string `json:"lines"`
	LineNumber []int    `json:"line_number"`
}

// Cache wraps a goleveldb handle for fingerprint-keyed Entry storage.
type Cache struct {
	log *slog.Logger
	db  *leveldb.DB
}

// Open opens (creating if necessary) the leveldb database at path.
func Open(log *slog.Logger, path string) (*Cache, error) {
	const op = "cache.leveldb.Open"

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Cache{log: log, db: db}, nil
}

// Fingerprint identifies a file's content without reading it, from its
// path, size and modification time. A changed file yields a different
// fingerprint, whether or not two different files happen to collide on
// size and mtime is immaterial: the path is part of the key.
func Fingerprint(path string, info os.FileInfo) string {
	return fmt.Sprintf("%s:%d:%d", path, info.Size(), info.ModTime().UnixNano())
}

// Get returns the cached Entry for fingerprint, or ErrNotFound if absent.
func (c *Cache) Get(fingerprint string) (Entry, error) {
	data, err := c.db.Get([]byte("fp:"+fingerprint), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("cache: get %s: %w", fingerprint, err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, fmt.Errorf("cache: decode %s: %w", fingerprint, err)
	}
	return entry, nil
}

// Put stores entry under fingerprint, overwriting any prior value.
func (c *Cache) Put(fingerprint string, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", fingerprint, err)
	}
	if err := c.db.Put([]byte("fp:"+fingerprint), data, nil); err != nil {
		return fmt.Errorf("cache: put %s: %w", fingerprint, err)
	}
	return nil
}

// Stats returns the leveldb engine's internal stats string, useful for the
// CLI's diagnostic output.
func (c *Cache) Stats() (string, error) {
	return c.db.GetProperty("leveldb.stats")
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	if err := c.db.Close(); err != nil {
		c.log.Error("failed to close cache database", "error", sl.Err(err))
		return err
	}
	return nil
}
