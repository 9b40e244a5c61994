package twitterbot

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// cursorFile is the flat file holding the last processed mention ID.
const cursorFile = "last_seen_tweet_id.txt"

// CursorStore persists the ID of the most recently processed mention so
// polling can resume where it left off.
type CursorStore struct {
	path string
}

// NewCursorStore roots the cursor file under dir/validation_data.
func NewCursorStore(dir string) *CursorStore {
	return &CursorStore{path: filepath.Join(dir, "validation_data", cursorFile)}
}

// LastSeenID reads and parses the stored cursor. A missing file or
// non-numeric content is an error; a bot that has never run must seed the
// file itself.
func (s *CursorStore) LastSeenID() (int64, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, fmt.Errorf("read cursor: %w", err)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse cursor %s: %w", s.path, err)
	}
	return id, nil
}

// Store overwrites the cursor with id via an atomic rename, so a crash
// mid-write cannot leave a torn file behind.
func (s *CursorStore) Store(id int64) error {
	if err := writeFileAtomic(s.path, []byte(strconv.FormatInt(id, 10))); err != nil {
		return fmt.Errorf("store cursor: %w", err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path. Parent directories are created as needed.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
