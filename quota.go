package twitterbot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DailyRequestLimit is the number of requests a single user may make per day.
const DailyRequestLimit = 5

// quotaFile is the JSON file keyed by user ID, each value an object with a
// "requests" count and the "date" it was last touched.
const quotaFile = "users_data.json"

// QuotaStore tracks per-user daily request counts in a flat JSON file.
// Counts from earlier days are treated as zero, so the limit really is daily.
// Safe for concurrent use within one process; the atomic rename keeps the
// file whole even if two processes collide.
type QuotaStore struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewQuotaStore roots the quota file under dir/validation_data.
func NewQuotaStore(dir string) *QuotaStore {
	return &QuotaStore{
		path: filepath.Join(dir, "validation_data", quotaFile),
		now:  time.Now,
	}
}

// day renders a time as the DD_MM_YYYY key used in records.
func day(t time.Time) string {
	return t.Format("02_01_2006")
}

// load reads the quota file, treating a missing file as an empty object.
func (s *QuotaStore) load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []byte("{}"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read quota file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("quota file %s: invalid JSON", s.path)
	}
	return data, nil
}

// requestsToday returns the effective count for userID in the loaded data.
func (s *QuotaStore) requestsToday(data []byte, userID string) int {
	rec := gjson.GetBytes(data, userID)
	if !rec.Exists() {
		return 0
	}
	if rec.Get("date").String() != day(s.now()) {
		return 0
	}
	return int(rec.Get("requests").Int())
}

// IsUserValid reports whether userID is still under today's request limit.
// Users without a record have made no requests and are always valid.
func (s *QuotaStore) IsUserValid(userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return false, err
	}
	return s.requestsToday(data, userID) < DailyRequestLimit, nil
}

// RecordRequest increments userID's count for today, creating or resetting
// the record as needed, and rewrites the file atomically.
func (s *QuotaStore) RecordRequest(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load()
	if err != nil {
		return err
	}

	count := s.requestsToday(data, userID) + 1
	data, err = sjson.SetBytes(data, userID+".requests", count)
	if err != nil {
		return fmt.Errorf("update quota record: %w", err)
	}
	data, err = sjson.SetBytes(data, userID+".date", day(s.now()))
	if err != nil {
		return fmt.Errorf("update quota record: %w", err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("write quota file: %w", err)
	}
	return nil
}
