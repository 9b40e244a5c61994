package twitterbot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestQuotaUnknownUserIsValid(t *testing.T) {
	s := NewQuotaStore(t.TempDir())
	ok, err := s.IsUserValid("12345")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestQuotaLimitAfterFiveRequests(t *testing.T) {
	s := NewQuotaStore(t.TempDir())

	for i := 0; i < DailyRequestLimit; i++ {
		ok, err := s.IsUserValid("12345")
		require.NoError(t, err)
		assert.True(t, ok, "request %d should still be allowed", i+1)
		require.NoError(t, s.RecordRequest("12345"))
	}

	ok, err := s.IsUserValid("12345")
	require.NoError(t, err)
	assert.False(t, ok)

	// Other users are unaffected.
	ok, err = s.IsUserValid("67890")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestQuotaResetsNextDay(t *testing.T) {
	s := NewQuotaStore(t.TempDir())
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	for i := 0; i < DailyRequestLimit; i++ {
		require.NoError(t, s.RecordRequest("12345"))
	}
	ok, err := s.IsUserValid("12345")
	require.NoError(t, err)
	assert.False(t, ok)

	now = now.Add(24 * time.Hour)
	ok, err = s.IsUserValid("12345")
	require.NoError(t, err)
	assert.True(t, ok)

	// The first request of the new day starts a fresh count.
	require.NoError(t, s.RecordRequest("12345"))
	data, err := os.ReadFile(s.path)
	require.NoError(t, err)
	assert.EqualValues(t, 1, gjson.GetBytes(data, "12345.requests").Int())
}

func TestQuotaFileShape(t *testing.T) {
	dir := t.TempDir()
	s := NewQuotaStore(dir)
	require.NoError(t, s.RecordRequest("12345"))
	require.NoError(t, s.RecordRequest("12345"))

	data, err := os.ReadFile(filepath.Join(dir, "validation_data", "users_data.json"))
	require.NoError(t, err)
	assert.EqualValues(t, 2, gjson.GetBytes(data, "12345.requests").Int())
	assert.NotEmpty(t, gjson.GetBytes(data, "12345.date").String())
}

func TestQuotaCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "validation_data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "validation_data", "users_data.json"), []byte("{not json"), 0o644))

	s := NewQuotaStore(dir)
	_, err := s.IsUserValid("12345")
	assert.Error(t, err)
	assert.Error(t, s.RecordRequest("12345"))
}
