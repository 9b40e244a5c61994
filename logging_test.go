package twitterbot

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogFileName(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "twitter_bot_29_08_2026.log", logFileName(now))
}

func TestLogHandlerLineFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf)

	log.Info("twitter bot activated", slog.String("bot_id", "42"))
	line := buf.String()
	assert.Contains(t, line, " - INFO - twitter bot activated")
	assert.Contains(t, line, "bot_id=42")
}

func TestLogHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf)

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Error("visible")
	assert.Contains(t, buf.String(), "ERROR - visible")
}

func TestLogHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf).With(slog.String("bot_id", "42"))

	log.Info("cycle done", slog.Int("mentions", 3))
	assert.Contains(t, buf.String(), "bot_id=42")
	assert.Contains(t, buf.String(), "mentions=3")
}
