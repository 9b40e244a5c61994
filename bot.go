// Package twitterbot is the plumbing shared by Twitter bots: credential
// loading, mention polling with a persisted cursor, per-user daily request
// quotas, tweet tokenizing, and free-text parameter extraction. The actual
// content a bot produces is supplied by a Handler implementation; this
// package only handles everything around it.
package twitterbot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cloudbots/go-twitterbot/twitterapi"
)

// apiClient is the slice of the platform client the bot needs. twitterapi
// satisfies it; tests substitute fakes.
type apiClient interface {
	UserMentions(ctx context.Context, userID string, sinceID int64) ([]twitterapi.Tweet, []twitterapi.User, error)
	UserTweets(ctx context.Context, userID string, max int) ([]twitterapi.Tweet, error)
	CreateTweet(ctx context.Context, text, inReplyTo string, mediaIDs ...string) (*twitterapi.Tweet, error)
}

// Bot bundles the plumbing one bot account needs.
type Bot struct {
	id     string
	api    apiClient
	log    *slog.Logger
	cursor *CursorStore
	quota  *QuotaStore

	logFile io.Closer
}

type options struct {
	dataDir string
	logger  *slog.Logger
	api     apiClient
	apiCfg  twitterapi.Config
}

// Option customizes bot construction.
type Option func(*options)

// WithDataDir relocates the validation_data and logs directories, which
// otherwise live under the working directory.
func WithDataDir(dir string) Option {
	return func(o *options) { o.dataDir = dir }
}

// WithLogger replaces the dated-file logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithAPIClient replaces the platform client, mainly for tests.
func WithAPIClient(c apiClient) Option {
	return func(o *options) { o.api = c }
}

// WithAPIConfig overrides the platform client configuration (rate limits,
// base URLs, timeouts). Credentials are still taken from the config file.
func WithAPIConfig(cfg twitterapi.Config) Option {
	return func(o *options) { o.apiCfg = cfg }
}

// New builds a Bot for the given account ID from an INI credentials file.
// Configuration problems (missing file, missing keys) are fatal here;
// credential correctness is only proven by the first API call.
func New(botID, configFilePath string, opts ...Option) (*Bot, error) {
	var o options
	o.dataDir = "."
	for _, opt := range opts {
		opt(&o)
	}

	b := &Bot{
		id:     botID,
		cursor: NewCursorStore(o.dataDir),
		quota:  NewQuotaStore(o.dataDir),
	}

	if o.logger != nil {
		b.log = o.logger
	} else {
		f, err := openLogFile(o.dataDir, time.Now())
		if err != nil {
			return nil, err
		}
		b.log = newLogger(f)
		b.logFile = f
	}

	if o.api != nil {
		b.api = o.api
	} else {
		creds, err := loadCredentials(configFilePath)
		if err != nil {
			return nil, err
		}
		cfg := o.apiCfg
		cfg.Credentials = creds
		api, err := twitterapi.NewClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("api client: %w", err)
		}
		b.api = api
	}

	b.log.Info("twitter bot activated", slog.String("bot_id", botID))
	return b, nil
}

// ID returns the bot account's user ID.
func (b *Bot) ID() string { return b.id }

// Logger exposes the bot's logger for Handler implementations.
func (b *Bot) Logger() *slog.Logger { return b.log }

// Cursor exposes the mention cursor store.
func (b *Bot) Cursor() *CursorStore { return b.cursor }

// Quota exposes the per-user quota store.
func (b *Bot) Quota() *QuotaStore { return b.quota }

// Close releases the log file if the bot opened one.
func (b *Bot) Close() error {
	if b.logFile != nil {
		return b.logFile.Close()
	}
	return nil
}
