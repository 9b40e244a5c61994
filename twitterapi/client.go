// Package twitterapi is a typed client for the official Twitter/X API. It
// covers the small surface a bot needs: mentions since a cursor, a user's
// recent tweets, posting replies, and legacy v1.1 media upload (the v2 API
// still has no media upload endpoint).
package twitterapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/dghubble/oauth1"
	"golang.org/x/time/rate"
)

// Credentials holds the app and bot secrets loaded from configuration.
// Bearer authenticates read endpoints; the OAuth1 quadruple authenticates
// writes and the v1.1 upload path.
type Credentials struct {
	Bearer         string
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
}

func (c Credentials) validate() error {
	switch {
	case c.Bearer == "":
		return errors.New("missing bearer token")
	case c.ConsumerKey == "" || c.ConsumerSecret == "":
		return errors.New("missing consumer key/secret")
	case c.AccessToken == "" || c.AccessSecret == "":
		return errors.New("missing access token/secret")
	}
	return nil
}

// Config holds all configuration for the API client.
type Config struct {
	Credentials Credentials

	// BaseURL overrides the v2 API base URL. Default: the public API.
	BaseURL string

	// UploadBaseURL overrides the v1.1 upload base URL.
	UploadBaseURL string

	// HTTPTimeout bounds each request.
	HTTPTimeout time.Duration

	// RateLimit paces outgoing requests across all endpoints.
	RateLimit rate.Limit

	// RateBurst is the limiter burst size.
	RateBurst int

	// MaxRetries caps attempts for transient failures.
	MaxRetries int

	// MaxRateLimitWait caps how long a 429 response is waited out before the
	// attempt is retried anyway.
	MaxRateLimitWait time.Duration
}

// defaults fills in zero-value config fields with sensible defaults.
func (cfg *Config) defaults() {
	if cfg.BaseURL == "" {
		cfg.BaseURL = apiBase
	}
	if cfg.UploadBaseURL == "" {
		cfg.UploadBaseURL = uploadBase
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 15 * time.Second
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = rate.Every(2 * time.Second)
	}
	if cfg.RateBurst == 0 {
		cfg.RateBurst = 3
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.MaxRateLimitWait == 0 {
		cfg.MaxRateLimitWait = time.Minute
	}
}

// Client talks to the Twitter API on behalf of one bot account.
type Client struct {
	cfg     Config
	bearer  *http.Client // bearer-token auth, read endpoints
	user    *http.Client // OAuth1 user context, writes and v1.1 upload
	limiter *rate.Limiter
}

// NewClient creates a client from credentials. The OAuth1 signing transport
// comes from dghubble/oauth1; bearer requests ride a plain http.Client.
func NewClient(cfg Config) (*Client, error) {
	cfg.defaults()
	if err := cfg.Credentials.validate(); err != nil {
		return nil, err
	}

	oaCfg := oauth1.NewConfig(cfg.Credentials.ConsumerKey, cfg.Credentials.ConsumerSecret)
	token := oauth1.NewToken(cfg.Credentials.AccessToken, cfg.Credentials.AccessSecret)
	user := oaCfg.Client(oauth1.NoContext, token)
	user.Timeout = cfg.HTTPTimeout

	return &Client{
		cfg:     cfg,
		bearer:  &http.Client{Timeout: cfg.HTTPTimeout},
		user:    user,
		limiter: rate.NewLimiter(cfg.RateLimit, cfg.RateBurst),
	}, nil
}
