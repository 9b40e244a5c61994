package twitterbot

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"

	"github.com/cloudbots/go-twitterbot/twitterapi"
)

// INI sections of the credentials file. twitter-app-data holds the
// project/app credentials from the developer portal, twitter-bot-data holds
// the bot account's access token pair.
const (
	appSection = "twitter-app-data"
	botSection = "twitter-bot-data"
)

// Environment variables that override the corresponding INI keys when set.
const (
	envBearer         = "TWITTER_BEARER_TOKEN"
	envConsumerKey    = "TWITTER_CONSUMER_KEY"
	envConsumerSecret = "TWITTER_CONSUMER_SECRET"
	envAccessToken    = "TWITTER_ACCESS_TOKEN"
	envAccessSecret   = "TWITTER_ACCESS_TOKEN_SECRET"
)

// loadCredentials reads the INI credentials file, applying an optional .env
// overlay first. Environment variables win over file keys. A missing file or
// a key absent from both sources is a fatal configuration error.
func loadCredentials(path string) (twitterapi.Credentials, error) {
	// Missing .env is fine; it is only an overlay.
	_ = godotenv.Load()

	cfg, err := ini.Load(path)
	if err != nil {
		return twitterapi.Credentials{}, fmt.Errorf("load config %s: %w", path, err)
	}

	get := func(section, key, envKey string) (string, error) {
		if v := os.Getenv(envKey); v != "" {
			return v, nil
		}
		sec, err := cfg.GetSection(section)
		if err != nil {
			return "", fmt.Errorf("config section [%s]: %w", section, err)
		}
		k, err := sec.GetKey(key)
		if err != nil {
			return "", fmt.Errorf("config key [%s] %s: %w", section, key, err)
		}
		return k.String(), nil
	}

	var creds twitterapi.Credentials
	fields := []struct {
		dst     *string
		section string
		key     string
		env     string
	}{
		{&creds.Bearer, appSection, "bearer", envBearer},
		{&creds.ConsumerKey, appSection, "consumer_key", envConsumerKey},
		{&creds.ConsumerSecret, appSection, "consumer_secret", envConsumerSecret},
		{&creds.AccessToken, botSection, "access_token", envAccessToken},
		{&creds.AccessSecret, botSection, "access_token_secret", envAccessSecret},
	}
	for _, f := range fields {
		v, err := get(f.section, f.key, f.env)
		if err != nil {
			return twitterapi.Credentials{}, err
		}
		*f.dst = v
	}
	return creds, nil
}
