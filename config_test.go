package twitterbot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `[twitter-app-data]
bearer = test-bearer
consumer_key = test-ck
consumer_secret = test-cs

[twitter-bot-data]
access_token = test-at
access_token_secret = test-as
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCredentials(t *testing.T) {
	creds, err := loadCredentials(writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, "test-bearer", creds.Bearer)
	assert.Equal(t, "test-ck", creds.ConsumerKey)
	assert.Equal(t, "test-cs", creds.ConsumerSecret)
	assert.Equal(t, "test-at", creds.AccessToken)
	assert.Equal(t, "test-as", creds.AccessSecret)
}

func TestLoadCredentialsMissingFile(t *testing.T) {
	_, err := loadCredentials(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}

func TestLoadCredentialsMissingKey(t *testing.T) {
	_, err := loadCredentials(writeConfig(t, "[twitter-app-data]\nbearer = only\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "twitter-app-data")
}

func TestLoadCredentialsEnvOverride(t *testing.T) {
	t.Setenv(envBearer, "env-bearer")
	creds, err := loadCredentials(writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, "env-bearer", creds.Bearer)
	assert.Equal(t, "test-ck", creds.ConsumerKey)
}

func TestLoadCredentialsEnvFillsMissingKey(t *testing.T) {
	t.Setenv(envAccessToken, "env-at")
	t.Setenv(envAccessSecret, "env-as")
	cfg := `[twitter-app-data]
bearer = b
consumer_key = ck
consumer_secret = cs

[twitter-bot-data]
`
	creds, err := loadCredentials(writeConfig(t, cfg))
	require.NoError(t, err)
	assert.Equal(t, "env-at", creds.AccessToken)
	assert.Equal(t, "env-as", creds.AccessSecret)
}
