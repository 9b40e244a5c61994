package twitterapi

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestAPIErrorMessage(t *testing.T) {
	err := newAPIError(opUserTweets, 404, []byte(`{
		"errors": [{"title": "Not Found Error", "detail": "Could not find user", "type": "https://api.twitter.com/2/problems/resource-not-found"}]
	}`))
	msg := err.Error()
	if !strings.Contains(msg, "UserTweets") {
		t.Fatalf("missing operation in %q", msg)
	}
	if !strings.Contains(msg, "404") {
		t.Fatalf("missing status in %q", msg)
	}
	if !strings.Contains(msg, "Not Found Error: Could not find user") {
		t.Fatalf("missing detail in %q", msg)
	}
}

func TestAPIErrorV11Shape(t *testing.T) {
	err := newAPIError(opMediaUpload, 403, []byte(`{"errors": [{"code": 324, "message": "Invalid media"}]}`))
	if !strings.Contains(err.Error(), "324 Invalid media") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestAPIErrorGarbageBody(t *testing.T) {
	err := newAPIError(opCreateTweet, 500, []byte("<html>oops</html>"))
	if err.StatusCode != 500 || len(err.Details) != 0 {
		t.Fatalf("unexpected error %+v", err)
	}
}

func TestErrorsInDetectsErrorOnlyBody(t *testing.T) {
	body := []byte(`{"errors": [{"title": "Authorization Error", "detail": "not authorized"}]}`)
	if errorsIn(opUserMentions, body) == nil {
		t.Fatal("expected APIError for error-only body")
	}
}

func TestErrorsInIgnoresPartialResults(t *testing.T) {
	body := []byte(`{"data": [{"id": "1", "text": "hi"}], "errors": [{"title": "skipped"}]}`)
	if err := errorsIn(opUserMentions, body); err != nil {
		t.Fatalf("partial results should not error, got %v", err)
	}
}

func TestParseRateLimitResetFallback(t *testing.T) {
	reset := parseRateLimitReset("not-a-timestamp")
	if until := time.Until(reset); until < 14*time.Minute || until > 16*time.Minute {
		t.Fatalf("expected ~15m fallback, got %v", until)
	}
}

func TestParseRateLimitReset(t *testing.T) {
	want := time.Now().Add(30 * time.Second).Unix()
	reset := parseRateLimitReset(strconv.FormatInt(want, 10))
	if reset.Unix() != want {
		t.Fatalf("expected %d, got %d", want, reset.Unix())
	}
}
