package twitterapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrorDetail is one entry of the platform's errors array. The v2 API reports
// title/detail pairs, the v1.1 media endpoint reports code/message pairs; both
// shapes land here.
type ErrorDetail struct {
	Title   string `json:"title,omitempty"`
	Detail  string `json:"detail,omitempty"`
	Type    string `json:"type,omitempty"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func (d ErrorDetail) String() string {
	switch {
	case d.Title != "" && d.Detail != "":
		return d.Title + ": " + d.Detail
	case d.Title != "":
		return d.Title
	case d.Message != "":
		return fmt.Sprintf("%d %s", d.Code, d.Message)
	default:
		return "unknown error"
	}
}

// APIError is a non-success response from the platform.
type APIError struct {
	StatusCode int
	Operation  string
	Details    []ErrorDetail
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("twitter api: %s: status %d", e.Operation, e.StatusCode)
	if len(e.Details) == 0 {
		return msg
	}
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.String())
	}
	return msg + ": " + strings.Join(parts, "; ")
}

// newAPIError builds an APIError from a response body, tolerating bodies that
// are not the documented errors envelope.
func newAPIError(operation string, status int, body []byte) *APIError {
	var envelope struct {
		Errors []ErrorDetail `json:"errors"`
	}
	_ = json.Unmarshal(body, &envelope)
	return &APIError{StatusCode: status, Operation: operation, Details: envelope.Errors}
}

// errorsIn detects a partial-error body delivered with a 200 status. The v2
// API does this for unauthorized or deleted resources.
func errorsIn(operation string, body []byte) *APIError {
	var envelope struct {
		Errors []ErrorDetail   `json:"errors"`
		Data   json.RawMessage `json:"data"`
	}
	if json.Unmarshal(body, &envelope) != nil || len(envelope.Errors) == 0 {
		return nil
	}
	// Partial results with data present are still usable.
	if len(envelope.Data) > 0 {
		return nil
	}
	return &APIError{StatusCode: 200, Operation: operation, Details: envelope.Errors}
}

// retryable reports whether a status is worth another attempt.
func retryable(status int) bool {
	return status == 429 || status >= 500
}

// parseRateLimitReset parses the x-rate-limit-reset unix timestamp header.
// Falls back to 15 minutes from now if missing or invalid.
func parseRateLimitReset(v string) time.Time {
	if ts, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Unix(ts, 0)
	}
	return time.Now().Add(15 * time.Minute)
}
