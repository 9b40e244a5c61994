package twitterapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// UserMentions fetches tweets mentioning userID that are newer than sinceID,
// with author profiles expanded. A sinceID of zero fetches the most recent
// mentions unconditionally.
func (c *Client) UserMentions(ctx context.Context, userID string, sinceID int64) ([]Tweet, []User, error) {
	q := url.Values{}
	q.Set("expansions", "author_id")
	q.Set("user.fields", "username")
	if sinceID > 0 {
		q.Set("since_id", strconv.FormatInt(sinceID, 10))
	}
	u := fmt.Sprintf("%s/users/%s/mentions?%s", c.cfg.BaseURL, url.PathEscape(userID), q.Encode())

	body, err := c.do(ctx, apiRequest{op: opUserMentions, method: http.MethodGet, url: u, auth: authBearer})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opUserMentions, err)
	}

	var resp tweetsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, nil, fmt.Errorf("%s: decode: %w", opUserMentions, err)
	}
	return resp.Data, resp.Includes.Users, nil
}

// UserTweets fetches up to max of a user's most recent tweets, single page.
// max is clamped to the 5..100 range the v2 API accepts.
func (c *Client) UserTweets(ctx context.Context, userID string, max int) ([]Tweet, error) {
	switch {
	case max < minTimelineResults:
		max = minTimelineResults
	case max > maxTimelineResults:
		max = maxTimelineResults
	}
	q := url.Values{}
	q.Set("max_results", strconv.Itoa(max))
	u := fmt.Sprintf("%s/users/%s/tweets?%s", c.cfg.BaseURL, url.PathEscape(userID), q.Encode())

	body, err := c.do(ctx, apiRequest{op: opUserTweets, method: http.MethodGet, url: u, auth: authBearer})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opUserTweets, err)
	}

	var resp tweetsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", opUserTweets, err)
	}
	return resp.Data, nil
}

// createTweetRequest is the body of POST /2/tweets.
type createTweetRequest struct {
	Text  string `json:"text"`
	Reply *struct {
		InReplyToTweetID string `json:"in_reply_to_tweet_id"`
	} `json:"reply,omitempty"`
	Media *struct {
		MediaIDs []string `json:"media_ids"`
	} `json:"media,omitempty"`
}

// CreateTweet posts a tweet in the bot's user context. inReplyTo, when
// non-empty, threads the tweet as a reply; mediaIDs attach previously
// uploaded media.
func (c *Client) CreateTweet(ctx context.Context, text, inReplyTo string, mediaIDs ...string) (*Tweet, error) {
	payload := createTweetRequest{Text: text}
	if inReplyTo != "" {
		payload.Reply = &struct {
			InReplyToTweetID string `json:"in_reply_to_tweet_id"`
		}{InReplyToTweetID: inReplyTo}
	}
	if len(mediaIDs) > 0 {
		payload.Media = &struct {
			MediaIDs []string `json:"media_ids"`
		}{MediaIDs: mediaIDs}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encode: %w", opCreateTweet, err)
	}

	body, err := c.do(ctx, apiRequest{
		op:          opCreateTweet,
		method:      http.MethodPost,
		url:         c.cfg.BaseURL + "/tweets",
		body:        data,
		contentType: "application/json",
		auth:        authUser,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCreateTweet, err)
	}

	var resp createTweetResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", opCreateTweet, err)
	}
	return &resp.Data, nil
}
