package twitterbot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cloudbots/go-twitterbot/twitterapi"
)

// Handler is the extension point a concrete bot implements. HandleMention is
// invoked once per quota-valid mention; returning an error skips that mention
// without aborting the cycle.
type Handler interface {
	HandleMention(ctx context.Context, bot *Bot, mention twitterapi.Tweet, author twitterapi.User) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, bot *Bot, mention twitterapi.Tweet, author twitterapi.User) error

func (f HandlerFunc) HandleMention(ctx context.Context, bot *Bot, mention twitterapi.Tweet, author twitterapi.User) error {
	return f(ctx, bot, mention, author)
}

// Mentions fetches mentions of the bot newer than the stored cursor, with
// author profiles. Any failure, cursor read included, is logged and degraded
// to empty results: polling fails open and simply skips the cycle rather
// than halting the bot.
func (b *Bot) Mentions(ctx context.Context) ([]twitterapi.Tweet, []twitterapi.User) {
	sinceID, err := b.cursor.LastSeenID()
	if err != nil {
		b.log.Error("couldn't retrieve mentions", slog.Any("error", err))
		return nil, nil
	}
	tweets, users, err := b.api.UserMentions(ctx, b.id, sinceID)
	if err != nil {
		b.log.Error("couldn't retrieve mentions", slog.Any("error", err))
		return nil, nil
	}
	b.log.Info("retrieved mentions", slog.Int("count", len(tweets)), slog.Int64("since_id", sinceID))
	return tweets, users
}

// FetchTweets returns up to 100 of a user's most recent tweets. Errors
// propagate to the caller.
func (b *Bot) FetchTweets(ctx context.Context, userID string) ([]twitterapi.Tweet, error) {
	b.log.Info("fetching tweets", slog.String("user_id", userID))
	return b.api.UserTweets(ctx, userID, 100)
}

// ReplyLimitReached replies to tweetID telling userHandle they have used up
// today's quota. Errors propagate to the caller.
func (b *Bot) ReplyLimitReached(ctx context.Context, tweetID, userHandle string) error {
	b.log.Info("replying with limit reached message", slog.String("user", userHandle))
	text := fmt.Sprintf("Hi @%s, sorry, but you've reached your daily limit of %d requests per day. Please try again tomorrow.",
		userHandle, DailyRequestLimit)
	if _, err := b.api.CreateTweet(ctx, text, tweetID); err != nil {
		return fmt.Errorf("reply limit reached: %w", err)
	}
	return nil
}

// RunCycle performs one polling pass: fetch mentions, quota-check each
// author, hand valid mentions to the handler, record their requests, and
// advance the cursor past everything seen. Handler failures and failed
// limit-reached replies are logged per mention; store failures abort the
// cycle since they would corrupt quota or cursor accounting.
func (b *Bot) RunCycle(ctx context.Context, h Handler) error {
	mentions, users := b.Mentions(ctx)
	if len(mentions) == 0 {
		return nil
	}

	authors := make(map[string]twitterapi.User, len(users))
	for _, u := range users {
		authors[u.ID] = u
	}

	var maxID int64
	for _, m := range mentions {
		if id, err := strconv.ParseInt(m.ID, 10, 64); err == nil && id > maxID {
			maxID = id
		}

		author := authors[m.AuthorID]
		ok, err := b.quota.IsUserValid(m.AuthorID)
		if err != nil {
			return fmt.Errorf("quota check: %w", err)
		}
		if !ok {
			if err := b.ReplyLimitReached(ctx, m.ID, author.Username); err != nil {
				b.log.Error("limit reached reply failed", slog.Any("error", err))
			}
			continue
		}

		if err := h.HandleMention(ctx, b, m, author); err != nil {
			b.log.Error("handler failed",
				slog.String("mention_id", m.ID),
				slog.String("author", author.Username),
				slog.Any("error", err))
			continue
		}

		if err := b.quota.RecordRequest(m.AuthorID); err != nil {
			return fmt.Errorf("record request: %w", err)
		}
	}

	if maxID > 0 {
		if err := b.cursor.Store(maxID); err != nil {
			return fmt.Errorf("advance cursor: %w", err)
		}
	}
	return nil
}

// Run polls on a fixed interval until ctx is cancelled. Cycle errors are
// logged and the next tick proceeds; use RunCycle directly for one-shot or
// externally scheduled invocation.
func (b *Bot) Run(ctx context.Context, h Handler, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := b.RunCycle(ctx, h); err != nil {
			b.log.Error("cycle failed", slog.Any("error", err))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
