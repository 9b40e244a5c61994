// Command twitterbot-poll runs the bot kit with a demo handler: it fetches
// each mentioning user's recent tweets, tokenizes them, extracts parameters
// from the mention text, and logs what a real bot would feed into its
// content generation.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	twitterbot "github.com/cloudbots/go-twitterbot"
	"github.com/cloudbots/go-twitterbot/twitterapi"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		botID      string
		dataDir    string
		interval   time.Duration
		once       bool
	)

	cmd := &cobra.Command{
		Use:   "twitterbot-poll",
		Short: "Poll Twitter mentions and run the demo handler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bot, err := twitterbot.New(botID, configPath, twitterbot.WithDataDir(dataDir))
			if err != nil {
				return err
			}
			defer bot.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if once {
				return bot.RunCycle(ctx, demoHandler{})
			}
			err = bot.Run(ctx, demoHandler{}, interval)
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "config.ini", "path to the INI credentials file")
	cmd.Flags().StringVar(&botID, "bot-id", "", "the bot account's user ID")
	cmd.Flags().StringVar(&dataDir, "data-dir", ".", "directory holding validation_data/ and logs/")
	cmd.Flags().DurationVar(&interval, "interval", time.Minute, "polling interval")
	cmd.Flags().BoolVar(&once, "once", false, "run a single polling cycle and exit")
	_ = cmd.MarkFlagRequired("bot-id")

	return cmd
}

// demoParams is the parameter vocabulary the demo handler understands.
var demoParams = twitterbot.ParamsSpec{
	{Name: "mode", Values: []string{"sketch", "default"}},
	{Name: "color", Values: []string{"black", "white"}},
}

// demoHandler stands in for a real bot's generation logic.
type demoHandler struct{}

func (demoHandler) HandleMention(ctx context.Context, bot *twitterbot.Bot, mention twitterapi.Tweet, author twitterapi.User) error {
	tweets, err := bot.FetchTweets(ctx, author.ID)
	if err != nil {
		return fmt.Errorf("fetch tweets for @%s: %w", author.Username, err)
	}

	tokens := twitterbot.TokenizeTweets(tweets)
	params := twitterbot.ExtractParams(mention.Text, demoParams)

	bot.Logger().Info("mention processed",
		slog.String("author", author.Username),
		slog.Int("tokens", len(tokens)),
		slog.Any("params", params))
	return nil
}
