package twitterbot

import (
	"regexp"
	"strings"

	"github.com/bbalet/stopwords"

	"github.com/cloudbots/go-twitterbot/twitterapi"
)

// handlePattern matches @mentions so they can be stripped before tokenizing.
var handlePattern = regexp.MustCompile(`@\w+`)

// TokenizeTweets normalizes and tokenizes tweet text for downstream analysis.
// Each tweet is lower-cased, stripped of @handles, reduced of elongated
// character runs ("coool" becomes "cool"), and cleaned of English stop words
// and punctuation. Tokens from all tweets are flattened into one sequence in
// input order.
func TokenizeTweets(tweets []twitterapi.Tweet) []string {
	var all []string
	for _, tw := range tweets {
		text := strings.ToLower(tw.Text)
		text = handlePattern.ReplaceAllString(text, " ")
		text = reduceLengthening(text)
		text = stopwords.CleanString(text, "en", false)
		all = append(all, strings.Fields(text)...)
	}
	return all
}

// reduceLengthening collapses runs of three or more identical runes down to
// two. Go's regexp has no backreferences, so this walks the runes directly.
func reduceLengthening(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run <= 2 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
