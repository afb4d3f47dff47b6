//go:generate go run go.uber.org/mock/mockgen -source=screener.go -destination=../mocks/mock_screener.go -package=mocks
package moderation

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"chat-screener/corpus"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultThreshold is the minimum similarity (inclusive) for a token to be
// considered a banned word.
const DefaultThreshold = 80

type IScreener interface {
	Screen(ctx context.Context, text string) (string, bool, error)
}

// Screener compares every token of a message against the banned word corpus
// using the fuzzywuzzy ratio.
type Screener struct {
	loader    corpus.ILoader
	threshold int
	log       *slog.Logger
}

func NewScreener(loader corpus.ILoader, threshold int, log *slog.Logger) Screener {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return Screener{loader: loader, threshold: threshold, log: log}
}

// Screen returns the first banned word matched by the text.
// Tokens are visited in order and, for each token, the corpus is visited in order.
// The corpus is loaded on every call so edits apply without a restart.
func (s Screener) Screen(ctx context.Context, text string) (string, bool, error) {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return "", false, nil
	}

	words, err := s.loader.Load(ctx)
	if err != nil {
		return "", false, err
	}
	banned := make([]string, len(words))
	for i, w := range words {
		banned[i] = strings.ToLower(w)
	}

	for _, token := range tokens {
		for _, word := range banned {
			if score := Similarity(token, word); score >= s.threshold {
				s.log.Debug("Banned word detected", "token", token, "word", word, "score", score)
				return word, true, nil
			}
		}
	}
	return "", false, nil
}

// Tokenize strips punctuation, lower-cases and splits the text on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(stripPunctuation(text)))
}

// stripPunctuation keeps letters, digits and whitespace only.
func stripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if isNoise(r) {
			return -1
		}
		return r
	}, text)
}

func isNoise(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}

// Similarity scores two strings in [0,100] as 2*M/T, M being the matched
// characters and T the combined length. A substitution costs a deletion plus an
// insertion, so "lobo" against "robo" is 75.
func Similarity(a, b string) int {
	switch {
	case a == b:
		return 100
	case a == "" || b == "":
		return 0
	}
	return fuzzy.Ratio(a, b)
}
