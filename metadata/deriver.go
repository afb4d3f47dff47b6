// Package metadata derives the system-computed fields attached to every
// accepted message.
package metadata

import (
	"strings"
	"time"
	"unicode/utf8"

	"chat-screener/domain"

	"github.com/abadojack/whatlanggo"
)

// Clock returns the current instant. time.Now in production.
type Clock func() time.Time

type Deriver struct {
	location *time.Location
	now      Clock
}

// NewDeriver builds a Deriver stamping times in loc. A nil loc means UTC.
func NewDeriver(loc *time.Location, now Clock) Deriver {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return Deriver{location: loc, now: now}
}

// Derive computes every metadata field for the given content.
func (d Deriver) Derive(content string) domain.Metadata {
	return domain.Metadata{
		WordCount:      WordCount(content),
		CharacterCount: CharacterCount(content),
		ProcessedAt:    d.ProcessedAt(),
		Language:       Language(content),
	}
}

func (d Deriver) ProcessedAt() time.Time {
	return d.now().In(d.location)
}

// WordCount counts whitespace separated tokens. Empty or blank text is 0.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharacterCount counts code points of the raw text, whitespace included.
func CharacterCount(text string) int {
	return utf8.RuneCountInString(text)
}

// Language returns the ISO 639-1 code of the text, or "" when detection is unreliable.
func Language(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}

// ResolveLocation maps the configured zone name to a location.
// "" and "UTC" are UTC, anything else must be a known IANA zone.
func ResolveLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "UTC") {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}
