package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"chat-screener/domain"

	"github.com/gookit/color"
	"github.com/stretchr/testify/require"
)

func TestRenderMessages(t *testing.T) {
	req := require.New(t)
	color.Disable()
	at := time.Date(2023, 6, 15, 14, 30, 0, 0, time.UTC)
	messages := []domain.ProcessedMessage{
		{
			Message:  domain.Message{ID: "msg-1", SessionID: "s1", Content: "Hola mundo", Timestamp: at, Sender: domain.SenderUser},
			Metadata: domain.Metadata{WordCount: 2, CharacterCount: 10, ProcessedAt: at, Language: "es"},
		},
		{
			Message:  domain.Message{ID: "msg-2", SessionID: "s1", Content: "", Timestamp: at, Sender: domain.SenderSystem},
			Metadata: domain.Metadata{ProcessedAt: at},
		},
	}

	var out bytes.Buffer
	renderMessages(&out, "s1", messages)

	text := out.String()
	req.Contains(text, "Session s1: 2 message(s)")
	req.Contains(text, "msg-1")
	req.Contains(text, "msg-2")
	req.Contains(text, "2023-06-15T14:30:00Z")
	req.Contains(text, "Hola mundo")
}

func TestRenderMessages_Empty(t *testing.T) {
	color.Disable()
	var out bytes.Buffer

	renderMessages(&out, "nobody", nil)

	require.Equal(t, 1, strings.Count(out.String(), "\n"))
}

func TestTruncate(t *testing.T) {
	req := require.New(t)
	req.Equal("corto", truncate("corto", 10))
	req.Equal("añoañ…", truncate("añoañoaño", 6))
	req.Len([]rune(truncate(strings.Repeat("x", 100), maxContentWidth)), maxContentWidth)
}
