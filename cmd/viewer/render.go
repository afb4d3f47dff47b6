package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"chat-screener/domain"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const maxContentWidth = 60

func renderMessages(w io.Writer, sessionID string, messages []domain.ProcessedMessage) {
	header := fmt.Sprintf(" Session %s: %d message(s) ", sessionID, len(messages))
	fmt.Fprintln(w, color.New(color.BgBlack, color.FgGreen).Render(header))
	if len(messages) == 0 {
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Message ID", "Sender", "Timestamp", "Words", "Chars", "Lang", "Processed At", "Content"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, m := range messages {
		table.Append([]string{
			m.ID,
			senderLabel(m.Sender),
			m.Timestamp.Format(time.RFC3339),
			strconv.Itoa(m.Metadata.WordCount),
			strconv.Itoa(m.Metadata.CharacterCount),
			orDash(m.Metadata.Language),
			m.Metadata.ProcessedAt.Format(time.RFC3339),
			truncate(m.Content, maxContentWidth),
		})
	}
	table.Render()
}

func senderLabel(s domain.Sender) string {
	switch s {
	case domain.SenderUser:
		return color.FgCyan.Render(s.String())
	case domain.SenderSystem:
		return color.FgYellow.Render(s.String())
	default:
		return s.String()
	}
}

// truncate cuts on runes so multi-byte content stays valid.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
