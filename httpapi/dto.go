package httpapi

import (
	"encoding/json"
	"fmt"
	"time"

	"chat-screener/domain"
)

// SubmitMessageRequest is the body of POST /api/messages/.
// Content is a pointer so that an empty string is accepted while a missing field is not.
// Sender is checked by the processing service, which reports SENDER_MISSING.
type SubmitMessageRequest struct {
	MessageID string     `json:"message_id" validate:"required"`
	SessionID string     `json:"session_id" validate:"required"`
	Content   *string    `json:"content" validate:"required"`
	Timestamp *Timestamp `json:"timestamp" validate:"required"`
	Sender    string     `json:"sender"`
}

func (r SubmitMessageRequest) toMessage() domain.Message {
	return domain.Message{
		ID:        r.MessageID,
		SessionID: r.SessionID,
		Content:   *r.Content,
		Timestamp: r.Timestamp.Time,
		Sender:    domain.Sender(r.Sender),
	}
}

// naiveLayout is ISO 8601 without a zone. Fractional seconds are accepted when parsing.
const naiveLayout = "2006-01-02T15:04:05"

// Timestamp accepts RFC 3339 times and zone-less ISO 8601 times, the latter read as UTC.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.ParseInLocation(naiveLayout, raw, time.UTC)
	if err != nil {
		return fmt.Errorf("timestamp %q is not an ISO 8601 time", raw)
	}
	t.Time = parsed
	return nil
}

type MetadataResponse struct {
	WordCount      int       `json:"word_count"`
	CharacterCount int       `json:"character_count"`
	ProcessedAt    time.Time `json:"processed_at"`
	Language       string    `json:"language,omitempty"`
}

type MessageData struct {
	MessageID string           `json:"message_id"`
	SessionID string           `json:"session_id"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp"`
	Sender    string           `json:"sender"`
	Metadata  MetadataResponse `json:"metadata"`
}

type MessageResponse struct {
	Status string      `json:"status"`
	Data   MessageData `json:"data"`
}

// MessageListResponse carries one page. Total and Count are both the page length.
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int               `json:"total"`
	Count    int               `json:"count"`
}

type HealthResponse struct {
	Title          string `json:"title"`
	Message        string `json:"message"`
	Version        string `json:"version"`
	MemoryRSSBytes uint64 `json:"memory_rss_bytes,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

type ErrorResponse struct {
	Status string    `json:"status"`
	Error  ErrorBody `json:"error"`
}

func toMessageResponse(m domain.ProcessedMessage) MessageResponse {
	return MessageResponse{
		Status: m.Status,
		Data: MessageData{
			MessageID: m.ID,
			SessionID: m.SessionID,
			Content:   m.Content,
			Timestamp: m.Timestamp,
			Sender:    m.Sender.String(),
			Metadata: MetadataResponse{
				WordCount:      m.Metadata.WordCount,
				CharacterCount: m.Metadata.CharacterCount,
				ProcessedAt:    m.Metadata.ProcessedAt,
				Language:       m.Metadata.Language,
			},
		},
	}
}
