// Package domain contains core concepts of the message screening service.
// This file defines Message, its derived Metadata and related rules.
// Processed messages are immutable once built by the processing service.
package domain

import (
	"time"
)

// Sender identifies who emitted a message inside a session.
type Sender string

const (
	SenderUser   Sender = "user"
	SenderSystem Sender = "system"
)

// StatusSuccess is the only status a processed message can carry.
const StatusSuccess = "success"

// IsValid reports whether s is one of the two known senders.
func (s Sender) IsValid() bool {
	return s == SenderUser || s == SenderSystem
}

func (s Sender) String() string {
	return string(s)
}

// Message is the caller-supplied input, before screening.
type Message struct {
	ID        string
	SessionID string
	Content   string
	Timestamp time.Time
	Sender    Sender
}

// Metadata is derived by the system, never supplied by callers.
type Metadata struct {
	WordCount      int
	CharacterCount int
	ProcessedAt    time.Time
	Language       string
}

// ProcessedMessage is a Message accepted by the screener and enriched with Metadata.
// It is the unit persisted and retrieved.
type ProcessedMessage struct {
	Message
	Metadata Metadata
	Status   string
}

// StoredRecord is a ProcessedMessage as persisted, with its insertion sequence.
type StoredRecord struct {
	ProcessedMessage
	Sequence uint64
}

// SessionQuery selects one page of a session's messages.
// A nil Sender means no sender filter.
type SessionQuery struct {
	SessionID string
	Limit     int
	Offset    int
	Sender    *Sender
}
