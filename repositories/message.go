//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chat-screener/domain"
)

// IMessageRepository persists processed messages and reads them back by session.
// Save must fail with errors.ErrDuplicateMessage when the id already exists and
// with errors.ErrStorageUnavailable for anything else, leaving no partial write.
type IMessageRepository interface {
	Save(ctx context.Context, message domain.ProcessedMessage) (domain.StoredRecord, error)
	FindBySession(ctx context.Context, query domain.SessionQuery) ([]domain.ProcessedMessage, error)
	Close() error
}

// Driver names accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
)

// DiskMessage is the storage representation shared by every backend.
type DiskMessage struct {
	MessageID      string    `json:"message_id"`
	SessionID      string    `json:"session_id"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	Sender         string    `json:"sender"`
	WordCount      int       `json:"word_count"`
	CharacterCount int       `json:"character_count"`
	ProcessedAt    time.Time `json:"processed_at"`
	Language       string    `json:"language"`
}

func fromProcessedMessage(m domain.ProcessedMessage) DiskMessage {
	return DiskMessage{
		MessageID:      m.ID,
		SessionID:      m.SessionID,
		Content:        m.Content,
		Timestamp:      m.Timestamp,
		Sender:         m.Sender.String(),
		WordCount:      m.Metadata.WordCount,
		CharacterCount: m.Metadata.CharacterCount,
		ProcessedAt:    m.Metadata.ProcessedAt,
		Language:       m.Metadata.Language,
	}
}

func toProcessedMessage(d DiskMessage) domain.ProcessedMessage {
	return domain.ProcessedMessage{
		Message: domain.Message{
			ID:        d.MessageID,
			SessionID: d.SessionID,
			Content:   d.Content,
			Timestamp: d.Timestamp,
			Sender:    domain.Sender(d.Sender),
		},
		Metadata: domain.Metadata{
			WordCount:      d.WordCount,
			CharacterCount: d.CharacterCount,
			ProcessedAt:    d.ProcessedAt,
			Language:       d.Language,
		},
		Status: domain.StatusSuccess,
	}
}

// Config selects and locates the backing store.
type Config struct {
	Driver         string
	DatabaseURL    string
	BadgerFilepath string
}

// Open builds the repository for the configured driver, applying SQL migrations first.
func Open(cfg Config, log *slog.Logger) (IMessageRepository, error) {
	switch cfg.Driver {
	case DriverSQLite, DriverPostgres, "":
		dialect := Dialect(cfg.Driver)
		if dialect == "" {
			dialect = DialectSQLite
		}
		if err := Migrate(dialect, cfg.DatabaseURL); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		repo, err := OpenSQL(dialect, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case DriverBadger:
		repo, err := OpenBadger(cfg.BadgerFilepath, log)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
