//go:generate go run go.uber.org/mock/mockgen -source=processing_service.go -destination=../mocks/mock_processing_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"time"

	"chat-screener/domain"
	"chat-screener/errors"
	"chat-screener/metadata"
	"chat-screener/moderation"
	"chat-screener/observability"

	"github.com/go-playground/validator/v10"
)

type IMessageProcessingService interface {
	Process(ctx context.Context, message domain.Message) (domain.ProcessedMessage, error)
}

// MessageProcessingService screens a message and enriches it with metadata.
// Nothing is persisted here.
type MessageProcessingService struct {
	log      *slog.Logger
	screener moderation.IScreener
	deriver  metadata.Deriver
	validate *validator.Validate
}

func NewMessageProcessingService(log *slog.Logger, screener moderation.IScreener, deriver metadata.Deriver) *MessageProcessingService {
	return &MessageProcessingService{
		log:      log,
		screener: screener,
		deriver:  deriver,
		validate: validator.New(),
	}
}

// Process rejects unknown senders and banned content, in that order.
// Metadata is only computed for accepted messages.
func (s *MessageProcessingService) Process(ctx context.Context, message domain.Message) (domain.ProcessedMessage, error) {
	if err := s.validate.Var(message.Sender.String(), "required,oneof=user system"); err != nil {
		observability.MessagesTotal.WithLabelValues(observability.OutcomeRejected).Inc()
		return domain.ProcessedMessage{}, errors.InvalidSender(message.Sender.String())
	}

	start := time.Now()
	word, found, err := s.screener.Screen(ctx, message.Content)
	observability.ScreeningDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.log.Error("Screening failed", "message_id", message.ID, "error", err)
		return domain.ProcessedMessage{}, err
	}
	if found {
		observability.MessagesTotal.WithLabelValues(observability.OutcomeBanned).Inc()
		s.log.Info("Message rejected", "message_id", message.ID, "session_id", message.SessionID, "word", word)
		return domain.ProcessedMessage{}, errors.BannedContent(word)
	}

	observability.MessagesTotal.WithLabelValues(observability.OutcomeAccepted).Inc()
	return domain.ProcessedMessage{
		Message:  message,
		Metadata: s.deriver.Derive(message.Content),
		Status:   domain.StatusSuccess,
	}, nil
}
