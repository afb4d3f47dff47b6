//go:generate go run go.uber.org/mock/mockgen -source=storage_service.go -destination=../mocks/mock_storage_service.go -package=mocks
package services

import (
	"context"
	stderrors "errors"
	"log/slog"

	"chat-screener/domain"
	"chat-screener/errors"
	"chat-screener/observability"
	"chat-screener/repositories"
)

type IMessageStorageService interface {
	Save(ctx context.Context, message domain.ProcessedMessage) (domain.StoredRecord, error)
}

type MessageStorageService struct {
	log        *slog.Logger
	repository repositories.IMessageRepository
}

func NewMessageStorageService(log *slog.Logger, repository repositories.IMessageRepository) *MessageStorageService {
	return &MessageStorageService{log: log, repository: repository}
}

func (s *MessageStorageService) Save(ctx context.Context, message domain.ProcessedMessage) (domain.StoredRecord, error) {
	record, err := s.repository.Save(ctx, message)
	switch {
	case err == nil:
		observability.MessagesTotal.WithLabelValues(observability.OutcomeStored).Inc()
		s.log.Debug("Message stored", "message_id", message.ID, "sequence", record.Sequence)
		return record, nil
	case stderrors.Is(err, errors.ErrDuplicateMessage):
		observability.MessagesTotal.WithLabelValues(observability.OutcomeDuplicate).Inc()
		s.log.Info("Duplicate message", "message_id", message.ID)
		return domain.StoredRecord{}, err
	default:
		observability.MessagesTotal.WithLabelValues(observability.OutcomeFailed).Inc()
		s.log.Error("Message storage failed", "message_id", message.ID, "code", errors.CodeOf(err), "error", err)
		return domain.StoredRecord{}, err
	}
}
