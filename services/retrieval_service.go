//go:generate go run go.uber.org/mock/mockgen -source=retrieval_service.go -destination=../mocks/mock_retrieval_service.go -package=mocks
package services

import (
	"context"
	"log/slog"

	"chat-screener/domain"
	"chat-screener/errors"
	"chat-screener/repositories"

	"github.com/go-playground/validator/v10"
)

// Paging bounds accepted by FindBySession.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

type IMessageRetrievalService interface {
	FindBySession(ctx context.Context, query domain.SessionQuery) ([]domain.ProcessedMessage, error)
}

type MessageRetrievalService struct {
	log        *slog.Logger
	repository repositories.IMessageRepository
	validate   *validator.Validate
}

func NewMessageRetrievalService(log *slog.Logger, repository repositories.IMessageRepository) *MessageRetrievalService {
	return &MessageRetrievalService{log: log, repository: repository, validate: validator.New()}
}

type sessionQueryRule struct {
	SessionID string `validate:"required"`
	Limit     int    `validate:"min=1,max=1000"`
	Offset    int    `validate:"min=0"`
	Sender    string `validate:"omitempty,oneof=user system"`
}

// FindBySession returns one page of the session in insertion order.
// An empty page is not an error.
func (s *MessageRetrievalService) FindBySession(ctx context.Context, query domain.SessionQuery) ([]domain.ProcessedMessage, error) {
	rule := sessionQueryRule{SessionID: query.SessionID, Limit: query.Limit, Offset: query.Offset}
	if query.Sender != nil {
		rule.Sender = query.Sender.String()
	}
	if err := s.validate.Struct(rule); err != nil {
		return nil, errors.Validation(err.Error())
	}

	messages, err := s.repository.FindBySession(ctx, query)
	if err != nil {
		s.log.Error("Session retrieval failed", "session_id", query.SessionID, "error", err)
		return nil, err
	}
	s.log.Debug("Session retrieved", "session_id", query.SessionID, "count", len(messages))
	return messages, nil
}
