package services

import (
	"context"
	"log/slog"
	"testing"

	"chat-screener/domain"
	"chat-screener/errors"
	"chat-screener/mocks"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMessageRetrievalService_FindBySession(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIMessageRepository(ctrl)
	query := domain.SessionQuery{SessionID: "session-abc", Limit: 2, Offset: 0, Sender: lo.ToPtr(domain.SenderUser)}
	expected := []domain.ProcessedMessage{
		{Message: newMessage("uno"), Status: domain.StatusSuccess},
	}
	repository.EXPECT().FindBySession(gomock.Any(), query).Return(expected, nil)
	service := NewMessageRetrievalService(slog.Default(), repository)

	messages, err := service.FindBySession(context.Background(), query)

	req.NoError(err)
	req.Equal(expected, messages)
}

func TestMessageRetrievalService_FindBySession_Empty_Is_Not_An_Error(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIMessageRepository(ctrl)
	repository.EXPECT().FindBySession(gomock.Any(), gomock.Any()).Return([]domain.ProcessedMessage{}, nil)
	service := NewMessageRetrievalService(slog.Default(), repository)

	messages, err := service.FindBySession(context.Background(), domain.SessionQuery{SessionID: "nobody", Limit: DefaultLimit})

	req.NoError(err)
	req.Empty(messages)
}

func TestMessageRetrievalService_FindBySession_Invalid_Query(t *testing.T) {
	tests := []struct {
		name  string
		query domain.SessionQuery
	}{
		{"Missing session", domain.SessionQuery{Limit: 10}},
		{"Zero limit", domain.SessionQuery{SessionID: "s", Limit: 0}},
		{"Limit too high", domain.SessionQuery{SessionID: "s", Limit: MaxLimit + 1}},
		{"Negative offset", domain.SessionQuery{SessionID: "s", Limit: 10, Offset: -1}},
		{"Unknown sender", domain.SessionQuery{SessionID: "s", Limit: 10, Sender: lo.ToPtr(domain.Sender("admin"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			repository := mocks.NewMockIMessageRepository(ctrl)
			repository.EXPECT().FindBySession(gomock.Any(), gomock.Any()).Times(0)
			service := NewMessageRetrievalService(slog.Default(), repository)

			_, err := service.FindBySession(context.Background(), tt.query)

			req.ErrorIs(err, errors.ErrValidation)
		})
	}
}

func TestMessageRetrievalService_FindBySession_Storage_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIMessageRepository(ctrl)
	repository.EXPECT().FindBySession(gomock.Any(), gomock.Any()).
		Return(nil, errors.StorageUnavailable("failed to retrieve session messages", nil))
	service := NewMessageRetrievalService(slog.Default(), repository)

	_, err := service.FindBySession(context.Background(), domain.SessionQuery{SessionID: "s", Limit: 10})

	req.ErrorIs(err, errors.ErrStorageUnavailable)
}
