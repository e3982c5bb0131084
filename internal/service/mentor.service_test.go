package service

import (
	"context"
	"testing"

	"papertrade/internal/db/models/postgres/public/model"
	mock_repository "papertrade/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMentorService_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chatMessageRepository := mock_repository.NewMockChatMessageRepository(ctrl)
	gptRepository := mock_repository.NewMockGptRepository(ctrl)

	handler := NewMentorService(chatMessageRepository, gptRepository)

	userAccountID := uuid.New()
	history := []model.ChatMessage{
		{UserAccountID: userAccountID, Role: "user", Content: "what is cost basis?"},
		{UserAccountID: userAccountID, Role: "assistant", Content: "what you paid on average per share"},
	}

	chatMessageRepository.EXPECT().
		List(userAccountID).
		Return(history, nil)

	chatMessageRepository.EXPECT().
		Add(model.ChatMessage{
			UserAccountID: userAccountID,
			Role:          "user",
			Content:       "should I diversify?",
		}).
		Return(&model.ChatMessage{}, nil)

	gptRepository.EXPECT().
		GetMentorReply(gomock.Any(), history, "should I diversify?").
		Return("spreading across holdings lowers single-stock risk", nil)

	chatMessageRepository.EXPECT().
		Add(model.ChatMessage{
			UserAccountID: userAccountID,
			Role:          "assistant",
			Content:       "spreading across holdings lowers single-stock risk",
		}).
		Return(&model.ChatMessage{
			UserAccountID: userAccountID,
			Role:          "assistant",
			Content:       "spreading across holdings lowers single-stock risk",
		}, nil)

	out, err := handler.SendMessage(context.Background(), userAccountID, "should I diversify?")
	require.NoError(t, err)
	require.Equal(t, "assistant", out.Role)
	require.Equal(t, "spreading across holdings lowers single-stock risk", out.Content)
}
