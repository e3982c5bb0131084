package service

import (
	"context"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/repository"

	"github.com/google/uuid"
)

// MentorService runs the AI mentor chat thread. Both sides of the
// conversation are persisted so the thread survives sessions and the model
// sees its own prior answers.
type MentorService interface {
	SendMessage(ctx context.Context, userAccountID uuid.UUID, content string) (*model.ChatMessage, error)
	ListMessages(userAccountID uuid.UUID) ([]model.ChatMessage, error)
}

type mentorServiceHandler struct {
	ChatMessageRepository repository.ChatMessageRepository
	GptRepository         repository.GptRepository
}

func NewMentorService(
	chatMessageRepository repository.ChatMessageRepository,
	gptRepository repository.GptRepository,
) MentorService {
	return mentorServiceHandler{
		ChatMessageRepository: chatMessageRepository,
		GptRepository:         gptRepository,
	}
}

func (h mentorServiceHandler) SendMessage(ctx context.Context, userAccountID uuid.UUID, content string) (*model.ChatMessage, error) {
	history, err := h.ChatMessageRepository.List(userAccountID)
	if err != nil {
		return nil, err
	}

	_, err = h.ChatMessageRepository.Add(model.ChatMessage{
		UserAccountID: userAccountID,
		Role:          "user",
		Content:       content,
	})
	if err != nil {
		return nil, err
	}

	reply, err := h.GptRepository.GetMentorReply(ctx, history, content)
	if err != nil {
		return nil, err
	}

	return h.ChatMessageRepository.Add(model.ChatMessage{
		UserAccountID: userAccountID,
		Role:          "assistant",
		Content:       reply,
	})
}

func (h mentorServiceHandler) ListMessages(userAccountID uuid.UUID) ([]model.ChatMessage, error) {
	return h.ChatMessageRepository.List(userAccountID)
}
