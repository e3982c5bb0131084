package repository

import (
	"context"
	"fmt"

	"papertrade/internal/db/models/postgres/public/model"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	GetMentorReply(ctx context.Context, history []model.ChatMessage, message string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const mentorPrompt = `
You are a friendly investing mentor inside an educational stock-market simulation. The user trades with simulated money only. Explain concepts like diversification, cost basis, and risk in plain language. Keep answers short and practical. Never give real financial advice, never recommend specific real-world trades, and remind the user this is a simulation if they ask about investing real money.
`

func (h gptRepositoryHandler) GetMentorReply(ctx context.Context, history []model.ChatMessage, message string) (string, error) {
	messages := []chatgpt.ChatMessage{
		{
			Role:    chatgpt.ChatGPTModelRoleSystem,
			Content: mentorPrompt,
		},
	}
	for _, m := range history {
		role := chatgpt.ChatGPTModelRoleUser
		if m.Role == "assistant" {
			role = chatgpt.ChatGPTModelRoleAssistant
		}
		messages = append(messages, chatgpt.ChatMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	messages = append(messages, chatgpt.ChatMessage{
		Role:    chatgpt.ChatGPTModelRoleUser,
		Content: message,
	})

	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model:    chatgpt.GPT35Turbo,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get mentor reply: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("failed to get mentor reply: no choices returned")
	}

	return res.Choices[0].Message.Content, nil
}
