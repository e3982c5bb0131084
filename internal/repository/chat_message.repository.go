package repository

import (
	"database/sql"
	"fmt"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type ChatMessageRepository interface {
	Add(m model.ChatMessage) (*model.ChatMessage, error)
	List(userAccountID uuid.UUID) ([]model.ChatMessage, error)
}

type chatMessageRepositoryHandler struct {
	Db *sql.DB
}

func NewChatMessageRepository(db *sql.DB) ChatMessageRepository {
	return chatMessageRepositoryHandler{Db: db}
}

func (h chatMessageRepositoryHandler) Add(m model.ChatMessage) (*model.ChatMessage, error) {
	m.CreatedAt = time.Now().UTC()
	query := table.ChatMessage.
		INSERT(table.ChatMessage.MutableColumns).
		MODEL(m).
		RETURNING(table.ChatMessage.AllColumns)

	out := model.ChatMessage{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert chat message: %w", err)
	}

	return &out, nil
}

func (h chatMessageRepositoryHandler) List(userAccountID uuid.UUID) ([]model.ChatMessage, error) {
	query := table.ChatMessage.
		SELECT(table.ChatMessage.AllColumns).
		WHERE(table.ChatMessage.UserAccountID.EQ(postgres.UUID(userAccountID))).
		ORDER_BY(table.ChatMessage.CreatedAt.ASC())

	out := []model.ChatMessage{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}

	return out, nil
}
