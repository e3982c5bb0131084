package repository

import (
	"database/sql"
	"fmt"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/db/models/postgres/public/table"
)

type PostRepository interface {
	Add(p model.Post) (*model.Post, error)
	List() ([]model.Post, error)
}

type postRepositoryHandler struct {
	Db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return postRepositoryHandler{Db: db}
}

func (h postRepositoryHandler) Add(p model.Post) (*model.Post, error) {
	p.CreatedAt = time.Now().UTC()
	query := table.Post.
		INSERT(table.Post.MutableColumns).
		MODEL(p).
		RETURNING(table.Post.AllColumns)

	out := model.Post{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return &out, nil
}

func (h postRepositoryHandler) List() ([]model.Post, error) {
	query := table.Post.
		SELECT(table.Post.AllColumns).
		ORDER_BY(table.Post.CreatedAt.DESC())

	out := []model.Post{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return out, nil
}
