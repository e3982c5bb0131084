package repository

import (
	"database/sql"
	"fmt"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type PortfolioSnapshotRepository interface {
	Add(tx *sql.Tx, s model.PortfolioSnapshot) (*model.PortfolioSnapshot, error)
	List(portfolioID uuid.UUID) ([]model.PortfolioSnapshot, error)
	DeleteAll(tx *sql.Tx, portfolioID uuid.UUID) error
}

type portfolioSnapshotRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioSnapshotRepository(db *sql.DB) PortfolioSnapshotRepository {
	return portfolioSnapshotRepositoryHandler{Db: db}
}

func (h portfolioSnapshotRepositoryHandler) Add(tx *sql.Tx, s model.PortfolioSnapshot) (*model.PortfolioSnapshot, error) {
	s.CreatedAt = time.Now().UTC()
	query := table.PortfolioSnapshot.
		INSERT(table.PortfolioSnapshot.MutableColumns).
		MODEL(s).
		RETURNING(table.PortfolioSnapshot.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.PortfolioSnapshot{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert portfolio snapshot: %w", err)
	}

	return &out, nil
}

func (h portfolioSnapshotRepositoryHandler) List(portfolioID uuid.UUID) ([]model.PortfolioSnapshot, error) {
	query := table.PortfolioSnapshot.
		SELECT(table.PortfolioSnapshot.AllColumns).
		WHERE(table.PortfolioSnapshot.PortfolioID.EQ(postgres.UUID(portfolioID))).
		ORDER_BY(table.PortfolioSnapshot.CreatedAt.ASC())

	out := []model.PortfolioSnapshot{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio snapshots: %w", err)
	}

	return out, nil
}

func (h portfolioSnapshotRepositoryHandler) DeleteAll(tx *sql.Tx, portfolioID uuid.UUID) error {
	query := table.PortfolioSnapshot.
		DELETE().
		WHERE(table.PortfolioSnapshot.PortfolioID.EQ(postgres.UUID(portfolioID)))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio snapshots: %w", err)
	}

	return nil
}
