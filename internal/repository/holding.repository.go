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
	"github.com/shopspring/decimal"
)

type HoldingRepository interface {
	List(tx *sql.Tx, portfolioID uuid.UUID) ([]model.Holding, error)
	GetBySymbol(tx *sql.Tx, portfolioID uuid.UUID, symbol string) (*model.Holding, error)
	// Upsert inserts the holding, or on (portfolio_id, symbol) conflict
	// replaces quantity and average price. One row per symbol per portfolio.
	Upsert(tx *sql.Tx, h model.Holding) (*model.Holding, error)
	Delete(tx *sql.Tx, holdingID uuid.UUID) error
	DeleteAll(tx *sql.Tx, portfolioID uuid.UUID) error
}

type holdingRepositoryHandler struct {
	Db *sql.DB
}

func NewHoldingRepository(db *sql.DB) HoldingRepository {
	return holdingRepositoryHandler{Db: db}
}

func (h holdingRepositoryHandler) List(tx *sql.Tx, portfolioID uuid.UUID) ([]model.Holding, error) {
	query := table.Holding.
		SELECT(table.Holding.AllColumns).
		WHERE(table.Holding.PortfolioID.EQ(postgres.UUID(portfolioID))).
		ORDER_BY(table.Holding.Symbol.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := []model.Holding{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	return out, nil
}

func (h holdingRepositoryHandler) GetBySymbol(tx *sql.Tx, portfolioID uuid.UUID, symbol string) (*model.Holding, error) {
	query := table.Holding.
		SELECT(table.Holding.AllColumns).
		WHERE(
			table.Holding.PortfolioID.EQ(postgres.UUID(portfolioID)).
				AND(table.Holding.Symbol.EQ(postgres.String(symbol))),
		)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Holding{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (h holdingRepositoryHandler) Upsert(tx *sql.Tx, in model.Holding) (*model.Holding, error) {
	if in.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("failed to upsert holding: quantity must be > 0, got %s", in.Quantity.String())
	}

	now := time.Now().UTC()
	in.CreatedAt = now
	in.UpdatedAt = &now

	query := table.Holding.
		INSERT(table.Holding.MutableColumns).
		MODEL(in).
		ON_CONFLICT(table.Holding.PortfolioID, table.Holding.Symbol).
		DO_UPDATE(postgres.SET(
			table.Holding.Quantity.SET(table.Holding.EXCLUDED.Quantity),
			table.Holding.AveragePrice.SET(table.Holding.EXCLUDED.AveragePrice),
			table.Holding.UpdatedAt.SET(table.Holding.EXCLUDED.UpdatedAt),
		)).
		RETURNING(table.Holding.AllColumns)

	out := model.Holding{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert holding: %w", err)
	}

	return &out, nil
}

func (h holdingRepositoryHandler) Delete(tx *sql.Tx, holdingID uuid.UUID) error {
	query := table.Holding.
		DELETE().
		WHERE(table.Holding.HoldingID.EQ(postgres.UUID(holdingID)))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	return nil
}

func (h holdingRepositoryHandler) DeleteAll(tx *sql.Tx, portfolioID uuid.UUID) error {
	query := table.Holding.
		DELETE().
		WHERE(table.Holding.PortfolioID.EQ(postgres.UUID(portfolioID)))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete holdings: %w", err)
	}

	return nil
}
