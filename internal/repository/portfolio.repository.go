package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PortfolioRepository interface {
	GetByUserAccountID(tx *sql.Tx, userAccountID uuid.UUID) (*model.Portfolio, error)
	// GetByUserAccountIDForUpdate locks the portfolio row until the
	// surrounding tx commits, so concurrent buys/sells on the same
	// portfolio serialize instead of both reading a stale balance.
	GetByUserAccountIDForUpdate(tx *sql.Tx, userAccountID uuid.UUID) (*model.Portfolio, error)
	Create(tx *sql.Tx, p model.Portfolio) (*model.Portfolio, error)
	UpdateBalance(tx *sql.Tx, portfolioID uuid.UUID, balance decimal.Decimal) (*model.Portfolio, error)
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

func (h portfolioRepositoryHandler) getByUserAccountID(tx *sql.Tx, userAccountID uuid.UUID, forUpdate bool) (*model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(table.Portfolio.UserAccountID.EQ(postgres.UUID(userAccountID)))

	if forUpdate {
		query = query.FOR(postgres.UPDATE())
	}

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get portfolio for user %s: %w", userAccountID.String(), err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) GetByUserAccountID(tx *sql.Tx, userAccountID uuid.UUID) (*model.Portfolio, error) {
	return h.getByUserAccountID(tx, userAccountID, false)
}

func (h portfolioRepositoryHandler) GetByUserAccountIDForUpdate(tx *sql.Tx, userAccountID uuid.UUID) (*model.Portfolio, error) {
	if tx == nil {
		return nil, fmt.Errorf("failed to lock portfolio: requires a transaction")
	}
	return h.getByUserAccountID(tx, userAccountID, true)
}

func (h portfolioRepositoryHandler) Create(tx *sql.Tx, p model.Portfolio) (*model.Portfolio, error) {
	p.CreatedAt = time.Now().UTC()
	query := table.Portfolio.
		INSERT(table.Portfolio.MutableColumns).
		MODEL(p).
		RETURNING(table.Portfolio.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert portfolio: %w", err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) UpdateBalance(tx *sql.Tx, portfolioID uuid.UUID, balance decimal.Decimal) (*model.Portfolio, error) {
	if balance.IsNegative() {
		return nil, fmt.Errorf("failed to update portfolio balance: balance must be >= 0, got %s", balance.String())
	}

	now := time.Now().UTC()
	query := table.Portfolio.
		UPDATE(table.Portfolio.Balance, table.Portfolio.UpdatedAt).
		SET(balance, now).
		WHERE(table.Portfolio.PortfolioID.EQ(postgres.UUID(portfolioID))).
		RETURNING(table.Portfolio.AllColumns)

	out := model.Portfolio{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update portfolio balance: %w", err)
	}

	return &out, nil
}
