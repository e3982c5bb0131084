package repository

import (
	"database/sql"
	"fmt"
	"time"

	"papertrade/internal/db/models/postgres/public/enum"
	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// TransactionRepository is append-only except for DeleteAll, which exists
// solely for the sandbox portfolio reset. Ledger rows are never updated.
type TransactionRepository interface {
	Add(tx *sql.Tx, t model.Transaction) (*model.Transaction, error)
	List(filter TransactionListFilter) ([]model.Transaction, error)
	DeleteAll(tx *sql.Tx, portfolioID uuid.UUID) error
}

type TransactionListFilter struct {
	PortfolioID *uuid.UUID
	Type        *model.TransactionType
}

type transactionRepositoryHandler struct {
	Db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return transactionRepositoryHandler{Db: db}
}

func (h transactionRepositoryHandler) Add(tx *sql.Tx, t model.Transaction) (*model.Transaction, error) {
	t.CreatedAt = time.Now().UTC()
	query := table.Transaction.
		INSERT(table.Transaction.MutableColumns).
		MODEL(t).
		RETURNING(table.Transaction.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Transaction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return &out, nil
}

func (h transactionRepositoryHandler) List(filter TransactionListFilter) ([]model.Transaction, error) {
	query := table.Transaction.
		SELECT(table.Transaction.AllColumns).
		ORDER_BY(table.Transaction.CreatedAt.DESC())

	predicates := []postgres.BoolExpression{}
	if filter.PortfolioID != nil {
		predicates = append(predicates, table.Transaction.PortfolioID.EQ(postgres.UUID(*filter.PortfolioID)))
	}
	if filter.Type != nil {
		predicates = append(predicates, table.Transaction.Type.EQ(transactionTypeExpression(*filter.Type)))
	}
	if len(predicates) > 0 {
		expr := predicates[0]
		for _, p := range predicates[1:] {
			expr = expr.AND(p)
		}
		query = query.WHERE(expr)
	}

	out := []model.Transaction{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return out, nil
}

func transactionTypeExpression(t model.TransactionType) postgres.StringExpression {
	switch t {
	case model.TransactionType_Sell:
		return enum.TransactionType.Sell
	case model.TransactionType_Bonus:
		return enum.TransactionType.Bonus
	default:
		return enum.TransactionType.Buy
	}
}

func (h transactionRepositoryHandler) DeleteAll(tx *sql.Tx, portfolioID uuid.UUID) error {
	query := table.Transaction.
		DELETE().
		WHERE(table.Transaction.PortfolioID.EQ(postgres.UUID(portfolioID)))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}

	return nil
}
