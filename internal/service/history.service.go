package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"papertrade/internal/repository"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type HistoryService interface {
	GetHistory(ctx context.Context, userAccountID uuid.UUID) (*GetHistoryResult, error)
}

type GetHistoryResult struct {
	Points []HistoryPoint
	// Volatility is the standard deviation of point-to-point balance
	// returns; nil until there are at least three snapshots.
	Volatility *float64
}

type HistoryPoint struct {
	Balance    decimal.Decimal
	TotalValue *decimal.Decimal
	Time       time.Time
}

type historyServiceHandler struct {
	Db                  *sql.DB
	PortfolioRepository repository.PortfolioRepository
	SnapshotRepository  repository.PortfolioSnapshotRepository
}

func NewHistoryService(
	db *sql.DB,
	portfolioRepository repository.PortfolioRepository,
	snapshotRepository repository.PortfolioSnapshotRepository,
) HistoryService {
	return historyServiceHandler{
		Db:                  db,
		PortfolioRepository: portfolioRepository,
		SnapshotRepository:  snapshotRepository,
	}
}

func (h historyServiceHandler) GetHistory(ctx context.Context, userAccountID uuid.UUID) (*GetHistoryResult, error) {
	p, err := h.PortfolioRepository.GetByUserAccountID(nil, userAccountID)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			// no portfolio yet means no history, not a failure
			return &GetHistoryResult{Points: []HistoryPoint{}}, nil
		}
		return nil, err
	}

	snapshots, err := h.SnapshotRepository.List(p.PortfolioID)
	if err != nil {
		return nil, err
	}

	points := []HistoryPoint{}
	for _, s := range snapshots {
		points = append(points, HistoryPoint{
			Balance:    s.Balance,
			TotalValue: s.TotalValue,
			Time:       s.CreatedAt,
		})
	}

	return &GetHistoryResult{
		Points:     points,
		Volatility: balanceVolatility(points),
	}, nil
}

func balanceVolatility(points []HistoryPoint) *float64 {
	if len(points) < 3 {
		return nil
	}

	returns := []float64{}
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Balance
		if prev.IsZero() {
			continue
		}
		r := points[i].Balance.Sub(prev).Div(prev)
		returns = append(returns, r.InexactFloat64())
	}
	if len(returns) < 2 {
		return nil
	}

	stdev, err := stats.StandardDeviation(returns)
	if err != nil {
		return nil
	}
	return &stdev
}
