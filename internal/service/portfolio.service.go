package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/domain"
	"papertrade/internal/repository"
	"papertrade/internal/util"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PortfolioService is the virtual trading engine. Every mutating operation
// runs as one transaction with the portfolio row locked up front, so a
// balance or share check can never pass against a snapshot another request
// is about to invalidate.
type PortfolioService interface {
	GetPortfolio(ctx context.Context, userAccountID uuid.UUID) (*domain.Portfolio, error)
	Buy(ctx context.Context, userAccountID uuid.UUID, input BuyInput) (*domain.TradeResult, error)
	Sell(ctx context.Context, userAccountID uuid.UUID, input SellInput) (*domain.TradeResult, error)
	Reset(ctx context.Context, userAccountID uuid.UUID) (*domain.Portfolio, error)
	Valuation(ctx context.Context, userAccountID uuid.UUID) (*domain.PortfolioValuation, error)
}

type BuyInput struct {
	Symbol   string
	Name     string
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

type SellInput struct {
	Symbol   string
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

type portfolioServiceHandler struct {
	Db                    *sql.DB
	PortfolioRepository   repository.PortfolioRepository
	HoldingRepository     repository.HoldingRepository
	TransactionRepository repository.TransactionRepository
	SnapshotRepository    repository.PortfolioSnapshotRepository
	QuoteRepository       repository.QuoteRepository
}

func NewPortfolioService(
	db *sql.DB,
	portfolioRepository repository.PortfolioRepository,
	holdingRepository repository.HoldingRepository,
	transactionRepository repository.TransactionRepository,
	snapshotRepository repository.PortfolioSnapshotRepository,
	quoteRepository repository.QuoteRepository,
) PortfolioService {
	return portfolioServiceHandler{
		Db:                    db,
		PortfolioRepository:   portfolioRepository,
		HoldingRepository:     holdingRepository,
		TransactionRepository: transactionRepository,
		SnapshotRepository:    snapshotRepository,
		QuoteRepository:       quoteRepository,
	}
}

// buyTransition is the computed end state of a buy before anything is
// written. averagePrice is the volume-weighted cost basis across the
// existing position and the new lot.
type buyTransition struct {
	NewBalance  decimal.Decimal
	NewQuantity decimal.Decimal
	NewAverage  decimal.Decimal
	Cost        decimal.Decimal
}

func applyBuy(balance decimal.Decimal, existing *model.Holding, input BuyInput) (*buyTransition, error) {
	if input.Quantity.LessThanOrEqual(decimal.Zero) || input.Price.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	cost := input.Quantity.Mul(input.Price)
	if cost.GreaterThan(balance) {
		return nil, domain.ErrInsufficientFunds
	}

	newQuantity := input.Quantity
	newAverage := input.Price
	if existing != nil {
		newQuantity = existing.Quantity.Add(input.Quantity)
		newAverage = existing.Quantity.Mul(existing.AveragePrice).Add(cost).Div(newQuantity)
	}

	return &buyTransition{
		NewBalance:  balance.Sub(cost),
		NewQuantity: newQuantity,
		NewAverage:  newAverage,
		Cost:        cost,
	}, nil
}

type sellTransition struct {
	NewBalance    decimal.Decimal
	NewQuantity   decimal.Decimal
	Proceeds      decimal.Decimal
	RealizedGain  decimal.Decimal
	RemoveHolding bool
}

// applySell leaves the cost basis untouched on partial sells; realized
// gain/loss is quantity * (price - averagePrice), derived, never stored.
func applySell(balance decimal.Decimal, existing *model.Holding, input SellInput) (*sellTransition, error) {
	if input.Quantity.LessThanOrEqual(decimal.Zero) || input.Price.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if existing == nil {
		return nil, domain.ErrHoldingNotFound
	}
	if input.Quantity.GreaterThan(existing.Quantity) {
		return nil, domain.ErrInsufficientShares
	}

	proceeds := input.Quantity.Mul(input.Price)
	newQuantity := existing.Quantity.Sub(input.Quantity)

	return &sellTransition{
		NewBalance:    balance.Add(proceeds),
		NewQuantity:   newQuantity,
		Proceeds:      proceeds,
		RealizedGain:  input.Quantity.Mul(input.Price.Sub(existing.AveragePrice)),
		RemoveHolding: newQuantity.IsZero(),
	}, nil
}

func (h portfolioServiceHandler) GetPortfolio(ctx context.Context, userAccountID uuid.UUID) (*domain.Portfolio, error) {
	var out *domain.Portfolio
	err := runInTx(h.Db, func(tx *sql.Tx) error {
		p, err := h.getOrCreate(tx, userAccountID, false)
		if err != nil {
			return err
		}
		holdings, err := h.HoldingRepository.List(tx, p.PortfolioID)
		if err != nil {
			return err
		}
		out = toDomainPortfolio(p, holdings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (h portfolioServiceHandler) Buy(ctx context.Context, userAccountID uuid.UUID, input BuyInput) (*domain.TradeResult, error) {
	var result *domain.TradeResult
	err := runInTx(h.Db, func(tx *sql.Tx) error {
		p, err := h.getOrCreate(tx, userAccountID, true)
		if err != nil {
			return err
		}

		existing, err := h.getHolding(tx, p.PortfolioID, input.Symbol)
		if err != nil {
			return err
		}

		transition, err := applyBuy(p.Balance, existing, input)
		if err != nil {
			return err
		}

		name := input.Name
		if name == "" && existing != nil {
			name = existing.Name
		}

		updated, err := h.PortfolioRepository.UpdateBalance(tx, p.PortfolioID, transition.NewBalance)
		if err != nil {
			return err
		}

		_, err = h.HoldingRepository.Upsert(tx, model.Holding{
			PortfolioID:  p.PortfolioID,
			Symbol:       input.Symbol,
			Name:         name,
			Quantity:     transition.NewQuantity,
			AveragePrice: transition.NewAverage,
		})
		if err != nil {
			return err
		}

		_, err = h.TransactionRepository.Add(tx, model.Transaction{
			PortfolioID: p.PortfolioID,
			Type:        model.TransactionType_Buy,
			Symbol:      input.Symbol,
			Name:        name,
			Quantity:    input.Quantity,
			Price:       input.Price,
			Total:       transition.Cost,
		})
		if err != nil {
			return err
		}

		if err := h.addSnapshot(tx, p.PortfolioID, transition.NewBalance); err != nil {
			return err
		}

		holdings, err := h.HoldingRepository.List(tx, p.PortfolioID)
		if err != nil {
			return err
		}

		result = &domain.TradeResult{
			Portfolio: toDomainPortfolio(updated, holdings),
			Symbol:    input.Symbol,
			Quantity:  input.Quantity,
			Price:     input.Price,
			Total:     transition.Cost,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (h portfolioServiceHandler) Sell(ctx context.Context, userAccountID uuid.UUID, input SellInput) (*domain.TradeResult, error) {
	var result *domain.TradeResult
	err := runInTx(h.Db, func(tx *sql.Tx) error {
		p, err := h.getOrCreate(tx, userAccountID, true)
		if err != nil {
			return err
		}

		existing, err := h.getHolding(tx, p.PortfolioID, input.Symbol)
		if err != nil {
			return err
		}

		transition, err := applySell(p.Balance, existing, input)
		if err != nil {
			return err
		}

		updated, err := h.PortfolioRepository.UpdateBalance(tx, p.PortfolioID, transition.NewBalance)
		if err != nil {
			return err
		}

		if transition.RemoveHolding {
			if err := h.HoldingRepository.Delete(tx, existing.HoldingID); err != nil {
				return err
			}
		} else {
			_, err = h.HoldingRepository.Upsert(tx, model.Holding{
				PortfolioID:  p.PortfolioID,
				Symbol:       existing.Symbol,
				Name:         existing.Name,
				Quantity:     transition.NewQuantity,
				AveragePrice: existing.AveragePrice,
			})
			if err != nil {
				return err
			}
		}

		_, err = h.TransactionRepository.Add(tx, model.Transaction{
			PortfolioID: p.PortfolioID,
			Type:        model.TransactionType_Sell,
			Symbol:      existing.Symbol,
			Name:        existing.Name,
			Quantity:    input.Quantity,
			Price:       input.Price,
			Total:       transition.Proceeds,
		})
		if err != nil {
			return err
		}

		if err := h.addSnapshot(tx, p.PortfolioID, transition.NewBalance); err != nil {
			return err
		}

		holdings, err := h.HoldingRepository.List(tx, p.PortfolioID)
		if err != nil {
			return err
		}

		realized := transition.RealizedGain
		result = &domain.TradeResult{
			Portfolio:    toDomainPortfolio(updated, holdings),
			Symbol:       input.Symbol,
			Quantity:     input.Quantity,
			Price:        input.Price,
			Total:        transition.Proceeds,
			RealizedGain: &realized,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Reset is the sandbox "start over": wipe holdings, ledger and chart
// history, restore the starting balance. Irreversible.
func (h portfolioServiceHandler) Reset(ctx context.Context, userAccountID uuid.UUID) (*domain.Portfolio, error) {
	var out *domain.Portfolio
	err := runInTx(h.Db, func(tx *sql.Tx) error {
		p, err := h.getOrCreate(tx, userAccountID, true)
		if err != nil {
			return err
		}

		if err := h.HoldingRepository.DeleteAll(tx, p.PortfolioID); err != nil {
			return err
		}
		if err := h.TransactionRepository.DeleteAll(tx, p.PortfolioID); err != nil {
			return err
		}
		if err := h.SnapshotRepository.DeleteAll(tx, p.PortfolioID); err != nil {
			return err
		}

		updated, err := h.PortfolioRepository.UpdateBalance(tx, p.PortfolioID, domain.DefaultStartingBalance)
		if err != nil {
			return err
		}

		if err := h.addSnapshot(tx, p.PortfolioID, domain.DefaultStartingBalance); err != nil {
			return err
		}

		out = toDomainPortfolio(updated, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Valuation prices current holdings with live quotes. The quote provider is
// outside the atomicity boundary, so this is a best-effort read, not part
// of any trade.
func (h portfolioServiceHandler) Valuation(ctx context.Context, userAccountID uuid.UUID) (*domain.PortfolioValuation, error) {
	p, err := h.GetPortfolio(ctx, userAccountID)
	if err != nil {
		return nil, err
	}

	valuation := &domain.PortfolioValuation{
		Cash:          p.Balance,
		HoldingsValue: decimal.Zero,
		Holdings:      []domain.HoldingValuation{},
	}

	for _, holding := range p.Holdings {
		q, err := h.QuoteRepository.Get(holding.Symbol)
		if err != nil {
			return nil, err
		}
		marketValue := holding.Quantity.Mul(q.Price)
		valuation.Holdings = append(valuation.Holdings, domain.HoldingValuation{
			Symbol:         holding.Symbol,
			Name:           holding.Name,
			Quantity:       holding.Quantity,
			AveragePrice:   holding.AveragePrice,
			CurrentPrice:   q.Price,
			MarketValue:    marketValue,
			UnrealizedGain: marketValue.Sub(holding.CostBasis()),
		})
		valuation.HoldingsValue = valuation.HoldingsValue.Add(marketValue)
	}

	valuation.TotalValue = valuation.Cash.Add(valuation.HoldingsValue)

	// record the priced total so the history chart has market-value points,
	// not just cash; a failed write shouldn't fail the read
	_, err = h.SnapshotRepository.Add(nil, model.PortfolioSnapshot{
		PortfolioID: p.PortfolioID,
		Balance:     p.Balance,
		TotalValue:  util.DecimalPointer(valuation.TotalValue),
	})
	if err != nil {
		zap.S().Warnf("failed to record valuation snapshot: %v", err)
	}

	return valuation, nil
}

func (h portfolioServiceHandler) getOrCreate(tx *sql.Tx, userAccountID uuid.UUID, forUpdate bool) (*model.Portfolio, error) {
	var (
		p   *model.Portfolio
		err error
	)
	if forUpdate {
		p, err = h.PortfolioRepository.GetByUserAccountIDForUpdate(tx, userAccountID)
	} else {
		p, err = h.PortfolioRepository.GetByUserAccountID(tx, userAccountID)
	}
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}

	return h.PortfolioRepository.Create(tx, model.Portfolio{
		UserAccountID: userAccountID,
		Balance:       domain.DefaultStartingBalance,
	})
}

func (h portfolioServiceHandler) getHolding(tx *sql.Tx, portfolioID uuid.UUID, symbol string) (*model.Holding, error) {
	holding, err := h.HoldingRepository.GetBySymbol(tx, portfolioID, symbol)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get holding %s: %w", symbol, err)
	}
	return holding, nil
}

func (h portfolioServiceHandler) addSnapshot(tx *sql.Tx, portfolioID uuid.UUID, balance decimal.Decimal) error {
	_, err := h.SnapshotRepository.Add(tx, model.PortfolioSnapshot{
		PortfolioID: portfolioID,
		Balance:     balance,
	})
	return err
}

func toDomainPortfolio(p *model.Portfolio, holdings []model.Holding) *domain.Portfolio {
	out := &domain.Portfolio{
		PortfolioID:   p.PortfolioID,
		UserAccountID: p.UserAccountID,
		Balance:       p.Balance,
		Holdings:      []domain.Holding{},
	}
	for _, h := range holdings {
		out.Holdings = append(out.Holdings, domain.Holding{
			Symbol:       h.Symbol,
			Name:         h.Name,
			Quantity:     h.Quantity,
			AveragePrice: h.AveragePrice,
		})
	}
	return out
}
