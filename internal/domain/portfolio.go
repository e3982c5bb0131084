package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultStartingBalance is the simulated cash every new portfolio opens with.
var DefaultStartingBalance = decimal.NewFromInt(10_000_000)

type Portfolio struct {
	PortfolioID   uuid.UUID
	UserAccountID uuid.UUID
	Balance       decimal.Decimal
	Holdings      []Holding
}

// Holding is an aggregated position in one symbol. AveragePrice is the
// volume-weighted cost basis across all buys still held.
type Holding struct {
	Symbol       string
	Name         string
	Quantity     decimal.Decimal
	AveragePrice decimal.Decimal
}

func (h Holding) CostBasis() decimal.Decimal {
	return h.Quantity.Mul(h.AveragePrice)
}

// TradeResult is the post-commit state returned from a buy or sell.
// RealizedGain is only set on sells and is computed on demand as
// quantity * (price - averagePrice); it is not persisted.
type TradeResult struct {
	Portfolio    *Portfolio
	Symbol       string
	Quantity     decimal.Decimal
	Price        decimal.Decimal
	Total        decimal.Decimal
	RealizedGain *decimal.Decimal
}

type HoldingValuation struct {
	Symbol         string
	Name           string
	Quantity       decimal.Decimal
	AveragePrice   decimal.Decimal
	CurrentPrice   decimal.Decimal
	MarketValue    decimal.Decimal
	UnrealizedGain decimal.Decimal
}

type PortfolioValuation struct {
	Cash          decimal.Decimal
	HoldingsValue decimal.Decimal
	TotalValue    decimal.Decimal
	Holdings      []HoldingValuation
}

type Quote struct {
	Symbol string
	Name   string
	Price  decimal.Decimal
}

type PriceBar struct {
	Date  string
	Close decimal.Decimal
}

type NewsArticle struct {
	Title       string
	URL         string
	Source      string
	Summary     string
	PublishedAt string
}
