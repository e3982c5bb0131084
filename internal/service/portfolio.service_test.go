package service

import (
	"testing"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func Test_applyBuy(t *testing.T) {
	t.Run("first buy opens a position at the trade price", func(t *testing.T) {
		transition, err := applyBuy(decimal.NewFromInt(10_000), nil, BuyInput{
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(10),
			Price:    decimal.NewFromInt(100),
		})
		require.NoError(t, err)

		require.Equal(t, "9000", transition.NewBalance.String())
		require.Equal(t, "10", transition.NewQuantity.String())
		require.Equal(t, "100", transition.NewAverage.String())
		require.Equal(t, "1000", transition.Cost.String())
	})

	t.Run("second buy averages cost basis by volume", func(t *testing.T) {
		existing := &model.Holding{
			Symbol:       "AAPL",
			Quantity:     decimal.NewFromInt(10),
			AveragePrice: decimal.NewFromInt(100),
		}
		transition, err := applyBuy(decimal.NewFromInt(10_000), existing, BuyInput{
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(10),
			Price:    decimal.NewFromInt(200),
		})
		require.NoError(t, err)

		expected := &buyTransition{
			NewBalance:  decimal.NewFromInt(8000),
			NewQuantity: decimal.NewFromInt(20),
			NewAverage:  decimal.NewFromInt(150),
			Cost:        decimal.NewFromInt(2000),
		}
		require.Empty(t, cmp.Diff(expected, transition, decimalComparer))
	})

	t.Run("fractional quantities stay exact", func(t *testing.T) {
		transition, err := applyBuy(decimal.NewFromInt(1000), nil, BuyInput{
			Symbol:   "VOO",
			Quantity: decimal.RequireFromString("2.5"),
			Price:    decimal.RequireFromString("100.10"),
		})
		require.NoError(t, err)

		require.Equal(t, "250.25", transition.Cost.String())
		require.Equal(t, "749.75", transition.NewBalance.String())
	})

	t.Run("cost above balance is rejected", func(t *testing.T) {
		_, err := applyBuy(decimal.NewFromInt(999), nil, BuyInput{
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(10),
			Price:    decimal.NewFromInt(100),
		})
		require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("spending the entire balance is allowed", func(t *testing.T) {
		transition, err := applyBuy(decimal.NewFromInt(1000), nil, BuyInput{
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(10),
			Price:    decimal.NewFromInt(100),
		})
		require.NoError(t, err)
		require.True(t, transition.NewBalance.IsZero())
	})

	t.Run("non-positive quantity or price is invalid", func(t *testing.T) {
		_, err := applyBuy(decimal.NewFromInt(1000), nil, BuyInput{
			Symbol:   "AAPL",
			Quantity: decimal.Zero,
			Price:    decimal.NewFromInt(100),
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = applyBuy(decimal.NewFromInt(1000), nil, BuyInput{
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(1),
			Price:    decimal.NewFromInt(-5),
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func Test_applySell(t *testing.T) {
	existing := &model.Holding{
		Symbol:       "AAPL",
		Quantity:     decimal.NewFromInt(10),
		AveragePrice: decimal.NewFromInt(100),
	}

	t.Run("partial sell credits proceeds and keeps cost basis", func(t *testing.T) {
		transition, err := applySell(decimal.NewFromInt(500), existing, SellInput{
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(4),
			Price:    decimal.NewFromInt(150),
		})
		require.NoError(t, err)

		require.Equal(t, "1100", transition.NewBalance.String())
		require.Equal(t, "6", transition.NewQuantity.String())
		require.Equal(t, "600", transition.Proceeds.String())
		require.Equal(t, "200", transition.RealizedGain.String())
		require.False(t, transition.RemoveHolding)
	})

	t.Run("selling below cost basis realizes a loss", func(t *testing.T) {
		transition, err := applySell(decimal.Zero, existing, SellInput{
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(2),
			Price:    decimal.NewFromInt(80),
		})
		require.NoError(t, err)
		require.Equal(t, "-40", transition.RealizedGain.String())
	})

	t.Run("selling the full position removes the holding", func(t *testing.T) {
		transition, err := applySell(decimal.Zero, existing, SellInput{
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(10),
			Price:    decimal.NewFromInt(100),
		})
		require.NoError(t, err)
		require.True(t, transition.RemoveHolding)
		require.True(t, transition.NewQuantity.IsZero())
	})

	t.Run("selling more shares than held is rejected", func(t *testing.T) {
		_, err := applySell(decimal.Zero, existing, SellInput{
			Symbol:   "AAPL",
			Quantity: decimal.NewFromInt(11),
			Price:    decimal.NewFromInt(100),
		})
		require.ErrorIs(t, err, domain.ErrInsufficientShares)
	})

	t.Run("selling a symbol with no position is rejected", func(t *testing.T) {
		_, err := applySell(decimal.Zero, nil, SellInput{
			Symbol:   "TSLA",
			Quantity: decimal.NewFromInt(1),
			Price:    decimal.NewFromInt(100),
		})
		require.ErrorIs(t, err, domain.ErrHoldingNotFound)
	})

	t.Run("non-positive quantity or price is invalid", func(t *testing.T) {
		_, err := applySell(decimal.Zero, existing, SellInput{
			Symbol:   "AAPL",
			Quantity: decimal.Zero,
			Price:    decimal.NewFromInt(100),
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

// round-trip property: buying then selling everything at the same price
// restores the starting balance exactly, no drift from the averaging math
func Test_buySellRoundTrip(t *testing.T) {
	start := decimal.NewFromInt(1_000_000)

	buy, err := applyBuy(start, nil, BuyInput{
		Symbol:   "NVDA",
		Quantity: decimal.RequireFromString("3.7"),
		Price:    decimal.RequireFromString("876.54"),
	})
	require.NoError(t, err)

	held := &model.Holding{
		Symbol:       "NVDA",
		Quantity:     buy.NewQuantity,
		AveragePrice: buy.NewAverage,
	}
	sell, err := applySell(buy.NewBalance, held, SellInput{
		Symbol:   "NVDA",
		Quantity: buy.NewQuantity,
		Price:    decimal.RequireFromString("876.54"),
	})
	require.NoError(t, err)

	require.True(t, sell.NewBalance.Equal(start), "expected %s, got %s", start, sell.NewBalance)
	require.True(t, sell.RealizedGain.IsZero())
	require.True(t, sell.RemoveHolding)
}
