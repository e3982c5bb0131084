package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_balanceVolatility(t *testing.T) {
	point := func(balance int64) HistoryPoint {
		return HistoryPoint{
			Balance: decimal.NewFromInt(balance),
			Time:    time.Now(),
		}
	}

	t.Run("nil under three points", func(t *testing.T) {
		require.Nil(t, balanceVolatility(nil))
		require.Nil(t, balanceVolatility([]HistoryPoint{point(100), point(110)}))
	})

	t.Run("flat balance has zero volatility", func(t *testing.T) {
		out := balanceVolatility([]HistoryPoint{point(100), point(100), point(100)})
		require.NotNil(t, out)
		require.Equal(t, float64(0), *out)
	})

	t.Run("swinging balance has positive volatility", func(t *testing.T) {
		out := balanceVolatility([]HistoryPoint{point(100), point(150), point(90), point(140)})
		require.NotNil(t, out)
		require.Greater(t, *out, float64(0))
	})

	t.Run("zero balances are skipped, not divided by", func(t *testing.T) {
		require.Nil(t, balanceVolatility([]HistoryPoint{point(0), point(0), point(100)}))
	})
}
