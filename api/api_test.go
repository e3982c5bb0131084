package api

import (
	"fmt"
	"net/http"
	"testing"

	"papertrade/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_statusFromError(t *testing.T) {
	t.Run("business-rule sentinels map to client codes", func(t *testing.T) {
		require.Equal(t, http.StatusBadRequest, statusFromError(domain.ErrInvalidInput))
		require.Equal(t, http.StatusUnprocessableEntity, statusFromError(domain.ErrInsufficientFunds))
		require.Equal(t, http.StatusUnprocessableEntity, statusFromError(domain.ErrInsufficientShares))
		require.Equal(t, http.StatusNotFound, statusFromError(domain.ErrHoldingNotFound))
		require.Equal(t, http.StatusNotFound, statusFromError(domain.ErrSymbolNotFound))
	})

	t.Run("wrapped sentinels still map", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to sell AAPL: %w", domain.ErrInsufficientShares)
		require.Equal(t, http.StatusUnprocessableEntity, statusFromError(wrapped))
	})

	t.Run("infra errors map to server codes", func(t *testing.T) {
		require.Equal(t, http.StatusServiceUnavailable, statusFromError(domain.ErrStoreUnavailable))
		require.Equal(t, http.StatusBadGateway, statusFromError(domain.ErrQuoteUnavailable))
		require.Equal(t, http.StatusInternalServerError, statusFromError(fmt.Errorf("boom")))
	})
}
