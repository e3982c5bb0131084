package service

import (
	"errors"
	"fmt"
	"testing"

	"papertrade/internal/domain"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func Test_isTransient(t *testing.T) {
	t.Run("serialization, deadlock and unique-violation codes are transient", func(t *testing.T) {
		require.True(t, isTransient(&pq.Error{Code: "40001"}))
		require.True(t, isTransient(&pq.Error{Code: "40P01"}))
		require.True(t, isTransient(&pq.Error{Code: "23505"}))
	})

	t.Run("wrapped pq errors are still classified", func(t *testing.T) {
		err := fmt.Errorf("failed to insert portfolio: %w", &pq.Error{Code: "40001"})
		require.True(t, isTransient(err))
	})

	t.Run("other pq codes are not transient", func(t *testing.T) {
		require.False(t, isTransient(&pq.Error{Code: "42601"}))
		require.False(t, isTransient(&pq.Error{Code: "23503"}))
	})

	t.Run("non-pq errors are not transient", func(t *testing.T) {
		require.False(t, isTransient(errors.New("connection refused")))
		require.False(t, isTransient(domain.ErrInsufficientFunds))
		require.False(t, isTransient(nil))
	})
}

func Test_withRetry(t *testing.T) {
	serializationFailure := &pq.Error{Code: "40001"}

	t.Run("success runs exactly once", func(t *testing.T) {
		attempts := 0
		err := withRetry(func() error {
			attempts++
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 1, attempts)
	})

	t.Run("transient failure is retried and can succeed", func(t *testing.T) {
		attempts := 0
		err := withRetry(func() error {
			attempts++
			if attempts == 1 {
				return serializationFailure
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 2, attempts)
	})

	t.Run("transient failure on the retry surfaces ErrStoreUnavailable", func(t *testing.T) {
		attempts := 0
		err := withRetry(func() error {
			attempts++
			return serializationFailure
		})
		require.ErrorIs(t, err, domain.ErrStoreUnavailable)
		require.Equal(t, 2, attempts)
	})

	t.Run("business errors pass through without a retry", func(t *testing.T) {
		attempts := 0
		err := withRetry(func() error {
			attempts++
			return domain.ErrInsufficientShares
		})
		require.ErrorIs(t, err, domain.ErrInsufficientShares)
		require.Equal(t, 1, attempts)
	})

	t.Run("non-transient store errors pass through without a retry", func(t *testing.T) {
		attempts := 0
		boom := errors.New("connection refused")
		err := withRetry(func() error {
			attempts++
			return boom
		})
		require.ErrorIs(t, err, boom)
		require.Equal(t, 1, attempts)
	})
}
