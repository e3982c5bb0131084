package calculator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_CalculateLineReward(t *testing.T) {
	t.Run("base tiers without combo", func(t *testing.T) {
		require.Equal(t, int64(0), CalculateLineReward(0, 0))
		require.Equal(t, int64(50), CalculateLineReward(1, 0))
		require.Equal(t, int64(150), CalculateLineReward(2, 0))
		require.Equal(t, int64(300), CalculateLineReward(3, 0))
		require.Equal(t, int64(600), CalculateLineReward(4, 0))
	})

	t.Run("combo adds 10 percent per step", func(t *testing.T) {
		require.Equal(t, int64(720), CalculateLineReward(4, 2))
		require.Equal(t, int64(55), CalculateLineReward(1, 1))
		require.Equal(t, int64(195), CalculateLineReward(2, 3))
	})

	t.Run("combo is uncapped", func(t *testing.T) {
		// 600 * (1 + 10*0.1) = 1200
		require.Equal(t, int64(1200), CalculateLineReward(4, 10))
	})

	t.Run("no lines pays nothing regardless of combo", func(t *testing.T) {
		require.Equal(t, int64(0), CalculateLineReward(0, 5))
		require.Equal(t, int64(0), CalculateLineReward(5, 5))
		require.Equal(t, int64(0), CalculateLineReward(-1, 2))
	})

	t.Run("deterministic", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			require.Equal(t, int64(720), CalculateLineReward(4, 2))
		}
	})
}

func Test_CalculateQuizReward(t *testing.T) {
	require.Equal(t, int64(125), CalculateQuizReward(5, 10))
	require.Equal(t, int64(0), CalculateQuizReward(0, 10))
	require.Equal(t, int64(0), CalculateQuizReward(11, 10))
	require.Equal(t, int64(0), CalculateQuizReward(-1, 10))
	require.Equal(t, int64(0), CalculateQuizReward(1, 0))
}
