package calculator

import "github.com/shopspring/decimal"

// Base cash rewards per simultaneous line clear. The curve is deliberately
// convex: 2 lines pay 1.5x the single-line rate, 3 lines 2x, 4 lines 3x.
var lineRewardBase = map[int]int64{
	1: 50,
	2: 150,
	3: 300,
	4: 600,
}

var comboStep = decimal.New(1, -1) // 0.1

// CalculateLineReward maps a Tetris round outcome to a cash reward.
// Each combo step adds 10% on top of the base, uncapped, and the result is
// floored to a whole currency unit. Anything outside 1-4 cleared lines pays
// nothing regardless of combo.
func CalculateLineReward(linesCleared int, comboCount int) int64 {
	base, ok := lineRewardBase[linesCleared]
	if !ok || comboCount < 0 {
		return 0
	}

	multiplier := decimal.NewFromInt(1).Add(
		decimal.NewFromInt(int64(comboCount)).Mul(comboStep),
	)

	return decimal.NewFromInt(base).Mul(multiplier).Floor().IntPart()
}

// CalculateQuizReward pays a flat amount per correct answer. Scores outside
// 0..total pay nothing.
func CalculateQuizReward(correct int, total int) int64 {
	const perCorrect = 25
	if total <= 0 || correct < 0 || correct > total {
		return 0
	}
	return int64(correct) * perCorrect
}
