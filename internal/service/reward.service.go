package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"papertrade/internal/calculator"
	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/domain"
	"papertrade/internal/repository"
	"papertrade/internal/util"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RewardService credits gamification payouts (Tetris line clears, quiz
// results) to the simulated cash balance. Credits go through the same
// locked-portfolio transaction as trades and land in the ledger as BONUS
// entries, so the audit trail stays complete.
type RewardService interface {
	GrantLineReward(ctx context.Context, userAccountID uuid.UUID, linesCleared int, comboCount int) (*GrantRewardResult, error)
	GrantQuizReward(ctx context.Context, userAccountID uuid.UUID, quizID string, correct int, total int) (*GrantRewardResult, error)
}

type GrantRewardResult struct {
	Amount     decimal.Decimal
	NewBalance decimal.Decimal
}

type rewardServiceHandler struct {
	Db                    *sql.DB
	PortfolioRepository   repository.PortfolioRepository
	TransactionRepository repository.TransactionRepository
	SnapshotRepository    repository.PortfolioSnapshotRepository
}

func NewRewardService(
	db *sql.DB,
	portfolioRepository repository.PortfolioRepository,
	transactionRepository repository.TransactionRepository,
	snapshotRepository repository.PortfolioSnapshotRepository,
) RewardService {
	return rewardServiceHandler{
		Db:                    db,
		PortfolioRepository:   portfolioRepository,
		TransactionRepository: transactionRepository,
		SnapshotRepository:    snapshotRepository,
	}
}

func (h rewardServiceHandler) GrantLineReward(ctx context.Context, userAccountID uuid.UUID, linesCleared int, comboCount int) (*GrantRewardResult, error) {
	if linesCleared < 0 || comboCount < 0 {
		return nil, domain.ErrInvalidInput
	}

	amount := calculator.CalculateLineReward(linesCleared, comboCount)
	note := fmt.Sprintf("tetris: %d lines, combo %d", linesCleared, comboCount)
	return h.credit(userAccountID, amount, "Tetris line-clear reward", note)
}

func (h rewardServiceHandler) GrantQuizReward(ctx context.Context, userAccountID uuid.UUID, quizID string, correct int, total int) (*GrantRewardResult, error) {
	if quizID == "" || correct < 0 || total <= 0 {
		return nil, domain.ErrInvalidInput
	}

	amount := calculator.CalculateQuizReward(correct, total)
	note := fmt.Sprintf("quiz %s: %d/%d correct", quizID, correct, total)
	return h.credit(userAccountID, amount, "Quiz reward", note)
}

func (h rewardServiceHandler) credit(userAccountID uuid.UUID, amount int64, name string, note string) (*GrantRewardResult, error) {
	credit := decimal.NewFromInt(amount)

	var result *GrantRewardResult
	err := runInTx(h.Db, func(tx *sql.Tx) error {
		p, err := h.getOrCreate(tx, userAccountID)
		if err != nil {
			return err
		}

		// a zero reward is a valid outcome, not an error - nothing to book
		if credit.IsZero() {
			result = &GrantRewardResult{Amount: decimal.Zero, NewBalance: p.Balance}
			return nil
		}

		newBalance := p.Balance.Add(credit)
		if _, err := h.PortfolioRepository.UpdateBalance(tx, p.PortfolioID, newBalance); err != nil {
			return err
		}

		_, err = h.TransactionRepository.Add(tx, model.Transaction{
			PortfolioID: p.PortfolioID,
			Type:        model.TransactionType_Bonus,
			Symbol:      "",
			Name:        name,
			Quantity:    decimal.NewFromInt(1),
			Price:       credit,
			Total:       credit,
			Note:        util.StrPointer(note),
		})
		if err != nil {
			return err
		}

		_, err = h.SnapshotRepository.Add(tx, model.PortfolioSnapshot{
			PortfolioID: p.PortfolioID,
			Balance:     newBalance,
		})
		if err != nil {
			return err
		}

		result = &GrantRewardResult{Amount: credit, NewBalance: newBalance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (h rewardServiceHandler) getOrCreate(tx *sql.Tx, userAccountID uuid.UUID) (*model.Portfolio, error) {
	p, err := h.PortfolioRepository.GetByUserAccountIDForUpdate(tx, userAccountID)
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
