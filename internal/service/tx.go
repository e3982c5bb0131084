package service

import (
	"database/sql"
	"errors"
	"fmt"

	"papertrade/internal/domain"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// runInTx executes fn inside one transaction. Transient failures
// (serialization, deadlock, or a lost race creating the portfolio row) are
// retried once with a fresh transaction; if the retry also fails the caller
// gets ErrStoreUnavailable and no effects were applied.
func runInTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	return withRetry(func() error {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", domain.ErrStoreUnavailable)
		}
		defer tx.Rollback()

		if err := fn(tx); err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			if isTransient(err) {
				return err
			}
			return fmt.Errorf("failed to commit transaction: %w", domain.ErrStoreUnavailable)
		}
		return nil
	})
}

// withRetry runs attempt, retrying once when the failure is transient. A
// transient failure on the retry surfaces as ErrStoreUnavailable; anything
// else passes through unchanged.
func withRetry(attempt func() error) error {
	err := attempt()
	if err != nil && isTransient(err) {
		zap.S().Warnf("retrying transaction after transient error: %v", err)
		err = attempt()
		if err != nil && isTransient(err) {
			return fmt.Errorf("transaction failed after retry: %w", domain.ErrStoreUnavailable)
		}
	}
	return err
}

func isTransient(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case "40001", "40P01":
		return true
	case "23505":
		// unique violation only happens here when two requests race to
		// create the same portfolio; the retry will find the winner's row
		return true
	}
	return false
}
