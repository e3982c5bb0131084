package integration_tests

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"papertrade/internal"
	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/db/models/postgres/public/table"
	"papertrade/internal/domain"
	"papertrade/internal/repository"
	"papertrade/internal/service"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func cleanupPortfolios(db *sql.DB) error {
	if _, err := table.Transaction.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.PortfolioSnapshot.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.Holding.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.Portfolio.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	return nil
}

func newPortfolioService(db *sql.DB) service.PortfolioService {
	return service.NewPortfolioService(
		db,
		repository.NewPortfolioRepository(db),
		repository.NewHoldingRepository(db),
		repository.NewTransactionRepository(db),
		repository.NewPortfolioSnapshotRepository(db),
		nil,
	)
}

// Concurrent buys on the same portfolio must serialize on the locked
// portfolio row: every trade commits against the balance the previous one
// left behind, so nothing is lost and the final state adds up exactly.
func Test_concurrentBuys(t *testing.T) {
	db, err := internal.NewTestDb()
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, cleanupPortfolios(db))

	svc := newPortfolioService(db)
	userAccountID := uuid.New()
	ctx := context.Background()

	const buyers = 8
	price := decimal.NewFromInt(100)

	var wg sync.WaitGroup
	errs := make(chan error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Buy(ctx, userAccountID, service.BuyInput{
				Symbol:   "AAPL",
				Name:     "Apple Inc",
				Quantity: decimal.NewFromInt(1),
				Price:    price,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	p, err := svc.GetPortfolio(ctx, userAccountID)
	require.NoError(t, err)

	expectedBalance := domain.DefaultStartingBalance.Sub(price.Mul(decimal.NewFromInt(buyers)))
	require.True(t, p.Balance.Equal(expectedBalance), "expected balance %s, got %s", expectedBalance, p.Balance)
	require.Len(t, p.Holdings, 1)
	require.True(t, p.Holdings[0].Quantity.Equal(decimal.NewFromInt(buyers)))
	require.True(t, p.Holdings[0].AveragePrice.Equal(price))

	transactionRepository := repository.NewTransactionRepository(db)
	buyType := model.TransactionType_Buy
	buys, err := transactionRepository.List(repository.TransactionListFilter{
		PortfolioID: &p.PortfolioID,
		Type:        &buyType,
	})
	require.NoError(t, err)
	require.Len(t, buys, buyers)

	sellType := model.TransactionType_Sell
	sells, err := transactionRepository.List(repository.TransactionListFilter{
		PortfolioID: &p.PortfolioID,
		Type:        &sellType,
	})
	require.NoError(t, err)
	require.Len(t, sells, 0)
}

// Two racing sells of the full position: exactly one may win. The loser
// re-reads under the lock and finds the shares gone.
func Test_concurrentSellsCannotOversell(t *testing.T) {
	db, err := internal.NewTestDb()
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, cleanupPortfolios(db))

	svc := newPortfolioService(db)
	userAccountID := uuid.New()
	ctx := context.Background()

	price := decimal.NewFromInt(50)
	quantity := decimal.NewFromInt(10)
	_, err = svc.Buy(ctx, userAccountID, service.BuyInput{
		Symbol:   "TSLA",
		Name:     "Tesla Inc",
		Quantity: quantity,
		Price:    price,
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Sell(ctx, userAccountID, service.SellInput{
				Symbol:   "TSLA",
				Quantity: quantity,
				Price:    price,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	failures := []error{}
	for err := range errs {
		if err != nil {
			failures = append(failures, err)
		}
	}
	require.Len(t, failures, 1)
	require.True(t,
		errors.Is(failures[0], domain.ErrHoldingNotFound) || errors.Is(failures[0], domain.ErrInsufficientShares),
		"unexpected error: %v", failures[0],
	)

	p, err := svc.GetPortfolio(ctx, userAccountID)
	require.NoError(t, err)
	require.Len(t, p.Holdings, 0)
	require.True(t, p.Balance.Equal(domain.DefaultStartingBalance), "expected balance %s, got %s", domain.DefaultStartingBalance, p.Balance)
}

func Test_resetRestoresStartingState(t *testing.T) {
	db, err := internal.NewTestDb()
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, cleanupPortfolios(db))

	svc := newPortfolioService(db)
	userAccountID := uuid.New()
	ctx := context.Background()

	_, err = svc.Buy(ctx, userAccountID, service.BuyInput{
		Symbol:   "VOO",
		Name:     "Vanguard S&P 500 ETF",
		Quantity: decimal.NewFromInt(3),
		Price:    decimal.NewFromInt(400),
	})
	require.NoError(t, err)

	p, err := svc.Reset(ctx, userAccountID)
	require.NoError(t, err)
	require.True(t, p.Balance.Equal(domain.DefaultStartingBalance))
	require.Len(t, p.Holdings, 0)

	transactionRepository := repository.NewTransactionRepository(db)
	transactions, err := transactionRepository.List(repository.TransactionListFilter{
		PortfolioID: &p.PortfolioID,
	})
	require.NoError(t, err)
	require.Len(t, transactions, 0)
}
