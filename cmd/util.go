package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"papertrade/api"
	"papertrade/internal"
	"papertrade/internal/repository"
	"papertrade/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	holdingRepository := repository.NewHoldingRepository(dbConn)
	transactionRepository := repository.NewTransactionRepository(dbConn)
	snapshotRepository := repository.NewPortfolioSnapshotRepository(dbConn)
	postRepository := repository.NewPostRepository(dbConn)
	chatMessageRepository := repository.NewChatMessageRepository(dbConn)
	quoteRepository := repository.NewQuoteRepository(secrets.AlphaVantageApiKey)
	newsRepository := repository.NewNewsRepository(secrets.AlphaVantageApiKey)

	portfolioService := service.NewPortfolioService(
		dbConn,
		portfolioRepository,
		holdingRepository,
		transactionRepository,
		snapshotRepository,
		quoteRepository,
	)
	rewardService := service.NewRewardService(
		dbConn,
		portfolioRepository,
		transactionRepository,
		snapshotRepository,
	)
	historyService := service.NewHistoryService(
		dbConn,
		portfolioRepository,
		snapshotRepository,
	)
	mentorService := service.NewMentorService(
		chatMessageRepository,
		gptRepository,
	)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		PortfolioService:      portfolioService,
		RewardService:         rewardService,
		HistoryService:        historyService,
		MentorService:         mentorService,
		PortfolioRepository:   portfolioRepository,
		TransactionRepository: transactionRepository,
		QuoteRepository:       quoteRepository,
		NewsRepository:        newsRepository,
		PostRepository:        postRepository,
		ApiRequestRepository:  repository.ApiRequestRepositoryHandler{},
		JwtSecret:             secrets.JwtSecret,
	}

	return apiHandler, nil
}
