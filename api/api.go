package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/domain"
	"papertrade/internal/repository"
	"papertrade/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                    *sql.DB
	PortfolioService      service.PortfolioService
	RewardService         service.RewardService
	HistoryService        service.HistoryService
	MentorService         service.MentorService
	PortfolioRepository   repository.PortfolioRepository
	TransactionRepository repository.TransactionRepository
	QuoteRepository       repository.QuoteRepository
	NewsRepository        repository.NewsRepository
	PostRepository        repository.PostRepository
	ApiRequestRepository  repository.ApiRequestRepository
	JwtSecret             string
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to papertrade"})
	})

	router.GET("/quotes/:symbol", m.getQuote)
	router.GET("/quotes/:symbol/history", m.getQuoteHistory)
	router.GET("/news", m.getNews)

	authed := router.Group("/", m.authMiddleware)
	authed.GET("/portfolio", m.getPortfolio)
	authed.POST("/portfolio/buy", m.buyStock)
	authed.POST("/portfolio/sell", m.sellStock)
	authed.POST("/portfolio/reset", m.resetPortfolio)
	authed.GET("/portfolio/valuation", m.getPortfolioValuation)
	authed.GET("/portfolio/history", m.getPortfolioHistory)
	authed.GET("/transactions", m.getTransactions)
	authed.GET("/transactions/export", m.exportTransactions)
	authed.POST("/rewards/game", m.grantGameReward)
	authed.POST("/rewards/quiz", m.grantQuizReward)
	authed.GET("/posts", m.getPosts)
	authed.POST("/posts", m.createPost)
	authed.GET("/mentor/messages", m.getMentorMessages)
	authed.POST("/mentor/messages", m.sendMentorMessage)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusFromError(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// statusFromError maps business-rule sentinels onto response codes, so
// resolvers can bubble service errors straight up.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrInsufficientShares):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrHoldingNotFound),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrSymbolNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrQuoteUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Println(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Println(err)
	}

	ctx.Next()

	if req != nil {
		// auth runs after this middleware, so the user is only known now
		if idStr, ok := ctx.Get("userAccountID"); ok {
			if id, err := uuid.Parse(idStr.(string)); err == nil {
				req.UserAccountID = &id
			}
		}
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Println(err)
		}
	}
}
