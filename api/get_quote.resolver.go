package api

import (
	"strconv"
	"strings"

	"papertrade/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type quoteResponse struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

func (m ApiHandler) getQuote(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		returnErrorJson(domain.ErrInvalidInput, c)
		return
	}

	q, err := m.QuoteRepository.Get(symbol)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, quoteResponse{
		Symbol: q.Symbol,
		Name:   q.Name,
		Price:  q.Price,
	})
}

type priceBarResponse struct {
	Date  string          `json:"date"`
	Close decimal.Decimal `json:"close"`
}

func (m ApiHandler) getQuoteHistory(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		returnErrorJson(domain.ErrInvalidInput, c)
		return
	}

	days := 365
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed <= 0 {
			returnErrorJson(domain.ErrInvalidInput, c)
			return
		}
		days = parsed
	}

	bars, err := m.QuoteRepository.GetDailyHistory(symbol, days)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []priceBarResponse{}
	for _, bar := range bars {
		out = append(out, priceBarResponse{
			Date:  bar.Date,
			Close: bar.Close,
		})
	}

	c.JSON(200, out)
}
