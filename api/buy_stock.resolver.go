package api

import (
	"papertrade/internal/domain"
	"papertrade/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type buyStockRequest struct {
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type tradeResponse struct {
	Portfolio    portfolioResponse `json:"portfolio"`
	Symbol       string            `json:"symbol"`
	Quantity     decimal.Decimal   `json:"quantity"`
	Price        decimal.Decimal   `json:"price"`
	Total        decimal.Decimal   `json:"total"`
	RealizedGain *decimal.Decimal  `json:"realizedGain,omitempty"`
}

func tradeResponseFromDomain(result *domain.TradeResult) tradeResponse {
	return tradeResponse{
		Portfolio:    portfolioResponseFromDomain(result.Portfolio),
		Symbol:       result.Symbol,
		Quantity:     result.Quantity,
		Price:        result.Price,
		Total:        result.Total,
		RealizedGain: result.RealizedGain,
	}
}

func (m ApiHandler) buyStock(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody buyStockRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Symbol == "" {
		returnErrorJson(domain.ErrInvalidInput, c)
		return
	}

	result, err := m.PortfolioService.Buy(c.Request.Context(), userAccountID, service.BuyInput{
		Symbol:   requestBody.Symbol,
		Name:     requestBody.Name,
		Quantity: requestBody.Quantity,
		Price:    requestBody.Price,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, tradeResponseFromDomain(result))
}
