package api

import (
	"papertrade/internal/domain"
	"papertrade/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type sellStockRequest struct {
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func (m ApiHandler) sellStock(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody sellStockRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Symbol == "" {
		returnErrorJson(domain.ErrInvalidInput, c)
		return
	}

	result, err := m.PortfolioService.Sell(c.Request.Context(), userAccountID, service.SellInput{
		Symbol:   requestBody.Symbol,
		Quantity: requestBody.Quantity,
		Price:    requestBody.Price,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, tradeResponseFromDomain(result))
}
