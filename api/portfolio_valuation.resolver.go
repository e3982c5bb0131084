package api

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type holdingValuationResponse struct {
	Symbol         string          `json:"symbol"`
	Name           string          `json:"name"`
	Quantity       decimal.Decimal `json:"quantity"`
	AveragePrice   decimal.Decimal `json:"averagePrice"`
	CurrentPrice   decimal.Decimal `json:"currentPrice"`
	MarketValue    decimal.Decimal `json:"marketValue"`
	UnrealizedGain decimal.Decimal `json:"unrealizedGain"`
}

type portfolioValuationResponse struct {
	Cash          decimal.Decimal            `json:"cash"`
	HoldingsValue decimal.Decimal            `json:"holdingsValue"`
	TotalValue    decimal.Decimal            `json:"totalValue"`
	Holdings      []holdingValuationResponse `json:"holdings"`
}

func (m ApiHandler) getPortfolioValuation(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	valuation, err := m.PortfolioService.Valuation(c.Request.Context(), userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := portfolioValuationResponse{
		Cash:          valuation.Cash,
		HoldingsValue: valuation.HoldingsValue,
		TotalValue:    valuation.TotalValue,
		Holdings:      []holdingValuationResponse{},
	}
	for _, h := range valuation.Holdings {
		out.Holdings = append(out.Holdings, holdingValuationResponse{
			Symbol:         h.Symbol,
			Name:           h.Name,
			Quantity:       h.Quantity,
			AveragePrice:   h.AveragePrice,
			CurrentPrice:   h.CurrentPrice,
			MarketValue:    h.MarketValue,
			UnrealizedGain: h.UnrealizedGain,
		})
	}

	c.JSON(200, out)
}
