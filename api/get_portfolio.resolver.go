package api

import (
	"papertrade/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type holdingResponse struct {
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
	CostBasis    decimal.Decimal `json:"costBasis"`
}

type portfolioResponse struct {
	PortfolioID string            `json:"portfolioID"`
	Balance     decimal.Decimal   `json:"balance"`
	Holdings    []holdingResponse `json:"holdings"`
}

func portfolioResponseFromDomain(p *domain.Portfolio) portfolioResponse {
	out := portfolioResponse{
		PortfolioID: p.PortfolioID.String(),
		Balance:     p.Balance,
		Holdings:    []holdingResponse{},
	}
	for _, h := range p.Holdings {
		out.Holdings = append(out.Holdings, holdingResponse{
			Symbol:       h.Symbol,
			Name:         h.Name,
			Quantity:     h.Quantity,
			AveragePrice: h.AveragePrice,
			CostBasis:    h.CostBasis(),
		})
	}
	return out
}

func (m ApiHandler) getPortfolio(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	portfolio, err := m.PortfolioService.GetPortfolio(c.Request.Context(), userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolioResponseFromDomain(portfolio))
}
