package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type historyPointResponse struct {
	Balance    decimal.Decimal  `json:"balance"`
	TotalValue *decimal.Decimal `json:"totalValue,omitempty"`
	Time       time.Time        `json:"time"`
}

type portfolioHistoryResponse struct {
	Points     []historyPointResponse `json:"points"`
	Volatility *float64               `json:"volatility,omitempty"`
}

func (m ApiHandler) getPortfolioHistory(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	history, err := m.HistoryService.GetHistory(c.Request.Context(), userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := portfolioHistoryResponse{
		Points:     []historyPointResponse{},
		Volatility: history.Volatility,
	}
	for _, p := range history.Points {
		out.Points = append(out.Points, historyPointResponse{
			Balance:    p.Balance,
			TotalValue: p.TotalValue,
			Time:       p.Time,
		})
	}

	c.JSON(200, out)
}
