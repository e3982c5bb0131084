package api

import (
	"papertrade/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type gameRewardRequest struct {
	LinesCleared int `json:"linesCleared"`
	ComboCount   int `json:"comboCount"`
}

type grantRewardResponse struct {
	Amount     decimal.Decimal `json:"amount"`
	NewBalance decimal.Decimal `json:"newBalance"`
}

func grantRewardResponseFromResult(result *service.GrantRewardResult) grantRewardResponse {
	return grantRewardResponse{
		Amount:     result.Amount,
		NewBalance: result.NewBalance,
	}
}

func (m ApiHandler) grantGameReward(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody gameRewardRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.RewardService.GrantLineReward(
		c.Request.Context(),
		userAccountID,
		requestBody.LinesCleared,
		requestBody.ComboCount,
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, grantRewardResponseFromResult(result))
}
