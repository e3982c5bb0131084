package api

import (
	"github.com/gin-gonic/gin"
)

type quizRewardRequest struct {
	QuizID  string `json:"quizID"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

func (m ApiHandler) grantQuizReward(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody quizRewardRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.RewardService.GrantQuizReward(
		c.Request.Context(),
		userAccountID,
		requestBody.QuizID,
		requestBody.Correct,
		requestBody.Total,
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, grantRewardResponseFromResult(result))
}
