package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) resetPortfolio(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	portfolio, err := m.PortfolioService.Reset(c.Request.Context(), userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, portfolioResponseFromDomain(portfolio))
}
