package api

import (
	"strings"

	"github.com/gin-gonic/gin"
)

type newsArticleResponse struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Summary     string `json:"summary"`
	PublishedAt string `json:"publishedAt"`
}

func (m ApiHandler) getNews(c *gin.Context) {
	tickers := []string{}
	if tickersStr := c.Query("tickers"); tickersStr != "" {
		for _, t := range strings.Split(tickersStr, ",") {
			t = strings.ToUpper(strings.TrimSpace(t))
			if t != "" {
				tickers = append(tickers, t)
			}
		}
	}

	articles, err := m.NewsRepository.List(tickers)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []newsArticleResponse{}
	for _, a := range articles {
		out = append(out, newsArticleResponse{
			Title:       a.Title,
			URL:         a.URL,
			Source:      a.Source,
			Summary:     a.Summary,
			PublishedAt: a.PublishedAt,
		})
	}

	c.JSON(200, out)
}
