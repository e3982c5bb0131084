package repository

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"papertrade/internal/domain"
)

type NewsRepository interface {
	// List returns recent market news, optionally filtered to the given
	// tickers. Results come straight from the aggregator; nothing is stored.
	List(tickers []string) ([]domain.NewsArticle, error)
}

type newsRepositoryHandler struct {
	AlphaVantageApiKey string
	HttpClient         *http.Client
}

func NewNewsRepository(alphaVantageApiKey string) NewsRepository {
	return newsRepositoryHandler{
		AlphaVantageApiKey: alphaVantageApiKey,
		HttpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type alphaVantageNewsResponse struct {
	Feed []struct {
		Title         string `json:"title"`
		URL           string `json:"url"`
		TimePublished string `json:"time_published"`
		Summary       string `json:"summary"`
		Source        string `json:"source"`
	} `json:"feed"`
}

func (h newsRepositoryHandler) List(tickers []string) ([]domain.NewsArticle, error) {
	endpoint := fmt.Sprintf(
		"https://www.alphavantage.co/query?function=NEWS_SENTIMENT&apikey=%s",
		h.AlphaVantageApiKey,
	)
	if len(tickers) > 0 {
		endpoint += "&tickers=" + url.QueryEscape(strings.Join(tickers, ","))
	}

	resp, err := h.HttpClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", domain.ErrQuoteUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch news: http %d: %w", resp.StatusCode, domain.ErrQuoteUnavailable)
	}

	result := alphaVantageNewsResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse news: %w", domain.ErrQuoteUnavailable)
	}

	articles := []domain.NewsArticle{}
	for _, item := range result.Feed {
		articles = append(articles, domain.NewsArticle{
			Title:       item.Title,
			URL:         item.URL,
			Source:      item.Source,
			Summary:     item.Summary,
			PublishedAt: item.TimePublished,
		})
	}

	return articles, nil
}
