package repository

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"papertrade/internal/domain"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// QuoteRepository fronts the external quote providers. Yahoo is the primary
// source; Alpha Vantage is the fallback when Yahoo has no data for a symbol.
// Both are rate limited and flaky, so failures surface as typed errors
// rather than whatever the provider returned.
type QuoteRepository interface {
	Get(symbol string) (*domain.Quote, error)
	GetDailyHistory(symbol string, days int) ([]domain.PriceBar, error)
}

type quoteRepositoryHandler struct {
	AlphaVantageApiKey string
	HttpClient         *http.Client
}

func NewQuoteRepository(alphaVantageApiKey string) QuoteRepository {
	return quoteRepositoryHandler{
		AlphaVantageApiKey: alphaVantageApiKey,
		HttpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (h quoteRepositoryHandler) Get(symbol string) (*domain.Quote, error) {
	q, err := quote.Get(symbol)
	if err == nil && q != nil && q.RegularMarketPrice > 0 {
		return &domain.Quote{
			Symbol: q.Symbol,
			Name:   q.ShortName,
			Price:  decimal.NewFromFloat(q.RegularMarketPrice),
		}, nil
	}

	return h.getFromAlphaVantage(symbol)
}

type alphaVantageGlobalQuote struct {
	GlobalQuote struct {
		Symbol string `json:"01. symbol"`
		Price  string `json:"05. price"`
	} `json:"Global Quote"`
}

func (h quoteRepositoryHandler) getFromAlphaVantage(symbol string) (*domain.Quote, error) {
	endpoint := fmt.Sprintf(
		"https://www.alphavantage.co/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		url.QueryEscape(symbol), h.AlphaVantageApiKey,
	)

	resp, err := h.HttpClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", symbol, domain.ErrQuoteUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch quote for %s: http %d: %w", symbol, resp.StatusCode, domain.ErrQuoteUnavailable)
	}

	result := alphaVantageGlobalQuote{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse quote for %s: %w", symbol, domain.ErrQuoteUnavailable)
	}

	if result.GlobalQuote.Price == "" {
		return nil, fmt.Errorf("%s: %w", symbol, domain.ErrSymbolNotFound)
	}

	price, err := strconv.ParseFloat(result.GlobalQuote.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse quote price %q for %s: %w", result.GlobalQuote.Price, symbol, domain.ErrQuoteUnavailable)
	}

	return &domain.Quote{
		Symbol: symbol,
		Name:   symbol,
		Price:  decimal.NewFromFloat(price),
	}, nil
}

func (h quoteRepositoryHandler) GetDailyHistory(symbol string, days int) ([]domain.PriceBar, error) {
	if days <= 0 {
		days = 365
	}
	start := time.Now().AddDate(0, 0, -days)
	now := time.Now()

	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	bars := []domain.PriceBar{}
	for iter.Next() {
		bars = append(bars, domain.PriceBar{
			Date:  time.Unix(int64(iter.Bar().Timestamp), 0).UTC().Format(time.DateOnly),
			Close: iter.Bar().AdjClose,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get price history for %s: %w", symbol, domain.ErrQuoteUnavailable)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, domain.ErrSymbolNotFound)
	}

	return bars, nil
}
