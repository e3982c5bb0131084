package api

import (
	"errors"
	"fmt"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Type          string          `json:"type"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Total         decimal.Decimal `json:"total"`
	Note          *string         `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (m ApiHandler) getTransactions(c *gin.Context) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	transactions, err := m.listTransactions(userAccountID, c.Query("type"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []transactionResponse{}
	for _, t := range transactions {
		out = append(out, transactionResponse{
			TransactionID: t.TransactionID.String(),
			Type:          t.Type.String(),
			Symbol:        t.Symbol,
			Name:          t.Name,
			Quantity:      t.Quantity,
			Price:         t.Price,
			Total:         t.Total,
			Note:          t.Note,
			CreatedAt:     t.CreatedAt,
		})
	}

	c.JSON(200, out)
}

func (m ApiHandler) listTransactions(userAccountID uuid.UUID, typeFilter string) ([]model.Transaction, error) {
	p, err := m.PortfolioRepository.GetByUserAccountID(nil, userAccountID)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return []model.Transaction{}, nil
		}
		return nil, err
	}

	filter := repository.TransactionListFilter{
		PortfolioID: &p.PortfolioID,
	}
	if typeFilter != "" {
		transactionType, err := parseTransactionType(typeFilter)
		if err != nil {
			return nil, err
		}
		filter.Type = transactionType
	}

	return m.TransactionRepository.List(filter)
}

func parseTransactionType(s string) (*model.TransactionType, error) {
	t := new(model.TransactionType)
	if err := t.Scan(s); err != nil {
		return nil, fmt.Errorf("invalid transaction type %q", s)
	}
	return t, nil
}
