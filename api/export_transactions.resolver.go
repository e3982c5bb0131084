package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type transactionCsvRow struct {
	Date     string `csv:"date"`
	Type     string `csv:"type"`
	Symbol   string `csv:"symbol"`
	Name     string `csv:"name"`
	Quantity string `csv:"quantity"`
	Price    string `csv:"price"`
	Total    string `csv:"total"`
	Note     string `csv:"note"`
}

// exportTransactions streams the full ledger as CSV, oldest rows last to
// match the JSON listing order.
func (m ApiHandler) exportTransactions(c *gin.Context) {
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

	rows := []transactionCsvRow{}
	for _, t := range transactions {
		note := ""
		if t.Note != nil {
			note = *t.Note
		}
		rows = append(rows, transactionCsvRow{
			Date:     t.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			Type:     t.Type.String(),
			Symbol:   t.Symbol,
			Name:     t.Name,
			Quantity: t.Quantity.String(),
			Price:    t.Price.String(),
			Total:    t.Total.String(),
			Note:     note,
		})
	}

	csvContent, err := gocsv.MarshalString(&rows)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to marshal transactions csv: %w", err), c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Data(200, "text/csv", []byte(csvContent))
}
