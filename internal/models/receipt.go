package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the row shape of the receipts table. Items holds serialized JSON.
type Receipt struct {
	ID           int64           `db:"id"`
	ORNumber     string          `db:"or_number"`
	MachineSN    string          `db:"machine_sn"`
	Items        []byte          `db:"items"`
	ToCustomer   string          `db:"to_customer"`
	ByUser       string          `db:"by_user"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	PaymentMode  string          `db:"payment_mode"`
	Status       int16           `db:"status"`
	RemitBatch   *int            `db:"remit_batch"`   // Nullable until remitted
	DateRemitted *time.Time      `db:"date_remitted"` // Nullable until remitted
	SeriesBatch  string          `db:"series_batch"`
}

// RemitBatchSummary is the aggregate row returned by the remit-summary queries.
type RemitBatchSummary struct {
	MachineSN    string          `db:"machine_sn"`
	RemitBatch   int             `db:"remit_batch"`
	ReceiptCount int64           `db:"receipt_count"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	RemitDate    time.Time       `db:"remit_date"`
}
