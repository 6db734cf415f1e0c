package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptStatus tracks whether an official receipt has been remitted.
type ReceiptStatus int16

const (
	ReceiptIssued   ReceiptStatus = 1
	ReceiptRemitted ReceiptStatus = 2
)

// Receipt is an official receipt issued by a POS machine. Items are persisted
// as serialized JSON. RemitBatch and DateRemitted stay nil until the receipt
// is picked up by a remittance; after that the remittance fields are frozen.
type Receipt struct {
	ID           int64           `json:"id"`
	ORNumber     string          `json:"or_number"`
	MachineSN    string          `json:"machine_sn"`
	Items        json.RawMessage `json:"items"`
	ToCustomer   string          `json:"to_customer"`
	ByUser       string          `json:"by_user"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PaymentMode  string          `json:"payment_mode"`
	Status       ReceiptStatus   `json:"status"`
	RemitBatch   *int            `json:"remit_batch"`
	DateRemitted *time.Time      `json:"date_remitted"`
	SeriesBatch  string          `json:"series_batch"`
}

// RemittanceResult is the outcome of a remit call. Remitted == 0 means there
// was nothing to remit; no rows were touched and no batch number was consumed.
type RemittanceResult struct {
	MachineSN   string
	Remitted    int
	RemitBatch  int
	TotalAmount decimal.Decimal
	Receipts    []Receipt
}

// RemitBatchSummary aggregates one remittance batch for reporting.
type RemitBatchSummary struct {
	MachineSN    string          `json:"machine_sn"`
	RemitBatch   int             `json:"remit_batch"`
	ReceiptCount int64           `json:"receipt_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	RemitDate    time.Time       `json:"remit_date"`
}
