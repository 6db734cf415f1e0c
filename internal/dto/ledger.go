package dto

import (
	"time"

	"github.com/mecmec98/billingrestapi/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostTransactionRequest is the body of POST /wb_ledger/transaction.
// ConsumerID and Status use pointers so a literal 0 still satisfies the
// required binding.
type PostTransactionRequest struct {
	ConsumerID  *int64          `json:"consumerid" binding:"required"`
	RefNo       string          `json:"ref_no" binding:"required"`
	ReadingDate *time.Time      `json:"reading_date"`
	Particulars string          `json:"particulars" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`  // defaults to 0
	Credit      decimal.Decimal `json:"credit"` // defaults to 0
	ByUser      string          `json:"by_user" binding:"required"`
	Status      *int16          `json:"status" binding:"required"`
	Amount      decimal.Decimal `json:"amount"` // defaults to 0
}

// CreateLedgerEntryRequest is the body of the administrative raw-create path
// (POST /wb_ledger/). Unlike the posting engine it accepts an explicit
// balance; callers are responsible for keeping the running balance coherent.
type CreateLedgerEntryRequest struct {
	ConsumerID  *int64           `json:"consumerid" binding:"required"`
	RefNo       string           `json:"ref_no" binding:"required"`
	ReadingDate *time.Time       `json:"reading_date"`
	Particulars string           `json:"particulars" binding:"required"`
	Debit       *decimal.Decimal `json:"debit" binding:"required"`
	Credit      *decimal.Decimal `json:"credit" binding:"required"`
	Balance     *decimal.Decimal `json:"balance" binding:"required"`
	ByUser      string           `json:"by_user" binding:"required"`
	Status      *int16           `json:"status" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateLedgerStatusRequest is the body of PUT /wb_ledger/status/:id.
type UpdateLedgerStatusRequest struct {
	Status *int16 `json:"status" binding:"required"`
}

// LedgerEntryResponse is the wire shape of a ledger entry. Date fields
// marshal as RFC3339 for client-side parsing safety.
type LedgerEntryResponse struct {
	ID          int64           `json:"id"`
	ConsumerID  int64           `json:"consumer_id"`
	RefNo       string          `json:"ref_no"`
	ReadingDate *time.Time      `json:"reading_date"`
	DateEntered time.Time       `json:"date_entered"`
	Particulars string          `json:"particulars"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
	ByUser      string          `json:"by_user"`
	Status      int16           `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
}

// BalanceResponse is the body of GET /wb_ledger/balance/:consumer_id.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its wire shape.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          e.ID,
		ConsumerID:  e.ConsumerID,
		RefNo:       e.RefNo,
		ReadingDate: e.ReadingDate,
		DateEntered: e.DateEntered,
		Particulars: e.Particulars,
		Debit:       e.Debit,
		Credit:      e.Credit,
		Balance:     e.Balance,
		ByUser:      e.ByUser,
		Status:      int16(e.Status),
		Amount:      e.Amount,
	}
}

// ToLedgerEntryResponses converts a slice of domain entries to wire shapes.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToLedgerEntryResponse(&entries[i])
	}
	return out
}
