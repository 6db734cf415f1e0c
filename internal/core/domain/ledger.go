package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerStatus classifies the payment state of a ledger entry.
type LedgerStatus int16

const (
	StatusUnpaid  LedgerStatus = 0
	StatusPaid    LedgerStatus = 1
	StatusPartial LedgerStatus = 2
	StatusOverdue LedgerStatus = 3
	StatusAdvance LedgerStatus = 4
)

// LedgerEntry is one immutable row of a consumer's running ledger. Entries are
// only created through the posting engine (or the administrative raw-create
// path) and are never updated in normal operation, except for the explicit
// status-correction endpoint.
type LedgerEntry struct {
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
	Status      LedgerStatus    `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
}

// NextBalance computes the running balance an entry carries when appended
// after priorBalance: debits grow what the consumer owes, credits reduce it.
// A negative result is a credit in the consumer's favor.
func NextBalance(priorBalance, debit, credit decimal.Decimal) decimal.Decimal {
	return priorBalance.Add(debit).Sub(credit)
}

// DeriveSettlement applies the payment classification rule: when the supplied
// particulars text contains the substring "payment" (case-sensitive), the
// status and particulars are rewritten from the sign of the resulting balance.
// Otherwise the caller-supplied values are returned unchanged.
func DeriveSettlement(particulars string, status LedgerStatus, newBalance decimal.Decimal) (LedgerStatus, string) {
	if !strings.Contains(particulars, "payment") {
		return status, particulars
	}
	switch newBalance.Sign() {
	case -1:
		return StatusAdvance, "Advance Payment"
	case 1:
		return StatusPartial, "Partial Payment"
	default:
		return StatusPaid, "Full Payment"
	}
}
