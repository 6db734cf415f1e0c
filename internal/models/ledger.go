package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the row shape of the wb_ledger table.
// Balance is derived by the posting engine; only the administrative raw-create
// path writes a caller-supplied balance.
type LedgerEntry struct {
	ID          int64           `db:"id"`
	ConsumerID  int64           `db:"consumer_id"`
	RefNo       string          `db:"ref_no"`
	ReadingDate *time.Time      `db:"reading_date"` // Nullable
	DateEntered time.Time       `db:"date_entered"`
	Particulars string          `db:"particulars"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Balance     decimal.Decimal `db:"balance"`
	ByUser      string          `db:"by_user"`
	Status      int16           `db:"status"`
	Amount      decimal.Decimal `db:"amount"`
}
