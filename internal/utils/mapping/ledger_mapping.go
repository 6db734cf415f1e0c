package mapping

import (
	"github.com/mecmec98/billingrestapi/internal/core/domain"
	"github.com/mecmec98/billingrestapi/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		ID:          d.ID,
		ConsumerID:  d.ConsumerID,
		RefNo:       d.RefNo,
		ReadingDate: d.ReadingDate,
		DateEntered: d.DateEntered,
		Particulars: d.Particulars,
		Debit:       d.Debit,
		Credit:      d.Credit,
		Balance:     d.Balance,
		ByUser:      d.ByUser,
		Status:      int16(d.Status),
		Amount:      d.Amount,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:          m.ID,
		ConsumerID:  m.ConsumerID,
		RefNo:       m.RefNo,
		ReadingDate: m.ReadingDate,
		DateEntered: m.DateEntered,
		Particulars: m.Particulars,
		Debit:       m.Debit,
		Credit:      m.Credit,
		Balance:     m.Balance,
		ByUser:      m.ByUser,
		Status:      domain.LedgerStatus(m.Status),
		Amount:      m.Amount,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model entries to domain entries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainLedgerEntry(m)
	}
	return out
}
