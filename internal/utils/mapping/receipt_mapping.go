package mapping

import (
	"encoding/json"

	"github.com/mecmec98/billingrestapi/internal/core/domain"
	"github.com/mecmec98/billingrestapi/internal/models"
)

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ID:           d.ID,
		ORNumber:     d.ORNumber,
		MachineSN:    d.MachineSN,
		Items:        []byte(d.Items),
		ToCustomer:   d.ToCustomer,
		ByUser:       d.ByUser,
		TotalAmount:  d.TotalAmount,
		PaymentMode:  d.PaymentMode,
		Status:       int16(d.Status),
		RemitBatch:   d.RemitBatch,
		DateRemitted: d.DateRemitted,
		SeriesBatch:  d.SeriesBatch,
	}
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ID:           m.ID,
		ORNumber:     m.ORNumber,
		MachineSN:    m.MachineSN,
		Items:        json.RawMessage(m.Items),
		ToCustomer:   m.ToCustomer,
		ByUser:       m.ByUser,
		TotalAmount:  m.TotalAmount,
		PaymentMode:  m.PaymentMode,
		Status:       domain.ReceiptStatus(m.Status),
		RemitBatch:   m.RemitBatch,
		DateRemitted: m.DateRemitted,
		SeriesBatch:  m.SeriesBatch,
	}
}

// ToDomainReceiptSlice converts a slice of model receipts to domain receipts
func ToDomainReceiptSlice(ms []models.Receipt) []domain.Receipt {
	out := make([]domain.Receipt, len(ms))
	for i, m := range ms {
		out[i] = ToDomainReceipt(m)
	}
	return out
}

// ToDomainRemitBatchSummary converts an aggregate summary row to its domain form
func ToDomainRemitBatchSummary(m models.RemitBatchSummary) domain.RemitBatchSummary {
	return domain.RemitBatchSummary{
		MachineSN:    m.MachineSN,
		RemitBatch:   m.RemitBatch,
		ReceiptCount: m.ReceiptCount,
		TotalAmount:  m.TotalAmount,
		RemitDate:    m.RemitDate,
	}
}
