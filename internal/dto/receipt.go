package dto

import (
	"encoding/json"
	"time"

	"github.com/mecmec98/billingrestapi/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReceiptRequest is the body of POST /receipts/.
type CreateReceiptRequest struct {
	ORNumber    string           `json:"or_number" binding:"required"`
	MachineSN   string           `json:"machine_sn" binding:"required"`
	Items       json.RawMessage  `json:"items" binding:"required"`
	ToCustomer  string           `json:"to_customer" binding:"required"`
	ByUser      string           `json:"by_user" binding:"required"`
	TotalAmount *decimal.Decimal `json:"total_amount" binding:"required"`
	PaymentMode string           `json:"payment_mode" binding:"required"`
	SeriesBatch string           `json:"series_batch" binding:"required"`
}

// UpdateReceiptRequest is the body of PUT /receipts/:id.
type UpdateReceiptRequest struct {
	Items       json.RawMessage  `json:"items" binding:"required"`
	ToCustomer  string           `json:"to_customer" binding:"required"`
	ByUser      string           `json:"by_user" binding:"required"`
	TotalAmount *decimal.Decimal `json:"total_amount" binding:"required"`
	PaymentMode string           `json:"payment_mode" binding:"required"`
}

// RemitRequest is the body of POST /receipts/remit.
type RemitRequest struct {
	MachineSN string `json:"machine_sn" binding:"required"`
}

// ReceiptResponse is the wire shape of a receipt.
type ReceiptResponse struct {
	ID           int64           `json:"id"`
	ORNumber     string          `json:"or_number"`
	MachineSN    string          `json:"machine_sn"`
	Items        json.RawMessage `json:"items,omitempty"`
	ToCustomer   string          `json:"to_customer,omitempty"`
	ByUser       string          `json:"by_user,omitempty"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PaymentMode  string          `json:"payment_mode,omitempty"`
	Status       int16           `json:"status"`
	RemitBatch   *int            `json:"remit_batch"`
	DateRemitted *time.Time      `json:"date_remitted"`
	SeriesBatch  string          `json:"series_batch,omitempty"`
}

// RemitResponse is the body of POST /receipts/remit. TotalAmount is the
// decimal-exact sum formatted to two places. On a nothing-to-remit outcome
// only Success and Message are populated.
type RemitResponse struct {
	Success          bool              `json:"success"`
	Message          string            `json:"message"`
	MachineSN        string            `json:"machine_sn,omitempty"`
	RemittedReceipts int               `json:"remittedReceipts,omitempty"`
	RemitBatch       int               `json:"remitBatch,omitempty"`
	TotalAmount      string            `json:"totalAmount,omitempty"`
	UpdatedReceipts  []ReceiptResponse `json:"updatedReceipts,omitempty"`
}

// RemitBatchSummaryResponse is one aggregated batch in a remit-summary reply.
type RemitBatchSummaryResponse struct {
	MachineSN    string          `json:"machine_sn"`
	RemitBatch   int             `json:"remit_batch"`
	ReceiptCount int64           `json:"receipt_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	RemitDate    time.Time       `json:"remit_date"`
}

// RemitSummaryResponse is the body of the remit-summary endpoints.
type RemitSummaryResponse struct {
	Success      bool                        `json:"success"`
	MachineSN    string                      `json:"machine_sn,omitempty"`
	RemitHistory []RemitBatchSummaryResponse `json:"remitHistory"`
}

// ToReceiptResponse converts a domain.Receipt to its wire shape.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:           r.ID,
		ORNumber:     r.ORNumber,
		MachineSN:    r.MachineSN,
		Items:        r.Items,
		ToCustomer:   r.ToCustomer,
		ByUser:       r.ByUser,
		TotalAmount:  r.TotalAmount,
		PaymentMode:  r.PaymentMode,
		Status:       int16(r.Status),
		RemitBatch:   r.RemitBatch,
		DateRemitted: r.DateRemitted,
		SeriesBatch:  r.SeriesBatch,
	}
}

// ToReceiptResponses converts a slice of domain receipts to wire shapes.
func ToReceiptResponses(receipts []domain.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, len(receipts))
	for i := range receipts {
		out[i] = ToReceiptResponse(&receipts[i])
	}
	return out
}

// ToRemitResponse converts a domain.RemittanceResult to its wire shape.
func ToRemitResponse(res *domain.RemittanceResult) RemitResponse {
	if res.Remitted == 0 {
		return RemitResponse{
			Success: false,
			Message: "No receipts found to remit for machine " + res.MachineSN,
		}
	}
	return RemitResponse{
		Success:          true,
		Message:          "Successfully remitted receipts for machine " + res.MachineSN,
		MachineSN:        res.MachineSN,
		RemittedReceipts: res.Remitted,
		RemitBatch:       res.RemitBatch,
		TotalAmount:      res.TotalAmount.StringFixed(2),
		UpdatedReceipts:  ToReceiptResponses(res.Receipts),
	}
}

// ToRemitSummaryResponse converts aggregated batch rows to the reply shape.
func ToRemitSummaryResponse(machineSN string, summaries []domain.RemitBatchSummary) RemitSummaryResponse {
	history := make([]RemitBatchSummaryResponse, len(summaries))
	for i, s := range summaries {
		history[i] = RemitBatchSummaryResponse{
			MachineSN:    s.MachineSN,
			RemitBatch:   s.RemitBatch,
			ReceiptCount: s.ReceiptCount,
			TotalAmount:  s.TotalAmount,
			RemitDate:    s.RemitDate,
		}
	}
	return RemitSummaryResponse{
		Success:      true,
		MachineSN:    machineSN,
		RemitHistory: history,
	}
}
