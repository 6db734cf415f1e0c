package services

import (
	"context"

	"github.com/mecmec98/billingrestapi/internal/core/domain"
	"github.com/mecmec98/billingrestapi/internal/dto"
)

// ReceiptSvcFacade defines the receipt and remittance surface consumed by the
// HTTP handlers.
type ReceiptSvcFacade interface {
	ListReceipts(ctx context.Context) ([]domain.Receipt, error)
	GetReceiptByID(ctx context.Context, id int64) (*domain.Receipt, error)
	CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest) (*domain.Receipt, error)
	UpdateReceipt(ctx context.Context, id int64, req dto.UpdateReceiptRequest) (*domain.Receipt, error)
	DeleteReceipt(ctx context.Context, id int64) error

	// Remit batches all issued receipts of a machine into the next remittance
	// batch. A result with Remitted == 0 means nothing was pending.
	Remit(ctx context.Context, machineSN string) (*domain.RemittanceResult, error)

	// RemitSummary returns per-batch aggregates; nil machineSN means global.
	RemitSummary(ctx context.Context, machineSN *string) ([]domain.RemitBatchSummary, error)
}
