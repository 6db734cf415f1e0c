package repositories

import (
	"context"

	"github.com/mecmec98/billingrestapi/internal/core/domain"
)

// ReceiptReader defines read operations for receipt data
type ReceiptReader interface {
	// ListReceipts retrieves every receipt, ordered by id.
	ListReceipts(ctx context.Context) ([]domain.Receipt, error)

	// FindReceiptByID retrieves a receipt by its primary key.
	FindReceiptByID(ctx context.Context, id int64) (*domain.Receipt, error)

	// RemitSummary aggregates remitted receipts by machine and batch, newest
	// batch first. A nil machineSN returns the global summary.
	RemitSummary(ctx context.Context, machineSN *string) ([]domain.RemitBatchSummary, error)
}

// ReceiptWriter defines write operations for receipt data
type ReceiptWriter interface {
	// CreateReceipt inserts an issued receipt (status 1, no remit fields).
	CreateReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error)

	// UpdateReceipt overwrites the mutable fields of an issued receipt.
	UpdateReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error)

	// DeleteReceipt removes a receipt by id.
	DeleteReceipt(ctx context.Context, id int64) error

	// Remit atomically flips all issued receipts of a machine to remitted,
	// stamping them with the next globally unique batch number. When nothing
	// is pending the transaction rolls back and the result reports zero
	// remitted receipts; that outcome is not an error.
	Remit(ctx context.Context, machineSN string) (*domain.RemittanceResult, error)
}

// ReceiptRepositoryFacade combines read and write receipt operations.
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}

// ReceiptRepositoryWithTx adds transaction management to the receipt repository.
type ReceiptRepositoryWithTx interface {
	ReceiptRepositoryFacade
	TransactionManager
}
