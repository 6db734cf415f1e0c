package services

import (
	"context"

	"github.com/mecmec98/billingrestapi/internal/core/domain"
	"github.com/mecmec98/billingrestapi/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade defines the ledger posting engine surface consumed by the
// HTTP handlers.
type LedgerSvcFacade interface {
	// PostTransaction validates and appends a ledger entry, deriving the new
	// running balance and payment classification inside one storage
	// transaction.
	PostTransaction(ctx context.Context, req dto.PostTransactionRequest) (*domain.LedgerEntry, error)

	// CreateEntry inserts a raw ledger row with an explicit balance
	// (administrative backfill).
	CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error)

	// UpdateStatus corrects the payment status of an entry.
	UpdateStatus(ctx context.Context, id int64, status domain.LedgerStatus) (*domain.LedgerEntry, error)

	// LatestBalance returns the consumer's current running balance.
	LatestBalance(ctx context.Context, consumerID int64) (decimal.Decimal, error)

	ListEntries(ctx context.Context) ([]domain.LedgerEntry, error)
	FindEntriesByConsumer(ctx context.Context, consumerID int64) ([]domain.LedgerEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
}
