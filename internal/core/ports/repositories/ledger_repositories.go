package repositories

import (
	"context"

	"github.com/mecmec98/billingrestapi/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations for ledger data
type LedgerReader interface {
	// ListEntries retrieves every ledger entry, ordered by id.
	ListEntries(ctx context.Context) ([]domain.LedgerEntry, error)

	// FindEntriesByConsumer retrieves all entries for one consumer, ordered by id.
	// Returns apperrors.ErrNotFound when the consumer has no entries.
	FindEntriesByConsumer(ctx context.Context, consumerID int64) ([]domain.LedgerEntry, error)

	// LatestBalance retrieves the balance of the consumer's most recent entry.
	// Returns apperrors.ErrNotFound when the consumer has no entries.
	LatestBalance(ctx context.Context, consumerID int64) (decimal.Decimal, error)
}

// LedgerWriter defines write operations for ledger data
type LedgerWriter interface {
	// PostTransaction appends an entry to the consumer's ledger inside one
	// database transaction: it serializes on the consumer row, reads the prior
	// balance, derives the new balance and payment classification, and inserts
	// the row with a server-assigned date_entered.
	PostTransaction(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)

	// CreateEntry inserts a raw ledger row with a caller-supplied balance.
	// This is the administrative backfill path; it bypasses balance derivation.
	CreateEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)

	// UpdateStatus corrects the payment status of an existing entry.
	UpdateStatus(ctx context.Context, id int64, status domain.LedgerStatus) (*domain.LedgerEntry, error)

	// DeleteEntry removes an entry. Kept for parity with the administrative
	// surface; ledger rows are otherwise append-only.
	DeleteEntry(ctx context.Context, id int64) error
}

// LedgerRepositoryFacade combines read and write ledger operations.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// LedgerRepositoryWithTx adds transaction management to the ledger repository.
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
