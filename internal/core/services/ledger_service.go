package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mecmec98/billingrestapi/internal/apperrors"
	"github.com/mecmec98/billingrestapi/internal/core/domain"
	portsrepo "github.com/mecmec98/billingrestapi/internal/core/ports/repositories"
	portssvc "github.com/mecmec98/billingrestapi/internal/core/ports/services"
	"github.com/mecmec98/billingrestapi/internal/dto"
	"github.com/mecmec98/billingrestapi/internal/middleware"
	"github.com/shopspring/decimal"
)

// ledgerService provides the ledger posting engine on top of the ledger
// repository. Balance derivation and per-consumer serialization live in the
// repository transaction; this layer validates input and maps DTOs.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepositoryWithTx
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryWithTx) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func validateAmounts(debit, credit, amount decimal.Decimal) error {
	if debit.IsNegative() {
		return fmt.Errorf("%w: debit must be non-negative", apperrors.ErrValidation)
	}
	if credit.IsNegative() {
		return fmt.Errorf("%w: credit must be non-negative", apperrors.ErrValidation)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must be non-negative", apperrors.ErrValidation)
	}
	return nil
}

// PostTransaction validates the request and appends a ledger entry. The new
// balance and the payment classification are derived inside the repository
// transaction; no balance is ever accepted from the caller on this path.
func (s *ledgerService) PostTransaction(ctx context.Context, req dto.PostTransactionRequest) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmounts(req.Debit, req.Credit, req.Amount); err != nil {
		return nil, err
	}

	entry := domain.LedgerEntry{
		ConsumerID:  *req.ConsumerID,
		RefNo:       req.RefNo,
		ReadingDate: req.ReadingDate,
		Particulars: req.Particulars,
		Debit:       req.Debit,
		Credit:      req.Credit,
		ByUser:      req.ByUser,
		Status:      domain.LedgerStatus(*req.Status),
		Amount:      req.Amount,
	}

	saved, err := s.ledgerRepo.PostTransaction(ctx, entry)
	if err != nil {
		return nil, err
	}

	logger.Info("Ledger transaction posted",
		slog.Int64("entry_id", saved.ID),
		slog.Int64("consumer_id", saved.ConsumerID),
		slog.String("balance", saved.Balance.String()),
		slog.Int("status", int(saved.Status)),
	)
	return saved, nil
}

// CreateEntry inserts a raw ledger row (administrative backfill). The
// caller-supplied balance is stored as-is.
func (s *ledgerService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmounts(*req.Debit, *req.Credit, *req.Amount); err != nil {
		return nil, err
	}

	entry := domain.LedgerEntry{
		ConsumerID:  *req.ConsumerID,
		RefNo:       req.RefNo,
		ReadingDate: req.ReadingDate,
		Particulars: req.Particulars,
		Debit:       *req.Debit,
		Credit:      *req.Credit,
		Balance:     *req.Balance,
		ByUser:      req.ByUser,
		Status:      domain.LedgerStatus(*req.Status),
		Amount:      *req.Amount,
	}

	saved, err := s.ledgerRepo.CreateEntry(ctx, entry)
	if err != nil {
		return nil, err
	}

	logger.Info("Ledger entry backfilled", slog.Int64("entry_id", saved.ID), slog.Int64("consumer_id", saved.ConsumerID))
	return saved, nil
}

// UpdateStatus corrects the payment status of an existing entry.
func (s *ledgerService) UpdateStatus(ctx context.Context, id int64, status domain.LedgerStatus) (*domain.LedgerEntry, error) {
	if status < domain.StatusUnpaid || status > domain.StatusAdvance {
		return nil, fmt.Errorf("%w: unknown ledger status %d", apperrors.ErrValidation, status)
	}
	return s.ledgerRepo.UpdateStatus(ctx, id, status)
}

// LatestBalance returns the consumer's current running balance.
func (s *ledgerService) LatestBalance(ctx context.Context, consumerID int64) (decimal.Decimal, error) {
	return s.ledgerRepo.LatestBalance(ctx, consumerID)
}

// ListEntries returns every ledger entry.
func (s *ledgerService) ListEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	return s.ledgerRepo.ListEntries(ctx)
}

// FindEntriesByConsumer returns one consumer's entries in posting order.
func (s *ledgerService) FindEntriesByConsumer(ctx context.Context, consumerID int64) ([]domain.LedgerEntry, error) {
	return s.ledgerRepo.FindEntriesByConsumer(ctx, consumerID)
}

// DeleteEntry removes a ledger entry.
func (s *ledgerService) DeleteEntry(ctx context.Context, id int64) error {
	return s.ledgerRepo.DeleteEntry(ctx, id)
}
