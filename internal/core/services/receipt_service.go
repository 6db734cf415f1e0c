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
)

// receiptService provides receipt lifecycle and remittance operations on top
// of the receipt repository. Batch allocation and the status flip happen in
// one repository transaction; this layer validates input and maps DTOs.
type receiptService struct {
	receiptRepo portsrepo.ReceiptRepositoryWithTx
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(receiptRepo portsrepo.ReceiptRepositoryWithTx) portssvc.ReceiptSvcFacade {
	return &receiptService{receiptRepo: receiptRepo}
}

// Ensure receiptService implements the portssvc.ReceiptSvcFacade interface
var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

// ListReceipts returns every receipt.
func (s *receiptService) ListReceipts(ctx context.Context) ([]domain.Receipt, error) {
	return s.receiptRepo.ListReceipts(ctx)
}

// GetReceiptByID returns a single receipt.
func (s *receiptService) GetReceiptByID(ctx context.Context, id int64) (*domain.Receipt, error) {
	return s.receiptRepo.FindReceiptByID(ctx, id)
}

// CreateReceipt records a freshly issued receipt. New receipts always start
// in issued status with no remittance fields set.
func (s *receiptService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest) (*domain.Receipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total_amount must be non-negative", apperrors.ErrValidation)
	}

	receipt := domain.Receipt{
		ORNumber:    req.ORNumber,
		MachineSN:   req.MachineSN,
		Items:       req.Items,
		ToCustomer:  req.ToCustomer,
		ByUser:      req.ByUser,
		TotalAmount: *req.TotalAmount,
		PaymentMode: req.PaymentMode,
		SeriesBatch: req.SeriesBatch,
	}

	saved, err := s.receiptRepo.CreateReceipt(ctx, receipt)
	if err != nil {
		return nil, err
	}

	logger.Info("Receipt created",
		slog.Int64("receipt_id", saved.ID),
		slog.String("or_number", saved.ORNumber),
		slog.String("machine_sn", saved.MachineSN),
	)
	return saved, nil
}

// UpdateReceipt overwrites the mutable fields of a receipt.
func (s *receiptService) UpdateReceipt(ctx context.Context, id int64, req dto.UpdateReceiptRequest) (*domain.Receipt, error) {
	if req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: total_amount must be non-negative", apperrors.ErrValidation)
	}

	receipt := domain.Receipt{
		ID:          id,
		Items:       req.Items,
		ToCustomer:  req.ToCustomer,
		ByUser:      req.ByUser,
		TotalAmount: *req.TotalAmount,
		PaymentMode: req.PaymentMode,
	}
	return s.receiptRepo.UpdateReceipt(ctx, receipt)
}

// DeleteReceipt removes a receipt.
func (s *receiptService) DeleteReceipt(ctx context.Context, id int64) error {
	return s.receiptRepo.DeleteReceipt(ctx, id)
}

// Remit closes out a machine's issued receipts into the next remittance
// batch. Re-running immediately after a successful remit finds nothing
// pending and reports zero remitted receipts without consuming a batch
// number.
func (s *receiptService) Remit(ctx context.Context, machineSN string) (*domain.RemittanceResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	result, err := s.receiptRepo.Remit(ctx, machineSN)
	if err != nil {
		return nil, err
	}

	if result.Remitted == 0 {
		logger.Info("No pending receipts to remit", slog.String("machine_sn", machineSN))
		return result, nil
	}

	logger.Info("Receipts remitted",
		slog.String("machine_sn", machineSN),
		slog.Int("remit_batch", result.RemitBatch),
		slog.Int("count", result.Remitted),
		slog.String("total_amount", result.TotalAmount.StringFixed(2)),
	)
	return result, nil
}

// RemitSummary returns per-batch remittance aggregates, newest batch first.
func (s *receiptService) RemitSummary(ctx context.Context, machineSN *string) ([]domain.RemitBatchSummary, error) {
	return s.receiptRepo.RemitSummary(ctx, machineSN)
}
