package services

import (
	"context"
	"log/slog"

	"github.com/mecmec98/billingrestapi/internal/core/domain"
	portsrepo "github.com/mecmec98/billingrestapi/internal/core/ports/repositories"
	portssvc "github.com/mecmec98/billingrestapi/internal/core/ports/services"
	"github.com/mecmec98/billingrestapi/internal/dto"
	"github.com/mecmec98/billingrestapi/internal/middleware"
)

// consumerService provides consumer account management.
type consumerService struct {
	consumerRepo portsrepo.ConsumerRepositoryFacade
}

// NewConsumerService creates a new ConsumerService.
func NewConsumerService(consumerRepo portsrepo.ConsumerRepositoryFacade) portssvc.ConsumerSvcFacade {
	return &consumerService{consumerRepo: consumerRepo}
}

// Ensure consumerService implements the portssvc.ConsumerSvcFacade interface
var _ portssvc.ConsumerSvcFacade = (*consumerService)(nil)

func (s *consumerService) ListConsumers(ctx context.Context) ([]domain.Consumer, error) {
	return s.consumerRepo.ListConsumers(ctx)
}

func (s *consumerService) GetConsumerByID(ctx context.Context, id int64) (*domain.Consumer, error) {
	return s.consumerRepo.FindConsumerByID(ctx, id)
}

func (s *consumerService) CreateConsumer(ctx context.Context, req dto.CreateConsumerRequest) (*domain.Consumer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	saved, err := s.consumerRepo.CreateConsumer(ctx, consumerFromRequest(0, req))
	if err != nil {
		return nil, err
	}

	logger.Info("Consumer created", slog.Int64("consumer_id", saved.ID), slog.String("meter_number", saved.MeterNumber))
	return saved, nil
}

func (s *consumerService) UpdateConsumer(ctx context.Context, id int64, req dto.UpdateConsumerRequest) (*domain.Consumer, error) {
	return s.consumerRepo.UpdateConsumer(ctx, consumerFromRequest(id, req))
}

func (s *consumerService) DeleteConsumer(ctx context.Context, id int64) error {
	return s.consumerRepo.DeleteConsumer(ctx, id)
}

func consumerFromRequest(id int64, req dto.CreateConsumerRequest) domain.Consumer {
	return domain.Consumer{
		ID:            id,
		Name:          req.Name,
		Address:       req.Address,
		RateType:      req.RateType,
		MeterCode:     req.MeterCode,
		MeterNumber:   req.MeterNumber,
		ClusterNumber: req.ClusterNumber,
		Senior:        req.Senior,
		SeniorStart:   req.SeniorStart,
		SeniorExpiry:  req.SeniorExpiry,
		Status:        *req.Status,
		PrevReading:   *req.PrevReading,
		CurReading:    *req.CurReading,
	}
}
