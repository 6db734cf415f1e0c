package services

import (
	"context"

	"github.com/mecmec98/billingrestapi/internal/core/domain"
	"github.com/mecmec98/billingrestapi/internal/dto"
)

// ConsumerSvcFacade defines the consumer surface consumed by the HTTP handlers.
type ConsumerSvcFacade interface {
	ListConsumers(ctx context.Context) ([]domain.Consumer, error)
	GetConsumerByID(ctx context.Context, id int64) (*domain.Consumer, error)
	CreateConsumer(ctx context.Context, req dto.CreateConsumerRequest) (*domain.Consumer, error)
	UpdateConsumer(ctx context.Context, id int64, req dto.UpdateConsumerRequest) (*domain.Consumer, error)
	DeleteConsumer(ctx context.Context, id int64) error
}
