package services

import (
	"context"

	"github.com/mecmec98/billingrestapi/internal/core/domain"
	"github.com/mecmec98/billingrestapi/internal/dto"
)

// MachineSvcFacade defines the POS machine surface consumed by the HTTP
// handlers, including OR-number series issuance.
type MachineSvcFacade interface {
	ListMachines(ctx context.Context) ([]domain.POSMachine, error)
	GetMachineByID(ctx context.Context, id int) (*domain.POSMachine, error)
	CreateMachine(ctx context.Context, req dto.CreateMachineRequest) (*domain.POSMachine, error)
	UpdateMachine(ctx context.Context, id int, req dto.UpdateMachineRequest) (*domain.POSMachine, error)
	DeleteMachine(ctx context.Context, id int) (*domain.POSMachine, error)
	PeekSeries(ctx context.Context, serialNum string) (*domain.ORSeries, error)
	ForwardSeries(ctx context.Context, serialNum string) (*domain.ORSeries, error)
}
