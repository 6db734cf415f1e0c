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

// machineService provides POS machine management and OR-number issuance.
type machineService struct {
	machineRepo portsrepo.MachineRepositoryFacade
}

// NewMachineService creates a new MachineService.
func NewMachineService(machineRepo portsrepo.MachineRepositoryFacade) portssvc.MachineSvcFacade {
	return &machineService{machineRepo: machineRepo}
}

// Ensure machineService implements the portssvc.MachineSvcFacade interface
var _ portssvc.MachineSvcFacade = (*machineService)(nil)

func (s *machineService) ListMachines(ctx context.Context) ([]domain.POSMachine, error) {
	return s.machineRepo.ListMachines(ctx)
}

func (s *machineService) GetMachineByID(ctx context.Context, id int) (*domain.POSMachine, error) {
	return s.machineRepo.FindMachineByID(ctx, id)
}

func (s *machineService) CreateMachine(ctx context.Context, req dto.CreateMachineRequest) (*domain.POSMachine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	machine := domain.POSMachine{
		PosName:   req.PosName,
		SerialNum: req.SerialNum,
		Model:     req.Model,
	}
	saved, err := s.machineRepo.CreateMachine(ctx, machine)
	if err != nil {
		return nil, err
	}

	logger.Info("POS machine registered", slog.Int("machine_id", saved.ID), slog.String("serial_num", saved.SerialNum))
	return saved, nil
}

func (s *machineService) UpdateMachine(ctx context.Context, id int, req dto.UpdateMachineRequest) (*domain.POSMachine, error) {
	machine := domain.POSMachine{
		ID:        id,
		PosName:   req.PosName,
		SerialNum: req.SerialNum,
		Model:     req.Model,
	}
	return s.machineRepo.UpdateMachine(ctx, machine)
}

func (s *machineService) DeleteMachine(ctx context.Context, id int) (*domain.POSMachine, error) {
	return s.machineRepo.DeleteMachine(ctx, id)
}

// PeekSeries reads the machine's current OR counter without advancing it.
func (s *machineService) PeekSeries(ctx context.Context, serialNum string) (*domain.ORSeries, error) {
	return s.machineRepo.PeekSeries(ctx, serialNum)
}

// ForwardSeries advances the machine's OR counter by one and returns the new
// value. Allocation is storage-backed, so concurrent callers across processes
// still receive distinct numbers.
func (s *machineService) ForwardSeries(ctx context.Context, serialNum string) (*domain.ORSeries, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	series, err := s.machineRepo.ForwardSeries(ctx, serialNum)
	if err != nil {
		return nil, err
	}

	logger.Info("OR series advanced",
		slog.String("serial_num", serialNum),
		slog.String("or_number", series.FormattedCurrent),
	)
	return series, nil
}
