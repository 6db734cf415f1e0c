package repositories

import (
	"context"

	"github.com/mecmec98/billingrestapi/internal/core/domain"
)

// MachineRepositoryFacade defines operations for POS machine data, including
// the OR-number series counter.
type MachineRepositoryFacade interface {
	ListMachines(ctx context.Context) ([]domain.POSMachine, error)
	FindMachineByID(ctx context.Context, id int) (*domain.POSMachine, error)
	CreateMachine(ctx context.Context, machine domain.POSMachine) (*domain.POSMachine, error)
	UpdateMachine(ctx context.Context, machine domain.POSMachine) (*domain.POSMachine, error)
	DeleteMachine(ctx context.Context, id int) (*domain.POSMachine, error)

	// PeekSeries reads the machine's OR counter without advancing it.
	PeekSeries(ctx context.Context, serialNum string) (*domain.ORSeries, error)

	// ForwardSeries atomically advances the OR counter and returns the new
	// value. The increment runs as a single row-locking UPDATE so concurrent
	// issuers never receive the same number.
	ForwardSeries(ctx context.Context, serialNum string) (*domain.ORSeries, error)
}

// ConsumerRepositoryFacade defines operations for consumer data.
type ConsumerRepositoryFacade interface {
	ListConsumers(ctx context.Context) ([]domain.Consumer, error)
	FindConsumerByID(ctx context.Context, id int64) (*domain.Consumer, error)
	CreateConsumer(ctx context.Context, consumer domain.Consumer) (*domain.Consumer, error)
	UpdateConsumer(ctx context.Context, consumer domain.Consumer) (*domain.Consumer, error)
	DeleteConsumer(ctx context.Context, id int64) error
}

// UserRepositoryFacade defines operations for user data.
type UserRepositoryFacade interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	FindUserByID(ctx context.Context, id int) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	UpdateUserPassword(ctx context.Context, id int, passwordHash string) error
	DeleteUser(ctx context.Context, id int) error
}
