package services

import (
	"context"

	"github.com/mecmec98/billingrestapi/internal/core/domain"
	"github.com/mecmec98/billingrestapi/internal/dto"
)

// UserSvcFacade defines the user management and authentication surface.
type UserSvcFacade interface {
	// Login verifies username/password and issues a signed bearer token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id int) (*domain.User, error)
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int, req dto.UpdatePasswordRequest) error
	DeleteUser(ctx context.Context, id int) error
}
