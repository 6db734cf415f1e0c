package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/mecmec98/billingrestapi/internal/apperrors"
	"github.com/mecmec98/billingrestapi/internal/core/domain"
	portsrepo "github.com/mecmec98/billingrestapi/internal/core/ports/repositories"
	portssvc "github.com/mecmec98/billingrestapi/internal/core/ports/services"
	"github.com/mecmec98/billingrestapi/internal/dto"
	"github.com/mecmec98/billingrestapi/internal/middleware"
	"github.com/mecmec98/billingrestapi/internal/utils"
	"github.com/mecmec98/billingrestapi/pkg/config"
)

// ErrInvalidCredentials is returned on any login failure. The cause (unknown
// username vs wrong password) is deliberately not distinguished.
var ErrInvalidCredentials = errors.New("invalid username or password")

// userService provides user management and authentication.
type userService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{cfg: cfg, userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// Login verifies the credentials and issues a signed bearer token.
func (s *userService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Login failed: unknown username", slog.String("username", req.Username))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Login failed: wrong password", slog.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(strconv.Itoa(user.ID), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sign token", err)
	}

	logger.Info("User logged in", slog.Int("user_id", user.ID), slog.String("username", user.Username))
	return &dto.LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx)
}

func (s *userService) GetUserByID(ctx context.Context, id int) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, id)
}

// CreateUser hashes the password and stores the new user.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	role := req.Role
	if role == "" {
		role = "cashier"
	}

	saved, err := s.userRepo.CreateUser(ctx, domain.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User created", slog.Int("user_id", saved.ID), slog.String("username", saved.Username))
	return saved, nil
}

// UpdatePassword replaces a user's password hash.
func (s *userService) UpdatePassword(ctx context.Context, id int, req dto.UpdatePasswordRequest) error {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return apperrors.NewAppError(500, "failed to hash password", err)
	}
	return s.userRepo.UpdateUserPassword(ctx, id, hash)
}

func (s *userService) DeleteUser(ctx context.Context, id int) error {
	return s.userRepo.DeleteUser(ctx, id)
}
