package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bizledger/inventory_billing_app/internal/apperrors"
	"github.com/bizledger/inventory_billing_app/internal/core/domain"
	portsrepo "github.com/bizledger/inventory_billing_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/inventory_billing_app/internal/core/ports/services"
	"github.com/bizledger/inventory_billing_app/internal/dto"
	"github.com/bizledger/inventory_billing_app/internal/platform/config"
	"github.com/bizledger/inventory_billing_app/internal/utils"
)

// ErrInvalidCredentials is returned for any login failure so callers cannot
// probe which emails exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// authService issues tokens and registers accounts.
type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.AuthSvc {
	return &authService{userRepo: userRepo, cfg: cfg}
}

var _ portssvc.AuthSvc = (*authService)(nil)

// Register creates a new user account. The role defaults to employee; only
// the admin CLI or an admin endpoint assigns higher roles.
func (s *authService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleEmployee
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	now := time.Now().UTC()
	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, &user); err != nil {
		s.LogError(ctx, err, "failed to register user", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "user registered", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

// Login verifies credentials and issues a signed token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvalidCredentials)
		}
		return nil, err
	}
	if !user.IsActive || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvalidCredentials)
	}

	token, err := utils.GenerateJWT(user.UserID, user.Role, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sign token", err)
	}

	now := time.Now().UTC()
	if err := s.userRepo.MarkUserLastLogin(ctx, user.UserID, now); err != nil {
		// Login still succeeds; the timestamp is best-effort.
		s.LogError(ctx, err, "failed to record last login", slog.String("user_id", user.UserID))
	}
	user.LastLoginAt = &now

	s.LogInfo(ctx, "user logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}
