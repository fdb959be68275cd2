package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/id"
	"fleetledger/internal/core/tx"
	"fleetledger/pkg/logger"
)

// ServiceConfig holds auth service configuration.
type ServiceConfig struct {
	MaxLoginAttempts  int
	LockDuration      time.Duration
	PasswordMinLength int
}

// DefaultServiceConfig returns default configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxLoginAttempts:  5,
		LockDuration:      15 * time.Minute,
		PasswordMinLength: 8,
	}
}

// Service provides authentication logic.
type Service struct {
	userRepo   UserRepository
	txManager  tx.Manager
	jwtService *JWTService
	config     ServiceConfig
}

// NewService creates a new auth service.
func NewService(
	userRepo UserRepository,
	txManager tx.Manager,
	jwtService *JWTService,
	config ServiceConfig,
) *Service {
	return &Service{
		userRepo:   userRepo,
		txManager:  txManager,
		jwtService: jwtService,
		config:     config,
	}
}

// Register registers a new user for a company.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if id.IsNil(req.CompanyID) {
		return nil, apperror.NewValidation("company is required").WithDetail("field", "companyId")
	}
	if req.Email == "" {
		return nil, apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	if len(req.Password) < s.config.PasswordMinLength {
		return nil, apperror.NewValidation(
			fmt.Sprintf("password must be at least %d characters", s.config.PasswordMinLength),
		).WithDetail("field", "password")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, apperror.NewConflict("email already registered").WithDetail("email", req.Email)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := NewUser(req.CompanyID, req.Email, string(passwordHash))
	user.FullName = req.FullName

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates credentials and issues an access token.
// Failed attempts count toward a temporary lockout.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Session, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, apperror.NewValidation("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		if apperror.IsNotFound(err) {
			// Same error as a wrong password so probes can't enumerate emails
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}

	if err := user.CanLogin(); err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		user.RecordFailedLogin(s.config.MaxLoginAttempts, s.config.LockDuration)
		if saveErr := s.saveLoginState(ctx, user); saveErr != nil {
			logger.Warn(ctx, "failed to record login attempt", "error", saveErr)
		}
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	user.RecordSuccessfulLogin()
	if err := s.saveLoginState(ctx, user); err != nil {
		logger.Warn(ctx, "failed to record login", "error", err)
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(
		user.ID.String(), user.CompanyID.String(), user.Email, user.IsAdmin,
	)
	if err != nil {
		return nil, err
	}

	return &Session{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		TokenType:   "Bearer",
		User:        user,
	}, nil
}

// GetUserByID returns a user by id.
func (s *Service) GetUserByID(ctx context.Context, userID id.ID) (*User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *Service) saveLoginState(ctx context.Context, user *User) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.userRepo.Update(ctx, user)
	})
}
