package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/vkapoor/studentinfo/internal/app/models"
	"github.com/vkapoor/studentinfo/internal/app/models/dto"
	"github.com/vkapoor/studentinfo/internal/pkg/apperrors"
	"github.com/vkapoor/studentinfo/internal/pkg/auth"
)

// UserReader is the credential-store access the authenticator needs
type UserReader interface {
	GetActiveByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	users      UserReader
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserReader, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		users:      users,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies the credentials against the credential store and issues a
// signed, time-limited session token. Unknown usernames and wrong passwords
// are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetActiveByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login lookup failed: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn().Str("username", req.Username).Msg("Password mismatch")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("userType", string(user.UserType)).Msg("User logged in")

	return &dto.LoginResponse{
		Message: "Login successful!",
		Token:   token,
		User: dto.UserInfo{
			UserID:   user.ID,
			Username: user.Username,
			UserType: user.UserType,
			FullName: user.FullName,
		},
	}, nil
}
