package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOperatorDisabled   = errors.New("operator login is not configured")
)

// AuthService exchanges the configured operator credentials for an operator token
type AuthService struct {
	username     string
	passwordHash string
	tokens       TokenServiceInterface
	logger       *zap.Logger
}

func NewAuthService(username, passwordHash string, tokens TokenServiceInterface, logger *zap.Logger) AuthServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		username:     username,
		passwordHash: passwordHash,
		tokens:       tokens,
		logger:       logger,
	}
}

// Login checks username and password and returns a signed operator token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if s.passwordHash == "" {
		return "", time.Time{}, ErrOperatorDisabled
	}

	// the hash is compared even for an unknown user so both paths cost the same
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := ComparePassword(password, s.passwordHash)
	if !userOK || !passOK {
		s.logger.Warn("operator login failed",
			zap.String("trace_id", TraceIDFromContext(ctx)),
			zap.String("username", username),
		)
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateOperatorToken(username)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("operator login",
		zap.String("trace_id", TraceIDFromContext(ctx)),
		zap.String("username", username),
		zap.Time("expires_at", expiresAt),
	)
	return token, expiresAt, nil
}
