package dto

import "time"

// TokenRequest exchanges operator credentials for a bearer token
type TokenRequest struct {
	Username string `json:"username" validate:"required,max=128"`
	Password string `json:"password" validate:"required,max=72"`
}

// TokenResponse carries an operator access token
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// NewTokenResponse wraps a signed token as a bearer token response
func NewTokenResponse(token string, expiresAt time.Time) TokenResponse {
	return TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}
}
