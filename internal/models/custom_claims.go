package models

import "github.com/golang-jwt/jwt/v5"

const (
	RoleOperator = "operator"
	RoleAnalyst  = "analyst"
)

// CustomClaims represents the custom claims in our JWT tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}
