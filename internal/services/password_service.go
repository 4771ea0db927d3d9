package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// BCryptCost is used for operator password hashes
	BCryptCost = 12

	MinPasswordLength = 12
	MaxPasswordLength = 72 // bcrypt limit
)

var (
	ErrPasswordEmpty    = errors.New("password cannot be empty")
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrPasswordTooLong  = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
)

// HashOperatorPassword produces the bcrypt hash stored in OPERATOR_PASSWORD_HASH
func HashOperatorPassword(password string) (string, error) {
	return hashPassword(password, BCryptCost)
}

func hashPassword(password string, cost int) (string, error) {
	switch {
	case password == "":
		return "", ErrPasswordEmpty
	case len(password) < MinPasswordLength:
		return "", ErrPasswordTooShort
	case len(password) > MaxPasswordLength:
		return "", ErrPasswordTooLong
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// ComparePassword reports whether password matches the bcrypt hash
func ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
