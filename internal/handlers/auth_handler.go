package handlers

import (
	"net/http"

	"creditnext/internal/dto"
	"creditnext/internal/errors"
	"creditnext/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles operator authentication
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Token handles POST /api/v1/auth/token
func (h *AuthHandler) Token(c echo.Context) error {
	var req dto.TokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	token, expiresAt, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTokenResponse(token, expiresAt))
}
