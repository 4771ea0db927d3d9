package middleware

import (
	stderrors "errors"

	"creditnext/internal/errors"
	"creditnext/internal/handlers"
	"creditnext/internal/models"
	"creditnext/internal/services"

	"github.com/labstack/echo/v4"
)

// OperatorContextKey holds the token subject of an authenticated operator
const OperatorContextKey = "operator"

// RequireOperator accepts only requests carrying a valid operator bearer token
func RequireOperator(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateOperatorToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			if claims.Role != models.RoleOperator {
				return handlers.SendError(c, errors.AuthInsufficientPermission)
			}

			c.Set(OperatorContextKey, claims.Subject)
			c.Set("token_jti", claims.ID)
			return next(c)
		}
	}
}
