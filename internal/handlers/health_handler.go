package handlers

import (
	"context"
	"net/http"
	"time"

	"creditnext/internal/errors"
	"creditnext/internal/services"

	"github.com/labstack/echo/v4"
)

const healthTimeout = 2 * time.Second

// DatabaseChecker is satisfied by *database.DB
type DatabaseChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db    DatabaseChecker
	model services.ModelServiceInterface
	now   func() time.Time
}

// NewHealthCheckHandler creates a new health check handler; db may be nil
func NewHealthCheckHandler(db DatabaseChecker, model services.ModelServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, model: model, now: time.Now}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status     string `json:"status"`
	ModelReady bool   `json:"model_ready"`
	Database   string `json:"database"`
	Time       string `json:"time"`
}

// HealthCheck reports liveness, model readiness and database connectivity.
// The model is trained lazily, so a missing model does not fail the check.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	database := "disabled"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
		defer cancel()

		if err := h.db.HealthCheck(ctx); err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}
		database = "ok"
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:     "healthy",
		ModelReady: h.model.Ready(),
		Database:   database,
		Time:       h.now().UTC().Format(time.RFC3339),
	})
}
