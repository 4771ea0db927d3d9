package handlers

import (
	"net/http"

	"creditnext/internal/dto"
	"creditnext/internal/errors"
	"creditnext/internal/services"

	"github.com/labstack/echo/v4"
)

type ModelHandler struct {
	models services.ModelServiceInterface
}

func NewModelHandler(models services.ModelServiceInterface) *ModelHandler {
	return &ModelHandler{models: models}
}

// Info handles GET /api/v1/model
func (h *ModelHandler) Info(c echo.Context) error {
	artifact, err := h.models.Info(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewModelInfoResponse(artifact))
}

// Retrain handles POST /api/v1/model/retrain. The body is optional.
func (h *ModelHandler) Retrain(c echo.Context) error {
	var req dto.RetrainRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
		}
		if err := c.Validate(req); err != nil {
			return err
		}
	}

	artifact, err := h.models.Retrain(c.Request().Context(), req.Seed)
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewModelInfoResponse(artifact))
}
