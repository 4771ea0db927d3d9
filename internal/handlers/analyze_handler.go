package handlers

import (
	"net/http"

	"creditnext/internal/dto"
	"creditnext/internal/errors"
	"creditnext/internal/models"
	"creditnext/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyzeHandler scores ledgers
type AnalyzeHandler struct {
	assessments services.AssessmentServiceInterface
}

func NewAnalyzeHandler(assessments services.AssessmentServiceInterface) *AnalyzeHandler {
	return &AnalyzeHandler{assessments: assessments}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.assessments.Evaluate(c.Request().Context(), req.Ledger())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAnalyzeResponse(result.Evaluation, result.AssessmentID))
}

// AnalyzeBatch handles POST /api/v1/analyze/batch; results keep the request order
func (h *AnalyzeHandler) AnalyzeBatch(c echo.Context) error {
	var req dto.BatchAnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ledgers := make([][]models.Transaction, len(req.Ledgers))
	for i, l := range req.Ledgers {
		ledgers[i] = l.Ledger()
	}

	results, err := h.assessments.EvaluateBatch(c.Request().Context(), ledgers)
	if err != nil {
		return sendServiceError(c, err)
	}

	resp := dto.BatchAnalyzeResponse{
		Results: make([]dto.AnalyzeResponse, len(results)),
		Count:   len(results),
	}
	for i, r := range results {
		resp.Results[i] = dto.NewAnalyzeResponse(r.Evaluation, r.AssessmentID)
	}
	return c.JSON(http.StatusOK, resp)
}
