package handlers

import (
	"net/http"

	"creditnext/internal/dto"
	"creditnext/internal/errors"
	"creditnext/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AssessmentHandler serves the stored assessment history
type AssessmentHandler struct {
	assessments services.AssessmentServiceInterface
}

func NewAssessmentHandler(assessments services.AssessmentServiceInterface) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

// List handles GET /api/v1/assessments
func (h *AssessmentHandler) List(c echo.Context) error {
	var params dto.AssessmentFilterParams
	err := echo.QueryParamsBinder(c).
		String("risk_grade", &params.RiskGrade).
		String("industry", &params.Industry).
		Int("offset", &params.Offset).
		Int("limit", &params.Limit).
		BindError()
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("offset and limit must be integers"))
	}
	if params.MinScore, err = optionalIntQuery(c, "min_score"); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if params.MaxScore, err = optionalIntQuery(c, "max_score"); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(params); err != nil {
		return err
	}

	filters := params.ToFilters()
	assessments, total, err := h.assessments.ListAssessments(c.Request().Context(), filters)
	if err != nil {
		return sendServiceError(c, err)
	}

	resp := dto.ListAssessmentsResponse{
		Assessments: make([]dto.AssessmentResponse, len(assessments)),
		Total:       total,
		Offset:      filters.Offset,
		Limit:       filters.Limit,
	}
	for i := range assessments {
		resp.Assessments[i] = dto.NewAssessmentResponse(&assessments[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// Stats handles GET /api/v1/assessments/stats
func (h *AssessmentHandler) Stats(c echo.Context) error {
	industry := c.QueryParam("industry")

	grades, err := h.assessments.GradeDistribution(c.Request().Context(), industry)
	if err != nil {
		return sendServiceError(c, err)
	}

	resp := dto.GradeDistributionResponse{Grades: grades}
	for _, g := range grades {
		resp.Total += g.Count
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/assessments/:id
func (h *AssessmentHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.AssessmentInvalidID)
	}

	assessment, err := h.assessments.GetAssessment(c.Request().Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewAssessmentResponse(assessment))
}
