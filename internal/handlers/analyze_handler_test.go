package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"creditnext/internal/dto"
	"creditnext/internal/handlers"
	"creditnext/internal/models"
	"creditnext/internal/ocr"
	"creditnext/internal/services"
	"creditnext/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestAnalyzeHandler(t *testing.T) {
	suite.Run(t, new(AnalyzeHandlerSuite))
}

type AnalyzeHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	assessments *service_mocks.MockAssessmentServiceInterface
	e           *echo.Echo
}

func (s *AnalyzeHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.assessments = service_mocks.NewMockAssessmentServiceInterface(s.ctrl)

	h := handlers.NewAnalyzeHandler(s.assessments)
	s.e = newTestEcho()
	s.e.POST("/api/v1/analyze", h.Analyze)
	s.e.POST("/api/v1/analyze/batch", h.AnalyzeBatch)
}

func (s *AnalyzeHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func sampleEvaluation(score int) models.Evaluation {
	grade := models.GradeForScore(score)
	income := decimal.RequireFromString("11666.67")
	return models.Evaluation{
		Industry:              models.IndustryFreelance,
		IndustryFactor:        models.FactorFreelance,
		ProxyNetProfit:        decimal.NewFromInt(3825),
		UnadjustedNetProfit:   decimal.NewFromInt(2550),
		MonthlyIncomeEstimate: income,
		CreditScore:           score,
		RiskGrade:             grade,
		RecommendedLoan:       models.RecommendedLoanAmount(grade, income),
		TransactionCount:      2,
	}
}

func (s *AnalyzeHandlerSuite) TestAnalyze_Success() {
	id := uuid.New()
	s.assessments.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []models.Transaction) (*models.AssessmentResult, error) {
			s.Require().Len(txs, 2)
			s.Equal(models.TransactionTypeIncome, txs[0].Type)
			s.True(txs[0].Amount.Equal(decimal.NewFromInt(35000)))
			return &models.AssessmentResult{Evaluation: sampleEvaluation(780), AssessmentID: &id}, nil
		})

	rec := doJSON(s.e, http.MethodPost, "/api/v1/analyze", ledgerBody(
		tx("ค่าจ้างออกแบบโลโก้", "35000", "Income"),
		tx("ค่าอินเทอร์เน็ต", "950", "Expense"),
	))

	s.Require().Equal(http.StatusOK, rec.Code)
	var resp dto.AnalyzeResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(780, resp.CreditScore)
	s.Equal(models.RiskGradeA, resp.RiskGrade)
	s.Equal(models.RiskGradeA.Label(), resp.RiskGradeLabel)
	s.Require().NotNil(resp.AssessmentID)
	s.Equal(id, *resp.AssessmentID)
}

func (s *AnalyzeHandlerSuite) TestAnalyze_EmptyLedger() {
	s.assessments.EXPECT().
		Evaluate(gomock.Any(), gomock.Len(0)).
		Return(&models.AssessmentResult{Evaluation: sampleEvaluation(650)}, nil)

	rec := doJSON(s.e, http.MethodPost, "/api/v1/analyze", ledgerBody())

	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "assessment_id")
}

func (s *AnalyzeHandlerSuite) TestAnalyze_MalformedJSON() {
	rec := doJSON(s.e, http.MethodPost, "/api/v1/analyze", `{"transactions": [`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", decodeError(s.T(), rec).Error.Code)
}

func (s *AnalyzeHandlerSuite) TestAnalyze_InvalidTransactionType() {
	rec := doJSON(s.e, http.MethodPost, "/api/v1/analyze", ledgerBody(tx("refund", "10", "Refund")))

	s.Equal(http.StatusBadRequest, rec.Code)
	resp := decodeError(s.T(), rec)
	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Require().Len(resp.Error.Details, 1)
	s.Contains(resp.Error.Details[0], "transactions[0].type")
}

func (s *AnalyzeHandlerSuite) TestAnalyze_NegativeAmount() {
	rec := doJSON(s.e, http.MethodPost, "/api/v1/analyze", ledgerBody(tx("fee", "-5", "Expense")))

	s.Equal(http.StatusBadRequest, rec.Code)
	resp := decodeError(s.T(), rec)
	s.Require().Len(resp.Error.Details, 1)
	s.Contains(resp.Error.Details[0], "transactions[0].amount")
}

func (s *AnalyzeHandlerSuite) TestAnalyze_AmountBeyondCeiling() {
	for _, amount := range []string{"1000000000000.01", "1e400"} {
		rec := doJSON(s.e, http.MethodPost, "/api/v1/analyze", ledgerBody(
			tx("freelance", amount, "Income"),
			tx("fee", "5", "Expense"),
		))

		s.Equal(http.StatusBadRequest, rec.Code, amount)
		resp := decodeError(s.T(), rec)
		s.Equal("VALIDATION_001", resp.Error.Code)
		s.Require().Len(resp.Error.Details, 1)
		s.Contains(resp.Error.Details[0], "transactions[0].amount")
		s.Contains(resp.Error.Details[0], "must not exceed")
	}
}

func (s *AnalyzeHandlerSuite) TestAnalyze_ServiceErrors() {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"model not ready", fmt.Errorf("%w: boom", services.ErrModelNotReady), http.StatusServiceUnavailable, "MODEL_001"},
		{"too many transactions", fmt.Errorf("%w: 5001 exceeds 5000", services.ErrTooManyTransactions), http.StatusRequestEntityTooLarge, "LEDGER_003"},
		{"invalid type", fmt.Errorf("%w: transaction 0: %w", services.ErrInvalidLedger, models.ErrInvalidTransactionType), http.StatusBadRequest, "VALIDATION_005"},
		{"negative amount", fmt.Errorf("%w: transaction 0: %w", services.ErrInvalidLedger, models.ErrNegativeAmount), http.StatusBadRequest, "VALIDATION_006"},
		{"amount too large", fmt.Errorf("%w: transaction 0: %w", services.ErrInvalidLedger, models.ErrAmountTooLarge), http.StatusBadRequest, "VALIDATION_004"},
		{"invalid ledger", services.ErrInvalidLedger, http.StatusBadRequest, "VALIDATION_001"},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, "SYSTEM_003"},
		{"unexpected", fmt.Errorf("disk on fire"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.assessments.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := doJSON(s.e, http.MethodPost, "/api/v1/analyze", ledgerBody(tx("x", "1", "Income")))

			s.Equal(tt.status, rec.Code)
			resp := decodeError(s.T(), rec)
			s.Equal(tt.code, resp.Error.Code)
			s.NotContains(rec.Body.String(), "disk on fire")
		})
	}
}

func (s *AnalyzeHandlerSuite) TestAnalyzeBatch_PreservesOrder() {
	first, second := uuid.New(), uuid.New()
	s.assessments.EXPECT().
		EvaluateBatch(gomock.Any(), gomock.Len(2)).
		Return([]models.AssessmentResult{
			{Evaluation: sampleEvaluation(810), AssessmentID: &first},
			{Evaluation: sampleEvaluation(560), AssessmentID: &second},
		}, nil)

	body := map[string]interface{}{
		"ledgers": []interface{}{
			ledgerBody(tx("design", "50000", "Income")),
			ledgerBody(tx("rent", "20000", "Expense")),
		},
	}
	rec := doJSON(s.e, http.MethodPost, "/api/v1/analyze/batch", body)

	s.Require().Equal(http.StatusOK, rec.Code)
	var resp dto.BatchAnalyzeResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Count)
	s.Require().Len(resp.Results, 2)
	s.Equal(810, resp.Results[0].CreditScore)
	s.Equal(first, *resp.Results[0].AssessmentID)
	s.Equal(560, resp.Results[1].CreditScore)
	s.Equal(models.RiskGradeD, resp.Results[1].RiskGrade)
}

func (s *AnalyzeHandlerSuite) TestAnalyzeBatch_Errors() {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"empty", services.ErrEmptyBatch, "LEDGER_001"},
		{"too large", fmt.Errorf("%w: 51 exceeds 50", services.ErrBatchTooLarge), "LEDGER_002"},
		{"unexpected sentinel", ocr.ErrUnsupportedFile, "OCR_001"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.assessments.EXPECT().EvaluateBatch(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := doJSON(s.e, http.MethodPost, "/api/v1/analyze/batch", map[string]interface{}{"ledgers": []interface{}{}})

			s.Equal(tt.code, decodeError(s.T(), rec).Error.Code)
		})
	}
}
