package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"creditnext/internal/config"
	"creditnext/internal/dto"
	"creditnext/internal/handlers"
	"creditnext/internal/scoring"
	"creditnext/internal/services"
	"creditnext/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var (
	artifactOnce sync.Once
	artifact     *scoring.Artifact
	artifactErr  error
)

func testArtifact(t *testing.T) *scoring.Artifact {
	t.Helper()
	artifactOnce.Do(func() {
		cfg := &config.ModelConfig{Samples: 400, Trees: 10, MaxDepth: 2, LearningRate: 0.2}
		artifact, artifactErr = scoring.Train(7, services.TrainOptions(cfg, nil)...)
	})
	require.NoError(t, artifactErr)
	return artifact
}

func TestModelHandler(t *testing.T) {
	suite.Run(t, new(ModelHandlerSuite))
}

type ModelHandlerSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	models *service_mocks.MockModelServiceInterface
	e      *echo.Echo
}

func (s *ModelHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.models = service_mocks.NewMockModelServiceInterface(s.ctrl)

	h := handlers.NewModelHandler(s.models)
	s.e = newTestEcho()
	s.e.GET("/api/v1/model", h.Info)
	s.e.POST("/api/v1/model/retrain", h.Retrain)
}

func (s *ModelHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ModelHandlerSuite) TestInfo() {
	a := testArtifact(s.T())
	s.models.EXPECT().Info(gomock.Any()).Return(a, nil)

	rec := doJSON(s.e, http.MethodGet, "/api/v1/model", nil)

	s.Require().Equal(http.StatusOK, rec.Code)
	var resp dto.ModelInfoResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(7), resp.Seed)
	s.Equal(a.Backend(), resp.Backend)
	s.Len(resp.FeatureOrder, len(a.FeatureOrder()))
	s.False(resp.Explainer)

	s.Require().Len(resp.FeatureScaling, len(resp.FeatureOrder))
	for i, name := range a.FeatureOrder() {
		s.InDelta(a.Scaler().Mean()[i], resp.FeatureScaling[name].Mean, 1e-9, name)
		s.Greater(resp.FeatureScaling[name].Scale, 0.0, name)
	}
}

func (s *ModelHandlerSuite) TestInfo_NotReady() {
	s.models.EXPECT().Info(gomock.Any()).Return(nil, services.ErrModelNotReady)

	rec := doJSON(s.e, http.MethodGet, "/api/v1/model", nil)

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("MODEL_001", decodeError(s.T(), rec).Error.Code)
}

func (s *ModelHandlerSuite) TestRetrain_WithSeed() {
	s.models.EXPECT().
		Retrain(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, seed *int64) (*scoring.Artifact, error) {
			s.Require().NotNil(seed)
			s.Equal(int64(7), *seed)
			return testArtifact(s.T()), nil
		})

	rec := doJSON(s.e, http.MethodPost, "/api/v1/model/retrain", map[string]int{"seed": 7})

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ModelHandlerSuite) TestRetrain_NoBody() {
	s.models.EXPECT().Retrain(gomock.Any(), gomock.Nil()).Return(testArtifact(s.T()), nil)

	rec := doJSON(s.e, http.MethodPost, "/api/v1/model/retrain", nil)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ModelHandlerSuite) TestRetrain_NegativeSeed() {
	rec := doJSON(s.e, http.MethodPost, "/api/v1/model/retrain", map[string]int{"seed": -1})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", decodeError(s.T(), rec).Error.Code)
}

func (s *ModelHandlerSuite) TestRetrain_Failed() {
	s.models.EXPECT().Retrain(gomock.Any(), gomock.Nil()).Return(nil, services.ErrRetrainFailed)

	rec := doJSON(s.e, http.MethodPost, "/api/v1/model/retrain", nil)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("MODEL_002", decodeError(s.T(), rec).Error.Code)
}
