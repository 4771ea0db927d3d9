package services_test

import (
	"context"
	"errors"
	"testing"

	"creditnext/internal/scoring"
	"creditnext/internal/services"
	"creditnext/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ModelServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	store   *service_mocks.MockModelStoreInterface
	metrics *service_mocks.MockMetricsRecorderInterface
	audit   *service_mocks.MockAuditLoggerInterface
	service services.ModelServiceInterface
}

func TestModelServiceSuite(t *testing.T) {
	suite.Run(t, new(ModelServiceTestSuite))
}

func (s *ModelServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.store = service_mocks.NewMockModelStoreInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.audit = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.service = services.NewModelService(s.store, s.metrics, s.audit, 42)
}

func (s *ModelServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ModelServiceTestSuite) TestInfo() {
	artifact := trainedArtifact(s.T())
	s.store.EXPECT().Get(gomock.Any()).Return(artifact, nil)

	got, err := s.service.Info(s.ctx)

	s.Require().NoError(err)
	s.Same(artifact, got)
}

func (s *ModelServiceTestSuite) TestInfo_NotReady() {
	s.store.EXPECT().Get(gomock.Any()).Return(nil, context.Canceled)

	_, err := s.service.Info(s.ctx)

	s.ErrorIs(err, services.ErrModelNotReady)
	s.ErrorIs(err, context.Canceled)
}

func (s *ModelServiceTestSuite) TestReady() {
	s.store.EXPECT().Ready().Return(true)
	s.True(s.service.Ready())
}

func (s *ModelServiceTestSuite) TestRetrain_DefaultSeed() {
	artifact := trainedArtifact(s.T())
	s.store.EXPECT().Retrain(gomock.Any(), int64(42)).Return(artifact, nil)
	s.metrics.EXPECT().IncrementCounter("model.retrain", map[string]string{"status": "success"})
	s.metrics.EXPECT().RecordProcessingTime("model.training", gomock.Any())
	s.metrics.EXPECT().RecordGauge("model.holdout_auc", artifact.Holdout().AUC, gomock.Nil())
	s.audit.EXPECT().LogModelRetrained(gomock.Any(), int64(42), artifact.Backend(), artifact.Holdout().AUC, gomock.Any())

	got, err := s.service.Retrain(s.ctx, nil)

	s.Require().NoError(err)
	s.Same(artifact, got)
}

func (s *ModelServiceTestSuite) TestRetrain_ExplicitSeed() {
	artifact := trainedArtifact(s.T())
	seed := int64(7)
	s.store.EXPECT().Retrain(gomock.Any(), seed).Return(artifact, nil)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any())
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any())
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any())
	s.audit.EXPECT().LogModelRetrained(gomock.Any(), seed, gomock.Any(), gomock.Any(), gomock.Any())

	_, err := s.service.Retrain(s.ctx, &seed)
	s.NoError(err)
}

func (s *ModelServiceTestSuite) TestRetrain_NegativeSeed() {
	seed := int64(-1)

	_, err := s.service.Retrain(s.ctx, &seed)

	s.ErrorIs(err, services.ErrInvalidSeed)
}

func (s *ModelServiceTestSuite) TestRetrain_Failure() {
	cause := errors.New("boom")
	s.store.EXPECT().Retrain(gomock.Any(), int64(42)).Return(nil, cause)
	s.metrics.EXPECT().IncrementCounter("model.retrain", map[string]string{"status": "failed"})
	s.audit.EXPECT().LogModelRetrainFailed(gomock.Any(), int64(42), cause)

	_, err := s.service.Retrain(s.ctx, nil)

	s.ErrorIs(err, services.ErrRetrainFailed)
	s.ErrorIs(err, cause)
}

// Retraining through a real store replaces the artifact seen by Info
func (s *ModelServiceTestSuite) TestRetrain_RealStore() {
	store := scoring.NewModelStore(42, nil, services.TrainOptions(smallModelConfig(), nil)...)
	svc := services.NewModelService(store, nil, nil, 42)

	s.False(svc.Ready())
	first, err := svc.Info(s.ctx)
	s.Require().NoError(err)
	s.True(svc.Ready())

	seed := int64(9)
	second, err := svc.Retrain(s.ctx, &seed)
	s.Require().NoError(err)
	s.Equal(int64(9), second.Seed())
	s.NotSame(first, second)

	current, err := svc.Info(s.ctx)
	s.Require().NoError(err)
	s.Same(second, current)
}
