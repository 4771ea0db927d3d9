package services_test

import (
	"sync"
	"testing"
	"time"

	"creditnext/internal/config"
	"creditnext/internal/models"
	"creditnext/internal/scoring"
	"creditnext/internal/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	artifactOnce sync.Once
	artifact     *scoring.Artifact
	artifactErr  error
)

func smallModelConfig() *config.ModelConfig {
	return &config.ModelConfig{
		Seed:           42,
		Samples:        600,
		Trees:          40,
		MaxDepth:       3,
		LearningRate:   0.1,
		BackgroundSize: 64,
		Explainer:      true,
	}
}

// trainedArtifact trains one small model shared by every test in the package
func trainedArtifact(t *testing.T) *scoring.Artifact {
	t.Helper()
	artifactOnce.Do(func() {
		artifact, artifactErr = scoring.Train(42, services.TrainOptions(smallModelConfig(), nil)...)
	})
	require.NoError(t, artifactErr)
	return artifact
}

func freelanceLedger() []models.Transaction {
	return []models.Transaction{
		{Date: "2025-01-01", Description: "ค่าจ้างออกแบบโลโก้", Amount: decimal.NewFromInt(3500), Type: models.TransactionTypeIncome},
		{Date: "2025-01-05", Description: "ค่าอินเทอร์เน็ต", Amount: decimal.NewFromInt(950), Type: models.TransactionTypeExpense},
	}
}

func retailLedger() []models.Transaction {
	return []models.Transaction{
		{Date: "2025-02-01", Description: "ขายของหน้าร้าน", Amount: decimal.NewFromInt(12000), Type: models.TransactionTypeIncome},
		{Date: "2025-02-03", Description: "ซื้อวัตถุดิบ", Amount: decimal.NewFromInt(4200), Type: models.TransactionTypeExpense},
	}
}

// randomLedger builds n valid transactions with neutral descriptions
func randomLedger(n int) []models.Transaction {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)

	ledger := make([]models.Transaction, n)
	for i := range ledger {
		ledger[i] = models.Transaction{
			Date:        gofakeit.DateRange(start, end).Format("2006-01-02"),
			Description: gofakeit.Sentence(4),
			Amount:      decimal.NewFromFloat(gofakeit.Float64Range(10, 20000)).Round(2),
			Type:        gofakeit.RandomString([]string{models.TransactionTypeIncome, models.TransactionTypeExpense}),
		}
	}
	return ledger
}
