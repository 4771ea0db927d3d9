package scoring

import (
	"math"

	"creditnext/internal/features"
	"creditnext/internal/industry"
	"creditnext/internal/models"
)

// CreditScore maps a default probability onto the 300-900 scale, rounding half away from zero
func CreditScore(pDefault float64) int {
	if math.IsNaN(pDefault) {
		pDefault = 1
	}
	pDefault = math.Min(math.Max(pDefault, 0), 1)
	score := int(math.Round(float64(models.MaxCreditScore) - pDefault*600))
	if score < models.MinCreditScore {
		return models.MinCreditScore
	}
	if score > models.MaxCreditScore {
		return models.MaxCreditScore
	}
	return score
}

// Score runs one feature vector through the artifact
func Score(artifact *Artifact, fv models.FeatureVector) models.ScoreResult {
	values := fv.Map()
	var raw Row
	for j, name := range artifact.featureOrder {
		raw[j] = values[name]
	}
	x := artifact.scaler.Transform(raw)

	p := artifact.classifier.PredictProba(x)
	if math.IsNaN(p) {
		p = 1
	}
	p = math.Min(math.Max(p, 0), 1)

	result := models.ScoreResult{
		CreditScore:        CreditScore(p),
		DefaultProbability: p,
	}

	if artifact.explainer != nil {
		if attr, err := artifact.explainer.Attribute(x); err == nil {
			result.BaseValue = attr.BaseValue
			result.Contributions = make(map[string]float64, models.NumFeatures)
			for j, name := range artifact.featureOrder {
				result.Contributions[name] = attr.Values[j]
			}
			result.Method = models.AttributionShapley
			return result
		}
	}

	result.BaseValue = 0
	result.Contributions = HeuristicContributions(fv)
	result.Method = models.AttributionHeuristic
	return result
}

var defaultIndustryClassifier = industry.NewClassifier()

// Evaluate runs a ledger through classification, feature extraction and scoring
func Evaluate(artifact *Artifact, transactions []models.Transaction) models.Evaluation {
	return EvaluateWith(artifact, defaultIndustryClassifier, transactions)
}

// EvaluateWith is Evaluate with a caller-supplied industry classifier.
// Features are extracted from the industry-adjusted profit, which is also the reported proxy profit.
func EvaluateWith(artifact *Artifact, classifier *industry.Classifier, transactions []models.Transaction) models.Evaluation {
	assessment := classifier.Classify(transactions)
	fv := features.Extract(transactions, assessment.Factor, assessment.AdjustedNetProfit)
	result := Score(artifact, fv)
	grade := models.GradeForScore(result.CreditScore)

	return models.Evaluation{
		Industry:              assessment.Industry,
		IndustryFactor:        assessment.Factor,
		ProxyNetProfit:        assessment.AdjustedNetProfit,
		UnadjustedNetProfit:   assessment.ProxyNetProfit,
		MonthlyIncomeEstimate: assessment.MonthlyIncomeEstimate,
		Features:              fv,
		CreditScore:           result.CreditScore,
		RiskGrade:             grade,
		RecommendedLoan:       models.RecommendedLoanAmount(grade, assessment.MonthlyIncomeEstimate),
		Explanation: models.Explanation{
			BaseValue:     result.BaseValue,
			Contributions: result.Contributions,
			PDefault:      result.DefaultProbability,
			Method:        result.Method,
		},
		TransactionCount: len(transactions),
	}
}
