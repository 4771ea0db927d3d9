package scoring

import (
	"math"
	"sort"
)

// HoldoutMetrics summarizes classifier quality on the held-out split
type HoldoutMetrics struct {
	Samples  int     `json:"samples"`
	LogLoss  float64 `json:"log_loss"`
	Accuracy float64 `json:"accuracy"`
	AUC      float64 `json:"auc"`
}

// EvaluateHoldout scores clf on standardized rows.
// AUC is 0.5 when the holdout has a single class.
func EvaluateHoldout(clf Classifier, X []Row, y []float64) HoldoutMetrics {
	n := len(X)
	if n == 0 || clf == nil || len(y) != n {
		return HoldoutMetrics{}
	}

	probs := make([]float64, n)
	var loss float64
	var correct int
	for i, x := range X {
		p := math.Min(math.Max(clf.PredictProba(x), 1e-15), 1-1e-15)
		probs[i] = p
		if y[i] == 1 {
			loss -= math.Log(p)
		} else {
			loss -= math.Log(1 - p)
		}
		if (p >= 0.5) == (y[i] == 1) {
			correct++
		}
	}

	return HoldoutMetrics{
		Samples:  n,
		LogLoss:  loss / float64(n),
		Accuracy: float64(correct) / float64(n),
		AUC:      rocAUC(probs, y),
	}
}

// rocAUC uses the rank-sum formulation with averaged ranks for ties
func rocAUC(scores, labels []float64) float64 {
	n := len(scores)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] < scores[idx[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && scores[idx[j+1]] == scores[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}

	var positives, negatives, rankSum float64
	for i, label := range labels {
		if label == 1 {
			positives++
			rankSum += ranks[i]
		} else {
			negatives++
		}
	}
	if positives == 0 || negatives == 0 {
		return 0.5
	}
	return (rankSum - positives*(positives+1)/2) / (positives * negatives)
}
