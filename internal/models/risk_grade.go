package models

// RiskGrade buckets a credit score
type RiskGrade string

const (
	RiskGradeA RiskGrade = "A"
	RiskGradeB RiskGrade = "B"
	RiskGradeC RiskGrade = "C"
	RiskGradeD RiskGrade = "D"
)

// Score bounds and grade cutoffs
const (
	MinCreditScore = 300
	MaxCreditScore = 900

	gradeACutoff = 780
	gradeBCutoff = 700
	gradeCCutoff = 620

	defaultLoanMultiplier = 2.0
)

// GradeForScore maps a credit score to its risk grade
func GradeForScore(score int) RiskGrade {
	switch {
	case score >= gradeACutoff:
		return RiskGradeA
	case score >= gradeBCutoff:
		return RiskGradeB
	case score >= gradeCCutoff:
		return RiskGradeC
	default:
		return RiskGradeD
	}
}

// Label returns the display label of the grade
func (g RiskGrade) Label() string {
	switch g {
	case RiskGradeA:
		return "A (Low Risk)"
	case RiskGradeB:
		return "B (Moderate Risk)"
	case RiskGradeC:
		return "C (Elevated Risk)"
	case RiskGradeD:
		return "D (High Risk)"
	default:
		return string(g)
	}
}

// LoanMultiplier returns how many months of income the grade may borrow
func (g RiskGrade) LoanMultiplier() float64 {
	switch g {
	case RiskGradeA:
		return 6.0
	case RiskGradeB:
		return 4.0
	case RiskGradeC:
		return 2.5
	case RiskGradeD:
		return 1.5
	default:
		return defaultLoanMultiplier
	}
}

// IsValidRiskGrade checks if the grade is one of A-D
func IsValidRiskGrade(grade string) bool {
	switch RiskGrade(grade) {
	case RiskGradeA, RiskGradeB, RiskGradeC, RiskGradeD:
		return true
	default:
		return false
	}
}
