package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"creditnext/internal/models"
	"creditnext/internal/ocr"
	"creditnext/internal/scoring"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(26)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
	upStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	downStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func gradeStyle(g models.RiskGrade) lipgloss.Style {
	color := map[models.RiskGrade]string{
		models.RiskGradeA: "42",
		models.RiskGradeB: "86",
		models.RiskGradeC: "214",
		models.RiskGradeD: "196",
	}[g]
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

// renderReport formats an evaluation for the terminal
func renderReport(filename string, source ocr.Source, eval models.Evaluation) string {
	var b strings.Builder

	lines := []string{
		headerStyle.Render("Credit report: " + filename),
		row("Source", string(source)),
		row("Transactions", fmt.Sprintf("%d", eval.TransactionCount)),
		row("Industry", fmt.Sprintf("%s (factor %.2f)", eval.Industry, eval.IndustryFactor)),
		row("Proxy net profit", eval.ProxyNetProfit.StringFixed(2)),
		row("Monthly income estimate", eval.MonthlyIncomeEstimate.StringFixed(2)),
		"",
		row("Credit score", gradeStyle(eval.RiskGrade).Render(fmt.Sprintf("%d", eval.CreditScore))),
		row("Risk grade", gradeStyle(eval.RiskGrade).Render(eval.RiskGrade.Label())),
		row("Default probability", fmt.Sprintf("%.1f%%", eval.Explanation.PDefault*100)),
		row("Recommended loan", eval.RecommendedLoan.StringFixed(2)),
	}
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("Why this score (%s attribution)", eval.Explanation.Method)))
	b.WriteString("\n")
	for _, name := range rankContributions(eval.Explanation.Contributions) {
		value := eval.Explanation.Contributions[name]
		style, effect := downStyle, "lowers risk"
		if eval.Explanation.Method.RaisesRisk(value) {
			style, effect = upStyle, "raises risk"
		}
		b.WriteString(row("  "+name, style.Render(fmt.Sprintf("%+.4f", value))+" "+mutedStyle.Render(effect)))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  base value %.4f", eval.Explanation.BaseValue)))
	b.WriteString("\n")

	return b.String()
}

// rankContributions orders feature names by absolute contribution, largest first
func rankContributions(contributions map[string]float64) []string {
	names := make([]string, 0, len(contributions))
	for name := range contributions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ai, aj := math.Abs(contributions[names[i]]), math.Abs(contributions[names[j]])
		if ai != aj {
			return ai > aj
		}
		return names[i] < names[j]
	})
	return names
}

// renderModel summarizes a trained artifact
func renderModel(a *scoring.Artifact) string {
	h := a.Holdout()
	lines := []string{
		headerStyle.Render("Model"),
		row("Backend", a.Backend()),
		row("Seed", fmt.Sprintf("%d", a.Seed())),
		row("Training samples", fmt.Sprintf("%d", a.TrainSamples())),
		row("Positive rate", fmt.Sprintf("%.3f", a.PositiveRate())),
		row("Explainer", fmt.Sprintf("%t", a.HasExplainer())),
		row("Training time", a.TrainDuration().String()),
		"",
		headerStyle.Render("Holdout"),
		row("Samples", fmt.Sprintf("%d", h.Samples)),
		row("AUC", fmt.Sprintf("%.4f", h.AUC)),
		row("Accuracy", fmt.Sprintf("%.4f", h.Accuracy)),
		row("Log loss", fmt.Sprintf("%.4f", h.LogLoss)),
	}
	return boxStyle.Render(strings.Join(lines, "\n")) + "\n"
}
