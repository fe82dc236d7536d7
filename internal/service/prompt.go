package service

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/nicfin/finhealth-service/internal/models"
)

// userPromptTemplate is the fixed prompt sent to the insight generator.
// Every analysis result field is substituted by name; rendering fails fast
// when the template and the field mapping drift apart.
const userPromptTemplate = `Here is a user's monthly financial health summary:

- Health score: {health_score} / 100
- Needs: {actual_needs_pct}% of net income (guideline 50%), overspend: {needs_surplus_amount}
- Wants: {actual_wants_pct}% of net income (guideline 30%), overspend: {wants_surplus_amount}
- Savings: {actual_savings_pct}% of net income (guideline 20%)
- Debt-service ratio: {dsr_pct}% — status: {dsr_status}
- Survival ratio (income/expenses): {survival_ratio} — status: {survival_status}
- Heaviest needs category: {culprit_item} at {culprit_amount} per month
- Rule-based findings: {weakness_insight_text}

Write three short dashboard panels for this user:
left — an overview of their income and spending picture,
middle — their single biggest weakness and why it matters,
right — two or three concrete next steps.`

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// RenderPrompt substitutes the analysis result into the prompt template.
func RenderPrompt(r *models.AnalysisResult) (string, error) {
	return renderTemplate(userPromptTemplate, promptVars(r))
}

// promptVars maps every template placeholder to its result field.
func promptVars(r *models.AnalysisResult) map[string]string {
	culprit := r.CulpritItem
	if culprit == "" {
		culprit = "none"
	}
	return map[string]string{
		"health_score":          formatFloat(r.HealthScore),
		"actual_needs_pct":      formatFloat(r.ActualNeedsPct),
		"actual_wants_pct":      formatFloat(r.ActualWantsPct),
		"actual_savings_pct":    formatFloat(r.ActualSavingsPct),
		"dsr_pct":               formatFloat(r.DSRPct),
		"dsr_status":            r.DSRStatus,
		"survival_ratio":        r.SurvivalRatio.String(),
		"survival_status":       r.SurvivalStatus,
		"weakness_insight_text": r.WeaknessInsightText,
		"culprit_item":          culprit,
		"culprit_amount":        formatFloat(r.CulpritAmount),
		"needs_surplus_amount":  formatFloat(r.NeedsSurplusAmount),
		"wants_surplus_amount":  formatFloat(r.WantsSurplusAmount),
	}
}

// renderTemplate replaces {name} tokens from vars. It errors on a placeholder
// with no mapping and on a mapping entry the template never uses, so a
// renamed field cannot silently produce a malformed prompt.
func renderTemplate(tmpl string, vars map[string]string) (string, error) {
	var missing []string
	used := make(map[string]bool, len(vars))

	rendered := placeholderPattern.ReplaceAllStringFunc(tmpl, func(tok string) string {
		name := tok[1 : len(tok)-1]
		val, ok := vars[name]
		if !ok {
			missing = append(missing, name)
			return tok
		}
		used[name] = true
		return val
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("prompt template references unknown fields: %s", strings.Join(missing, ", "))
	}

	var unused []string
	for name := range vars {
		if !used[name] {
			unused = append(unused, name)
		}
	}
	if len(unused) > 0 {
		sort.Strings(unused)
		return "", fmt.Errorf("prompt template does not use fields: %s", strings.Join(unused, ", "))
	}

	return rendered, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
