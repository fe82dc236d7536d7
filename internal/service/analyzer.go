package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/nicfin/finhealth-service/internal/models"
)

// ErrInvalidNetIncome is returned when the net monthly income is zero or negative.
var ErrInvalidNetIncome = errors.New("net_income_monthly must be greater than 0")

// needsCategories fixes the culprit enumeration order; a tie is broken by the
// first category reaching the maximum.
var needsCategories = [...]string{"food", "housing", "transport", "utilities", "insurance", "debt"}

// 50/30/20 guideline bounds used by the sub-scores and the surplus checks
const (
	needsGuidelinePct   = 50.0
	wantsGuidelinePct   = 30.0
	savingsGuidelinePct = 20.0
	dsrZeroScorePct     = 40.0
)

const (
	crisisInsight = "Your total monthly expenses meet or exceed your net income; urgent spending cuts should be considered."

	positiveInsight = "Your overall spending is in good shape: the needs/wants/savings split and your debt load are all within safe limits."
)

// Analyze computes the financial health metrics for one month of data.
// It is a pure function: identical inputs always produce identical results,
// and it is safe to call from concurrent goroutines.
func Analyze(in models.AnalysisInput) (*models.AnalysisResult, error) {
	if in.NetIncomeMonthly <= 0 {
		return nil, ErrInvalidNetIncome
	}

	totalNeeds := in.NeedsFood + in.NeedsHousing + in.NeedsTransport +
		in.NeedsUtilities + in.NeedsInsurance + in.NeedsDebt
	totalExpenses := totalNeeds + in.WantsMisc
	derivedSavings := in.NetIncomeMonthly - totalExpenses

	needsPct := totalNeeds / in.NetIncomeMonthly * 100
	wantsPct := in.WantsMisc / in.NetIncomeMonthly * 100
	savingsPct := derivedSavings / in.NetIncomeMonthly * 100
	dsrPct := in.NeedsDebt / in.NetIncomeMonthly * 100

	// No expenses at all is treated as maximally safe.
	survivalRatio := math.Inf(1)
	if totalExpenses > 0 {
		survivalRatio = in.NetIncomeMonthly / totalExpenses
	}

	dsrStatus := dsrStatusFor(dsrPct)
	survivalStatus := survivalStatusFor(survivalRatio)

	// Four independently clamped sub-scores: 20 + 20 + 35 + 25.
	needsScore := clamp(20*(1-(needsPct-needsGuidelinePct)/25), 0, 20)
	wantsScore := clamp(20*(1-(wantsPct-wantsGuidelinePct)/20), 0, 20)
	savingsScore := clamp(35*(savingsPct/savingsGuidelinePct), 0, 35)
	debtScore := clamp(25*(1-dsrPct/dsrZeroScorePct), 0, 25)
	healthScore := needsScore + wantsScore + savingsScore + debtScore

	needsSurplus := math.Max(0, totalNeeds-needsGuidelinePct/100*in.NetIncomeMonthly)
	wantsSurplus := math.Max(0, in.WantsMisc-wantsGuidelinePct/100*in.NetIncomeMonthly)

	culpritItem, culpritAmount := pickCulprit(in, totalNeeds)

	insightText := buildInsightText(insightFacts{
		survivalRatio: survivalRatio,
		dsrStatus:     dsrStatus,
		dsrPct:        dsrPct,
		needsSurplus:  needsSurplus,
		wantsSurplus:  wantsSurplus,
		culpritItem:   culpritItem,
		culpritAmount: culpritAmount,
	})

	ratio := models.Ratio(survivalRatio)
	if !math.IsInf(survivalRatio, 1) {
		ratio = models.Ratio(round2(survivalRatio))
	}

	return &models.AnalysisResult{
		HealthScore:         round2(healthScore),
		ActualNeedsPct:      round2(needsPct),
		ActualWantsPct:      round2(wantsPct),
		ActualSavingsPct:    round2(savingsPct),
		DSRPct:              round2(dsrPct),
		DSRStatus:           dsrStatus,
		SurvivalRatio:       ratio,
		SurvivalStatus:      survivalStatus,
		WeaknessInsightText: insightText,
		CulpritItem:         culpritItem,
		CulpritAmount:       round2(culpritAmount),
		NeedsSurplusAmount:  round2(needsSurplus),
		WantsSurplusAmount:  round2(wantsSurplus),
	}, nil
}

// dsrStatusFor classifies the debt-service ratio (inclusive upper bounds).
func dsrStatusFor(dsrPct float64) string {
	switch {
	case dsrPct <= 15:
		return models.StatusExcellent
	case dsrPct <= 40:
		return models.StatusGood
	case dsrPct <= 50:
		return models.StatusWarning
	default:
		return models.StatusCritical
	}
}

// survivalStatusFor classifies the income-to-expense liquidity buffer.
func survivalStatusFor(ratio float64) string {
	switch {
	case ratio < 1.0:
		return models.StatusCritical
	case ratio < 3.0:
		return models.StatusWarning
	default:
		return models.StatusExcellent
	}
}

// pickCulprit returns the heaviest needs category, walking the fixed
// enumeration order so that ties resolve deterministically.
func pickCulprit(in models.AnalysisInput, totalNeeds float64) (string, float64) {
	if totalNeeds <= 0 {
		return "", 0
	}
	amounts := [...]float64{
		in.NeedsFood,
		in.NeedsHousing,
		in.NeedsTransport,
		in.NeedsUtilities,
		in.NeedsInsurance,
		in.NeedsDebt,
	}
	item, amount := needsCategories[0], amounts[0]
	for i := 1; i < len(amounts); i++ {
		if amounts[i] > amount {
			item, amount = needsCategories[i], amounts[i]
		}
	}
	return item, amount
}

type insightFacts struct {
	survivalRatio float64
	dsrStatus     string
	dsrPct        float64
	needsSurplus  float64
	wantsSurplus  float64
	culpritItem   string
	culpritAmount float64
}

// buildInsightText evaluates the insight rules in fixed order. Rules are
// independent; each appends at most one sentence. When nothing fires the
// positive-outlook sentence stands alone.
func buildInsightText(f insightFacts) string {
	var insights []string

	if f.survivalRatio <= 1.0 {
		insights = append(insights, crisisInsight)
	}

	if f.dsrStatus == models.StatusWarning || f.dsrStatus == models.StatusCritical {
		insights = append(insights, fmt.Sprintf(
			"Your debt burden is at the '%s' level (DSR ≈ %.1f%%); avoid taking on new debt and plan to pay down existing balances.",
			f.dsrStatus, f.dsrPct,
		))
	}

	if f.needsSurplus > 0 {
		msg := fmt.Sprintf(
			"Essential spending (needs) exceeds the 50%% income guideline by about %s per month",
			humanize.CommafWithDigits(f.needsSurplus, 0),
		)
		if f.culpritItem != "" {
			msg += fmt.Sprintf(
				", with '%s' as the heaviest category at about %s per month",
				f.culpritItem, humanize.CommafWithDigits(f.culpritAmount, 0),
			)
		}
		insights = append(insights, msg+".")
	}

	if f.wantsSurplus > 0 {
		insights = append(insights, fmt.Sprintf(
			"Discretionary spending (wants) exceeds the 30%% income guideline by about %s per month; consider trimming some non-essential purchases.",
			humanize.CommafWithDigits(f.wantsSurplus, 0),
		))
	}

	if len(insights) == 0 {
		insights = append(insights, positiveInsight)
	}

	return strings.Join(insights, " ")
}

// round2 rounds to two decimals for the result record.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
