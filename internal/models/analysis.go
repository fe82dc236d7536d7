package models

// Status labels shared by the DSR and survival classifications
const (
	StatusExcellent = "Excellent"
	StatusGood      = "Good"
	StatusWarning   = "Warning"
	StatusCritical  = "Critical"
)

// AnalysisInput represents a user's monthly income and expense breakdown.
// NetIncomeMonthly must be positive; the individual expense fields are
// caller-supplied and not validated against negativity.
type AnalysisInput struct {
	NetIncomeMonthly float64 `json:"net_income_monthly"`
	NeedsFood        float64 `json:"needs_food"`
	NeedsHousing     float64 `json:"needs_housing"`
	NeedsTransport   float64 `json:"needs_transport"`
	NeedsUtilities   float64 `json:"needs_utilities"`
	NeedsInsurance   float64 `json:"needs_insurance"`
	NeedsDebt        float64 `json:"needs_debt"`
	WantsMisc        float64 `json:"wants_misc"`
}

// AnalysisResult represents the computed financial health metrics.
// It is fully populated in a single computation and never mutated.
type AnalysisResult struct {
	HealthScore         float64 `json:"health_score"`
	ActualNeedsPct      float64 `json:"actual_needs_pct"`
	ActualWantsPct      float64 `json:"actual_wants_pct"`
	ActualSavingsPct    float64 `json:"actual_savings_pct"`
	DSRPct              float64 `json:"dsr_pct"`
	DSRStatus           string  `json:"dsr_status"`
	SurvivalRatio       Ratio   `json:"survival_ratio"`
	SurvivalStatus      string  `json:"survival_status"`
	WeaknessInsightText string  `json:"weakness_insight_text"`
	CulpritItem         string  `json:"culprit_item"`
	CulpritAmount       float64 `json:"culprit_amount"`
	NeedsSurplusAmount  float64 `json:"needs_surplus_amount"`
	WantsSurplusAmount  float64 `json:"wants_surplus_amount"`
}
