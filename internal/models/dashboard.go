package models

// NarrativePanels holds the three text blocks produced by the external
// insight generator, laid out left-to-right on the dashboard.
type NarrativePanels struct {
	Left   string `json:"left"`
	Middle string `json:"middle"`
	Right  string `json:"right"`
}

// Dashboard merges the computed numbers with the generated narrative.
type Dashboard struct {
	Numbers *AnalysisResult `json:"numbers"`
	Panels  NarrativePanels `json:"panels"`
}
