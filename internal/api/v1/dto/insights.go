package dto

// InsightsResponse is the payload of the insights endpoint.
type InsightsResponse struct {
	Response InsightsBody `json:"response"`
}

// InsightsBody groups the insight categories rendered by the frontend.
type InsightsBody struct {
	Insights             []string `json:"insights"`
	Themes               []string `json:"themes"`
	SuggestedQuestions   []string `json:"suggested_questions"`
	GapsAndAmbiguities   []string `json:"gaps_and_ambiguities"`
	RisksAndDependencies []string `json:"risks_and_dependencies"`
}
