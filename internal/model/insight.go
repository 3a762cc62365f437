package model

// InsightResult is the AI-generated quality assessment for a product.
// It is computed fresh on every request and never persisted.
//
// FreshnessScore is on a 1-10 scale and nil when the assessment could
// not be produced. The score is passed through as the model returned it,
// without clamping.
type InsightResult struct {
	FreshnessScore     *int64 `json:"freshness_score"`
	EstimatedShelfLife string `json:"estimated_shelf_life"`
	QualityAssessment  string `json:"quality_assessment"`
	VisualInspection   string `json:"visual_inspection"`
	TransitAnomalies   string `json:"transit_anomalies"`
}

// DegradedInsight returns the fixed placeholder substituted whenever
// insight generation fails for any reason.
func DegradedInsight() InsightResult {
	return InsightResult{
		FreshnessScore:     nil,
		EstimatedShelfLife: "N/A",
		QualityAssessment:  "Could not generate AI insights.",
		VisualInspection:   "Could not perform visual analysis.",
		TransitAnomalies:   "Unknown",
	}
}
