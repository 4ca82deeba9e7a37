package domain

// RiskTier is the discrete risk level derived from the negative-review ratio.
type RiskTier string

const (
	RiskLow      RiskTier = "Low"
	RiskModerate RiskTier = "Moderate"
	RiskHigh     RiskTier = "High"
	RiskCritical RiskTier = "Critical"
)

// Outlook is the projected risk level for the next period. It uses its own
// thresholds on the same negative ratio and never feeds back into the tier.
type Outlook string

const (
	OutlookLow      Outlook = "Low"
	OutlookModerate Outlook = "Moderate"
	OutlookHigh     Outlook = "High"
)

// SentimentBreakdown holds the per-label review counts for one entity.
type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// FinancialImpact is the revenue-loss estimate derived from negative reviews.
// AvgOrderValue is injected configuration, not a constant buried in a formula.
type FinancialImpact struct {
	AvgOrderValue float64 `json:"avg_order_value"`
	LostCustomers int     `json:"lost_customers"`
	EstimatedLoss float64 `json:"estimated_loss"`
}

// WordCount is one entry of the customer-voice word-frequency list.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Report is the full per-entity dashboard payload: metrics, issue scores,
// risk classification, recommendations, and inspection data.
type Report struct {
	Entity           string             `json:"entity"`
	TotalReviews     int                `json:"total_reviews"`
	AvgRating        *float64           `json:"avg_rating"` // nil when no numeric ratings exist
	Sentiments       SentimentBreakdown `json:"sentiments"`
	IssueScores      map[string]float64 `json:"issue_scores"`
	DominantIssue    string             `json:"dominant_issue"`
	IssuesDetected   bool               `json:"issues_detected"`
	PerformanceScore float64            `json:"performance_score"`
	RiskTier         RiskTier           `json:"risk_tier"`
	Outlook          Outlook            `json:"outlook"`
	Recommendations  []string           `json:"recommendations"`
	Impact           FinancialImpact    `json:"impact"`
	TopWords         []WordCount        `json:"top_words"`
	RecentReviews    []string           `json:"recent_reviews"`
}

// BenchmarkRow is one entity's entry in the competitor comparison table.
type BenchmarkRow struct {
	Entity          string  `json:"entity"`
	ReviewCount     int     `json:"review_count"`
	PositivePercent float64 `json:"positive_percent"`
}

// EntityCount pairs an entity with its review count, for dashboard selection.
type EntityCount struct {
	Entity  string `json:"entity"`
	Reviews int    `json:"reviews"`
}
