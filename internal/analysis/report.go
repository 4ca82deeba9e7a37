// Package analysis implements the review analytics and risk-scoring
// pipeline: keyword-based issue detection, aggregate sentiment metrics,
// the composite performance score, risk tiering, and the static
// recommendation tables. Everything here is a pure, single-pass
// computation over an in-memory review snapshot; no state survives
// between invocations.
package analysis

import (
	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

// Config carries the injected constants of the pipeline.
type Config struct {
	AvgOrderValue float64 // average order value for the impact estimate
	RecentWindow  int     // how many raw reviews the report exposes
	TopWords      int     // size of the word-frequency list
}

func (c Config) withDefaults() Config {
	if c.AvgOrderValue <= 0 {
		c.AvgOrderValue = DefaultAvgOrderValue
	}
	if c.RecentWindow <= 0 {
		c.RecentWindow = DefaultRecentWindow
	}
	if c.TopWords <= 0 {
		c.TopWords = DefaultTopWords
	}
	return c
}

// Analyzer assembles full dashboard reports. Safe for concurrent use:
// it holds configuration only.
type Analyzer struct {
	cfg Config
}

func New(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg.withDefaults()}
}

// BuildReport runs the whole pipeline over one entity's sentiment-labeled
// reviews, newest first. An empty slice returns ErrEmptyDataset — the
// caller surfaces that instead of rendering a zeroed report.
func (a *Analyzer) BuildReport(entity string, reviews []domain.Review) (domain.Report, error) {
	m, err := Aggregate(reviews)
	if err != nil {
		return domain.Report{}, err
	}

	text := ConcatTexts(reviews)
	scores := ScoreIssues(text, m.Total)
	dominant, maxSeverity := scores.Dominant()

	rep := domain.Report{
		Entity:       entity,
		TotalReviews: m.Total,
		Sentiments: domain.SentimentBreakdown{
			Positive: m.Positive,
			Neutral:  m.Neutral,
			Negative: m.Negative,
		},
		IssueScores:      make(map[string]float64, len(scores)),
		DominantIssue:    dominant.String(),
		IssuesDetected:   maxSeverity > 0,
		PerformanceScore: PerformanceScore(m, scores),
		RiskTier:         ClassifyRisk(m.NegativeRatio),
		Outlook:          ProjectOutlook(m.NegativeRatio),
		Impact:           Impact(m.Negative, a.cfg.AvgOrderValue),
		TopWords:         TopWords(text, a.cfg.TopWords),
	}
	for c, s := range scores {
		rep.IssueScores[c.String()] = s
	}
	if m.AvgRating != nil {
		avg := Round2(*m.AvgRating)
		rep.AvgRating = &avg
	}
	rep.Recommendations = Recommend(rep.RiskTier, dominant, m.PositiveRatio)

	window := a.cfg.RecentWindow
	if window > len(reviews) {
		window = len(reviews)
	}
	rep.RecentReviews = make([]string, 0, window)
	for _, r := range reviews[:window] {
		rep.RecentReviews = append(rep.RecentReviews, r.Text)
	}
	return rep, nil
}
