package analysis

import (
	"math"

	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

// Named defaults for the aggregate calculator. AvgOrderValue feeds the
// financial-impact estimate and is overridable through Config.
const (
	DefaultAvgOrderValue = 800.0
	DefaultRecentWindow  = 10
	DefaultTopWords      = 25

	ratingScale              = 5.0
	neutralRatingScore       = 0.5
	lostCustomersPerNegative = 2
)

// Metrics holds the per-entity sentiment aggregates.
type Metrics struct {
	Total    int
	Positive int
	Neutral  int
	Negative int

	PositiveRatio float64
	NegativeRatio float64

	// AvgRating is the mean of non-missing numeric ratings, nil when no
	// numeric ratings exist at all.
	AvgRating *float64
}

// Aggregate computes sentiment counts, ratios, and the average rating for
// one entity's labeled reviews. An empty set is a precondition violation
// and returns ErrEmptyDataset.
func Aggregate(reviews []domain.Review) (Metrics, error) {
	if len(reviews) == 0 {
		return Metrics{}, domain.ErrEmptyDataset
	}
	m := Metrics{Total: len(reviews)}
	var ratingSum float64
	var rated int
	for _, r := range reviews {
		switch r.Sentiment {
		case domain.Positive:
			m.Positive++
		case domain.Negative:
			m.Negative++
		default:
			m.Neutral++
		}
		if r.Rating != nil {
			ratingSum += *r.Rating
			rated++
		}
	}
	m.PositiveRatio = float64(m.Positive) / float64(m.Total)
	m.NegativeRatio = float64(m.Negative) / float64(m.Total)
	if rated > 0 {
		avg := ratingSum / float64(rated)
		m.AvgRating = &avg
	}
	return m, nil
}

// RatingScore normalizes the average rating onto a 0–1 scale. Missing
// ratings degrade to a neutral 0.5 instead of failing.
func (m Metrics) RatingScore() float64 {
	if m.AvgRating == nil {
		return neutralRatingScore
	}
	return *m.AvgRating / ratingScale
}

// PerformanceScore combines sentiment ratios, the rating score, and total
// complaint severity into the composite score, rounded to 2 decimals.
// Nominally 0–100 but deliberately unclamped: a summed severity above 1
// pushes the score below the floor, matching the inherited formula.
func PerformanceScore(m Metrics, scores domain.IssueScores) float64 {
	score := m.PositiveRatio*40 +
		(1-m.NegativeRatio)*30 +
		m.RatingScore()*20 +
		(1-scores.Total())*10
	return Round2(score)
}

// Round2 rounds to 2 decimal places. Idempotent.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Impact estimates monthly revenue loss: every negative review is assumed
// to cost two customers at the configured average order value.
func Impact(negative int, avgOrderValue float64) domain.FinancialImpact {
	lost := negative * lostCustomersPerNegative
	return domain.FinancialImpact{
		AvgOrderValue: avgOrderValue,
		LostCustomers: lost,
		EstimatedLoss: float64(lost) * avgOrderValue,
	}
}
