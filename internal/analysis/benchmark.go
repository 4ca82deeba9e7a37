package analysis

import (
	"sort"

	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

// MinBenchmarkReviews is the minimum sample size for an entity to appear
// in the comparison table. Smaller groups are silently excluded so a
// single glowing review cannot post a 100% score.
const MinBenchmarkReviews = 5

// Benchmark computes the positive-sentiment percentage for every entity in
// the full dataset with at least minReviews reviews, sorted descending.
// Ties keep first-encountered entity order (stable sort). Rows without an
// entity value are skipped.
func Benchmark(reviews []domain.Review, minReviews int) []domain.BenchmarkRow {
	type agg struct {
		total    int
		positive int
	}
	byEntity := make(map[string]*agg)
	var order []string
	for _, r := range reviews {
		if r.Entity == "" {
			continue
		}
		a, ok := byEntity[r.Entity]
		if !ok {
			a = &agg{}
			byEntity[r.Entity] = a
			order = append(order, r.Entity)
		}
		a.total++
		if r.Sentiment == domain.Positive {
			a.positive++
		}
	}

	rows := make([]domain.BenchmarkRow, 0, len(order))
	for _, e := range order {
		a := byEntity[e]
		if a.total < minReviews {
			continue
		}
		rows = append(rows, domain.BenchmarkRow{
			Entity:          e,
			ReviewCount:     a.total,
			PositivePercent: Round2(float64(a.positive) / float64(a.total) * 100),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PositivePercent > rows[j].PositivePercent
	})
	return rows
}
