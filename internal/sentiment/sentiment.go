// Package sentiment performs lexicon-based polarity scoring of review text.
//
// The analyzer tokenizes input, looks each word up in a fixed English
// sentiment lexicon, and averages the matched word scores into an aggregate
// polarity in [-1, 1]. The sign of the polarity yields the discrete label:
// positive, negative, or neutral when nothing matched or scores cancel out.
//
// Known limitations:
//   - Only single-token negation ("not good") is handled.
//   - Intensifiers ("very good") do not change the score.
//   - Sarcasm is not detected.
//
// All functions are safe for concurrent use by multiple goroutines.
package sentiment

import (
	"context"
	"fmt"

	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

// maxInputBytes caps input size. Oversized inputs return a zero Result.
const maxInputBytes = 1 << 20 // 1 MiB

// Result holds the polarity analysis output.
type Result struct {
	Sentiment domain.Sentiment `json:"sentiment"`
	Score     float64          `json:"score"`    // -1.0 to +1.0
	Positive  int              `json:"positive"` // count of positive words
	Negative  int              `json:"negative"` // count of negative words
	Total     int              `json:"total"`    // total analyzed words
}

func (r Result) String() string {
	return fmt.Sprintf("%s(score=%.2f, pos=%d, neg=%d, total=%d)",
		r.Sentiment, r.Score, r.Positive, r.Negative, r.Total)
}

// Analyze returns the detailed polarity analysis of text.
// Empty or oversized input yields a neutral zero Result.
func Analyze(text string) Result {
	if text == "" || len(text) > maxInputBytes {
		return Result{Sentiment: domain.Neutral}
	}
	return analyze(text)
}

// Score returns the aggregate polarity score (-1.0 to +1.0).
func Score(text string) float64 {
	return Analyze(text).Score
}

// Analyzer implements the domain Classifier port over the local lexicon.
// It never fails: unmatchable input is Neutral.
type Analyzer struct{}

func NewAnalyzer() *Analyzer { return &Analyzer{} }

func (*Analyzer) Classify(_ context.Context, text string) domain.Sentiment {
	return Analyze(text).Sentiment
}
