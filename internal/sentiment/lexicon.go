package sentiment

import (
	"strings"
	"unicode"

	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

// negators flip the score of the sentiment word that follows them.
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "hardly": {},
}

// lexicon maps lower-case words to polarity scores. Weights lean on food
// and service vocabulary since the inputs are restaurant reviews.
var lexicon = map[string]float64{
	// positive
	"good": 0.6, "great": 0.8, "excellent": 0.9, "amazing": 0.9,
	"awesome": 0.9, "fantastic": 0.9, "wonderful": 0.8, "perfect": 0.9,
	"best": 0.8, "love": 0.7, "loved": 0.7, "like": 0.3, "liked": 0.3,
	"delicious": 0.9, "tasty": 0.8, "fresh": 0.6, "flavorful": 0.7,
	"friendly": 0.7, "polite": 0.6, "helpful": 0.6, "attentive": 0.6,
	"quick": 0.5, "fast": 0.5, "prompt": 0.5, "clean": 0.6, "cozy": 0.5,
	"nice": 0.5, "pleasant": 0.6, "enjoyed": 0.6, "recommend": 0.7,
	"recommended": 0.7, "affordable": 0.5, "generous": 0.5, "warm": 0.4,
	"favorite": 0.7, "happy": 0.6, "satisfied": 0.6, "superb": 0.9,

	// negative
	"bad": -0.7, "terrible": -0.9, "awful": -0.9, "horrible": -0.9,
	"worst": -1.0, "poor": -0.6, "disappointing": -0.7, "disappointed": -0.7,
	"bland": -0.6, "tasteless": -0.8, "stale": -0.7, "cold": -0.4,
	"soggy": -0.6, "greasy": -0.5, "undercooked": -0.8, "overcooked": -0.7,
	"slow": -0.5, "late": -0.4, "wait": -0.2, "waited": -0.4, "waiting": -0.3,
	"delay": -0.5, "delayed": -0.5, "rude": -0.8, "unfriendly": -0.7,
	"ignored": -0.7, "dirty": -0.8, "filthy": -0.9, "unhygienic": -0.9,
	"smelly": -0.7, "expensive": -0.5, "overpriced": -0.7, "pricey": -0.4,
	"mediocre": -0.5, "disgusting": -0.9, "gross": -0.8, "avoid": -0.7,
	"complaint": -0.5, "refund": -0.5, "unhappy": -0.7,
}

// analyze implements the core polarity pipeline: tokenize, look up,
// negate, average.
func analyze(text string) Result {
	words := tokens(text)
	if len(words) == 0 {
		return Result{Sentiment: domain.Neutral}
	}

	var (
		sum      float64
		scored   int
		posCount int
		negCount int
		negate   bool
	)
	for _, w := range words {
		if _, ok := negators[w]; ok {
			negate = true
			continue
		}
		score, ok := lexicon[w]
		if !ok {
			negate = false
			continue
		}
		if negate {
			score = -score
			negate = false
		}
		sum += score
		scored++
		if score > 0 {
			posCount++
		} else if score < 0 {
			negCount++
		}
	}

	if scored == 0 {
		return Result{Sentiment: domain.Neutral, Total: len(words)}
	}
	avg := sum / float64(scored)
	return Result{
		Sentiment: domain.SentimentFromPolarity(avg),
		Score:     avg,
		Positive:  posCount,
		Negative:  negCount,
		Total:     len(words),
	}
}

// tokens lower-cases and splits text on anything that is not a letter.
func tokens(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}
