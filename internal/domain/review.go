package domain

// Sentiment is the discrete polarity label attached to a review.
type Sentiment string

const (
	Positive Sentiment = "Positive"
	Neutral  Sentiment = "Neutral"
	Negative Sentiment = "Negative"
)

// SentimentFromPolarity maps a continuous polarity score to a label.
// The sign decides: > 0 positive, < 0 negative, exactly 0 neutral.
func SentimentFromPolarity(score float64) Sentiment {
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}

// Review is one row of the source table after ingestion. Text is never
// absent — blank or missing cells become the empty string, not an error.
// Rating and Sentiment are derived columns written once at load time.
type Review struct {
	Entity    string
	Text      string
	Rating    *float64
	Sentiment Sentiment
}
