package analysis

import (
	"strings"

	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

// issueKeywords binds each category to its lower-case trigger terms, fixed
// at design time. Matching is plain substring counting: "slow" inside
// "slowly" still counts. Downstream thresholds were tuned against these raw
// counts, so the matcher must stay substring-based rather than word-boundary
// aware.
var issueKeywords = map[domain.IssueCategory][]string{
	domain.Service:       {"slow", "delay", "waiting", "late"},
	domain.FoodQuality:   {"bad", "tasteless", "cold", "worst"},
	domain.Pricing:       {"expensive", "overpriced"},
	domain.StaffBehavior: {"rude", "unfriendly"},
	domain.Cleanliness:   {"dirty", "hygiene"},
}

// CountMentions sums the occurrences of every keyword in text.
// text must already be lower-cased. Pure function, no side effects.
func CountMentions(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		n += strings.Count(text, kw)
	}
	return n
}

// ScoreIssues converts raw keyword counts over the concatenated review text
// into per-review-average severities. totalReviews must be > 0; callers
// guarantee the precondition.
func ScoreIssues(text string, totalReviews int) domain.IssueScores {
	scores := make(domain.IssueScores, len(issueKeywords))
	for _, c := range domain.IssueCategories() {
		scores[c] = float64(CountMentions(text, issueKeywords[c])) / float64(totalReviews)
	}
	return scores
}

// ConcatTexts joins review texts into the single lower-cased blob scanned
// by the keyword matcher and the word-frequency extraction.
func ConcatTexts(reviews []domain.Review) string {
	parts := make([]string, len(reviews))
	for i, r := range reviews {
		parts[i] = r.Text
	}
	return strings.ToLower(strings.Join(parts, " "))
}
