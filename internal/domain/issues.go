package domain

import "fmt"

// IssueCategory is one of the fixed complaint categories tracked by the
// keyword matcher. The declaration order is the tie-break order for
// dominant-issue selection and must not change.
type IssueCategory int

const (
	Service IssueCategory = iota
	FoodQuality
	Pricing
	StaffBehavior
	Cleanliness
)

var issueNames = [...]string{
	Service:       "Service",
	FoodQuality:   "Food Quality",
	Pricing:       "Pricing",
	StaffBehavior: "Staff Behavior",
	Cleanliness:   "Cleanliness",
}

// IssueCategories returns all categories in tie-break order.
func IssueCategories() []IssueCategory {
	return []IssueCategory{Service, FoodQuality, Pricing, StaffBehavior, Cleanliness}
}

func (c IssueCategory) String() string {
	if c >= 0 && int(c) < len(issueNames) {
		return issueNames[c]
	}
	return fmt.Sprintf("IssueCategory(%d)", int(c))
}

// MarshalText lets IssueCategory serve as a JSON object key.
func (c IssueCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// IssueScores maps each category to its normalized severity
// (keyword hits across the entity's reviews divided by review count).
// Severities rank issues relative to each other; they are not probabilities.
type IssueScores map[IssueCategory]float64

// Total is the summed severity across all categories. It has no upper
// bound: a review can hit several categories at once.
func (s IssueScores) Total() float64 {
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum
}

// Dominant returns the highest-severity category and its severity,
// breaking ties by declaration order (first max wins). With all-zero
// severities it still returns the first category; callers gate
// "no issues detected" on the severity, not on the category.
func (s IssueScores) Dominant() (IssueCategory, float64) {
	best := Service
	bestScore := s[Service]
	for _, c := range IssueCategories() {
		if s[c] > bestScore {
			best = c
			bestScore = s[c]
		}
	}
	return best, bestScore
}
