package analysis

import (
	"fmt"
	"strings"

	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

// expansionThreshold splits low-risk entities into growth vs maintenance
// plans on their positive ratio.
const expansionThreshold = 0.6

// The risk-to-action mapping is static lookup data, not branching logic,
// so every (tier, issue) combination can be tested exhaustively. Output is
// always non-empty: each tier has a defined plan for every dominant issue.

const criticalOpener = "Immediate operational restructuring required."

var criticalActions = map[domain.IssueCategory][3]string{
	domain.Service: {
		"Add staff coverage to peak hours and set a hard table-wait limit.",
		"Rework the kitchen-to-table handoff to eliminate order queue pileups.",
		"Call back every customer who reported a long wait this month.",
	},
	domain.FoodQuality: {
		"Audit every supplier and pull ingredients that fail freshness checks.",
		"Run line checks on each dish before service until complaints stop.",
		"Have the head chef re-taste and re-spec the full menu this week.",
	},
	domain.Pricing: {
		"Benchmark menu prices against the three nearest competitors.",
		"Re-cost high-complaint dishes and correct portion-to-price mismatches.",
		"Introduce a value set menu to win back price-sensitive customers.",
	},
	domain.StaffBehavior: {
		"Run mandatory hospitality retraining for all front-of-house staff.",
		"Put a shift supervisor on the floor during every service.",
		"Start a mystery-diner program and review findings weekly.",
	},
	domain.Cleanliness: {
		"Deep-clean the dining area and kitchen before the next service.",
		"Commission an independent hygiene audit and publish the fixes.",
		"Add a per-shift cleaning checklist with sign-off accountability.",
	},
}

var highPlan = [3]string{
	"Launch a focused improvement plan for %s.",
	"Review the last month of %s complaints with shift leads.",
	"Track %s complaint counts weekly until the trend reverses.",
}

var moderatePlan = [3]string{
	"Fine-tune %s procedures during low-traffic hours.",
	"Sample customer feedback on %s every week.",
	"Set a quarterly target to cut %s mentions in half.",
}

var expansionPlan = [3]string{
	"Maintain current standards and invest in growth.",
	"Expand capacity: extended hours, more covers, or a second location.",
	"Launch a loyalty program to convert regulars into promoters.",
}

var maintenancePlan = [3]string{
	"Maintain service quality and review feedback monthly.",
	"Keep staff training refreshers on schedule.",
	"Watch neutral reviews for early warning signals.",
}

// Recommend returns the ordered action list for a risk tier and dominant
// issue. Low-risk entities branch on positive ratio: above the expansion
// threshold they get the growth plan, otherwise maintenance.
func Recommend(tier domain.RiskTier, issue domain.IssueCategory, positiveRatio float64) []string {
	switch tier {
	case domain.RiskCritical:
		acts := criticalActions[issue]
		return append([]string{criticalOpener}, acts[:]...)
	case domain.RiskHigh:
		return renderPlan(highPlan, issue)
	case domain.RiskModerate:
		return renderPlan(moderatePlan, issue)
	default:
		if positiveRatio > expansionThreshold {
			return append([]string(nil), expansionPlan[:]...)
		}
		return append([]string(nil), maintenancePlan[:]...)
	}
}

func renderPlan(tpl [3]string, issue domain.IssueCategory) []string {
	name := strings.ToLower(issue.String())
	out := make([]string, len(tpl))
	for i, t := range tpl {
		out[i] = fmt.Sprintf(t, name)
	}
	return out
}
