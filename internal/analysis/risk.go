package analysis

import "github.com/spoo-437/voiceofdine-ai/internal/domain"

// ClassifyRisk maps the negative-review ratio onto the four risk tiers.
// Pure step function, monotonic in the ratio, no hysteresis.
func ClassifyRisk(negativeRatio float64) domain.RiskTier {
	switch {
	case negativeRatio > 0.5:
		return domain.RiskCritical
	case negativeRatio > 0.3:
		return domain.RiskHigh
	case negativeRatio > 0.15:
		return domain.RiskModerate
	default:
		return domain.RiskLow
	}
}

// ProjectOutlook maps the same negative ratio onto the next-period risk
// projection. Independent thresholds; the result never feeds back into
// the tier.
func ProjectOutlook(negativeRatio float64) domain.Outlook {
	switch {
	case negativeRatio > 0.4:
		return domain.OutlookHigh
	case negativeRatio > 0.2:
		return domain.OutlookModerate
	default:
		return domain.OutlookLow
	}
}
