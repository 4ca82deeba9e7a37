package analysis

import (
	"testing"

	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

func TestClassifyRisk_Boundaries(t *testing.T) {
	tests := []struct {
		ratio float64
		want  domain.RiskTier
	}{
		{0, domain.RiskLow},
		{0.15, domain.RiskLow},
		{0.1501, domain.RiskModerate},
		{0.3, domain.RiskModerate},
		{0.3001, domain.RiskHigh},
		{0.5, domain.RiskHigh},
		{0.5001, domain.RiskCritical},
		{1, domain.RiskCritical},
	}
	for _, tt := range tests {
		if got := ClassifyRisk(tt.ratio); got != tt.want {
			t.Errorf("ClassifyRisk(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

var tierRank = map[domain.RiskTier]int{
	domain.RiskLow:      0,
	domain.RiskModerate: 1,
	domain.RiskHigh:     2,
	domain.RiskCritical: 3,
}

func TestClassifyRisk_Monotonic(t *testing.T) {
	prev := -1
	for r := 0.0; r <= 1.0; r += 0.01 {
		rank := tierRank[ClassifyRisk(r)]
		if rank < prev {
			t.Fatalf("tier severity decreased at ratio %v", r)
		}
		prev = rank
	}
}

func TestProjectOutlook_Boundaries(t *testing.T) {
	tests := []struct {
		ratio float64
		want  domain.Outlook
	}{
		{0, domain.OutlookLow},
		{0.2, domain.OutlookLow},
		{0.2001, domain.OutlookModerate},
		{0.4, domain.OutlookModerate},
		{0.4001, domain.OutlookHigh},
		{1, domain.OutlookHigh},
	}
	for _, tt := range tests {
		if got := ProjectOutlook(tt.ratio); got != tt.want {
			t.Errorf("ProjectOutlook(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestRiskAndOutlook_TwoOfThreeNegative(t *testing.T) {
	// 2 negative out of 3 reviews: ratio ≈ 0.667.
	ratio := 2.0 / 3.0
	if got := ClassifyRisk(ratio); got != domain.RiskCritical {
		t.Errorf("tier = %v, want Critical", got)
	}
	if got := ProjectOutlook(ratio); got != domain.OutlookHigh {
		t.Errorf("outlook = %v, want High", got)
	}
}
