package domain

// Tier groups questions by how much their subject matters. The three tiers
// render in a fixed order: critical first, good practices last.
type Tier string

const (
	TierCritical      Tier = "critical"
	TierImportant     Tier = "important"
	TierGoodPractices Tier = "good_practices"
)

// TierOrder is the canonical display and grouping order.
var TierOrder = []Tier{TierCritical, TierImportant, TierGoodPractices}

// TierInfo carries display metadata for a tier. The weight is the tier's
// share of the narrative breakdown (50/35/15); the score formula itself
// uses per-question weights only.
type TierInfo struct {
	Label       string
	Description string
	Weight      int
}

var tierInfos = map[Tier]TierInfo{
	TierCritical: {
		Label:       "Critical Security",
		Description: "Protects against the most common, damaging attacks",
		Weight:      50,
	},
	TierImportant: {
		Label:       "Strong Foundation",
		Description: "Significant protection against common threats",
		Weight:      35,
	},
	TierGoodPractices: {
		Label:       "Enhanced Security",
		Description: "Additional protection for privacy-conscious users",
		Weight:      15,
	},
}

// Meta returns the display metadata for t.
func (t Tier) Meta() TierInfo {
	return tierInfos[t]
}

// Severity orders tasks for recommendation. It is a fixed total order,
// independent of the numeric scoring weights.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Rank returns the sort position of s: CRITICAL sorts first.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}

// AssessmentMode selects which questions an assessment run presents.
type AssessmentMode string

const (
	// ModeQuick covers only the critical tier.
	ModeQuick AssessmentMode = "quick"
	// ModeFull covers all three tiers.
	ModeFull AssessmentMode = "full"
)
