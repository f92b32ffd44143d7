package models

// UrgencyTier classifies how quickly a symptom presentation needs care.
type UrgencyTier string

const (
	TierEmergency UrgencyTier = "emergency"
	TierUrgent    UrgencyTier = "urgent"
	TierModerate  UrgencyTier = "moderate"
	TierSelfCare  UrgencyTier = "selfcare"
	TierUnknown   UrgencyTier = "unknown"
)

// Rank returns the severity order of a tier; higher is more urgent.
// Emergency > Urgent > Moderate > SelfCare > Unknown.
func (t UrgencyTier) Rank() int {
	switch t {
	case TierEmergency:
		return 4
	case TierUrgent:
		return 3
	case TierModerate:
		return 2
	case TierSelfCare:
		return 1
	default:
		return 0
	}
}

// MoreUrgentThan reports whether t outranks other.
func (t UrgencyTier) MoreUrgentThan(other UrgencyTier) bool {
	return t.Rank() > other.Rank()
}

// Valid reports whether t is one of the five known tiers.
func (t UrgencyTier) Valid() bool {
	switch t {
	case TierEmergency, TierUrgent, TierModerate, TierSelfCare, TierUnknown:
		return true
	default:
		return false
	}
}

// Display returns the human-readable label for a tier.
func (t UrgencyTier) Display() string {
	switch t {
	case TierEmergency:
		return "Emergency"
	case TierUrgent:
		return "Urgent"
	case TierModerate:
		return "Moderate"
	case TierSelfCare:
		return "Self-care"
	default:
		return "Unknown"
	}
}

// ExtractedHints holds the age and duration signals derived from free
// text. Either field may be nil when no signal was found.
type ExtractedHints struct {
	Age          *int
	DurationDays *int
}

// Decision is the triage engine's sole output: an urgency tier, a
// headline message, route labels for the caller to resolve into links,
// advice bullets in display order, and a stable machine-readable
// reason code identifying which rule fired.
type Decision struct {
	Tier         UrgencyTier `json:"tier"`
	Headline     string      `json:"headline"`
	RouteLabels  []string    `json:"route_labels"`
	Age          *int        `json:"age,omitempty"`
	DurationDays *int        `json:"duration_days,omitempty"`
	UserSeverity string      `json:"user_severity,omitempty"`
	AdvicePoints []string    `json:"advice_points"`
	ReasonCode   string      `json:"reason_code"`
}
