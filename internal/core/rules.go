package core

import "github.com/healthbuddy-dev/healthbuddy/pkg/models"

// Route labels. The presentation layer resolves these into concrete
// links or actions; the core only names them.
const (
	RouteCall108      = "Call 108"
	RouteFindER       = "Find nearest ER"
	RouteTelemedicine = "Open telemedicine"
	RouteFindClinic   = "Find nearby clinic"
	RouteCallClinic   = "Call clinic"
	RouteSelfCareTips = "Self-care tips"
)

// RuleEntry associates a keyword with the outcome bundle returned when
// the keyword is contained in the input text.
type RuleEntry struct {
	Keyword     string
	Tier        models.UrgencyTier
	HeadlineKey string
	Routes      []string
	AdviceKey   string
}

// RuleTable is the ordered rule catalog: a red-flag substring list
// checked before everything else, and keyword entries grouped by tier
// in precedence order (emergency, urgent, moderate, selfcare). Within
// a tier the declared order is the scan order and the first substring
// match wins. Red-flag order does not affect the outcome; any match
// forces the Emergency branch.
type RuleTable struct {
	RedFlags []string
	Entries  []RuleEntry
}

// DefaultRuleTable returns the built-in rule catalog.
func DefaultRuleTable() RuleTable {
	emergencyRoutes := []string{RouteCall108, RouteFindER}
	urgentRoutes := []string{RouteFindClinic, RouteCallClinic}
	moderateRoutes := []string{RouteTelemedicine, RouteFindClinic}
	selfcareRoutes := []string{RouteSelfCareTips, RouteTelemedicine}

	return RuleTable{
		RedFlags: []string{
			"chest pain",
			"difficulty breathing",
			"shortness of breath",
			"severe bleeding",
			"unconscious",
			"not breathing",
			"blood in vomit",
			"coughing blood",
			"slurred speech",
			"face drooping",
			"seizure",
		},
		Entries: []RuleEntry{
			// Emergency tier.
			{Keyword: "fainted", Tier: models.TierEmergency, HeadlineKey: "emergency_msg", Routes: emergencyRoutes, AdviceKey: "emergency_general"},
			{Keyword: "unresponsive", Tier: models.TierEmergency, HeadlineKey: "emergency_msg", Routes: emergencyRoutes, AdviceKey: "emergency_general"},
			{Keyword: "severe burn", Tier: models.TierEmergency, HeadlineKey: "emergency_msg", Routes: emergencyRoutes, AdviceKey: "emergency_general"},

			// Urgent tier.
			{Keyword: "high fever", Tier: models.TierUrgent, HeadlineKey: "urgent_msg", Routes: urgentRoutes, AdviceKey: "urgent_general"},
			{Keyword: "severe pain", Tier: models.TierUrgent, HeadlineKey: "urgent_msg", Routes: urgentRoutes, AdviceKey: "urgent_general"},
			{Keyword: "dehydration", Tier: models.TierUrgent, HeadlineKey: "urgent_msg", Routes: urgentRoutes, AdviceKey: "urgent_general"},
			{Keyword: "stiff neck", Tier: models.TierUrgent, HeadlineKey: "urgent_msg", Routes: urgentRoutes, AdviceKey: "urgent_general"},

			// Moderate tier.
			{Keyword: "fever", Tier: models.TierModerate, HeadlineKey: "moderate_msg", Routes: moderateRoutes, AdviceKey: "moderate_general"},
			{Keyword: "vomiting", Tier: models.TierModerate, HeadlineKey: "moderate_msg", Routes: moderateRoutes, AdviceKey: "moderate_general"},
			{Keyword: "diarrhea", Tier: models.TierModerate, HeadlineKey: "moderate_msg", Routes: moderateRoutes, AdviceKey: "moderate_general"},
			{Keyword: "sore throat", Tier: models.TierModerate, HeadlineKey: "moderate_msg", Routes: moderateRoutes, AdviceKey: "moderate_general"},
			{Keyword: "ear pain", Tier: models.TierModerate, HeadlineKey: "moderate_msg", Routes: moderateRoutes, AdviceKey: "moderate_general"},

			// Self-care tier: shared headline and routes, keyword-specific advice.
			{Keyword: "headache", Tier: models.TierSelfCare, HeadlineKey: "selfcare_msg", Routes: selfcareRoutes, AdviceKey: "selfcare_headache"},
			{Keyword: "cough", Tier: models.TierSelfCare, HeadlineKey: "selfcare_msg", Routes: selfcareRoutes, AdviceKey: "selfcare_cough"},
		},
	}
}

// RequiredKeys returns every knowledge base key the table references,
// de-duplicated in first-reference order, for the startup self-check.
func (t RuleTable) RequiredKeys() []string {
	seen := make(map[string]bool)
	var keys []string
	add := func(key string) {
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		keys = append(keys, key)
	}
	for _, e := range t.Entries {
		add(e.HeadlineKey)
		add(e.AdviceKey)
	}
	return keys
}
