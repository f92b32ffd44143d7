package core

import (
	"fmt"
	"strings"

	"github.com/healthbuddy-dev/healthbuddy/pkg/models"
)

// EvaluateOptions carries the caller-supplied overrides for a single
// evaluation. Age and duration overrides take effect only when > 0 and
// then fully replace the text-derived values (no merging). Severity is
// carried through to the Decision unchanged and never influences the
// tier.
type EvaluateOptions struct {
	AgeOverride      int
	DurationOverride int
	Severity         string
}

// evalInput is the resolved input a gate sees: the lower-cased full
// text plus the hints after overrides were applied.
type evalInput struct {
	text     string
	hints    models.ExtractedHints
	severity string
}

// gate inspects the input and returns a Decision when it fires, or nil
// to pass control to the next gate.
type gate func(in evalInput) *models.Decision

// Engine classifies symptom text by evaluating four gates in fixed
// order: red flags, the fever-duration special case, the ordered
// keyword rules, and the fallback. The first gate that fires wins; no
// gate is retried. The engine is a pure function of its inputs and the
// knowledge base snapshot and is safe for concurrent use.
type Engine struct {
	kb    *KnowledgeBase
	table RuleTable
	gates []gate
}

// engineKeys are the knowledge base keys the gates reference directly,
// beyond the ones the rule table declares.
var engineKeys = []string{
	"emergency_msg",
	"emergency_general",
	"fever_3d_msg",
	"moderate_fever3",
	"pediatric_fever3_msg",
	"urgent_pediatric_fever3",
	"fallback_msg",
}

// NewEngine validates that every key the table and gates reference
// resolves in the knowledge base, then builds the gate chain. A
// MissingKeyError here is fatal configuration: the engine refuses to
// serve evaluations until it is resolved.
func NewEngine(kb *KnowledgeBase, table RuleTable) (*Engine, error) {
	required := append(table.RequiredKeys(), engineKeys...)
	if err := kb.Validate(required); err != nil {
		return nil, fmt.Errorf("building triage engine: %w", err)
	}

	e := &Engine{kb: kb, table: table}
	e.gates = []gate{
		e.redFlagGate,
		e.feverDurationGate,
		e.keywordGate,
		e.fallbackGate,
	}
	return e, nil
}

// Evaluate classifies text into an urgency tier with a headline,
// advice bullets, and route labels. It never fails: unrecognized input
// routes to the Unknown fallback tier, which is a successful outcome.
func (e *Engine) Evaluate(text string, opts EvaluateOptions) models.Decision {
	hints := ExtractHints(text)
	if opts.AgeOverride > 0 {
		age := opts.AgeOverride
		hints.Age = &age
	}
	if opts.DurationOverride > 0 {
		days := opts.DurationOverride
		hints.DurationDays = &days
	}

	in := evalInput{
		text:     strings.ToLower(text),
		hints:    hints,
		severity: opts.Severity,
	}

	for _, g := range e.gates {
		if d := g(in); d != nil {
			return *d
		}
	}

	// Unreachable: the fallback gate always fires.
	return models.Decision{Tier: models.TierUnknown, ReasonCode: "fallback"}
}

// redFlagGate scans the text for red-flag substrings in list order.
// Any match forces the Emergency tier.
func (e *Engine) redFlagGate(in evalInput) *models.Decision {
	for _, flag := range e.table.RedFlags {
		if strings.Contains(in.text, flag) {
			return e.decision(in, models.TierEmergency, "emergency_msg",
				[]string{RouteCall108, RouteFindER}, "emergency_general",
				"red_flag:"+flag)
		}
	}
	return nil
}

// feverDurationGate handles the fever-for-three-days special case. It
// fires only when the text mentions a fever and the duration condition
// holds; a resolved age under 5 selects the pediatric branch.
func (e *Engine) feverDurationGate(in evalInput) *models.Decision {
	if !strings.Contains(in.text, "fever") {
		return nil
	}
	if !feverLastedThreeDays(in) {
		return nil
	}
	if in.hints.Age != nil && *in.hints.Age < 5 {
		return e.decision(in, models.TierUrgent, "pediatric_fever3_msg",
			[]string{RouteFindClinic, RouteCallClinic}, "urgent_pediatric_fever3",
			"rule:fever_3_days_pediatric")
	}
	return e.decision(in, models.TierModerate, "fever_3d_msg",
		[]string{RouteTelemedicine, RouteFindClinic}, "moderate_fever3",
		"rule:fever_3_days")
}

// feverLastedThreeDays reports whether the text spells out a three-day
// duration (a standalone "3" or "three" token co-occurring with a
// "day"/"days" token anywhere in the text) or the resolved duration is
// at least three days.
func feverLastedThreeDays(in evalInput) bool {
	if in.hints.DurationDays != nil && *in.hints.DurationDays >= 3 {
		return true
	}
	var hasThree, hasDay bool
	for _, tok := range tokenize(in.text) {
		switch tok {
		case "3", "three":
			hasThree = true
		case "day", "days":
			hasDay = true
		}
	}
	return hasThree && hasDay
}

// keywordGate scans the rule entries in declared order (tiers in
// precedence order, keywords in declared order within a tier) and
// returns the bundle of the first substring match.
func (e *Engine) keywordGate(in evalInput) *models.Decision {
	for _, entry := range e.table.Entries {
		if strings.Contains(in.text, entry.Keyword) {
			return e.decision(in, entry.Tier, entry.HeadlineKey, entry.Routes,
				entry.AdviceKey,
				fmt.Sprintf("rule:%s:%s", entry.Tier, entry.Keyword))
		}
	}
	return nil
}

// fallbackGate always fires: unmatched input is a valid outcome, not
// an error.
func (e *Engine) fallbackGate(in evalInput) *models.Decision {
	return e.decision(in, models.TierUnknown, "fallback_msg",
		[]string{RouteTelemedicine, RouteFindClinic}, "", "fallback")
}

// decision assembles a Decision, resolving the headline and advice
// from the knowledge base. Every key was validated at construction, so
// the lookups cannot fail here. An empty adviceKey yields an empty
// advice list. Route and advice slices are copied so callers can never
// mutate engine state through a returned Decision.
func (e *Engine) decision(in evalInput, tier models.UrgencyTier, headlineKey string, routes []string, adviceKey, reason string) *models.Decision {
	headline, _ := e.kb.Text(headlineKey)

	advice := []string{}
	if adviceKey != "" {
		bullets, _ := e.kb.Bullets(adviceKey)
		advice = append(advice, bullets...)
	}

	routeLabels := make([]string, len(routes))
	copy(routeLabels, routes)

	return &models.Decision{
		Tier:         tier,
		Headline:     headline,
		RouteLabels:  routeLabels,
		Age:          in.hints.Age,
		DurationDays: in.hints.DurationDays,
		UserSeverity: in.severity,
		AdvicePoints: advice,
		ReasonCode:   reason,
	}
}
