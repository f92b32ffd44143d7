// Package mcp provides an MCP (Model Context Protocol) server that exposes
// hbd triage functionality as MCP tools for AI assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/healthbuddy-dev/healthbuddy/internal/core"
	"github.com/healthbuddy-dev/healthbuddy/internal/integration"
	"github.com/healthbuddy-dev/healthbuddy/internal/observability"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps hbd services and exposes them as MCP tools.
type Server struct {
	server      *gomcp.Server
	engine      *core.Engine
	kb          *core.KnowledgeBase
	metricsCalc observability.MetricsCalculator
	links       integration.RouteLinkResolver
}

// NewServer creates a new MCP server with the given hbd service
// dependencies. metricsCalc may be nil if the decision log is disabled.
func NewServer(engine *core.Engine, kb *core.KnowledgeBase, metricsCalc observability.MetricsCalculator, links integration.RouteLinkResolver, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		engine:      engine,
		kb:          kb,
		metricsCalc: metricsCalc,
		links:       links,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "hbd", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on the given transport, blocking until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type triageSymptomsInput struct {
	Symptoms string `json:"symptoms" jsonschema:"required,free-text symptom description (e.g. 'fever for 3 days and sore throat')"`
	Age      int    `json:"age,omitempty" jsonschema:"patient age in years; overrides any age found in the text when > 0"`
	Days     int    `json:"days,omitempty" jsonschema:"symptom duration in days; overrides any duration found in the text when > 0"`
	Severity string `json:"severity,omitempty" jsonschema:"self-reported severity (mild, moderate, severe)"`
}

type triageSymptomsOutput struct {
	Tier         string            `json:"tier"`
	TierDisplay  string            `json:"tier_display"`
	Headline     string            `json:"headline"`
	ReasonCode   string            `json:"reason_code"`
	Age          *int              `json:"age,omitempty"`
	DurationDays *int              `json:"duration_days,omitempty"`
	UserSeverity string            `json:"user_severity,omitempty"`
	AdvicePoints []string          `json:"advice_points"`
	Routes       map[string]string `json:"routes"`
}

type getAdviceInput struct {
	Key string `json:"key" jsonschema:"required,knowledge base key (e.g. selfcare_headache, urgent_general)"`
}

type getAdviceOutput struct {
	Key     string   `json:"key"`
	Text    string   `json:"text,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

type getTriageStatsInput struct {
	Since string `json:"since,omitempty" jsonschema:"time window for stats (e.g. 7d, 30d, 24h). Defaults to 7d."`
}

type triageStatsOutput struct {
	DecisionCount int            `json:"decision_count"`
	ByTier        map[string]int `json:"by_tier"`
	RedFlagHits   int            `json:"red_flag_hits"`
	FeverRuleHits int            `json:"fever_rule_hits"`
	FallbackCount int            `json:"fallback_count"`
	OldestRecord  string         `json:"oldest_record,omitempty"`
	NewestRecord  string         `json:"newest_record,omitempty"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "triage_symptoms",
		Description: "Classify a free-text symptom description into an urgency tier. Returns the tier, headline, advice points, and routing links.",
	}, s.handleTriageSymptoms)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_advice",
		Description: "Look up a knowledge base entry by key. Returns the message text or advice bullet list stored under that key.",
	}, s.handleGetAdvice)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_triage_stats",
		Description: "Get aggregated stats from the decision log, including counts per urgency tier and rule family hits.",
	}, s.handleGetTriageStats)
}

// --- Tool handlers ---

func (s *Server) handleTriageSymptoms(_ context.Context, _ *gomcp.CallToolRequest, input triageSymptomsInput) (*gomcp.CallToolResult, triageSymptomsOutput, error) {
	if input.Symptoms == "" {
		return errorResult("symptoms is required"), emptyTriageOutput(), nil
	}

	decision := s.engine.Evaluate(input.Symptoms, core.EvaluateOptions{
		AgeOverride:      input.Age,
		DurationOverride: input.Days,
		Severity:         input.Severity,
	})

	out := triageSymptomsOutput{
		Tier:         string(decision.Tier),
		TierDisplay:  decision.Tier.Display(),
		Headline:     decision.Headline,
		ReasonCode:   decision.ReasonCode,
		Age:          decision.Age,
		DurationDays: decision.DurationDays,
		UserSeverity: decision.UserSeverity,
		AdvicePoints: decision.AdvicePoints,
		Routes:       s.links.Links(decision.RouteLabels),
	}
	return nil, out, nil
}

func (s *Server) handleGetAdvice(_ context.Context, _ *gomcp.CallToolRequest, input getAdviceInput) (*gomcp.CallToolResult, getAdviceOutput, error) {
	if input.Key == "" {
		return errorResult("key is required"), getAdviceOutput{}, nil
	}

	val, err := s.kb.Get(input.Key)
	if err != nil {
		return errorResult(fmt.Sprintf("looking up %s: %s", input.Key, err)), getAdviceOutput{}, nil
	}

	out := getAdviceOutput{
		Key:     input.Key,
		Text:    val.Text,
		Bullets: val.Bullets,
	}
	return nil, out, nil
}

func (s *Server) handleGetTriageStats(_ context.Context, _ *gomcp.CallToolRequest, input getTriageStatsInput) (*gomcp.CallToolResult, triageStatsOutput, error) {
	if s.metricsCalc == nil {
		return errorResult("stats not available (decision log may be disabled)"), emptyStatsOutput(), nil
	}

	sinceStr := input.Since
	if sinceStr == "" {
		sinceStr = "7d"
	}

	sinceTime, err := parseSince(sinceStr)
	if err != nil {
		return errorResult(fmt.Sprintf("parsing since duration: %s", err)), emptyStatsOutput(), nil
	}

	metrics, err := s.metricsCalc.Calculate(sinceTime)
	if err != nil {
		return errorResult(fmt.Sprintf("calculating stats: %s", err)), emptyStatsOutput(), nil
	}

	out := triageStatsOutput{
		DecisionCount: metrics.DecisionCount,
		ByTier:        metrics.ByTier,
		RedFlagHits:   metrics.RedFlagHits,
		FeverRuleHits: metrics.FeverRuleHits,
		FallbackCount: metrics.FallbackCount,
	}
	if metrics.OldestRecord != nil {
		out.OldestRecord = metrics.OldestRecord.Format(time.RFC3339)
	}
	if metrics.NewestRecord != nil {
		out.NewestRecord = metrics.NewestRecord.Format(time.RFC3339)
	}

	return nil, out, nil
}

// --- Helpers ---

// emptyTriageOutput returns a triageSymptomsOutput whose map and slice fields
// are initialized, so the zero output passed alongside an error result still
// validates against the tool's output schema.
func emptyTriageOutput() triageSymptomsOutput {
	return triageSymptomsOutput{
		AdvicePoints: []string{},
		Routes:       map[string]string{},
	}
}

func emptyStatsOutput() triageStatsOutput {
	return triageStatsOutput{
		ByTier: make(map[string]int),
	}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}

// parseSince parses a human-friendly duration string like "7d", "30d", or "24h"
// into the corresponding time in the past.
func parseSince(s string) (time.Time, error) {
	now := time.Now().UTC()

	if len(s) < 2 {
		return time.Time{}, fmt.Errorf("invalid duration %q", s)
	}

	suffix := s[len(s)-1]
	numStr := s[:len(s)-1]
	var num int
	if _, err := fmt.Sscanf(numStr, "%d", &num); err != nil {
		return time.Time{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	switch suffix {
	case 'd':
		return now.AddDate(0, 0, -num), nil
	case 'h':
		return now.Add(-time.Duration(num) * time.Hour), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported duration suffix %q (use d or h)", string(suffix))
	}
}
