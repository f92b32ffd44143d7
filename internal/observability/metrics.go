package observability

import (
	"fmt"
	"strings"
	"time"
)

// TriageMetrics holds aggregates derived from the decision log.
type TriageMetrics struct {
	DecisionCount int            `json:"decision_count"`
	ByTier        map[string]int `json:"by_tier"`
	RedFlagHits   int            `json:"red_flag_hits"`
	FeverRuleHits int            `json:"fever_rule_hits"`
	FallbackCount int            `json:"fallback_count"`
	OldestRecord  *time.Time     `json:"oldest_record,omitempty"`
	NewestRecord  *time.Time     `json:"newest_record,omitempty"`
}

// MetricsCalculator derives metrics from the decision log.
type MetricsCalculator interface {
	Calculate(since time.Time) (*TriageMetrics, error)
}

// metricsCalculator implements MetricsCalculator by reading from a
// DecisionLog.
type metricsCalculator struct {
	log DecisionLog
}

// NewMetricsCalculator creates a MetricsCalculator that reads from the
// given DecisionLog.
func NewMetricsCalculator(log DecisionLog) MetricsCalculator {
	return &metricsCalculator{log: log}
}

// Calculate reads all records since the given time and aggregates them
// by tier and by the rule family that produced them.
func (mc *metricsCalculator) Calculate(since time.Time) (*TriageMetrics, error) {
	records, err := mc.log.Read(DecisionFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading decision log for metrics: %w", err)
	}

	m := &TriageMetrics{
		ByTier: make(map[string]int),
	}
	m.DecisionCount = len(records)

	for i, record := range records {
		if i == 0 {
			t := record.Time
			m.OldestRecord = &t
		}
		t := record.Time
		m.NewestRecord = &t

		m.ByTier[string(record.Decision.Tier)]++

		reason := record.Decision.ReasonCode
		switch {
		case strings.HasPrefix(reason, "red_flag:"):
			m.RedFlagHits++
		case strings.HasPrefix(reason, "rule:fever_3_days"):
			m.FeverRuleHits++
		case reason == "fallback":
			m.FallbackCount++
		}
	}

	return m, nil
}
