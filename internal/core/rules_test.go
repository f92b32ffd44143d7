package core

import (
	"testing"

	"github.com/healthbuddy-dev/healthbuddy/pkg/models"
)

func TestDefaultRuleTable_TierOrder(t *testing.T) {
	table := DefaultRuleTable()

	lastRank := models.TierEmergency.Rank()
	for _, entry := range table.Entries {
		rank := entry.Tier.Rank()
		if rank > lastRank {
			t.Errorf("entries must be grouped in descending tier order; %q (%s) follows a lower tier", entry.Keyword, entry.Tier)
		}
		lastRank = rank
	}
}

func TestDefaultRuleTable_EntriesComplete(t *testing.T) {
	table := DefaultRuleTable()

	for _, entry := range table.Entries {
		if entry.Keyword == "" {
			t.Error("entry with empty keyword")
		}
		if !entry.Tier.Valid() || entry.Tier == models.TierUnknown {
			t.Errorf("entry %q has tier %q", entry.Keyword, entry.Tier)
		}
		if entry.HeadlineKey == "" || entry.AdviceKey == "" {
			t.Errorf("entry %q missing headline or advice key", entry.Keyword)
		}
		if len(entry.Routes) == 0 {
			t.Errorf("entry %q has no routes", entry.Keyword)
		}
	}

	if len(table.RedFlags) == 0 {
		t.Fatal("red flag list must not be empty")
	}
}

func TestRuleTable_RequiredKeys(t *testing.T) {
	table := DefaultRuleTable()
	keys := table.RequiredKeys()

	seen := make(map[string]bool)
	for _, key := range keys {
		if seen[key] {
			t.Errorf("duplicate key %q in RequiredKeys", key)
		}
		seen[key] = true
	}

	for _, want := range []string{"emergency_msg", "urgent_msg", "moderate_msg", "selfcare_msg", "selfcare_headache", "selfcare_cough"} {
		if !seen[want] {
			t.Errorf("RequiredKeys missing %q", want)
		}
	}
}
