package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	statsJSON  bool
	statsSince string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display aggregated triage statistics",
	Long: `Display statistics derived from the decision log.

Stats include decision counts per urgency tier and how often each rule
family (red flags, fever-duration rule, fallback) fired.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if MetricsCalc == nil {
			return fmt.Errorf("stats calculator not initialized (decision log may be disabled)")
		}

		sinceTime, err := parseSinceDuration(statsSince)
		if err != nil {
			return fmt.Errorf("parsing --since: %w", err)
		}

		metrics, err := MetricsCalc.Calculate(sinceTime)
		if err != nil {
			return fmt.Errorf("calculating stats: %w", err)
		}

		out := cmd.OutOrStdout()
		if statsJSON {
			data, err := json.MarshalIndent(metrics, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting stats as JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "Triage stats (since %s)\n\n", sinceTime.Format("2006-01-02"))
		fmt.Fprintf(out, "  %-24s %d\n", "Decisions recorded:", metrics.DecisionCount)
		fmt.Fprintf(out, "  %-24s %d\n", "Red flag hits:", metrics.RedFlagHits)
		fmt.Fprintf(out, "  %-24s %d\n", "Fever rule hits:", metrics.FeverRuleHits)
		fmt.Fprintf(out, "  %-24s %d\n", "Fallbacks:", metrics.FallbackCount)

		if len(metrics.ByTier) > 0 {
			fmt.Fprintln(out, "\n  Decisions by tier:")
			for tier, count := range metrics.ByTier {
				fmt.Fprintf(out, "    %-20s %d\n", tier+":", count)
			}
		}

		if metrics.OldestRecord != nil {
			fmt.Fprintf(out, "\n  %-24s %s\n", "Oldest decision:", metrics.OldestRecord.Format(time.RFC3339))
		}
		if metrics.NewestRecord != nil {
			fmt.Fprintf(out, "  %-24s %s\n", "Newest decision:", metrics.NewestRecord.Format(time.RFC3339))
		}

		return nil
	},
}

// parseSinceDuration parses a human-friendly duration string like "7d",
// "30d", or "24h" and returns the corresponding time in the past.
func parseSinceDuration(s string) (time.Time, error) {
	now := time.Now().UTC()
	s = strings.TrimSpace(s)
	if s == "" {
		return now.AddDate(0, 0, -7), nil
	}

	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day duration %q", s)
		}
		return now.AddDate(0, 0, -days), nil
	}

	if strings.HasSuffix(s, "h") {
		hours, err := strconv.Atoi(strings.TrimSuffix(s, "h"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid hour duration %q", s)
		}
		return now.Add(-time.Duration(hours) * time.Hour), nil
	}

	return time.Time{}, fmt.Errorf("unsupported duration %q (use Nd or Nh)", s)
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output stats as JSON")
	statsCmd.Flags().StringVar(&statsSince, "since", "7d", "time window for stats (e.g. 7d, 24h)")
	rootCmd.AddCommand(statsCmd)
}
