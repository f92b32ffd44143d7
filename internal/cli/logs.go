package cli

import (
	"fmt"
	"time"

	"github.com/healthbuddy-dev/healthbuddy/internal/observability"
	"github.com/healthbuddy-dev/healthbuddy/pkg/models"
	"github.com/spf13/cobra"
)

var (
	logsTier  string
	logsLimit int
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show recorded triage decisions",
	Long: `Show decisions from the local decision log, oldest first.

Use --tier to filter by urgency tier and --limit to keep only the most
recent entries.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if DecisionLog == nil {
			return fmt.Errorf("decision log not initialized")
		}

		filter := observability.DecisionFilter{Limit: logsLimit}
		if logsTier != "" {
			tier := models.UrgencyTier(logsTier)
			if !tier.Valid() {
				return fmt.Errorf("invalid tier %q: must be one of emergency, urgent, moderate, selfcare, unknown", logsTier)
			}
			filter.Tier = tier
		}

		records, err := DecisionLog.Read(filter)
		if err != nil {
			return fmt.Errorf("reading decision log: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No decisions recorded.")
			return nil
		}

		for _, r := range records {
			badge := tierBadgeStyles[r.Decision.Tier].Render(r.Decision.Tier.Display())
			fmt.Fprintf(out, "%s  %s  %s\n", r.Time.Format(time.RFC3339), badge, r.Input)
			fmt.Fprintln(out, checkDimStyle.Render("  "+r.Decision.ReasonCode+"  "+r.ID))
		}
		return nil
	},
}

func init() {
	logsCmd.Flags().StringVar(&logsTier, "tier", "", "filter by urgency tier (emergency, urgent, moderate, selfcare, unknown)")
	logsCmd.Flags().IntVar(&logsLimit, "limit", 0, "keep only the most recent N decisions")
	rootCmd.AddCommand(logsCmd)
}
