package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/healthbuddy-dev/healthbuddy/internal/core"
	"github.com/healthbuddy-dev/healthbuddy/pkg/models"
	"github.com/spf13/cobra"
)

var (
	checkAge      int
	checkDays     int
	checkSeverity string
	checkJSON     bool
	checkNoLog    bool
)

// Tier badge styles, keyed by urgency tier.
var tierBadgeStyles = map[models.UrgencyTier]lipgloss.Style{
	models.TierEmergency: lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("230")).Background(lipgloss.Color("196")).Padding(0, 1),
	models.TierUrgent: lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("230")).Background(lipgloss.Color("202")).Padding(0, 1),
	models.TierModerate: lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("232")).Background(lipgloss.Color("226")).Padding(0, 1),
	models.TierSelfCare: lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("230")).Background(lipgloss.Color("28")).Padding(0, 1),
	models.TierUnknown: lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("230")).Background(lipgloss.Color("240")).Padding(0, 1),
}

var (
	checkHeadlineStyle = lipgloss.NewStyle().Bold(true)
	checkDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	checkRouteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
)

var checkCmd = &cobra.Command{
	Use:   "check <symptoms>",
	Short: "Classify a symptom description into an urgency tier",
	Long: `Classify a free-text symptom description into an urgency tier.

The text is matched against red flags, the fever-duration rule, and the
ordered keyword rules. Age and duration are extracted from the text when
present; the --age and --days flags override them. The decision is
appended to the local decision log unless --no-log is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("triage engine not initialized")
		}

		text := strings.Join(args, " ")
		decision := Engine.Evaluate(text, core.EvaluateOptions{
			AgeOverride:      checkAge,
			DurationOverride: checkDays,
			Severity:         checkSeverity,
		})

		if !checkNoLog && DecisionLog != nil {
			record := models.DecisionRecord{
				ID:       uuid.NewString(),
				Time:     time.Now().UTC(),
				Input:    text,
				Decision: decision,
			}
			if err := DecisionLog.Append(record); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: recording decision: %v\n", err)
			}
		}

		if checkJSON {
			data, err := json.MarshalIndent(decision, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting decision as JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		printDecision(cmd, decision)
		return nil
	},
}

// printDecision renders a decision for the terminal: tier badge,
// headline, extracted context, advice bullets, and resolved routes.
func printDecision(cmd *cobra.Command, d models.Decision) {
	out := cmd.OutOrStdout()

	badge := tierBadgeStyles[d.Tier].Render(d.Tier.Display())
	fmt.Fprintf(out, "%s  %s\n", badge, checkHeadlineStyle.Render(d.Headline))

	var ctx []string
	if d.Age != nil {
		ctx = append(ctx, fmt.Sprintf("age %d", *d.Age))
	}
	if d.DurationDays != nil {
		ctx = append(ctx, fmt.Sprintf("%d day(s)", *d.DurationDays))
	}
	if d.UserSeverity != "" {
		ctx = append(ctx, "severity "+d.UserSeverity)
	}
	if len(ctx) > 0 {
		fmt.Fprintln(out, checkDimStyle.Render("  "+strings.Join(ctx, ", ")))
	}

	if len(d.AdvicePoints) > 0 {
		fmt.Fprintln(out)
		for _, point := range d.AdvicePoints {
			fmt.Fprintf(out, "  • %s\n", point)
		}
	}

	if len(d.RouteLabels) > 0 {
		fmt.Fprintln(out)
		for _, label := range d.RouteLabels {
			link := "#"
			if LinkResolver != nil {
				link = LinkResolver.Resolve(label)
			}
			fmt.Fprintf(out, "  %s %s\n", checkRouteStyle.Render("→ "+label+":"), link)
		}
	}

	fmt.Fprintln(out, checkDimStyle.Render("\n  reason: "+d.ReasonCode))
}

func init() {
	checkCmd.Flags().IntVar(&checkAge, "age", 0, "patient age in years (overrides age found in text)")
	checkCmd.Flags().IntVar(&checkDays, "days", 0, "symptom duration in days (overrides duration found in text)")
	checkCmd.Flags().StringVar(&checkSeverity, "severity", "", "self-reported severity (mild, moderate, severe)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output the decision as JSON")
	checkCmd.Flags().BoolVar(&checkNoLog, "no-log", false, "do not record the decision in the log")
	rootCmd.AddCommand(checkCmd)
}
