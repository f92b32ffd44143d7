// Package cli implements the hbd command tree. Commands talk to the
// triage services through package-level variables wired by the app
// layer, which keeps each command file free of construction logic.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "hbd",
	Short: "HealthBuddy - symptom triage assistant",
	Long: `HealthBuddy (hbd) classifies free-text symptom descriptions into an
urgency tier (emergency, urgent, moderate, self-care) using a fixed
rule table and a configurable knowledge base of advisory messages.

It is an informational triage aid, not a diagnostic tool. Every
decision carries a reason code and is appended to a local decision log
for later review and export.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hbd %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
