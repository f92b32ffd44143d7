package cli

import (
	"fmt"
	"os"

	"github.com/healthbuddy-dev/healthbuddy/internal/observability"
	"github.com/healthbuddy-dev/healthbuddy/internal/storage"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the decision log as CSV",
	Long: `Export all recorded triage decisions as CSV.

The output goes to stdout by default; use --out to write a file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if DecisionLog == nil {
			return fmt.Errorf("decision log not initialized")
		}

		records, err := DecisionLog.Read(observability.DecisionFilter{})
		if err != nil {
			return fmt.Errorf("reading decision log: %w", err)
		}

		w := cmd.OutOrStdout()
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer func() { _ = f.Close() }()
			w = f
		}

		if err := storage.ExportCSV(w, records); err != nil {
			return fmt.Errorf("exporting decisions: %w", err)
		}

		if exportOut != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d decision(s) to %s\n", len(records), exportOut)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write CSV to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
