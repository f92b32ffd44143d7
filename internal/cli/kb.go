package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Inspect the knowledge base",
	Long:  "Commands for inspecting the merged knowledge base of advisory messages.",
}

var kbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all knowledge base keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if KB == nil {
			return fmt.Errorf("knowledge base not initialized")
		}

		for _, key := range KB.Keys() {
			fmt.Fprintln(cmd.OutOrStdout(), key)
		}
		return nil
	},
}

var kbGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show the value stored under a knowledge base key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if KB == nil {
			return fmt.Errorf("knowledge base not initialized")
		}

		val, err := KB.Get(args[0])
		if err != nil {
			return fmt.Errorf("looking up %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		if val.Text != "" {
			fmt.Fprintln(out, val.Text)
		}
		for _, bullet := range val.Bullets {
			fmt.Fprintf(out, "- %s\n", bullet)
		}
		return nil
	},
}

func init() {
	kbCmd.AddCommand(kbListCmd)
	kbCmd.AddCommand(kbGetCmd)
	rootCmd.AddCommand(kbCmd)
}
