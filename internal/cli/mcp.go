package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	hbdmcp "github.com/healthbuddy-dev/healthbuddy/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running the hbd MCP (Model Context Protocol) server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hbd MCP server on stdio",
	Long: `Start the hbd MCP server on stdio transport.

The server exposes triage functionality as MCP tools that AI assistants
can call: triage_symptoms, get_advice, get_triage_stats.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Engine == nil {
			return fmt.Errorf("triage engine not initialized")
		}

		srv := hbdmcp.NewServer(Engine, KB, MetricsCalc, LinkResolver, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}

		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
