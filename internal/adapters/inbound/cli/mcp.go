package cli

import (
	mcpadapter "github.com/costflow/costflow/internal/adapters/inbound/mcp"
	"github.com/costflow/costflow/internal/adapters/outbound/config"
	"github.com/costflow/costflow/internal/adapters/outbound/logging"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the costflow MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start costflow MCP server (stdio)",
		Long:  "Start the costflow MCP server using stdio transport. This allows AI assistants to quote orders, evaluate discounts and list stage variants.",
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(projectPath)
			if err != nil {
				return err
			}
			// stdout carries the protocol, so diagnostics only go to stderr
			// and only when the project config is readable.
			logger := logging.New(cmd.ErrOrStderr(), "json", "disabled")
			if cfg, err := config.New().Load(absPath); err == nil {
				logger = logging.New(cmd.ErrOrStderr(), "json", cfg.Log.Level)
			}
			s := mcpadapter.NewCostflowMCPServer(absPath, logger)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path (defaults to current working directory)")

	return cmd
}
