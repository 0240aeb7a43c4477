package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdin/stdout",
		Long: `Starts the color tools MCP server. Requests are read from stdin as
JSON-RPC 2.0, one per line, and responses are written to stdout. Logs go
to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}
}

func runServe(opts *rootOptions) error {
	cfg, err := opts.load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Debug() {
		log.Printf("Color MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("output mode %s, grayscale %s, swatch %dpx", cfg.OutputMode, cfg.GrayscaleMethod, cfg.SwatchSize)
	}

	if err := server.New(cfg).Run(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
