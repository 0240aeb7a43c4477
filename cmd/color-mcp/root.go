package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/config"
)

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	configPath string
}

func (o *rootOptions) load() (config.Config, error) {
	return config.Load(o.configPath)
}

// newRootCmd builds the command tree. Running the root command with no
// subcommand starts the MCP server.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "color-mcp",
		Short: "MCP server and CLI for color conversion",
		Long: `color-mcp converts colors between hex, rgb(a) and hsl(a) notation.

With no subcommand it runs as an MCP server over stdin/stdout; configure it
in your MCP client (e.g., Claude Desktop). The convert and random
subcommands expose the same engine on the command line.

Environment variables:
  COLOR_MCP_LOG_LEVEL=debug     Enable debug logging
  COLOR_MCP_OUTPUT_MODE=object  Default output mode (auto, object, string)`,
		Version: Version,
		// Errors are reported by cobra; usage is noise for runtime failures
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}
	rootCmd.SetVersionTemplate(`{{printf "color-mcp version %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"config file (default is $HOME/.config/color-tools-mcp/config.yaml)")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newRandomCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
