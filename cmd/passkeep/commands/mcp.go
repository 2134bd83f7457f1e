package commands

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"passkeep/internal/mcptools"
)

func mcpCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the password tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := mcptools.NewServer(c.wire.Store, c.wire.Log, version)
			c.wire.Log.Info().Str("location", c.wire.Location).Msg("mcp server starting on stdio")
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
