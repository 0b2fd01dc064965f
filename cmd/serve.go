package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pinwin/pinwin/internal/pin"
	"github.com/pinwin/pinwin/internal/platform"
	"github.com/pinwin/pinwin/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing pinwin tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes window
listing and pin toggling as tools, so agents can pin windows without
shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  pinwin serve
  pinwin serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	srv := server.New(provider, pin.NewController(provider.Reader, provider.ZOrderer))
	if err := srv.Serve(transport, port); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
