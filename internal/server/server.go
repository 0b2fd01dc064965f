// Package server exposes the toggler over the Model Context Protocol.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/pinwin/pinwin/internal/pin"
	"github.com/pinwin/pinwin/internal/platform"
	"github.com/pinwin/pinwin/internal/version"
)

// Server wraps the MCP server with the platform provider and the
// process-lifetime pin controller.
type Server struct {
	provider *platform.Provider
	ctrl     *pin.Controller

	// providerMu serializes all tool handlers, preserving the
	// single-logical-thread contract of the controller.
	providerMu sync.Mutex

	mcp *mcpserver.MCPServer
}

// New creates an MCP server with all pinwin tools registered.
func New(provider *platform.Provider, ctrl *pin.Controller) *Server {
	s := &Server{
		provider: provider,
		ctrl:     ctrl,
	}
	s.mcp = mcpserver.NewMCPServer("pinwin", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server on the requested transport and blocks.
func (s *Server) Serve(transport string, port int) error {
	switch transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List visible titled top-level windows with handle, title, and pinned state"),
			mcp.WithString("sort", mcp.Description("Display order: title, os (default: title)")),
			mcp.WithBoolean("pinned_only", mcp.Description("Only return windows that are currently topmost")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("toggle_pin",
			mcp.WithDescription("Toggle a window's always-on-top state by handle, or the focused window when no handle is given"),
			mcp.WithNumber("hwnd", mcp.Description("Window handle from list_windows")),
		),
		s.handleTogglePin,
	)

	s.mcp.AddTool(
		mcp.NewTool("is_pinned",
			mcp.WithDescription("Report whether a window is currently pinned (topmost), whoever pinned it"),
			mcp.WithNumber("hwnd", mcp.Description("Window handle"), mcp.Required()),
		),
		s.handleIsPinned,
	)

	s.mcp.AddTool(
		mcp.NewTool("unpin_all",
			mcp.WithDescription("Unpin every window this server pinned during its lifetime"),
		),
		s.handleUnpinAll,
	)
}
