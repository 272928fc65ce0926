package mcp

import (
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/cityclock/internal/clock"
	"github.com/ziadkadry99/cityclock/internal/navigation"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the city clock as tools.
type Server struct {
	loader    *navigation.Loader
	formatter *clock.Formatter
	zones     clock.Table
	now       func() time.Time
	mcp       *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(loader *navigation.Loader, formatter *clock.Formatter, zones clock.Table) *Server {
	if zones == nil {
		zones = clock.DefaultTable()
	}
	s := &Server{
		loader:    loader,
		formatter: formatter,
		zones:     zones,
		now:       func() time.Time { return clock.Now() },
	}

	s.mcp = server.NewMCPServer(
		"cityclock",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listCitiesTool, s.handleListCities)
	s.mcp.AddTool(cityTimeTool, s.handleCityTime)
	s.mcp.AddTool(zoneTimeTool, s.handleZoneTime)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
