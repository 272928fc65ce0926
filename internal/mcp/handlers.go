package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/cityclock/internal/navigation"
)

// handleListCities lists the navigation entries and their resolved zones.
func (s *Server) handleListCities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := s.loader.Load(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("navigation unavailable: %v", err)), nil
	}
	if len(items) == 0 {
		return mcp.NewToolResultText("The navigation document lists no cities."), nil
	}

	var sb strings.Builder
	for i, it := range items {
		zone, ok := s.zones.Resolve(it.Label, it.Timezone)
		if !ok {
			zone = "unknown"
		}
		fmt.Fprintf(&sb, "%d. %s (%s)\n", i+1, it.Label, zone)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleCityTime returns the formatted time for a city label.
func (s *Server) handleCityTime(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := request.RequireString("city")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: city"), nil
	}

	var explicit string
	if items, err := s.loader.Load(ctx); err == nil {
		if it, ok := navigation.Find(items, city); ok {
			explicit = it.Timezone
		}
	}
	zone, ok := s.zones.Resolve(city, explicit)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no time zone is known for %q", city)), nil
	}
	return s.formatResult(city, zone)
}

// handleZoneTime returns the formatted time for an IANA zone.
func (s *Server) handleZoneTime(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	zone, err := request.RequireString("timezone")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: timezone"), nil
	}
	return s.formatResult(zone, zone)
}

func (s *Server) formatResult(name, zone string) (*mcp.CallToolResult, error) {
	display, err := s.formatter.Format(s.now(), zone)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if name == zone {
		return mcp.NewToolResultText(display), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s (%s): %s", name, zone, display)), nil
}
