package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listCitiesTool defines the list_cities MCP tool.
var listCitiesTool = mcp.NewTool("list_cities",
	mcp.WithDescription("List the cities of the navigation bar, in display order, with their time zones."),
)

// cityTimeTool defines the city_time MCP tool.
var cityTimeTool = mcp.NewTool("city_time",
	mcp.WithDescription("Get the current date and time for a city of the navigation bar."),
	mcp.WithString("city",
		mcp.Required(),
		mcp.Description("City label exactly as shown in the navigation bar, e.g. \"Tokyo\""),
	),
)

// zoneTimeTool defines the zone_time MCP tool.
var zoneTimeTool = mcp.NewTool("zone_time",
	mcp.WithDescription("Get the current date and time for an IANA time zone."),
	mcp.WithString("timezone",
		mcp.Required(),
		mcp.Description("IANA time zone identifier, e.g. \"Europe/Amsterdam\""),
	),
)
