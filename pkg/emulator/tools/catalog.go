package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Catalog describes the tools served by the dispatcher, in listing order.
func (d *Dispatcher) Catalog() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(GetLogsTool,
			mcp.WithDescription("Get recent Firebase emulator logs"),
			mcp.WithString("service",
				mcp.Description("Emulator service to filter on, 'all' for no filter"),
				mcp.Enum(d.cfg.ServiceEnum()...),
			),
			mcp.WithNumber("lines",
				mcp.Description("Number of most recent lines to return"),
				mcp.DefaultNumber(float64(d.cfg.Defaults.LinesOrDefault())),
				mcp.Min(1),
			),
		),
		mcp.NewTool(WatchLogsTool,
			mcp.WithDescription("Start watching Firebase logs in real-time"),
		),
	}
}

// Register adds every catalog entry to s, each bound to its handler.
func (d *Dispatcher) Register(s *server.MCPServer) map[string]server.ToolHandlerFunc {
	handlers := make(map[string]server.ToolHandlerFunc, len(d.handlers))
	for _, tool := range d.Catalog() {
		h := d.Handler(tool.Name)
		s.AddTool(tool, h)
		handlers[tool.Name] = h
	}
	return handlers
}
