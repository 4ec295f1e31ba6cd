package tools

import (
	"context"

	"github.com/bascanada/firebase-logs-mcp/pkg/ty"
	"github.com/mark3labs/mcp-go/mcp"
)

const watchNotImplemented = "Log watching feature is currently in development. Use get_firebase_logs for now."

// watchLogs is a placeholder, nothing is watched.
func (d *Dispatcher) watchLogs(_ context.Context, _ ty.MI) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(watchNotImplemented), nil
}
