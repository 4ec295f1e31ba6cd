package tools

import (
	"context"
	"sort"
	"time"

	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/config"
	"github.com/bascanada/firebase-logs-mcp/pkg/log"
	"github.com/bascanada/firebase-logs-mcp/pkg/ty"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	GetLogsTool   = "get_firebase_logs"
	WatchLogsTool = "watch_firebase_logs"
)

type handler func(ctx context.Context, args ty.MI) (*mcp.CallToolResult, error)

type contextKey string

const requestIDKey contextKey = "requestID"

// RequestID returns the id attached to a dispatched call, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Dispatcher routes tool calls by exact name to their handler.
type Dispatcher struct {
	cfg      *config.Config
	logPath  string // explicit log path, overrides env and config when set
	handlers map[string]handler
}

func NewDispatcher(cfg *config.Config, logPath string) *Dispatcher {
	if cfg == nil {
		cfg = config.Default()
	}
	d := &Dispatcher{cfg: cfg, logPath: logPath}
	d.handlers = map[string]handler{
		GetLogsTool:   d.getLogs,
		WatchLogsTool: d.watchLogs,
	}
	return d
}

// Names returns the registered tool names, sorted.
func (d *Dispatcher) Names() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the handler registered under the request's tool name.
func (d *Dispatcher) Dispatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return d.call(ctx, request.Params.Name, request)
}

// Handler returns a handler bound to name, ignoring the name carried by the
// request. Used to register each catalog entry with the MCP server.
func (d *Dispatcher) Handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return d.call(ctx, name, request)
	}
}

func (d *Dispatcher) call(ctx context.Context, name string, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h, ok := d.handlers[name]
	if !ok {
		log.Warn("unknown tool requested: %q", name)
		return nil, &MethodNotFoundError{Name: name}
	}

	id := uuid.New().String()
	ctx = context.WithValue(ctx, requestIDKey, id)

	start := time.Now()
	log.Info("tool call %s id=%s", name, id)

	args := ty.MI(request.GetArguments())
	if args == nil {
		args = ty.MI{}
	}

	result, err := h(ctx, args)
	if err != nil {
		log.Error("tool call %s id=%s failed after %s: %v", name, id, time.Since(start), err)
		return nil, err
	}
	log.Debug("tool call %s id=%s done in %s", name, id, time.Since(start))
	return result, nil
}
