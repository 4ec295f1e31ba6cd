package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/config"
	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/logs"
	"github.com/mark3labs/mcp-go/mcp"
)

func writeEmulatorLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emulator-debug.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestMCP_BundleHandlers(t *testing.T) {
	t.Setenv(logs.EnvLogPath, "")
	path := writeEmulatorLog(t, "i  firestore: started", "i  auth: started", "i  functions: loaded")

	bundle, err := BuildMCPServer(config.Default(), path)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if len(bundle.ToolHandlers) != 2 {
		t.Fatalf("expected 2 tool handlers, got %d", len(bundle.ToolHandlers))
	}

	handler := bundle.ToolHandlers["get_firebase_logs"]
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"service": "auth"}
	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("tool error: %v", err)
	}
	if len(res.Content) == 0 {
		t.Fatalf("no content")
	}
	b, _ := json.Marshal(res.Content[0])
	if !strings.Contains(string(b), "auth: started") || strings.Contains(string(b), "firestore: started") {
		t.Fatalf("unexpected payload: %s", string(b))
	}

	res, err = bundle.ToolHandlers["watch_firebase_logs"](context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("tool error: %v", err)
	}
	b, _ = json.Marshal(res.Content[0])
	if !strings.Contains(string(b), "currently in development") {
		t.Fatalf("unexpected watch payload: %s", string(b))
	}
}

func TestMCP_BuildRequiresConfig(t *testing.T) {
	if _, err := BuildMCPServer(nil, ""); err == nil {
		t.Fatalf("expected error without config")
	}
}
