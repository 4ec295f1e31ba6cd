package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/config"
	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/tools"
	"github.com/bascanada/firebase-logs-mcp/pkg/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

const mcpServerName = "firebase-logs"

// MCPServerBundle groups the MCP server with its tool handlers so tests can
// call a handler without going through a transport. Router is what the stdio
// transport serves.
type MCPServerBundle struct {
	Server       *server.MCPServer
	Dispatcher   *tools.Dispatcher
	Router       *tools.Router
	ToolHandlers map[string]server.ToolHandlerFunc
}

// BuildMCPServer creates the MCP server exposing the emulator log tools.
func BuildMCPServer(cfg *config.Config, logPath string) (*MCPServerBundle, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required to build the MCP server")
	}

	s := server.NewMCPServer(
		mcpServerName,
		Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	d := tools.NewDispatcher(cfg, logPath)
	handlers := d.Register(s)

	return &MCPServerBundle{
		Server:       s,
		Dispatcher:   d,
		Router:       tools.NewRouter(s, d),
		ToolHandlers: handlers,
	}, nil
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Starts a MCP server",
	Long: `Starts a MCP server on stdin/stdout exposing the get_firebase_logs and
watch_firebase_logs tools. Application logs never go to stdout, use
--logging-stderr or --logging-path to see them.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		bundle, err := BuildMCPServer(cfg, logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		log.Info("serving %s %s on stdio, tools %s, log file %s",
			mcpServerName, Version, strings.Join(bundle.Dispatcher.Names(), ", "), cfg.LogFile(logPath))
		err = bundle.Router.ServeStdio(ctx, os.Stdin, os.Stdout, server.WithErrorLogger(log.ErrorLogger()))
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error("mcp server stopped: %v", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
