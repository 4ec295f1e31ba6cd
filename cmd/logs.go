package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/config"
	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/logs"
	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/tools"
	"github.com/bascanada/firebase-logs-mcp/pkg/log/printer"
	"github.com/spf13/cobra"
)

type logsOptions struct {
	Service string
	Lines   int
	Copy    bool
}

var (
	logsOpts logsOptions
	noColor  bool
)

// copyToClipboard is swapped in tests, no clipboard is available in CI.
var copyToClipboard = clipboard.WriteAll

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print the recent emulator log lines",
	Long: `Print the most recent lines of the Firebase emulator log, the same
text the get_firebase_logs tool returns.

Example:
  firebase-logs logs --service auth --lines 20
  firebase-logs logs -p ./emulator-debug.log --copy`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var explicitColor *bool
		if noColor {
			disabled := false
			explicitColor = &disabled
		}
		printer.InitColorState(explicitColor, os.Stdout)

		if err := runLogs(cmd.OutOrStdout(), cfg, logPath, logsOpts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runLogs(w io.Writer, cfg *config.Config, path string, opts logsOptions) error {
	q := cfg.Defaults
	var req logs.Query
	if opts.Service != "" {
		req.Service.S(opts.Service)
	}
	if opts.Lines > 0 {
		req.Lines.S(opts.Lines)
	}
	q.MergeInto(&req)

	text := logs.Read(cfg.LogFile(path), q)

	fmt.Fprintf(w, "%s\n\n%s\n", printer.Bold(tools.Header(q.ServiceOrAll())), printer.HighlightServices(text, cfg.Services))

	if opts.Copy {
		if err := copyToClipboard(text); err != nil {
			return fmt.Errorf("failed to copy logs to clipboard: %w", err)
		}
	}
	return nil
}

func init() {
	logsCmd.Flags().StringVarP(&logsOpts.Service, "service", "s", "", "service to filter on (firestore, auth, functions, all)")
	logsCmd.Flags().IntVarP(&logsOpts.Lines, "lines", "n", 0, "number of recent lines to print (default 50)")
	logsCmd.Flags().BoolVar(&logsOpts.Copy, "copy", false, "copy the log lines to the clipboard")
	logsCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	_ = logsCmd.RegisterFlagCompletionFunc("service", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return cfg.ServiceEnum(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(logsCmd)
}
