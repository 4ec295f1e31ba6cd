// SPDX-License-Identifier: GPL-3.0-only
package cmd

import (
	"fmt"
	"os"

	"github.com/bascanada/firebase-logs-mcp/pkg/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logPath    string

	logger log.MyLoggerOptions
)

var rootCmd = &cobra.Command{
	Use:   "firebase-logs",
	Short: "Expose Firebase emulator logs to MCP agents",
	Long: `firebase-logs serves the recent lines of the Firebase emulator debug log
over the Model Context Protocol (stdio), and can print them from the terminal.`,
	PersistentPreRun: onCommandStart,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func onCommandStart(cmd *cobra.Command, args []string) {
	log.ConfigureMyLogger(&logger)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (json or yaml), defaults to $FIREBASE_LOGS_CONFIG or ~/.firebase-logs/config.yaml")
	rootCmd.PersistentFlags().StringVarP(&logPath, "path", "p", "", "emulator log file, defaults to $FIREBASE_LOG_PATH or ./emulator-debug.log")
	rootCmd.PersistentFlags().StringVar(&logger.Path, "logging-path", "", "file to output logs of the application")
	rootCmd.PersistentFlags().StringVar(&logger.Level, "logging-level", "", "logging level to output INFO WARN ERROR DEBUG TRACE")
	rootCmd.PersistentFlags().BoolVar(&logger.Stderr, "logging-stderr", false, "output application log in the stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("logging-level", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}, cobra.ShellCompDirectiveNoFileComp
	})
}
