package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/config"
	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/tools"
	"github.com/bascanada/firebase-logs-mcp/pkg/log/printer"
	"github.com/spf13/cobra"
)

var toolsJSON bool

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools exposed by the MCP server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		printer.InitColorState(nil, os.Stdout)

		if err := printTools(cmd.OutOrStdout(), cfg, toolsJSON); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func printTools(w io.Writer, cfg *config.Config, asJSON bool) error {
	catalog := tools.NewDispatcher(cfg, "").Catalog()

	if asJSON {
		out, err := printer.FormatJSON(catalog)
		if err != nil {
			return fmt.Errorf("failed to format tools: %w", err)
		}
		fmt.Fprintln(w, out)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION\tINPUT")
	for _, tool := range catalog {
		input := "-"
		if len(tool.InputSchema.Properties) > 0 {
			names := make([]string, 0, len(tool.InputSchema.Properties))
			for name := range tool.InputSchema.Properties {
				names = append(names, name)
			}
			sort.Strings(names)
			input = strings.Join(names, ", ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", tool.Name, tool.Description, input)
	}
	return tw.Flush()
}

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "print the tool catalog as JSON")
	rootCmd.AddCommand(toolsCmd)
}
