package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	format    string
	forceInit bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Run: func(cmd *cobra.Command, args []string) {
		fileName := configPath
		if fileName == "" {
			fileName = "firebase-logs." + format
		}

		if _, err := os.Stat(fileName); err == nil && !forceInit {
			fmt.Fprintf(os.Stderr, "config file %s already exists, use --force to overwrite\n", fileName)
			os.Exit(1)
		}

		if err := writeConfigFile(fileName, format, config.Default()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("created config file: %s\n", fileName)
	},
}

func marshalConfig(cfg *config.Config, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(cfg, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func writeConfigFile(fileName, format string, cfg *config.Config) error {
	data, err := marshalConfig(cfg, format)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(fileName, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func init() {
	initCmd.Flags().StringVar(&format, "format", "yaml", "config file format (json or yaml)")
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
