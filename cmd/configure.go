// SPDX-License-Identifier: GPL-3.0-only
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/config"
	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/logs"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Interactive wizard to generate a configuration file",
	Long: `Launch an interactive wizard to create the firebase-logs configuration:
where the emulator writes its debug log, which services to offer as filters and
the default query.

Example:
  firebase-logs configure
  firebase-logs configure -c ./firebase-logs.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConfigWizard(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

type wizardAnswers struct {
	LogPath        string
	Services       string
	DefaultService string
	DefaultLines   string
}

func runConfigWizard(cfgPath string) error {
	answers := wizardAnswers{
		LogPath:        logs.ResolvePath(""),
		Services:       strings.Join(logs.DefaultServices, ", "),
		DefaultService: logs.ServiceAll,
		DefaultLines:   strconv.Itoa(logs.DefaultLines),
	}
	var confirm bool

	fmt.Println("Welcome to the firebase-logs configuration wizard!")
	fmt.Println()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Emulator log file").
				Description("Path of the debug log written by the Firebase emulators").
				Value(&answers.LogPath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("log path is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Services").
				Description("Comma separated services offered as filters").
				Value(&answers.Services).
				Validate(func(s string) error {
					if len(splitServices(s)) == 0 {
						return errors.New("at least one service is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default service").
				OptionsFunc(func() []huh.Option[string] {
					return huh.NewOptions(append(splitServices(answers.Services), logs.ServiceAll)...)
				}, &answers.Services).
				Value(&answers.DefaultService),
			huh.NewInput().
				Title("Default number of lines").
				Value(&answers.DefaultLines).
				Validate(func(s string) error {
					_, err := parseLines(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("wizard cancelled: %w", err)
	}

	cfg, err := buildConfig(answers)
	if err != nil {
		return err
	}

	target, err := wizardTarget(cfgPath)
	if err != nil {
		return err
	}

	confirmForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Write configuration to %s?", target)).
				Value(&confirm),
		),
	)
	if err := confirmForm.Run(); err != nil {
		return fmt.Errorf("wizard cancelled: %w", err)
	}
	if !confirm {
		fmt.Println("Nothing written.")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := writeConfigFile(target, formatFromPath(target), cfg); err != nil {
		return err
	}

	fmt.Printf("Configuration written to %s\n", target)
	return nil
}

func buildConfig(answers wizardAnswers) (*config.Config, error) {
	cfg := config.Default()
	cfg.LogPath = strings.TrimSpace(answers.LogPath)
	cfg.Services = splitServices(answers.Services)

	lines, err := parseLines(answers.DefaultLines)
	if err != nil {
		return nil, err
	}
	cfg.Defaults.Lines.S(lines)
	if s := strings.TrimSpace(answers.DefaultService); s != "" {
		cfg.Defaults.Service.S(s)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitServices(s string) []string {
	var services []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" && part != logs.ServiceAll {
			services = append(services, part)
		}
	}
	return services
}

func parseLines(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("number of lines must be a positive integer, got %q", s)
	}
	return n, nil
}

func wizardTarget(cfgPath string) (string, error) {
	if cfgPath != "" {
		return cfgPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, config.DefaultConfigDir, config.DefaultConfigFile), nil
}

func formatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}
