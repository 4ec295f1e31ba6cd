package cmd

import (
	"errors"
	"fmt"

	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/config"
)

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		errorMsg := "failed to load config"
		switch {
		case errors.Is(err, config.ErrConfigParse):
			errorMsg = "invalid configuration file format"
		case errors.Is(err, config.ErrConfigInvalid):
			errorMsg = "invalid configuration values"
		}
		return nil, fmt.Errorf("%s: %w", errorMsg, err)
	}
	return cfg, nil
}
