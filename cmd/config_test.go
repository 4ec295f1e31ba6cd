package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bascanada/firebase-logs-mcp/pkg/emulator/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ErrorMessages(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	badYAML := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("services: [oops"), 0o644))
	badValues := filepath.Join(dir, "values.yaml")
	require.NoError(t, os.WriteFile(badValues, []byte("defaults:\n  lines: -1\n"), 0o644))

	_, err := loadConfig(badYAML)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrConfigParse))
	assert.Contains(t, err.Error(), "invalid configuration file format")

	_, err = loadConfig(badValues)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrConfigInvalid))
	assert.Contains(t, err.Error(), "invalid configuration values")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	dir := t.TempDir()

	for _, format := range []string{"yaml", "json"} {
		t.Run(format, func(t *testing.T) {
			cfg := config.Default()
			cfg.LogPath = "/tmp/emulator.log"
			cfg.Defaults.Lines.S(10)

			path := filepath.Join(dir, "firebase-logs."+format)
			require.NoError(t, writeConfigFile(path, format, cfg))

			loaded, err := config.Load(path)
			require.NoError(t, err)
			assert.Equal(t, "/tmp/emulator.log", loaded.LogPath)
			assert.Equal(t, 10, loaded.Defaults.LinesOrDefault())
			assert.Equal(t, cfg.Services, loaded.Services)
		})
	}

	assert.Error(t, writeConfigFile(filepath.Join(dir, "x.toml"), "toml", config.Default()))
}

func TestBuildConfigFromWizard(t *testing.T) {
	cfg, err := buildConfig(wizardAnswers{
		LogPath:        " ./emulator-debug.log ",
		Services:       "firestore, auth,, storage, all",
		DefaultService: "auth",
		DefaultLines:   "25",
	})
	require.NoError(t, err)
	assert.Equal(t, "./emulator-debug.log", cfg.LogPath)
	assert.Equal(t, []string{"firestore", "auth", "storage"}, cfg.Services)
	assert.Equal(t, "auth", cfg.Defaults.ServiceOrAll())
	assert.Equal(t, 25, cfg.Defaults.LinesOrDefault())

	_, err = buildConfig(wizardAnswers{LogPath: "x", Services: "auth", DefaultLines: "0"})
	assert.Error(t, err)

	_, err = buildConfig(wizardAnswers{LogPath: "x", Services: "auth", DefaultLines: "ten"})
	assert.Error(t, err)
}

func TestWizardHelpers(t *testing.T) {
	assert.Equal(t, "json", formatFromPath("/a/config.JSON"))
	assert.Equal(t, "yaml", formatFromPath("/a/config.yml"))

	target, err := wizardTarget("./custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, "./custom.yaml", target)

	home := t.TempDir()
	t.Setenv("HOME", home)
	target, err = wizardTarget("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, config.DefaultConfigDir, config.DefaultConfigFile), target)
}
