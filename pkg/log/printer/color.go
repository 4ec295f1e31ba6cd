package printer

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorState manages global color output settings for the printer
type ColorState struct {
	enabled bool
}

var globalColorState = &ColorState{}

// InitColorState initializes color support based on configuration and environment.
// Priority order (highest to lowest):
//  1. Explicit user setting (via CLI flag)
//  2. NO_COLOR environment variable
//  3. TTY detection (auto-detect terminal)
//  4. Default to disabled (for unknown writers)
func InitColorState(explicitSetting *bool, writer io.Writer) {
	if explicitSetting != nil {
		setColor(*explicitSetting)
		return
	}

	if os.Getenv("NO_COLOR") != "" {
		setColor(false)
		return
	}

	if f, ok := writer.(*os.File); ok {
		setColor(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
		return
	}

	setColor(false)
}

func setColor(enabled bool) {
	globalColorState.enabled = enabled
	color.NoColor = !enabled
}

// IsColorEnabled returns whether color output is currently enabled.
func IsColorEnabled() bool {
	return globalColorState.enabled
}

var serviceColors = []color.Attribute{
	color.FgCyan,
	color.FgYellow,
	color.FgMagenta,
	color.FgGreen,
	color.FgBlue,
	color.FgRed,
}

// Bold renders text in bold when colors are enabled.
func Bold(text string) string {
	if !IsColorEnabled() {
		return text
	}
	return color.New(color.Bold).Sprint(text)
}
