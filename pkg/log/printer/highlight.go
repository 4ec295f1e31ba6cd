package printer

import (
	"strings"

	"github.com/fatih/color"
)

// HighlightServices colors each line by the first of services it mentions
// (case-insensitive). Services keep a stable color given their position.
// Lines mentioning none of them are left as is.
func HighlightServices(text string, services []string) string {
	if !IsColorEnabled() || len(services) == 0 {
		return text
	}

	painters := make([]*color.Color, len(services))
	for i := range services {
		painters[i] = color.New(serviceColors[i%len(serviceColors)])
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lower := strings.ToLower(line)
		for j, service := range services {
			if service != "" && strings.Contains(lower, strings.ToLower(service)) {
				lines[i] = painters[j].Sprint(line)
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}
