package logs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/bascanada/firebase-logs-mcp/pkg/log"
)

// ResolvePath picks the log file location: the explicit path when given,
// then FIREBASE_LOG_PATH, then DefaultLogPath.
func ResolvePath(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv(EnvLogPath)); p != "" {
		return p
	}
	return DefaultLogPath
}

// ReadRecentLogs returns the last maxLines non-blank lines of the file at
// path, keeping only lines that contain service (case-insensitive) unless
// service is empty or ServiceAll.
//
// Every outcome is returned as text. A missing file, an empty selection or a
// read failure produce a readable advisory instead of an error, the caller
// being a conversational agent.
func ReadRecentLogs(path string, maxLines int, service string) string {
	if maxLines <= 0 {
		maxLines = DefaultLines
	}

	if _, err := os.Stat(path); isMissing(err) {
		log.Debug("log file %s does not exist", path)
		return fmt.Sprintf("Log file not found at %s. Make sure Firebase emulators are running with the start.sh script.", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		log.Warn("failed to read log file %s: %v", path, err)
		return fmt.Sprintf("Error reading log file: %v", err)
	}

	lines := nonBlankLines(string(content))

	filtered := isFiltered(service)
	if filtered {
		lines = filterService(lines, service)
	}

	recent := tail(lines, maxLines)
	log.Trace("read %d lines from %s, returning %d", len(lines), path, len(recent))

	if len(recent) == 0 {
		if filtered {
			return fmt.Sprintf("No logs found for service: %s", service)
		}
		return "No logs available"
	}

	return strings.Join(recent, "\n")
}

// isMissing reports a path that cannot exist, including one whose parent is
// a regular file.
func isMissing(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

func isFiltered(service string) bool {
	return service != "" && service != ServiceAll
}

func nonBlankLines(content string) []string {
	all := strings.Split(content, "\n")
	lines := make([]string, 0, len(all))
	for _, line := range all {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// filterService keeps lines containing service as a literal,
// case-insensitive substring. Regex metacharacters have no meaning.
func filterService(lines []string, service string) []string {
	needle := strings.ToLower(service)
	out := lines[:0:0]
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), needle) {
			out = append(out, line)
		}
	}
	return out
}

func tail(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}

// Read runs q against the file at path.
func Read(path string, q Query) string {
	return ReadRecentLogs(path, q.LinesOrDefault(), q.ServiceOrAll())
}
