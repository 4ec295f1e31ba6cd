package logs

import (
	"github.com/bascanada/firebase-logs-mcp/pkg/ty"
)

const (
	// EnvLogPath overrides the location of the emulator log file.
	EnvLogPath = "FIREBASE_LOG_PATH"

	// DefaultLogPath is used when neither an explicit path nor EnvLogPath is set.
	DefaultLogPath = "./emulator-debug.log"

	// ServiceAll is the sentinel service that disables filtering.
	ServiceAll = "all"

	// DefaultLines is the tail size when a query does not ask for one.
	DefaultLines = 50
)

// DefaultServices are the emulator services advertised to callers.
var DefaultServices = []string{"firestore", "auth", "functions"}

// Query describes one request for recent log lines.
type Query struct {
	Service ty.Opt[string] `json:"service" yaml:"service,omitempty"`
	Lines   ty.Opt[int]    `json:"lines" yaml:"lines,omitempty"`
}

// MergeInto overrides the fields of q with the ones set in other.
func (q *Query) MergeInto(other *Query) {
	if other == nil {
		return
	}
	q.Service.Merge(&other.Service)
	q.Lines.Merge(&other.Lines)
}

// ServiceOrAll returns the requested service, or ServiceAll when none was given.
func (q Query) ServiceOrAll() string {
	if s := q.Service.Or(""); s != "" {
		return s
	}
	return ServiceAll
}

// LinesOrDefault returns the requested line count, falling back to
// DefaultLines for a missing or non-positive value.
func (q Query) LinesOrDefault() int {
	if n := q.Lines.Or(0); n > 0 {
		return n
	}
	return DefaultLines
}
