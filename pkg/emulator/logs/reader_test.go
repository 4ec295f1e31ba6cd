package logs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLogFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emulator-debug.log")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))
	return path
}

func TestReadRecentLogs(t *testing.T) {
	sample := []string{"a firestore line", "", "an auth line", "another auth line"}

	tests := []struct {
		name     string
		lines    []string
		maxLines int
		service  string
		want     string
	}{
		{
			name:     "filter auth tail one",
			lines:    sample,
			maxLines: 1,
			service:  "auth",
			want:     "another auth line",
		},
		{
			name:     "all returns everything unfiltered",
			lines:    []string{"one", "two", "three"},
			maxLines: 50,
			service:  "all",
			want:     "one\ntwo\nthree",
		},
		{
			name:     "empty service means all",
			lines:    []string{"one", "two", "three"},
			maxLines: 2,
			service:  "",
			want:     "two\nthree",
		},
		{
			name:     "filter is case insensitive",
			lines:    sample,
			maxLines: 50,
			service:  "AUTH",
			want:     "an auth line\nanother auth line",
		},
		{
			name:     "filter matches upper case content",
			lines:    []string{"[FIRESTORE] started", "[auth] started"},
			maxLines: 50,
			service:  "firestore",
			want:     "[FIRESTORE] started",
		},
		{
			name:     "blank and whitespace lines are dropped",
			lines:    []string{"  ", "first", "\t", "second", ""},
			maxLines: 50,
			service:  "all",
			want:     "first\nsecond",
		},
		{
			name:     "empty file",
			lines:    []string{},
			maxLines: 50,
			service:  "all",
			want:     "No logs available",
		},
		{
			name:     "all blank file",
			lines:    []string{" ", "", "\t"},
			maxLines: 50,
			service:  "all",
			want:     "No logs available",
		},
		{
			name:     "filter without match names the service",
			lines:    sample,
			maxLines: 50,
			service:  "functions",
			want:     "No logs found for service: functions",
		},
		{
			name:     "regex metacharacters are literal",
			lines:    []string{"auth started", "a.th literal"},
			maxLines: 50,
			service:  "a.th",
			want:     "a.th literal",
		},
		{
			name:     "star is literal",
			lines:    []string{"functions ready"},
			maxLines: 50,
			service:  "func*",
			want:     "No logs found for service: func*",
		},
		{
			name:     "non positive count falls back to default",
			lines:    []string{"one", "two"},
			maxLines: 0,
			service:  "all",
			want:     "one\ntwo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLogFile(t, tt.lines...)
			assert.Equal(t, tt.want, ReadRecentLogs(path, tt.maxLines, tt.service))
		})
	}
}

func TestReadRecentLogs_TailSize(t *testing.T) {
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, "line "+string(rune('a'+i)))
	}
	path := writeLogFile(t, lines...)

	for n := 1; n <= 12; n++ {
		got := strings.Split(ReadRecentLogs(path, n, "all"), "\n")
		want := n
		if want > len(lines) {
			want = len(lines)
		}
		require.Len(t, got, want, "n=%d", n)
		assert.Equal(t, lines[len(lines)-want:], got, "n=%d", n)
		assert.Equal(t, "line j", got[len(got)-1], "newest line must be last")
	}
}

func TestReadRecentLogs_TrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emulator-debug.log")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))

	assert.Equal(t, "one\ntwo", ReadRecentLogs(path, 50, "all"))
}

func TestReadRecentLogs_MissingFile(t *testing.T) {
	dir := t.TempDir()
	notADir := filepath.Join(dir, "emulator.txt")
	require.NoError(t, os.WriteFile(notADir, []byte("x\n"), 0o644))

	for _, path := range []string{
		filepath.Join(dir, "nope.log"),
		filepath.Join(notADir, "emulator-debug.log"),
	} {
		got := ReadRecentLogs(path, 50, "auth")
		assert.Equal(t, "Log file not found at "+path+". Make sure Firebase emulators are running with the start.sh script.", got)
	}
}

func TestReadRecentLogs_ReadError(t *testing.T) {
	// A directory exists but cannot be read as a file.
	dir := t.TempDir()

	got := ReadRecentLogs(dir, 50, "all")

	assert.True(t, strings.HasPrefix(got, "Error reading log file: "), got)
}

func TestReadRecentLogs_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced")
	}
	path := writeLogFile(t, "secret line")
	require.NoError(t, os.Chmod(path, 0o000))

	got := ReadRecentLogs(path, 50, "all")

	assert.True(t, strings.HasPrefix(got, "Error reading log file: "), got)
}

func TestResolvePath(t *testing.T) {
	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv(EnvLogPath, "/env/path.log")
		assert.Equal(t, "/tmp/explicit.log", ResolvePath("/tmp/explicit.log"))
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv(EnvLogPath, "/env/path.log")
		assert.Equal(t, "/env/path.log", ResolvePath(""))
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvLogPath, "")
		assert.Equal(t, DefaultLogPath, ResolvePath("  "))
	})
}

func TestQuery(t *testing.T) {
	var q Query
	assert.Equal(t, ServiceAll, q.ServiceOrAll())
	assert.Equal(t, DefaultLines, q.LinesOrDefault())

	defaults := Query{}
	defaults.Service.S("firestore")
	defaults.Lines.S(20)

	req := Query{}
	req.Lines.S(5)

	defaults.MergeInto(&req)
	assert.Equal(t, "firestore", defaults.ServiceOrAll())
	assert.Equal(t, 5, defaults.LinesOrDefault())

	req.Lines.S(-3)
	defaults.MergeInto(&req)
	assert.Equal(t, DefaultLines, defaults.LinesOrDefault())
}

func TestRead(t *testing.T) {
	path := writeLogFile(t, "auth one", "firestore two", "auth three")

	q := Query{}
	q.Service.S("auth")
	q.Lines.S(1)

	assert.Equal(t, "auth three", Read(path, q))
}
