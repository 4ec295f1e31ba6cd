package log

import (
	"io"
	"log"
	"os"
	"strings"
)

// Log level constants
const (
	LevelTrace = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// currentLevel holds the configured log level
var currentLevel = LevelInfo

type MyLoggerOptions struct {
	// if we output to stderr, stdout belongs to the MCP transport
	Stderr bool
	// Path of the file , if present log to it
	Path string
	// What level to log
	Level string
}

func ConfigureMyLogger(options *MyLoggerOptions) {
	var writer io.Writer

	if options.Path != "" {
		logfile, err := os.OpenFile(options.Path, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
		if err != nil {
			panic(err)
		}
		if options.Stderr {
			writer = io.MultiWriter(logfile, os.Stderr)
		} else {
			writer = logfile
		}
	} else if options.Stderr {
		writer = os.Stderr
	} else {
		writer = io.Discard
	}

	log.SetOutput(writer)

	currentLevel = parseLevel(options.Level)
}

func parseLevel(level string) int {
	switch strings.ToUpper(level) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// ErrorLogger returns a std logger sharing the configured output, for
// libraries that want a *log.Logger.
func ErrorLogger() *log.Logger {
	return log.New(log.Writer(), "[ERROR] ", log.LstdFlags)
}

// Trace logs a message at TRACE level
func Trace(format string, v ...interface{}) {
	if currentLevel <= LevelTrace {
		log.Printf("[TRACE] "+format, v...)
	}
}

// Debug logs a message at DEBUG level
func Debug(format string, v ...interface{}) {
	if currentLevel <= LevelDebug {
		log.Printf("[DEBUG] "+format, v...)
	}
}

// Info logs a message at INFO level
func Info(format string, v ...interface{}) {
	if currentLevel <= LevelInfo {
		log.Printf("[INFO] "+format, v...)
	}
}

// Warn logs a message at WARN level
func Warn(format string, v ...interface{}) {
	if currentLevel <= LevelWarn {
		log.Printf("[WARN] "+format, v...)
	}
}

// Error logs a message at ERROR level
func Error(format string, v ...interface{}) {
	log.Printf("[ERROR] "+format, v...)
}
