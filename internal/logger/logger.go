package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

// Log levels
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = [...]string{"DEBUG", "INFO ", "WARN ", "ERROR", "FATAL"}

// ANSI colors per level: cyan, green, yellow, red, magenta
var levelColors = [...]string{"\033[36m", "\033[32m", "\033[33m", "\033[31m", "\033[35m"}

const colorReset = "\033[0m"

// ParseLevel maps a level name to a LogLevel. Unknown names map to INFO.
func ParseLevel(levelStr string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	default:
		return INFO
	}
}

func (l LogLevel) String() string {
	if l < DEBUG || l > FATAL {
		return "UNKNOWN"
	}
	return strings.TrimSpace(levelNames[l])
}

// Logger is a levelled logger that prefixes every line with the time, the
// level and the caller's file:line
type Logger struct {
	mu        sync.Mutex
	level     LogLevel
	logger    *log.Logger
	file      *os.File
	useColors bool
	exit      func(int)
}

// NewLogger creates a logger on stdout with the specified log level.
// Colors are enabled when stdout is a terminal.
func NewLogger(levelStr string) *Logger {
	return NewConsoleLogger(levelStr, os.Stdout)
}

// NewConsoleLogger creates a logger on console. Colors are enabled when
// console is a terminal.
func NewConsoleLogger(levelStr string, console *os.File) *Logger {
	return &Logger{
		level:     ParseLevel(levelStr),
		logger:    log.New(console, "", 0), // We'll format the prefix manually
		useColors: isTerminal(console),
		exit:      os.Exit,
	}
}

// NewFileLogger creates a new logger that writes to a file
func NewFileLogger(levelStr, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	// Set output to file and disable colors
	l := NewLogger(levelStr)
	l.logger.SetOutput(file)
	l.file = file
	l.useColors = false
	return l, nil
}

// NewMultiLogger creates a logger that writes to both console and file
func NewMultiLogger(levelStr, filePath string, console io.Writer) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	// Set output to both console and file
	l := NewLogger(levelStr)
	l.logger.SetOutput(io.MultiWriter(console, file))
	l.file = file
	// Color codes would end up in the file
	l.useColors = false
	return l, nil
}

func openLogFile(filePath string) (*os.File, error) {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open log file
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// output writes msg at level. depth is the number of frames between the
// public method and output.
func (l *Logger) output(level LogLevel, depth int, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	// Get caller info
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		file = "unknown"
		line = 0
	}

	prefix := fmt.Sprintf("%s [%s] %s:%d:", time.Now().Format("2006/01/02 15:04:05"), levelNames[level], filepath.Base(file), line)
	if l.useColors {
		prefix = levelColors[level] + prefix + colorReset
	}

	// Log the message with the formatted prefix
	l.logger.Println(prefix, msg)

	if level == FATAL {
		if l.file != nil {
			l.file.Close()
			l.file = nil
		}
		l.exit(1)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(v ...interface{}) { l.output(DEBUG, 1, fmt.Sprint(v...)) }

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.output(DEBUG, 1, fmt.Sprintf(format, v...))
}

// Info logs an info message
func (l *Logger) Info(v ...interface{}) { l.output(INFO, 1, fmt.Sprint(v...)) }

// Infof logs a formatted info message
func (l *Logger) Infof(format string, v ...interface{}) {
	l.output(INFO, 1, fmt.Sprintf(format, v...))
}

// Warn logs a warning message
func (l *Logger) Warn(v ...interface{}) { l.output(WARN, 1, fmt.Sprint(v...)) }

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.output(WARN, 1, fmt.Sprintf(format, v...))
}

// Error logs an error message
func (l *Logger) Error(v ...interface{}) { l.output(ERROR, 1, fmt.Sprint(v...)) }

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.output(ERROR, 1, fmt.Sprintf(format, v...))
}

// Fatal logs a fatal message and exits the program
func (l *Logger) Fatal(v ...interface{}) { l.output(FATAL, 1, fmt.Sprint(v...)) }

// Fatalf logs a formatted fatal message and exits the program
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.output(FATAL, 1, fmt.Sprintf(format, v...))
}

// SetLevel sets the log level
func (l *Logger) SetLevel(levelStr string) {
	l.mu.Lock()
	l.level = ParseLevel(levelStr)
	l.mu.Unlock()
}

// SetOutput sets the output writer for the logger
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.logger.SetOutput(w)
	l.mu.Unlock()
}

// EnableColors enables or disables colored output
func (l *Logger) EnableColors(enable bool) {
	l.mu.Lock()
	l.useColors = enable
	l.mu.Unlock()
}

// Close closes the logger's file if it exists
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}
