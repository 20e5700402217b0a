package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes leveled diagnostics. Program output such as planned commands
// never goes through it.
type Logger struct {
	mu     *sync.Mutex
	writer io.Writer
	closer io.Closer

	Name       string
	Level      Level
	TimeFormat string
	Color      bool
}

// Options configure New
type Options struct {
	Level Level
	// File additionally writes to a rotated log file when set
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New creates a logger writing to stderr and, if configured, to a log file
func New(name string, opts Options) *Logger {
	writers := []io.Writer{os.Stderr}
	var closer io.Closer

	if opts.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    withDefault(opts.MaxSizeMB, 16),
			MaxBackups: withDefault(opts.MaxBackups, 3),
			MaxAge:     withDefault(opts.MaxAgeDays, 28),
		}
		writers = append(writers, fileWriter)
		closer = fileWriter
	}

	l := NewWriter(name, opts.Level, io.MultiWriter(writers...))
	l.closer = closer
	l.Color = opts.File == "" && isTerminal(os.Stderr)
	return l
}

// NewWriter creates a logger writing plain lines to w
func NewWriter(name string, level Level, w io.Writer) *Logger {
	return &Logger{
		mu:         &sync.Mutex{},
		writer:     w,
		Name:       name,
		Level:      level,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// Discard returns a logger dropping everything
func Discard() *Logger {
	return NewWriter("", Error+1, io.Discard)
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if l == nil || level < l.Level {
		return
	}

	prefix := fmt.Sprintf("[%s] %-5s", time.Now().Format(l.TimeFormat), level)
	if l.Name != "" {
		prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Color {
		fmt.Fprintf(l.writer, "%s%s %s\033[0m\n", color(level), prefix, fmt.Sprintf(msg, args...))
	} else {
		fmt.Fprintf(l.writer, "%s %s\n", prefix, fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Debug(msg string, args ...any) { l.log(Debug, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log(Info, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(Warn, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log(Error, msg, args...) }

// Named returns a logger sharing the output with a nested name
func (l *Logger) Named(name string) *Logger {
	if l == nil {
		return nil
	}
	child := *l
	if l.Name != "" {
		child.Name = l.Name + "/" + name
	} else {
		child.Name = name
	}
	return &child
}

// Close flushes and closes the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func withDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
