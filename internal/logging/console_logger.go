package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	verboseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

const (
	verbosePrefix = "[VERBOSE] "
	errorPrefix   = "[ERROR] "
)

// ConsoleLogger writes log messages to the writer it was built with, stderr in the CLI.
// Prefixes are colored only when the writer is a terminal and NO_COLOR is unset.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	out     io.Writer
	color   bool
	mu      sync.Mutex
}

// NewConsoleLoggerTo creates a ConsoleLogger writing to out.
// Verbose() calls are no-ops unless verbose is true.
func NewConsoleLoggerTo(out io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		out:     out,
		color:   ColorEnabled(out),
	}
}

// ColorEnabled reports whether styled output should be written to out: it must
// be a terminal and NO_COLOR must be unset.
func ColorEnabled(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.prefix(verbosePrefix, verboseStyle), format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.prefix(errorPrefix, errorStyle), format, args)
}

func (l *ConsoleLogger) prefix(p string, style lipgloss.Style) string {
	if !l.color {
		return p
	}
	return style.Render(p)
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.out, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(l.out, prefix+format+"\n")
	}
}
