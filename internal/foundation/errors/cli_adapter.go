package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Exit codes returned by the CLI.
const (
	ExitOK         = 0
	ExitGeneral    = 1
	ExitConfig     = 7
	ExitPlugin     = 9
	ExitInternal   = 10
	ExitFileSystem = 11
	ExitCanceled   = 130
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     os.Stderr,
		exit:    os.Exit,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}
	classified, ok := AsClassified(err)
	if !ok {
		return ExitGeneral
	}
	switch classified.Category() {
	case CategoryConfig:
		return ExitConfig
	case CategoryPlugin:
		return ExitPlugin
	case CategoryFileSystem:
		return ExitFileSystem
	case CategoryCanceled:
		return ExitCanceled
	case CategoryInternal:
		return ExitInternal
	default:
		return ExitGeneral
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	classified, ok := AsClassified(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.verbose {
		return classified.Error()
	}

	var b strings.Builder
	switch classified.Category() {
	case CategoryConfig:
		b.WriteString("Malformed configuration: ")
	case CategoryPlugin:
		b.WriteString("Plugin error: ")
	case CategoryInternal:
		return "Internal error occurred (use -v for details)"
	default:
		b.WriteString("Error: ")
	}
	b.WriteString(classified.Message())
	if source, ok := classified.Context().GetString(ContextSource); ok && source != "" {
		fmt.Fprintf(&b, " (%s)", source)
	}
	if fields, ok := classified.Context().GetStrings(ContextFields); ok {
		for _, f := range fields {
			b.WriteString("\n  - ")
			b.WriteString(f)
		}
	}
	return b.String()
}

// HandleError logs and prints err, then exits with the mapped code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}
	if a.shouldLog(err) {
		a.logError(err)
	}
	fmt.Fprintln(a.out, a.FormatError(err))
	a.exit(a.ExitCodeFor(err))
}

func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}
	classified, ok := AsClassified(err)
	if !ok {
		return true
	}
	return classified.Category() == CategoryInternal
}

func (a *CLIErrorAdapter) logError(err error) {
	classified, ok := AsClassified(err)
	if !ok {
		a.logger.Error("Unclassified error", "error", err)
		return
	}
	attrs := []slog.Attr{
		slog.String("category", string(classified.Category())),
		slog.String("severity", string(classified.Severity())),
	}
	if plugin, ok := classified.Context().GetString(ContextPlugin); ok {
		attrs = append(attrs, slog.String(ContextPlugin, plugin))
	}
	if field, ok := classified.Context().GetString(ContextField); ok {
		attrs = append(attrs, slog.String(ContextField, field))
	}
	a.logger.LogAttrs(context.Background(), slog.LevelError, classified.Message(), attrs...)
}
