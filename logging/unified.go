package logging

import (
	"context"
	"fmt"
	"regexp"

	"github.com/grovetools/envbackup/tui/theme"
	"github.com/sirupsen/logrus"
)

// ansiRegex matches ANSI escape sequences for stripping
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// UnifiedLogger writes each message twice: styled for the user and
// structured for the log sinks.
type UnifiedLogger struct {
	component  string
	structured *logrus.Entry
}

// NewUnifiedLogger creates a new unified logger for a specific component.
func NewUnifiedLogger(component string) *UnifiedLogger {
	return &UnifiedLogger{
		component:  component,
		structured: NewLogger(component),
	}
}

// NewUnifiedLoggerWithEntry wraps an existing structured logger.
func NewUnifiedLoggerWithEntry(component string, entry *logrus.Entry) *UnifiedLogger {
	return &UnifiedLogger{component: component, structured: entry}
}

func (u *UnifiedLogger) entry(msg string, level logrus.Level, icon, status string) *LogEntry {
	e := &LogEntry{
		logger: u,
		msg:    msg,
		level:  level,
		fields: logrus.Fields{},
		icon:   icon,
	}
	if status != "" {
		e.fields["status"] = status
	}
	return e
}

// Debug returns a LogEntry at DEBUG level.
func (u *UnifiedLogger) Debug(msg string) *LogEntry {
	return u.entry(msg, logrus.DebugLevel, "", "")
}

// Info returns a LogEntry at INFO level.
func (u *UnifiedLogger) Info(msg string) *LogEntry {
	return u.entry(msg, logrus.InfoLevel, "", "")
}

// Warn returns a LogEntry at WARN level with IconWarning.
func (u *UnifiedLogger) Warn(msg string) *LogEntry {
	return u.entry(msg, logrus.WarnLevel, theme.IconWarning, "")
}

// Error returns a LogEntry at ERROR level with IconError.
func (u *UnifiedLogger) Error(msg string) *LogEntry {
	return u.entry(msg, logrus.ErrorLevel, theme.IconError, "")
}

// Success returns an INFO LogEntry with IconSuccess and status=success.
func (u *UnifiedLogger) Success(msg string) *LogEntry {
	return u.entry(msg, logrus.InfoLevel, theme.IconSuccess, "success")
}

// Status returns an INFO LogEntry with IconInfo and status=info.
func (u *UnifiedLogger) Status(msg string) *LogEntry {
	return u.entry(msg, logrus.InfoLevel, theme.IconInfo, "info")
}

// LogEntry accumulates options before writing to both outputs.
// Call Log(ctx) to write it.
type LogEntry struct {
	logger     *UnifiedLogger
	msg        string
	level      logrus.Level
	fields     logrus.Fields
	icon       string
	prettyMsg  string
	prettyOnly bool
	structOnly bool
	noIcon     bool
}

// Field adds a structured field (chainable).
// Fields appear in structured logs but not in pretty output unless included in .Pretty().
func (e *LogEntry) Field(key string, value interface{}) *LogEntry {
	e.fields[key] = value
	return e
}

// Err attaches an error as the "error" field (chainable).
func (e *LogEntry) Err(err error) *LogEntry {
	if err != nil {
		e.fields["error"] = err.Error()
	}
	return e
}

// Icon overrides the default icon (chainable).
func (e *LogEntry) Icon(icon string) *LogEntry {
	e.icon = icon
	return e
}

// NoIcon suppresses the icon in pretty output (chainable).
func (e *LogEntry) NoIcon() *LogEntry {
	e.noIcon = true
	return e
}

// Pretty sets a custom styled string for user-facing output (chainable).
// The plain msg is still used for structured logs.
func (e *LogEntry) Pretty(styled string) *LogEntry {
	e.prettyMsg = styled
	return e
}

// PrettyOnly skips structured output (chainable).
func (e *LogEntry) PrettyOnly() *LogEntry {
	e.prettyOnly = true
	return e
}

// StructuredOnly skips pretty output (chainable).
func (e *LogEntry) StructuredOnly() *LogEntry {
	e.structOnly = true
	return e
}

// Log writes the entry. Pretty output goes to the writer attached to ctx,
// or the global output.
func (e *LogEntry) Log(ctx context.Context) {
	prettyOutput := e.computePrettyOutput()

	// Pretty debug lines only show when debug logging is on.
	showPretty := e.level != logrus.DebugLevel || e.logger.structured.Logger.IsLevelEnabled(logrus.DebugLevel)
	if !e.structOnly && showPretty {
		fmt.Fprintln(GetWriter(ctx), prettyOutput)
	}

	if !e.prettyOnly {
		e.fields["pretty_text"] = ansiRegex.ReplaceAllString(prettyOutput, "")
		e.logger.structured.WithFields(e.fields).Log(e.level, e.msg)
	}
}

func (e *LogEntry) computePrettyOutput() string {
	if e.prettyMsg != "" {
		return e.prettyMsg
	}

	output := e.msg
	if !e.noIcon {
		icon := e.icon
		if icon == "" {
			icon = theme.IconBullet
		}
		output = icon + " " + e.msg
	}

	styles := DefaultPrettyStyles()
	switch e.level {
	case logrus.WarnLevel:
		return styles.Warning.Render(output)
	case logrus.ErrorLevel:
		return styles.Error.Render(output)
	case logrus.DebugLevel:
		return styles.Muted.Render(output)
	}

	switch e.icon {
	case theme.IconSuccess:
		return styles.Success.Render(output)
	case theme.IconInfo:
		return styles.Info.Render(output)
	}
	return output
}

// Component returns the component name for this logger.
func (u *UnifiedLogger) Component() string {
	return u.component
}

// WithStructured returns the underlying logrus entry.
func (u *UnifiedLogger) WithStructured() *logrus.Entry {
	return u.structured
}
