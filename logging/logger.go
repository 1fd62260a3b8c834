package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grovetools/envbackup/config"
	"github.com/grovetools/envbackup/pkg/paths"
	"github.com/grovetools/envbackup/util/pathutil"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

const (
	envLogLevel  = "ENV_BACKUP_LOG_LEVEL"
	envLogCaller = "ENV_BACKUP_LOG_CALLER"
	envDebug     = "ENV_BACKUP_DEBUG"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	// configured is the logging section used for new loggers. nil means
	// it is loaded from the default config file on first use.
	configured    *Config
	levelOverride *logrus.Level
)

// FromConfig extracts the "logging" section of cfg.
func FromConfig(cfg *config.Config) (Config, error) {
	var logCfg Config
	if cfg == nil {
		return logCfg, nil
	}
	if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
		return Config{}, err
	}
	return logCfg, nil
}

// Configure sets the logging configuration for loggers created afterwards
// and drops any cached loggers.
func Configure(logCfg Config) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	c := logCfg
	configured = &c
	loggers = make(map[string]*logrus.Entry)
}

// SetLevel forces the level of every existing and future logger,
// taking precedence over config and environment.
func SetLevel(level logrus.Level) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	levelOverride = &level
	for _, entry := range loggers {
		entry.Logger.SetLevel(level)
	}
}

// Reset clears cached loggers and any configuration set by Configure or
// SetLevel.
func Reset() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	loggers = make(map[string]*logrus.Entry)
	configured = nil
	levelOverride = nil
}

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	if configured == nil {
		var logCfg Config
		if cfg, err := config.LoadDefault(); err == nil {
			if logCfg, err = FromConfig(cfg); err != nil {
				// Log a warning if parsing fails, but continue with defaults
				logrus.Warnf("Failed to parse 'logging' config: %v", err)
			}
		}
		configured = &logCfg
	}

	entry := build(component, *configured)
	loggers[component] = entry
	return entry
}

func build(component string, logCfg Config) *logrus.Entry {
	logger := logrus.New()

	// Configure Level
	levelStr := "info"
	if env := os.Getenv(envLogLevel); env != "" {
		levelStr = env
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	if levelOverride != nil {
		level = *levelOverride
	}
	logger.SetLevel(level)

	if os.Getenv(envLogCaller) == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	// Configure Formatter
	switch logCfg.Format.Preset {
	case PresetJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	case PresetSimple:
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: logCfg.Format})
	}

	var writers []io.Writer
	if file := openFileSink(logger, component, logCfg.File); file != nil {
		writers = append(writers, file)
	}
	if shouldLogToStderr(logCfg.Format.StructuredToStderr, logger.GetLevel()) {
		writers = append(writers, GetGlobalOutput())
	}

	switch len(writers) {
	case 0:
		// Interactive terminal in auto mode: structured logs are suppressed.
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger.WithField("component", component)
}

// logFilePath returns where the file sink writes, or "" when disabled.
func logFilePath(component string, sink FileSinkConfig, now time.Time) string {
	if !sink.Enabled {
		return ""
	}
	if sink.Path != "" {
		if expanded, err := pathutil.Expand(sink.Path); err == nil {
			return expanded
		}
		return sink.Path
	}
	dir := paths.LogDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, fmt.Sprintf("%s-%s.log", component, now.Format("2006-01-02")))
}

func openFileSink(logger *logrus.Logger, component string, sink FileSinkConfig) io.Writer {
	path := logFilePath(component, sink, time.Now())
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		logger.Warnf("Failed to create log directory %s: %v", dir, err)
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.Warnf("Failed to open log file %s: %v", path, err)
		return nil
	}
	return file
}

// shouldLogToStderr resolves the structured_to_stderr mode. In "auto",
// structured logs reach stderr when debugging or when stderr is not a
// terminal.
func shouldLogToStderr(mode string, level logrus.Level) bool {
	switch mode {
	case StderrAlways:
		return true
	case StderrNever:
		return false
	default:
		isDebug := os.Getenv(envDebug) == "1" || level >= logrus.DebugLevel
		isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		return isDebug || !isInteractive
	}
}
