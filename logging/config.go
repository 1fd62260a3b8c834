package logging

// Format presets.
const (
	PresetDefault = "default"
	PresetSimple  = "simple"
	PresetJSON    = "json"
)

// Values of FormatConfig.StructuredToStderr.
const (
	StderrAuto   = "auto"
	StderrAlways = "always"
	StderrNever  = "never"
)

// Config is the "logging" section of the env-backup config file.
type Config struct {
	// Level is the minimum level written. ENV_BACKUP_LOG_LEVEL wins over it.
	Level string `yaml:"level"`
	// ReportCaller adds file, line and function to each entry.
	// ENV_BACKUP_LOG_CALLER=true also turns it on.
	ReportCaller bool           `yaml:"report_caller"`
	File         FileSinkConfig `yaml:"file"`
	Format       FormatConfig   `yaml:"format"`
}

// FileSinkConfig enables the daily log file. With no Path the file lives in
// the state log directory as <component>-<date>.log.
type FileSinkConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// FormatConfig controls how entries are rendered and where they go.
type FormatConfig struct {
	// Preset is PresetDefault, PresetSimple or PresetJSON.
	Preset           string `yaml:"preset"`
	DisableTimestamp bool   `yaml:"disable_timestamp"`
	DisableComponent bool   `yaml:"disable_component"`
	// StructuredToStderr is StderrAuto (the default), StderrAlways or
	// StderrNever.
	StructuredToStderr string `yaml:"structured_to_stderr"`
}
