package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/envbackup/errors"
	"github.com/grovetools/envbackup/pkg/paths"
	"github.com/grovetools/envbackup/util/pathutil"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Format identifies the syntax of a configuration file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// configNames are searched in order inside the config directory.
var configNames = []string{
	"config.yml",
	"config.yaml",
	"config.toml",
}

// FormatForPath infers the file format from its extension. Anything that is
// not .toml is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads, parses, defaults and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytes(data, FormatForPath(path))
	if err != nil {
		return nil, err
	}

	return finalize(cfg)
}

// LoadDefault loads the config file from the env-backup config directory.
// A missing file is not an error: defaults are returned instead.
func LoadDefault() (*Config, error) {
	return LoadDefaultWithLogger(logrus.New())
}

// LoadDefaultWithLogger is LoadDefault with debug logging of the resolution.
func LoadDefaultWithLogger(logger *logrus.Logger) (*Config, error) {
	path, err := FindConfigFile(paths.ConfigDir())
	if err != nil {
		logger.WithField("dir", paths.ConfigDir()).Debug("No configuration file found, using defaults")
		return finalize(&Config{})
	}

	logger.WithField("path", path).Debug("Loading configuration")
	return Load(path)
}

// FindConfigFile returns the first known config file name present in dir.
func FindConfigFile(dir string) (string, error) {
	if dir == "" {
		return "", errors.ConfigNotFound("<no config directory>")
	}
	for _, name := range configNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", errors.ConfigNotFound(filepath.Join(dir, configNames[0]))
}

// LoadFromBytes parses configuration data without applying defaults.
func LoadFromBytes(data []byte, format Format) (*Config, error) {
	// Expand environment variables
	expanded := expandEnvVars(string(data))

	raw := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal([]byte(expanded), &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML config")
		}
	default:
		if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML config")
		}
	}

	return decode(raw)
}

// decode maps a generic document onto Config, collecting unknown top-level
// keys as extensions.
func decode(raw map[string]interface{}) (*Config, error) {
	var cfg Config
	known := make(map[string]interface{}, len(raw))
	for key, value := range raw {
		if knownKeys[key] {
			known[key] = value
			continue
		}
		if cfg.Extensions == nil {
			cfg.Extensions = make(map[string]interface{})
		}
		cfg.Extensions[key] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &cfg,
		TagName: "yaml",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := decoder.Decode(known); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode config")
	}

	return &cfg, nil
}

// finalize applies defaults and validates.
func finalize(cfg *Config) (*Config, error) {
	if err := cfg.SetDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetDefaults fills in the store root and expands it to an absolute path.
// ENV_BACKUP_DIR wins over the configured value.
func (c *Config) SetDefaults() error {
	if dir := os.Getenv(paths.StoreDirEnv); dir != "" {
		c.StoreRoot = dir
	} else if c.StoreRoot == "" {
		c.StoreRoot = paths.DefaultStoreRoot()
	}

	if c.StoreRoot == "" {
		return errors.ConfigInvalid("could not determine store root (no home directory)")
	}

	expanded, err := pathutil.Expand(c.StoreRoot)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to expand store_root").
			WithDetail("store_root", c.StoreRoot)
	}
	c.StoreRoot = expanded
	return nil
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}
