package config

import (
	"fmt"
	"sort"

	"github.com/grovetools/envbackup/errors"
	"github.com/grovetools/envbackup/snapshot"
	"github.com/grovetools/envbackup/util/pathutil"
	"github.com/mitchellh/mapstructure"
)

// Config is the env-backup configuration file.
type Config struct {
	// StoreRoot is the directory holding one subdirectory per snapshot.
	// Overridden by ENV_BACKUP_DIR. Defaults to ~/.env-backup.
	StoreRoot string `yaml:"store_root,omitempty" toml:"store_root,omitempty"`

	// Exclude lists extra variable name patterns (e.g. "AWS_*") that are never
	// captured. The built-in denylist always applies.
	Exclude []string `yaml:"exclude,omitempty" toml:"exclude,omitempty"`

	// History overrides the history file location per shell kind.
	// Paths are relative to the home directory unless absolute.
	History map[string]string `yaml:"history,omitempty" toml:"history,omitempty"`

	// ConfigFiles replaces the default list of captured shell config files.
	ConfigFiles []string `yaml:"config_files,omitempty" toml:"config_files,omitempty"`

	// Extensions captures all other top-level keys (e.g. "logging").
	Extensions map[string]interface{} `yaml:",inline" toml:"-"`
}

// knownKeys are the top-level keys decoded into Config fields.
var knownKeys = map[string]bool{
	"store_root":   true,
	"exclude":      true,
	"history":      true,
	"config_files": true,
}

// Validate checks the configuration for values the store cannot work with.
func (c *Config) Validate() error {
	if c.StoreRoot == "" {
		return errors.ConfigInvalid("store_root must not be empty")
	}

	var unknown []string
	for kind := range c.History {
		if !snapshot.IsKnownShell(snapshot.ShellKind(kind)) {
			unknown = append(unknown, kind)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return errors.ConfigInvalid(fmt.Sprintf("unknown shell kind(s) in history: %v", unknown)).
			WithDetail("shells", unknown)
	}

	for i, f := range c.ConfigFiles {
		if f == "" {
			return errors.ConfigInvalid(fmt.Sprintf("config_files[%d] is empty", i))
		}
	}

	return nil
}

// SnapshotOptions builds store options from the configuration, resolving
// relative history and config paths against home.
func (c *Config) SnapshotOptions(home string) snapshot.Options {
	opts := snapshot.DefaultOptions(c.StoreRoot, home)
	opts.ExcludePatterns = append([]string(nil), c.Exclude...)

	for kind, p := range c.History {
		opts.HistoryFiles[snapshot.ShellKind(kind)] = pathutil.ResolveHome(home, p)
	}

	if len(c.ConfigFiles) > 0 {
		opts.ConfigFiles = append([]string(nil), c.ConfigFiles...)
	}

	return opts
}

// UnmarshalExtension decodes a specific extension's configuration into the
// provided target struct. The target must be a pointer.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct, using `yaml` tags.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
