// Package config loads the optional nudge.yml configuration file.
//
// Every field has a default so hooks work with no config present at all. A
// missing file is not an error; callers that must never fail (the hook
// commands) use LoadOrDefault and fall back to defaults on any problem.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Defaults applied for any field left unset.
const (
	DefaultTrackerCommand = "bd"
	DefaultTimeoutSeconds = 5
	DefaultActiveLimit    = 5
	DefaultReadyLimit     = 3
	DefaultWorklogDir     = "worklogs"
	DefaultHarness        = "npm run harness"
)

// Tracker configures the external issue-tracker CLI queries.
type Tracker struct {
	Command     string `yaml:"command,omitempty"`
	Timeout     int    `yaml:"timeout,omitempty"`
	ActiveLimit int    `yaml:"active_limit,omitempty"`
	ReadyLimit  int    `yaml:"ready_limit,omitempty"`
}

// Config holds all nudge settings.
type Config struct {
	Tracker    Tracker `yaml:"tracker,omitempty"`
	WorklogDir string  `yaml:"worklog_dir,omitempty"`
	Harness    string  `yaml:"harness,omitempty"`
}

// Default returns a config with every field set to its default value.
func Default() *Config {
	return &Config{
		Tracker: Tracker{
			Command:     DefaultTrackerCommand,
			Timeout:     DefaultTimeoutSeconds,
			ActiveLimit: DefaultActiveLimit,
			ReadyLimit:  DefaultReadyLimit,
		},
		WorklogDir: DefaultWorklogDir,
		Harness:    DefaultHarness,
	}
}

// Load reads config from path, filling unset fields with defaults. A missing
// file returns defaults without error; a present but invalid file returns an
// error.
func Load(fs afero.Fs, path string) (*Config, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Default(), nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parse(data)
}

// LoadOrDefault is Load with the error collapsed to defaults, for callers
// that must keep going no matter what.
func LoadOrDefault(fs afero.Fs, path string) *Config {
	cfg, err := Load(fs, path)
	if err != nil {
		return Default()
	}
	return cfg
}

func parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// applyDefaults restores defaults for fields the file set to zero values.
func (c *Config) applyDefaults() {
	if c.Tracker.Command == "" {
		c.Tracker.Command = DefaultTrackerCommand
	}
	if c.Tracker.Timeout == 0 {
		c.Tracker.Timeout = DefaultTimeoutSeconds
	}
	if c.Tracker.ActiveLimit == 0 {
		c.Tracker.ActiveLimit = DefaultActiveLimit
	}
	if c.Tracker.ReadyLimit == 0 {
		c.Tracker.ReadyLimit = DefaultReadyLimit
	}
	if c.WorklogDir == "" {
		c.WorklogDir = DefaultWorklogDir
	}
	if c.Harness == "" {
		c.Harness = DefaultHarness
	}
}

// Validate rejects values the tracker client cannot work with.
func (c *Config) Validate() error {
	if c.Tracker.Timeout < 0 {
		return errors.New("tracker timeout cannot be negative")
	}
	if c.Tracker.ActiveLimit < 0 || c.Tracker.ReadyLimit < 0 {
		return errors.New("tracker limits cannot be negative")
	}
	return nil
}

// QueryTimeout returns the per-query tracker timeout as a duration.
func (c *Config) QueryTimeout() time.Duration {
	return time.Duration(c.Tracker.Timeout) * time.Second
}
