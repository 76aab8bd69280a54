// File: config.go
// Title: Logging Configuration Loader
// Description: Implements loading of logging options from TOML and YAML
//              files with format auto-detection, environment variable
//              overrides, and application onto log.Settings.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mlogerror "github.com/msto63/mLog/core/error"
	"github.com/msto63/mLog/core/log"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// envPrefix is the environment variable prefix for overrides
const envPrefix = "MLOG_"

// Options holds the loadable logging options
type Options struct {
	Console            bool   `toml:"console" yaml:"console"`
	Timestamps         bool   `toml:"timestamps" yaml:"timestamps"`
	AbsoluteTimestamps bool   `toml:"absolute_timestamps" yaml:"absolute_timestamps"`
	StackTraces        bool   `toml:"stack_traces" yaml:"stack_traces"`
	Subsystem          string `toml:"subsystem" yaml:"subsystem"`
}

// file is the on-disk document shape with a [logging] section
type file struct {
	Logging Options `toml:"logging" yaml:"logging"`
}

// DefaultOptions returns the fixed defaults: console backend, all
// formatting flags off.
func DefaultOptions() Options {
	return Options{Console: true}
}

// Load reads options from the given file, auto-detecting the format from
// its extension, and applies environment overrides.
func Load(path string) (Options, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat reads options from the given file in the given format
// and applies environment overrides.
func LoadWithFormat(path string, format Format) (Options, error) {
	opts := DefaultOptions()

	if format == FormatAuto {
		detected, err := detectFormat(path)
		if err != nil {
			return opts, err
		}
		format = detected
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, mlogerror.New(mlogerror.CodeInvalidConfig, "config.Load", err)
	}

	doc := file{Logging: opts}
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return opts, mlogerror.New(mlogerror.CodeInvalidConfig, "config.Load", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return opts, mlogerror.New(mlogerror.CodeInvalidConfig, "config.Load", err)
		}
	default:
		return opts, mlogerror.New(mlogerror.CodeUnsupportedFormat, "config.Load", nil)
	}

	opts = doc.Logging
	if err := applyEnv(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// FromEnv returns the defaults with environment overrides applied,
// for processes that run without a configuration file.
func FromEnv() (Options, error) {
	opts := DefaultOptions()
	if err := applyEnv(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// Apply configures the settings from the options. The subsystem is set
// before the backend selection so switching to the journal observes it.
func (o Options) Apply(settings *log.Settings) {
	if o.Subsystem != "" {
		settings.SetSubsystem(o.Subsystem)
	}
	settings.SetAbsoluteTimestamps(o.AbsoluteTimestamps)
	settings.Configure(o.Console, o.Timestamps, o.StackTraces)
}

// detectFormat maps the file extension onto a format
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatAuto, mlogerror.New(mlogerror.CodeUnsupportedFormat, "config.detectFormat", nil)
	}
}

// applyEnv overrides options from MLOG_* environment variables
func applyEnv(opts *Options) error {
	bools := []struct {
		key    string
		target *bool
	}{
		{"CONSOLE", &opts.Console},
		{"TIMESTAMPS", &opts.Timestamps},
		{"ABSOLUTE_TIMESTAMPS", &opts.AbsoluteTimestamps},
		{"STACK_TRACES", &opts.StackTraces},
	}

	for _, b := range bools {
		raw, ok := os.LookupEnv(envPrefix + b.key)
		if !ok {
			continue
		}
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return mlogerror.New(mlogerror.CodeInvalidValue, "config.applyEnv", err)
		}
		*b.target = value
	}

	if subsystem, ok := os.LookupEnv(envPrefix + "SUBSYSTEM"); ok {
		opts.Subsystem = subsystem
	}

	return nil
}
