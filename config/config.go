// Package config loads logger settings from TOML or YAML files.
//
// A file looks like:
//
//	timestamp_format = "%H:%M:%S"
//	level = "info"
//	shard = "7"
//	shard_length = 4
//	no_color = false
//
//	[[levels]]
//	name = "alarm"
//	foreground = "white"
//	background = "red"
//
// Leaving out levels keeps the built-in set.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mordilloSan/go-loggr/logger"
)

// Format is the syntax of a configuration file.
type Format int

const (
	// FormatTOML is the default format
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// File mirrors logger.Config in a serialisable form.
type File struct {
	TimestampFormat  string       `toml:"timestamp_format" yaml:"timestamp_format"`
	Shard            string       `toml:"shard" yaml:"shard"`
	ShardLength      int          `toml:"shard_length" yaml:"shard_length"`
	Level            string       `toml:"level" yaml:"level"`
	NoColor          bool         `toml:"no_color" yaml:"no_color"`
	IncludeCallerTag bool         `toml:"caller" yaml:"caller"`
	Levels           []LevelEntry `toml:"levels" yaml:"levels"`
}

// LevelEntry is one level of a custom set. Colors are names accepted by
// logger.ParseColor.
type LevelEntry struct {
	Name       string `toml:"name" yaml:"name"`
	Foreground string `toml:"foreground" yaml:"foreground"`
	Background string `toml:"background" yaml:"background"`
}

// DetectFormat picks the format from the file extension; anything that is
// not .yaml or .yml is read as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads path and converts it to a logger.Config.
func Load(path string) (logger.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return logger.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, DetectFormat(path))
	if err != nil {
		return logger.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the given format and converts it to a logger.Config.
func Parse(data []byte, format Format) (logger.Config, error) {
	var f File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return logger.Config{}, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return logger.Config{}, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return logger.Config{}, fmt.Errorf("unsupported format: %s", format)
	}
	return f.Config()
}

// Config converts f. Level names are not checked here; logger.New does that.
func (f File) Config() (logger.Config, error) {
	cfg := logger.Config{
		TimestampFormat:  f.TimestampFormat,
		Shard:            f.Shard,
		ShardLength:      f.ShardLength,
		Level:            f.Level,
		NoColor:          f.NoColor,
		IncludeCallerTag: f.IncludeCallerTag,
	}
	if len(f.Levels) == 0 {
		return cfg, nil
	}
	cfg.Levels = make([]logger.Level, 0, len(f.Levels))
	for i, entry := range f.Levels {
		if entry.Name == "" {
			return logger.Config{}, fmt.Errorf("levels[%d]: missing name", i)
		}
		fg, err := logger.ParseColor(entry.Foreground)
		if err != nil {
			return logger.Config{}, fmt.Errorf("levels[%d] %q: foreground: %w", i, entry.Name, err)
		}
		bg, err := logger.ParseColor(entry.Background)
		if err != nil {
			return logger.Config{}, fmt.Errorf("levels[%d] %q: background: %w", i, entry.Name, err)
		}
		cfg.Levels = append(cfg.Levels, logger.NewLevel(entry.Name, logger.NewStyle(fg, bg)))
	}
	return cfg, nil
}
