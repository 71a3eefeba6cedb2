// Package config loads tool configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/qinglab/replay/internal/export"
	"github.com/qinglab/replay/internal/importer"
)

// Config carries the settings shared by the command-line tools.
type Config struct {
	// DBPath is the experiment store file.
	DBPath string `yaml:"db_path"`

	Import importer.Policy `yaml:"import"`

	Export struct {
		export.Options `yaml:",inline"`
		VideoFormat    string `yaml:"video_format"`
	} `yaml:"export"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{
		DBPath: "./experiments.db",
		Import: importer.DefaultPolicy(),
	}
	cfg.Export.IncludeHeaders = true
	cfg.Export.IncludeTimestamp = true
	cfg.Export.VideoFormat = "mp4"
	return cfg
}

// Load reads a YAML configuration file on top of the defaults, then
// applies environment overrides. A missing file is not an error; the
// defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				cfg.applyEnv()
				return cfg, nil
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if env := os.Getenv("REPLAY_DB_PATH"); env != "" {
		c.DBPath = env
	}
	if env := os.Getenv("REPLAY_VIDEO_FORMAT"); env != "" {
		c.Export.VideoFormat = env
	}
}
