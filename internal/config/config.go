// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. VOTEGRAPH_DATASET_DIR.
const EnvPrefix = "VOTEGRAPH"

// Config holds all application configuration.
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Neo4j   Neo4jConfig   `mapstructure:"neo4j"`
	Plot    PlotConfig    `mapstructure:"plot"`
	Stats   StatsConfig   `mapstructure:"stats"`
}

type DatasetConfig struct {
	Dir string `mapstructure:"dir"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Mode  string `mapstructure:"mode"`
}

type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Neo4jConfig struct {
	URI      string `mapstructure:"uri"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type PlotConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type StatsConfig struct {
	Top int `mapstructure:"top"`
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Neo4j.URI != "" && c.Neo4j.Username == "" {
		warnings = append(warnings, fmt.Sprintf("neo4j uri '%s' is configured but username is empty", c.Neo4j.URI))
	}
	if c.Plot.Width < 200 || c.Plot.Height < 200 {
		warnings = append(warnings, fmt.Sprintf("plot size %dx%d is below 200x200, labels will overlap", c.Plot.Width, c.Plot.Height))
	}
	if c.Stats.Top < 0 {
		warnings = append(warnings, fmt.Sprintf("stats top %d is negative, every legislator is listed", c.Stats.Top))
	}
	switch strings.ToLower(c.Log.Mode) {
	case "", "dev", "development", "prod", "production":
	default:
		warnings = append(warnings, fmt.Sprintf("log mode '%s' is unknown, using development", c.Log.Mode))
	}

	return warnings
}

// setDefaults registers the value of every key so env overrides apply even
// when the key is absent from the file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset.dir", "datasets")
	v.SetDefault("output.dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.mode", "development")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("neo4j.uri", "")
	v.SetDefault("neo4j.username", "")
	v.SetDefault("neo4j.password", "")
	v.SetDefault("plot.width", 1200)
	v.SetDefault("plot.height", 800)
	v.SetDefault("stats.top", 10)
}

// Load reads configuration from file and environment. An empty path skips
// the file and uses defaults plus environment overrides. Load does not
// validate; callers log Validate's warnings once a logger exists.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}
