// Package config handles configuration loading and management
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables that override config keys,
// e.g. K6ALLURE_RESULTS_DIR.
const EnvPrefix = "K6ALLURE"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application configuration
type Config struct {
	ReportsDir  string      `mapstructure:"reports_dir" yaml:"reports_dir"`
	ResultsDir  string      `mapstructure:"results_dir" yaml:"results_dir"`
	Owner       string      `mapstructure:"owner" yaml:"owner"`
	Framework   string      `mapstructure:"framework" yaml:"framework"`
	Tags        []string    `mapstructure:"tags" yaml:"tags"`
	Profiles    []Profile   `mapstructure:"profiles" yaml:"profiles"`
	Endpoints   []Endpoint  `mapstructure:"endpoints" yaml:"endpoints"`
	Limits      Limits      `mapstructure:"limits" yaml:"limits"`
	Environment Environment `mapstructure:"environment" yaml:"environment"`
}

// Profile is one traffic profile and the summary file it produced.
type Profile struct {
	File    string   `mapstructure:"file" yaml:"file"`
	Name    string   `mapstructure:"name" yaml:"name"`
	Epic    string   `mapstructure:"epic" yaml:"epic"`
	Feature string   `mapstructure:"feature" yaml:"feature"`
	Tags    []string `mapstructure:"tags" yaml:"tags"`
}

// Endpoint registers a per-endpoint trend metric.
type Endpoint struct {
	Key      string `mapstructure:"key" yaml:"key"`
	Name     string `mapstructure:"name" yaml:"name"`
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
}

type Limits struct {
	HTTPP95Ms       float64 `mapstructure:"http_p95_ms" yaml:"http_p95_ms"`
	EndpointP95Ms   float64 `mapstructure:"endpoint_p95_ms" yaml:"endpoint_p95_ms"`
	ErrorRate       float64 `mapstructure:"error_rate" yaml:"error_rate"`
	CustomErrorRate float64 `mapstructure:"custom_error_rate" yaml:"custom_error_rate"`
}

// Environment describes the system under test in environment.properties.
type Environment struct {
	APIBaseURL string `mapstructure:"api_base_url" yaml:"api_base_url"`
	TestType   string `mapstructure:"test_type" yaml:"test_type"`
	TimeLayout string `mapstructure:"time_layout" yaml:"time_layout"`
}

// Load reads the .env file if present, then the optional config file at
// path, then K6ALLURE_* environment variables. Unset keys keep their
// defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.fillDefaults(Default())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every scalar key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("reports_dir", d.ReportsDir)
	v.SetDefault("results_dir", d.ResultsDir)
	v.SetDefault("owner", d.Owner)
	v.SetDefault("framework", d.Framework)
	v.SetDefault("tags", d.Tags)
	v.SetDefault("limits.http_p95_ms", d.Limits.HTTPP95Ms)
	v.SetDefault("limits.endpoint_p95_ms", d.Limits.EndpointP95Ms)
	v.SetDefault("limits.error_rate", d.Limits.ErrorRate)
	v.SetDefault("limits.custom_error_rate", d.Limits.CustomErrorRate)
	v.SetDefault("environment.api_base_url", d.Environment.APIBaseURL)
	v.SetDefault("environment.test_type", d.Environment.TestType)
	v.SetDefault("environment.time_layout", d.Environment.TimeLayout)
}

// fillDefaults replaces unset lists and zero limits. A config file that
// names its own profiles or endpoints replaces the default catalog whole.
func (c *Config) fillDefaults(d *Config) {
	if len(c.Profiles) == 0 {
		c.Profiles = d.Profiles
	}
	if len(c.Endpoints) == 0 {
		c.Endpoints = d.Endpoints
	}
	if c.Tags == nil {
		c.Tags = d.Tags
	}
	if c.Limits.HTTPP95Ms == 0 {
		c.Limits.HTTPP95Ms = d.Limits.HTTPP95Ms
	}
	if c.Limits.EndpointP95Ms == 0 {
		c.Limits.EndpointP95Ms = d.Limits.EndpointP95Ms
	}
	if c.Limits.ErrorRate == 0 {
		c.Limits.ErrorRate = d.Limits.ErrorRate
	}
	if c.Limits.CustomErrorRate == 0 {
		c.Limits.CustomErrorRate = d.Limits.CustomErrorRate
	}
	if c.Environment.TimeLayout == "" {
		c.Environment.TimeLayout = d.Environment.TimeLayout
	}
}

// Validate checks the configuration for values the run cannot work with.
func (c *Config) Validate() error {
	if c.ReportsDir == "" {
		return fmt.Errorf("%w: reports_dir must be set", ErrInvalidConfig)
	}

	if c.ResultsDir == "" {
		return fmt.Errorf("%w: results_dir must be set", ErrInvalidConfig)
	}

	if len(c.Profiles) == 0 {
		return fmt.Errorf("%w: at least one profile is required", ErrInvalidConfig)
	}

	for idx, p := range c.Profiles {
		if p.File == "" || p.Name == "" {
			return fmt.Errorf("%w: profiles[%d] needs both file and name", ErrInvalidConfig, idx)
		}
	}

	for idx, e := range c.Endpoints {
		if e.Key == "" {
			return fmt.Errorf("%w: endpoints[%d].key must be set", ErrInvalidConfig, idx)
		}
	}

	if c.Limits.HTTPP95Ms < 0 || c.Limits.EndpointP95Ms < 0 {
		return fmt.Errorf("%w: latency limits must be positive", ErrInvalidConfig)
	}

	if c.Limits.ErrorRate < 0 || c.Limits.ErrorRate > 1 || c.Limits.CustomErrorRate < 0 || c.Limits.CustomErrorRate > 1 {
		return fmt.Errorf("%w: error rate limits must be within 0..1", ErrInvalidConfig)
	}

	return nil
}

// YAML renders the configuration the way a config file would hold it.
func (c *Config) YAML() ([]byte, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("yaml.Marshal: %w", err)
	}

	return b, nil
}
