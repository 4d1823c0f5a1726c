// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

// Package config loads the gh-rest configuration file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultBaseURL  = "https://api.github.com"
	DefaultTokenEnv = "GITHUB_TOKEN"
	DefaultTimeout  = 30 * time.Second
)

// BaseURLEnv overrides the API base URL from any file or default.
const BaseURLEnv = "GITHUB_API_BASE_URL"

// Config is the gh-rest configuration.
type Config struct {
	// BaseURL is the GitHub REST API root, e.g. https://ghe.example.com/api/v3.
	BaseURL string `yaml:"base_url"`

	// TokenEnv names the environment variable holding the API token.
	TokenEnv string `yaml:"token_env"`

	UserAgent string        `yaml:"user_agent"`
	LogLevel  string        `yaml:"log_level"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyEnvOverrides(cfg)
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file. Environment variables in the
// file are expanded, then GITHUB_API_BASE_URL is applied on top.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Token returns the API token from the environment, or "" when unset.
func (c *Config) Token() string {
	return os.Getenv(c.TokenEnv)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be an http or https URL, got %q", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url has no host: %q", c.BaseURL)
	}
	if c.TokenEnv == "" {
		return errors.New("token_env must not be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got %s", c.Timeout)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(BaseURLEnv); v != "" {
		cfg.BaseURL = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TokenEnv == "" {
		cfg.TokenEnv = DefaultTokenEnv
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
}
