package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML config-file schema. Every field mirrors a CLI
// flag; explicit flags take precedence over file values, which take
// precedence over built-in defaults.
type fileConfig struct {
	URL         string `yaml:"url"`
	BaseURL     string `yaml:"baseURL"`
	Output      string `yaml:"output"`
	Timeout     string `yaml:"timeout"` // Go duration string, e.g. "30s"
	Concurrency int    `yaml:"concurrency"`
	UserAgent   string `yaml:"userAgent"`
	Verbose     bool   `yaml:"verbose"`
}

// loadConfigFile reads and parses a YAML config file.
func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyConfigFile overlays file values onto cli, touching only flags still
// at their declared defaults so explicit flags always win.
func applyConfigFile(cli *CLI, cfg *fileConfig) error {
	defaults := CLI{
		URL:         "https://www.prospektmaschine.de/hypermarkte/",
		BaseURL:     "https://www.prospektmaschine.de",
		Output:      "leaflets.json",
		Timeout:     30 * time.Second,
		Concurrency: 3,
	}

	if cfg.URL != "" && cli.URL == defaults.URL {
		cli.URL = cfg.URL
	}
	if cfg.BaseURL != "" && cli.BaseURL == defaults.BaseURL {
		cli.BaseURL = cfg.BaseURL
	}
	if cfg.Output != "" && cli.Output == defaults.Output {
		cli.Output = cfg.Output
	}
	if cfg.Timeout != "" && cli.Timeout == defaults.Timeout {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return fmt.Errorf("config timeout: %w", err)
		}
		cli.Timeout = d
	}
	if cfg.Concurrency > 0 && cli.Concurrency == defaults.Concurrency {
		cli.Concurrency = cfg.Concurrency
	}
	if cfg.UserAgent != "" && cli.UserAgent == "" {
		cli.UserAgent = cfg.UserAgent
	}
	if cfg.Verbose && !cli.Verbose {
		cli.Verbose = true
	}
	return nil
}
