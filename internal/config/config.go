// Package config provides centralized configuration management using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/hostwiz/internal/logger"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Default choices offered when no config file provides its own.
var (
	DefaultProfiles = []string{"desktop (nix-dots)", "server (nixos-server)"}
	DefaultHosts    = []string{"carbon", "helium"}
)

// Config holds all configuration values for hostwiz.
type Config struct {
	Profiles []string `mapstructure:"profiles" yaml:"profiles"`
	Hosts    []string `mapstructure:"hosts" yaml:"hosts"`
	LogLevel string   `mapstructure:"log_level" yaml:"log_level"`
	LogFile  string   `mapstructure:"log_file" yaml:"log_file"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Profiles: append([]string(nil), DefaultProfiles...),
		Hosts:    append([]string(nil), DefaultHosts...),
		LogLevel: "info",
		LogFile:  "",
	}
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("hostwiz")

	v.SetDefault("profiles", DefaultProfiles)
	v.SetDefault("hosts", DefaultHosts)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix("HOSTWIZ")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Lists come from env as comma separated values
	for key, env := range map[string]string{
		"profiles":  "HOSTWIZ_PROFILES",
		"hosts":     "HOSTWIZ_HOSTS",
		"log_level": "HOSTWIZ_LOG_LEVEL",
		"log_file":  "HOSTWIZ_LOG_FILE",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
		logger.Debug("Loaded global config from %s", globalPath)
	}

	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
		logger.Debug("Merged project config from %s", projectPath)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the wizard can be built from cfg.
func (c *Config) Validate() error {
	if len(c.Profiles) == 0 {
		return errors.New("config: profiles must not be empty")
	}
	for i, p := range c.Profiles {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("config: profile %d is blank", i)
		}
	}
	for i, h := range c.Hosts {
		if strings.TrimSpace(h) == "" {
			return fmt.Errorf("config: host %d is blank", i)
		}
	}
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/hostwiz/hostwiz.yml or $XDG_CONFIG_HOME/hostwiz/hostwiz.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hostwiz", "hostwiz.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hostwiz", "hostwiz.yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "hostwiz.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
