// Package config provides configuration for the eaconv tool.
package config

import (
	"os"

	"elastic-agent-access/protocol"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvVersion  = "ELASTIC_CODEC_VERSION"
	EnvLogLevel = "ELASTIC_CODEC_LOG_LEVEL"
)

// Config holds the codec settings.
type Config struct {
	// Protocol version to decode and encode with.
	Version string `yaml:"version"`

	// Root log level, e.g. "WARNING" or "DEBUG".
	LogLevel string `yaml:"log-level"`

	// Validate encoded bodies against the version's schemas.
	CheckSchema bool `yaml:"check-schema"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:     protocol.V1.String(),
		LogLevel:    "WARNING",
		CheckSchema: true,
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, errors.Annotatef(err, "reading %s", path)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.NewNotValid(err, "config file "+path)
			}
		}
	}

	if v := os.Getenv(EnvVersion); v != "" {
		cfg.Version = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return cfg, nil
}

// Validate rejects unknown protocol versions and log levels.
func (c *Config) Validate() error {
	if _, err := protocol.ParseVersion(c.Version); err != nil {
		return errors.Trace(err)
	}
	if _, ok := loggo.ParseLevel(c.LogLevel); !ok {
		return errors.NotValidf("log level %q", c.LogLevel)
	}
	return nil
}

// ProtocolVersion returns the configured version. It must only be called on
// a validated Config.
func (c *Config) ProtocolVersion() protocol.Version {
	return protocol.Version(c.Version)
}

// ConfigureLogging applies the log level to the root logger.
func (c *Config) ConfigureLogging() error {
	return loggo.ConfigureLoggers("<root>=" + c.LogLevel)
}
