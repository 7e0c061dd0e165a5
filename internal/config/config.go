package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvironmentConfig represents connection settings for one comparison
// service environment.
type EnvironmentConfig struct {
	APIURL   string `yaml:"api_url"`
	APIToken string `yaml:"api_token"`
	Timeout  int    `yaml:"timeout"`
}

// Config represents the main configuration structure.
type Config struct {
	DefaultEnv   string                       `yaml:"default_env"`
	Environments map[string]EnvironmentConfig `yaml:"environments"`
}

// DefaultConfigPath returns the default path to the configuration file.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sfcompare/config.yaml"
	}
	return filepath.Join(home, ".sfcompare", "config.yaml")
}

// GetEnvConfig returns the configuration for a specific environment.
func (c *Config) GetEnvConfig(envName string) (*EnvironmentConfig, error) {
	// Use default env if no name specified
	if envName == "" {
		envName = c.DefaultEnv
	}

	// If still no env name, try to use the first available env
	if envName == "" {
		if len(c.Environments) == 0 {
			return nil, fmt.Errorf(`missing connection settings

To connect, use one of the following methods:

1. CLI flags:
   sfcompare compare --api-url YOUR_API_URL --api-token YOUR_API_TOKEN

2. Environment variables:
   export SFCOMPARE_API_URL="your-api-url"
   export SFCOMPARE_API_TOKEN="your-api-token"

3. Configuration file:
   Run: sfcompare config --init
   Then edit: %s`, DefaultConfigPath())
		}

		// Use first environment
		for name := range c.Environments {
			envName = name
			break
		}
	}

	env, exists := c.Environments[envName]
	if !exists {
		envNames := make([]string, 0, len(c.Environments))
		for name := range c.Environments {
			envNames = append(envNames, name)
		}
		return nil, fmt.Errorf("environment '%s' not found in configuration. Available environments: %v", envName, envNames)
	}

	if env.APIURL == "" || env.APIToken == "" {
		return nil, fmt.Errorf(`missing settings for environment '%s'

To fix this, use one of the following methods:

1. CLI flags:
   sfcompare compare --api-url YOUR_API_URL --api-token YOUR_API_TOKEN

2. Environment variables:
   export SFCOMPARE_API_URL="your-api-url"
   export SFCOMPARE_API_TOKEN="your-api-token"

3. Configuration file:
   Run: sfcompare config --init
   Then edit: %s`, envName, DefaultConfigPath())
	}

	return &env, nil
}

// Validate ensures the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Environments) == 0 {
		return fmt.Errorf("no environments configured")
	}

	for name, env := range c.Environments {
		if env.APIURL == "" {
			return fmt.Errorf("environment '%s' missing api_url", name)
		}
		if env.APIToken == "" {
			return fmt.Errorf("environment '%s' missing api_token", name)
		}
	}

	return nil
}
