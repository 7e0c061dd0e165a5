package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigManager manages configuration loading with precedence: CLI flags > env vars > config file.
type ConfigManager struct {
	configPath string
}

// ConfigPath returns the configuration file path.
func (cm *ConfigManager) ConfigPath() string {
	return cm.configPath
}

// NewConfigManager creates a new ConfigManager.
func NewConfigManager(configPath string) *ConfigManager {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}

	// Load .env files (doesn't override existing env vars)
	loadEnvFiles()

	return &ConfigManager{
		configPath: configPath,
	}
}

// loadEnvFiles loads .env files from current directory and ~/.sfcompare/.env.
func loadEnvFiles() {
	// Skip .env loading during tests
	if os.Getenv("TESTING") != "" {
		return
	}

	// Try current directory
	if _, err := os.Stat(".env"); err == nil {
		godotenv.Load(".env")
	}

	// Try ~/.sfcompare/.env
	home, err := os.UserHomeDir()
	if err == nil {
		envPath := filepath.Join(home, ".sfcompare", ".env")
		if _, err := os.Stat(envPath); err == nil {
			godotenv.Load(envPath)
		}
	}
}

// Load loads configuration with precedence: env vars > config file > defaults.
func (cm *ConfigManager) Load() (*Config, error) {
	// Start with defaults
	cfg := &Config{
		DefaultEnv:   "",
		Environments: make(map[string]EnvironmentConfig),
	}

	// Load from file if exists
	if _, err := os.Stat(cm.configPath); err == nil {
		if err := cm.loadFromFile(cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	cm.loadFromEnv(cfg)

	return cfg, nil
}

// LoadWithOverrides loads configuration with CLI flag overrides and
// resolves the environment to use.
// Precedence: CLI flags > env vars > config file > defaults.
func (cm *ConfigManager) LoadWithOverrides(apiURL, apiToken, envName string) (*EnvironmentConfig, error) {
	cfg, err := cm.Load()
	if err != nil {
		return nil, err
	}

	// Apply CLI overrides if provided
	if apiURL != "" || apiToken != "" {
		overrideEnv := envName
		if overrideEnv == "" {
			overrideEnv = cfg.DefaultEnv
		}
		if overrideEnv == "" {
			overrideEnv = "cli-override"
		}

		// Get existing env config if it exists
		existingEnv, exists := cfg.Environments[overrideEnv]

		overrideConfig := EnvironmentConfig{
			APIURL:   apiURL,
			APIToken: apiToken,
		}

		// Fill in missing values from existing config
		if overrideConfig.APIURL == "" {
			if !exists {
				return nil, fmt.Errorf("missing --api-url flag (no environment '%s' in %s to fall back on)", overrideEnv, cm.configPath)
			}
			overrideConfig.APIURL = existingEnv.APIURL
		}
		if overrideConfig.APIToken == "" {
			if !exists {
				return nil, fmt.Errorf("missing --api-token flag (no environment '%s' in %s to fall back on)", overrideEnv, cm.configPath)
			}
			overrideConfig.APIToken = existingEnv.APIToken
		}
		if overrideConfig.Timeout == 0 && exists {
			overrideConfig.Timeout = existingEnv.Timeout
		}

		cfg.Environments[overrideEnv] = overrideConfig
		cfg.DefaultEnv = overrideEnv
	}

	return cfg.GetEnvConfig(envName)
}

// loadFromFile loads configuration from YAML file.
func (cm *ConfigManager) loadFromFile(cfg *Config) error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	fileConfig := &Config{}
	if err := yaml.Unmarshal(data, fileConfig); err != nil {
		return err
	}

	if fileConfig.DefaultEnv != "" {
		cfg.DefaultEnv = fileConfig.DefaultEnv
	}
	if fileConfig.Environments != nil {
		cfg.Environments = fileConfig.Environments
	}

	return nil
}

// loadFromEnv loads configuration from environment variables.
func (cm *ConfigManager) loadFromEnv(cfg *Config) {
	// Default env from environment
	if defaultEnv := os.Getenv("SFCOMPARE_DEFAULT_ENV"); defaultEnv != "" {
		cfg.DefaultEnv = defaultEnv
	}

	// Single environment from environment variables
	apiURL := os.Getenv("SFCOMPARE_API_URL")
	apiToken := os.Getenv("SFCOMPARE_API_TOKEN")

	if apiURL != "" && apiToken != "" {
		envName := cfg.DefaultEnv
		if envName == "" {
			envName = "default"
		}

		if cfg.Environments == nil {
			cfg.Environments = make(map[string]EnvironmentConfig)
		}

		cfg.Environments[envName] = EnvironmentConfig{
			APIURL:   apiURL,
			APIToken: apiToken,
		}

		if cfg.DefaultEnv == "" {
			cfg.DefaultEnv = envName
		}
	}
}

// CreateDefaultConfig creates a default configuration file.
func (cm *ConfigManager) CreateDefaultConfig() error {
	// Ensure directory exists
	dir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := &Config{
		DefaultEnv: "production",
		Environments: map[string]EnvironmentConfig{
			"production": {
				APIURL:   "https://compare.example.com/api",
				APIToken: "your-api-token",
				Timeout:  300,
			},
			"sandbox": {
				APIURL:   "https://compare-sandbox.example.com/api",
				APIToken: "your-sandbox-api-token",
				Timeout:  300,
			},
		},
	}

	data, err := yaml.Marshal(defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
