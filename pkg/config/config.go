package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents the folio configuration
type Config struct {
	GitHub GitHubConfig `yaml:"github"`
	Site   SiteConfig   `yaml:"site,omitempty"`
}

// GitHubConfig represents GitHub-specific configuration
type GitHubConfig struct {
	User  string `yaml:"user,omitempty"`
	Token string `yaml:"token,omitempty"`
}

// SiteConfig holds defaults for the generated portfolio site
type SiteConfig struct {
	Title  string `yaml:"title,omitempty"`
	Author string `yaml:"author,omitempty"`
}

// LoadEnv loads an optional .env file into the process environment so that
// GITHUB_TOKEN can live next to the working directory during development.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		// .env file is optional
		logger.Debug("No .env file found, using environment variables")
	}
}

// LoadConfig loads configuration from the default location
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadConfigFromPath(configPath)
}

// LoadConfigFromPath loads configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil // Return empty config if file doesn't exist
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves configuration to the default location
func (c *Config) SaveConfig() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	return c.SaveConfigToPath(configPath)
}

// SaveConfigToPath saves configuration to a specific path
func (c *Config) SaveConfigToPath(path string) error {
	// Create config directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file may hold a token, keep it owner-readable only
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".folio", "config.yaml"), nil
}

// validLogin matches the login names GitHub hands out: alphanumeric and
// hyphens, no leading or trailing hyphen, at most 39 characters.
var validLogin = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,37}[a-zA-Z0-9])?$`)

// Validate validates the configuration. Every field is optional (the token
// can come from the environment and the username from ~/.gitconfig), but
// values that are present must be well formed.
func (c *Config) Validate() error {
	if c.GitHub.User != "" && !validLogin.MatchString(c.GitHub.User) {
		return fmt.Errorf("github user %q is not a valid GitHub login", c.GitHub.User)
	}

	if token := c.GitHub.Token; token != "" && strings.ContainsAny(token, " \t\n") {
		return fmt.Errorf("github token must not contain whitespace")
	}

	return nil
}
