package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// GitConfigPath returns the path of the user-level git configuration file
func GitConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".gitconfig"), nil
}

// GitConfigUsername reads the GitHub login from the user key of the [github]
// section in ~/.gitconfig, the convention tools like hub and gh established.
// Returns "" without an error when the file or the key is absent.
func GitConfigUsername() (string, error) {
	path, err := GitConfigPath()
	if err != nil {
		return "", err
	}

	return GitConfigUsernameFromPath(path)
}

// GitConfigUsernameFromPath reads the GitHub login from a specific git
// configuration file
func GitConfigUsernameFromPath(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse git config %s: %w", path, err)
	}

	return strings.TrimSpace(cfg.Section("github").Key("user").String()), nil
}
