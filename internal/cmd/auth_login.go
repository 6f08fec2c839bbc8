package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"folio/pkg/config"
	"folio/pkg/github"
)

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a GitHub personal access token",
	Long: `Prompt for a GitHub personal access token and store it in the folio
configuration file.

The token is read with terminal echo disabled, verified against the GitHub
API, and written to ~/.folio/config.yaml. Tokens need the 'repo' scope to
create repositories and push content.

Examples:
  folio auth login
  echo "$GITHUB_TOKEN" | folio auth login`,
	RunE: runAuthLogin,
}

func runAuthLogin(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	token, err := promptForToken()
	if err != nil {
		return err
	}

	// Verify the token before storing anything
	client, err := newAPIClient(token)
	if err != nil {
		return err
	}

	info, err := client.AuthenticatedUser(ctx)
	if err != nil {
		fmt.Printf("❌ Token verification failed: %v\n", err)
		return fmt.Errorf("token verification failed")
	}

	fmt.Printf("✅ Token verified for %s\n", info.User.Login)

	if err := github.ValidateScopes(info.Scopes); err != nil {
		fmt.Printf("⚠️  %v\n", err)
		fmt.Println("💡 Repository creation and uploads may fail until the token is reissued with the 'repo' scope.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load folio config: %w", err)
	}

	cfg.GitHub.Token = token
	if cfg.GitHub.User == "" {
		cfg.GitHub.User = info.User.Login
	}

	if err := cfg.SaveConfig(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	fmt.Printf("💾 Token stored in %s\n", configPath)
	return nil
}

// promptForToken reads the token with echo disabled on a terminal, or from
// stdin directly when input is piped.
func promptForToken() (string, error) {
	var raw string

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Print("Enter GitHub personal access token: ")
		bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		raw = string(bytes)
	} else {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		raw = line
	}

	token := strings.TrimSpace(raw)
	if token == "" {
		return "", fmt.Errorf("no token provided")
	}

	return token, nil
}
