package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"folio/pkg/config"
	"folio/pkg/github"
)

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show GitHub authentication status",
	Long: `Validate the resolved GitHub token and report the account it belongs to.

The token is resolved from the --token flag, the GITHUB_TOKEN environment
variable, then the configuration file, in that order.`,
	RunE: runAuthStatus,
}

func runAuthStatus(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load folio config: %w", err)
	}

	token, err := github.ResolveToken(rootToken, cfg)
	if err != nil {
		fmt.Println("❌ No GitHub token configured")
		fmt.Printf("\n%s\n", github.GetAuthInstructions())
		return err
	}

	client, err := newAPIClient(token)
	if err != nil {
		return err
	}

	info, err := client.AuthenticatedUser(ctx)
	if err != nil {
		fmt.Printf("❌ Token validation failed: %v\n", err)
		return fmt.Errorf("authentication check failed")
	}

	fmt.Printf("✅ Authenticated as %s\n", info.User.Login)
	if info.User.Name != "" {
		fmt.Printf("👤 Name:   %s\n", info.User.Name)
	}
	if len(info.Scopes) > 0 {
		fmt.Printf("🔑 Scopes: %s\n", strings.Join(info.Scopes, ", "))
	}

	if err := github.ValidateScopes(info.Scopes); err != nil {
		fmt.Printf("⚠️  %v\n", err)
	}

	return nil
}
