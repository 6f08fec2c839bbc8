package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"folio/pkg/config"
	"folio/pkg/github"
)

// newProvisioner resolves the token and builds a Provisioner backed by the
// real API client. GITHUB_API_URL overrides the endpoint, which the
// integration tests use to point the CLI at a stub server.
func newProvisioner() (*github.Provisioner, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load folio config: %w", err)
	}

	token, err := github.ResolveToken(rootToken, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", github.GetAuthInstructions())
		return nil, nil, err
	}

	client, err := newAPIClient(token)
	if err != nil {
		return nil, nil, err
	}

	return github.NewProvisioner(client), cfg, nil
}

func newAPIClient(token string) (github.APIClient, error) {
	if baseURL := os.Getenv("GITHUB_API_URL"); baseURL != "" {
		return github.NewClientWithBaseURL(token, baseURL)
	}
	return github.NewClient(token), nil
}

// authenticateSession resolves the username and populates the session user.
func authenticateSession(ctx context.Context, provisioner *github.Provisioner, cfg *config.Config) (*github.User, error) {
	username := github.ResolveUsername(rootUser, cfg)

	user, err := provisioner.Authenticate(ctx, username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n\n", err)
		fmt.Fprintf(os.Stderr, "%s\n", github.GetAuthInstructions())
		return nil, err
	}

	fmt.Printf("✓ Authenticated as %s\n", user.Login)
	return user, nil
}

func printRepositoryDetails(repository *github.Repository) {
	if repository.Description != "" {
		fmt.Printf("   Description:    %s\n", repository.Description)
	}

	visibility := "public"
	if repository.Private {
		visibility = "private"
	}
	fmt.Printf("   Visibility:     %s\n", visibility)
	fmt.Printf("   Default branch: %s\n", repository.DefaultBranch)

	if len(repository.Topics) > 0 {
		fmt.Printf("   Topics:         %s\n", strings.Join(repository.Topics, ", "))
	}

	fmt.Printf("   URL:            %s\n", repository.HTMLURL)

	if !repository.UpdatedAt.IsZero() {
		fmt.Printf("   Updated:        %s\n", repository.UpdatedAt.Format("2006-01-02 15:04:05 MST"))
	}
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
