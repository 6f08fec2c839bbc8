package github

import (
	"fmt"
	"os"
	"strings"

	"folio/pkg/config"
)

// RequiredScopes lists the OAuth scopes the provisioning workflow needs.
var RequiredScopes = []string{"repo"}

// ResolveToken resolves the GitHub credential once, before any client
// exists: an explicitly provided value wins, then the GITHUB_TOKEN
// environment variable, then the config file. A missing credential is a
// configuration error raised without any network call.
func ResolveToken(explicit string, cfg *config.Config) (string, error) {
	if token := strings.TrimSpace(explicit); token != "" {
		return token, nil
	}

	if token := strings.TrimSpace(os.Getenv("GITHUB_TOKEN")); token != "" {
		return token, nil
	}

	if cfg != nil && cfg.GitHub.Token != "" {
		return strings.TrimSpace(cfg.GitHub.Token), nil
	}

	return "", NewGitHubError(ErrorTypeConfig,
		"no GitHub token found: set GITHUB_TOKEN environment variable or configure token in ~/.folio/config.yaml", nil)
}

// ResolveUsername resolves the GitHub login to authenticate as: an
// explicitly provided value wins, then the config file, then the user key of
// the [github] section in ~/.gitconfig. Returns "" when no source has one,
// in which case authentication falls back to the token's own account.
func ResolveUsername(explicit string, cfg *config.Config) string {
	if username := strings.TrimSpace(explicit); username != "" {
		return username
	}

	if cfg != nil && cfg.GitHub.User != "" {
		return strings.TrimSpace(cfg.GitHub.User)
	}

	if username, err := config.GitConfigUsername(); err == nil && username != "" {
		return username
	}

	return ""
}

// ValidateScopes checks that the token carries the scopes the workflow needs
func ValidateScopes(scopes []string) error {
	scopeMap := make(map[string]bool)
	for _, scope := range scopes {
		scopeMap[scope] = true
	}

	var missingScopes []string
	for _, required := range RequiredScopes {
		if !scopeMap[required] {
			missingScopes = append(missingScopes, required)
		}
	}

	if len(missingScopes) > 0 {
		return NewGitHubError(ErrorTypePermission,
			fmt.Sprintf("GitHub token missing required scopes: %s", strings.Join(missingScopes, ", ")), nil)
	}

	return nil
}

// GetAuthInstructions returns instructions for setting up GitHub authentication
func GetAuthInstructions() string {
	return `GitHub authentication is required. Please set up authentication using one of the following methods:

1. Environment Variable (Recommended for CI/CD):
   export GITHUB_TOKEN="your_personal_access_token"

2. Configuration File:
   Run 'folio auth login', or add the following to ~/.folio/config.yaml:

   github:
     token: "your_personal_access_token"

To create a personal access token:
1. Go to GitHub Settings > Developer settings > Personal access tokens
2. Click "Generate new token (classic)"
3. Select the following scopes:
   - repo (Full control of private repositories)
4. Copy the generated token and use it with one of the methods above

Note: The token must have 'repo' scope to create repositories and enable Pages.`
}
