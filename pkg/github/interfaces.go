package github

import "context"

// APIClient defines the GitHub API surface the provisioning workflow depends
// on. Client implements it against the real API; tests substitute a mock.
type APIClient interface {
	// FetchUser retrieves the public profile of a user by login name.
	FetchUser(ctx context.Context, username string) (*User, error)

	// AuthenticatedUser retrieves the account behind the configured token
	// along with the token's OAuth scopes.
	AuthenticatedUser(ctx context.Context) (*TokenInfo, error)

	// CreateRepository creates a repository under the authenticated user.
	CreateRepository(ctx context.Context, config RepositoryConfig) (*Repository, error)

	// GetRepository retrieves a repository by owner and name.
	GetRepository(ctx context.Context, owner, name string) (*Repository, error)

	// ListRepositories lists the authenticated user's repositories, most
	// recently updated first.
	ListRepositories(ctx context.Context) ([]Repository, error)

	// UploadFile commits content to a path in the repository through the
	// contents API, creating or updating the file as needed.
	UploadFile(ctx context.Context, owner, repo, path string, content []byte) (*ContentUpdate, error)

	// EnablePages turns on GitHub Pages for the repository and returns the
	// resulting site configuration.
	EnablePages(ctx context.Context, owner, repo string) (*PagesSite, error)

	// GetPages retrieves the current GitHub Pages configuration of the
	// repository.
	GetPages(ctx context.Context, owner, repo string) (*PagesSite, error)
}
