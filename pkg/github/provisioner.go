package github

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
)

// defaultRepositoryPrefix is the prefix of generated repository names.
const defaultRepositoryPrefix = "ICON Web Portfolio"

// DefaultRepositoryName generates a fresh repository name. Each call embeds a
// new random UUID, so successive names never collide.
func DefaultRepositoryName() string {
	return fmt.Sprintf("%s %s", defaultRepositoryPrefix, uuid.New().String())
}

// Provisioner sequences the provisioning workflow against the GitHub API:
// authenticate, create or fetch a repository, upload content, enable Pages.
// It tracks the authenticated user and the active repository in a Session.
// Operations that need session state fail fast with a precondition error
// before any network I/O. A Provisioner is not safe for concurrent use;
// independent instances share no state.
type Provisioner struct {
	client  APIClient
	session *Session
}

// NewProvisioner creates a provisioner with an empty session. The API handle
// is a constructor dependency so tests can substitute a mock.
func NewProvisioner(client APIClient) *Provisioner {
	return &Provisioner{
		client:  client,
		session: NewSession(),
	}
}

// Session returns the provisioner's session.
func (p *Provisioner) Session() *Session {
	return p.session
}

// Authenticate resolves the user and stores it in the session. With a
// username it fetches that user's public profile; with "" it resolves the
// account behind the token. The session keeps its previous user on failure.
func (p *Provisioner) Authenticate(ctx context.Context, username string) (*User, error) {
	var (
		user *User
		err  error
	)

	if username == "" {
		logger.Debug("Authenticating as token owner")
		var info *TokenInfo
		info, err = p.client.AuthenticatedUser(ctx)
		if info != nil {
			user = info.User
		}
	} else {
		logger.Debugf("Authenticating user %s", username)
		user, err = p.client.FetchUser(ctx, username)
	}
	if err != nil {
		return nil, err
	}

	p.session.SetUser(user)
	return user, nil
}

// CreateRepository creates a repository under the authenticated user and
// stores it in the session. An empty name is replaced by a generated default.
func (p *Provisioner) CreateRepository(ctx context.Context, config RepositoryConfig) (*Repository, error) {
	if config.Name == "" {
		config.Name = DefaultRepositoryName()
	}

	if err := ValidateRepositoryName(config.Name); err != nil {
		return nil, err
	}

	logger.Debugf("Creating repository %q", config.Name)
	repo, err := p.client.CreateRepository(ctx, config)
	if err != nil {
		return nil, err
	}

	p.session.SetRepository(repo)
	return repo, nil
}

// GetRepository fetches one of the authenticated user's repositories by name
// and stores it in the session. The session keeps its previous repository
// when the lookup fails.
func (p *Provisioner) GetRepository(ctx context.Context, name string) (*Repository, error) {
	user := p.session.User()
	if user == nil {
		return nil, NewGitHubError(ErrorTypePrecondition,
			"cannot look up repository: no authenticated user in session", nil)
	}

	if err := ValidateRepositoryName(name); err != nil {
		return nil, err
	}

	logger.Debugf("Fetching repository %s/%s", user.Login, name)
	repo, err := p.client.GetRepository(ctx, user.Login, name)
	if err != nil {
		return nil, err
	}

	p.session.SetRepository(repo)
	return repo, nil
}

// ListRepositories lists the authenticated user's repositories, most
// recently updated first.
func (p *Provisioner) ListRepositories(ctx context.Context) ([]Repository, error) {
	return p.client.ListRepositories(ctx)
}

// UploadFile commits content to a path in the active repository. Requires
// both a user and a repository in the session.
func (p *Provisioner) UploadFile(ctx context.Context, path string, content []byte) (*ContentUpdate, error) {
	if err := p.requireSession("upload content"); err != nil {
		return nil, err
	}

	if err := ValidateContentPath(path); err != nil {
		return nil, err
	}

	owner, repo := p.target()
	logger.Debugf("Uploading %d bytes to %s/%s/%s", len(content), owner, repo, path)
	return p.client.UploadFile(ctx, owner, repo, path, content)
}

// EnablePages turns on GitHub Pages for the active repository and returns
// the site configuration with its public URL. Requires both a user and a
// repository in the session.
func (p *Provisioner) EnablePages(ctx context.Context) (*PagesSite, error) {
	if err := p.requireSession("enable Pages"); err != nil {
		return nil, err
	}

	owner, repo := p.target()
	logger.Debugf("Enabling Pages for %s/%s", owner, repo)
	return p.client.EnablePages(ctx, owner, repo)
}

// GetPages reports the current Pages configuration of the active repository.
// Requires both a user and a repository in the session.
func (p *Provisioner) GetPages(ctx context.Context) (*PagesSite, error) {
	if err := p.requireSession("inspect Pages"); err != nil {
		return nil, err
	}

	owner, repo := p.target()
	return p.client.GetPages(ctx, owner, repo)
}

// requireSession fails fast when the session is missing the user or the
// repository, before any network I/O happens.
func (p *Provisioner) requireSession(action string) error {
	switch {
	case p.session.User() == nil && p.session.Repository() == nil:
		return NewGitHubError(ErrorTypePrecondition,
			fmt.Sprintf("cannot %s: no authenticated user or repository in session", action), nil)
	case p.session.User() == nil:
		return NewGitHubError(ErrorTypePrecondition,
			fmt.Sprintf("cannot %s: no authenticated user in session", action), nil)
	case p.session.Repository() == nil:
		return NewGitHubError(ErrorTypePrecondition,
			fmt.Sprintf("cannot %s: no repository in session", action), nil)
	}
	return nil
}

// target returns the owner and repository name remote operations act on. The
// repository's own owner wins when the API reported one.
func (p *Provisioner) target() (owner, repo string) {
	repository := p.session.Repository()
	owner = p.session.User().Login
	if repository.Owner != "" {
		owner = repository.Owner
	}
	return owner, repository.Name
}
