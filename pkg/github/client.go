package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// listPageSize is the page size used when walking paginated list endpoints.
const listPageSize = 100

// Client implements the APIClient interface using the GitHub REST API
type Client struct {
	client *github.Client
}

var _ APIClient = (*Client)(nil)

// NewClient creates a new GitHub API client with the provided token
func NewClient(token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	return &Client{
		client: github.NewClient(tc),
	}
}

// NewClientWithBaseURL creates a client pointed at an alternate API endpoint.
// Used to target GitHub Enterprise installations and the test servers driven
// through GITHUB_API_URL.
func NewClientWithBaseURL(token, baseURL string) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, NewGitHubError(ErrorTypeConfig, fmt.Sprintf("invalid API base URL %q", baseURL), err)
	}

	client := NewClient(token)
	client.client.BaseURL = parsed
	return client, nil
}

// FetchUser retrieves the public profile of a user
func (c *Client) FetchUser(ctx context.Context, username string) (*User, error) {
	user, _, err := c.client.Users.Get(ctx, username)
	if err != nil {
		return nil, WrapGitHubError(err, fmt.Sprintf("user %s", username))
	}

	return convertGitHubUser(user), nil
}

// AuthenticatedUser retrieves the account behind the token together with the
// OAuth scopes reported by the API
func (c *Client) AuthenticatedUser(ctx context.Context) (*TokenInfo, error) {
	user, resp, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return nil, WrapGitHubError(err, "authenticated user")
	}

	info := &TokenInfo{User: convertGitHubUser(user)}
	if header := resp.Header.Get("X-OAuth-Scopes"); header != "" {
		for _, scope := range strings.Split(header, ",") {
			info.Scopes = append(info.Scopes, strings.TrimSpace(scope))
		}
	}

	return info, nil
}

// CreateRepository creates a new repository with the given configuration
func (c *Client) CreateRepository(ctx context.Context, config RepositoryConfig) (*Repository, error) {
	repo := &github.Repository{
		Name:        github.String(config.Name),
		Description: github.String(config.Description),
		Private:     github.Bool(config.Private),
	}

	// Set topics if provided
	if len(config.Topics) > 0 {
		repo.Topics = config.Topics
	}

	createdRepo, _, err := c.client.Repositories.Create(ctx, "", repo)
	if err != nil {
		return nil, WrapGitHubError(err, fmt.Sprintf("repository %s", config.Name))
	}

	return convertGitHubRepository(createdRepo), nil
}

// GetRepository retrieves a repository by owner and name
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*Repository, error) {
	repo, _, err := c.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, WrapGitHubError(err, fmt.Sprintf("repository %s/%s", owner, name))
	}

	return convertGitHubRepository(repo), nil
}

// ListRepositories lists the authenticated user's repositories sorted by last
// update, walking every page
func (c *Client) ListRepositories(ctx context.Context) ([]Repository, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Sort: "updated",
		ListOptions: github.ListOptions{
			PerPage: listPageSize,
		},
	}

	var repositories []Repository
	for {
		page, resp, err := c.client.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, WrapGitHubError(err, "repository list")
		}

		for _, repo := range page {
			repositories = append(repositories, *convertGitHubRepository(repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return repositories, nil
}

// UploadFile commits content to a path in the repository through the contents
// API. The library base64-encodes the content on the wire as the API
// requires. When the path already exists the current blob SHA is fetched
// first and the write becomes an update commit.
func (c *Client) UploadFile(ctx context.Context, owner, repo, path string, content []byte) (*ContentUpdate, error) {
	existingSHA, err := c.contentSHA(ctx, owner, repo, path)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("create a new %s", path)
	if existingSHA != "" {
		message = fmt.Sprintf("update %s", path)
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
	}

	var response *github.RepositoryContentResponse
	if existingSHA == "" {
		response, _, err = c.client.Repositories.CreateFile(ctx, owner, repo, path, opts)
	} else {
		opts.SHA = github.String(existingSHA)
		response, _, err = c.client.Repositories.UpdateFile(ctx, owner, repo, path, opts)
	}
	if err != nil {
		return nil, WrapGitHubError(err, fmt.Sprintf("content %s", path))
	}

	update := &ContentUpdate{
		Path:          path,
		CommitMessage: message,
	}
	if response != nil {
		if response.Content != nil {
			update.SHA = response.Content.GetSHA()
		}
		update.CommitSHA = response.Commit.GetSHA()
	}

	return update, nil
}

// contentSHA returns the blob SHA of path, or "" when the path does not exist
// in the repository yet
func (c *Client) contentSHA(ctx context.Context, owner, repo, path string) (string, error) {
	fileContent, _, _, err := c.client.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		wrapped := WrapGitHubError(err, fmt.Sprintf("content %s", path))
		if wrapped.Type == ErrorTypeNotFound {
			return "", nil
		}
		return "", wrapped
	}

	if fileContent == nil {
		return "", NewGitHubError(ErrorTypeValidation,
			fmt.Sprintf("%s exists as a directory, not a file", path), nil)
	}

	return fileContent.GetSHA(), nil
}

// EnablePages turns on GitHub Pages for the repository, building from the
// root of the main branch through the workflow build
func (c *Client) EnablePages(ctx context.Context, owner, repo string) (*PagesSite, error) {
	pages := &github.Pages{
		BuildType: github.String("workflow"),
		Source: &github.PagesSource{
			Branch: github.String("main"),
			Path:   github.String("/"),
		},
	}

	created, _, err := c.client.Repositories.EnablePages(ctx, owner, repo, pages)
	if err != nil {
		return nil, WrapGitHubError(err, fmt.Sprintf("pages %s/%s", owner, repo))
	}

	return convertGitHubPages(created, owner, repo), nil
}

// GetPages retrieves the current GitHub Pages configuration of the repository
func (c *Client) GetPages(ctx context.Context, owner, repo string) (*PagesSite, error) {
	pages, _, err := c.client.Repositories.GetPagesInfo(ctx, owner, repo)
	if err != nil {
		return nil, WrapGitHubError(err, fmt.Sprintf("pages %s/%s", owner, repo))
	}

	return convertGitHubPages(pages, owner, repo), nil
}

// convertGitHubUser converts a GitHub API user to our User type
func convertGitHubUser(user *github.User) *User {
	return &User{
		ID:        user.GetID(),
		Login:     user.GetLogin(),
		Name:      user.GetName(),
		Email:     user.GetEmail(),
		HTMLURL:   user.GetHTMLURL(),
		AvatarURL: user.GetAvatarURL(),
	}
}

// convertGitHubRepository converts a GitHub API repository to our Repository type
func convertGitHubRepository(repo *github.Repository) *Repository {
	converted := &Repository{
		ID:            repo.GetID(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		Private:       repo.GetPrivate(),
		HTMLURL:       repo.GetHTMLURL(),
		DefaultBranch: repo.GetDefaultBranch(),
		Topics:        repo.Topics,
		CreatedAt:     repo.GetCreatedAt().Time,
		UpdatedAt:     repo.GetUpdatedAt().Time,
	}

	if repo.Owner != nil {
		converted.Owner = repo.Owner.GetLogin()
	}

	return converted
}

// convertGitHubPages converts a GitHub API pages object to our PagesSite
// type. The API omits the public URL while the first build is still queued,
// so fall back to the canonical *.github.io address.
func convertGitHubPages(pages *github.Pages, owner, repo string) *PagesSite {
	site := &PagesSite{
		URL:       pages.GetHTMLURL(),
		Status:    pages.GetStatus(),
		BuildType: pages.GetBuildType(),
	}

	if pages.Source != nil {
		site.SourceBranch = pages.Source.GetBranch()
		site.SourcePath = pages.Source.GetPath()
	}

	if site.URL == "" {
		site.URL = fmt.Sprintf("https://%s.github.io/%s/", owner, repo)
	}

	return site
}
