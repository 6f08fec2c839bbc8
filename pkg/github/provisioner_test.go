package github

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAPIClient is a mock implementation of APIClient for testing
type MockAPIClient struct {
	mock.Mock
}

func (m *MockAPIClient) FetchUser(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockAPIClient) AuthenticatedUser(ctx context.Context) (*TokenInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenInfo), args.Error(1)
}

func (m *MockAPIClient) CreateRepository(ctx context.Context, config RepositoryConfig) (*Repository, error) {
	args := m.Called(ctx, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Repository), args.Error(1)
}

func (m *MockAPIClient) GetRepository(ctx context.Context, owner, name string) (*Repository, error) {
	args := m.Called(ctx, owner, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Repository), args.Error(1)
}

func (m *MockAPIClient) ListRepositories(ctx context.Context) ([]Repository, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Repository), args.Error(1)
}

func (m *MockAPIClient) UploadFile(ctx context.Context, owner, repo, path string, content []byte) (*ContentUpdate, error) {
	args := m.Called(ctx, owner, repo, path, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ContentUpdate), args.Error(1)
}

func (m *MockAPIClient) EnablePages(ctx context.Context, owner, repo string) (*PagesSite, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PagesSite), args.Error(1)
}

func (m *MockAPIClient) GetPages(ctx context.Context, owner, repo string) (*PagesSite, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PagesSite), args.Error(1)
}

func TestDefaultRepositoryName(t *testing.T) {
	pattern := regexp.MustCompile(`^ICON Web Portfolio [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := DefaultRepositoryName()

		assert.Regexp(t, pattern, name)
		assert.False(t, seen[name], "generated names must not collide: %s", name)
		seen[name] = true

		// The suffix is a version 4 UUID
		id, err := uuid.Parse(name[len("ICON Web Portfolio "):])
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), id.Version())
	}
}

func TestProvisioner_Authenticate(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)

	expected := &User{ID: 42, Login: "octo-user", Name: "Octo User"}
	client.On("FetchUser", mock.Anything, "octo-user").Return(expected, nil)

	user, err := provisioner.Authenticate(context.Background(), "octo-user")

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "octo-user", user.Login)

	// The session now holds the authenticated user
	require.NotNil(t, provisioner.Session().User())
	assert.Equal(t, "octo-user", provisioner.Session().User().Login)

	client.AssertExpectations(t)
}

func TestProvisioner_AuthenticateAsTokenOwner(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)

	client.On("AuthenticatedUser", mock.Anything).Return(&TokenInfo{
		User:   &User{Login: "token-owner"},
		Scopes: []string{"repo"},
	}, nil)

	user, err := provisioner.Authenticate(context.Background(), "")

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "token-owner", user.Login)
	assert.Equal(t, "token-owner", provisioner.Session().User().Login)

	client.AssertExpectations(t)
}

func TestProvisioner_AuthenticateFailureKeepsSession(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)
	provisioner.Session().SetUser(&User{Login: "previous-user"})

	client.On("FetchUser", mock.Anything, "ghost").
		Return(nil, NewGitHubError(ErrorTypeNotFound, "Not Found", nil))

	_, err := provisioner.Authenticate(context.Background(), "ghost")

	assert.Error(t, err)
	assert.True(t, IsNotFound(err))

	// A failed call leaves the previous value in place
	require.NotNil(t, provisioner.Session().User())
	assert.Equal(t, "previous-user", provisioner.Session().User().Login)
}

func TestProvisioner_CreateRepository(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)

	created := &Repository{ID: 123, Name: "demo-site", Owner: "octo-user"}
	client.On("CreateRepository", mock.Anything, RepositoryConfig{Name: "demo-site"}).Return(created, nil)

	repo, err := provisioner.CreateRepository(context.Background(), RepositoryConfig{Name: "demo-site"})

	assert.NoError(t, err)
	require.NotNil(t, repo)
	assert.Equal(t, "demo-site", repo.Name)
	assert.Equal(t, created, provisioner.Session().Repository())

	client.AssertExpectations(t)
}

func TestProvisioner_CreateRepositoryGeneratesDefaultName(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)

	pattern := regexp.MustCompile(`^ICON Web Portfolio `)
	client.On("CreateRepository", mock.Anything, mock.MatchedBy(func(config RepositoryConfig) bool {
		return pattern.MatchString(config.Name)
	})).Return(&Repository{Name: "generated"}, nil)

	_, err := provisioner.CreateRepository(context.Background(), RepositoryConfig{})

	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestProvisioner_CreateRepositoryInvalidName(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)

	_, err := provisioner.CreateRepository(context.Background(), RepositoryConfig{Name: "bad/name"})

	assert.Error(t, err)
	assert.True(t, IsValidation(err))

	// Local validation failures never reach the API
	assert.Empty(t, client.Calls)
	assert.Nil(t, provisioner.Session().Repository())
}

func TestProvisioner_CreateRepositoryFailureKeepsSession(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)

	previous := &Repository{Name: "previous-site"}
	provisioner.Session().SetRepository(previous)

	client.On("CreateRepository", mock.Anything, mock.Anything).
		Return(nil, NewGitHubError(ErrorTypeValidation, "name already exists on this account", nil))

	_, err := provisioner.CreateRepository(context.Background(), RepositoryConfig{Name: "taken"})

	assert.Error(t, err)
	assert.Equal(t, previous, provisioner.Session().Repository())
}

func TestProvisioner_GetRepository(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)
	provisioner.Session().SetUser(&User{Login: "octo-user"})

	fetched := &Repository{ID: 7, Name: "demo-site", Owner: "octo-user"}
	client.On("GetRepository", mock.Anything, "octo-user", "demo-site").Return(fetched, nil)

	repo, err := provisioner.GetRepository(context.Background(), "demo-site")

	assert.NoError(t, err)
	assert.Equal(t, fetched, repo)
	assert.Equal(t, fetched, provisioner.Session().Repository())

	client.AssertExpectations(t)
}

func TestProvisioner_GetRepositoryRequiresUser(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)

	_, err := provisioner.GetRepository(context.Background(), "demo-site")

	assert.Error(t, err)
	assert.True(t, IsPrecondition(err))
	assert.Empty(t, client.Calls)
}

func TestProvisioner_GetRepositoryNotFoundKeepsSession(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)
	provisioner.Session().SetUser(&User{Login: "octo-user"})

	previous := &Repository{Name: "previous-site", Owner: "octo-user"}
	provisioner.Session().SetRepository(previous)

	client.On("GetRepository", mock.Anything, "octo-user", "missing-repo").
		Return(nil, NewGitHubError(ErrorTypeNotFound, "Not Found", nil))

	_, err := provisioner.GetRepository(context.Background(), "missing-repo")

	assert.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Not Found")

	// The failed lookup leaves the active repository untouched
	assert.Equal(t, previous, provisioner.Session().Repository())

	client.AssertExpectations(t)
}

func TestProvisioner_UploadFileRequiresSession(t *testing.T) {
	tests := []struct {
		name       string
		user       *User
		repository *Repository
		wantMsg    string
	}{
		{
			name:    "empty session",
			wantMsg: "no authenticated user or repository in session",
		},
		{
			name:       "repository without user",
			repository: &Repository{Name: "demo-site"},
			wantMsg:    "no authenticated user in session",
		},
		{
			name:    "user without repository",
			user:    &User{Login: "octo-user"},
			wantMsg: "no repository in session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &MockAPIClient{}
			provisioner := NewProvisioner(client)
			provisioner.Session().SetUser(tt.user)
			provisioner.Session().SetRepository(tt.repository)

			_, err := provisioner.UploadFile(context.Background(), "index.html", []byte("<html></html>"))

			assert.Error(t, err)
			assert.True(t, IsPrecondition(err), "expected a precondition error, got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			// Precondition failures must not produce any API traffic
			assert.Empty(t, client.Calls)
		})
	}
}

func TestProvisioner_UploadFile(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)
	provisioner.Session().SetUser(&User{Login: "octo-user"})
	provisioner.Session().SetRepository(&Repository{Name: "demo-site", Owner: "octo-user"})

	content := []byte("<html></html>")
	expected := &ContentUpdate{Path: "index.html", SHA: "blobsha", CommitSHA: "commitsha"}
	client.On("UploadFile", mock.Anything, "octo-user", "demo-site", "index.html", content).Return(expected, nil)

	update, err := provisioner.UploadFile(context.Background(), "index.html", content)

	assert.NoError(t, err)
	assert.Equal(t, expected, update)

	client.AssertExpectations(t)
}

func TestProvisioner_UploadFileInvalidPath(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)
	provisioner.Session().SetUser(&User{Login: "octo-user"})
	provisioner.Session().SetRepository(&Repository{Name: "demo-site"})

	_, err := provisioner.UploadFile(context.Background(), "../escape.html", []byte("x"))

	assert.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Empty(t, client.Calls)
}

func TestProvisioner_EnablePages(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)
	provisioner.Session().SetUser(&User{Login: "octo-user"})
	provisioner.Session().SetRepository(&Repository{Name: "demo-site", Owner: "octo-user"})

	site := &PagesSite{URL: "https://octo-user.github.io/demo-site/", Status: "building"}
	client.On("EnablePages", mock.Anything, "octo-user", "demo-site").Return(site, nil)

	result, err := provisioner.EnablePages(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "https://octo-user.github.io/demo-site/", result.URL)

	client.AssertExpectations(t)
}

func TestProvisioner_EnablePagesRequiresSession(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)

	_, err := provisioner.EnablePages(context.Background())

	assert.Error(t, err)
	assert.True(t, IsPrecondition(err))
	assert.Empty(t, client.Calls)
}

func TestProvisioner_GetPages(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)
	provisioner.Session().SetUser(&User{Login: "octo-user"})
	provisioner.Session().SetRepository(&Repository{Name: "demo-site", Owner: "octo-user"})

	site := &PagesSite{URL: "https://octo-user.github.io/demo-site/", Status: "built"}
	client.On("GetPages", mock.Anything, "octo-user", "demo-site").Return(site, nil)

	result, err := provisioner.GetPages(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "built", result.Status)

	client.AssertExpectations(t)
}

func TestProvisioner_ListRepositories(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)

	repos := []Repository{{Name: "recent-site"}, {Name: "older-site"}}
	client.On("ListRepositories", mock.Anything).Return(repos, nil)

	result, err := provisioner.ListRepositories(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 2)

	client.AssertExpectations(t)
}

func TestProvisioner_TargetPrefersRepositoryOwner(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)
	provisioner.Session().SetUser(&User{Login: "octo-user"})
	// A repository owned by someone else, e.g. fetched through the API
	provisioner.Session().SetRepository(&Repository{Name: "team-site", Owner: "icon-team"})

	client.On("EnablePages", mock.Anything, "icon-team", "team-site").
		Return(&PagesSite{URL: "https://icon-team.github.io/team-site/"}, nil)

	_, err := provisioner.EnablePages(context.Background())

	assert.NoError(t, err)
	client.AssertExpectations(t)
}

func TestProvisioner_FullWorkflow(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)
	ctx := context.Background()

	user := &User{ID: 1, Login: "octo-user"}
	repo := &Repository{ID: 2, Name: "demo-site", Owner: "octo-user"}
	update := &ContentUpdate{Path: "index.html", CommitSHA: "commitsha", CommitMessage: "create a new index.html"}
	site := &PagesSite{URL: "https://octo-user.github.io/demo-site/", Status: "building"}

	client.On("FetchUser", mock.Anything, "octo-user").Return(user, nil)
	client.On("CreateRepository", mock.Anything, RepositoryConfig{Name: "demo-site"}).Return(repo, nil)
	client.On("UploadFile", mock.Anything, "octo-user", "demo-site", "index.html", []byte("<html></html>")).Return(update, nil)
	client.On("EnablePages", mock.Anything, "octo-user", "demo-site").Return(site, nil)

	// authenticate -> create -> upload -> publish
	_, err := provisioner.Authenticate(ctx, "octo-user")
	require.NoError(t, err)

	_, err = provisioner.CreateRepository(ctx, RepositoryConfig{Name: "demo-site"})
	require.NoError(t, err)

	result, err := provisioner.UploadFile(ctx, "index.html", []byte("<html></html>"))
	require.NoError(t, err)
	assert.Equal(t, "create a new index.html", result.CommitMessage)

	published, err := provisioner.EnablePages(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://octo-user.github.io/demo-site/", published.URL)

	assert.True(t, provisioner.Session().Ready())
	client.AssertExpectations(t)
}

func TestProvisioner_WorkflowStopsOnFirstError(t *testing.T) {
	client := &MockAPIClient{}
	provisioner := NewProvisioner(client)
	ctx := context.Background()

	client.On("FetchUser", mock.Anything, "octo-user").Return(&User{Login: "octo-user"}, nil)
	client.On("CreateRepository", mock.Anything, mock.Anything).
		Return(nil, NewGitHubError(ErrorTypePermission, "insufficient scopes", nil))

	_, err := provisioner.Authenticate(ctx, "octo-user")
	require.NoError(t, err)

	_, err = provisioner.CreateRepository(ctx, RepositoryConfig{Name: "demo-site"})
	require.Error(t, err)

	// With no repository in the session the next step fails before any I/O
	_, err = provisioner.UploadFile(ctx, "index.html", []byte("x"))
	assert.True(t, IsPrecondition(err))

	var ghErr *GitHubError
	require.True(t, errors.As(err, &ghErr))
	assert.Equal(t, ErrorTypePrecondition, ghErr.Type)
}
