package github

import "time"

// User is an immutable snapshot of a GitHub account as returned by the API.
type User struct {
	ID        int64
	Login     string
	Name      string
	Email     string
	HTMLURL   string
	AvatarURL string
}

// Repository is an immutable snapshot of a remote repository. Operations that
// refresh the active repository replace the whole value rather than mutating
// fields in place.
type Repository struct {
	ID            int64
	Name          string
	FullName      string
	Owner         string
	Description   string
	Private       bool
	HTMLURL       string
	DefaultBranch string
	Topics        []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RepositoryConfig describes a repository to be created.
type RepositoryConfig struct {
	Name        string
	Description string
	Private     bool
	Topics      []string
}

// PagesSite describes the GitHub Pages configuration of a repository.
type PagesSite struct {
	URL          string
	Status       string
	SourceBranch string
	SourcePath   string
	BuildType    string
}

// ContentUpdate reports the outcome of a contents API write.
type ContentUpdate struct {
	Path          string
	SHA           string
	CommitSHA     string
	CommitMessage string
}

// TokenInfo describes the account and OAuth scopes behind a token.
type TokenInfo struct {
	User   *User
	Scopes []string
}
