package github

import (
	"regexp"
	"strings"
)

// validRepositoryName matches the characters the API accepts in a repository
// name. Spaces are allowed: the API slugifies them into hyphens, and
// generated default names contain them.
var validRepositoryName = regexp.MustCompile(`^[a-zA-Z0-9 ._-]+$`)

// ValidateRepositoryName checks a repository name locally, before any
// network call.
func ValidateRepositoryName(name string) error {
	var validationErrors ValidationErrors

	switch {
	case name == "":
		validationErrors.Add("name", name, "repository name is required")
	case len(name) > 100:
		validationErrors.Add("name", name, "repository name must be 100 characters or less")
	case !validRepositoryName.MatchString(name):
		validationErrors.Add("name", name, "repository name can only contain alphanumeric characters, spaces, periods, hyphens, and underscores")
	case strings.HasPrefix(name, ".") || strings.HasSuffix(name, "."):
		validationErrors.Add("name", name, "repository name cannot start or end with a period")
	}

	if validationErrors.HasErrors() {
		return &GitHubError{
			Type:    ErrorTypeValidation,
			Message: validationErrors.Error(),
			Cause:   validationErrors,
		}
	}

	return nil
}

// ValidateContentPath checks a repository-relative content path locally,
// before any network call.
func ValidateContentPath(path string) error {
	var validationErrors ValidationErrors

	switch {
	case path == "":
		validationErrors.Add("path", path, "content path is required")
	case strings.HasPrefix(path, "/"):
		validationErrors.Add("path", path, "content path must be relative to the repository root")
	case strings.HasSuffix(path, "/"):
		validationErrors.Add("path", path, "content path must name a file, not a directory")
	case strings.Contains(path, "\\"):
		validationErrors.Add("path", path, "content path must use forward slashes")
	case strings.Contains(path, "//"):
		validationErrors.Add("path", path, "content path must not contain empty segments")
	default:
		for _, segment := range strings.Split(path, "/") {
			if segment == ".." {
				validationErrors.Add("path", path, "content path must not traverse outside the repository")
				break
			}
		}
	}

	if validationErrors.HasErrors() {
		return &GitHubError{
			Type:    ErrorTypeValidation,
			Message: validationErrors.Error(),
			Cause:   validationErrors,
		}
	}

	return nil
}
