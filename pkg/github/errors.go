package github

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v66/github"
)

// ErrorType represents different categories of GitHub provisioning errors
type ErrorType string

const (
	ErrorTypeConfig       ErrorType = "configuration"
	ErrorTypePrecondition ErrorType = "precondition"
	ErrorTypeAuth         ErrorType = "authentication"
	ErrorTypePermission   ErrorType = "permission"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeRateLimit    ErrorType = "rate_limit"
	ErrorTypeNetwork      ErrorType = "network"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUnknown      ErrorType = "unknown"
)

// GitHubError represents a structured error from GitHub operations. Errors of
// type configuration and precondition are raised locally before any network
// I/O; the remaining types are mapped from API responses. When the API
// supplies a message it is preserved verbatim.
type GitHubError struct {
	Type     ErrorType `json:"type"`
	Message  string    `json:"message"`
	Cause    error     `json:"-"`
	Resource string    `json:"resource,omitempty"`
	Field    string    `json:"field,omitempty"`
	Code     string    `json:"code,omitempty"`
}

// Error implements the error interface
func (e *GitHubError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Resource, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *GitHubError) Unwrap() error {
	return e.Cause
}

// NewGitHubError creates a new GitHubError with the specified type and message
func NewGitHubError(errorType ErrorType, message string, cause error) *GitHubError {
	return &GitHubError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// WrapGitHubError wraps a GitHub API error into our structured error type
func WrapGitHubError(err error, resource string) *GitHubError {
	if err == nil {
		return nil
	}

	// If it's already a GitHubError, return as-is
	if ghErr, ok := err.(*GitHubError); ok {
		if ghErr.Resource == "" {
			ghErr.Resource = resource
		}
		return ghErr
	}

	// Handle GitHub API errors
	if ghErr, ok := err.(*github.ErrorResponse); ok {
		return parseGitHubAPIError(ghErr, resource)
	}

	if rateErr, ok := err.(*github.RateLimitError); ok {
		return &GitHubError{
			Type:     ErrorTypeRateLimit,
			Message:  fmt.Sprintf("rate limit exceeded, resets at %v", rateErr.Rate.Reset.Time),
			Cause:    err,
			Resource: resource,
		}
	}

	// Handle network/connection errors
	if isNetworkError(err) {
		return &GitHubError{
			Type:     ErrorTypeNetwork,
			Message:  "network error occurred, check your connection",
			Cause:    err,
			Resource: resource,
		}
	}

	// Default to unknown error
	return &GitHubError{
		Type:     ErrorTypeUnknown,
		Message:  err.Error(),
		Cause:    err,
		Resource: resource,
	}
}

// parseGitHubAPIError maps GitHub API error responses onto structured errors.
// The API-supplied message always wins; the fallbacks below only cover
// responses that arrive without one.
func parseGitHubAPIError(ghErr *github.ErrorResponse, resource string) *GitHubError {
	baseErr := &GitHubError{
		Message:  ghErr.Message,
		Resource: resource,
		Cause:    ghErr,
	}

	switch ghErr.Response.StatusCode {
	case http.StatusUnauthorized:
		baseErr.Type = ErrorTypeAuth
		if baseErr.Message == "" {
			baseErr.Message = "authentication failed, check your GitHub token"
		}

	case http.StatusForbidden:
		if strings.Contains(strings.ToLower(ghErr.Message), "rate limit") {
			baseErr.Type = ErrorTypeRateLimit
		} else {
			baseErr.Type = ErrorTypePermission
			if baseErr.Message == "" {
				baseErr.Message = "insufficient permissions, the token may be missing required scopes"
			}
		}

	case http.StatusNotFound:
		baseErr.Type = ErrorTypeNotFound
		if baseErr.Message == "" {
			baseErr.Message = "resource not found"
		}

	case http.StatusConflict:
		baseErr.Type = ErrorTypeConflict
		if baseErr.Message == "" {
			baseErr.Message = "resource conflict occurred"
		}

	case http.StatusUnprocessableEntity:
		baseErr.Type = ErrorTypeValidation
		if len(ghErr.Errors) > 0 {
			var details []string
			for _, apiErr := range ghErr.Errors {
				if apiErr.Field != "" {
					details = append(details, fmt.Sprintf("%s: %s", apiErr.Field, apiErr.Message))
					// Keep field info from the first error
					if baseErr.Field == "" {
						baseErr.Field = apiErr.Field
						baseErr.Code = apiErr.Code
					}
				} else if apiErr.Message != "" {
					details = append(details, apiErr.Message)
				}
			}
			if len(details) > 0 {
				if baseErr.Message != "" {
					baseErr.Message = fmt.Sprintf("%s: %s", baseErr.Message, strings.Join(details, "; "))
				} else {
					baseErr.Message = strings.Join(details, "; ")
				}
			}
		}
		if baseErr.Message == "" {
			baseErr.Message = "validation failed"
		}

	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		baseErr.Type = ErrorTypeNetwork
		if baseErr.Message == "" {
			baseErr.Message = "GitHub API is temporarily unavailable"
		}

	default:
		baseErr.Type = ErrorTypeUnknown
		if baseErr.Message == "" {
			baseErr.Message = fmt.Sprintf("unexpected response status %d", ghErr.Response.StatusCode)
		}
	}

	return baseErr
}

// isNetworkError checks if an error is a network-related error
func isNetworkError(err error) bool {
	errStr := strings.ToLower(err.Error())
	networkKeywords := []string{
		"connection refused",
		"connection reset",
		"connection timeout",
		"network is unreachable",
		"no such host",
		"timeout",
		"dial tcp",
		"i/o timeout",
	}

	for _, keyword := range networkKeywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

// hasErrorType reports whether err is (or wraps) a GitHubError of the given type.
func hasErrorType(err error, errorType ErrorType) bool {
	var ghErr *GitHubError
	if errors.As(err, &ghErr) {
		return ghErr.Type == errorType
	}
	return false
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool {
	return hasErrorType(err, ErrorTypeConfig)
}

// IsPrecondition reports whether err is a session precondition error.
func IsPrecondition(err error) bool {
	return hasErrorType(err, ErrorTypePrecondition)
}

// IsAuth reports whether err is an authentication error.
func IsAuth(err error) bool {
	return hasErrorType(err, ErrorTypeAuth)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return hasErrorType(err, ErrorTypeNotFound)
}

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool {
	return hasErrorType(err, ErrorTypeConflict)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return hasErrorType(err, ErrorTypeValidation)
}

// ValidationError represents a local input validation error
type ValidationError struct {
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("validation error for field '%s' (value: %s): %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	if len(e) == 1 {
		return e[0].Error()
	}

	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed with %d errors: %s", len(e), strings.Join(messages, "; "))
}

// Add adds a validation error to the collection
func (e *ValidationErrors) Add(field, value, message string) {
	*e = append(*e, ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}
