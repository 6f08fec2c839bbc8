// Package github provides the GitHub provisioning workflow for folio.
// It authenticates against the GitHub REST API, creates repositories,
// commits content through the contents API, and enables GitHub Pages.
//
// The package includes:
// - APIClient interface for GitHub API operations
// - Provisioner sequencing the workflow over an in-memory Session
// - Structured error types for every failure category
// - Token and username resolution from environment and configuration
package github
