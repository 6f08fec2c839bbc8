package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"folio/pkg/config"
	"folio/pkg/github"
	"folio/pkg/site"
)

var (
	provisionName        string
	provisionDescription string
	provisionPrivate     bool
	provisionFiles       []string
	provisionOpen        bool
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Provision a complete GitHub Pages portfolio",
	Long: `Run the full portfolio workflow: authenticate, create the repository,
upload site content, and enable GitHub Pages.

With no --file flags a starter site (index page plus stylesheet) is generated
from the built-in templates, using the site settings from the configuration
file. Pass --file one or more times to upload your own content instead, each
file lands at its base name in the repository root.

Examples:
  folio provision
  folio provision --name my-portfolio
  folio provision --name my-portfolio --file index.html --file style.css
  folio provision --private --open`,
	RunE: runProvision,
}

func init() {
	provisionCmd.Flags().StringVarP(&provisionName, "name", "n", "", "Repository name (defaults to a generated unique name)")
	provisionCmd.Flags().StringVarP(&provisionDescription, "description", "d", "", "Repository description")
	provisionCmd.Flags().BoolVar(&provisionPrivate, "private", false, "Create a private repository")
	provisionCmd.Flags().StringArrayVarP(&provisionFiles, "file", "f", nil, "File to upload (repeatable, defaults to the generated starter site)")
	provisionCmd.Flags().BoolVar(&provisionOpen, "open", false, "Open the site URL in the default browser when done")
}

func runProvision(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	fmt.Println("🚀 Provisioning GitHub Pages portfolio...")

	provisioner, cfg, err := newProvisioner()
	if err != nil {
		return err
	}

	if _, err := authenticateSession(ctx, provisioner, cfg); err != nil {
		return err
	}

	// Collect content before touching the remote, a bad --file path must not
	// leave a half-provisioned repository behind
	files, err := collectSiteFiles(cfg)
	if err != nil {
		return err
	}

	repository, err := provisioner.CreateRepository(ctx, github.RepositoryConfig{
		Name:        provisionName,
		Description: provisionDescription,
		Private:     provisionPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	fmt.Printf("📦 Repository created: %s\n", repository.FullName)

	fmt.Printf("📝 Uploading %d file(s)...\n", len(files))
	for _, file := range files {
		update, err := provisioner.UploadFile(ctx, file.Path, file.Content)
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", file.Path, err)
		}
		fmt.Printf("   ✓ %s (commit %s)\n", file.Path, shortSHA(update.CommitSHA))
	}

	pagesSite, err := provisioner.EnablePages(ctx)
	if err != nil {
		return fmt.Errorf("failed to enable Pages: %w", err)
	}

	fmt.Println("🎉 Portfolio provisioned successfully!")
	fmt.Printf("🔗 Site URL: %s\n", pagesSite.URL)
	fmt.Println("💡 The first Pages build can take a minute, refresh if the site is not up yet.")

	if provisionOpen {
		return openSite(pagesSite.URL)
	}
	return nil
}

// collectSiteFiles returns the content to upload: the --file arguments when
// given, otherwise the generated starter site.
func collectSiteFiles(cfg *config.Config) ([]site.File, error) {
	if len(provisionFiles) == 0 {
		generator, err := site.NewGenerator()
		if err != nil {
			return nil, fmt.Errorf("failed to load site templates: %w", err)
		}

		files, err := generator.Files(site.Data{
			Title:  cfg.Site.Title,
			Author: cfg.Site.Author,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to render starter site: %w", err)
		}
		return files, nil
	}

	var files []site.File
	for _, localPath := range provisionFiles {
		content, err := os.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", localPath, err)
		}
		files = append(files, site.File{
			Path:    filepath.Base(localPath),
			Content: content,
		})
	}
	return files, nil
}
