package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/browser"
	"folio/pkg/github"
)

var (
	pagesRepo   string
	pagesStatus bool
	pagesOpen   bool
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Enable or inspect GitHub Pages for a repository",
	Long: `Enable GitHub Pages for a repository, or report its current Pages
configuration.

Enabling configures Pages to serve the root of the default branch with the
workflow build type. Re-running against an already configured repository
reports the existing configuration instead of failing.

Examples:
  folio pages --repo my-portfolio
  folio pages --repo my-portfolio --status
  folio pages --repo my-portfolio --open`,
	RunE: runPages,
}

func init() {
	pagesCmd.Flags().StringVarP(&pagesRepo, "repo", "r", "", "Target repository name (required)")
	pagesCmd.Flags().BoolVar(&pagesStatus, "status", false, "Report the current Pages configuration without changing it")
	pagesCmd.Flags().BoolVar(&pagesOpen, "open", false, "Open the site URL in the default browser")
	_ = pagesCmd.MarkFlagRequired("repo")
}

func runPages(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	provisioner, cfg, err := newProvisioner()
	if err != nil {
		return err
	}

	if _, err := authenticateSession(ctx, provisioner, cfg); err != nil {
		return err
	}

	if _, err := provisioner.GetRepository(ctx, pagesRepo); err != nil {
		return fmt.Errorf("failed to look up repository %s: %w", pagesRepo, err)
	}

	if pagesStatus {
		return runPagesStatus(ctx, provisioner)
	}

	pagesSite, err := provisioner.EnablePages(ctx)
	if err != nil {
		if github.IsConflict(err) {
			fmt.Println("⚠️  GitHub Pages is already enabled for this repository")
			return runPagesStatus(ctx, provisioner)
		}
		return fmt.Errorf("failed to enable Pages: %w", err)
	}

	fmt.Println("✅ GitHub Pages enabled")
	printPagesSite(pagesSite)

	if pagesOpen {
		return openSite(pagesSite.URL)
	}
	return nil
}

func runPagesStatus(ctx context.Context, provisioner *github.Provisioner) error {
	pagesSite, err := provisioner.GetPages(ctx)
	if err != nil {
		if github.IsNotFound(err) {
			fmt.Println("❌ GitHub Pages is not configured for this repository")
			fmt.Printf("💡 Run 'folio pages --repo %s' to enable it\n", pagesRepo)
			return nil
		}
		return fmt.Errorf("failed to read Pages configuration: %w", err)
	}

	fmt.Println("📊 GitHub Pages configuration:")
	printPagesSite(pagesSite)

	if pagesOpen {
		return openSite(pagesSite.URL)
	}
	return nil
}

func printPagesSite(pagesSite *github.PagesSite) {
	fmt.Printf("🔗 URL:    %s\n", pagesSite.URL)
	if pagesSite.Status != "" {
		fmt.Printf("   Status: %s\n", pagesSite.Status)
	}
	if pagesSite.SourceBranch != "" {
		fmt.Printf("   Source: %s %s (%s build)\n", pagesSite.SourceBranch, pagesSite.SourcePath, pagesSite.BuildType)
	}
}

// openURL launches the system browser, swapped out in tests.
var openURL = browser.Open

func openSite(url string) error {
	fmt.Printf("🌐 Opening %s in your browser...\n", url)
	return openURL(url)
}
