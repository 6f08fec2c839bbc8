package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"folio/pkg/fuzzy"
	"folio/pkg/github"
)

var repoGetCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Look up one of your repositories",
	Long: `Look up a repository owned by the authenticated user.

With no argument and an interactive terminal, the repository is picked from a
fuzzy finder over your repositories.

Examples:
  folio repo get my-portfolio
  folio repo get`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRepoGet,
}

func runRepoGet(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	provisioner, cfg, err := newProvisioner()
	if err != nil {
		return err
	}

	if _, err := authenticateSession(ctx, provisioner, cfg); err != nil {
		return err
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		name, err = selectRepositoryWithFuzzyFinder(ctx, provisioner)
		if err != nil {
			return err
		}
	}

	repository, err := provisioner.GetRepository(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to look up repository: %w", err)
	}

	fmt.Printf("📦 Repository: %s\n", repository.FullName)
	printRepositoryDetails(repository)
	return nil
}

func selectRepositoryWithFuzzyFinder(ctx context.Context, provisioner *github.Provisioner) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("repository name required when stdin is not a terminal")
	}

	repositories, err := provisioner.ListRepositories(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list repositories: %w", err)
	}

	if len(repositories) == 0 {
		return "", fmt.Errorf("no repositories found for this account")
	}

	finder := fuzzy.New("🔍 Select repository:")

	// The full name leads each displayed row; selection returns the bare name
	var options []fuzzy.Option
	for _, repository := range repositories {
		visibility := "public"
		if repository.Private {
			visibility = "private"
		}

		description := fmt.Sprintf("%s, updated %s", visibility, repository.UpdatedAt.Format("2006-01-02"))
		if repository.Description != "" {
			description = fmt.Sprintf("%s (%s)", repository.Description, description)
		}

		options = append(options, fuzzy.Option{
			Value:       repository.Name,
			Description: description,
			Metadata:    map[string]string{"full_name": repository.FullName},
		})
	}

	if err := finder.SetOptions(options); err != nil {
		return "", fmt.Errorf("failed to set finder options: %w", err)
	}

	selected, err := finder.Select()
	if err != nil {
		return "", fmt.Errorf("repository selection failed: %w", err)
	}

	return selected, nil
}
