package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var repoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your repositories",
	Long:  "List the repositories owned by the authenticated user, most recently updated first.",
	RunE:  runRepoList,
}

func runRepoList(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	provisioner, cfg, err := newProvisioner()
	if err != nil {
		return err
	}

	user, err := authenticateSession(ctx, provisioner, cfg)
	if err != nil {
		return err
	}

	repositories, err := provisioner.ListRepositories(ctx)
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}

	if len(repositories) == 0 {
		fmt.Println("❌ No repositories found")
		fmt.Println("💡 Run 'folio repo create' to create one")
		return nil
	}

	fmt.Printf("\n📋 Repositories for %s:\n", user.Login)
	fmt.Println(strings.Repeat("-", 70))

	for _, repository := range repositories {
		visibility := "public "
		if repository.Private {
			visibility = "private"
		}

		fmt.Printf("  %-35s | %s | updated %s\n",
			repository.Name, visibility, repository.UpdatedAt.Format("2006-01-02"))
	}

	fmt.Printf("\n📊 Total: %d repositories\n", len(repositories))
	return nil
}
