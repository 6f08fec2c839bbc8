package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"folio/pkg/github"
)

var (
	repoCreateDescription string
	repoCreatePrivate     bool
	repoCreateTopics      []string
)

var repoCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new GitHub repository",
	Long: `Create a new repository under the authenticated account.

When no name is given a unique default is generated: "ICON Web Portfolio"
followed by a random UUID, so repeated runs never collide. GitHub slugifies
spaces in repository names, the created repository reports the slug.

Examples:
  folio repo create
  folio repo create my-portfolio
  folio repo create my-portfolio --description "Personal site" --private`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRepoCreate,
}

func init() {
	repoCreateCmd.Flags().StringVarP(&repoCreateDescription, "description", "d", "", "Repository description")
	repoCreateCmd.Flags().BoolVar(&repoCreatePrivate, "private", false, "Create a private repository")
	repoCreateCmd.Flags().StringSliceVar(&repoCreateTopics, "topics", nil, "Comma-separated list of repository topics")
}

func runRepoCreate(_ *cobra.Command, args []string) error {
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
	}

	repository, err := provisioner.CreateRepository(ctx, github.RepositoryConfig{
		Name:        name,
		Description: repoCreateDescription,
		Private:     repoCreatePrivate,
		Topics:      repoCreateTopics,
	})
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}

	fmt.Printf("✅ Repository created: %s\n", repository.FullName)
	printRepositoryDetails(repository)
	return nil
}
