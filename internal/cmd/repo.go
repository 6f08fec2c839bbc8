package cmd

import (
	"github.com/spf13/cobra"
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Repository management commands",
	Long: `Commands for managing the GitHub repository that hosts your portfolio.

Available commands:
  create - Create a new repository
  get    - Look up one of your repositories
  list   - List your repositories`,
}

func init() {
	repoCmd.AddCommand(repoCreateCmd)
	repoCmd.AddCommand(repoGetCmd)
	repoCmd.AddCommand(repoListCmd)
}
