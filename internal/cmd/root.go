package cmd

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	rootUser    string
	rootToken   string
	rootVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A CLI tool for provisioning GitHub Pages portfolio sites",
	Long: `Folio is a command-line tool for standing up personal portfolio sites on
GitHub Pages. It authenticates against the GitHub API with a personal access
token, creates the repository, uploads site content through the contents API,
and enables Pages so the site is served at https://<user>.github.io/<repo>/.

Run 'folio provision' for the full workflow, or drive the individual steps
with 'folio repo', 'folio upload' and 'folio pages'.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if rootVerbose {
			logger.SetLevel(logger.DebugLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootUser, "user", "u", "", "GitHub username (defaults to config file, then ~/.gitconfig)")
	rootCmd.PersistentFlags().StringVarP(&rootToken, "token", "t", "", "GitHub personal access token (defaults to GITHUB_TOKEN, then config file)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(repoCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(provisionCmd)
}
