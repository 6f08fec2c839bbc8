package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	uploadRepo string
	uploadPath string
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a file to a repository",
	Long: `Upload a local file to a repository through the GitHub contents API.

The destination path defaults to the file's base name at the repository root.
New files are created and existing files are updated in place, each upload is
a single commit on the default branch.

Examples:
  folio upload index.html --repo my-portfolio
  folio upload build/index.html --repo my-portfolio --path index.html
  folio upload logo.png --repo my-portfolio --path assets/logo.png`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadRepo, "repo", "r", "", "Target repository name (required)")
	uploadCmd.Flags().StringVarP(&uploadPath, "path", "p", "", "Destination path inside the repository (defaults to the file name)")
	_ = uploadCmd.MarkFlagRequired("repo")
}

func runUpload(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	localPath := args[0]

	content, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", localPath, err)
	}

	destination := uploadPath
	if destination == "" {
		destination = filepath.Base(localPath)
	}

	provisioner, cfg, err := newProvisioner()
	if err != nil {
		return err
	}

	if _, err := authenticateSession(ctx, provisioner, cfg); err != nil {
		return err
	}

	repository, err := provisioner.GetRepository(ctx, uploadRepo)
	if err != nil {
		return fmt.Errorf("failed to look up repository %s: %w", uploadRepo, err)
	}

	update, err := provisioner.UploadFile(ctx, destination, content)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", destination, err)
	}

	fmt.Printf("✅ Uploaded %s to %s (%d bytes)\n", destination, repository.FullName, len(content))
	fmt.Printf("📝 Commit %s: %q\n", shortSHA(update.CommitSHA), update.CommitMessage)
	return nil
}
