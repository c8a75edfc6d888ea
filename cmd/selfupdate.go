package cmd

import (
	"fmt"
	"os"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug is the GitHub repository used for release lookups.
const githubRepoSlug = "Sweet-and-Fizzy/mcp-ondemand"

// newSelfUpdateCmd creates the Cobra command for updating the binary in place.
func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update mcp-ondemand to the latest version",
		Long: `Check GitHub releases for a newer version of mcp-ondemand and, if one
exists, replace the current binary with it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			version := rootCmd.Version
			if version == "" || version == "dev" {
				return fmt.Errorf("cannot self-update a development version (version: %q)", version)
			}

			ctx := cmd.Context()

			latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(githubRepoSlug))
			if err != nil {
				return fmt.Errorf("error occurred while detecting version: %w", err)
			}
			if !found {
				return fmt.Errorf("latest version for %s could not be found in %s", version, githubRepoSlug)
			}

			if latest.LessOrEqual(version) {
				fmt.Fprintf(cmd.OutOrStdout(), "Current version (%s) is the latest\n", version)
				return nil
			}

			exe, err := os.Executable()
			if err != nil {
				return fmt.Errorf("could not locate executable path: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updating to version %s...\n", latest.Version())
			if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
				return fmt.Errorf("error occurred while updating binary: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully updated to version %s\n", latest.Version())
			return nil
		},
	}
}
