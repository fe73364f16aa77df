package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/ovrica/sget/internal/version"
)

const releaseSlug = "ovrica/sget"

var upgradeCmd = &cobra.Command{
	Use:     "upgrade",
	Short:   "Upgrade sget to the latest release",
	Aliases: []string{"update"},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runUpgrade(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

func runUpgrade(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Current version: %s\n", version.Version)
	fmt.Println("Checking for updates...")

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(releaseSlug))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", releaseSlug)
	}

	if latest.LessOrEqual(version.Version) {
		fmt.Println("Already up to date.")
		return nil
	}

	fmt.Printf("Updating to %s...\n", latest.Version())

	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, executable); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Printf("Successfully updated to %s\n", latest.Version())
	return nil
}
