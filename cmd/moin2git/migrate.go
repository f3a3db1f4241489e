// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/moin2git/internal/checkpoint"
	"github.com/pdiddy/moin2git/internal/convert"
	"github.com/pdiddy/moin2git/internal/replay"
	"github.com/pdiddy/moin2git/internal/resolve"
	"github.com/pdiddy/moin2git/internal/users"
	"github.com/pdiddy/moin2git/pkg/types"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <data_dir> <git_repo>",
	Short: "Replay every page's edit history into a git repository",
	Long: `Migrate reads the wiki's pages/ directory, reconstructs each page's
revision history from its edit log and revision blobs, and replays it as
commits against the target repository (created if it does not exist).

Progress is checkpointed per revision: re-running migrate against a partially
migrated repository skips commits already created.`,
	Args: cobra.ExactArgs(2),
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().Bool("convert-to-rst", false, "also produce reStructuredText and Markdown renderings per revision")
	migrateCmd.Flags().String("users-file", "", "JSON file mapping wiki user ids to commit authors (default: parse <data_dir>/user/)")
	migrateCmd.Flags().String("default-email", resolve.DefaultEmail, "author email for unknown users")
	migrateCmd.Flags().String("converter-script", "", "path to the moin2rst converter script")
	migrateCmd.Flags().String("python", "", "interpreter used to run the converter script")

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	convertToRST, _ := cmd.Flags().GetBool("convert-to-rst")
	usersFile, _ := cmd.Flags().GetString("users-file")

	cfg := types.MigrateConfig{
		DataDir:      args[0],
		RepoDir:      args[1],
		UsersFile:    usersFile,
		DefaultEmail: stringSetting(cmd, "default-email", "default_email"),
		Conversion: types.ConversionConfig{
			Enabled: convertToRST,
			Script:  stringSetting(cmd, "converter-script", "conversion.script"),
			Python:  stringSetting(cmd, "python", "conversion.python"),
		},
	}

	registry, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	var converter convert.RevisionConverter
	var renderer convert.Renderer
	if cfg.Conversion.Enabled {
		m, err := convert.NewMoin2RST(cfg.Conversion, cfg.DataDir)
		if err != nil {
			return err
		}
		converter = m

		p, err := convert.NewPandoc()
		if err != nil {
			return err
		}
		renderer = p
	}

	ledger, err := checkpoint.Open(cfg.RepoDir)
	if err != nil {
		return err
	}
	defer ledger.Close()

	engine, err := replay.Open(cfg.RepoDir, renderer, ledger)
	if err != nil {
		return err
	}

	resolver := resolve.New(registry, cfg.DefaultEmail, converter)
	summary, err := engine.MigrateAll(cfg.DataDir, resolver, os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d version(s) failed to replay", summary.Failed)
	}
	return nil
}

func loadRegistry(cfg types.MigrateConfig) (map[string]types.UserRecord, error) {
	if cfg.UsersFile != "" {
		return users.LoadFile(cfg.UsersFile)
	}
	return users.Load(cfg.DataDir)
}
