// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the moin2git CLI, which migrates the
// revision history of a MoinMoin wiki into a git repository.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the moin2git CLI.
var rootCmd = &cobra.Command{
	Use:   "moin2git",
	Short: "Migrate a MoinMoin wiki's history into a git repository",
	Long: `moin2git reads a MoinMoin data directory and replays every page's edit
history as git commits, preserving per-revision authorship, timestamps, and
commit messages. One commit is created per original edit, in edit-log order.

Each migration concern is a subcommand: migrate replays page histories,
users dumps the wiki's user registry, attachments copies attachment files,
and status summarizes the migration checkpoint ledger.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./moin2git.yaml or ~/.config/moin2git/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("moin2git")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "moin2git"))
		}
	}

	viper.SetEnvPrefix("MOIN2GIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string option: an explicitly set flag wins, then
// the config file / environment, then the flag's default.
func stringSetting(cmd *cobra.Command, flag, viperKey string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if v := viper.GetString(viperKey); v != "" {
		return v
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
