// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/moin2git/internal/users"
)

var usersCmd = &cobra.Command{
	Use:   "users <data_dir>",
	Short: "Dump the wiki's user registry as JSON",
	Long: `Users parses the per-user files under <data_dir>/user/ and prints the
registry as indented JSON, keyed by internal user id. The output can be
edited and fed back to migrate via --users-file to remap commit authors.`,
	Args: cobra.ExactArgs(1),
	RunE: runUsers,
}

func init() {
	rootCmd.AddCommand(usersCmd)
}

func runUsers(cmd *cobra.Command, args []string) error {
	registry, err := users.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(registry)
}
