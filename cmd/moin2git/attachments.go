// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/moin2git/internal/attach"
	"github.com/pdiddy/moin2git/pkg/types"
)

var attachmentsCmd = &cobra.Command{
	Use:   "attachments <data_dir> <dest_dir>",
	Short: "Copy every page's attachment files into a destination tree",
	Long: `Attachments copies the files under each page's attachments/ directory
into <dest_dir>/<decoded page title>/, creating directories as needed.
Attachments are not versioned; existing destination files are overwritten.`,
	Args: cobra.ExactArgs(2),
	RunE: runAttachments,
}

func init() {
	rootCmd.AddCommand(attachmentsCmd)
}

func runAttachments(cmd *cobra.Command, args []string) error {
	cfg := types.AttachmentsConfig{
		DataDir: args[0],
		DestDir: args[1],
	}

	summary, err := attach.CopyAll(cfg, os.Stdout)
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d attachment(s) failed to copy", summary.Failed)
	}
	return nil
}
