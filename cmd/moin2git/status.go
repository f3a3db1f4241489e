// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/moin2git/internal/checkpoint"
)

var statusCmd = &cobra.Command{
	Use:   "status <git_repo>",
	Short: "Summarize the migration checkpoint ledger",
	Long: `Status reads the checkpoint ledger inside the target repository and
prints how many revisions have been committed per page. A re-run of migrate
skips everything listed here.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().String("format", "table", "output format: table or yaml")

	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ledger, err := checkpoint.Open(args[0])
	if err != nil {
		return err
	}
	defer ledger.Close()

	stats, err := ledger.Stats()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml":
		return yaml.NewEncoder(os.Stdout).Encode(statusReport(stats))
	case "table", "":
		printStatusTable(stats)
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use table or yaml", format)
	}
}

// statusReport shapes ledger stats for YAML output.
func statusReport(stats []checkpoint.PageStats) map[string]any {
	pages := make(map[string]int, len(stats))
	total := 0
	for _, s := range stats {
		pages[s.Page] = s.Commits
		total += s.Commits
	}
	return map[string]any{
		"pages":         pages,
		"total_commits": total,
	}
}

func printStatusTable(stats []checkpoint.PageStats) {
	if len(stats) == 0 {
		fmt.Println("No revisions migrated yet.")
		return
	}

	total := 0
	fmt.Fprintf(os.Stdout, "%-40s  %s\n", "Page", "Commits")
	for _, s := range stats {
		fmt.Fprintf(os.Stdout, "%-40s  %d\n", s.Page, s.Commits)
		total += s.Commits
	}
	fmt.Fprintf(os.Stdout, "\n%d pages, %d commits\n", len(stats), total)
}
