package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of moin2git",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("moin2git %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
