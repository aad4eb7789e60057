package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCommand バージョン表示コマンド
func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("StrayMaps %s (revision %s)\n", Version, Revision)
		},
	}
}
