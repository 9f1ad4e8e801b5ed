package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X day-zero/cmd.Version=..."
//
//nolint:gochecknoglobals // Set by the linker
var Version = "dev"

//nolint:gochecknoglobals // Cobra commands are typically global
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "day-zero %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
