package cmd

import (
	"fmt"
	"text/tabwriter"

	"day-zero/pkg/calculator"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra commands are typically global
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the alignment rules and their default thresholds",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RULE\tDEFAULT THRESHOLD")
		for _, r := range calculator.Rules() {
			fmt.Fprintf(w, "%s\t%g\n", r, r.DefaultThreshold())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
