package cmd

import (
	"github.com/spf13/cobra"
)

// lastCmd represents the last command.
var lastCmd = newLastCmd()

func newLastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last [path]",
		Short: "Show the result of the last test run",
		Long: `Show the summary and the reported error locations of the last run in the
project that path (default: the working directory) belongs to.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolve, err := resolveArgs(cmd, args)
			if err != nil {
				return err
			}

			_, err = workflow.Last(cmd.Context(), resolve)

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(lastCmd)
}
