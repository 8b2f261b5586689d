package cmd

import (
	"github.com/spf13/cobra"
)

// whichCmd represents the which command.
var whichCmd = newWhichCmd()

func newWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which <file>",
		Short: "Show how a file resolves",
		Long: `Show the project root, the active layout and the counterpart candidates
of a file without creating anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolve, err := resolveArgs(cmd, args)
			if err != nil {
				return err
			}

			_, err = workflow.Which(cmd.Context(), resolve)

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(whichCmd)
}
