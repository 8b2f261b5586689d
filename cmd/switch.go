package cmd

import (
	"github.com/spf13/cobra"

	"pyunit.dev/pkg/pyunit/internal/domain"
)

var switchYesFlag bool

// switchCmd represents the switch command.
var switchCmd = newSwitchCmd()

func newSwitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "switch <file>",
		Short: "Print the counterpart of a source or test file",
		Long: `Print the test file of a source file, or the source file of a test file.

A missing test file is created after confirmation, together with any missing
test directories and their __init__.py files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolve, err := resolveArgs(cmd, args)
			if err != nil {
				return err
			}

			_, err = workflow.Switch(cmd.Context(), domain.SwitchArgs{
				ResolveArgs: resolve,
				AssumeYes:   switchYesFlag,
			})

			return err
		},
	}

	cmd.Flags().BoolVarP(&switchYesFlag, yesFlagName, "y", false, "create a missing test file without asking")

	return cmd
}

func init() {
	rootCmd.AddCommand(switchCmd)
}
