package cmd

import (
	"github.com/spf13/cobra"

	m "pyunit.dev/pkg/pyunit/internal/model"
)

// runCmd represents the run command.
var runCmd = newRunCmd()

// runAllCmd represents the run-all command.
var runAllCmd = newRunAllCmd()

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Run the tests of a file",
		Long: `Run the test runner on the test file of a source file, or on the file
itself when it already is a test file. The command runs in the project root.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolve, err := resolveArgs(cmd, args)
			if err != nil {
				return err
			}

			result, err := workflow.RunTest(cmd.Context(), resolve)

			return runOutcome(result, err)
		},
	}
}

func newRunAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run-all [path]",
		Short: "Run every test of the project",
		Long: `Run the test runner on the test root of the project that path (default:
the working directory) belongs to.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolve, err := resolveArgs(cmd, args)
			if err != nil {
				return err
			}

			result, err := workflow.RunAll(cmd.Context(), resolve)

			return runOutcome(result, err)
		},
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(runAllCmd)
}

func runOutcome(result m.RunResult, err error) error {
	if err != nil {
		return err
	}

	if !result.Passed() {
		return &exitCodeError{code: result.ExitCode}
	}

	return nil
}
