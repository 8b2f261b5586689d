package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pyunit.dev/pkg/pyunit/internal/domain"
	m "pyunit.dev/pkg/pyunit/internal/model"
)

// configCmd represents the config command.
var configCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [path]",
		Short: "Print the effective settings",
		Long: `Print the settings in force for path (default: the working directory) as
YAML, with the project's .pyunit.yaml applied when a project root is found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolve, err := resolveArgs(cmd, args)
			if err != nil {
				return err
			}

			settings, root, err := workflow.EffectiveSettings(cmd.Context(), resolve)
			if errors.Is(err, domain.ErrRootNotFound) {
				settings, root = resolve.Settings, ""
			} else if err != nil {
				return err
			}

			out, err := renderSettings(settings, root)
			if err != nil {
				return err
			}

			cmd.Print(out)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func renderSettings(settings m.Settings, root m.Path) (string, error) {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("encode settings: %w", err)
	}

	header := "# no project root found, global settings only\n"
	if root != "" {
		header = fmt.Sprintf("# project root: %s\n", root)
	}

	return header + string(data), nil
}
