package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "pyunit.dev/pkg/pyunit/internal/model"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the pyunit build version, the Go version it was built with,
the supported test layouts and the global configuration file in use.`,
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()

			for _, line := range versionLines(info, viper.ConfigFileUsed()) {
				cmd.Println(line)
			}
		},
	}
}

func versionLines(info *debug.BuildInfo, configFile string) []string {
	version, goVersion := "unknown", "unknown"
	if info != nil {
		if info.Main.Version != "" {
			version = info.Main.Version
		}

		if info.GoVersion != "" {
			goVersion = info.GoVersion
		}
	}

	kinds := make([]string, 0, len(m.LayoutKinds()))
	for _, kind := range m.LayoutKinds() {
		kinds = append(kinds, string(kind))
	}

	if configFile == "" {
		configFile = "none (built-in defaults)"
	}

	return []string{
		"pyunit version\t " + version,
		"go version\t " + goVersion,
		"layouts\t\t " + strings.Join(kinds, ", "),
		"config file\t " + configFile,
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
