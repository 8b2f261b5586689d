// Package cmd provides the root command and CLI setup for pyunit.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pyunit.dev/pkg/pyunit/internal/adapter"
	"pyunit.dev/pkg/pyunit/internal/controller"
	"pyunit.dev/pkg/pyunit/internal/domain"
	m "pyunit.dev/pkg/pyunit/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var testAdapter adapter.TestRunnerAdapter
var settingsStore adapter.SettingsStore
var runStore adapter.RunStore
var workflow domain.Workflow
var ui controller.UI

var (
	layoutFlag     string
	sourceRootFlag string
	testRootFlag   string
	prefixFlag     string
	markerFlags    []string
	runnerFlag     string
	timeoutFlag    string
	stopAtHomeFlag bool
	verboseFlag    bool
	logFileFlag    string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	testAdapter = adapter.NewLocalTestRunnerAdapter(viper.GetDuration(m.KeyRunnerTimeout))
	settingsStore = adapter.NewViperSettingsStore(adapter.ProjectConfigFileName)
	runStore = adapter.NewGobRunStore("")
	workflow = domain.NewWorkflow(
		fsAdapter,
		testAdapter,
		settingsStore,
		runStore,
		ui,
	)
}

const rootLongDescription = `pyunit switches between Python source files and their unit tests and runs
the tests that belong to a file.

The project root is the nearest ancestor directory holding one of the root
markers (setup.py or .git by default). Tests are placed according to one of
the layouts:

  side-by-side      pkg/mod.py -> pkg/test_mod.py
  flat              pkg/mod.py -> tests/test_pkg_mod.py
  follow-hierarchy  pkg/mod.py -> tests/test_pkg/test_mod.py
  nose              pkg/mod.py -> tests/pkg/test_mod.py

A .pyunit.yaml file in the project root overrides the global settings.
Flags given on the command line override both.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "pyunit",
		Short:        "Python source/test switching and test running",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&layoutFlag, layoutFlagName, "l", viper.GetString(m.KeyLayoutKind), "test layout: side-by-side, flat, follow-hierarchy or nose")
	bindFlagToConfig(flags.Lookup(layoutFlagName), m.KeyLayoutKind)

	flags.StringVar(&sourceRootFlag, sourceRootFlagName, viper.GetString(m.KeySourceRoot), "source directory relative to the project root")
	bindFlagToConfig(flags.Lookup(sourceRootFlagName), m.KeySourceRoot)

	flags.StringVar(&testRootFlag, testRootFlagName, viper.GetString(m.KeyTestRoot), "test directory relative to the project root")
	bindFlagToConfig(flags.Lookup(testRootFlagName), m.KeyTestRoot)

	flags.StringVar(&prefixFlag, prefixFlagName, viper.GetString(m.KeyTestPrefix), "prefix of test file and directory names")
	bindFlagToConfig(flags.Lookup(prefixFlagName), m.KeyTestPrefix)

	flags.StringArrayVarP(&markerFlags, markerFlagName, "m", viper.GetStringSlice(m.KeyRootMarkers), "glob naming a project root marker (can be repeated)")
	bindFlagToConfig(flags.Lookup(markerFlagName), m.KeyRootMarkers)

	flags.BoolVar(&stopAtHomeFlag, stopAtHomeFlagName, viper.GetBool(m.KeyStopAtHome), "never search for the project root above the home directory")
	bindFlagToConfig(flags.Lookup(stopAtHomeFlagName), m.KeyStopAtHome)

	flags.StringVarP(&runnerFlag, runnerFlagName, "r", viper.GetString(m.KeyRunnerCommand), "test runner command; the test path is appended")
	bindFlagToConfig(flags.Lookup(runnerFlagName), m.KeyRunnerCommand)

	flags.StringVarP(&timeoutFlag, timeoutFlagName, "t", viper.GetDuration(m.KeyRunnerTimeout).String(), "stop the test runner after this long (e.g. 90s, 0 for no limit)")
	bindFlagToConfig(flags.Lookup(timeoutFlagName), m.KeyRunnerTimeout)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// flagConfigKeys maps flag names to the config keys they are bound to.
var flagConfigKeys = map[string]string{}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	flagConfigKeys[flag.Name] = key
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// exitCodeError carries the test runner's exit code out of Execute.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("tests failed with exit code %d", e.code)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var failed *exitCodeError
	if errors.As(err, &failed) && failed.code > 0 {
		return failed.code
	}

	return 1
}

// resolveArgs builds the request for the file named on the command line,
// the working directory when none is given.
func resolveArgs(cmd *cobra.Command, args []string) (domain.ResolveArgs, error) {
	settings, err := settingsFromConfig()
	if err != nil {
		return domain.ResolveArgs{}, err
	}

	file, err := targetPath(args)
	if err != nil {
		return domain.ResolveArgs{}, err
	}

	return domain.ResolveArgs{File: file, Settings: settings, Pinned: pinnedKeys(cmd)}, nil
}

// pinnedKeys lists the config keys set explicitly on the command line.
func pinnedKeys(cmd *cobra.Command) []string {
	var keys []string

	cmd.Flags().Visit(func(flag *pflag.Flag) {
		if key, ok := flagConfigKeys[flag.Name]; ok {
			keys = append(keys, key)
		}
	})

	return keys
}

func targetPath(args []string) (m.Path, error) {
	if len(args) == 0 || args[0] == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}

		return m.Path(wd), nil
	}

	abs, err := filepath.Abs(args[0])
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", args[0], err)
	}

	return m.Path(abs), nil
}
