// Package cmd provides the root command and CLI setup for fxpipe.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nwave-fx/fxpipe/internal/adapter"
	"github.com/nwave-fx/fxpipe/internal/config"
	"github.com/nwave-fx/fxpipe/internal/controller"
	"github.com/nwave-fx/fxpipe/internal/domain"
	"github.com/nwave-fx/fxpipe/internal/logging"
)

var cfg *config.Config
var logger *slog.Logger
var ui controller.UI
var planStore adapter.PlanStore
var reportStore adapter.ReportStore
var runner adapter.CommandRunner
var imageFS adapter.ImageFSAdapter

// Constructors replaced in tests.
var newScene = func(path string, logger *slog.Logger) sceneSource {
	return adapter.NewSceneFileAdapter(path, logger)
}
var newEncoder = domain.NewEncoder
var newConnector = domain.NewConnector
var newUI = func(cmd *cobra.Command) controller.UI {
	return controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
}

func init() {
	planStore = adapter.NewPlanStore()
	reportStore = adapter.NewReportStore()
	runner = adapter.NewLocalCommandRunner()
	imageFS = adapter.NewLocalImageFSAdapter()
	logger = logging.NewNop()
}

var configFlag string
var envFileFlag string
var logLevelFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fxpipe",
		Short: "Effects pipeline tools",
		Long: `fxpipe gathers the effects department command line tools:

  - pairs, connect, edit   pair source meshes with destination meshes of a scene
                           and connect them (blendshape, in/out mesh, wrap, parent)
  - encode                 turn an EXR sequence into a colour corrected review movie`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", config.DefaultPath, "path to the fxpipe TOML config")
	cmd.PersistentFlags().StringVar(&envFileFlag, "env-file", ".env", "dotenv file loaded before the config")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "override the configured log level (debug, info, warn, error)")

	return cmd
}

func setup(cmd *cobra.Command) error {
	if err := config.LoadEnv(envFileFlag); err != nil {
		return err
	}

	loaded, exists, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	if logLevelFlag != "" {
		loaded.Log.Level = logLevelFlag
	}

	lg, err := logging.New(logging.Options{
		Level:  loaded.Log.Level,
		Format: loaded.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	cfg, logger = loaded, lg
	ui = newUI(cmd)

	logger.Debug("config loaded", "path", configFlag, "exists", exists)

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
