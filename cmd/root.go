package cmd

import (
	"context"
	"os"

	"github.com/cortexcapture/ctxprobe/internal/config"
	"github.com/cortexcapture/ctxprobe/pkg/probe"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configDir string
var logLevel string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", "", "set directory to where your .hcl-configs are located (built-in osascript bridge if empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", log.InfoLevel.String(), "set the log level (trace, debug, info, warn, error)")
}

var rootCmd = &cobra.Command{
	Use:     "ctxprobe",
	Short:   "ctxprobe - query desktop applications for their current context",
	Long:    "ctxprobe asks the front-most application, Chrome, Safari, Preview and Finder for their current state through the OS automation bridge and prints the raw outcome of every probe",
	Version: Version,
	Args:    cobra.NoArgs,

	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ignitionConfig := &config.Ignition{}

		if configDir != "" {
			log.Infof("looking for configuration files in %s", configDir)
			if err := ignitionConfig.GenerateFromConfigDir(configDir); err != nil {
				return err
			}
		}

		runner := probe.NewRunner(ignitionConfig.BuildInterpreter(), probe.NewView(cmd.OutOrStdout()))

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		// Probe failures are reported in the output only; the exit code stays 0.
		runner.RunAll(ctx, probe.Defaults())
		return nil
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.WithError(err).Error("ctxprobe failed")
		_, _ = os.Stderr.WriteString(renderError(err) + "\n")
		os.Exit(1)
	}
}
