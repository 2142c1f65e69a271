// Package main provides the entry point for cvgen, the synthetic CV sample generator.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cvgen/internal/config"
	"github.com/jonathan/cvgen/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Environment variables that seed the log flag defaults; a .env file may set them.
const (
	envLogLevel  = "CVGEN_LOG_LEVEL"
	envLogFormat = "CVGEN_LOG_FORMAT"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	log logging.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: config.Default().Log}
	if level := os.Getenv(envLogLevel); level != "" {
		opts.log.Level = level
	}
	if format := os.Getenv(envLogFormat); format != "" {
		opts.log.Format = format
	}

	rootCmd := &cobra.Command{
		Use:   "cvgen",
		Short: "Synthetic CV sample generator",
		Long: `cvgen fabricates synthetic résumé records for testing CV-screening systems.

Run without a subcommand to write the default batch of 20 CVs to sample_cvs.json.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.log.Validate(); err != nil {
				return err
			}
			initLogger(cmd, opts.log)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			genOpts := defaultGenerateOptions()
			genOpts.cfg.Log = opts.log
			return runGenerate(cmd, genOpts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.log.Level, "log-level", opts.log.Level, "Log level: debug, info, warn or error (env "+envLogLevel+")")
	flags.StringVar(&opts.log.Format, "log-format", opts.log.Format, "Log format: pretty or json (env "+envLogFormat+")")

	rootCmd.AddCommand(
		newGenerateCmd(opts),
		newValidateCmd(),
		newRenderCmd(),
		newStatusCmd(),
	)
	return rootCmd
}

// initLogger builds the global logger on the command's stderr and attaches it
// to the command context, which subcommands read through logging.Ctx.
func initLogger(cmd *cobra.Command, cfg logging.Config) context.Context {
	logging.InitWithWriter(cfg, cmd.ErrOrStderr())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithContext(ctx)
	cmd.SetContext(ctx)
	return ctx
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
