package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/cvgen/internal/artifact"
	"github.com/jonathan/cvgen/internal/config"
	"github.com/jonathan/cvgen/internal/generator"
	"github.com/jonathan/cvgen/internal/logging"
	"github.com/jonathan/cvgen/internal/observability"
	"github.com/jonathan/cvgen/internal/schemas"
	"github.com/jonathan/cvgen/internal/types"
	"github.com/jonathan/cvgen/internal/validation"
	"github.com/spf13/cobra"
)

// generateOptions holds the generate flags; the config file fills what flags leave unset.
type generateOptions struct {
	configPath string
	cfg        config.Config
	verbose    bool

	// now overrides the generator clock in tests.
	now func() time.Time
}

func defaultGenerateOptions() *generateOptions {
	return &generateOptions{cfg: config.Default()}
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := defaultGenerateOptions()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch of synthetic CVs",
		Long: `Generates a batch of synthetic CV records and writes them to one JSON file.

Configuration can be loaded from a YAML file using --config. Command-line flags override config file values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.cfg.Log = root.log
			if err := opts.applyConfigFile(cmd); err != nil {
				return err
			}
			return runGenerate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file (values can be overridden by other flags)")
	flags.IntVarP(&opts.cfg.Count, "count", "n", opts.cfg.Count, "Number of CVs to generate")
	flags.StringVarP(&opts.cfg.Output, "out", "o", opts.cfg.Output, "Path to the output JSON file")
	flags.Uint64Var(&opts.cfg.Seed, "seed", 0, "Random seed for reproducible batches (0 picks one from the clock)")
	flags.StringVar(&opts.cfg.IDStyle, "id-style", opts.cfg.IDStyle, "Identifier style: timestamp or uuid")
	flags.IntVar(&opts.cfg.MinSkills, "min-skills", opts.cfg.MinSkills, "Minimum skills per CV")
	flags.IntVar(&opts.cfg.MaxSkills, "max-skills", opts.cfg.MaxSkills, "Maximum skills per CV")
	flags.IntVar(&opts.cfg.SummaryCount, "summary", opts.cfg.SummaryCount, "Number of CVs listed in the closing summary")
	flags.BoolVar(&opts.cfg.ValidateOutput, "validate", false, "Validate the written file against the schema and generator invariants")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print every generated CV in detail")

	return cmd
}

// flagFields maps flag names to the config fields they set. The log flags are
// inherited from the root command.
var flagFields = map[string]func(dst, src *config.Config){
	"count":      func(dst, src *config.Config) { dst.Count = src.Count },
	"out":        func(dst, src *config.Config) { dst.Output = src.Output },
	"seed":       func(dst, src *config.Config) { dst.Seed = src.Seed },
	"id-style":   func(dst, src *config.Config) { dst.IDStyle = src.IDStyle },
	"min-skills": func(dst, src *config.Config) { dst.MinSkills = src.MinSkills },
	"max-skills": func(dst, src *config.Config) { dst.MaxSkills = src.MaxSkills },
	"summary":    func(dst, src *config.Config) { dst.SummaryCount = src.SummaryCount },
	"validate":   func(dst, src *config.Config) { dst.ValidateOutput = src.ValidateOutput },
	"log-level":  func(dst, src *config.Config) { dst.Log.Level = src.Log.Level },
	"log-format": func(dst, src *config.Config) { dst.Log.Format = src.Log.Format },
}

// applyConfigFile loads --config and lets explicitly set flags win over it.
func (o *generateOptions) applyConfigFile(cmd *cobra.Command) error {
	if o.configPath == "" {
		return nil
	}

	fileCfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := fileCfg.Validate(); err != nil {
		return err
	}

	// Log settings the file leaves out keep the root flag or environment values.
	defaults := config.Default()
	defaults.Log = o.cfg.Log
	merged := fileCfg.MergeWithDefaults(defaults)
	for name, apply := range flagFields {
		if cmd.Flags().Changed(name) {
			apply(&merged, &o.cfg)
		}
	}
	o.cfg = merged
	return nil
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg := opts.cfg
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	logger := logging.Ctx(initLogger(cmd, cfg.Log))

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	genOpts := cfg.GeneratorOptions()
	if opts.now != nil {
		genOpts.Now = opts.now
	}
	gen, err := generator.NewSeeded(seed, genOpts)
	if err != nil {
		return err
	}

	logger.Debug().
		Int("count", cfg.Count).
		Uint64("seed", seed).
		Str("id_style", genOpts.IDStyle).
		Str("output", cfg.Output).
		Msg("starting batch")

	printer := observability.NewPrinter(cmd.OutOrStdout())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Generating sample CV data...")

	records, err := gen.Batch(cfg.Count, func(index int, record *types.CVRecord) {
		printer.PrintProgress(index, record)
		if opts.verbose {
			printer.PrintRecord(record)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to generate batch: %w", err)
	}

	if err := artifact.Write(cfg.Output, records); err != nil {
		logger.Error().Err(err).Str("output", cfg.Output).Msg("failed to write batch")
		return err
	}
	logger.Info().Int("count", len(records)).Str("output", cfg.Output).Msg("batch written")

	if cfg.ValidateOutput {
		if err := validateFile(cmd, cfg.Output, validation.Options{MinSkills: genOpts.MinSkills, MaxSkills: genOpts.MaxSkills}); err != nil {
			return err
		}
	}

	printer.PrintBatchSummary(records, cfg.Output, cfg.SummaryCount)
	return nil
}

// errValidationFailed is returned when a batch file breaks the schema or an invariant.
var errValidationFailed = errors.New("validation failed")

// validateFile runs schema and invariant checks on a batch file and prints the outcome.
func validateFile(cmd *cobra.Command, path string, bounds validation.Options) error {
	out := cmd.OutOrStdout()

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := schemas.ValidateBatch(content); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintln(out, "Validation failed")
			_, _ = fmt.Fprint(out, validationErr.Error())
			return errValidationFailed
		}
		return fmt.Errorf("failed to validate %s against schema: %w", path, err)
	}

	records, err := artifact.Decode(content)
	if err != nil {
		return err
	}

	violations := validation.ValidateBatch(records, bounds)
	printer := observability.NewPrinter(out)
	printer.PrintViolations(violations)

	if violations.HasErrors() {
		_, _ = fmt.Fprintln(out, "Validation failed")
		return errValidationFailed
	}

	_, _ = fmt.Fprintf(out, "Validation passed: %d CVs in %s\n", len(records), path)
	return nil
}
