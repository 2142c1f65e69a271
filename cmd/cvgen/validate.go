package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/cvgen/internal/schemas"
	"github.com/jonathan/cvgen/internal/validation"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonPath   string
		schemaPath string
		minSkills  int
		maxSkills  int
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a CV batch file",
		Long: `Validates a batch file against the CV batch JSON Schema and the generator invariants
(distinct surnames, skill counts, experience windows, unique ids).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(jsonPath); os.IsNotExist(err) {
				return fmt.Errorf("batch file not found: %s", jsonPath)
			}

			if schemaPath != "" {
				if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
					var validationErr *schemas.ValidationError
					if errors.As(err, &validationErr) {
						_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation failed")
						_, _ = fmt.Fprint(cmd.OutOrStdout(), validationErr.Error())
						return errValidationFailed
					}
					return err
				}
			}

			return validateFile(cmd, jsonPath, validation.Options{MinSkills: minSkills, MaxSkills: maxSkills})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&jsonPath, "json", "", "Path to the batch JSON file (required)")
	flags.StringVar(&schemaPath, "schema", "", "Path to a JSON Schema file (defaults to the embedded CV batch schema)")
	flags.IntVar(&minSkills, "min-skills", 0, "Minimum skills the batch was generated with (0 leaves this bound unchecked)")
	flags.IntVar(&maxSkills, "max-skills", 0, "Maximum skills the batch was generated with (0 leaves this bound unchecked)")

	if err := cmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	return cmd
}
