package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/timon-lang/timon/internal/obslog"
	"github.com/timon-lang/timon/lang/errors"
)

var (
	flagStage    string
	flagVerbose  bool
	flagNoColor  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "timon <source-file>",
		Short: "Timon interpreter",
		Long:  "Timon runs a source file through the lexer, parser, and evaluator, reporting the requested pipeline stage's artifact.",
		Args:  cobra.ExactArgs(1),
		RunE:  runTimon,
	}

	rootCmd.Flags().StringVar(&flagStage, "stage", "execution", "pipeline stage to run: lexer, parser, or execution")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable development-mode logging")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colorized diagnostic output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTimon(cmd *cobra.Command, args []string) error {
	if flagNoColor {
		color.NoColor = true
	}

	switch flagStage {
	case "lexer", "parser", "execution":
	default:
		return fmt.Errorf("invalid --stage %q: must be lexer, parser, or execution", flagStage)
	}

	logger, err := obslog.New(flagVerbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	runID := uuid.New().String()
	logger = logger.With("run_id", runID)

	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	diag := runPipeline(string(source), flagStage, logger, os.Stdout)
	if diag != nil {
		renderDiagnostic(diag)
		os.Exit(1)
	}
	return nil
}

func renderDiagnostic(diag *errors.Diagnostic) {
	kind := color.New(color.FgRed, color.Bold).Sprint(diag.Kind.String())
	fmt.Fprintf(os.Stderr, "%s at %d:%d: %s\n", kind, diag.Position.Line, diag.Position.Column, diag.Message)
}
