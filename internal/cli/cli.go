// Package cli parses command-line arguments into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/codegengo/internal/app"
	"github.com/specialistvlad/codegengo/internal/options"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("codegengo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
codegengo - A declarative, manifest-driven code generation orchestrator.

Usage:
  codegengo [options] [MODEL_PATH]

Arguments:
  MODEL_PATH
    Path to a directory containing .hcl model definition files.

Options:
`)
		flagSet.PrintDefaults()
	}

	modelsFlag := flagSet.String("models", "", "Path to the model definitions directory.")
	mFlag := flagSet.String("m", "", "Path to the model definitions directory (shorthand).")
	manifestsFlag := flagSet.String("manifests", "manifests", "Comma-separated search path for generator manifests.")
	templatesFlag := flagSet.String("templates", "templates", "Root directory templates are resolved under.")
	sourceOutFlag := flagSet.String("source-output", "generated/sources", "Directory for generated source files.")
	resourceOutFlag := flagSet.String("resource-output", "generated/resources", "Directory for generated resource files.")
	resourceCompanionFlag := flagSet.String("resource-companion", "", "Optional second location for generated resources.")
	outputFlag := flagSet.String("output", "", "Filesystem root for generic generated files (sets "+options.KeyOutput+").")
	generatorsFlag := flagSet.String("generators", "", "Comma-separated name patterns; a generator is kept iff its name matches one (sets "+options.KeyGenerators+").")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Record writes in memory and report them instead of touching disk.")

	opts := map[string]string{}
	flagSet.Func("option", "Extra option as key=value; passed through to expressions and templates. Repeatable.", func(s string) error {
		key, value, found := strings.Cut(s, "=")
		if !found || key == "" {
			return fmt.Errorf("expected key=value, got %q", s)
		}
		opts[key] = value
		return nil
	})

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	modelPath := ""
	if *modelsFlag != "" {
		modelPath = *modelsFlag
	} else if *mFlag != "" {
		modelPath = *mFlag
	} else if flagSet.NArg() > 0 {
		modelPath = flagSet.Arg(0)
	}

	if modelPath == "" {
		slog.Debug("No model path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *outputFlag != "" {
		opts[options.KeyOutput] = *outputFlag
	}
	if *generatorsFlag != "" {
		opts[options.KeyGenerators] = *generatorsFlag
	}

	var manifestPaths []string
	for _, p := range strings.Split(*manifestsFlag, ",") {
		if p = strings.TrimSpace(p); p != "" {
			manifestPaths = append(manifestPaths, p)
		}
	}

	config, err := app.NewConfig(app.Config{
		ManifestPaths:     manifestPaths,
		ModelPath:         modelPath,
		TemplatePath:      *templatesFlag,
		SourceOutput:      *sourceOutFlag,
		ResourceOutput:    *resourceOutFlag,
		ResourceCompanion: *resourceCompanionFlag,
		Options:           opts,
		LogFormat:         logFormat,
		LogLevel:          logLevel,
		DryRun:            *dryRunFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
