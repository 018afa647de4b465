package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/metaprop/internal/app"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("metaprop", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
metaprop - prints the properties of a reflected class.

Usage:
  metaprop [options]

With no options, a TimeMachine is created and its properties are printed,
one line per property:

  name :  "DeLorean"

Options:
`)
		flagSet.PrintDefaults()
	}

	var assignments []app.Assignment
	classFlag := flagSet.String("class", "", "Name of the class to instantiate. Defaults to TimeMachine.")
	manifestsFlag := flagSet.String("manifests", "", "Path to an .hcl file or a directory of .hcl files declaring extra classes.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.Func("set", "Assign a property before printing, as name=value. May be repeated.", func(s string) error {
		a, err := app.ParseAssignment(s)
		if err != nil {
			return err
		}
		assignments = append(assignments, a)
		return nil
	})

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	config, err := app.NewConfig(app.Config{
		ClassName:     *classFlag,
		ManifestsPath: *manifestsFlag,
		Assignments:   assignments,
		LogFormat:     strings.ToLower(*logFormatFlag),
		LogLevel:      strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
