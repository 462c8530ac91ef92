package tokencss

import (
	"fmt"
	"io"

	"github.com/yacobolo/tokencss/internal/cssgen"
)

// DetermineOutputFormat selects the summary format from the flag value
func DetermineOutputFormat(formatFlag string) cssgen.OutputFormat {
	switch formatFlag {
	case "json":
		return cssgen.OutputJSON
	default:
		return cssgen.OutputText
	}
}

// OutputOptions controls how a generate result is reported
type OutputOptions struct {
	Format    cssgen.OutputFormat
	Verbose   bool
	UseColors bool
}

// WriteOutput writes the generate result in the specified format
func WriteOutput(w io.Writer, result *GenerateResult, opts OutputOptions) error {
	switch opts.Format {
	case cssgen.OutputJSON:
		return WriteJSON(w, result)

	case cssgen.OutputText:
		reporter := cssgen.NewReporter(w, cssgen.ReporterConfig{UseColors: opts.UseColors})
		reporter.PrintSummary(result.Summary)

		if opts.Verbose {
			verbose := cssgen.NewVerboseReporter(w, reporter.UseColors())
			verbose.PrintStatistics(result.Summary)
			verbose.PrintWarnings(result.Warnings)
		}
		return nil

	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}
