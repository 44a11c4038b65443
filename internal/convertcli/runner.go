// Package convertcli implements the rdfconvert command line front end.
package convertcli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/hoijui/rdfconvert/internal/convert"
	"github.com/hoijui/rdfconvert/internal/rdfio"
)

const helpWidth = 80

// runError marks failures of the conversion itself, as opposed to flag
// parsing errors, so Run can pick the exit code.
type runError struct{ err error }

func (e runError) Error() string { return e.err.Error() }
func (e runError) Unwrap() error { return e.err }

// Run executes the converter CLI with the provided arguments. Conversion
// failures exit 1, usage errors exit 2.
func Run(args []string, stdout, stderr io.Writer, stdin io.Reader) int {
	cmd := newCommand(stdout, stderr, stdin)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		var re runError
		if errors.As(err, &re) {
			fmt.Fprintf(stderr, "!!! ERROR: %v !!!\n", re.err)
			return 1
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	return 0
}

func newCommand(stdout, stderr io.Writer, stdin io.Reader) *cobra.Command {
	var (
		fromFormat string
		fromExt    []string
		recursive  bool
		outputDir  string
		toFormat   string
		toExt      string
		force      bool
		noTree     bool
		simulate   bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "rdfconvert INPUT...",
		Short: "Convert one RDF serialization into another",
		Long: wordwrap.String("Convert one RDF serialization into another. "+
			"Individual files are converted regardless of their extension; "+
			"directories are searched for files matching the input format's "+
			"default extensions (or the ones given with --from-ext), "+
			"optionally recursively, and the directory structure is mirrored "+
			"below the output directory unless --no-tree flattens it.",
			helpWidth) + "\n\n" + extensionTables(),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			if verbose {
				logger = slog.New(slog.NewTextHandler(stdout, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
			}

			// Surface bad format identifiers as argument validation,
			// before any filesystem work.
			if _, err := convert.DefaultInputExtensions(fromFormat); err != nil {
				return runError{err}
			}
			if _, err := convert.DefaultOutputExtension(toFormat); err != nil {
				return runError{err}
			}

			var confirm convert.Confirmer = convert.NewTerminalConfirmer(stdin, stdout)
			if force {
				confirm = convert.AlwaysConfirm{}
			}

			toolkit := rdfio.NewToolkit()
			driver := convert.NewDriver(toolkit, toolkit, confirm, stdout, logger)

			req := convert.Request{
				Inputs:          args,
				InputFormat:     fromFormat,
				OutputFormat:    toFormat,
				InputExtensions: fromExt,
				OutputExtension: toExt,
				Recursive:       recursive,
				FlattenTree:     noTree,
				OutputDir:       outputDir,
				Force:           force,
				Simulate:        simulate,
			}
			if err := driver.Run(req); err != nil {
				return runError{err}
			}
			return nil
		},
	}

	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&fromFormat, "from", "", "serialization format of the input files")
	flags.StringSliceVar(&fromExt, "from-ext", nil, "file extensions to match when browsing input directories (overrides the format defaults)")
	flags.BoolVarP(&recursive, "recursive", "R", false, "browse input directories recursively")
	flags.StringVarP(&outputDir, "output", "o", "", "directory to write the output files (omit to print to stdout)")
	flags.StringVar(&toFormat, "to", "", "serialization format of the output")
	flags.StringVar(&toExt, "to-ext", "", "file extension of the output files (overrides the format default; ignored without -o)")
	flags.BoolVarP(&force, "force", "f", false, "always overwrite existing output files instead of prompting")
	flags.BoolVarP(&noTree, "no-tree", "n", false, "write all output files into one flat directory instead of mirroring the input tree")
	flags.BoolVarP(&simulate, "simulate", "s", false, "do not write anything, just print what would be written")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbosely print debugging info")

	cobra.CheckErr(cmd.MarkFlagRequired("from"))
	cobra.CheckErr(cmd.MarkFlagRequired("to"))

	return cmd
}

// extensionTables renders the default extension tables shown at the end of
// the help text.
func extensionTables() string {
	var b strings.Builder
	b.WriteString("Default extensions for INPUT format:\n")
	for _, format := range convert.InputFormats() {
		exts, _ := convert.DefaultInputExtensions(format)
		fmt.Fprintf(&b, " - %-19s : %s\n", format, strings.Join(exts, " "))
	}
	b.WriteString("\nDefault extension for OUTPUT format:\n")
	for _, format := range convert.OutputFormats() {
		ext, _ := convert.DefaultOutputExtension(format)
		fmt.Fprintf(&b, " - %-10s : '%s'\n", format, ext)
	}
	return b.String()
}
