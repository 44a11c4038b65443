package convert

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hoijui/rdfconvert/internal/rdfio"
)

// Request is one resolved invocation of the converter. It is built once from
// the CLI surface and shared read-only across all processed files.
type Request struct {
	Inputs          []string
	InputFormat     string
	OutputFormat    string
	InputExtensions []string // empty means registry defaults for InputFormat
	OutputExtension string   // empty means registry default for OutputFormat
	Recursive       bool
	FlattenTree     bool
	OutputDir       string // empty means write to stdout
	Force           bool
	Simulate        bool
}

// Driver runs conversions: per input root it discovers files, then per file
// parses, resolves the output path, authorizes overwrites, and materializes
// the result. Processing is strictly sequential; the first fatal condition
// aborts the whole run. The only recovered condition is a declined overwrite
// prompt, which skips that single file.
type Driver struct {
	parser     rdfio.GraphParser
	serializer rdfio.GraphSerializer
	confirm    Confirmer
	stdout     io.Writer
	log        *slog.Logger
}

// NewDriver wires a Driver. A nil logger falls back to slog.Default().
func NewDriver(parser rdfio.GraphParser, serializer rdfio.GraphSerializer, confirm Confirmer, stdout io.Writer, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	return &Driver{
		parser:     parser,
		serializer: serializer,
		confirm:    confirm,
		stdout:     stdout,
		log:        log,
	}
}

// Run processes all input roots of the request in order.
func (d *Driver) Run(req Request) error {
	extensions := req.InputExtensions
	if len(extensions) == 0 {
		defaults, err := DefaultInputExtensions(req.InputFormat)
		if err != nil {
			return err
		}
		extensions = defaults
	}

	outputExt := req.OutputExtension
	if outputExt == "" {
		ext, err := DefaultOutputExtension(req.OutputFormat)
		if err != nil {
			return err
		}
		outputExt = ext
	}

	d.log.Debug("request resolved",
		"from", req.InputFormat,
		"to", req.OutputFormat,
		"input_extensions", extensions,
		"output_extension", outputExt)

	discoverer := NewDiscoverer(d.log)

	for _, root := range req.Inputs {
		d.log.Debug("processing input root", "root", root)

		files, err := discoverer.Discover(root, extensions, req.Recursive)
		if err != nil {
			return err
		}

		if req.OutputDir != "" {
			if _, err := os.Stat(req.OutputDir); err != nil {
				return fmt.Errorf("%w: %q", ErrOutputDirNotFound, req.OutputDir)
			}
		}

		for _, file := range files {
			if err := d.convertFile(file, req, outputExt); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Driver) convertFile(file DiscoveredFile, req Request, outputExt string) error {
	d.log.Debug("parsing input file", "path", file.AbsolutePath, "format", req.InputFormat)

	graph, err := d.parser.Parse(file.AbsolutePath, req.InputFormat)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrParseFailure, file.AbsolutePath, err)
	}

	target, err := ResolveOutput(file, req.OutputDir, req.FlattenTree, outputExt)
	if err != nil {
		return err
	}

	if target.Stdout {
		var buf bytes.Buffer
		if err := d.serializer.Serialize(graph, req.OutputFormat, &buf); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrSerializeFailure, file.AbsolutePath, err)
		}
		_, err := d.stdout.Write(buf.Bytes())
		return err
	}

	d.log.Debug("resolved output file", "target", target.TargetPath)

	if _, err := os.Stat(target.TargetPath); err == nil && !req.Force {
		ok, err := d.confirm.Confirm(fmt.Sprintf("Overwrite %s? (y/n): ", target.TargetPath))
		if err != nil {
			return err
		}
		if !ok {
			d.log.Debug("skipping file after declined overwrite", "target", target.TargetPath)
			return nil
		}
	}

	if _, err := os.Stat(target.TargetDir); os.IsNotExist(err) {
		if req.Simulate {
			fmt.Fprintf(d.stdout, "Simulation: this directory tree would be written: %s\n", target.TargetDir)
		} else {
			d.log.Debug("creating output directory", "dir", target.TargetDir)
			if err := os.MkdirAll(target.TargetDir, 0o755); err != nil {
				return fmt.Errorf("create output directory %q: %w", target.TargetDir, err)
			}
		}
	}

	if req.Simulate {
		fmt.Fprintf(d.stdout, "Simulation: this file would be written: %s\n", target.TargetPath)
		return nil
	}

	out, err := os.Create(target.TargetPath)
	if err != nil {
		return fmt.Errorf("create output file %q: %w", target.TargetPath, err)
	}
	if err := d.serializer.Serialize(graph, req.OutputFormat, out); err != nil {
		out.Close()
		return fmt.Errorf("%w: %q: %w", ErrSerializeFailure, target.TargetPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output file %q: %w", target.TargetPath, err)
	}

	d.log.Debug("output file written", "path", target.TargetPath)
	return nil
}
