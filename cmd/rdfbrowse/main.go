// rdfbrowse shows the conversion plan for a set of inputs in a terminal UI:
// which files would be converted, where their output would land, and what
// their parsed graphs look like. It never writes anything.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hoijui/rdfconvert/internal/convert"
	"github.com/hoijui/rdfconvert/internal/planapp"
	"github.com/hoijui/rdfconvert/internal/rdfio"
	"github.com/hoijui/rdfconvert/tui"
)

func main() {
	var (
		fromFormat = flag.String("from", "", "serialization format of the input files")
		fromExt    = flag.String("from-ext", "", "comma-separated input extensions overriding the format defaults")
		toFormat   = flag.String("to", "", "serialization format of the output")
		toExt      = flag.String("to-ext", "", "output extension overriding the format default")
		outputDir  = flag.String("o", "", "output directory the plan would write to (omit for stdout)")
		recursive  = flag.Bool("R", false, "browse input directories recursively")
		noTree     = flag.Bool("n", false, "plan a flat output directory instead of mirroring the tree")
	)
	flag.Parse()

	if *fromFormat == "" || *toFormat == "" || flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: rdfbrowse -from FORMAT -to FORMAT [flags] INPUT...")
		os.Exit(2)
	}

	var extensions []string
	if *fromExt != "" {
		extensions = strings.Split(*fromExt, ",")
	}

	req := convert.Request{
		Inputs:          flag.Args(),
		InputFormat:     *fromFormat,
		OutputFormat:    *toFormat,
		InputExtensions: extensions,
		OutputExtension: *toExt,
		Recursive:       *recursive,
		FlattenTree:     *noTree,
		OutputDir:       *outputDir,
	}

	model := tui.NewModel(func() (*planapp.Plan, error) {
		return planapp.Load(req, rdfio.NewToolkit(), nil)
	})
	if _, err := tea.NewProgram(model).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		os.Exit(1)
	}
}
