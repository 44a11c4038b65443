// Package planapp builds a read-only conversion plan for the browser TUI:
// every discovered input file together with its resolved output target and
// the statistics of its parsed graph. Nothing in this package writes to the
// filesystem.
package planapp

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/hoijui/rdfconvert/internal/convert"
	"github.com/hoijui/rdfconvert/internal/rdfio"
)

// sampleLimit caps how many statements are kept per entry for the detail view.
const sampleLimit = 25

// Entry describes one planned conversion.
type Entry struct {
	InputPath    string
	TargetPath   string // empty means the output would go to stdout
	TargetExists bool
	Statements   int
	Subjects     int
	Sample       []string
	Problem      string // parse or resolution failure, shown instead of stats
}

// Plan is the full set of planned conversions for one request.
type Plan struct {
	From    string
	To      string
	Entries []Entry
}

// Load discovers and inspects all inputs of the request. Unlike the
// conversion driver, per-file parse and resolution failures are recorded on
// the entry rather than aborting, so a broken file can be examined alongside
// healthy ones.
func Load(req convert.Request, parser rdfio.GraphParser, log *slog.Logger) (*Plan, error) {
	if log == nil {
		log = slog.Default()
	}

	extensions := req.InputExtensions
	if len(extensions) == 0 {
		defaults, err := convert.DefaultInputExtensions(req.InputFormat)
		if err != nil {
			return nil, err
		}
		extensions = defaults
	}

	outputExt := req.OutputExtension
	if outputExt == "" {
		ext, err := convert.DefaultOutputExtension(req.OutputFormat)
		if err != nil {
			return nil, err
		}
		outputExt = ext
	}

	discoverer := convert.NewDiscoverer(log)

	plan := &Plan{From: req.InputFormat, To: req.OutputFormat}
	for _, root := range req.Inputs {
		files, err := discoverer.Discover(root, extensions, req.Recursive)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			plan.Entries = append(plan.Entries, inspect(file, req, outputExt, parser))
		}
	}
	return plan, nil
}

func inspect(file convert.DiscoveredFile, req convert.Request, outputExt string, parser rdfio.GraphParser) Entry {
	entry := Entry{InputPath: file.AbsolutePath}

	target, err := convert.ResolveOutput(file, req.OutputDir, req.FlattenTree, outputExt)
	switch {
	case err != nil:
		entry.Problem = err.Error()
		return entry
	case !target.Stdout:
		entry.TargetPath = target.TargetPath
		if _, err := os.Stat(target.TargetPath); err == nil {
			entry.TargetExists = true
		}
	}

	graph, err := parser.Parse(file.AbsolutePath, req.InputFormat)
	if err != nil {
		entry.Problem = err.Error()
		return entry
	}

	entry.Statements = graph.Len()
	subjects := make(map[string]struct{})
	for _, st := range graph.Statements() {
		subjects[st.S.String()] = struct{}{}
		if len(entry.Sample) < sampleLimit {
			entry.Sample = append(entry.Sample, renderStatement(st))
		}
	}
	entry.Subjects = len(subjects)
	return entry
}

func renderStatement(st rdf.Statement) string {
	if st.G != nil {
		return fmt.Sprintf("%s %s %s %s", st.S, st.P.Value, st.O, st.G)
	}
	return fmt.Sprintf("%s %s %s", st.S, st.P.Value, st.O)
}

// Filter performs a fuzzy search over input and target paths.
func Filter(entries []Entry, query string) []Entry {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return append([]Entry(nil), entries...)
	}

	choices := make([]string, len(entries))
	for i, entry := range entries {
		choices[i] = strings.ToLower(entry.InputPath + " " + entry.TargetPath)
	}

	matches := fuzzy.RankFindNormalizedFold(query, choices)
	if len(matches) == 0 {
		return nil
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	result := make([]Entry, 0, len(matches))
	for _, match := range matches {
		result = append(result, entries[match.OriginalIndex])
	}
	return result
}
