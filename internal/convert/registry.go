package convert

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// inputExtensions maps each input format identifier to its default file
// extensions, in matching order. The table is fixed at build time.
var inputExtensions = map[string][]string{
	"application/rdf+xml": {".xml", ".rdf", ".owl"},
	"text/html":           {".html"},
	"xml":                 {".xml", ".rdf", ".owl"},
	"rdf-json":            {".json"},
	"json-ld":             {".jsonld", ".json-ld"},
	"ttl":                 {".ttl"},
	"nt":                  {".nt"},
	"nquads":              {".nq"},
	"trix":                {".xml", ".trix"},
	"rdfa":                {".xhtml", ".html"},
	"n3":                  {".n3"},
}

// outputExtension maps each output format identifier to the default
// extension of written files.
var outputExtension = map[string]string{
	"xml":        ".xml",
	"pretty-xml": ".xml",
	"rdf-json":   ".json",
	"json-ld":    ".jsonld",
	"nt":         ".nt",
	"nquads":     ".nq",
	"trix":       ".xml",
	"ttl":        ".ttl",
	"n3":         ".n3",
}

// inputFormatOrder and outputFormatOrder fix the listing order used in help
// output. Map iteration order would shuffle the tables between runs.
var inputFormatOrder = []string{
	"application/rdf+xml", "text/html", "xml", "rdf-json", "json-ld",
	"ttl", "nt", "nquads", "trix", "rdfa", "n3",
}

var outputFormatOrder = []string{
	"xml", "pretty-xml", "rdf-json", "json-ld", "nt", "nquads", "trix",
	"ttl", "n3",
}

// InputFormats returns all registered input format identifiers in listing order.
func InputFormats() []string {
	return append([]string(nil), inputFormatOrder...)
}

// OutputFormats returns all registered output format identifiers in listing order.
func OutputFormats() []string {
	return append([]string(nil), outputFormatOrder...)
}

// DefaultInputExtensions returns the default extensions matched when browsing
// input directories for the given format.
func DefaultInputExtensions(format string) ([]string, error) {
	exts, ok := inputExtensions[format]
	if !ok {
		return nil, unknownFormatError(format, inputFormatOrder)
	}
	return append([]string(nil), exts...), nil
}

// DefaultOutputExtension returns the extension written for the given output
// format.
func DefaultOutputExtension(format string) (string, error) {
	ext, ok := outputExtension[format]
	if !ok {
		return "", unknownFormatError(format, outputFormatOrder)
	}
	return ext, nil
}

func unknownFormatError(format string, known []string) error {
	if suggestion := closestFormat(format, known); suggestion != "" {
		return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownFormat, format, suggestion)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// closestFormat returns the nearest registered identifier for a mistyped
// one, or "" when nothing is close enough to suggest.
func closestFormat(format string, known []string) string {
	const maxDistance = 4
	best, bestDist := "", maxDistance+1
	for _, candidate := range known {
		if d := fuzzy.LevenshteinDistance(strings.ToLower(format), candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
