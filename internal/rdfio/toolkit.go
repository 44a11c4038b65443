// Package rdfio adapts an RDF toolkit behind two narrow capability
// interfaces so the conversion engine never depends on a concrete graph
// library. The bundled backend delegates to geoknoesis/rdf-go plus the
// in-repo RDF/JSON codec.
package rdfio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/hoijui/rdfconvert/internal/rdfjson"
)

// ErrFormatNotSupported reports a format identifier the backend has no codec
// for. The CLI accepts such identifiers for compatibility, but converting
// them needs a toolkit that implements them.
var ErrFormatNotSupported = errors.New("format not supported by this toolkit")

// Graph is the opaque parsed-graph handle passed from parser to serializer.
// The conversion engine never looks inside it.
type Graph struct {
	statements []rdf.Statement
}

// Len returns the number of parsed statements.
func (g *Graph) Len() int { return len(g.statements) }

// Statements returns the parsed statements. Intended for inspection tooling
// (the plan browser), not for the conversion engine.
func (g *Graph) Statements() []rdf.Statement { return g.statements }

// GraphParser parses one file in the named input format.
type GraphParser interface {
	Parse(path, format string) (*Graph, error)
}

// GraphSerializer writes a graph to a sink in the named output format.
type GraphSerializer interface {
	Serialize(g *Graph, format string, w io.Writer) error
}

// Toolkit is the bundled GraphParser/GraphSerializer implementation.
type Toolkit struct{}

// NewToolkit returns the rdf-go backed toolkit.
func NewToolkit() *Toolkit { return &Toolkit{} }

// inputFormats maps CLI input format identifiers onto rdf-go formats. The
// "n3" identifier maps to the Turtle codec; Turtle covers the N3 subset that
// actually occurs in data files. Identifiers absent here (trix, rdfa,
// text/html) have no codec in this backend.
var inputFormats = map[string]rdf.Format{
	"application/rdf+xml": rdf.FormatRDFXML,
	"xml":                 rdf.FormatRDFXML,
	"json-ld":             rdf.FormatJSONLD,
	"ttl":                 rdf.FormatTurtle,
	"nt":                  rdf.FormatNTriples,
	"nquads":              rdf.FormatNQuads,
	"n3":                  rdf.FormatTurtle,
}

var outputFormats = map[string]rdf.Format{
	"xml":        rdf.FormatRDFXML,
	"pretty-xml": rdf.FormatRDFXML,
	"json-ld":    rdf.FormatJSONLD,
	"nt":         rdf.FormatNTriples,
	"nquads":     rdf.FormatNQuads,
	"ttl":        rdf.FormatTurtle,
	"n3":         rdf.FormatTurtle,
}

// Parse reads and parses the file at path.
func (t *Toolkit) Parse(path, format string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	if format == "rdf-json" {
		statements, err := rdfjson.Decode(f)
		if err != nil {
			return nil, err
		}
		return &Graph{statements: statements}, nil
	}

	rdfFormat, ok := inputFormats[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormatNotSupported, format)
	}

	reader, err := rdf.NewReader(f, rdfFormat)
	if err != nil {
		return nil, fmt.Errorf("open %s reader: %w", format, err)
	}
	defer reader.Close()

	var statements []rdf.Statement
	for {
		st, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %q as %s: %w", path, format, err)
		}
		statements = append(statements, st)
	}
	return &Graph{statements: statements}, nil
}

// Serialize writes g to w.
func (t *Toolkit) Serialize(g *Graph, format string, w io.Writer) error {
	if format == "rdf-json" {
		return rdfjson.Encode(w, g.statements)
	}

	rdfFormat, ok := outputFormats[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFormatNotSupported, format)
	}

	writer, err := rdf.NewWriter(w, rdfFormat)
	if err != nil {
		return fmt.Errorf("open %s writer: %w", format, err)
	}
	for _, st := range g.statements {
		if err := writer.Write(st); err != nil {
			return fmt.Errorf("serialize as %s: %w", format, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush %s output: %w", format, err)
	}
	return writer.Close()
}
