// Package rdfjson implements the W3C RDF/JSON dialect (the "rdf-json"
// format) on top of the rdf-go statement model. The dialect maps each graph
// to a JSON object keyed by subject, then by predicate, with an array of
// value objects per predicate:
//
//	{"http://ex/s": {"http://ex/p": [{"type": "literal", "value": "x"}]}}
//
// Blank nodes are written as "_:id" subject keys and as value objects of
// type "bnode". Named-graph context is not representable in this dialect;
// quads are flattened onto their triples.
package rdfjson

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"
)

const (
	typeURI     = "uri"
	typeLiteral = "literal"
	typeBnode   = "bnode"
)

// valueObject is one object position entry.
type valueObject struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Lang     string `json:"lang,omitempty"`
	Datatype string `json:"datatype,omitempty"`
}

// Encode writes statements as an RDF/JSON document. Subjects and predicates
// are emitted in sorted order so output is deterministic.
func Encode(w io.Writer, statements []rdf.Statement) error {
	doc := make(map[string]map[string][]valueObject)
	for _, st := range statements {
		subj, err := subjectKey(st.S)
		if err != nil {
			return err
		}
		preds, ok := doc[subj]
		if !ok {
			preds = make(map[string][]valueObject)
			doc[subj] = preds
		}
		obj, err := objectValue(st.O)
		if err != nil {
			return err
		}
		preds[st.P.Value] = append(preds[st.P.Value], obj)
	}

	for _, preds := range doc {
		for pred := range preds {
			objs := preds[pred]
			sort.Slice(objs, func(i, j int) bool {
				if objs[i].Value != objs[j].Value {
					return objs[i].Value < objs[j].Value
				}
				return objs[i].Type < objs[j].Type
			})
			preds[pred] = objs
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// Decode reads an RDF/JSON document into statements. Statement order follows
// sorted subject and predicate keys.
func Decode(r io.Reader) ([]rdf.Statement, error) {
	var doc map[string]map[string][]valueObject
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("rdf-json: decode document: %w", err)
	}

	subjects := make([]string, 0, len(doc))
	for subj := range doc {
		subjects = append(subjects, subj)
	}
	sort.Strings(subjects)

	var statements []rdf.Statement
	for _, subj := range subjects {
		preds := doc[subj]
		names := make([]string, 0, len(preds))
		for pred := range preds {
			names = append(names, pred)
		}
		sort.Strings(names)

		sTerm := subjectTerm(subj)
		for _, pred := range names {
			for _, obj := range preds[pred] {
				oTerm, err := objectTerm(obj)
				if err != nil {
					return nil, err
				}
				statements = append(statements, rdf.Statement{
					S: sTerm,
					P: rdf.IRI{Value: pred},
					O: oTerm,
				})
			}
		}
	}
	return statements, nil
}

func subjectKey(t rdf.Term) (string, error) {
	switch term := t.(type) {
	case rdf.IRI:
		return term.Value, nil
	case rdf.BlankNode:
		return "_:" + term.ID, nil
	default:
		return "", fmt.Errorf("rdf-json: unsupported subject term %T", t)
	}
}

func subjectTerm(key string) rdf.Term {
	if id, ok := strings.CutPrefix(key, "_:"); ok {
		return rdf.BlankNode{ID: id}
	}
	return rdf.IRI{Value: key}
}

func objectValue(t rdf.Term) (valueObject, error) {
	switch term := t.(type) {
	case rdf.IRI:
		return valueObject{Type: typeURI, Value: term.Value}, nil
	case rdf.BlankNode:
		return valueObject{Type: typeBnode, Value: "_:" + term.ID}, nil
	case rdf.Literal:
		return valueObject{
			Type:     typeLiteral,
			Value:    term.Lexical,
			Lang:     term.Lang,
			Datatype: term.Datatype.Value,
		}, nil
	default:
		return valueObject{}, fmt.Errorf("rdf-json: unsupported object term %T", t)
	}
}

func objectTerm(obj valueObject) (rdf.Term, error) {
	switch obj.Type {
	case typeURI:
		return rdf.IRI{Value: obj.Value}, nil
	case typeBnode:
		return rdf.BlankNode{ID: strings.TrimPrefix(obj.Value, "_:")}, nil
	case typeLiteral:
		lit := rdf.Literal{Lexical: obj.Value, Lang: obj.Lang}
		if obj.Datatype != "" {
			lit.Datatype = rdf.IRI{Value: obj.Datatype}
		}
		return lit, nil
	default:
		return nil, fmt.Errorf("rdf-json: unknown value type %q", obj.Type)
	}
}
