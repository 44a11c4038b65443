package convertcli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleTurtle = "<http://example.org/s> <http://example.org/p> <http://example.org/o> .\n"

func writeTurtle(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, rel := range paths {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(sampleTurtle), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

func TestRunConvertsDirectoryTree(t *testing.T) {
	docs := t.TempDir()
	out := t.TempDir()
	writeTurtle(t, docs, "a/x.ttl", "b/x.ttl")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--from", "ttl", "--to", "nt", "-R", "-o", out, docs},
		&stdout, &stderr, strings.NewReader(""))
	if code != 0 {
		t.Fatalf("Run() exit code = %d, stderr = %s", code, stderr.String())
	}
	for _, rel := range []string{"a/x.nt", "b/x.nt"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err != nil {
			t.Fatalf("expected output %s: %v", rel, err)
		}
	}
}

func TestRunSingleFileToStdout(t *testing.T) {
	docs := t.TempDir()
	writeTurtle(t, docs, "data.ttl")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--from", "ttl", "--to", "nt", filepath.Join(docs, "data.ttl")},
		&stdout, &stderr, strings.NewReader(""))
	if code != 0 {
		t.Fatalf("Run() exit code = %d, stderr = %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "<http://example.org/s>") {
		t.Fatalf("stdout missing serialized triples: %q", stdout.String())
	}

	entries, err := os.ReadDir(docs)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("stdout mode touched the filesystem: %v", entries)
	}
}

func TestRunMissingInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--from", "ttl", "--to", "nt", filepath.Join(t.TempDir(), "nope.ttl")},
		&stdout, &stderr, strings.NewReader(""))
	if code != 1 {
		t.Fatalf("Run() exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "!!! ERROR:") || !strings.Contains(stderr.String(), "input not found") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRunMissingOutputDir(t *testing.T) {
	docs := t.TempDir()
	writeTurtle(t, docs, "data.ttl")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--from", "ttl", "--to", "nt", "-o", filepath.Join(docs, "missing"), docs},
		&stdout, &stderr, strings.NewReader(""))
	if code != 1 {
		t.Fatalf("Run() exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "output directory not found") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRunUnknownFormatSuggests(t *testing.T) {
	docs := t.TempDir()
	writeTurtle(t, docs, "data.ttl")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--from", "turtle", "--to", "nt", docs},
		&stdout, &stderr, strings.NewReader(""))
	if code != 1 {
		t.Fatalf("Run() exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "unknown format") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRunMissingRequiredFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--to", "nt", t.TempDir()}, &stdout, &stderr, strings.NewReader(""))
	if code != 2 {
		t.Fatalf("Run() exit code = %d, want 2", code)
	}
}

func TestRunSimulateWritesNothing(t *testing.T) {
	docs := t.TempDir()
	out := t.TempDir()
	writeTurtle(t, docs, "a/x.ttl")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--from", "ttl", "--to", "nt", "-R", "-s", "-o", out, docs},
		&stdout, &stderr, strings.NewReader(""))
	if code != 0 {
		t.Fatalf("Run() exit code = %d, stderr = %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Simulation: this file would be written:") {
		t.Fatalf("missing simulation message: %q", stdout.String())
	}
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatalf("read out dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("simulate created entries: %v", entries)
	}
}

func TestRunDeclinedOverwriteSkips(t *testing.T) {
	docs := t.TempDir()
	out := t.TempDir()
	writeTurtle(t, docs, "x.ttl")
	if err := os.WriteFile(filepath.Join(out, "x.nt"), []byte("keep\n"), 0o644); err != nil {
		t.Fatalf("seed output: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--from", "ttl", "--to", "nt", "-o", out, docs},
		&stdout, &stderr, strings.NewReader("n\n"))
	if code != 0 {
		t.Fatalf("Run() exit code = %d, stderr = %s", code, stderr.String())
	}
	if stderr.Len() != 0 {
		t.Fatalf("declined overwrite should not error: %q", stderr.String())
	}
	kept, err := os.ReadFile(filepath.Join(out, "x.nt"))
	if err != nil {
		t.Fatalf("read kept file: %v", err)
	}
	if string(kept) != "keep\n" {
		t.Fatalf("file was overwritten: %q", kept)
	}
	if !strings.Contains(stdout.String(), "Overwrite") {
		t.Fatalf("expected overwrite prompt on stdout: %q", stdout.String())
	}
}

func TestExtensionTablesListEverything(t *testing.T) {
	tables := extensionTables()
	for _, format := range []string{"application/rdf+xml", "json-ld", "nquads", "pretty-xml"} {
		if !strings.Contains(tables, format) {
			t.Fatalf("help tables missing %q:\n%s", format, tables)
		}
	}
}
