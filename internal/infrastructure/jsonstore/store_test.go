package jsonstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type document struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func TestWriteDocument_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "doc.json")
	in := document{Name: "playprep", Count: 3, Tags: []string{"a", "b"}}

	if err := WriteDocument(path, in, false); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out document
	if err := ReadDocument(path, &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Name != in.Name || out.Count != in.Count || len(out.Tags) != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestWriteDocument_Indent(t *testing.T) {
	dir := t.TempDir()

	compactPath := filepath.Join(dir, "compact.json")
	if err := WriteDocument(compactPath, document{Name: "x"}, false); err != nil {
		t.Fatalf("write compact: %v", err)
	}
	indentedPath := filepath.Join(dir, "indented.json")
	if err := WriteDocument(indentedPath, document{Name: "x"}, true); err != nil {
		t.Fatalf("write indented: %v", err)
	}

	compact, err := os.ReadFile(compactPath)
	if err != nil {
		t.Fatalf("read compact: %v", err)
	}
	indented, err := os.ReadFile(indentedPath)
	if err != nil {
		t.Fatalf("read indented: %v", err)
	}

	if strings.Contains(string(compact), "\n  ") {
		t.Fatalf("compact output should not be indented: %s", compact)
	}
	if !strings.Contains(string(indented), "\n  \"name\"") {
		t.Fatalf("expected two-space indentation: %s", indented)
	}
}

func TestWriteDocument_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := WriteDocument(path, document{Name: "first"}, false); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := WriteDocument(path, document{Name: "second"}, false); err != nil {
		t.Fatalf("write second: %v", err)
	}

	var out document
	if err := ReadDocument(path, &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Name != "second" {
		t.Fatalf("expected the replacement document, got %+v", out)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files should not linger: %d entries", len(entries))
	}
}

func TestReadDocument_MissingFile(t *testing.T) {
	var out document
	if err := ReadDocument(filepath.Join(t.TempDir(), "nope.json"), &out); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}
