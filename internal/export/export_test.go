package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/samosastudio/samosa/internal/scene"
	"gopkg.in/yaml.v3"
)

func TestBuild(t *testing.T) {
	entries, err := Build(scene.All())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(entries) != 1024 {
		t.Fatalf("Expected 1024 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Lighting != "warm" || first.Angle != "top-down" {
		t.Errorf("Unexpected first entry: %+v", first)
	}
	if !strings.HasSuffix(first.Prompt, scene.ClosingSentence) {
		t.Error("Prompt is missing the closing sentence")
	}

	if _, err := Build([]scene.Settings{{Lighting: "neon"}}); err == nil {
		t.Error("Expected error for invalid settings")
	}
}

func TestWriteYAML(t *testing.T) {
	entries, _ := Build(scene.All()[:3])

	var buf bytes.Buffer
	if err := WriteYAML(&buf, entries); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(buf.Bytes(), &catalog); err != nil {
		t.Fatalf("Failed to parse YAML: %v", err)
	}
	if catalog.Count != 3 || len(catalog.Entries) != 3 {
		t.Errorf("Expected 3 entries, got count=%d len=%d", catalog.Count, len(catalog.Entries))
	}
	if catalog.Entries[2].Prompt != entries[2].Prompt {
		t.Error("Prompt did not survive YAML encoding")
	}
}

func TestWriteParquet(t *testing.T) {
	entries, _ := Build(scene.All()[:10])

	var buf bytes.Buffer
	if err := WriteParquet(&buf, entries); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	rows, err := parquet.Read[Entry](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("Failed to read parquet: %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("Expected 10 rows, got %d", len(rows))
	}
	if rows[9] != entries[9] {
		t.Errorf("Row mismatch: %+v vs %+v", rows[9], entries[9])
	}
}

func TestWriteFile(t *testing.T) {
	entries, _ := Build(scene.All()[:2])
	dir := t.TempDir()

	for _, name := range []string{"catalog.yaml", "catalog.parquet", "catalog.jsonl"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, entries); err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s: expected non-empty file", name)
		}
	}

	if err := WriteFile(filepath.Join(dir, "catalog.csv"), entries); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
