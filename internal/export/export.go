package export

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/samosastudio/samosa/internal/scene"
	"gopkg.in/yaml.v3"
)

// Entry is one settings combination and the prompt composed from it
type Entry struct {
	Lighting   string `json:"lighting" yaml:"lighting" parquet:"lighting,dict"`
	Background string `json:"background" yaml:"background" parquet:"background,dict"`
	Sauce      string `json:"sauce" yaml:"sauce" parquet:"sauce,dict"`
	Plate      string `json:"plate" yaml:"plate" parquet:"plate,dict"`
	Angle      string `json:"angle" yaml:"angle" parquet:"angle,dict"`
	Prompt     string `json:"prompt" yaml:"prompt" parquet:"prompt"`
}

// Catalog is the YAML document layout
type Catalog struct {
	Template string  `yaml:"template"`
	Count    int     `yaml:"count"`
	Entries  []Entry `yaml:"entries"`
}

// Build composes a prompt for every settings value in all
func Build(all []scene.Settings) ([]Entry, error) {
	entries := make([]Entry, 0, len(all))
	for _, s := range all {
		prompt, err := scene.Compose(s)
		if err != nil {
			return nil, fmt.Errorf("failed to compose prompt for %+v: %w", s, err)
		}
		entries = append(entries, Entry{
			Lighting:   string(s.Lighting),
			Background: string(s.Background),
			Sauce:      string(s.Sauce),
			Plate:      string(s.Plate),
			Angle:      string(s.Angle),
			Prompt:     prompt,
		})
	}
	return entries, nil
}

// WriteFile writes entries to path, picking the format from the extension
func WriteFile(path string, entries []Entry) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".parquet", ".yaml", ".yml", ".jsonl":
	default:
		return fmt.Errorf("unsupported file format: %s (supported: .parquet, .yaml, .jsonl)", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	switch ext {
	case ".parquet":
		err = WriteParquet(file, entries)
	case ".jsonl":
		err = WriteJSONL(file, entries)
	default:
		err = WriteYAML(file, entries)
	}
	if err != nil {
		return err
	}

	slog.Info("Prompt catalog written", "path", path, "entries", len(entries))
	return nil
}

func WriteYAML(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Catalog{
		Template: scene.BaseTemplate,
		Count:    len(entries),
		Entries:  entries,
	}); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}

func WriteParquet(w io.Writer, entries []Entry) error {
	writer := parquet.NewGenericWriter[Entry](w)
	if _, err := writer.Write(entries); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

func WriteJSONL(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to encode entry: %w", err)
		}
	}
	return nil
}
