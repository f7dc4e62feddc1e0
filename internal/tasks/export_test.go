package tasks

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	tu "github.com/desertthunder/rolo/internal/testing"
)

func TestExportBook(t *testing.T) {
	book := tu.SeedBook([]tu.SeedEntry{
		{Name: "alice", Phones: []string{"1234567890"}, Birthday: "01.01.2000"},
		{Name: "bob"},
	})

	t.Run("writes all formats by default", func(t *testing.T) {
		outputDir := filepath.Join(t.TempDir(), "export")

		result, err := ExportBook(book, ExportOpts{OutputDir: outputDir})
		if err != nil {
			t.Fatalf("ExportBook failed: %v", err)
		}

		if result.Contacts != 2 {
			t.Errorf("expected 2 contacts, got %d", result.Contacts)
		}
		if len(result.Files) != 3 {
			t.Fatalf("expected 3 files, got %d: %v", len(result.Files), result.Files)
		}

		for _, file := range result.Files {
			if _, err := os.Stat(file); err != nil {
				t.Errorf("file %s should exist: %v", file, err)
			}
		}

		manifest, err := os.ReadFile(result.Manifest)
		if err != nil {
			t.Fatalf("manifest should exist: %v", err)
		}

		var decoded ExportResult
		if err := json.Unmarshal(manifest, &decoded); err != nil {
			t.Fatalf("manifest is not valid JSON: %v", err)
		}
		if decoded.Contacts != 2 || decoded.OutputDirectory != outputDir {
			t.Errorf("unexpected manifest contents: %+v", decoded)
		}
	})

	t.Run("limits to requested formats", func(t *testing.T) {
		outputDir := filepath.Join(t.TempDir(), "export")

		result, err := ExportBook(book, ExportOpts{Formats: []string{"csv"}, OutputDir: outputDir})
		if err != nil {
			t.Fatalf("ExportBook failed: %v", err)
		}

		if len(result.Files) != 1 {
			t.Fatalf("expected 1 file, got %v", result.Files)
		}
	})

	t.Run("rejects unknown formats before writing", func(t *testing.T) {
		outputDir := filepath.Join(t.TempDir(), "export")

		if _, err := ExportBook(book, ExportOpts{Formats: []string{"xml"}, OutputDir: outputDir}); err == nil {
			t.Fatal("expected error for unknown format")
		}

		if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
			t.Error("failed export should not create the output directory")
		}
	})
}
