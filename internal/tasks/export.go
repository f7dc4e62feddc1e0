package tasks

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/desertthunder/rolo/internal/formatter"
	"github.com/desertthunder/rolo/internal/models"
	"github.com/desertthunder/rolo/internal/shared"
)

// ExportOpts contains configuration for contact book exports.
type ExportOpts struct {
	Formats   []string // Export formats: csv, markdown, txt (default: all)
	OutputDir string   // Base output directory (default: rolo_export_{epoch})
	Title     string   // Title for the Markdown rendering
}

// ExportResult summarizes a completed export.
type ExportResult struct {
	OutputDirectory string   `json:"output_directory"`
	Contacts        int      `json:"contacts"`
	Files           []string `json:"files"`
	Manifest        string   `json:"-"`
}

var exporters = map[string]func(book *models.AddressBook, base, title string) (string, error){
	"csv": func(book *models.AddressBook, base, _ string) (string, error) {
		return formatter.WriteCSVExport(book, base)
	},
	"markdown": func(book *models.AddressBook, base, title string) (string, error) {
		return formatter.WriteMarkdownExport(book, base, title)
	},
	"txt": func(book *models.AddressBook, base, _ string) (string, error) {
		return formatter.WriteTextExport(book, base)
	},
}

// ExportBook writes the book in each requested format and a JSON manifest
// summarizing the result.
func ExportBook(book *models.AddressBook, opts ExportOpts) (*ExportResult, error) {
	if len(opts.Formats) == 0 {
		opts.Formats = []string{"csv", "markdown", "txt"}
	}
	for _, format := range opts.Formats {
		if _, ok := exporters[format]; !ok {
			return nil, fmt.Errorf("%w: unsupported format %q", shared.ErrInvalidFlag, format)
		}
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("rolo_export_%d", time.Now().Unix())
	}
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &ExportResult{
		OutputDirectory: opts.OutputDir,
		Contacts:        book.Len(),
	}

	base := filepath.Join(opts.OutputDir, "rolo")
	for _, format := range opts.Formats {
		file, err := exporters[format](book, base, opts.Title)
		if err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", format, err)
		}
		result.Files = append(result.Files, file)
	}

	manifest, err := shared.MarshalJSON(result, true)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	if err := os.WriteFile(manifestPath, manifest, 0644); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}
	result.Manifest = manifestPath

	return result, nil
}
