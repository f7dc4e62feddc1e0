package main

import (
	"context"

	"github.com/desertthunder/rolo/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Export writes the contact book to the requested formats.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	book := r.loadBook()

	result, err := tasks.ExportBook(book, tasks.ExportOpts{
		Formats:   cmd.StringSlice("format"),
		OutputDir: cmd.String("output"),
		Title:     cmd.String("title"),
	})
	if err != nil {
		return err
	}

	r.logger.Info("export complete", "contacts", result.Contacts, "directory", result.OutputDirectory)

	r.writePlainln("Exported %d contacts to %s", result.Contacts, result.OutputDirectory)
	for _, file := range result.Files {
		r.writePlainln("  %s", file)
	}
	r.writePlainln("  %s", result.Manifest)

	return nil
}
