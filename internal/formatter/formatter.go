// package formatter provides functions to export the contact book to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/desertthunder/rolo/internal/models"
)

// ExportToCSV converts an address book to CSV format with columns: Name, Phones, Birthday
func ExportToCSV(book *models.AddressBook) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Name", "Phones", "Birthday"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, rec := range book.Records() {
		birthday := ""
		if b, ok := rec.Birthday(); ok {
			birthday = b.String()
		}
		record := []string{
			rec.Name(),
			rec.PhoneList(),
			birthday,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts an address book to Markdown format
func ExportToMarkdown(book *models.AddressBook, title string) ([]byte, error) {
	var buf bytes.Buffer

	if title == "" {
		title = "Contacts"
	}

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Contacts**: %d\n\n", book.Len()))

	for i, rec := range book.Records() {
		birthday := models.BirthdayNotSet
		if b, ok := rec.Birthday(); ok {
			birthday = b.String()
		}
		phones := rec.PhoneList()
		if phones == "" {
			phones = "none"
		}
		buf.WriteString(fmt.Sprintf("%d. **%s** - %s (birthday: %s)\n", i+1, rec.Name(), phones, birthday))
	}

	return buf.Bytes(), nil
}

// ExportToText converts an address book to plain text format
func ExportToText(book *models.AddressBook) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Contacts: %d\n\n", book.Len()))

	for _, rec := range book.Records() {
		buf.WriteString(rec.String())
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// WriteCSVExport exports the book to {base}_contacts.csv.
//
// Defaults to "rolo" as the base filename.
func WriteCSVExport(book *models.AddressBook, baseFilepath string) (string, error) {
	if baseFilepath == "" {
		baseFilepath = "rolo"
	}

	csvData, err := ExportToCSV(book)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	contactsFile := baseFilepath + "_contacts.csv"
	if err := os.WriteFile(contactsFile, csvData, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return contactsFile, nil
}

// WriteMarkdownExport exports the book to {base}_contacts.md.
func WriteMarkdownExport(book *models.AddressBook, baseFilepath, title string) (string, error) {
	if baseFilepath == "" {
		baseFilepath = "rolo"
	}

	mdData, err := ExportToMarkdown(book, title)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := baseFilepath + "_contacts.md"
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return mdFile, nil
}

// WriteTextExport exports the book to {base}_contacts.txt.
func WriteTextExport(book *models.AddressBook, baseFilepath string) (string, error) {
	if baseFilepath == "" {
		baseFilepath = "rolo"
	}

	textData, err := ExportToText(book)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	textFile := baseFilepath + "_contacts.txt"
	if err := os.WriteFile(textFile, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return textFile, nil
}
