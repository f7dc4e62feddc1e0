// Package tasks orchestrates contact book exports.
//
// [ExportBook] writes the book in one or more formats (csv, markdown, txt)
// into an output directory and drops an export_manifest.json summarizing the
// produced files. Unknown formats fail the whole export up front rather than
// producing a partial directory.
package tasks
