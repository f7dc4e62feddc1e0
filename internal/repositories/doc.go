// Package repositories implements SQLite persistence for the address book.
//
// The book is stored as an explicit relational snapshot rather than an opaque
// blob: a contacts table keyed by generated UUID with a UNIQUE name column,
// and a phones table whose position column preserves phone insertion order.
// [ContactRepository.Save] replaces the whole snapshot in one transaction;
// [ContactRepository.Load] rebuilds the book in sequence order, so a
// save/load round trip preserves names, phone order, and birthdays.
//
// Sequence numbers provide stable, human-readable contact ordering
// independent of UUIDs. The [NextSequence] function atomically increments the
// per-table counter in a dedicated sequence table.
package repositories
