// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing the contact book:
//  1. [ContactListView] : Browse all contacts
//  2. [ContactDetailView] : Inspect one contact's phones and birthday
//  3. [RemindersView] : Contacts with birthdays inside the reminder window
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// The book is local, so there is no asynchronous fetching; the lists are built
// at construction and rebuilt when returning from a view.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, b, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
