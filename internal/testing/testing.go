// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"

	"github.com/desertthunder/rolo/internal/models"
)

// MockStore is an in-memory test double for [models.BookStore]
type MockStore struct {
	Book      *models.AddressBook
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (m *MockStore) Load() (*models.AddressBook, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Book == nil {
		return models.NewAddressBook(), nil
	}
	return m.Book, nil
}

func (m *MockStore) Save(book *models.AddressBook) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Book = book
	return nil
}

// SeedBook builds a book from name -> phones pairs, in the given order.
func SeedBook(entries []SeedEntry) *models.AddressBook {
	book := models.NewAddressBook()
	for _, entry := range entries {
		rec, err := models.NewRecord(entry.Name)
		if err != nil {
			panic(err)
		}
		for _, phone := range entry.Phones {
			if err := rec.AddPhone(phone); err != nil {
				panic(err)
			}
		}
		if entry.Birthday != "" {
			if err := rec.SetBirthday(entry.Birthday); err != nil {
				panic(err)
			}
		}
		book.AddRecord(rec)
	}
	return book
}

// SeedEntry describes one contact for [SeedBook].
type SeedEntry struct {
	Name     string
	Phones   []string
	Birthday string
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}
