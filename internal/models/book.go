package models

import "time"

// AddressBook is the keyed collection of records: at most one record per
// name, iteration in insertion order.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// Reminder pairs a contact name with the next occurrence of its birthday.
type Reminder struct {
	Name string
	Next time.Time
	Days int
}

// Date renders the reminder's occurrence in DD.MM.YYYY format.
func (r Reminder) Date() string {
	return r.Next.Format(BirthdayLayout)
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord inserts rec keyed by its name. An existing record under the same
// name is replaced in place; this is deliberate upsert semantics, not a merge.
func (b *AddressBook) AddRecord(rec *Record) {
	if _, exists := b.records[rec.Name()]; !exists {
		b.order = append(b.order, rec.Name())
	}
	b.records[rec.Name()] = rec
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record stored under name. Removing an absent name is a no-op.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	records := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		records = append(records, b.records[name])
	}
	return records
}

// Len returns the number of records in the book.
func (b *AddressBook) Len() int {
	return len(b.order)
}

// UpcomingBirthdays returns a reminder for every record whose next birthday
// falls within windowDays of today (inclusive on both ends). Results keep the
// book's insertion order rather than sorting by proximity.
func (b *AddressBook) UpcomingBirthdays(today time.Time, windowDays int) []Reminder {
	var upcoming []Reminder
	for _, rec := range b.Records() {
		birthday, ok := rec.Birthday()
		if !ok {
			continue
		}
		days := birthday.DaysUntil(today)
		if days >= 0 && days <= windowDays {
			upcoming = append(upcoming, Reminder{
				Name: rec.Name(),
				Next: birthday.NextOccurrence(today),
				Days: days,
			})
		}
	}
	return upcoming
}

// BookStore is the persistence port: load and save a full address book snapshot.
type BookStore interface {
	Load() (*AddressBook, error)
	Save(book *AddressBook) error
}
