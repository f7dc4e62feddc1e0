package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/rolo/internal/models"
	"github.com/desertthunder/rolo/internal/shared"
)

// ContactRepository implements [models.BookStore] over SQLite.
type ContactRepository struct {
	db *sql.DB
}

var _ models.BookStore = (*ContactRepository)(nil)

// NewContactRepository creates a new [ContactRepository] with the given database connection
func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Save replaces the persisted snapshot with the book's current contents in a
// single transaction. Contacts are written in the book's insertion order via
// fresh sequence numbers; phones keep their list position.
func (r *ContactRepository) Save(book *models.AddressBook) error {
	records := book.Records()

	// Sequences are claimed outside the snapshot transaction; NextSequence
	// runs its own.
	sequences := make([]int, len(records))
	for i := range records {
		sequence, err := NextSequence(r.db, "contacts")
		if err != nil {
			return fmt.Errorf("failed to generate sequence: %w", err)
		}
		sequences[i] = sequence
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM phones"); err != nil {
		return fmt.Errorf("failed to clear phones: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}

	now := time.Now()

	for i, rec := range records {
		sequence := sequences[i]
		contactID := shared.GenerateID()

		var birthday any
		if b, ok := rec.Birthday(); ok {
			birthday = b.String()
		}

		_, err := tx.Exec(
			"INSERT INTO contacts (id, sequence, name, birthday, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			contactID, sequence, rec.Name(), birthday, now, now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert contact %s: %w", rec.Name(), err)
		}

		for position, phone := range rec.Phones() {
			_, err := tx.Exec(
				"INSERT INTO phones (id, contact_id, position, number) VALUES (?, ?, ?, ?)",
				shared.GenerateID(), contactID, position, phone.String(),
			)
			if err != nil {
				return fmt.Errorf("failed to insert phone for %s: %w", rec.Name(), err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return nil
}

// Load rebuilds the address book from the persisted snapshot. An empty
// database yields an empty book.
func (r *ContactRepository) Load() (*models.AddressBook, error) {
	book := models.NewAddressBook()

	rows, err := r.db.Query("SELECT id, name, birthday FROM contacts ORDER BY sequence ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	type contactRow struct {
		id       string
		name     string
		birthday sql.NullString
	}

	var contacts []contactRow
	for rows.Next() {
		var row contactRow
		if err := rows.Scan(&row.id, &row.name, &row.birthday); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	for _, row := range contacts {
		rec, err := models.NewRecord(row.name)
		if err != nil {
			return nil, fmt.Errorf("invalid persisted contact %q: %w", row.name, err)
		}

		if row.birthday.Valid {
			if err := rec.SetBirthday(row.birthday.String); err != nil {
				return nil, fmt.Errorf("invalid persisted birthday for %s: %w", row.name, err)
			}
		}

		if err := r.loadPhones(row.id, rec); err != nil {
			return nil, err
		}

		book.AddRecord(rec)
	}

	return book, nil
}

// loadPhones appends the persisted phones for contactID onto rec in position order.
func (r *ContactRepository) loadPhones(contactID string, rec *models.Record) error {
	rows, err := r.db.Query("SELECT number FROM phones WHERE contact_id = ? ORDER BY position ASC", contactID)
	if err != nil {
		return fmt.Errorf("failed to query phones: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return fmt.Errorf("failed to scan phone: %w", err)
		}
		if err := rec.AddPhone(number); err != nil {
			return fmt.Errorf("invalid persisted phone for %s: %w", rec.Name(), err)
		}
	}

	return rows.Err()
}

// Count returns the number of persisted contacts.
func (r *ContactRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM contacts").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return count, nil
}
