package repositories

import (
	"database/sql"
	"testing"

	"github.com/desertthunder/rolo/internal/shared"
	tu "github.com/desertthunder/rolo/internal/testing"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestContactRepository(t *testing.T) {
	t.Run("Load on a fresh database yields an empty book", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewContactRepository(db)
		book, err := repo.Load()
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}
		if book.Len() != 0 {
			t.Errorf("expected empty book, got %d records", book.Len())
		}
	})

	t.Run("Save and Load round-trip", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewContactRepository(db)
		book := tu.SeedBook([]tu.SeedEntry{
			{Name: "carol", Phones: []string{"3333333333", "1111111111"}, Birthday: "15.06.1985"},
			{Name: "alice", Phones: []string{"1234567890"}},
			{Name: "bob"},
		})

		if err := repo.Save(book); err != nil {
			t.Fatalf("failed to save: %v", err)
		}

		loaded, err := repo.Load()
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}

		if loaded.Len() != 3 {
			t.Fatalf("expected 3 records, got %d", loaded.Len())
		}

		// Key order survives the round trip
		names := []string{"carol", "alice", "bob"}
		for i, rec := range loaded.Records() {
			if rec.Name() != names[i] {
				t.Errorf("position %d: expected %s, got %s", i, names[i], rec.Name())
			}
		}

		carol, ok := loaded.Find("carol")
		if !ok {
			t.Fatal("carol should be present")
		}

		phones := carol.Phones()
		if len(phones) != 2 || phones[0].String() != "3333333333" || phones[1].String() != "1111111111" {
			t.Errorf("phone order not preserved: %v", phones)
		}

		birthday, ok := carol.Birthday()
		if !ok || birthday.String() != "15.06.1985" {
			t.Errorf("birthday not preserved: %v (ok=%v)", birthday, ok)
		}

		if _, ok := loaded.Find("bob"); !ok {
			t.Error("bob should survive with no phones and no birthday")
		}
	})

	t.Run("Save replaces the previous snapshot", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewContactRepository(db)

		if err := repo.Save(tu.SeedBook([]tu.SeedEntry{
			{Name: "alice", Phones: []string{"1111111111"}},
			{Name: "bob", Phones: []string{"2222222222"}},
		})); err != nil {
			t.Fatalf("first save failed: %v", err)
		}

		if err := repo.Save(tu.SeedBook([]tu.SeedEntry{
			{Name: "alice", Phones: []string{"9999999999"}},
		})); err != nil {
			t.Fatalf("second save failed: %v", err)
		}

		loaded, err := repo.Load()
		if err != nil {
			t.Fatalf("failed to load: %v", err)
		}

		if loaded.Len() != 1 {
			t.Fatalf("expected 1 record after replacement, got %d", loaded.Len())
		}

		alice, _ := loaded.Find("alice")
		if alice.PhoneList() != "9999999999" {
			t.Errorf("expected replaced phone list, got %s", alice.PhoneList())
		}

		count, err := repo.Count()
		if err != nil {
			t.Fatalf("failed to count: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 persisted contact, got %d", count)
		}
	})

	t.Run("NextSequence increments across saves", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		first, err := NextSequence(db, "contacts")
		if err != nil {
			t.Fatalf("failed to get sequence: %v", err)
		}
		second, err := NextSequence(db, "contacts")
		if err != nil {
			t.Fatalf("failed to get sequence: %v", err)
		}
		if second != first+1 {
			t.Errorf("expected %d, got %d", first+1, second)
		}
	})
}
