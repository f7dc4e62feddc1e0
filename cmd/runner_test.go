package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/desertthunder/rolo/internal/shared"
	tu "github.com/desertthunder/rolo/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			input := strings.NewReader("")
			store := &tu.MockStore{}

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Output: output,
				Input:  input,
				Store:  store,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.input != input {
				t.Error("expected input to be set")
			}
			if runner.store != store {
				t.Error("expected store to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil input uses stdin", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})
			if runner.input != os.Stdin {
				t.Error("expected input to default to os.Stdin")
			}
		})
	})

	t.Run("loadBook", func(t *testing.T) {
		t.Run("nil store yields an empty book", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
			if book := runner.loadBook(); book.Len() != 0 {
				t.Errorf("expected empty book, got %d records", book.Len())
			}
		})

		t.Run("load failure yields an empty book", func(t *testing.T) {
			store := &tu.MockStore{LoadErr: errors.New("disk on fire")}
			runner := NewRunner(RunnerOpts{Store: store, Output: &bytes.Buffer{}})
			if book := runner.loadBook(); book.Len() != 0 {
				t.Errorf("expected empty book, got %d records", book.Len())
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes formatted text", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if output.String() != "hello world" {
				t.Errorf("expected 'hello world', got %q", output.String())
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles failure mid-stream", func(t *testing.T) {
			limited := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limited})

			if err := runner.writePlainln("first"); err != nil {
				t.Fatalf("expected first write to succeed, got %v", err)
			}
			if err := runner.writePlainln("second"); err == nil {
				t.Fatal("expected error once the write limit is hit")
			}
		})
	})

	t.Run("saveBook", func(t *testing.T) {
		t.Run("nil store reports the fault", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
			err := runner.saveBook(runner.loadBook())
			if !errors.Is(err, shared.ErrStoreUnavailable) {
				t.Errorf("expected ErrStoreUnavailable, got %v", err)
			}
		})

		t.Run("save error is wrapped", func(t *testing.T) {
			store := &tu.MockStore{SaveErr: errors.New("disk full")}
			runner := NewRunner(RunnerOpts{Store: store, Output: &bytes.Buffer{}})
			if err := runner.saveBook(runner.loadBook()); err == nil {
				t.Error("expected save error to propagate")
			}
		})
	})
}

func TestREPL(t *testing.T) {
	run := func(t *testing.T, store *tu.MockStore, script string) (string, error) {
		t.Helper()

		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{
			Store:  store,
			Output: output,
			Input:  strings.NewReader(script),
			Logger: shared.NewLogger(&bytes.Buffer{}),
		})

		err := runner.REPL(context.Background(), nil)
		return output.String(), err
	}

	t.Run("add then query then exit", func(t *testing.T) {
		store := &tu.MockStore{}
		output, err := run(t, store, "add alice 1234567890\nphone alice\nexit\n")
		if err != nil {
			t.Fatalf("REPL failed: %v", err)
		}

		for _, want := range []string{
			"Welcome to the assistant bot!",
			"Contact added.",
			"1234567890",
			"Good bye!",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing %q:\n%s", want, output)
			}
		}

		if store.SaveCalls != 1 {
			t.Errorf("expected 1 save on exit, got %d", store.SaveCalls)
		}

		saved, _ := store.Load()
		rec, ok := saved.Find("alice")
		if !ok || rec.PhoneList() != "1234567890" {
			t.Error("book should be persisted on exit")
		}
	})

	t.Run("end of input terminates gracefully", func(t *testing.T) {
		store := &tu.MockStore{}
		output, err := run(t, store, "add alice 1234567890\n")
		if err != nil {
			t.Fatalf("REPL failed: %v", err)
		}

		if !strings.Contains(output, "Good bye!") {
			t.Errorf("EOF should say goodbye:\n%s", output)
		}
		if store.SaveCalls != 1 {
			t.Errorf("expected save on EOF, got %d calls", store.SaveCalls)
		}
	})

	t.Run("read-only session skips saving", func(t *testing.T) {
		store := &tu.MockStore{}
		output, err := run(t, store, "hello\nexit\n")
		if err != nil {
			t.Fatalf("REPL failed: %v", err)
		}

		if !strings.Contains(output, "How can I help you?") {
			t.Errorf("output missing greeting:\n%s", output)
		}
		if store.SaveCalls != 0 {
			t.Errorf("expected no saves, got %d", store.SaveCalls)
		}
	})

	t.Run("read-only session tolerates a missing store", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{
			Output: output,
			Input:  strings.NewReader("all\nexit\n"),
			Logger: shared.NewLogger(&bytes.Buffer{}),
		})

		if err := runner.REPL(context.Background(), nil); err != nil {
			t.Fatalf("browsing without a store should not fail: %v", err)
		}
		if !strings.Contains(output.String(), "No contacts found.") {
			t.Errorf("output missing empty-book message:\n%s", output.String())
		}
	})

	t.Run("save failure on exit surfaces", func(t *testing.T) {
		store := &tu.MockStore{SaveErr: errors.New("disk full")}
		if _, err := run(t, store, "add alice 1234567890\nexit\n"); err == nil {
			t.Error("expected save failure to propagate")
		}
	})

	t.Run("output failure does not block saving", func(t *testing.T) {
		store := &tu.MockStore{}
		runner := NewRunner(RunnerOpts{
			Store:  store,
			Output: &tu.FWriter{},
			Input:  strings.NewReader("add alice 1234567890\nexit\n"),
			Logger: shared.NewLogger(&bytes.Buffer{}),
		})

		if err := runner.REPL(context.Background(), nil); err != nil {
			t.Fatalf("REPL failed: %v", err)
		}
		if store.SaveCalls != 1 {
			t.Errorf("expected 1 save despite output failures, got %d", store.SaveCalls)
		}
	})

	t.Run("restored book is visible to commands", func(t *testing.T) {
		store := &tu.MockStore{Book: tu.SeedBook([]tu.SeedEntry{
			{Name: "bob", Phones: []string{"5555555555"}, Birthday: "01.01.2000"},
		})}

		output, err := run(t, store, "all\nexit\n")
		if err != nil {
			t.Fatalf("REPL failed: %v", err)
		}

		if !strings.Contains(output, "bob: phones: [5555555555], birthday: 01.01.2000") {
			t.Errorf("output missing restored contact:\n%s", output)
		}
	})
}

func TestDispatchOnce(t *testing.T) {
	t.Run("mutating command saves", func(t *testing.T) {
		store := &tu.MockStore{}
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Store: store, Output: output})

		if err := runner.dispatchOnce("add alice 1234567890"); err != nil {
			t.Fatalf("dispatchOnce failed: %v", err)
		}

		if !strings.Contains(output.String(), "Contact added.") {
			t.Errorf("missing confirmation:\n%s", output.String())
		}
		if store.SaveCalls != 1 {
			t.Errorf("expected 1 save, got %d", store.SaveCalls)
		}
	})

	t.Run("read-only command skips saving", func(t *testing.T) {
		store := &tu.MockStore{}
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Store: store, Output: output})

		if err := runner.dispatchOnce("all"); err != nil {
			t.Fatalf("dispatchOnce failed: %v", err)
		}

		if !strings.Contains(output.String(), "No contacts found.") {
			t.Errorf("missing empty-book message:\n%s", output.String())
		}
		if store.SaveCalls != 0 {
			t.Errorf("expected no saves, got %d", store.SaveCalls)
		}
	})
}
