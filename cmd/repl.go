package main

import (
	"bufio"
	"context"
	"strings"

	"github.com/desertthunder/rolo/internal/dispatch"
	"github.com/urfave/cli/v3"
)

const prompt = "Enter a command: "

// REPL runs the interactive read-dispatch-print loop until close/exit or
// end of input, then saves the book.
func (r *Runner) REPL(ctx context.Context, cmd *cli.Command) error {
	book := r.loadBook()
	d := dispatch.New(dispatch.Opts{
		Book:       book,
		WindowDays: r.config.Reminders.WindowDays,
	})

	r.writePlainln("Welcome to the assistant bot!")

	scanner := bufio.NewScanner(r.input)
	for {
		r.writePlain(prompt)

		// End of input terminates the loop the same way close does.
		if !scanner.Scan() {
			r.writePlainln("")
			r.writePlainln(dispatch.ReplyGoodbye)
			break
		}

		reply, done := d.Handle(scanner.Text())
		if reply != "" {
			r.writePlainln("%s", reply)
		}
		if done {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		r.logger.Warn("input error", "error", err)
	}

	// A read-only session has nothing to persist, so an unavailable store
	// is not a fault here.
	if d.Dirty() {
		if err := r.saveBook(d.Book()); err != nil {
			return err
		}
		d.MarkSaved()
	}

	return nil
}

// dispatchOnce runs a single command line through a fresh dispatcher against
// the persisted book, saving afterwards when the command mutated it.
func (r *Runner) dispatchOnce(line string) error {
	d := dispatch.New(dispatch.Opts{
		Book:       r.loadBook(),
		WindowDays: r.config.Reminders.WindowDays,
	})

	reply, _ := d.Handle(line)
	if reply != "" {
		r.writePlainln("%s", reply)
	}

	if d.Dirty() {
		if err := r.saveBook(d.Book()); err != nil {
			return err
		}
		d.MarkSaved()
	}

	return nil
}

// ContactsAdd handles `contacts add <name> <phone>`.
func (r *Runner) ContactsAdd(ctx context.Context, cmd *cli.Command) error {
	return r.dispatchOnce(joinLine("add", cmd.StringArg("name"), cmd.StringArg("phone")))
}

// ContactsPhone handles `contacts phone <name>`.
func (r *Runner) ContactsPhone(ctx context.Context, cmd *cli.Command) error {
	return r.dispatchOnce(joinLine("phone", cmd.StringArg("name")))
}

// ContactsAll handles `contacts all`.
func (r *Runner) ContactsAll(ctx context.Context, cmd *cli.Command) error {
	return r.dispatchOnce("all")
}

// ContactsDelete handles `contacts delete <name>`.
func (r *Runner) ContactsDelete(ctx context.Context, cmd *cli.Command) error {
	return r.dispatchOnce(joinLine("delete", cmd.StringArg("name")))
}

// Birthdays lists upcoming birthdays, honoring the --window override.
func (r *Runner) Birthdays(ctx context.Context, cmd *cli.Command) error {
	window := r.config.Reminders.WindowDays
	if w := cmd.Int("window"); w > 0 {
		window = w
	}

	d := dispatch.New(dispatch.Opts{
		Book:       r.loadBook(),
		WindowDays: window,
	})

	reply, _ := d.Handle("birthdays")
	return r.writePlainln("%s", reply)
}

// joinLine builds a dispatcher input line from a verb and its arguments.
func joinLine(verb string, args ...string) string {
	parts := append([]string{verb}, args...)
	return strings.Join(parts, " ")
}
