// Package dispatch maps parsed command lines onto address book operations.
//
// Every command produces exactly one reply string; domain errors never escape
// this package. Sentinel errors from the shared package are translated to
// user-facing messages in a single place ([translate]) rather than per
// handler, so the REPL, the one-shot CLI verbs, and tests all see identical
// output for identical input.
package dispatch

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/rolo/internal/models"
	"github.com/desertthunder/rolo/internal/shared"
)

// Replies that do not depend on command arguments.
const (
	ReplyGreeting   = "How can I help you?"
	ReplyGoodbye    = "Good bye!"
	ReplyNoContacts = "No contacts found."
	ReplyNoUpcoming = "No birthdays in the next week."
)

// Parse splits a raw input line into a lowercase command token and its arguments.
func Parse(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

// handler executes one command against the book and returns a reply.
type handler struct {
	arity int
	run   func(d *Dispatcher, args []string) (string, error)
}

// Dispatcher routes parsed commands to address book operations.
type Dispatcher struct {
	book   *models.AddressBook
	now    func() time.Time
	window int
	dirty  bool
}

// Opts configures a [Dispatcher].
type Opts struct {
	Book       *models.AddressBook
	Now        func() time.Time // defaults to time.Now
	WindowDays int              // defaults to 7
}

// New creates a Dispatcher over the given book.
func New(opts Opts) *Dispatcher {
	if opts.Book == nil {
		opts.Book = models.NewAddressBook()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.WindowDays <= 0 {
		opts.WindowDays = 7
	}
	return &Dispatcher{book: opts.Book, now: opts.Now, window: opts.WindowDays}
}

// Book returns the dispatcher's address book.
func (d *Dispatcher) Book() *models.AddressBook {
	return d.book
}

// Dirty reports whether any command mutated the book since the last [Dispatcher.MarkSaved].
func (d *Dispatcher) Dirty() bool {
	return d.dirty
}

// MarkSaved clears the dirty flag after a successful save.
func (d *Dispatcher) MarkSaved() {
	d.dirty = false
}

var handlers = map[string]handler{
	"add":           {arity: 2, run: (*Dispatcher).addContact},
	"change":        {arity: 3, run: (*Dispatcher).changeContact},
	"phone":         {arity: 1, run: (*Dispatcher).showPhone},
	"all":           {arity: 0, run: (*Dispatcher).showAll},
	"add-birthday":  {arity: 2, run: (*Dispatcher).addBirthday},
	"show-birthday": {arity: 1, run: (*Dispatcher).showBirthday},
	"birthdays":     {arity: 0, run: (*Dispatcher).birthdays},
	"delete":        {arity: 1, run: (*Dispatcher).deleteContact},
	"remove-phone":  {arity: 2, run: (*Dispatcher).removePhone},
}

// Handle executes one input line and returns the reply plus a done flag that
// is true only for close/exit.
func (d *Dispatcher) Handle(line string) (string, bool) {
	cmd, args := Parse(line)

	switch cmd {
	case "":
		return "", false
	case "close", "exit":
		return ReplyGoodbye, true
	case "hello":
		return ReplyGreeting, false
	}

	h, ok := handlers[cmd]
	if !ok {
		return translate(fmt.Errorf("%w: %s", shared.ErrUnknownCommand, cmd)), false
	}
	if len(args) < h.arity {
		return translate(fmt.Errorf("%w for %q", shared.ErrMissingArguments, cmd)), false
	}

	reply, err := h.run(d, args)
	if err != nil {
		return translate(err), false
	}
	return reply, false
}

// translate converts a domain error into a one-line user-facing message.
func translate(err error) string {
	switch {
	case errors.Is(err, shared.ErrMissingArguments):
		return "Error: Not enough arguments. Please check your command format."
	case errors.Is(err, shared.ErrContactNotFound):
		return "Error: Contact not found."
	case errors.Is(err, shared.ErrUnknownCommand):
		return "Invalid command. Try again."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func (d *Dispatcher) addContact(args []string) (string, error) {
	name, phone := args[0], args[1]

	rec, found := d.book.Find(name)
	if !found {
		var err error
		if rec, err = models.NewRecord(name); err != nil {
			return "", err
		}
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	d.book.AddRecord(rec)
	d.dirty = true

	if found {
		return "Contact updated.", nil
	}
	return "Contact added.", nil
}

func (d *Dispatcher) changeContact(args []string) (string, error) {
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, found := d.book.Find(name)
	if !found {
		return "", fmt.Errorf("%w: %s", shared.ErrContactNotFound, name)
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	d.dirty = true
	return "Phone updated.", nil
}

func (d *Dispatcher) showPhone(args []string) (string, error) {
	rec, found := d.book.Find(args[0])
	if !found {
		return "", fmt.Errorf("%w: %s", shared.ErrContactNotFound, args[0])
	}
	return rec.PhoneList(), nil
}

func (d *Dispatcher) showAll([]string) (string, error) {
	if d.book.Len() == 0 {
		return ReplyNoContacts, nil
	}

	lines := make([]string, 0, d.book.Len())
	for _, rec := range d.book.Records() {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n"), nil
}

func (d *Dispatcher) addBirthday(args []string) (string, error) {
	name, date := args[0], args[1]

	rec, found := d.book.Find(name)
	if !found {
		var err error
		if rec, err = models.NewRecord(name); err != nil {
			return "", err
		}
	}
	if err := rec.SetBirthday(date); err != nil {
		return "", err
	}
	d.book.AddRecord(rec)
	d.dirty = true
	return fmt.Sprintf("Birthday added for %s", name), nil
}

func (d *Dispatcher) showBirthday(args []string) (string, error) {
	rec, found := d.book.Find(args[0])
	if !found {
		return "", fmt.Errorf("%w: %s", shared.ErrContactNotFound, args[0])
	}
	birthday, ok := rec.Birthday()
	if !ok {
		return models.BirthdayNotSet, nil
	}
	return birthday.String(), nil
}

func (d *Dispatcher) birthdays([]string) (string, error) {
	upcoming := d.book.UpcomingBirthdays(d.now(), d.window)
	if len(upcoming) == 0 {
		return ReplyNoUpcoming, nil
	}

	lines := make([]string, 0, len(upcoming))
	for _, reminder := range upcoming {
		lines = append(lines, fmt.Sprintf("%s: %s", reminder.Name, reminder.Date()))
	}
	return strings.Join(lines, "\n"), nil
}

func (d *Dispatcher) deleteContact(args []string) (string, error) {
	name := args[0]
	if _, found := d.book.Find(name); !found {
		return "", fmt.Errorf("%w: %s", shared.ErrContactNotFound, name)
	}
	d.book.Delete(name)
	d.dirty = true
	return "Contact deleted.", nil
}

func (d *Dispatcher) removePhone(args []string) (string, error) {
	name, phone := args[0], args[1]

	rec, found := d.book.Find(name)
	if !found {
		return "", fmt.Errorf("%w: %s", shared.ErrContactNotFound, name)
	}
	rec.RemovePhone(phone)
	d.dirty = true
	return "Phone removed.", nil
}
