package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/rolo/internal/models"
	"github.com/desertthunder/rolo/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	store  models.BookStore
	logger *log.Logger
	output io.Writer
	input  io.Reader
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Store  models.BookStore
	Logger *log.Logger
	Output io.Writer
	Input  io.Reader
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	return &Runner{
		config: opts.Config,
		store:  opts.Store,
		logger: opts.Logger,
		output: opts.Output,
		input:  opts.Input,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		replCommand, contactsCommand, birthdaysCommand, exportCommand, setupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger swaps the runner's logger, used when the TUI owns the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// loadBook restores the persisted book, falling back to an empty one when the
// store is unavailable.
func (r *Runner) loadBook() *models.AddressBook {
	if r.store == nil {
		return models.NewAddressBook()
	}

	book, err := r.store.Load()
	if err != nil {
		r.logger.Warn("failed to load contacts, starting with an empty book", "error", err)
		return models.NewAddressBook()
	}
	return book
}

// saveBook persists the book. A failed save is an infrastructure fault worth
// surfacing, not swallowing.
func (r *Runner) saveBook(book *models.AddressBook) error {
	if r.store == nil {
		return fmt.Errorf("%w: changes were not saved", shared.ErrStoreUnavailable)
	}
	if err := r.store.Save(book); err != nil {
		return fmt.Errorf("failed to save contacts: %w", err)
	}
	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	return r.writePlain(format+"\n", args...)
}
