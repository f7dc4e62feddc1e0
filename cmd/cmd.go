// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// replCommand launches the interactive read-dispatch-print loop.
func replCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "repl",
		Aliases: []string{"bot"},
		Usage:   "Interactive contact assistant (one command per line)",
		Action:  r.REPL,
	}
}

// contactsCommand exposes one-shot contact operations.
//
// Each verb routes through the same dispatcher as the REPL, so output is
// identical either way.
func contactsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "contacts",
		Aliases: []string{"c"},
		Usage:   "Contact operations",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Add a contact or append a phone to an existing one",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
					&cli.StringArg{Name: "phone"},
				},
				Action: r.ContactsAdd,
			},
			{
				Name:  "phone",
				Usage: "List a contact's phone numbers",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: r.ContactsPhone,
			},
			{
				Name:   "all",
				Usage:  "List every contact",
				Action: r.ContactsAll,
			},
			{
				Name:  "delete",
				Usage: "Delete a contact",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: r.ContactsDelete,
			},
		},
	}
}

// birthdaysCommand lists contacts with birthdays inside the reminder window.
func birthdaysCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "birthdays",
		Usage: "List contacts with upcoming birthdays",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "window",
				Usage: "Reminder window in days",
			},
		},
		Action: r.Birthdays,
	}
}

// exportCommand writes the contact book to files.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export contacts to CSV, Markdown, or plain text",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format (csv, markdown, txt); repeatable",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "Title for the Markdown rendering",
			},
		},
		Action: r.Export,
	}
}

// setupCommand handles setup operations for database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize database and run migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// tuiCommand returns the top-level TUI command for interactive contact browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for browsing contacts",
		Action:  r.TUI,
	}
}
