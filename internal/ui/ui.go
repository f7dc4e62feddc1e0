package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/rolo/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ContactListView ViewState = iota
	ContactDetailView
	RemindersView
)

// Model represents the TUI application state.
type Model struct {
	view         ViewState
	book         *models.AddressBook
	window       int
	now          func() time.Time
	width        int
	height       int
	contactList  list.Model
	reminderList list.Model
	selected     *models.Record
	help         help.Model
	keys         keyMap
}

// NewModel creates a new TUI model over the given book.
func NewModel(book *models.AddressBook, windowDays int) *Model {
	m := &Model{
		view:   ContactListView,
		book:   book,
		window: windowDays,
		now:    time.Now,
		help:   help.New(),
		keys:   newKeyMap(),
	}
	m.contactList = list.New(m.contactItems(), list.NewDefaultDelegate(), 0, 0)
	m.contactList.Title = "Contacts"
	m.reminderList = list.New(m.reminderItems(), list.NewDefaultDelegate(), 0, 0)
	m.reminderList.Title = fmt.Sprintf("Birthdays in the next %d days", windowDays)
	return m
}

func (m *Model) contactItems() []list.Item {
	records := m.book.Records()
	items := make([]list.Item, len(records))
	for i, rec := range records {
		items[i] = contactItem{record: rec}
	}
	return items
}

func (m *Model) reminderItems() []list.Item {
	reminders := m.book.UpcomingBirthdays(m.now(), m.window)
	items := make([]list.Item, len(reminders))
	for i, reminder := range reminders {
		items[i] = reminderItem{reminder: reminder}
	}
	return items
}

// Init implements [tea.Model]. The book is local so there is nothing to fetch.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.contactList.SetSize(msg.Width-4, msg.Height-8)
		m.reminderList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case ContactListView:
			return m.handleContactListKeys(msg)
		case ContactDetailView:
			return m.handleDetailKeys(msg)
		case RemindersView:
			return m.handleRemindersKeys(msg)
		}
	}

	return m.updateLists(msg)
}

func (m *Model) handleContactListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.birthdays):
		m.reminderList.SetItems(m.reminderItems())
		m.view = RemindersView
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.contactList.SelectedItem().(contactItem); ok {
			m.selected = item.record
			m.view = ContactDetailView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.contactList, cmd = m.contactList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.selected = nil
		m.view = ContactListView
	}
	return m, nil
}

func (m *Model) handleRemindersKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = ContactListView
		return m, nil
	}

	var cmd tea.Cmd
	m.reminderList, cmd = m.reminderList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.contactList, cmd = m.contactList.Update(msg)
	cmds = append(cmds, cmd)
	m.reminderList, cmd = m.reminderList.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case ContactDetailView:
		return m.detailView()
	case RemindersView:
		return m.reminderList.View() + "\n" + m.help.View(m.keys)
	default:
		return m.contactList.View() + "\n" + m.help.View(m.keys)
	}
}

func (m *Model) detailView() string {
	if m.selected == nil {
		return styles.err.Render("no contact selected")
	}

	birthday := models.BirthdayNotSet
	if b, ok := m.selected.Birthday(); ok {
		birthday = b.String()
		if days, has := m.selected.DaysToNextBirthday(m.now()); has {
			birthday = fmt.Sprintf("%s (%d days away)", birthday, days)
		}
	}

	phones := m.selected.PhoneList()
	if phones == "" {
		phones = "none"
	}

	return fmt.Sprintf(
		"%s\n\n%s %s\n%s %s\n\n%s",
		styles.title.Render(m.selected.Name()),
		styles.ok.Render("Phones:"), phones,
		styles.warn.Render("Birthday:"), birthday,
		styles.help.Render("esc: back • q: quit"),
	)
}
