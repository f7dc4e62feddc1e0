package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/rolo/internal/models"
)

var (
	_ list.Item = contactItem{}
	_ list.Item = reminderItem{}
)

// contactItem wraps [models.Record] to implement [list.Item].
type contactItem struct {
	record *models.Record
}

func (i contactItem) FilterValue() string { return i.record.Name() }
func (i contactItem) Title() string       { return i.record.Name() }
func (i contactItem) Description() string {
	desc := fmt.Sprintf("%d phones", len(i.record.Phones()))
	if birthday, ok := i.record.Birthday(); ok {
		desc = fmt.Sprintf("%s • %s", desc, birthday)
	}
	return desc
}

// reminderItem wraps [models.Reminder] to implement [list.Item].
type reminderItem struct {
	reminder models.Reminder
}

func (i reminderItem) FilterValue() string { return i.reminder.Name }
func (i reminderItem) Title() string       { return i.reminder.Name }
func (i reminderItem) Description() string {
	if i.reminder.Days == 0 {
		return fmt.Sprintf("%s • today", i.reminder.Date())
	}
	return fmt.Sprintf("%s • in %d days", i.reminder.Date(), i.reminder.Days)
}
