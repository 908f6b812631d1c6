// Package today renders the daily habit checklist.
package today

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tendapp/tend/internal/engine"
	"github.com/tendapp/tend/internal/models"
)

type AddHabitMsg struct{}

type ToggleDoneMsg struct {
	ID string
}

type ToggleSkipMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID string
}

type RestoreHabitMsg struct {
	ID string
}

type Item struct {
	Habit     models.Habit
	Today     string
	IsDeleted bool
}

func (i Item) Title() string {
	name := i.Habit.Name
	if i.Habit.Emoji != "" {
		name = i.Habit.Emoji + " " + name
	}
	if i.IsDeleted {
		return "[DELETED] " + name
	}
	switch {
	case i.Habit.CompletedOn(i.Today):
		return "✓ " + name
	case i.Habit.SkippedOn(i.Today):
		return "~ " + name
	case !engine.IsDue(i.Habit.Schedule, i.Today):
		return "· " + name
	default:
		return "○ " + name
	}
}

func (i Item) Description() string {
	if i.IsDeleted {
		return "can restore with 'r'"
	}
	desc := ""
	switch {
	case i.Habit.CompletedOn(i.Today):
		desc = "completed today"
	case i.Habit.SkippedOn(i.Today):
		desc = "rest day"
	case !engine.IsDue(i.Habit.Schedule, i.Today):
		desc = "not scheduled today"
	default:
		desc = "not completed today"
	}
	if streak := engine.CurrentStreak(i.Habit, i.Today); streak > 0 {
		desc += fmt.Sprintf(" · 🔥 %d", streak)
	}
	if i.Habit.Target != "" {
		desc += " · " + i.Habit.Target
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add     key.Binding
	Toggle  key.Binding
	Skip    key.Binding
	Delete  key.Binding
	Restore key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("m", " "),
			key.WithHelp("m", "toggle done"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "rest day"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
	}
}

type Model struct {
	list  list.Model
	keys  KeyMap
	today string
}

func New(habits []models.Habit, today string, width, height int) Model {
	l := list.New(buildItems(habits, today), list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Skip, keys.Delete, keys.Restore}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Skip, keys.Delete, keys.Restore}
	}

	return Model{
		list:  l,
		keys:  keys,
		today: today,
	}
}

func buildItems(habits []models.Habit, today string) []list.Item {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{
			Habit:     h,
			Today:     today,
			IsDeleted: h.DeletedAt != nil,
		}
	}
	return items
}

func (m *Model) SetHabits(habits []models.Habit, today string) {
	m.today = today
	m.list.SetItems(buildItems(habits, today))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok && !i.IsDeleted {
				return m, func() tea.Msg { return ToggleDoneMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Skip):
			if i, ok := m.list.SelectedItem().(Item); ok && !i.IsDeleted {
				return m, func() tea.Msg { return ToggleSkipMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok && !i.IsDeleted {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Restore):
			if i, ok := m.list.SelectedItem().(Item); ok && i.IsDeleted {
				return m, func() tea.Msg { return RestoreHabitMsg{ID: i.Habit.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
