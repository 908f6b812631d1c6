package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tendapp/tend/internal/constants"
	"github.com/tendapp/tend/internal/engine"
	"github.com/tendapp/tend/internal/models"
	"github.com/tendapp/tend/internal/storage"
	"github.com/tendapp/tend/internal/tui/components/today"
)

// HabitFormModel backs the add-habit form fields.
type HabitFormModel struct {
	Name     string
	Emoji    string
	Category string
	Target   string
	Schedule string
	Reminder string
}

type KeyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

type Model struct {
	store           storage.Provider
	state           constants.SessionState
	keys            KeyMap
	help            help.Model
	todayModel      today.Model
	form            *huh.Form
	habitForm       *HabitFormModel
	habitToDeleteID string
	quitting        bool
	width           int
	height          int
	statusMsg       string
	today           string

	// Cached snapshots, refreshed after every mutation and on rollover
	habits     []models.Habit
	milestones []models.Milestone
}

func NewModel(store storage.Provider) Model {
	now := engine.Today(time.Now())

	habits, err := store.GetAllHabits(true)
	if err != nil {
		habits = []models.Habit{}
	}
	milestones, _ := store.GetMilestones()

	m := Model{
		store:      store,
		state:      constants.StateToday,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		todayModel: today.New(habits, now, 0, 0),
		today:      now,
		habits:     habits,
		milestones: milestones,
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// refresh reloads the cached snapshots from the store.
func (m *Model) refresh() {
	habits, err := m.store.GetAllHabits(true)
	if err == nil {
		m.habits = habits
	}
	milestones, err := m.store.GetMilestones()
	if err == nil {
		m.milestones = milestones
	}
	m.todayModel.SetHabits(m.habits, m.today)
}

// activeHabits filters the cached snapshot down to non-deleted habits.
func (m Model) activeHabits() []models.Habit {
	var out []models.Habit
	for _, h := range m.habits {
		if h.DeletedAt == nil {
			out = append(out, h)
		}
	}
	return out
}
