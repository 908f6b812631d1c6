package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/tendapp/tend/internal/cli"
	"github.com/tendapp/tend/internal/constants"
	"github.com/tendapp/tend/internal/engine"
	"github.com/tendapp/tend/internal/models"
	"github.com/tendapp/tend/internal/rollover"
	"github.com/tendapp/tend/internal/tui/components/today"
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(constants.RolloverCheckSeconds*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Add habit form
	if m.state == constants.StateAddHabit {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateToday
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			schedule, err := cli.ParseWeekdays(m.habitForm.Schedule)
			if err != nil {
				schedule = models.EveryDay()
			}
			habit := models.Habit{
				ID:           uuid.New().String(),
				Name:         m.habitForm.Name,
				Emoji:        m.habitForm.Emoji,
				Category:     m.habitForm.Category,
				Target:       m.habitForm.Target,
				Schedule:     schedule,
				ReminderTime: m.habitForm.Reminder,
				Position:     len(m.activeHabits()),
				CreatedAt:    time.Now(),
			}
			if err := habit.Validate(); err == nil {
				if err := m.store.AddHabit(habit); err == nil {
					m.refresh()
				}
			}
			m.state = constants.StateToday
		case huh.StateAborted:
			m.state = constants.StateToday
		}
		return m, tea.Batch(cmds...)
	}

	// Delete confirmation
	if m.state == constants.StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y":
				if m.habitToDeleteID != "" {
					if err := m.store.DeleteHabit(m.habitToDeleteID); err == nil {
						m.refresh()
					}
					m.habitToDeleteID = ""
				}
				m.state = constants.StateToday
			case "n", "esc":
				m.habitToDeleteID = ""
				m.state = constants.StateToday
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.todayModel.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tickMsg:
		now := engine.Today(time.Time(msg))
		if now != m.today {
			_, _ = rollover.Check(m.store, now)
			m.today = now
			m.refresh()
		}
		return m, tickCmd()

	case today.AddHabitMsg:
		m.habitForm = &HabitFormModel{Schedule: "daily"}
		m.form = newHabitForm(m.habitForm)
		m.state = constants.StateAddHabit
		return m, m.form.Init()

	case today.ToggleDoneMsg:
		m.toggleDone(msg.ID)
		return m, nil

	case today.ToggleSkipMsg:
		m.toggleSkip(msg.ID)
		return m, nil

	case today.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.state = constants.StateConfirmDelete
		return m, nil

	case today.RestoreHabitMsg:
		if err := m.store.RestoreHabit(msg.ID); err == nil {
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = nextState(m.state)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = prevState(m.state)
			return m, nil
		}
	}

	if m.state == constants.StateToday {
		var cmd tea.Cmd
		m.todayModel, cmd = m.todayModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func nextState(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateToday:
		return constants.StateStats
	case constants.StateStats:
		return constants.StateReview
	case constants.StateReview:
		return constants.StateMilestones
	case constants.StateMilestones:
		return constants.StateToday
	}
	return s
}

func prevState(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateToday:
		return constants.StateMilestones
	case constants.StateStats:
		return constants.StateToday
	case constants.StateReview:
		return constants.StateStats
	case constants.StateMilestones:
		return constants.StateReview
	}
	return s
}

func newHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.Name).
				Validate(func(s string) error {
					h := models.Habit{Name: s}
					return h.Validate()
				}),
			huh.NewInput().
				Title("Emoji").
				Value(&f.Emoji),
			huh.NewInput().
				Title("Category").
				Value(&f.Category),
			huh.NewInput().
				Title("Target (e.g. 10 minutes)").
				Value(&f.Target),
			huh.NewInput().
				Title("Schedule (daily, weekdays, or mon,wed,fri)").
				Value(&f.Schedule),
			huh.NewInput().
				Title("Reminder (HH:MM, optional)").
				Value(&f.Reminder),
		),
	)
}

// toggleDone flips today's completion mark for the habit, rederives its
// cached fields, and records any newly unlocked milestones.
func (m *Model) toggleDone(id string) {
	habit, err := m.store.GetHabit(id)
	if err != nil {
		return
	}

	if err := m.store.SetCompletion(id, m.today, !habit.CompletedOn(m.today)); err != nil {
		return
	}
	m.recomputeAndAnnounce(id)
}

func (m *Model) toggleSkip(id string) {
	habit, err := m.store.GetHabit(id)
	if err != nil {
		return
	}

	raw := false
	for _, d := range habit.SkipDates {
		if d == m.today {
			raw = true
			break
		}
	}
	// A day is either completed or a rest day, never both
	if !raw && habit.CompletedOn(m.today) {
		m.statusMsg = "Already completed today; unmark it first"
		return
	}
	if err := m.store.SetSkip(id, m.today, !raw); err != nil {
		return
	}
	m.recomputeAndAnnounce(id)
}

func (m *Model) recomputeAndAnnounce(id string) {
	habit, err := m.store.GetHabit(id)
	if err == nil {
		engine.Recompute(&habit, m.today)
		_ = m.store.UpdateHabit(habit)
	}

	m.statusMsg = ""
	appCtx := &cli.Context{Store: m.store}
	if newly, err := cli.EvaluateMilestones(appCtx); err == nil {
		for _, ms := range newly {
			if m.statusMsg != "" {
				m.statusMsg += "  "
			}
			m.statusMsg += ms.Icon + " " + ms.Name + " unlocked!"
		}
	}

	m.refresh()
}
