package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tendapp/tend/internal/constants"
	"github.com/tendapp/tend/internal/engine"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateToday:
		content = m.viewToday()
	case constants.StateStats:
		content = m.viewStats()
	case constants.StateReview:
		content = m.viewReview()
	case constants.StateMilestones:
		content = m.viewMilestones()
	case constants.StateAddHabit:
		content = m.form.View()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewTabs(), content}
	if m.statusMsg != "" {
		parts = append(parts, statusStyle.Render(m.statusMsg))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	titles := []struct {
		state constants.SessionState
		title string
	}{
		{constants.StateToday, "Today"},
		{constants.StateStats, "Stats"},
		{constants.StateReview, "Review"},
		{constants.StateMilestones, "Milestones"},
	}
	for _, t := range titles {
		if m.state == t.state {
			tabs = append(tabs, activeTabStyle.Render(t.title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(t.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	return m.todayModel.View()
}

func (m Model) viewStats() string {
	habits := m.activeHabits()
	start := engine.DaysAgo(m.today, constants.RecentWindowDays-1)

	summary := engine.StatsForRange(habits, start, m.today, m.today)

	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("Last %d days", constants.RecentWindowDays)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Completed %d of %d scheduled (%d%%)\n", summary.Completed, summary.Possible, summary.Rate))
	b.WriteString(fmt.Sprintf("Perfect days: %d (best run %d)\n\n", summary.PerfectDays, summary.BestPerfectRun))

	for _, hs := range engine.BreakdownForRange(habits, start, m.today, m.today) {
		if hs.Scheduled == 0 {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n", hs.Habit.Emoji, hs.Habit.Name, mutedStyle.Render("not scheduled in window")))
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s  %d/%d (%d%%)\n", hs.Habit.Emoji, hs.Habit.Name, hs.Completed, hs.Scheduled, hs.Rate))
	}

	return docStyle.Render(b.String())
}

func (m Model) viewReview() string {
	habits := m.activeHabits()
	start := engine.DaysAgo(m.today, 6)

	breakdown := engine.BreakdownForRange(habits, start, m.today, m.today)

	var b strings.Builder
	b.WriteString(headingStyle.Render("This week"))
	b.WriteString("\n\n")

	thriving := engine.Thriving(breakdown)
	if len(thriving) > 0 {
		b.WriteString("Thriving\n")
		for _, hs := range thriving {
			b.WriteString(fmt.Sprintf("  %s %s (%d%%)\n", hs.Habit.Emoji, hs.Habit.Name, hs.Rate))
		}
		b.WriteString("\n")
	}

	struggling := engine.Struggling(breakdown)
	if len(struggling) > 0 {
		b.WriteString("Needs attention\n")
		for _, hs := range struggling {
			b.WriteString(fmt.Sprintf("  %s %s (%d%%)\n", hs.Habit.Emoji, hs.Habit.Name, hs.Rate))
		}
		b.WriteString("\n")
	}

	if len(thriving) == 0 && len(struggling) == 0 {
		b.WriteString(mutedStyle.Render("Nothing to report yet. Keep at it."))
		b.WriteString("\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewMilestones() string {
	var b strings.Builder
	unlocked := 0

	for _, ms := range m.milestones {
		if ms.Unlocked {
			unlocked++
			b.WriteString(fmt.Sprintf("  %s %s  %s\n", ms.Icon, ms.Name, mutedStyle.Render(ms.UnlockedAt)))
		} else {
			b.WriteString(fmt.Sprintf("  🔒 %s  %s\n", ms.Name, mutedStyle.Render(ms.Description)))
		}
	}

	header := headingStyle.Render(fmt.Sprintf("Milestones (%d/%d)", unlocked, len(m.milestones)))
	return docStyle.Render(header + "\n\n" + b.String())
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Archive this habit?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
