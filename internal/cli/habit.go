package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tendapp/tend/internal/engine"
	"github.com/tendapp/tend/internal/models"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Edit    HabitEditCmd    `cmd:"" help:"Edit an existing habit."`
	Done    HabitDoneCmd    `cmd:"" help:"Toggle a habit's completion for a day."`
	Skip    HabitSkipCmd    `cmd:"" help:"Toggle a rest day for a habit."`
	Show    HabitShowCmd    `cmd:"" help:"Show habit details and history."`
	Move    HabitMoveCmd    `cmd:"" help:"Move a habit to a new list position."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit (soft delete)."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Emoji    string `help:"Emoji shown next to the habit."`
	Category string `help:"Free-form category label."`
	Target   string `help:"Daily target, e.g. '10 minutes'."`
	Schedule string `help:"Weekly schedule: 'daily', 'weekdays', or comma-separated days (mon,wed,fri)." default:"daily"`
	Reminder string `help:"Reminder time in HH:MM format."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Check if habit with same name already exists
	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	schedule, err := ParseWeekdays(c.Schedule)
	if err != nil {
		return err
	}

	existing, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	habit := models.Habit{
		ID:           uuid.New().String(),
		Name:         c.Name,
		Emoji:        c.Emoji,
		Category:     c.Category,
		Target:       c.Target,
		Schedule:     schedule,
		ReminderTime: c.Reminder,
		Position:     len(existing),
		CreatedAt:    time.Now(),
	}

	if err := habit.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", c.Name, FormatSchedule(schedule))
	return nil
}

type HabitListCmd struct {
	Deleted bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.EnsureRolledOver(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(c.Deleted)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		status := ""
		if habit.DeletedAt != nil {
			status = " [DELETED]"
		}
		streak := ""
		if habit.CurrentStreak > 0 {
			streak = fmt.Sprintf("  🔥 %d", habit.CurrentStreak)
		}
		emoji := habit.Emoji
		if emoji != "" {
			emoji += " "
		}
		fmt.Printf("%s%s (%s)%s%s\n", emoji, habit.Name, FormatSchedule(habit.Schedule), streak, status)
	}

	return nil
}

type HabitEditCmd struct {
	Name     string  `arg:"" help:"Habit name."`
	NewName  *string `help:"New habit name."`
	Emoji    *string `help:"New emoji."`
	Category *string `help:"New category."`
	Target   *string `help:"New daily target."`
	Schedule *string `help:"New weekly schedule."`
	Reminder *string `help:"New reminder time in HH:MM format."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if c.NewName != nil {
		if _, err := ctx.Store.GetHabitByName(*c.NewName); err == nil {
			return fmt.Errorf("habit with name %q already exists", *c.NewName)
		}
		habit.Name = *c.NewName
	}
	if c.Emoji != nil {
		habit.Emoji = *c.Emoji
	}
	if c.Category != nil {
		habit.Category = *c.Category
	}
	if c.Target != nil {
		habit.Target = *c.Target
	}
	if c.Schedule != nil {
		schedule, err := ParseWeekdays(*c.Schedule)
		if err != nil {
			return err
		}
		habit.Schedule = schedule
	}
	if c.Reminder != nil {
		habit.ReminderTime = *c.Reminder
	}

	if err := habit.Validate(); err != nil {
		return err
	}

	// A schedule change shifts which days count toward the streaks
	engine.Recompute(&habit, ctx.Today())

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitDoneCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	if habit.CompletedOn(day) {
		if err := ctx.Store.SetCompletion(habit.ID, day, false); err != nil {
			return err
		}
		fmt.Printf("Unmarked %q for %s\n", c.Name, day)
	} else {
		if err := ctx.Store.SetCompletion(habit.ID, day, true); err != nil {
			return err
		}
		fmt.Printf("Completed %q for %s\n", c.Name, day)
	}

	return refreshAfterMark(ctx, habit.ID)
}

type HabitSkipCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitSkipCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	// SkippedOn is false when the day is also completed, so check the raw
	// set here to make the toggle behave predictably.
	raw := false
	for _, d := range habit.SkipDates {
		if d == day {
			raw = true
			break
		}
	}

	if raw {
		if err := ctx.Store.SetSkip(habit.ID, day, false); err != nil {
			return err
		}
		fmt.Printf("Cleared rest day on %q for %s\n", c.Name, day)
	} else {
		// A day is either completed or a rest day, never both
		if habit.CompletedOn(day) {
			return fmt.Errorf("%q is already completed on %s; unmark it first with 'tend habit done'", c.Name, day)
		}
		if err := ctx.Store.SetSkip(habit.ID, day, true); err != nil {
			return err
		}
		fmt.Printf("Rest day on %q for %s\n", c.Name, day)
	}

	return refreshAfterMark(ctx, habit.ID)
}

// refreshAfterMark rederives the cached streak fields after a completion or
// skip toggle, persists them, and reports any newly unlocked milestones.
func refreshAfterMark(ctx *Context, habitID string) error {
	today := ctx.Today()

	habit, err := ctx.Store.GetHabit(habitID)
	if err != nil {
		return err
	}
	engine.Recompute(&habit, today)
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	if habit.CurrentStreak > 1 {
		fmt.Printf("Current streak: %d days\n", habit.CurrentStreak)
	}

	newly, err := EvaluateMilestones(ctx)
	if err != nil {
		return err
	}
	for _, m := range newly {
		fmt.Printf("%s Milestone unlocked: %s — %s\n", m.Icon, m.Name, m.Description)
	}
	return nil
}

// EvaluateMilestones recomputes metrics, unlocks any newly earned
// milestones, and persists the result. Returns the milestones that
// unlocked in this pass.
func EvaluateMilestones(ctx *Context) ([]models.Milestone, error) {
	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return nil, err
	}
	reflections, err := ctx.Store.CountReflections()
	if err != nil {
		return nil, err
	}
	milestones, err := ctx.Store.GetMilestones()
	if err != nil {
		return nil, err
	}

	metrics := engine.CollectMetrics(habits, reflections, ctx.Today())
	updated, newly := engine.EvaluateMilestones(milestones, metrics, ctx.Today())

	if len(newly) > 0 {
		if err := ctx.Store.SaveMilestones(updated); err != nil {
			return nil, err
		}
	}
	return newly, nil
}

type HabitShowCmd struct {
	Name string `arg:"" help:"Habit name."`
	Days int    `help:"Days of history to show." default:"14"`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.EnsureRolledOver(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	today := ctx.Today()

	emoji := habit.Emoji
	if emoji != "" {
		emoji += " "
	}
	fmt.Printf("%s%s\n", emoji, habit.Name)
	if habit.Category != "" {
		fmt.Printf("Category:  %s\n", habit.Category)
	}
	if habit.Target != "" {
		fmt.Printf("Target:    %s\n", habit.Target)
	}
	fmt.Printf("Schedule:  %s\n", FormatSchedule(habit.Schedule))
	if habit.ReminderTime != "" {
		fmt.Printf("Reminder:  %s\n", habit.ReminderTime)
	}
	fmt.Printf("Streak:    %d current / %d longest\n", engine.CurrentStreak(habit, today), engine.LongestStreak(habit))
	fmt.Printf("Total:     %d completions\n", len(habit.SortedCompletionDates()))

	// History strip, oldest to newest
	var marks []string
	for day := engine.DaysAgo(today, c.Days-1); day <= today; day = engine.NextDay(day) {
		switch {
		case habit.CompletedOn(day):
			marks = append(marks, "■")
		case habit.SkippedOn(day):
			marks = append(marks, "~")
		case !engine.IsDue(habit.Schedule, day):
			marks = append(marks, "·")
		default:
			marks = append(marks, "□")
		}
	}
	fmt.Printf("\nLast %d days: %s\n", c.Days, strings.Join(marks, " "))

	return nil
}

type HabitMoveCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Position int    `arg:"" help:"New zero-based position."`
}

func (c *HabitMoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	from := -1
	for i, h := range habits {
		if h.Name == c.Name {
			from = i
			break
		}
	}
	if from == -1 {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	to := c.Position
	if to < 0 {
		to = 0
	}
	if to >= len(habits) {
		to = len(habits) - 1
	}

	moved := habits[from]
	habits = append(habits[:from], habits[from+1:]...)
	habits = append(habits[:to], append([]models.Habit{moved}, habits[to:]...)...)

	for i := range habits {
		habits[i].Position = i
		if err := ctx.Store.UpdateHabit(habits[i]); err != nil {
			return err
		}
	}

	fmt.Printf("Moved %q to position %d\n", c.Name, to)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s (restore with 'tend habit restore %q')\n", c.Name, c.Name)
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return err
	}

	for _, h := range habits {
		if h.Name == c.Name && h.DeletedAt != nil {
			if err := ctx.Store.RestoreHabit(h.ID); err != nil {
				return err
			}
			fmt.Printf("Restored habit: %s\n", c.Name)
			return nil
		}
	}

	return fmt.Errorf("no deleted habit named %q", c.Name)
}
