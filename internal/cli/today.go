package cli

import (
	"fmt"

	"github.com/tendapp/tend/internal/engine"
)

type TodayCmd struct {
	Date string `help:"Show a different day in YYYY-MM-DD format." default:""`
}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.EnsureRolledOver(); err != nil {
		return err
	}

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	due := engine.DueHabits(habits, day)
	if len(due) == 0 {
		fmt.Printf("Nothing scheduled for %s.\n", day)
		return nil
	}

	fmt.Printf("Habits for %s:\n\n", day)
	completed := 0
	for _, habit := range due {
		status := "[ ]"
		switch {
		case habit.CompletedOn(day):
			status = "[x]"
			completed++
		case habit.SkippedOn(day):
			status = "[~]"
		}
		emoji := habit.Emoji
		if emoji != "" {
			emoji += " "
		}
		streak := ""
		if s := engine.CurrentStreak(habit, day); s > 0 {
			streak = fmt.Sprintf("  🔥 %d", s)
		}
		fmt.Printf("%s %s%s%s\n", status, emoji, habit.Name, streak)
	}

	fmt.Printf("\nCompleted: %d/%d", completed, len(due))
	if status := engine.StatusForDay(habits, day); status == engine.StatusAll {
		fmt.Print("  — perfect day!")
	}
	fmt.Println()

	return nil
}
