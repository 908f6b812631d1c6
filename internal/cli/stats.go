package cli

import (
	"fmt"

	"github.com/tendapp/tend/internal/engine"
)

type StatsCmd struct {
	Days int `help:"Length of the trailing window in days." default:"30"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.EnsureRolledOver(); err != nil {
		return err
	}

	if c.Days < 1 {
		return fmt.Errorf("window must be at least 1 day")
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := ctx.Today()
	start := engine.DaysAgo(today, c.Days-1)

	stats := engine.StatsForRange(habits, start, today, today)
	fmt.Printf("Last %d days (%s to %s)\n\n", c.Days, start, today)
	fmt.Printf("Completion rate:  %d%% (%d of %d)\n", stats.Rate, stats.Completed, stats.Possible)
	fmt.Printf("Perfect days:     %d\n", stats.PerfectDays)
	fmt.Printf("Best perfect run: %d\n", stats.BestPerfectRun)

	bestStreak, activeStreaks := 0, 0
	for _, h := range habits {
		if h.LongestStreak > bestStreak {
			bestStreak = h.LongestStreak
		}
		if h.CurrentStreak > 0 {
			activeStreaks++
		}
	}
	fmt.Printf("Best streak ever: %d\n", bestStreak)
	fmt.Printf("Active streaks:   %d of %d habits\n", activeStreaks, len(habits))

	fmt.Println("\nPer habit:")
	for _, hs := range engine.BreakdownForRange(habits, start, today, today) {
		emoji := hs.Habit.Emoji
		if emoji != "" {
			emoji += " "
		}
		if hs.Scheduled == 0 {
			fmt.Printf("  %s%-20s  not scheduled in window\n", emoji, hs.Habit.Name)
			continue
		}
		fmt.Printf("  %s%-20s  %3d%%  (%d/%d)\n", emoji, hs.Habit.Name, hs.Rate, hs.Completed, hs.Scheduled)
	}

	return nil
}
