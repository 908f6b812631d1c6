package cli

import (
	"fmt"

	"github.com/tendapp/tend/internal/engine"
	"github.com/tendapp/tend/internal/models"
)

type ReviewCmd struct {
	Days int `help:"Length of the review window in days." default:"7"`
}

func (c *ReviewCmd) Run(ctx *Context) error {
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
	breakdown := engine.BreakdownForRange(habits, start, today, today)

	fmt.Printf("Review: %s to %s\n\n", start, today)
	fmt.Printf("Overall: %d%% (%d of %d), %d perfect day(s)\n", stats.Rate, stats.Completed, stats.Possible, stats.PerfectDays)

	if best, worst, ok := bestAndWorstDays(habits, start, today); ok {
		fmt.Printf("Best day:  %s\n", best)
		fmt.Printf("Worst day: %s\n", worst)
	}

	if thriving := engine.Thriving(breakdown); len(thriving) > 0 {
		fmt.Println("\nThriving:")
		for _, hs := range thriving {
			fmt.Printf("  %s  %d%% (%d/%d)\n", hs.Habit.Name, hs.Rate, hs.Completed, hs.Scheduled)
		}
	}

	if struggling := engine.Struggling(breakdown); len(struggling) > 0 {
		fmt.Println("\nNeeds attention:")
		for _, hs := range struggling {
			fmt.Printf("  %s  %d%% (%d/%d)\n", hs.Habit.Name, hs.Rate, hs.Completed, hs.Scheduled)
		}
	}

	reflections, err := ctx.Store.GetReflections(start, today)
	if err != nil {
		return err
	}
	if len(reflections) > 0 {
		fmt.Println("\nReflections:")
		for _, r := range reflections {
			fmt.Printf("  %s  %s\n", r.Day, r.Text)
		}
	}

	return nil
}

// bestAndWorstDays ranks the days in [start, end] by completed-among-due
// ratio. Days with nothing due are ignored; ok is false when no day in the
// window had a due habit.
func bestAndWorstDays(habits []models.Habit, start, end string) (best, worst string, ok bool) {
	bestRatio, worstRatio := -1.0, 2.0
	for day := start; day <= end; day = engine.NextDay(day) {
		due := engine.DueHabits(habits, day)
		if len(due) == 0 {
			continue
		}
		completed := 0
		for _, h := range due {
			if h.CompletedOn(day) {
				completed++
			}
		}
		ratio := float64(completed) / float64(len(due))
		if ratio > bestRatio {
			bestRatio, best = ratio, day
		}
		if ratio < worstRatio {
			worstRatio, worst = ratio, day
		}
	}
	return best, worst, bestRatio >= 0
}
