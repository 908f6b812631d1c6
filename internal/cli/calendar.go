package cli

import (
	"fmt"
	"time"

	"github.com/tendapp/tend/internal/engine"
)

type CalendarCmd struct {
	Month string `help:"Month to show in YYYY-MM format (default: current)." default:""`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.EnsureRolledOver(); err != nil {
		return err
	}

	today := ctx.Today()

	month := c.Month
	if month == "" {
		month = today[:7]
	}
	first, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return fmt.Errorf("invalid month format: %s (expected YYYY-MM)", month)
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n", first.Format("January 2006"))
	fmt.Println("Su Mo Tu We Th Fr Sa")

	// Pad the first week
	for i := 0; i < int(first.Weekday()); i++ {
		fmt.Print("   ")
	}

	lastDay := first.AddDate(0, 1, -1).Day()
	for d := 1; d <= lastDay; d++ {
		date := first.AddDate(0, 0, d-1)
		day := engine.FormatDate(date)

		// Each cell is 3 chars wide: the day number plus a status mark,
		// lining up under the weekday header.
		mark := " "
		if day <= today {
			switch engine.StatusForDay(habits, day) {
			case engine.StatusAll:
				mark = "●"
			case engine.StatusPartial:
				mark = "◐"
			default:
				mark = "·"
			}
		}
		fmt.Printf("%2d%s", d, mark)
		if date.Weekday() == time.Saturday {
			fmt.Println()
		}
	}
	fmt.Println()
	fmt.Println("\n● all done   ◐ partial   · none")

	monthStart := engine.FormatDate(first)
	monthEnd := engine.FormatDate(first.AddDate(0, 1, -1))
	stats := engine.StatsForRange(habits, monthStart, monthEnd, today)
	fmt.Printf("\nMonth: %d%% (%d of %d), %d perfect day(s)\n", stats.Rate, stats.Completed, stats.Possible, stats.PerfectDays)

	return nil
}
