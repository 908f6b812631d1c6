package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tendapp/tend/internal/engine"
	"github.com/tendapp/tend/internal/models"
)

type ReflectCmd struct {
	Add  ReflectAddCmd  `cmd:"" help:"Write a reflection."`
	List ReflectListCmd `cmd:"" help:"List recent reflections."`
}

type ReflectAddCmd struct {
	Text  string `arg:"" help:"Reflection text."`
	Habit string `help:"Attach to a specific habit."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ReflectAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	habitID := ""
	if c.Habit != "" {
		habit, err := ctx.Store.GetHabitByName(c.Habit)
		if err != nil {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
		habitID = habit.ID
	}

	reflection := models.Reflection{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Day:       day,
		Text:      c.Text,
		CreatedAt: time.Now(),
	}
	if err := reflection.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddReflection(reflection); err != nil {
		return err
	}
	fmt.Printf("Saved reflection for %s\n", day)

	newly, err := EvaluateMilestones(ctx)
	if err != nil {
		return err
	}
	for _, m := range newly {
		fmt.Printf("%s Milestone unlocked: %s — %s\n", m.Icon, m.Name, m.Description)
	}
	return nil
}

type ReflectListCmd struct {
	Days int `help:"Days of reflections to show." default:"30"`
}

func (c *ReflectListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	today := ctx.Today()
	start := engine.DaysAgo(today, c.Days-1)

	reflections, err := ctx.Store.GetReflections(start, today)
	if err != nil {
		return err
	}

	if len(reflections) == 0 {
		fmt.Println("No reflections found.")
		return nil
	}

	for _, r := range reflections {
		fmt.Printf("%s  %s\n", r.Day, r.Text)
	}
	return nil
}
