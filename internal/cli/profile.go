package cli

import (
	"fmt"

	"github.com/tendapp/tend/internal/engine"
)

type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"" help:"Show your profile." default:"1"`
	Set  ProfileSetCmd  `cmd:"" help:"Update profile fields."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.EnsureRolledOver(); err != nil {
		return err
	}

	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}
	reflections, err := ctx.Store.CountReflections()
	if err != nil {
		return err
	}
	milestones, err := ctx.Store.GetMilestones()
	if err != nil {
		return err
	}

	name := profile.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Println(name)
	if profile.Tagline != "" {
		fmt.Println(profile.Tagline)
	}
	if profile.JoinDate != "" {
		fmt.Printf("Tracking since %s\n", profile.JoinDate)
	}

	metrics := engine.CollectMetrics(habits, reflections, ctx.Today())
	unlocked := 0
	for _, m := range milestones {
		if m.Unlocked {
			unlocked++
		}
	}

	fmt.Printf("\nHabits:       %d\n", metrics.HabitCount)
	fmt.Printf("Completions:  %d\n", metrics.TotalCompletions)
	fmt.Printf("Best streak:  %d\n", metrics.BestStreak)
	fmt.Printf("Reflections:  %d\n", metrics.ReflectionCount)
	fmt.Printf("Milestones:   %d of %d\n", unlocked, len(milestones))

	return nil
}

type ProfileSetCmd struct {
	Name    *string `help:"Display name."`
	Tagline *string `help:"Short tagline."`
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return err
	}

	if c.Name != nil {
		profile.Name = *c.Name
	}
	if c.Tagline != nil {
		profile.Tagline = *c.Tagline
	}
	if profile.JoinDate == "" {
		profile.JoinDate = ctx.Today()
	}

	if err := ctx.Store.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Println("Profile updated.")
	return nil
}
