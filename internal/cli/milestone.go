package cli

import (
	"fmt"
)

type MilestonesCmd struct{}

func (c *MilestonesCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.EnsureRolledOver(); err != nil {
		return err
	}

	// Pick up anything earned since the last mutation
	newly, err := EvaluateMilestones(ctx)
	if err != nil {
		return err
	}
	for _, m := range newly {
		fmt.Printf("%s Milestone unlocked: %s — %s\n", m.Icon, m.Name, m.Description)
	}
	if len(newly) > 0 {
		fmt.Println()
	}

	milestones, err := ctx.Store.GetMilestones()
	if err != nil {
		return err
	}

	unlocked := 0
	for _, m := range milestones {
		if m.Unlocked {
			unlocked++
			fmt.Printf("%s %-15s %s (unlocked %s)\n", m.Icon, m.Name, m.Description, m.UnlockedAt)
		} else {
			fmt.Printf("🔒 %-15s %s\n", m.Name, m.Description)
		}
	}

	fmt.Printf("\n%d of %d unlocked\n", unlocked, len(milestones))
	return nil
}
