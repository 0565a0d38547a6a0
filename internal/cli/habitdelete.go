package cli

import "fmt"

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}
	if err := ctx.Habits.Delete(user.ID, c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", c.ID)
	return nil
}
