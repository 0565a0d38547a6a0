package cli

import "fmt"

type TaskDeleteCmd struct {
	Date string `arg:"" help:"Date the task is filed under (YYYY-MM-DD)."`
	ID   string `arg:"" help:"Task ID."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}
	if err := ctx.Calendar.Delete(c.Date, c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted task: %s\n", c.ID)
	return nil
}
