package cli

import (
	"fmt"
	"time"
)

type TaskToggleCmd struct {
	Date string `arg:"" help:"Date the task is filed under (YYYY-MM-DD)."`
	ID   string `arg:"" help:"Task ID."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}

	task, err := ctx.Calendar.ToggleComplete(c.Date, c.ID, time.Now())
	if err != nil {
		return err
	}

	if task.Completed {
		fmt.Printf("Completed: %s\n", task.Title)
	} else {
		fmt.Printf("Reopened: %s\n", task.Title)
	}
	return nil
}
