package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/habits"
	"github.com/julianstephens/habitkit/internal/utils"
)

type HabitProgressCmd struct {
	ID   string `arg:"" optional:"" help:"Habit ID; omit to show all habits."`
	Date string `short:"d" help:"Evaluate progress as of this date (YYYY-MM-DD)."`
}

func (c *HabitProgressCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}

	asOf := time.Now()
	if c.Date != "" {
		asOf, err = utils.ParseDate(c.Date)
		if err != nil {
			return err
		}
	}

	if c.ID != "" {
		habit, err := ctx.Habits.Get(user.ID, c.ID)
		if err != nil {
			return err
		}
		percent := habits.Progress(habit, asOf)
		fmt.Println(formatHabitLine(habit, percent))
		if habit.LastCompleted != "" {
			fmt.Printf("Last completed: %s\n", habit.LastCompleted)
		}
		return nil
	}

	list, err := ctx.Habits.List(user.ID)
	if err != nil {
		return err
	}
	for _, h := range list {
		fmt.Println(formatHabitLine(h, habits.Progress(h, asOf)))
	}
	return nil
}
