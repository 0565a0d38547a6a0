package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/utils"
	"github.com/julianstephens/habitkit/internal/validation"
)

type HabitToggleCmd struct {
	ID   string `arg:"" help:"Habit ID."`
	Date string `short:"d" help:"Date to toggle (YYYY-MM-DD), defaults to today."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = utils.FormatDate(time.Now())
	}
	if err := validation.Date("date", date); err != nil {
		return err
	}

	habit, err := ctx.Habits.ToggleCompletion(user.ID, c.ID, date, time.Now())
	if err != nil {
		return err
	}

	if habit.CompletedOn(date) {
		fmt.Printf("Marked %s complete for %s.\n", habit.Name, date)
	} else {
		fmt.Printf("Unmarked %s for %s.\n", habit.Name, date)
	}
	return nil
}
