package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/habits"
)

type HabitEditCmd struct {
	ID          string  `arg:"" help:"Habit ID."`
	Name        *string `short:"n" help:"New name."`
	Description *string `short:"d" help:"New description."`
	Icon        *string `short:"i" help:"New icon."`
	Color       *string `short:"c" help:"New accent color (#RRGGBB)."`
	Frequency   *string `short:"f" help:"New frequency (daily|weekly|monthly)."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}

	in := habits.UpdateInput{
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
	}
	if c.Frequency != nil {
		f := constants.Frequency(*c.Frequency)
		in.Frequency = &f
	}

	habit, err := ctx.Habits.Update(user.ID, c.ID, in, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}
