package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/habits"
	"github.com/julianstephens/habitkit/internal/validation"
)

type HabitAddCmd struct {
	Name        string   `arg:"" optional:"" help:"Habit name."`
	Description string   `short:"d" help:"Longer description."`
	Icon        string   `short:"i" help:"Icon (emoji or short text)."`
	Color       string   `short:"c" help:"Accent color (#RRGGBB)."`
	Frequency   string   `short:"f" help:"Frequency (daily|weekly|monthly)." default:"daily"`
	Task        []string `short:"t" help:"Sub-task text, repeatable."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}

	in := habits.CreateInput{
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		Frequency:   constants.Frequency(c.Frequency),
		Tasks:       c.Task,
	}

	if in.Name == "" {
		if err := habitForm(&in); err != nil {
			return err
		}
	}

	habit, err := ctx.Habits.Create(user.ID, in, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}

func habitForm(in *habits.CreateInput) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&in.Name).
				Validate(func(s string) error {
					return validation.Required("name", s)
				}),
			huh.NewInput().
				Title("Description").
				Value(&in.Description),
			huh.NewInput().
				Title("Icon").
				Value(&in.Icon),
			huh.NewInput().
				Title("Color (#RRGGBB)").
				Value(&in.Color).
				Validate(validation.HexColor),
			huh.NewSelect[constants.Frequency]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", constants.FrequencyDaily),
					huh.NewOption("Weekly", constants.FrequencyWeekly),
					huh.NewOption("Monthly", constants.FrequencyMonthly),
				).
				Value(&in.Frequency),
		),
	).WithTheme(huh.ThemeDracula()).Run()
}
