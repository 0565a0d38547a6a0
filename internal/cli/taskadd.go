package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/utils"
)

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `short:"d" help:"Longer description."`
	Type        string `short:"T" help:"Task type (task|meeting|reminder|event)." default:"task"`
	Date        string `short:"D" help:"Date (YYYY-MM-DD), defaults to today."`
	Time        string `short:"t" help:"Time of day (HH:MM)."`
	AllDay      bool   `short:"a" help:"All-day task (no time)."`
	Recurrence  string `short:"r" help:"Repeat rule (none|daily|weekdays|weekly|monthly)." default:"none"`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = utils.FormatDate(time.Now())
	}

	task, err := ctx.Calendar.Add(calendar.CreateInput{
		Title:       c.Title,
		Description: c.Description,
		Type:        constants.TaskType(c.Type),
		Date:        date,
		Time:        c.Time,
		AllDay:      c.AllDay,
		Recurrence:  constants.TaskRecurrence(c.Recurrence),
	}, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s on %s (ID: %s)\n", task.Title, task.Date, task.ID)
	return nil
}
