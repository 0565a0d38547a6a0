package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/constants"
)

type TaskEditCmd struct {
	Date        string  `arg:"" help:"Date the task is filed under (YYYY-MM-DD)."`
	ID          string  `arg:"" help:"Task ID."`
	Title       *string `short:"n" help:"New title."`
	Description *string `short:"d" help:"New description."`
	Type        *string `short:"T" help:"New type (task|meeting|reminder|event)."`
	Time        *string `short:"t" help:"New time of day (HH:MM)."`
	AllDay      *bool   `short:"a" help:"Mark or unmark all-day."`
	Recurrence  *string `short:"r" help:"New repeat rule (none|daily|weekdays|weekly|monthly)."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}

	in := calendar.UpdateInput{
		Title:       c.Title,
		Description: c.Description,
		Time:        c.Time,
		AllDay:      c.AllDay,
	}
	if c.Type != nil {
		tt := constants.TaskType(*c.Type)
		in.Type = &tt
	}
	if c.Recurrence != nil {
		r := constants.TaskRecurrence(*c.Recurrence)
		in.Recurrence = &r
	}

	task, err := ctx.Calendar.Update(c.Date, c.ID, in, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Updated task: %s\n", task.Title)
	return nil
}
