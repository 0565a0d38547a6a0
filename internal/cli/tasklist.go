package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/habitkit/internal/utils"
)

type TaskListCmd struct {
	Date  string `short:"d" help:"Date to list (YYYY-MM-DD), defaults to today."`
	Month bool   `short:"m" help:"List the whole month of the given date."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	if _, err := ctx.requireUser(); err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = utils.FormatDate(time.Now())
	}

	if c.Month {
		month, err := ctx.Calendar.ForMonth(date)
		if err != nil {
			return err
		}
		if len(month) == 0 {
			fmt.Println("No tasks this month.")
			return nil
		}
		dates := make([]string, 0, len(month))
		for d := range month {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		for _, d := range dates {
			fmt.Println(d)
			for _, t := range month[d] {
				fmt.Println("  " + formatTaskLine(t))
			}
		}
		return nil
	}

	tasks, err := ctx.Calendar.ForDate(date)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Printf("No tasks on %s.\n", date)
		return nil
	}
	for _, t := range tasks {
		fmt.Println(formatTaskLine(t))
	}
	return nil
}
