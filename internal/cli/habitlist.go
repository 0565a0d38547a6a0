package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/habits"
)

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	user, err := ctx.requireUser()
	if err != nil {
		return err
	}

	list, err := ctx.Habits.List(user.ID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No habits yet. Add one with 'habitkit habit add'.")
		return nil
	}

	now := time.Now()
	for _, h := range list {
		fmt.Println(formatHabitLine(h, habits.Progress(h, now)))
	}
	return nil
}
