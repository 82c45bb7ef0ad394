package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"focusboard/internal/engine"
	"focusboard/internal/storage"
	"focusboard/internal/ui"
)

func newRoutineCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Show the daily routine",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, err := routineDate(svc, date)
			if err != nil {
				return err
			}
			tasks, err := svc.GetOrCreateDailyRoutine(ctx, day)
			if err != nil {
				return err
			}
			printRoutine(cmd, day, tasks)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&date, "date", "", "Day to use (YYYY-MM-DD, default today)")

	cmd.AddCommand(newRoutineToggleCmd(&date), newRoutineRegenCmd(&date))
	return cmd
}

func newRoutineToggleCmd(date *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <task-id|#>",
		Short: "Mark a task done, or undo it",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, err := routineDate(svc, *date)
			if err != nil {
				return err
			}
			tasks, err := svc.GetOrCreateDailyRoutine(ctx, day)
			if err != nil {
				return err
			}
			id := args[0]
			// A plain number selects by position as printed by `focus routine`.
			if n, convErr := strconv.Atoi(id); convErr == nil && n >= 1 && n <= len(tasks) {
				id = tasks[n-1].ID
			}

			res, err := svc.ToggleTask(ctx, day, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.TaskMark(res.Task.Completed), res.Task.Title, ui.XPDelta(res.XPDelta))
			printBadges(cmd, res.NewBadges)
			return nil
		},
	}

	return cmd
}

func newRoutineRegenCmd(date *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regen",
		Short: "Draw a new routine for the day (completion is reset)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, err := routineDate(svc, *date)
			if err != nil {
				return err
			}
			tasks, err := svc.RegenerateRoutine(ctx, day)
			if err != nil {
				return err
			}
			printRoutine(cmd, day, tasks)
			return nil
		},
	}

	return cmd
}

func routineDate(svc *engine.Service, date string) (string, error) {
	if date == "" {
		return svc.Today(), nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", engine.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	return date, nil
}

func printRoutine(cmd *cobra.Command, day string, tasks []storage.RoutineTask) {
	out := cmd.OutOrStdout()
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	fmt.Fprintln(out, ui.Heading(ui.IconRoutine, fmt.Sprintf("Routine du %s", day)))
	for i, t := range tasks {
		kind := ""
		if t.Type == engine.TaskVariable {
			kind = " " + ui.Muted.Render("(variable)")
		}
		fmt.Fprintf(out, "%2d. %s %s %s%s %s\n", i+1, ui.TaskMark(t.Completed), ui.Key.Render(t.Time), t.Title, kind, ui.Muted.Render(t.ID))
	}
	fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d/%d terminées", done, len(tasks))))
}
