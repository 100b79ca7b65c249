package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"workwise/internal/engine"
	"workwise/internal/ui"
)

func newTrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Daily task tracker (today only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()
			return showToday(ctx, cmd, svc)
		},
	}

	cmd.AddCommand(newTrackAddCmd(), newTrackDoneCmd(), newTrackNotesCmd())
	return cmd
}

func showToday(ctx context.Context, cmd *cobra.Command, svc *engine.Service) error {
	today, day, err := svc.Today(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconTask, "Today — "+today))
	if len(day.Tasks) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("(no tasks yet)"))
	}
	for _, task := range day.Tasks {
		fmt.Fprintf(out, "%s %s  %s\n", ui.Checkbox(task.Done), task.Title, ui.Muted.Render(task.ID))
	}
	if day.Notes != "" {
		fmt.Fprintln(out, ui.LabelValue("Notes", day.Notes))
	}
	return nil
}

func newTrackAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to today",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()

			task, err := svc.AddTask(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n", ui.Good.Render(ui.IconDone+" Added"), task.Title, ui.Muted.Render(task.ID))
			return nil
		},
	}
}

func newTrackDoneCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Toggle a task's done state",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()

			if date == "" {
				date, _, _ = svc.Today(ctx)
			}
			flipped, err := svc.ToggleTask(ctx, date, args[0])
			if err != nil {
				return err
			}
			if !flipped {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No such task for that day."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Toggled"))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day bucket (defaults to today)")
	return cmd
}

func newTrackNotesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notes <text>",
		Short: "Set today's notes",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("notes text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, "")
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.SetNotes(ctx, strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Notes saved"))
			return nil
		},
	}
}
