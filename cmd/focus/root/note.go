package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"focusboard/internal/engine"
	"focusboard/internal/storage"
	"focusboard/internal/ui"
)

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes"},
		Short:   "List notes, pinned first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			notes, err := svc.ListNotes(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconNote, "Notes"))
			if len(notes) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(vide)"))
			}
			for _, n := range notes {
				printNoteLine(cmd, n)
			}
			return nil
		},
	}

	cmd.AddCommand(
		newNoteAddCmd(),
		newNoteShowCmd(),
		newNoteEditCmd(),
		newNotePinCmd(),
		newNoteRmCmd(),
	)
	return cmd
}

func printNoteLine(cmd *cobra.Command, n storage.Note) {
	pin := "  "
	if n.Pinned {
		pin = ui.IconPin
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", pin, ui.Muted.Render(shortID(n.ID)), ui.Key.Render(n.Title), ui.Muted.Render(n.UpdatedAt.Local().Format("2006-01-02 15:04")))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func requireRef(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errors.New("note id is required")
	}
	return nil
}

func newNoteAddCmd() *cobra.Command {
	var body string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a note",
		Long:  "Create a note. Without a title it is called \"" + engine.DefaultNoteTitle + "\".",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := svc.CreateNote(ctx, strings.Join(args, " "), body)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconPlus), n.Title, ui.Muted.Render(shortID(n.ID)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&body, "body", "b", "", "Note content")

	return cmd
}

func newNoteShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a note",
		Args:  requireRef,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := svc.FindNote(ctx, args[0])
			if err != nil {
				return err
			}
			printNoteLine(cmd, *n)
			if n.Content != "" {
				fmt.Fprintln(cmd.OutOrStdout(), "")
				fmt.Fprintln(cmd.OutOrStdout(), n.Content)
			}
			return nil
		},
	}

	return cmd
}

func newNoteEditCmd() *cobra.Command {
	var title string
	var body string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a note's title or content",
		Args:  requireRef,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := svc.FindNote(ctx, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("body") {
				body = n.Content
			}
			n, err = svc.UpdateNote(ctx, n.ID, title, body)
			if err != nil {
				return err
			}
			printNoteLine(cmd, *n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "New title (unchanged when empty)")
	cmd.Flags().StringVarP(&body, "body", "b", "", "New content")

	return cmd
}

func newNotePinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin <id>",
		Short: "Pin or unpin a note",
		Args:  requireRef,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := svc.FindNote(ctx, args[0])
			if err != nil {
				return err
			}
			n, err = svc.TogglePin(ctx, n.ID)
			if err != nil {
				return err
			}
			printNoteLine(cmd, *n)
			return nil
		},
	}

	return cmd
}

func newNoteRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  requireRef,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := svc.FindNote(ctx, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteNote(ctx, n.ID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Supprimée : "+n.Title))
			return nil
		},
	}

	return cmd
}
