package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"focusboard/internal/engine"
	"focusboard/internal/ui"
)

func newJournalCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List AI usage journal entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.Journal(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconJournal, "Journal IA"))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(vide)"))
				return nil
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s %s %s %s\n", ui.Muted.Render(e.Timestamp.Local().Format("2006-01-02 15:04")), ui.Key.Render(e.Category), ui.ScoreText(e.Score), e.Question)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Entries to show (0 for all)")

	cmd.AddCommand(newJournalAddCmd())
	return cmd
}

func newJournalAddCmd() *cobra.Command {
	var category string
	var reason string

	cmd := &cobra.Command{
		Use:   "add <question>",
		Short: "Log an AI question and get it scored",
		Long:  "Categories: " + strings.Join(engine.Categories, ", "),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("question is required")
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

			cat, err := engine.ParseCategory(category)
			if err != nil {
				return err
			}
			res, err := svc.Submit(ctx, cat, strings.Join(args, " "), reason)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.LabelValue("Score", ui.ScoreText(res.Entry.Score)))
			fmt.Fprintln(out, res.Entry.Analysis)
			if res.Entry.Suggestion != "" {
				fmt.Fprintln(out, ui.Muted.Render(ui.IconInfo+" "+res.Entry.Suggestion))
			}
			fmt.Fprintln(out, ui.XPDelta(res.XPDelta))
			printBadges(cmd, res.NewBadges)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "Autre", "Category")
	cmd.Flags().StringVarP(&reason, "reason", "r", "", "Why you asked the AI (required)")

	return cmd
}
