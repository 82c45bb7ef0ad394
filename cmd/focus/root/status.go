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

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"stats"},
		Short:   "Show profile, streak and quiz statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ov, err := svc.Overview(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			p := ov.Profile
			prog := ov.Progress

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, p.Pseudo))
			fmt.Fprintln(out, ui.LabelValue("Niveau", p.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d (prochain niveau à %d)", p.XP, prog.Next)))
			fmt.Fprintf(out, "%s %s\n", ui.ProgressBar(prog.Percent, 30), ui.Muted.Render(fmt.Sprintf("%.0f%%", prog.Percent)))
			fmt.Fprintln(out, ui.LabelValue(ui.IconFire+" Série", fmt.Sprintf("%d jour(s)", ov.Streak)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconQuiz+" Quiz"))
			fmt.Fprintf(out, "- Code : moyenne %d%%, meilleur %d%% %s\n", ov.Code.Avg, ov.Code.Best, ui.Muted.Render(fmt.Sprintf("(%d quiz)", ov.Code.Count)))
			fmt.Fprintf(out, "- Culture : moyenne %d%%, meilleur %d%% %s\n", ov.Inspiration.Avg, ov.Inspiration.Best, ui.Muted.Render(fmt.Sprintf("(%d quiz)", ov.Inspiration.Count)))
			if ov.CodeRecent.Count > 0 || ov.InspirationRecent.Count > 0 {
				fmt.Fprintf(out, "- %d derniers : code %d%%, culture %d%%\n", engine.RecentQuizWindow, ov.CodeRecent.Avg, ov.InspirationRecent.Avg)
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconJournal+" IA"))
			fmt.Fprintln(out, ui.LabelValue("Aujourd'hui", ov.AIUsageToday))
			week := make([]string, 0, len(ov.AIUsageWeek))
			for _, d := range ov.AIUsageWeek {
				week = append(week, fmt.Sprintf("%s:%d", d.Date[5:], d.Count))
			}
			fmt.Fprintln(out, ui.LabelValue("7 jours", strings.Join(week, " ")))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.LabelValue(ui.IconInspiration+" Inspirations vues", ov.ViewedCount))
			fmt.Fprintln(out, ui.LabelValue(ui.IconPin+" Notes épinglées", ov.PinnedNotes))
			fmt.Fprintln(out, ui.LabelValue(ui.IconTrophy+" Badges", fmt.Sprintf("%d/%d", ov.BadgesEarned, ov.BadgesTotal)))
			return nil
		},
	}

	return cmd
}

func newPseudoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pseudo <name>",
		Short: "Change the profile pseudo",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("pseudo is required")
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

			p, err := svc.UpdatePseudo(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Pseudo : "+p.Pseudo))
			return nil
		},
	}

	return cmd
}

func newBadgesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "List badges and which ones are earned",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := svc.Badges(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Badges"))
			for _, b := range list {
				name := ui.Muted.Render(b.Name)
				if b.Earned {
					name = ui.Gold.Render(b.Name)
				}
				fmt.Fprintf(out, "- %s %s %s\n", b.Icon, name, ui.Muted.Render(b.Description))
			}
			return nil
		},
	}

	return cmd
}

// printBadges announces newly awarded badges.
func printBadges(cmd *cobra.Command, ids []string) {
	for _, id := range ids {
		b, ok := engine.BadgeByID(id)
		if !ok {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconTrophy, b.Icon, ui.Gold.Render("Nouveau badge : "+b.Name))
	}
}
