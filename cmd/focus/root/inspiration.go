package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"focusboard/internal/engine"
	"focusboard/internal/storage"
	"focusboard/internal/ui"
)

func newInspirationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspiration",
		Aliases: []string{"inspi"},
		Short:   "Show today's inspiration (generated on first view)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showInspiration(cmd, (*engine.Service).GetTodayOrGenerate)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "regen",
			Short: "Generate another inspiration for today",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showInspiration(cmd, (*engine.Service).Regenerate)
			},
		},
		newInspirationHistoryCmd(),
	)
	return cmd
}

func showInspiration(cmd *cobra.Command, get func(*engine.Service, context.Context) (*engine.InspirationResult, error)) error {
	ctx := context.Background()
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := get(svc, ctx)
	if err != nil {
		return err
	}
	printInspiration(cmd, res.Inspiration)
	if res.Generated {
		fmt.Fprintln(cmd.OutOrStdout(), ui.XPDelta(res.XPGained))
		printBadges(cmd, res.NewBadges)
	}
	return nil
}

func printInspiration(cmd *cobra.Command, insp storage.Inspiration) {
	out := cmd.OutOrStdout()
	section := func(title string, lines ...string) {
		fmt.Fprintln(out, ui.H2.Render(title))
		for _, l := range lines {
			if strings.TrimSpace(l) != "" {
				fmt.Fprintln(out, "  "+l)
			}
		}
	}

	fmt.Fprintln(out, ui.Heading(ui.IconInspiration, "Inspiration "+insp.Date))
	a := insp.Artist
	section("Artiste", fmt.Sprintf("%s (%s)", a.Name, a.Style), a.Description, ui.Muted.Render(strings.Join(a.Palette, " ")))
	pe := insp.Personality
	section("Personnalité", pe.Name, pe.Bio, ui.Muted.Render(pe.WikiLink))
	b := insp.Book
	section("Livre", fmt.Sprintf("%s, %s", b.Title, b.Author), b.Summary, b.Context, b.Importance)
	w := insp.Artwork
	section("Œuvre", fmt.Sprintf("%s, %s", w.Name, w.Artist), w.Techniques, w.Meaning)
	al := insp.Album
	section("Album", fmt.Sprintf("%s, %s (%s)", al.Title, al.Artist, al.Style), ui.Muted.Render(al.SpotifyLink))
	in := insp.Invention
	section("Invention", fmt.Sprintf("%s, %s (%s)", in.Name, in.Inventor, in.Date), in.Impact)
	wd := insp.Word
	section("Mot du jour", ui.Key.Render(wd.Word)+" : "+wd.Definition, wd.Etymology, ui.Muted.Render(wd.Example))
	section("Exercice", insp.Exercise)
}

func newInspirationHistoryCmd() *cobra.Command {
	var viewed bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored inspirations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if viewed {
				list, err := svc.Viewed(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Heading(ui.IconInspiration, fmt.Sprintf("Vues (%d)", len(list))))
				for _, insp := range list {
					fmt.Fprintf(out, "- %s %s %s\n", ui.Muted.Render(insp.Date), insp.Artist.Name, ui.Muted.Render(insp.Word.Word))
				}
				return nil
			}

			list, err := svc.History(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Heading(ui.IconInspiration, "Historique"))
			for _, h := range list {
				fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(h.Key), h.Inspiration.Artist.Name, ui.Muted.Render(h.Inspiration.Word.Word))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&viewed, "viewed", false, "List the deduplicated viewed set instead")

	return cmd
}
