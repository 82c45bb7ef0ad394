package root

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"focusboard/internal/engine"
	"focusboard/internal/tui"
)

func newQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "quiz <code|inspiration>",
		Short:     "Play a quiz (code de la route, or culture from viewed inspirations)",
		ValidArgs: []string{string(engine.QuizCode), string(engine.QuizInspiration)},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quiz kind is required (code|inspiration)")
			}
			_, err := engine.ParseQuizKind(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := engine.ParseQuizKind(args[0])
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunQuiz(ctx, svc, kind, cmd.OutOrStdout())
		},
	}

	return cmd
}
