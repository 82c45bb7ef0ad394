package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"focusboard/internal/engine"
)

// RunBoard shows today's routine with the profile header until the user quits.
func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newBoardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

// RunQuiz plays one quiz of the given kind interactively.
func RunQuiz(ctx context.Context, svc *engine.Service, kind engine.QuizKind, out io.Writer) error {
	m := newQuizModel(ctx, svc, kind)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
