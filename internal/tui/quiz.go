package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"focusboard/internal/engine"
	"focusboard/internal/ui"
)

type quizModel struct {
	ctx     context.Context
	svc     *engine.Service
	session *engine.QuizSession
	kind    engine.QuizKind

	spinner  spinner.Model
	loading  bool
	cursor   int
	feedback *engine.AnswerResult
	err      error
}

type quizStartedMsg struct{ err error }

type quizAdvancedMsg struct {
	outcome *engine.QuizOutcome
	err     error
}

func newQuizModel(ctx context.Context, svc *engine.Service, kind engine.QuizKind) quizModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.Key
	return quizModel{
		ctx:     ctx,
		svc:     svc,
		session: svc.NewQuizSession(),
		kind:    kind,
		spinner: sp,
		loading: true,
	}
}

func (m quizModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startCmd())
}

func (m quizModel) startCmd() tea.Cmd {
	return func() tea.Msg {
		return quizStartedMsg{err: m.session.Start(m.ctx, m.kind)}
	}
}

func (m quizModel) advanceCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Advance(m.ctx)
		return quizAdvancedMsg{outcome: out, err: err}
	}
}

func (m quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case quizStartedMsg:
		m.loading = false
		m.err = msg.err
		return m, nil
	case quizAdvancedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.cursor = 0
		m.feedback = nil
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m quizModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" || key == "esc" {
		return m, tea.Quit
	}
	if m.loading || m.err != nil {
		return m, nil
	}
	switch m.session.State() {
	case engine.StateResults:
		if key == "enter" {
			return m, tea.Quit
		}
		return m, nil
	case engine.StateActive:
	default:
		return m, nil
	}

	cur, _ := m.session.Current()
	if m.feedback != nil {
		if key == "enter" || key == " " || key == "n" {
			if m.session.Index() < m.session.Total()-1 {
				if _, err := m.session.Advance(m.ctx); err != nil {
					m.err = err
				}
				m.cursor = 0
				m.feedback = nil
				return m, nil
			}
			// The last answer persists the result.
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.advanceCmd())
		}
		return m, nil
	}
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(cur.Options)-1 {
			m.cursor++
		}
	case "1", "2", "3", "4":
		if idx := int(key[0] - '1'); idx < len(cur.Options) {
			m.cursor = idx
			return m.answer()
		}
	case "enter", " ":
		return m.answer()
	}
	return m, nil
}

func (m quizModel) answer() (tea.Model, tea.Cmd) {
	res, err := m.session.SelectAnswer(m.cursor)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.feedback = &res
	return m, nil
}

func (m quizModel) View() string {
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconQuiz, quizTitle(m.kind)))
	b.WriteString("\n\n")

	if m.err != nil {
		switch {
		case errors.Is(m.err, engine.ErrNoViewedInspirations):
			b.WriteString(ui.Warn.Render("Consulte d'abord quelques inspirations (focus inspiration)."))
		default:
			b.WriteString(ui.Bad.Render("Erreur : " + m.err.Error()))
		}
		b.WriteString("\n\nq pour quitter.\n")
		return b.String()
	}
	if m.loading {
		b.WriteString(m.spinner.View() + " Génération du quiz…\n")
		return b.String()
	}

	switch m.session.State() {
	case engine.StateActive:
		m.renderQuestion(&b)
	case engine.StateResults:
		m.renderResults(&b)
	}
	return b.String()
}

func (m quizModel) renderQuestion(b *strings.Builder) {
	cur, _ := m.session.Current()
	if m.session.Offline() {
		b.WriteString(ui.Muted.Render("(quiz hors ligne)") + "\n")
	}
	fmt.Fprintf(b, "%s\n\n", ui.Muted.Render(fmt.Sprintf("Question %d/%d", m.session.Index()+1, m.session.Total())))
	b.WriteString(ui.H2.Render(cur.Question))
	b.WriteString("\n\n")
	for i, opt := range cur.Options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%d. %s", cursor, i+1, opt)
		if m.feedback != nil {
			switch {
			case i == m.feedback.CorrectIndex:
				line = ui.Good.Render(line + " " + ui.IconDone)
			case i == m.feedback.Selected:
				line = ui.Bad.Render(line)
			}
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	if m.feedback != nil {
		if m.feedback.Correct {
			b.WriteString(ui.Good.Render("Bonne réponse !"))
		} else {
			b.WriteString(ui.Bad.Render("Raté."))
		}
		b.WriteString(ui.Muted.Render("  entrée : suivant") + "\n")
		return
	}
	b.WriteString(ui.Muted.Render("↑/↓ puis entrée, ou 1-4 · q : quitter") + "\n")
}

func (m quizModel) renderResults(b *strings.Builder) {
	out := m.session.Outcome()
	if out == nil {
		return
	}
	fmt.Fprintf(b, "%s\n", ui.LabelValue("Score", fmt.Sprintf("%d/%d (%d%%)", out.Result.Score, out.Result.Total, out.Percent)))
	fmt.Fprintf(b, "%s\n", ui.XPDelta(out.XPGained))
	if out.Profile != nil {
		fmt.Fprintf(b, "%s\n", ui.LabelValue("Niveau", out.Profile.Level))
	}
	for _, id := range out.NewBadges {
		if badge, ok := engine.BadgeByID(id); ok {
			fmt.Fprintf(b, "%s %s %s\n", ui.IconTrophy, badge.Icon, ui.Gold.Render(badge.Name))
		}
	}
	b.WriteString("\n" + ui.Muted.Render("entrée : quitter") + "\n")
}

func quizTitle(kind engine.QuizKind) string {
	if kind == engine.QuizInspiration {
		return "Quiz culture"
	}
	return "Quiz code de la route"
}
