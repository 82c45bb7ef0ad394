package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focusboard/internal/engine"
	"focusboard/internal/storage"
	"focusboard/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	date     string
	overview *engine.Overview
	tasks    []storage.RoutineTask
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	overview *engine.Overview
	tasks    []storage.RoutineTask
	err      error
}

type toggledMsg struct {
	res *engine.ToggleResult
	err error
}

type regeneratedMsg struct {
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		date:    svc.Today(),
		loading: true,
		lastLog: "Chargement…",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.svc.GetOrCreateDailyRoutine(m.ctx, m.date)
		if err != nil {
			return loadedMsg{err: err}
		}
		ov, err := m.svc.Overview(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{overview: ov, tasks: tasks}
	}
}

func (m boardModel) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ToggleTask(m.ctx, m.date, id)
		return toggledMsg{res: res, err: err}
	}
}

func (m boardModel) regenerateCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.RegenerateRoutine(m.ctx, m.date)
		return regeneratedMsg{err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Échec du chargement : " + msg.err.Error()
			return m, nil
		}
		m.overview = msg.overview
		m.tasks = msg.tasks
		if m.selected >= len(m.tasks) {
			m.selected = max(0, len(m.tasks)-1)
		}
		if m.lastLog == "Chargement…" {
			m.lastLog = fmt.Sprintf("Mis à jour à %s.", time.Now().Format("15:04:05"))
		}
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Échec : " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("%s %s %s", ui.TaskMark(msg.res.Task.Completed), msg.res.Task.Title, ui.XPDelta(msg.res.XPDelta))
		for _, id := range msg.res.NewBadges {
			if b, ok := engine.BadgeByID(id); ok {
				m.lastLog += fmt.Sprintf("  %s %s %s", ui.IconTrophy, b.Icon, b.Name)
			}
		}
		return m, m.loadCmd()
	case regeneratedMsg:
		if msg.err != nil {
			m.lastLog = "Échec : " + msg.err.Error()
			return m, nil
		}
		m.lastLog = "Nouvelle routine générée."
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Chargement…"
			return m, m.loadCmd()
		case "g":
			return m, m.regenerateCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ", "x":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			return m, m.toggleCmd(m.tasks[m.selected].ID)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Erreur : " + m.err.Error() + "\n\nq pour quitter.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	leftW := 28
	if m.width > 0 {
		leftW = max(18, min(leftW, m.width/2))
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	rows := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.overview == nil {
		return "FocusBoard | chargement…"
	}
	p := m.overview.Profile
	prog := m.overview.Progress
	return fmt.Sprintf("FocusBoard | %s | Niveau %d | %d XP %s %d/%d",
		p.Pseudo, p.Level, p.XP, progressBar(p.XP-prog.Floor, prog.Next-prog.Floor, 24), p.XP, prog.Next)
}

func (m boardModel) renderSidebar() string {
	if m.overview == nil {
		return "Stats\n\nChargement…"
	}
	ov := m.overview
	lines := []string{
		"Stats",
		fmt.Sprintf("- %s série : %d j", ui.IconFire, ov.Streak),
		fmt.Sprintf("- code : %d%% (%d)", ov.Code.Avg, ov.Code.Count),
		fmt.Sprintf("- culture : %d%% (%d)", ov.Inspiration.Avg, ov.Inspiration.Count),
		fmt.Sprintf("- IA aujourd'hui : %d", ov.AIUsageToday),
		fmt.Sprintf("- badges : %d/%d", ov.BadgesEarned, ov.BadgesTotal),
		"",
		"Touches",
		"- ↑/↓ ou j/k : bouger",
		"- espace/x : cocher",
		"- g : régénérer",
		"- r : rafraîchir",
		"- q : quitter",
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Chargement…"
	}
	done := 0
	for _, t := range m.tasks {
		if t.Completed {
			done++
		}
	}
	out := []string{fmt.Sprintf("Routine du %s (%d/%d)", m.date, done, len(m.tasks))}
	if len(m.tasks) == 0 {
		return strings.Join(append(out, "(vide)"), "\n")
	}
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		kind := ""
		if t.Type == engine.TaskVariable {
			kind = " *"
		}
		out = append(out, fmt.Sprintf("%s%s %s %s%s", cursor, mark, t.Time, t.Title, kind))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	value = max(0, min(total, value))
	filled := min(width, int(float64(value)/float64(total)*float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
