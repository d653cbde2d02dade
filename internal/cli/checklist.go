package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jvkuechen/secguard/internal/cli/formatter"
	"github.com/jvkuechen/secguard/internal/domain"
	"github.com/jvkuechen/secguard/internal/recommend"
)

type checklistKeys struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultChecklistKeys() checklistKeys {
	return checklistKeys{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		Dismiss: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dismiss")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// checklistModel is the interactive task list: space toggles completion,
// d dismisses, completed tasks sort to the bottom.
type checklistModel struct {
	app      *App
	tasks    []domain.TaskStatus
	progress recommend.Progress
	cursor   int
	keys     checklistKeys
	err      error
}

func newChecklistModel(app *App) (*checklistModel, error) {
	m := &checklistModel{app: app, keys: defaultChecklistKeys()}
	if err := m.reload(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *checklistModel) reload() error {
	ctx := context.Background()
	tasks, err := m.app.Tasks.AllWithStatus(ctx)
	if err != nil {
		return err
	}
	progress, err := m.app.Tasks.Progress(ctx)
	if err != nil {
		return err
	}
	m.tasks = tasks
	m.progress = progress
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return nil
}

func (m *checklistModel) Init() tea.Cmd { return nil }

func (m *checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Toggle):
		m.err = m.toggleCurrent()

	case key.Matches(keyMsg, m.keys.Dismiss):
		m.err = m.dismissCurrent()
	}

	return m, nil
}

func (m *checklistModel) toggleCurrent() error {
	if m.cursor >= len(m.tasks) {
		return nil
	}
	t := m.tasks[m.cursor]
	ctx := context.Background()

	var err error
	if t.Completed {
		err = m.app.Tasks.Reopen(ctx, t.ID)
	} else {
		err = m.app.Tasks.Complete(ctx, t.ID)
	}
	if err != nil {
		return err
	}
	return m.reload()
}

func (m *checklistModel) dismissCurrent() error {
	if m.cursor >= len(m.tasks) {
		return nil
	}
	t := m.tasks[m.cursor]
	ctx := context.Background()

	var err error
	if t.Dismissed {
		err = m.app.Tasks.Reopen(ctx, t.ID)
	} else {
		err = m.app.Tasks.Dismiss(ctx, t.ID)
	}
	if err != nil {
		return err
	}
	return m.reload()
}

func (m *checklistModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Security Tasks"))
	b.WriteString("\n")

	if len(m.tasks) == 0 {
		b.WriteString(formatter.Dim("No tasks apply yet. Run `secguard assess` first.") + "\n")
	}

	for i, t := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
		}

		marker := formatter.Dim("[ ]")
		title := t.Title
		switch {
		case t.Completed:
			marker = formatter.StyleGreen.Render("[✓]")
			title = formatter.Dim(t.Title)
		case t.Dismissed:
			marker = formatter.Dim("[−]")
			title = formatter.Dim(t.Title)
		}

		line := fmt.Sprintf("%s%s %s %s", cursor, marker, title, formatter.SeverityIndicator(t.Severity))
		b.WriteString(line + "\n")

		if i == m.cursor && !t.Completed && !t.Dismissed {
			b.WriteString("      " + formatter.Dim(t.Description) + "\n")
		}
	}

	if m.progress.Total > 0 {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%d/%d done %s\n",
			m.progress.Completed, m.progress.Total,
			formatter.RenderProgress(float64(m.progress.Percentage)/100, 10)))
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n" + formatter.Dim("space toggle · d dismiss · q quit") + "\n")
	return b.String()
}
