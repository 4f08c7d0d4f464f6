package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ExpandFunc expands a single type expression.
type ExpandFunc func(ctx context.Context, expression string) (string, error)

// Explorer is an interactive prompt: type an expression, see its expansion.
type Explorer struct {
	input  io.Reader
	output io.Writer
	source string
	expand ExpandFunc
}

// NewExplorer creates an Explorer for the given source.
func NewExplorer(input io.Reader, output io.Writer, source string, expand ExpandFunc) *Explorer {
	return &Explorer{
		input:  input,
		output: output,
		source: source,
		expand: expand,
	}
}

// Run blocks until the user quits or ctx is canceled.
func (e *Explorer) Run(ctx context.Context) error {
	program := tea.NewProgram(
		newExploreModel(ctx, e.source, e.expand),
		tea.WithContext(ctx),
		tea.WithInput(e.input),
		tea.WithOutput(e.output),
		tea.WithAltScreen(),
	)

	_, err := program.Run()

	return err
}

var (
	exploreTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("6")).
				Bold(true).
				Padding(0, 1)
	exploreSourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	exploreResultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	exploreErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	exploreHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// chromeHeight is the number of lines around the viewport: title, input,
// status and help.
const chromeHeight = 6

type exploreModel struct {
	ctx    context.Context
	source string
	expand ExpandFunc

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	history    []string
	historyIdx int

	busy    bool
	current string
	err     error
	width   int
	height  int
}

func newExploreModel(ctx context.Context, source string, expand ExpandFunc) exploreModel {
	input := textinput.New()
	input.Placeholder = "Type expression, e.g. A<number>"
	input.Prompt = "› "
	input.Focus()

	return exploreModel{
		ctx:      ctx,
		source:   source,
		expand:   expand,
		input:    input,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport: viewport.New(80, 20),
	}
}

func (m exploreModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case expandedMsg:
		return m.handleExpanded(msg), nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m exploreModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		expression := strings.TrimSpace(m.input.Value())
		if m.busy || expression == "" {
			return m, nil
		}

		m.busy = true
		m.current = expression
		m.history = append(m.history, expression)
		m.historyIdx = len(m.history)

		return m, tea.Batch(m.spinner.Tick, m.expandCmd(expression))

	case tea.KeyUp:
		if m.historyIdx > 0 {
			m.historyIdx--
			m.input.SetValue(m.history[m.historyIdx])
			m.input.CursorEnd()
		}

		return m, nil

	case tea.KeyDown:
		if m.historyIdx < len(m.history)-1 {
			m.historyIdx++
			m.input.SetValue(m.history[m.historyIdx])
		} else {
			m.historyIdx = len(m.history)
			m.input.SetValue("")
		}

		m.input.CursorEnd()

		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m exploreModel) expandCmd(expression string) tea.Cmd {
	ctx, expand := m.ctx, m.expand

	return func() tea.Msg {
		result, err := expand(ctx, expression)

		return expandedMsg{expression: expression, result: result, err: err}
	}
}

func (m exploreModel) handleExpanded(msg expandedMsg) exploreModel {
	if msg.expression != m.current {
		return m
	}

	m.busy = false
	m.err = msg.err

	if msg.err != nil {
		m.viewport.SetContent(exploreErrorStyle.Render(msg.err.Error()))
	} else {
		m.viewport.SetContent(exploreResultStyle.Render(msg.result))
	}

	m.viewport.GotoTop()

	return m
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(exploreTitleStyle.Render("tsexpand"))
	b.WriteString(" ")
	b.WriteString(exploreSourceStyle.Render(m.source))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.busy:
		_, _ = fmt.Fprintf(&b, "%s Expanding %s…\n", m.spinner.View(), m.current)
	case m.current == "":
		b.WriteString(exploreHelpStyle.Render("Enter an expression to expand it."))
		b.WriteString("\n")
	default:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString(exploreHelpStyle.Render("enter expand • ↑/↓ history • pgup/pgdn scroll • esc quit"))

	return b.String()
}
