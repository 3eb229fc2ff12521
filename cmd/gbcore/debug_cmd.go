package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newDebugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug [rom]",
		Short: "Interactive debugger REPL over the core's step and disassemble APIs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := newDebugger()
			var banner string
			if len(args) == 1 {
				banner = d.cmdFile(args[0])
			} else {
				banner = `no ROM loaded; use "file <path>" to load one`
			}

			m := newDebugModel(d, banner)
			_, err := tea.NewProgram(m).Run()
			return err
		},
	}
	return cmd
}

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	historyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	viewportStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// debugModel is the bubbletea model for the interactive REPL: a
// scrolling transcript viewport over a single-line command input.
type debugModel struct {
	dbg      *debugger
	input    textinput.Model
	viewport viewport.Model
	lines    []string
	ready    bool
}

func newDebugModel(dbg *debugger, banner string) debugModel {
	ti := textinput.New()
	ti.Placeholder = "help"
	ti.Focus()
	ti.Prompt = "(gbcore) "

	return debugModel{
		dbg:   dbg,
		input: ti,
		lines: []string{banner},
	}
}

func (m debugModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m debugModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 0
		footerHeight := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.viewport.SetContent(strings.Join(m.lines, "\n"))
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			m.lines = append(m.lines, promptStyle.Render("(gbcore) ")+line)
			output, quit := m.dbg.runCommand(line)
			if output != "" {
				m.lines = append(m.lines, output)
			}
			m.viewport.SetContent(strings.Join(m.lines, "\n"))
			m.viewport.GotoBottom()
			if quit {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmds [2]tea.Cmd
	m.input, cmds[0] = m.input.Update(msg)
	m.viewport, cmds[1] = m.viewport.Update(msg)
	return m, tea.Batch(cmds[0], cmds[1])
}

func (m debugModel) View() string {
	if !m.ready {
		return "initializing...\n"
	}
	return fmt.Sprintf("%s\n%s\n%s",
		viewportStyle.Render(m.viewport.View()),
		historyStyle.Render("ctrl+c or \"quit\" to exit"),
		m.input.View(),
	)
}
