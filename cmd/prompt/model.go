package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/louislva/prompt/internal/session"
	"github.com/louislva/prompt/internal/ui"
)

type keyMap struct {
	Cycle     key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

var defaultKeys = keyMap{
	Cycle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "cycle"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace", "ctrl+h"),
	),
}

type model struct {
	session  *session.Session
	keys     keyMap
	width    int
	quitting bool

	outcome session.Outcome
	err     error
}

func initialModel(s *session.Session) model {
	return model{session: s, keys: defaultKeys}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res, err := m.session.HandleEvent(m.event(msg))
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if res.Done {
		m.outcome = res.Outcome
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// event translates a bubbletea key press into a session event.
func (m model) event(msg tea.KeyMsg) session.Event {
	switch {
	case key.Matches(msg, m.keys.Cycle):
		return session.Event{Key: session.KeyCycle}
	case key.Matches(msg, m.keys.Submit):
		return session.Event{Key: session.KeySubmit}
	case key.Matches(msg, m.keys.Cancel):
		return session.Event{Key: session.KeyCancel}
	case key.Matches(msg, m.keys.Backspace):
		return session.Event{Key: session.KeyBackspace}
	}

	if msg.Alt {
		return session.Event{Key: session.KeyNone}
	}
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		return session.Event{Key: session.KeyChar, Text: string(msg.Runes)}
	}
	return session.Event{Key: session.KeyNone}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.Frame(m.session.State(), m.width))
	b.WriteString("\n\n")
	b.WriteString(ui.DimStyle.Render(m.help()))
	return b.String()
}

func (m model) help() string {
	var parts []string
	for _, binding := range []key.Binding{m.keys.Cycle, m.keys.Submit, m.keys.Cancel} {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
