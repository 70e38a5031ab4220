package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zaphoood/rewind/src/history"
	"github.com/Zaphoood/rewind/src/keybind"
	"github.com/Zaphoood/rewind/src/util"
)

/* Model for a small interactive playground around a history store: type a new
value, undo and redo it with the configured key chords. */

const DEFAULT_MESSAGE = "Ready."

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9dcbf4"))
	statusStyle = lipgloss.NewStyle().Faint(true)
)

type Model struct {
	store    *history.Store[string]
	resolver *keybind.Resolver
	adapter  *keybind.Adapter
	sub      *history.Subscription[string]

	input   textinput.Model
	message string

	windowWidth  int
	windowHeight int

	clipboardOK bool
}

func NewModel(store *history.Store[string], bindings []keybind.Binding) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "New value"
	input.Focus()

	resolver := keybind.NewResolver(bindings)
	return Model{
		store:       store,
		resolver:    resolver,
		adapter:     keybind.NewAdapter(store, resolver),
		sub:         store.Subscribe(),
		input:       input,
		message:     DEFAULT_MESSAGE,
		clipboardOK: initClipboard(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChangeCmd(m.sub))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil
	case valueChangedMsg:
		m.message = fmt.Sprintf("Current value: '%s'", msg.value)
		return m, waitForChangeCmd(m.sub)
	case setMessageMsg:
		m.message = msg.message
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.store.Unsubscribe(m.sub)
		return m, tea.Quit
	case "enter":
		value := m.input.Value()
		if len(value) == 0 {
			return m, nil
		}
		m.store.Set(value)
		m.input.SetValue("")
		return m, nil
	case "ctrl+r":
		m.store.Reset()
		return m, setMessageCmd("History reset.")
	case "ctrl+l":
		m.store.Clear()
		return m, setMessageCmd("History cleared.")
	case "ctrl+y":
		if !m.clipboardOK {
			return m, setMessageCmd("Clipboard unavailable.")
		}
		return m, copyToClipboardCmd(m.store.Value())
	}

	if m.adapter.HandleKey(msg) {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) statusView() string {
	return fmt.Sprintf("undo: %d  redo: %d  capacity: %d",
		m.store.UndoCount(), m.store.RedoCount(), m.store.MaxStackSize())
}

func (m Model) helpView() string {
	undoKeys := strings.Join(m.resolver.KeysFor(keybind.ActionUndo), "/")
	redoKeys := strings.Join(m.resolver.KeysFor(keybind.ActionRedo), "/")
	return fmt.Sprintf("%s undo | %s redo | ctrl+r reset | ctrl+l clear | ctrl+y copy | ctrl+c quit",
		undoKeys, redoKeys)
}

func (m Model) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("rewind"),
		"",
		"Current value: "+valueStyle.Render(m.store.Value()),
		m.input.View(),
		"",
		statusStyle.Render(m.statusView()),
		statusStyle.Render(m.helpView()),
		"",
		m.message,
	)
	// Widen the box when a long value or message would overflow it
	box := boxStyle.Width(util.Max(50, lipgloss.Width(content)+6)).Render(content)
	if m.windowWidth > 0 {
		return centerInWindow(box, m.windowWidth, m.windowHeight)
	}
	return box
}
