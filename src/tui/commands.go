package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zaphoood/rewind/src/history"
)

type valueChangedMsg struct {
	value string
}

type setMessageMsg struct {
	message string
}

func setMessageCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return setMessageMsg{message}
	}
}

// waitForChangeCmd blocks until the store publishes its next value. Returns
// nil once the subscription has been torn down.
func waitForChangeCmd(sub *history.Subscription[string]) tea.Cmd {
	return func() tea.Msg {
		select {
		case value := <-sub.Changed:
			return valueChangedMsg{value}
		case <-sub.Done:
			return nil
		}
	}
}
