package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"golang.design/x/clipboard"
)

func initClipboard() bool {
	err := clipboard.Init()
	if err != nil {
		log.Printf("ERROR: Failed to initialize clipboard: %s", err)
		return false
	}
	return true
}

func copyToClipboardCmd(value string) tea.Cmd {
	clipboard.Write(clipboard.FmtText, []byte(value))
	return setMessageCmd("Copied to clipboard.")
}
