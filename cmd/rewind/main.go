package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zaphoood/rewind/src/config"
	"github.com/Zaphoood/rewind/src/history"
	"github.com/Zaphoood/rewind/src/tui"
	"github.com/Zaphoood/rewind/src/util"
)

func main() {
	initialValue, err := util.ParseCommandLineArgs(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %s\n", err)
		os.Exit(1)
	}

	store, err := history.New(initialValue, history.WithMaxStackSize[string](cfg.MaxStackSize))
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewModel(store, cfg.Bindings()))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %s", err)
		os.Exit(1)
	}
}
