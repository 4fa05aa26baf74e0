package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"phiview/internal/ui"
)

func main() {
	model := ui.NewAppModel().AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
