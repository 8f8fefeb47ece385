package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/store"
	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/tracker"
	"github.com/ViditGupta0401/todo-with-backend-sub000/internal/tui"
)

func main() {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	tr := tracker.New(s)
	if err := tr.Load(time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "error loading tracker state: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(s, tr)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithReportFocus())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
