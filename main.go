package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NishantDwd/tasktrail/internal/event"
	"github.com/NishantDwd/tasktrail/internal/logging"
	"github.com/NishantDwd/tasktrail/internal/notify"
	"github.com/NishantDwd/tasktrail/internal/storage"
	"github.com/NishantDwd/tasktrail/internal/store"
	"github.com/NishantDwd/tasktrail/internal/timer"
	"github.com/NishantDwd/tasktrail/internal/tui"
)

func main() {
	logPath, err := storage.DefaultLogPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(logPath)

	dbPath, err := storage.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	db, err := storage.Open(dbPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	bus := event.NewBus()
	s := store.New(db, bus, logger)

	sink := tui.NewProgramSink(logger)
	center := notify.NewCenter(db, sink, logger)
	listener := notify.NewListener(center)
	listener.Attach(bus)
	defer listener.Detach()

	t := timer.New(db, logger)

	app := tui.NewApp(s, t, center)
	p := tea.NewProgram(app, tea.WithAltScreen())
	sink.Bind(p)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
