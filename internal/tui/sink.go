package tui

import (
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NishantDwd/tasktrail/internal/notify"
)

// ProgramSink forwards notification side effects into the running Bubble Tea
// program as toast messages. It is bound to the program after construction
// because the program needs the model (and therefore the stores) first.
//
// Toasts are sent from a fresh goroutine: the notification center dispatches
// synchronously, which can be inside the program's own Update call, and a
// blocking Send from there would deadlock the event loop.
type ProgramSink struct {
	mu      sync.Mutex
	program *tea.Program
	logger  *slog.Logger
}

func NewProgramSink(logger *slog.Logger) *ProgramSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgramSink{logger: logger}
}

// Bind attaches the running program. Safe to call once before Run.
func (s *ProgramSink) Bind(p *tea.Program) {
	s.mu.Lock()
	s.program = p
	s.mu.Unlock()
}

func (s *ProgramSink) ShowToast(t notify.Toast) {
	s.mu.Lock()
	p := s.program
	s.mu.Unlock()
	if p == nil {
		return
	}
	go p.Send(toastMsg{toast: t})
}

// ShowDesktop is the native-notification boundary. A terminal app has no
// desktop notification surface of its own, so the event is recorded in the
// log where a platform integration could pick it up.
func (s *ProgramSink) ShowDesktop(title, body, tag string) {
	s.logger.Info("desktop notification", "title", title, "body", body, "tag", tag)
}
