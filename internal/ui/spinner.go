package ui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/youngoor/youngoor/log"
	"github.com/youngoor/youngoor/source"
	"golang.org/x/term"
)

// Spinner draws a Model on out for the duration of a resolve.
type Spinner struct {
	out     io.Writer
	program *tea.Program
	exited  chan struct{}
}

// NewSpinner returns a spinner drawing on out.
func NewSpinner(out io.Writer) *Spinner {
	return &Spinner{out: out}
}

// Interactive reports whether f is a terminal a spinner can be drawn on.
func Interactive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (s *Spinner) Start(total int) {
	s.program = tea.NewProgram(
		NewModel(total),
		tea.WithOutput(s.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	s.exited = make(chan struct{})

	go func() {
		defer close(s.exited)
		if _, err := s.program.Run(); err != nil {
			log.Warnf("progress: %s", err)
		}
	}()
}

func (s *Spinner) Step(done int, episode *source.Episode) {
	if s.program == nil {
		return
	}
	s.program.Send(StepMsg{Done: done, Title: episode.String()})
}

// Stop clears the line and waits for the program to exit.
func (s *Spinner) Stop() {
	if s.program == nil {
		return
	}
	s.program.Send(DoneMsg{})
	<-s.exited
	s.program = nil
}
