package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Status is the state of the progress indicator.
type Status int

const (
	StatusRunning Status = iota
	StatusInfo
	StatusSuccess
	StatusFailed
)

func statusLine(s Status, text string) string {
	switch s {
	case StatusSuccess:
		return SuccessStyle.Render("✔") + " " + text
	case StatusInfo:
		return InfoStyle.Render("ℹ") + " " + text
	case StatusFailed:
		return FailStyle.Render("✖") + " " + text
	default:
		return SpinnerStyle.Render("•") + " " + text
	}
}

type statusMsg struct {
	status Status
	text   string
}

type stopMsg struct{}

// progressModel keeps finished lines above a single spinning line.
type progressModel struct {
	spinner spinner.Model
	lines   []string
	active  string
	stopped bool
}

func newProgressModel() progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle
	return progressModel{spinner: sp}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case statusMsg:
		switch msg.status {
		case StatusRunning:
			m.active = msg.text
		case StatusInfo:
			// the info line stays, the spinner keeps going under it
			m.lines = append(m.lines, statusLine(StatusInfo, msg.text))
			m.active = msg.text
		default:
			m.lines = append(m.lines, statusLine(msg.status, msg.text))
			m.active = ""
		}
		return m, nil
	case stopMsg:
		m.stopped = true
		m.active = ""
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	var b strings.Builder
	for _, l := range m.lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	if m.active != "" && !m.stopped {
		b.WriteString(m.spinner.View() + " " + m.active + "\n")
	}
	return b.String()
}

// SpinnerReporter renders progress with an animated spinner. Call Stop once
// the flow is over to restore the terminal.
type SpinnerReporter struct {
	p    *tea.Program
	done chan struct{}
	once sync.Once
}

// NewSpinnerReporter starts the spinner program writing to out.
func NewSpinnerReporter(out io.Writer) *SpinnerReporter {
	r := &SpinnerReporter{
		p: tea.NewProgram(newProgressModel(),
			tea.WithOutput(out),
			tea.WithInput(nil),
			tea.WithoutSignalHandler(),
		),
		done: make(chan struct{}),
	}
	go func() {
		defer close(r.done)
		_, _ = r.p.Run()
	}()
	return r
}

func (r *SpinnerReporter) Start(msg string)   { r.p.Send(statusMsg{StatusRunning, msg}) }
func (r *SpinnerReporter) Info(msg string)    { r.p.Send(statusMsg{StatusInfo, msg}) }
func (r *SpinnerReporter) Succeed(msg string) { r.p.Send(statusMsg{StatusSuccess, msg}) }
func (r *SpinnerReporter) Fail(msg string)    { r.p.Send(statusMsg{StatusFailed, msg}) }

// Stop waits for the final frame to be drawn.
func (r *SpinnerReporter) Stop() {
	r.once.Do(func() {
		r.p.Send(stopMsg{})
		<-r.done
	})
}

// LineReporter prints one line per transition. Used when the output is not
// a terminal.
type LineReporter struct {
	mu  sync.Mutex
	out io.Writer
}

func NewLineReporter(out io.Writer) *LineReporter {
	return &LineReporter{out: out}
}

func (r *LineReporter) print(s Status, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, statusLine(s, msg))
}

func (r *LineReporter) Start(msg string)   { r.print(StatusRunning, msg) }
func (r *LineReporter) Info(msg string)    { r.print(StatusInfo, msg) }
func (r *LineReporter) Succeed(msg string) { r.print(StatusSuccess, msg) }
func (r *LineReporter) Fail(msg string)    { r.print(StatusFailed, msg) }
func (r *LineReporter) Stop()              {}
