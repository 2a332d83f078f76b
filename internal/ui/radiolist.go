package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RadioOption holds one selectable item.
type RadioOption struct {
	Label       string
	Description string
	Value       string
}

// RadioListModel is a single-choice list. The highlighted row is the answer
// unless another row was marked with space.
type RadioListModel struct {
	Title    string
	Question string
	Options  []RadioOption
	cursor   int
	marked   int // -1 when nothing was marked
	err      string
}

// NewRadioList returns a list with the cursor on the first option and
// nothing marked.
func NewRadioList(title, question string, options []RadioOption) RadioListModel {
	return RadioListModel{
		Title:    title,
		Question: question,
		Options:  options,
		marked:   -1,
	}
}

func (m RadioListModel) Init() tea.Cmd { return nil }

func (m RadioListModel) Update(msg tea.Msg) (RadioListModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch k.String() {
	case "up", "k":
		m.cursor = max(m.cursor-1, 0)
	case "down", "j":
		m.cursor = min(m.cursor+1, len(m.Options)-1)
	case " ":
		if m.marked == m.cursor {
			m.marked = -1
		} else {
			m.marked = m.cursor
			m.err = ""
		}
	}
	return m, nil
}

func (m RadioListModel) row(i int, opt RadioOption) string {
	mark := "( )"
	if i == m.marked || (m.marked < 0 && i == m.cursor) {
		mark = "(•)"
	}

	pointer := "  "
	style := OptionStyle
	if i == m.cursor {
		pointer = CursorStyle.Render("➜ ")
		style = style.Bold(true)
	}

	out := pointer + style.Render(mark+" "+opt.Label) + "\n"
	if opt.Description != "" {
		out += "    " + DescStyle.Render(opt.Description) + "\n"
	}
	return out
}

func (m RadioListModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.Title) + "\n")
	b.WriteString(QuestionStyle.Render(m.Question) + "\n\n")

	for i, opt := range m.Options {
		b.WriteString(m.row(i, opt) + "\n")
	}
	if m.err != "" {
		b.WriteString(ErrorStyle.Render("✖ "+m.err) + "\n")
	}
	b.WriteString(HelpStyle.Render("↑/↓ move • enter choose • space mark • q quit"))

	return BoxStyle.Render(b.String())
}

// SelectedValue reports the option marked with space.
func (m RadioListModel) SelectedValue() (string, bool) {
	if m.marked < 0 || m.marked >= len(m.Options) {
		return "", false
	}
	return m.Options[m.marked].Value, true
}

// HighlightedValue reports the option under the cursor. It is false only for
// an empty list.
func (m RadioListModel) HighlightedValue() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.Options) {
		return "", false
	}
	return m.Options[m.cursor].Value, true
}

// Select marks and highlights the option holding value, if any.
func (m *RadioListModel) Select(value string) {
	for i, opt := range m.Options {
		if opt.Value == value {
			m.marked, m.cursor = i, i
			return
		}
	}
}

// SetError shows msg under the options until the next mark.
func (m *RadioListModel) SetError(msg string) {
	m.err = msg
}
