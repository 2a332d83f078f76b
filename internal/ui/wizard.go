package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/coyksdev/create-rn-app/internal/generator"
)

// Steps
const (
	stepGenerator = iota
	stepName
	stepDone
)

const (
	errChooseCLI = "Please choose a CLI."
	errEnterName = "Please enter your project name."
)

// Result is what the wizard will return.
type Result struct {
	Selection generator.Selection
	Confirmed bool
}

type WizardModel struct {
	step          int
	generatorList RadioListModel
	nameInput     textinput.Model
	nameErr       string
	// skipGenerator is set when the generator came from a flag.
	skipGenerator bool
	result        Result
}

// NewWizardModel builds the wizard. Fields already set in preset are not
// asked for again.
func NewWizardModel(preset generator.Selection) WizardModel {
	ti := textinput.New()
	ti.Placeholder = "my-app"
	ti.CharLimit = 0 // no limit; names must reach the generator untouched
	ti.Width = 30

	opts := make([]RadioOption, 0, len(generator.Generators()))
	for _, g := range generator.Generators() {
		opts = append(opts, RadioOption{
			Label:       g.String(),
			Description: generatorDescription(g),
			Value:       g.Slug(),
		})
	}

	m := WizardModel{
		step:      stepGenerator,
		nameInput: ti,
		generatorList: NewRadioList(
			"Choose a CLI:",
			"Use ↑/↓ to move and enter to choose.",
			opts,
		),
	}
	m.result.Selection = preset

	if preset.Generator != 0 {
		m.generatorList.Select(preset.Generator.Slug())
		m.skipGenerator = true
		m.step = stepName
		m.nameInput.Focus()
	}
	return m
}

func generatorDescription(g generator.Generator) string {
	switch g {
	case generator.Expo:
		return "create-expo-app with the blank TypeScript template"
	case generator.ReactNativeCLI:
		return "react-native init (name is normalized to an identifier)"
	default:
		return ""
	}
}

func (m WizardModel) Init() tea.Cmd {
	if m.step == stepName {
		return textinput.Blink
	}
	return nil
}

func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// global keys; "q" would be swallowed by the name input
		if msg.String() == "ctrl+c" || msg.String() == "esc" ||
			(msg.String() == "q" && m.step != stepName) {
			return m, tea.Quit
		}

		switch m.step {
		case stepGenerator:
			return m.updateGenerator(msg)
		case stepName:
			return m.updateName(msg)
		case stepDone:
			return m, tea.Quit
		}
	}

	// Let components update (e.g. blinking cursor)
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m WizardModel) updateGenerator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		v, ok := m.generatorList.SelectedValue()
		if !ok {
			// nothing picked with space: take the highlighted row
			v, ok = m.generatorList.HighlightedValue()
		}
		if !ok {
			m.generatorList.SetError(errChooseCLI)
			return m, nil
		}
		g, err := generator.ParseGenerator(v)
		if err != nil {
			m.generatorList.SetError(err.Error())
			return m, nil
		}
		m.result.Selection.Generator = g
		if m.result.Selection.ProjectName != "" {
			return m.finish()
		}
		m.step = stepName
		focus := m.nameInput.Focus()
		return m, tea.Batch(focus, textinput.Blink)
	}
	var cmd tea.Cmd
	m.generatorList, cmd = m.generatorList.Update(msg)
	return m, cmd
}

func (m WizardModel) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		name := strings.TrimSpace(m.nameInput.Value())
		if err := generator.ValidateName(name); err != nil {
			if errors.Is(err, generator.ErrEmptyName) {
				m.nameErr = errEnterName
			} else {
				m.nameErr = err.Error()
			}
			return m, nil
		}
		m.result.Selection.ProjectName = name
		return m.finish()
	case tea.KeyLeft:
		// only go back when the cursor can't move further left
		if !m.skipGenerator && m.nameInput.Position() == 0 {
			m.nameInput.Blur()
			m.step = stepGenerator
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	m.nameErr = "" // clear error on typing
	return m, cmd
}

func (m WizardModel) finish() (tea.Model, tea.Cmd) {
	m.result.Confirmed = true
	m.step = stepDone
	return m, tea.Quit
}

func (m WizardModel) View() string {
	switch m.step {
	case stepGenerator:
		return m.generatorList.View()
	case stepName:
		return m.viewName()
	default:
		return ""
	}
}

func (m WizardModel) viewName() string {
	errLine := ""
	if m.nameErr != "" {
		errLine = "\n" + ErrorStyle.Render("✖ "+m.nameErr)
	}
	hint := "Type a name and press Enter • ← back • esc to quit"
	if m.skipGenerator {
		hint = "Type a name and press Enter • esc to quit"
	}
	body := fmt.Sprintf(
		"%s\n%s\n\n%s%s\n\n%s",
		TitleStyle.Render(Banner),
		QuestionStyle.Render("Enter your project name:"),
		m.nameInput.View(),
		errLine,
		HelpStyle.Render(hint),
	)
	return BoxStyle.Render(body)
}

// Result exposes the collected selection.
func (m WizardModel) Result() Result {
	return m.result
}
