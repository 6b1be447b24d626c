package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"ezgit.dev/ezgit/internal/branch"
	"ezgit.dev/ezgit/internal/errors"
)

// Prompter gathers everything the workflows need from the user. The terminal
// implementation lives here; tests substitute a scripted double.
type Prompter interface {
	// Input asks for a line of text. Canceling returns ErrCanceled.
	Input(message, defaultValue string) (string, error)

	// Confirm asks a yes/no question, defaulting to no. Esc answers no;
	// Ctrl+C returns ErrCanceled.
	Confirm(message string) (bool, error)

	// Select asks for a single choice from a short fixed menu and returns
	// its index. Canceling returns ErrCanceled.
	Select(message string, options []string, defaultIndex int) (int, error)

	// SelectBranch shows a filterable branch picker and returns the value of
	// the chosen entry. Canceling returns ErrCanceled.
	SelectBranch(message string, choices []branch.Choice) (string, error)
}

// TerminalPrompter is the production Prompter.
type TerminalPrompter struct{}

// NewTerminalPrompter creates a Prompter backed by the terminal.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// textInputModel is a simple text input prompt model
type textInputModel struct {
	textInput textinput.Model
	prompt    string
	done      bool
	err       error
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = errors.ErrCanceled
			m.done = true
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() string {
	if m.done {
		return ""
	}
	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(fmt.Sprintf("%s\n%s\n\n(Press Enter to submit, Esc to cancel)", m.prompt, m.textInput.View()))
}

// Input implements Prompter.
func (p *TerminalPrompter) Input(message, defaultValue string) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	ti := textinput.New()
	ti.SetValue(defaultValue)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 80

	m := textInputModel{
		textInput: ti,
		prompt:    message,
	}

	model, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout)).Run()
	if err != nil {
		return "", err
	}

	finalModel, ok := model.(textInputModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if finalModel.err != nil {
		return "", finalModel.err
	}
	return strings.TrimSpace(finalModel.textInput.Value()), nil
}

// confirmModel is a simple yes/no confirmation prompt model
type confirmModel struct {
	prompt string
	choice bool
	done   bool
	err    error
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc:
			// Declining is the safe default, not a cancellation.
			m.choice = false
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC:
			m.err = errors.ErrCanceled
			m.done = true
			return m, tea.Quit
		case tea.KeyRunes:
			switch strings.ToLower(string(msg.Runes)) {
			case "y":
				m.choice = true
				m.done = true
				return m, tea.Quit
			case "n":
				m.choice = false
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(fmt.Sprintf("%s [y/N]\n\n(Press y or n, Enter to confirm, Esc to decline)", m.prompt))
}

// Confirm implements Prompter.
func (p *TerminalPrompter) Confirm(message string) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	m := confirmModel{prompt: message}

	model, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout)).Run()
	if err != nil {
		return false, err
	}

	finalModel, ok := model.(confirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type")
	}
	if finalModel.err != nil {
		return false, finalModel.err
	}
	return finalModel.choice, nil
}

// Select implements Prompter using a survey menu.
func (p *TerminalPrompter) Select(message string, options []string, defaultIndex int) (int, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return 0, err
	}

	if len(options) == 0 {
		return 0, fmt.Errorf("no options provided")
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	var idx int
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: options[defaultIndex],
	}
	if err := survey.AskOne(prompt, &idx); err != nil {
		if err == terminal.InterruptErr {
			return 0, errors.ErrCanceled
		}
		return 0, err
	}
	return idx, nil
}

// branchSelectModel is a branch selection prompt model with fuzzy filtering
type branchSelectModel struct {
	choices  []branch.Choice
	filtered []branch.Choice
	filter   string
	cursor   int
	selected string
	done     bool
	err      error
	message  string
}

func (m branchSelectModel) Init() tea.Cmd {
	return nil
}

func (m branchSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			if len(m.filtered) > 0 && m.cursor >= 0 && m.cursor < len(m.filtered) {
				m.selected = m.filtered[m.cursor].Value
				m.done = true
				return m, tea.Quit
			}
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = errors.ErrCanceled
			m.done = true
			return m, tea.Quit
		case tea.KeyUp, tea.KeyShiftTab:
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = len(m.filtered) - 1
			}
			return m, nil
		case tea.KeyDown, tea.KeyTab:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			} else {
				m.cursor = 0
			}
			return m, nil
		case tea.KeyBackspace:
			if len(m.filter) > 0 {
				m.filter = m.filter[:len(m.filter)-1]
				m.applyFilter()
			}
			return m, nil
		case tea.KeyRunes:
			m.filter += string(msg.Runes)
			m.applyFilter()
			return m, nil
		}
	}
	return m, nil
}

func (m *branchSelectModel) applyFilter() {
	m.filtered = FilterChoices(m.filter, m.choices)
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// FilterChoices ranks choices against the filter using fuzzy matching. An
// empty filter keeps the original order.
func FilterChoices(filter string, choices []branch.Choice) []branch.Choice {
	if filter == "" {
		return choices
	}

	targets := make([]string, len(choices))
	for i, c := range choices {
		targets[i] = c.Display
	}

	matches := fuzzy.Find(filter, targets)
	filtered := make([]branch.Choice, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, choices[match.Index])
	}
	return filtered
}

func (m branchSelectModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.message))
	b.WriteString("\n")

	if m.filter != "" {
		b.WriteString(fmt.Sprintf("Filter: %s\n\n", selectionStyle.Render(m.filter)))
	} else {
		b.WriteString("\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString("No branches match the filter.\n")
	} else {
		for i, choice := range m.filtered {
			cursor := " "
			if i == m.cursor {
				cursor = selectionStyle.Render(">")
			}
			b.WriteString(fmt.Sprintf("%s %s\n", cursor, choice.Display))
		}
	}

	b.WriteString(dimStyle.Render("\n(Press Enter to select, Esc to cancel, type to filter)"))

	styleObj := lipgloss.NewStyle().Margin(1, 0)
	return styleObj.Render(b.String())
}

// SelectBranch implements Prompter.
func (p *TerminalPrompter) SelectBranch(message string, choices []branch.Choice) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	if len(choices) == 0 {
		return "", fmt.Errorf("no branches to select from")
	}

	m := branchSelectModel{
		choices: choices,
		message: message,
	}
	m.applyFilter()

	model, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout)).Run()
	if err != nil {
		return "", err
	}

	finalModel, ok := model.(branchSelectModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if finalModel.err != nil {
		return "", finalModel.err
	}
	return finalModel.selected, nil
}
