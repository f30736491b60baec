package setup

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// BackendURLStep collects the contact service URL
type BackendURLStep struct {
	input textinput.Model
}

func NewBackendURLStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "https://api.contactmind.app"

	return &BackendURLStep{
		input: ti,
	}
}

func (s *BackendURLStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *BackendURLStep) Update(msg tea.Msg, state *State, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.Env.APIURL = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *BackendURLStep) View(state *State) string {
	return "Enter your contact service URL:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to accept the default)\n"
}

// APITokenStep collects the bearer token for the contact service
type APITokenStep struct {
	input textinput.Model
}

func NewAPITokenStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "cm_..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &APITokenStep{
		input: ti,
	}
}

func (s *APITokenStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *APITokenStep) Update(msg tea.Msg, state *State, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.Env.APIToken = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *APITokenStep) View(state *State) string {
	return "Enter your API token (optional - press Enter to skip):\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
