package setup

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ChannelStep allows selection of the chat channel/transport
type ChannelStep struct {
	choices []string
	cursor  int
}

func NewChannelStep() Step {
	return &ChannelStep{
		choices: []string{"CLI", "Telegram", "Both"},
	}
}

func (s *ChannelStep) Init() tea.Cmd {
	return nil
}

func (s *ChannelStep) Update(msg tea.Msg, state *State, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			switch s.choices[s.cursor] {
			case "CLI":
				state.Env.EnableCLI = "true"
				state.Env.EnableTelegram = "false"
			case "Telegram":
				state.Env.EnableCLI = "false"
				state.Env.EnableTelegram = "true"
			case "Both":
				state.Env.EnableCLI = "true"
				state.Env.EnableTelegram = "true"
			}
			return nil, nil
		}
	}
	return s, nil
}

func (s *ChannelStep) View(state *State) string {
	var b strings.Builder
	b.WriteString("Select your chat channel:\n\n")
	for i, choice := range s.choices {
		cursor := " "
		if s.cursor == i {
			cursor = "❯"
			b.WriteString(selStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
