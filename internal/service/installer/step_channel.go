package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ChannelStep selects where footix talks to people.
type ChannelStep struct {
	list choiceList
}

func NewChannelStep() Step {
	return &ChannelStep{list: choiceList{
		prompt: "Where should Footix chat?",
		choices: []choice{
			{title: "Terminal", desc: "interactive prompt in this shell"},
			{title: "Telegram", desc: "a Telegram bot"},
			{title: "HTTP API", desc: "POST /v1/messages"},
		},
	}}
}

func (s *ChannelStep) Init() tea.Cmd {
	return nil
}

func (s *ChannelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if !s.list.update(msg) {
		return s, nil
	}

	state.EnvVars["FOOTIX_ENABLE_CLI"] = "false"
	state.EnvVars["FOOTIX_ENABLE_TELEGRAM"] = "false"
	state.EnvVars["FOOTIX_ENABLE_HTTP"] = "false"

	switch s.list.cursor {
	case 0:
		state.EnvVars["FOOTIX_ENABLE_CLI"] = "true"
	case 1:
		state.EnvVars["FOOTIX_ENABLE_TELEGRAM"] = "true"
	case 2:
		state.EnvVars["FOOTIX_ENABLE_HTTP"] = "true"
	}
	return nil, nil
}

func (s *ChannelStep) View(state *InstallState) string {
	return s.list.view()
}
