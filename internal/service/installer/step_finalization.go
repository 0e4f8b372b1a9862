package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FinalizationStep fills in values the user was not asked about.
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init() tea.Cmd {
	return next
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	finalize(state)
	return nil, nil
}

func finalize(state *InstallState) {
	defaults := map[string]string{
		"FOOTIX_KNOWLEDGE_SOURCE": "file",
		"FOOTIX_FUZZINESS":        "0.5",
		"FOOTIX_BLACKLIST":        "hey",
		"FOOTIX_STATE_BACKEND":    "memory",
		"FOOTIX_DEBUG":            "0",
	}
	for k, v := range defaults {
		if state.EnvVars[k] == "" {
			state.EnvVars[k] = v
		}
	}
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
