package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

var fuzzinessValues = []string{"0", "0.5", "1"}

// FuzzinessStep picks how forgiving matching is with typos.
type FuzzinessStep struct {
	list choiceList
}

func NewFuzzinessStep() Step {
	return &FuzzinessStep{list: choiceList{
		prompt: "How forgiving should matching be?",
		choices: []choice{
			{title: "Strict", desc: "every typed letter must appear in the question"},
			{title: "Balanced", desc: "tolerate a few typos"},
			{title: "Loose", desc: "always answer with the closest question"},
		},
		cursor: 1,
	}}
}

func (s *FuzzinessStep) Init() tea.Cmd {
	return nil
}

func (s *FuzzinessStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if !s.list.update(msg) {
		return s, nil
	}
	state.EnvVars["FOOTIX_FUZZINESS"] = fuzzinessValues[s.list.cursor]
	return nil, nil
}

func (s *FuzzinessStep) View(state *InstallState) string {
	return s.list.view()
}
