package installer

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// KnowledgePathStep asks where the question/answer file lives.
type KnowledgePathStep struct {
	input       textinput.Model
	defaultPath string
}

func NewKnowledgePathStep(runtimePath string) Step {
	def := filepath.Join(runtimePath, "knowledge.yaml")

	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 60
	ti.Placeholder = def

	return &KnowledgePathStep{
		input:       ti,
		defaultPath: def,
	}
}

func (s *KnowledgePathStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *KnowledgePathStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		path := strings.TrimSpace(s.input.Value())
		if path == "" {
			path = s.defaultPath
		}
		state.EnvVars["FOOTIX_KNOWLEDGE_PATH"] = path
		return nil, nil
	}
	return s, cmd
}

func (s *KnowledgePathStep) View(state *InstallState) string {
	return "Knowledge file (YAML or JSON):\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to accept the default)\n"
}
