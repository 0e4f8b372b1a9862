package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/footix/internal/core"
	"github.com/sandevgo/footix/internal/service/knowledge"
)

// SeedEntries is the knowledge a fresh install starts with.
var SeedEntries = []core.Entry{
	{Question: "hello", Answer: "HI THERE!"},
	{Question: "how are you", Answer: "I'M GREAT THANK YOU!"},
	{Question: "what is your name", Answer: "I'M FOOTIX."},
	{Question: "bye", Answer: "SEE YOU!"},
}

// SaveEnvStep writes the collected configuration to the .env file
type SaveEnvStep struct {
	runtimePath string
	err         error
	saved       bool
}

func NewSaveEnvStep(runtimePath string) Step {
	return &SaveEnvStep{runtimePath: runtimePath}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return next
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}
	if s.err != nil {
		return s, nil
	}

	if err := SaveEnv(s.runtimePath, state); err != nil {
		s.err = err
		return s, nil
	}

	s.saved = true
	return nil, nil
}

// SaveEnv writes state to <runtimePath>/.env. An existing file is never
// overwritten.
func SaveEnv(runtimePath string, state *InstallState) error {
	if err := os.MkdirAll(runtimePath, 0755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	envPath := filepath.Join(runtimePath, ".env")
	if _, err := os.Stat(envPath); err == nil {
		return fmt.Errorf(".env file already exists at %s", envPath)
	}

	return os.WriteFile(envPath, []byte(state.Render()), 0600)
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}

// SeedKnowledgeStep creates the knowledge file with a few starter entries.
type SeedKnowledgeStep struct {
	err  error
	done bool
}

func NewSeedKnowledgeStep() Step {
	return &SeedKnowledgeStep{}
}

func (s *SeedKnowledgeStep) Init() tea.Cmd {
	return next
}

func (s *SeedKnowledgeStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.done {
		return nil, nil
	}
	if s.err != nil {
		return s, nil
	}

	seeded, err := SeedKnowledge(context.Background(), state.EnvVars["FOOTIX_KNOWLEDGE_PATH"])
	if err != nil {
		s.err = err
		return s, nil
	}
	state.Seeded = seeded

	s.done = true
	return nil, nil
}

// SeedKnowledge writes SeedEntries to path unless a file is already there.
func SeedKnowledge(ctx context.Context, path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := knowledge.NewFileSource(path).SaveEntries(ctx, SeedEntries); err != nil {
		return false, fmt.Errorf("failed to seed knowledge: %w", err)
	}
	return true, nil
}

func (s *SeedKnowledgeStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	return "Preparing knowledge file...\n"
}
