package installer

import (
	"sort"
	"strings"

	"github.com/sandevgo/footix/pkg/env"
)

type InstallState struct {
	EnvVars map[string]string
	// Seeded is true when the wizard created the knowledge file.
	Seeded bool
}

func NewInstallState() *InstallState {
	return &InstallState{
		EnvVars: make(map[string]string),
	}
}

// Render returns the collected variables as .env content, sorted by key.
func (s *InstallState) Render() string {
	keys := make([]string, 0, len(s.EnvVars))
	for k := range s.EnvVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(env.Line(k, s.EnvVars[k]))
		b.WriteByte('\n')
	}
	return b.String()
}
