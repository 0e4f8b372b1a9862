package command

import (
	"github.com/sandevgo/footix/internal/core"
)

// NewRouter wires the chat commands. History is left out when turns is nil.
func NewRouter(
	conversations ConversationResetter,
	catalog Catalog,
	turns core.TurnRepository,
) *Router {
	commands := []core.Command{
		NewResetCommand(conversations),
		NewKnowledgeCommand(catalog),
	}
	if turns != nil {
		commands = append(commands, NewHistoryCommand(turns))
	}

	r := New(commands)
	r.Register(NewHelpCommand(r))
	return r
}
