package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type choice struct {
	title string
	desc  string
}

// choiceList is the cursor menu shared by the selection steps.
type choiceList struct {
	prompt  string
	choices []choice
	cursor  int
}

// update moves the cursor and reports whether enter was pressed.
func (l *choiceList) update(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	switch key.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.choices)-1 {
			l.cursor++
		}
	case "enter":
		return true
	}
	return false
}

func (l *choiceList) view() string {
	var b strings.Builder
	b.WriteString(l.prompt + "\n\n")
	for i, c := range l.choices {
		line := fmt.Sprintf("%s  %s", c.title, c.desc)
		if l.cursor == i {
			b.WriteString(selStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
