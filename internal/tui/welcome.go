package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type welcomeChoice int

const (
	welcomeNone welcomeChoice = iota
	welcomeLogin
	welcomeRegister
	welcomeQuit
)

var welcomeItems = []string{"Log in", "Create account", "Quit"}

// welcomeModel is the entry menu shown while no bearer token is held.
type welcomeModel struct {
	cursor int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{}
}

func (m *welcomeModel) update(msg tea.Msg) (welcomeChoice, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return welcomeNone, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(welcomeItems)-1 {
			m.cursor++
		}
	case "enter":
		switch m.cursor {
		case 0:
			return welcomeLogin, nil
		case 1:
			return welcomeRegister, nil
		case 2:
			return welcomeQuit, nil
		}
	case "q", "esc":
		return welcomeQuit, nil
	}

	return welcomeNone, nil
}

func (m welcomeModel) view() string {
	var b strings.Builder
	for i, item := range welcomeItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}

	return renderPage("Warranty Keeper", b.String(), "up/down: move  enter: select  q: quit")
}
