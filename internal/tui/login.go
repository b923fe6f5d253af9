package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type credentialsAction int

const (
	credentialsNone credentialsAction = iota
	credentialsBack
	credentialsSubmit
)

// credentialsModel is the login and registration form. Both screens share
// one model: the only difference is which auth call the submit triggers.
type credentialsModel struct {
	registering bool

	loginInput    textinput.Model
	passwordInput textinput.Model
	focused       int

	submitting bool
	errMsg     string
}

func newCredentialsModel(registering bool) credentialsModel {
	login := textinput.New()
	login.Placeholder = "login"
	login.CharLimit = 64
	login.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return credentialsModel{
		registering:   registering,
		loginInput:    login,
		passwordInput: password,
	}
}

func (m *credentialsModel) init() tea.Cmd {
	return textinput.Blink
}

func (m *credentialsModel) loginValue() string    { return m.loginInput.Value() }
func (m *credentialsModel) passwordValue() string { return m.passwordInput.Value() }

// finish reports the outcome of the submitted auth call back to the form.
func (m *credentialsModel) finish(err error) {
	m.submitting = false
	if err != nil {
		m.errMsg = err.Error()
	}
}

func (m *credentialsModel) update(msg tea.Msg) (credentialsAction, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return credentialsNone, m.updateInputs(msg)
	}

	switch key.String() {
	case "esc":
		return credentialsBack, nil
	case "tab", "shift+tab", "up", "down":
		m.focused = 1 - m.focused
		if m.focused == 0 {
			m.passwordInput.Blur()
			return credentialsNone, m.loginInput.Focus()
		}
		m.loginInput.Blur()
		return credentialsNone, m.passwordInput.Focus()
	case "enter":
		if m.submitting {
			return credentialsNone, nil
		}
		m.submitting = true
		m.errMsg = ""
		return credentialsSubmit, nil
	}

	return credentialsNone, m.updateInputs(msg)
}

func (m *credentialsModel) updateInputs(msg tea.Msg) tea.Cmd {
	var loginCmd, passwordCmd tea.Cmd
	m.loginInput, loginCmd = m.loginInput.Update(msg)
	m.passwordInput, passwordCmd = m.passwordInput.Update(msg)
	return tea.Batch(loginCmd, passwordCmd)
}

func (m credentialsModel) view() string {
	title := "Log in"
	if m.registering {
		title = "Create account"
	}

	body := m.loginInput.View() + "\n" + m.passwordInput.View()
	if m.submitting {
		body += "\n\n" + statusStyle.Render("contacting server...")
	}
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render(m.errMsg)
	}

	return renderPage(title, body, "tab: switch field  enter: submit  esc: back")
}
