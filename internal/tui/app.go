package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akhmetshin/warranty-keeper/internal/service"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenForm
)

// appModel is the root Bubble Tea model. It owns the per-screen submodels
// and routes messages between them.
type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	currentScreen screen
	quitByUser    bool

	welcome welcomeModel
	login   credentialsModel
	list    listModel
	detail  detailModel
	form    formModel

	status string
}

func newAppModel(ctx context.Context, services *service.ClientServices) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		list:          newListModel(),
	}

	// an existing token skips the auth screens
	if services.AuthService.Authenticated() {
		m.currentScreen = screenList
	}

	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenList {
		return tea.Batch(m.cmdLoadList(), m.cmdSync())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = true
			return m, tea.Quit
		}

	case authDoneMsg:
		if msg.err != nil {
			m.login.finish(msg.err)
			return m, nil
		}
		if msg.registered {
			m.status = "account created"
		}
		m.currentScreen = screenList
		return m, tea.Batch(m.cmdLoadList(), m.cmdSync())

	case listLoadedMsg:
		m.list.setGroups(msg.groups, msg.err)
		return m, nil

	case syncDoneMsg:
		if msg.err != nil {
			m.status = "sync failed: " + msg.err.Error()
		} else {
			m.status = "synced"
		}
		return m, tea.Batch(m.cmdLoadList(), m.cmdClearStatusLater())

	case savedMsg:
		if msg.err != nil {
			m.form.finish(msg.err)
			return m, nil
		}
		m.currentScreen = screenList
		m.status = "saved"
		return m, tea.Batch(m.cmdLoadList(), m.cmdSync(), m.cmdClearStatusLater())

	case deletedMsg:
		if msg.err != nil {
			m.status = "delete failed: " + msg.err.Error()
			return m, m.cmdClearStatusLater()
		}
		m.currentScreen = screenList
		m.status = "deleted"
		return m, tea.Batch(m.cmdLoadList(), m.cmdSync(), m.cmdClearStatusLater())

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin, screenRegister:
		return m.updateCredentials(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	switch m.currentScreen {
	case screenWelcome:
		return m.welcome.view()
	case screenLogin, screenRegister:
		return m.login.view()
	case screenList:
		return m.list.view(m.status)
	case screenDetail:
		return m.detail.view()
	case screenForm:
		return m.form.view()
	}
	return ""
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	choice, cmd := m.welcome.update(msg)
	switch choice {
	case welcomeLogin:
		m.currentScreen = screenLogin
		m.login = newCredentialsModel(false)
		return m, m.login.init()
	case welcomeRegister:
		m.currentScreen = screenRegister
		m.login = newCredentialsModel(true)
		return m, m.login.init()
	case welcomeQuit:
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m appModel) updateCredentials(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.login.update(msg)
	switch action {
	case credentialsBack:
		m.currentScreen = screenWelcome
		return m, nil
	case credentialsSubmit:
		return m, m.cmdAuthenticate(m.login.registering, m.login.loginValue(), m.login.passwordValue())
	}
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.list.update(msg)
	switch action.kind {
	case listActionOpen:
		m.currentScreen = screenDetail
		m.detail = newDetailModel(action.record)
		return m, nil
	case listActionCreate:
		m.currentScreen = screenForm
		m.form = newFormModel(nil)
		return m, m.form.init()
	case listActionSync:
		m.status = "syncing..."
		return m, m.cmdSync()
	case listActionReload:
		return m, tea.Batch(cmd, m.cmdLoadList())
	case listActionLogout:
		if err := m.services.AuthService.Logout(m.ctx); err != nil {
			m.status = "logout failed: " + err.Error()
			return m, m.cmdClearStatusLater()
		}
		m.currentScreen = screenWelcome
		m.welcome = newWelcomeModel()
		m.list = newListModel()
		return m, nil
	case listActionQuit:
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	action := m.detail.update(msg)
	switch action {
	case detailBack:
		m.currentScreen = screenList
		return m, nil
	case detailEdit:
		record := m.detail.record
		m.currentScreen = screenForm
		m.form = newFormModel(&record)
		return m, m.form.init()
	case detailDelete:
		return m, m.cmdDelete(m.detail.record.LocalID)
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	action, cmd := m.form.update(msg)
	switch action {
	case formCancel:
		m.currentScreen = screenList
		return m, nil
	case formSubmit:
		return m, m.cmdSave(m.form.editingID(), m.form.draft())
	}
	return m, cmd
}
