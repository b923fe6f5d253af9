package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akhmetshin/warranty-keeper/models"
)

const statusLifetime = 3 * time.Second

func (m appModel) cmdAuthenticate(register bool, login, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	user := models.User{Login: login, Password: password}

	return func() tea.Msg {
		var err error
		if register {
			err = auth.Register(ctx, user)
		} else {
			err = auth.Login(ctx, user)
		}
		return authDoneMsg{registered: register, err: err}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	warranties := m.services.WarrantyService
	opts := m.list.options()

	return func() tea.Msg {
		groups, err := warranties.ListGrouped(ctx, opts)
		return listLoadedMsg{groups: groups, err: err}
	}
}

func (m appModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	sync := m.services.SyncService

	return func() tea.Msg {
		return syncDoneMsg{err: sync.Sync(ctx)}
	}
}

func (m appModel) cmdSave(localID string, draft models.WarrantyDraft) tea.Cmd {
	ctx := m.ctx
	warranties := m.services.WarrantyService

	return func() tea.Msg {
		var err error
		if localID == "" {
			_, err = warranties.Create(ctx, draft)
		} else {
			_, err = warranties.Edit(ctx, localID, draft)
		}
		return savedMsg{err: err}
	}
}

func (m appModel) cmdDelete(localID string) tea.Cmd {
	ctx := m.ctx
	warranties := m.services.WarrantyService

	return func() tea.Msg {
		return deletedMsg{err: warranties.Delete(ctx, localID)}
	}
}

func (m appModel) cmdClearStatusLater() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
