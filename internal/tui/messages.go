package tui

import (
	"github.com/akhmetshin/warranty-keeper/models"
)

type authDoneMsg struct {
	registered bool
	err        error
}

type listLoadedMsg struct {
	groups []models.WarrantyGroup
	err    error
}

type syncDoneMsg struct {
	err error
}

type savedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type clearStatusMsg struct{}
