package http

import (
	"errors"
	"net/http"

	"github.com/akhmetshin/warranty-keeper/internal/service"
	"github.com/akhmetshin/warranty-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyProductName:      http.StatusBadRequest,
	service.ErrEmptyPurchaseDate:     http.StatusBadRequest,
	service.ErrInvalidWarrantyLength: http.StatusBadRequest,
	service.ErrTooManyReceipts:       http.StatusBadRequest,
	service.ErrEmptyLogin:            http.StatusBadRequest,
	service.ErrEmptyPassword:         http.StatusBadRequest,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrWarrantyNotFound:   http.StatusNotFound,
	store.ErrWarrantyNotSaved:   http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
