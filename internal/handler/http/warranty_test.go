package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akhmetshin/warranty-keeper/internal/store"
	"github.com/akhmetshin/warranty-keeper/models"
)

func testPayload(name string) models.WarrantyPayload {
	return models.WarrantyPayload{
		ProductName:          name,
		PurchaseDate:         time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		WarrantyLengthMonths: 12,
		Receipts:             []models.Receipt{},
	}
}

func TestHandler_CreateWarranty(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl)
	f.expectAuth(42)

	saved := models.ServerWarranty{ServerID: "srv-1", WarrantyPayload: testPayload("TV")}
	f.warranties.EXPECT().
		Create(gomock.Any(), int64(42), testPayload("TV")).
		Return(saved, nil)

	resp := f.request(t, http.MethodPost, "/api/warranties", "valid-token", testPayload("TV"))

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	got := decodeBody[models.ServerWarranty](t, resp)
	assert.Equal(t, saved, got)
}

func TestHandler_ReplaceWarranty(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl)
	f.expectAuth(42)

	saved := models.ServerWarranty{ServerID: "srv-1", WarrantyPayload: testPayload("TV 55")}
	f.warranties.EXPECT().
		Replace(gomock.Any(), int64(42), "srv-1", testPayload("TV 55")).
		Return(saved, nil)

	resp := f.request(t, http.MethodPut, "/api/warranties/srv-1", "valid-token", testPayload("TV 55"))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[models.ServerWarranty](t, resp)
	assert.Equal(t, "TV 55", got.ProductName)
}

func TestHandler_ReplaceWarranty_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl)
	f.expectAuth(42)

	f.warranties.EXPECT().
		Replace(gomock.Any(), int64(42), "missing", gomock.Any()).
		Return(models.ServerWarranty{}, store.ErrWarrantyNotFound)

	resp := f.request(t, http.MethodPut, "/api/warranties/missing", "valid-token", testPayload("TV"))

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_DeleteWarranty(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl)
	f.expectAuth(42)

	f.warranties.EXPECT().Delete(gomock.Any(), int64(42), "srv-1").Return(nil)

	resp := f.request(t, http.MethodDelete, "/api/warranties/srv-1", "valid-token", nil)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_ListChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl)
	f.expectAuth(42)

	since := time.UnixMilli(1754042400000).UTC()
	changes := []models.ServerWarranty{{ServerID: "srv-1", WarrantyPayload: testPayload("TV")}}

	f.warranties.EXPECT().
		ChangesSince(gomock.Any(), int64(42), since).
		Return(changes, nil)

	resp := f.request(t, http.MethodGet, "/api/warranties?lastPulledAt=1754042400000", "valid-token", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Date"), "clients read the server clock from here")

	got := decodeBody[[]models.ServerWarranty](t, resp)
	assert.Equal(t, changes, got)
}

func TestHandler_ListChanges_FirstPull(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl)
	f.expectAuth(42)

	f.warranties.EXPECT().
		ChangesSince(gomock.Any(), int64(42), time.Time{}).
		Return(nil, nil)

	resp := f.request(t, http.MethodGet, "/api/warranties?lastPulledAt=0", "valid-token", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody[[]models.ServerWarranty](t, resp)
	assert.NotNil(t, got)
	assert.Empty(t, got, "empty catalogue encodes as [], not null")
}

func TestHandler_ListChanges_BadCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl)
	f.expectAuth(42)

	resp := f.request(t, http.MethodGet, "/api/warranties?lastPulledAt=yesterday", "valid-token", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
