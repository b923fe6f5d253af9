package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/akhmetshin/warranty-keeper/models"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl)

	resp := f.request(t, http.MethodGet, "/api/warranties", "", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl)

	req, err := http.NewRequest(http.MethodGet, f.server.URL+"/api/warranties", nil)
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Bearer")

	resp, err := f.client.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl)

	f.auth.EXPECT().
		ParseToken(gomock.Any(), "expired-token").
		Return(models.Token{}, errors.New("token is expired"))

	resp := f.request(t, http.MethodGet, "/api/warranties", "expired-token", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_PassesUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl)
	f.expectAuth(42)

	f.warranties.EXPECT().
		Delete(gomock.Any(), int64(42), "srv-1").
		Return(nil)

	resp := f.request(t, http.MethodDelete, "/api/warranties/srv-1", "valid-token", nil)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestTraceIDHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl)

	resp := f.request(t, http.MethodGet, "/api/warranties", "", nil)

	assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
}

func TestTraceIDHeader_Propagated(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newHandlerFixture(t, ctrl)

	req, err := http.NewRequest(http.MethodGet, f.server.URL+"/api/warranties", nil)
	assert.NoError(t, err)
	req.Header.Set(traceIDHeader, "trace-123")

	resp, err := f.client.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-123", resp.Header.Get(traceIDHeader))
}
