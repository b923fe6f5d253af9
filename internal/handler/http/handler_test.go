package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/mock"
	"github.com/akhmetshin/warranty-keeper/internal/service"
	"github.com/akhmetshin/warranty-keeper/models"
)

type handlerFixture struct {
	auth       *mock.MockAuthService
	warranties *mock.MockWarrantyService
	server     *httptest.Server
	client     *http.Client
}

func newHandlerFixture(t *testing.T, ctrl *gomock.Controller) *handlerFixture {
	t.Helper()

	authService := mock.NewMockAuthService(ctrl)
	warrantyService := mock.NewMockWarrantyService(ctrl)

	handler := NewHandler(&service.Services{
		AuthService:     authService,
		WarrantyService: warrantyService,
	}, logger.Nop())

	server := httptest.NewServer(handler.Init())
	t.Cleanup(server.Close)

	return &handlerFixture{
		auth:       authService,
		warranties: warrantyService,
		server:     server,
		client:     server.Client(),
	}
}

// expectAuth makes any bearer token resolve to the given user ID.
func (f *handlerFixture) expectAuth(userID int64) {
	f.auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{UserID: userID}, nil).
		AnyTimes()
}

func (f *handlerFixture) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, f.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
