package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhmetshin/warranty-keeper/internal/config"
	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "full url", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "spaces trimmed", raw: "  http://srv  ", want: "http://srv"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPServerAdapter_LoginStoresToken(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "john", user.Login)

		w.Header().Set("Authorization", "Bearer token-123")
		w.WriteHeader(http.StatusOK)
	}))

	err := a.Login(context.Background(), models.User{Login: "john", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "token-123", a.Token())
}

func TestHTTPServerAdapter_LoginUnauthorized(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))

	err := a.Login(context.Background(), models.User{Login: "john", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestHTTPServerAdapter_CreateWarranty(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/warranties", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		var payload models.WarrantyPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ServerWarranty{ServerID: "srv-9", WarrantyPayload: payload})
	}))
	a.SetToken("token-123")

	saved, err := a.CreateWarranty(context.Background(), models.WarrantyPayload{ProductName: "Laptop"})
	require.NoError(t, err)
	assert.Equal(t, "srv-9", saved.ServerID)
	assert.Equal(t, "Laptop", saved.ProductName)
}

func TestHTTPServerAdapter_DeleteWarranty_NotFoundIsSuccess(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/warranties/srv-9", r.URL.Path)
		http.NotFound(w, r)
	}))
	a.SetToken("token-123")

	assert.NoError(t, a.DeleteWarranty(context.Background(), "srv-9"))
}

func TestHTTPServerAdapter_ListChanges(t *testing.T) {
	serverNow := time.Date(2025, time.July, 1, 10, 30, 0, 0, time.UTC)

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/warranties", r.URL.Path)
		assert.Equal(t, "1500", r.URL.Query().Get("lastPulledAt"))

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Date", serverNow.Format(http.TimeFormat))
		json.NewEncoder(w).Encode([]models.ServerWarranty{
			{ServerID: "srv-1", WarrantyPayload: models.WarrantyPayload{ProductName: "Laptop"}},
		})
	}))
	a.SetToken("token-123")

	changes, serverTime, err := a.ListChanges(context.Background(), 1500)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "srv-1", changes[0].ServerID)
	assert.Equal(t, serverNow, serverTime)
}

func TestHTTPServerAdapter_ListChanges_MissingDateHeaderUsesLocalClock(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Date"] = nil // suppress the automatic header
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	a.SetToken("token-123")

	before := time.Now().UTC()
	_, serverTime, err := a.ListChanges(context.Background(), 0)
	after := time.Now().UTC()

	require.NoError(t, err)
	assert.False(t, serverTime.Before(before))
	assert.False(t, serverTime.After(after))
}

func TestHTTPServerAdapter_Chat(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)

		var req models.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "when does my laptop warranty end?", req.Message)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ChatResponse{Reply: "March 2027"})
	}))
	a.SetToken("token-123")

	answer, err := a.Chat(context.Background(), models.ChatRequest{Message: "when does my laptop warranty end?"})
	require.NoError(t, err)
	assert.Equal(t, "March 2027", answer.Reply)
}
