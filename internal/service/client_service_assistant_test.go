package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/models"
)

// assistantServer scripts the responses of the assistant endpoints.
type assistantServer struct {
	*fakeWarrantyServer

	lastChat models.ChatRequest
	reply    models.ChatResponse
	scan     models.ReceiptScan
	scanErr  error
	image    models.ImageLookupResponse
}

func (s *assistantServer) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	s.lastChat = req
	return s.reply, nil
}

func (s *assistantServer) ProcessReceipt(ctx context.Context, imageBase64 string) (models.ReceiptScan, error) {
	return s.scan, s.scanErr
}

func (s *assistantServer) FindProductImage(ctx context.Context, req models.ImageLookupRequest) (models.ImageLookupResponse, error) {
	return s.image, nil
}

func newAssistantFixture() (*assistantServer, AssistantService) {
	server := &assistantServer{fakeWarrantyServer: newFakeWarrantyServer()}
	return server, NewAssistantService(server, logger.Nop())
}

func TestAssistant_Chat(t *testing.T) {
	server, assistant := newAssistantFixture()
	server.reply = models.ChatResponse{Reply: "The blender is covered until March."}

	history := []models.ChatMessage{{Role: "user", Content: "hi"}}
	resp, err := assistant.Chat(context.Background(), "  when does my blender expire?  ", history)
	require.NoError(t, err)

	assert.Equal(t, server.reply, resp)
	assert.Equal(t, "when does my blender expire?", server.lastChat.Message)
	assert.Equal(t, history, server.lastChat.History)
}

func TestAssistant_ChatEmptyMessage(t *testing.T) {
	server, assistant := newAssistantFixture()

	resp, err := assistant.Chat(context.Background(), "   ", nil)
	require.NoError(t, err)
	assert.Zero(t, resp)
	assert.Empty(t, server.lastChat.Message, "the server is never asked")
}

func TestAssistant_ScanReceipt(t *testing.T) {
	server, assistant := newAssistantFixture()
	server.scan = models.ReceiptScan{
		ProductName:    "Blender",
		PurchaseDate:   "2025-03-15",
		WarrantyMonths: 24,
		Category:       "Kitchen",
	}

	draft, err := assistant.ScanReceipt(context.Background(), "aW1hZ2U=")
	require.NoError(t, err)

	assert.Equal(t, "Blender", draft.ProductName)
	assert.Equal(t, 24, draft.WarrantyLengthMonths)
	assert.Equal(t, "Kitchen", draft.Category)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), draft.PurchaseDate)
}

func TestAssistant_ScanReceiptBadDate(t *testing.T) {
	server, assistant := newAssistantFixture()
	server.scan = models.ReceiptScan{ProductName: "Blender", PurchaseDate: "15/03/2025"}

	draft, err := assistant.ScanReceipt(context.Background(), "aW1hZ2U=")
	require.NoError(t, err)

	assert.Equal(t, "Blender", draft.ProductName)
	assert.True(t, draft.PurchaseDate.IsZero(), "unreadable date falls back to manual entry")
}

func TestAssistant_ScanReceiptError(t *testing.T) {
	server, assistant := newAssistantFixture()
	server.scanErr = errors.New("ocr offline")

	_, err := assistant.ScanReceipt(context.Background(), "aW1hZ2U=")
	assert.Error(t, err)
}

func TestAssistant_FindProductImage(t *testing.T) {
	server, assistant := newAssistantFixture()
	server.image = models.ImageLookupResponse{ImageURL: "https://img.example/blender.jpg"}

	url, err := assistant.FindProductImage(context.Background(), "Blender", "Kitchen")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/blender.jpg", url)
}
