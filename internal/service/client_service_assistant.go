package service

import (
	"context"
	"strings"
	"time"

	"github.com/akhmetshin/warranty-keeper/internal/adapter"
	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/models"
)

type assistantService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewAssistantService constructs the client frontend for the server-side
// assistant endpoints.
func NewAssistantService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) AssistantService {
	return &assistantService{adapter: serverAdapter, logger: logger}
}

// Chat implements [AssistantService].
func (s *assistantService) Chat(ctx context.Context, message string, history []models.ChatMessage) (models.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.ChatResponse{}, nil
	}

	return s.adapter.Chat(ctx, models.ChatRequest{Message: message, History: history})
}

// ScanReceipt implements [AssistantService]. Dates the scanner reports come
// back as "2006-01-02" strings; anything unparseable leaves the field zero so
// the form falls back to manual entry.
func (s *assistantService) ScanReceipt(ctx context.Context, imageBase64 string) (models.WarrantyDraft, error) {
	scan, err := s.adapter.ProcessReceipt(ctx, imageBase64)
	if err != nil {
		return models.WarrantyDraft{}, err
	}

	draft := models.WarrantyDraft{
		ProductName:          scan.ProductName,
		WarrantyLengthMonths: scan.WarrantyMonths,
		Category:             scan.Category,
		Receipts:             scan.Receipts,
	}

	if scan.PurchaseDate != "" {
		parsed, err := time.Parse("2006-01-02", scan.PurchaseDate)
		if err != nil {
			s.logger.Warn().Str("func", "ScanReceipt").Str("date", scan.PurchaseDate).Msg("unparseable scanned date")
		} else {
			draft.PurchaseDate = parsed.UTC()
		}
	}

	return draft, nil
}

// FindProductImage implements [AssistantService]. An empty URL means the
// server found nothing suitable; that is not an error.
func (s *assistantService) FindProductImage(ctx context.Context, productName, category string) (string, error) {
	found, err := s.adapter.FindProductImage(ctx, models.ImageLookupRequest{
		ProductName: productName,
		Category:    category,
	})
	if err != nil {
		return "", err
	}

	return found.ImageURL, nil
}
