package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/utils"
	"github.com/akhmetshin/warranty-keeper/models"
)

// chat answers conversational queries over the user's catalogue. This
// reference implementation matches message words against product names and
// categories and reports the warranty windows it finds; it keeps the wire
// contract of the hosted assistant without calling one.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.chat").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	catalogue, err := h.services.WarrantyService.ChangesSince(ctx, userID, time.Time{})
	if err != nil {
		log.Err(err).Msg("error loading catalogue for chat")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, answerFromCatalogue(req.Message, catalogue), http.StatusOK)
}

// processReceipt accepts a receipt image and returns the extracted fields.
// The reference server has no OCR backend, so every field comes back empty
// and the client form falls back to manual entry.
func (h *Handler) processReceipt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req struct {
		Image string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.Image == "" {
		http.Error(w, "empty image", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.ReceiptScan{}, http.StatusOK)
}

// findProductImage resolves a stock image for a product. The reference server
// has no image index; an empty URL tells the client nothing suitable was
// found.
func (h *Handler) findProductImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ImageLookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.ImageLookupResponse{}, http.StatusOK)
}

func answerFromCatalogue(message string, catalogue []models.ServerWarranty) models.ChatResponse {
	words := strings.Fields(strings.ToLower(message))

	var (
		matched []models.ServerWarranty
		ids     []string
	)
	for _, warranty := range catalogue {
		haystack := strings.ToLower(warranty.ProductName + " " + warranty.Category)
		for _, word := range words {
			if len(word) < 3 {
				continue
			}
			if strings.Contains(haystack, word) {
				matched = append(matched, warranty)
				ids = append(ids, warranty.ServerID)
				break
			}
		}
	}

	if len(matched) == 0 {
		return models.ChatResponse{
			Reply: fmt.Sprintf("I could not find a matching product among your %d warranties.", len(catalogue)),
		}
	}

	var b strings.Builder
	for i, warranty := range matched {
		if i > 0 {
			b.WriteString(" ")
		}
		expiry := warranty.PurchaseDate.AddDate(0, warranty.WarrantyLengthMonths, 0)
		fmt.Fprintf(&b, "%s is covered until %s.", warranty.ProductName, expiry.Format("2 January 2006"))
	}

	return models.ChatResponse{Reply: b.String(), ServerIDs: ids}
}
