package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/utils"
	"github.com/akhmetshin/warranty-keeper/models"
)

func (h *Handler) createWarranty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createWarranty").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var payload models.WarrantyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.WarrantyService.Create(ctx, userID, payload)
	if err != nil {
		log.Err(err).Msg("error creating warranty")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) replaceWarranty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.replaceWarranty").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")

	var payload models.WarrantyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.WarrantyService.Replace(ctx, userID, id, payload)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error replacing warranty")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) deleteWarranty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteWarranty").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.services.WarrantyService.Delete(ctx, userID, id); err != nil {
		log.Err(err).Str("id", id).Msg("error deleting warranty")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listChanges serves the incremental pull: every warranty of the user changed
// strictly after the lastPulledAt query parameter (epoch milliseconds). An
// absent or zero parameter returns the whole catalogue. Clients read the
// server clock from the response Date header, which net/http sets on every
// response.
func (h *Handler) listChanges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listChanges").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var since time.Time
	if raw := r.URL.Query().Get("lastPulledAt"); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Err(err).Str("lastPulledAt", raw).Msg("invalid lastPulledAt parameter")
			http.Error(w, "invalid lastPulledAt parameter", http.StatusBadRequest)
			return
		}
		if ms > 0 {
			since = time.UnixMilli(ms).UTC()
		}
	}

	changes, err := h.services.WarrantyService.ChangesSince(ctx, userID, since)
	if err != nil {
		log.Err(err).Msg("error listing warranty changes")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if changes == nil {
		changes = []models.ServerWarranty{}
	}

	utils.WriteJSON(w, changes, http.StatusOK)
}
