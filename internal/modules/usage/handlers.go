package usage

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles usage HTTP requests
type Handler struct {
	service *Service
	log     zerolog.Logger
}

// NewHandler creates a new usage handler
func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "usage").Logger(),
	}
}

// HandleGetUsage handles GET /{userID} - current month usage for a user
func (h *Handler) HandleGetUsage(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	plan := Plan(r.URL.Query().Get("plan"))
	if plan == "" {
		plan = PlanFree
	}

	info, err := h.service.GetInfo(userID, plan)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("Failed to get usage")
		http.Error(w, "Failed to get usage", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}

// HandleIncrement handles POST /{userID}/increment - record one AI call
func (h *Handler) HandleIncrement(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	plan := Plan(r.URL.Query().Get("plan"))
	if plan == "" {
		plan = PlanFree
	}

	// Ensure the record exists and is current before incrementing
	info, err := h.service.GetInfo(userID, plan)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("Failed to get usage")
		http.Error(w, "Failed to record usage", http.StatusInternalServerError)
		return
	}

	if !info.CanMakeCall {
		http.Error(w, "Monthly AI call limit reached", http.StatusTooManyRequests)
		return
	}

	if err := h.service.Increment(userID); err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("Failed to increment usage")
		http.Error(w, "Failed to record usage", http.StatusInternalServerError)
		return
	}

	info.AICallsThisMonth++
	info.CanMakeCall = info.AICallsThisMonth < info.Limit

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}
