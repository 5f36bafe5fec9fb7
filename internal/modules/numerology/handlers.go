package numerology

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/astralis/astro-server/internal/events"
)

// Handler handles numerology HTTP requests
type Handler struct {
	calc   *Calculator
	events *events.Manager
	log    zerolog.Logger
}

// NewHandler creates a new numerology handler
func NewHandler(calc *Calculator, ev *events.Manager, log zerolog.Logger) *Handler {
	return &Handler{
		calc:   calc,
		events: ev,
		log:    log.With().Str("handler", "numerology").Logger(),
	}
}

// profileRequest is the POST /api/numerology body
type profileRequest struct {
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
	FullName  string `json:"full_name"`
}

// profileResponse pairs the profile with per-number meanings
type profileResponse struct {
	Profile  Profile            `json:"profile"`
	Meanings map[string]Meaning `json:"meanings"`
}

// HandleCalculate handles POST / - compute a numerology profile
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.FullName == "" {
		http.Error(w, "full_name is required", http.StatusBadRequest)
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	profile := h.calc.CalculateProfile(birthDate, req.FullName)

	h.events.Emit(events.NumerologyCalculated, "numerology", map[string]interface{}{
		"life_path": profile.LifePathNumber,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profileResponse{
		Profile: profile,
		Meanings: map[string]Meaning{
			"lifePathNumber":     MeaningFor(profile.LifePathNumber),
			"expressionNumber":   MeaningFor(profile.ExpressionNumber),
			"soulUrgeNumber":     MeaningFor(profile.SoulUrgeNumber),
			"personalityNumber":  MeaningFor(profile.PersonalityNumber),
			"birthdayNumber":     MeaningFor(profile.BirthdayNumber),
			"maturityNumber":     MeaningFor(profile.MaturityNumber),
			"personalYearNumber": MeaningFor(profile.PersonalYearNumber),
		},
	})
}
