package synastry

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/astralis/astro-server/internal/events"
	"github.com/astralis/astro-server/internal/modules/charts"
)

// ChartSource provides stored charts for scoring
type ChartSource interface {
	GetByID(id string) (*charts.Chart, error)
}

// Handler handles compatibility HTTP requests
type Handler struct {
	scorer *Scorer
	source ChartSource
	events *events.Manager
	log    zerolog.Logger
}

// NewHandler creates a new compatibility handler
func NewHandler(scorer *Scorer, source ChartSource, ev *events.Manager, log zerolog.Logger) *Handler {
	return &Handler{
		scorer: scorer,
		source: source,
		events: ev,
		log:    log.With().Str("handler", "synastry").Logger(),
	}
}

// compatibilityRequest is the POST /api/compatibility body
type compatibilityRequest struct {
	Chart1ID string `json:"chart1_id"`
	Chart2ID string `json:"chart2_id"`
}

// chartRef summarizes one input chart in the response
type chartRef struct {
	ID        string `json:"id"`
	Location  string `json:"location"`
	BirthDate string `json:"birth_date"`
}

// compatibilityResponse pairs the result with its input chart summaries
type compatibilityResponse struct {
	Compatibility CompatibilityResult `json:"compatibility"`
	Chart1        chartRef            `json:"chart1"`
	Chart2        chartRef            `json:"chart2"`
	GeneratedAt   time.Time           `json:"generated_at"`
}

// HandleCalculate handles POST / - score two stored charts
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var req compatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Chart1ID == "" || req.Chart2ID == "" {
		http.Error(w, "Both chart IDs are required", http.StatusBadRequest)
		return
	}

	chart1, err := h.source.GetByID(req.Chart1ID)
	if err != nil {
		h.log.Error().Err(err).Str("chart_id", req.Chart1ID).Msg("Failed to load chart")
		http.Error(w, "Failed to calculate compatibility", http.StatusInternalServerError)
		return
	}
	chart2, err := h.source.GetByID(req.Chart2ID)
	if err != nil {
		h.log.Error().Err(err).Str("chart_id", req.Chart2ID).Msg("Failed to load chart")
		http.Error(w, "Failed to calculate compatibility", http.StatusInternalServerError)
		return
	}

	if chart1 == nil || chart2 == nil {
		http.Error(w, "One or both charts not found", http.StatusNotFound)
		return
	}

	result := h.scorer.Calculate(&chart1.ChartData, &chart2.ChartData)

	h.events.Emit(events.CompatibilityScored, "synastry", map[string]interface{}{
		"chart1_id": chart1.ID,
		"chart2_id": chart2.ID,
		"score":     result.OverallScore,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(compatibilityResponse{
		Compatibility: result,
		Chart1:        chartRef{ID: chart1.ID, Location: chart1.Location, BirthDate: chart1.BirthDate},
		Chart2:        chartRef{ID: chart2.ID, Location: chart2.Location, BirthDate: chart2.BirthDate},
		GeneratedAt:   time.Now().UTC(),
	})
}
