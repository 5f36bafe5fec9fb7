package charts

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/astralis/astro-server/internal/domain"
	"github.com/astralis/astro-server/internal/events"
)

// freePlanChartLimit caps how many charts a FREE plan user may store
const freePlanChartLimit = 1

// Handler handles natal chart HTTP requests
type Handler struct {
	service *Service
	repo    *Repository
	events  *events.Manager
	log     zerolog.Logger
}

// NewHandler creates a new charts handler
func NewHandler(service *Service, repo *Repository, ev *events.Manager, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		repo:    repo,
		events:  ev,
		log:     log.With().Str("handler", "charts").Logger(),
	}
}

// HandleCreateChart handles POST / - calculate and store a natal chart
func (h *Handler) HandleCreateChart(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.UserID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		http.Error(w, "birth_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	// FREE plan allows a single stored chart
	if req.Plan == "FREE" {
		count, err := h.repo.CountByUser(req.UserID)
		if err != nil {
			h.log.Error().Err(err).Msg("Failed to count charts")
			http.Error(w, "Failed to create chart", http.StatusInternalServerError)
			return
		}
		if count >= freePlanChartLimit {
			http.Error(w, "FREE plan allows only 1 natal chart", http.StatusForbidden)
			return
		}
	}

	birth := domain.BirthData{
		Date:      birthDate,
		Time:      req.BirthTime,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timezone:  req.Timezone,
		Location:  req.Location,
	}

	chartData, err := h.service.CalculateNatalChart(birth)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Failed to calculate chart")
		http.Error(w, "Failed to create chart", http.StatusInternalServerError)
		return
	}

	chart, err := h.repo.Create(&Chart{
		UserID:    req.UserID,
		BirthDate: req.BirthDate,
		BirthTime: req.BirthTime,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timezone:  req.Timezone,
		Location:  req.Location,
		ChartData: *chartData,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to store chart")
		http.Error(w, "Failed to create chart", http.StatusInternalServerError)
		return
	}

	h.events.Emit(events.ChartCreated, "charts", map[string]interface{}{
		"chart_id": chart.ID,
		"user_id":  chart.UserID,
		"location": chart.Location,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(chart)
}

// HandleListCharts handles GET / - list chart summaries for a user
func (h *Handler) HandleListCharts(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id query parameter is required", http.StatusBadRequest)
		return
	}

	summaries, err := h.repo.ListByUser(userID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list charts")
		http.Error(w, "Failed to list charts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

// HandleGetChart handles GET /{id} - fetch one stored chart
func (h *Handler) HandleGetChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	chart, err := h.repo.GetByID(id)
	if err != nil {
		h.log.Error().Err(err).Str("chart_id", id).Msg("Failed to get chart")
		http.Error(w, "Failed to get chart", http.StatusInternalServerError)
		return
	}
	if chart == nil {
		http.Error(w, "Chart not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chart)
}

// HandleDeleteChart handles DELETE /{id}
func (h *Handler) HandleDeleteChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.repo.Delete(id)
	if err != nil {
		h.log.Error().Err(err).Str("chart_id", id).Msg("Failed to delete chart")
		http.Error(w, "Failed to delete chart", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Chart not found", http.StatusNotFound)
		return
	}

	h.events.Emit(events.ChartDeleted, "charts", map[string]interface{}{
		"chart_id": id,
	})

	w.WriteHeader(http.StatusNoContent)
}
