package charts

import (
	"time"

	"github.com/astralis/astro-server/internal/domain"
)

// Chart is a stored natal chart: the birth inputs plus the computed
// chart data, keyed by an opaque id.
type Chart struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	BirthDate string           `json:"birth_date"` // YYYY-MM-DD
	BirthTime string           `json:"birth_time"` // HH:MM
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Timezone  string           `json:"timezone"`
	Location  string           `json:"location"`
	ChartData domain.ChartData `json:"chart_data"`
	CreatedAt time.Time        `json:"created_at"`
}

// Summary is the list-view projection of a stored chart
type Summary struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	BirthDate string    `json:"birth_date"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateRequest is the POST /api/charts body
type CreateRequest struct {
	UserID    string  `json:"user_id"`
	BirthDate string  `json:"birth_date"` // YYYY-MM-DD
	BirthTime string  `json:"birth_time"` // HH:MM
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Location  string  `json:"location"`
	Plan      string  `json:"plan,omitempty"` // FREE charts are capped at one
}
