package charts

import (
	"github.com/rs/zerolog"

	"github.com/astralis/astro-server/internal/domain"
	"github.com/astralis/astro-server/internal/modules/ephemeris"
	"github.com/astralis/astro-server/pkg/astromath"
)

// Service assembles natal charts from birth data. It is the sole entry
// point for chart generation: validation, Julian Date conversion, planet
// positions, house cusps, ascendant and aspects, composed into one
// immutable ChartData.
type Service struct {
	calc *ephemeris.Calculator
	log  zerolog.Logger
}

// NewService creates a chart service around the given position calculator
func NewService(calc *ephemeris.Calculator, log zerolog.Logger) *Service {
	return &Service{
		calc: calc,
		log:  log.With().Str("service", "charts").Logger(),
	}
}

// CalculateNatalChart computes a complete natal chart. Invalid birth data
// (out-of-range coordinates, malformed time) returns a
// *domain.ValidationError before any arithmetic runs; valid input cannot
// fail.
func (s *Service) CalculateNatalChart(birth domain.BirthData) (*domain.ChartData, error) {
	if err := birth.Validate(); err != nil {
		return nil, err
	}

	hour, minute, _ := domain.ParseClockTime(birth.Time)
	jd := astromath.JulianDate(
		birth.Date.Year(),
		int(birth.Date.Month()),
		birth.Date.Day(),
		hour,
		minute,
	)

	planets := s.calc.CalculatePlanetPositions(jd, birth.Latitude)
	houses := ephemeris.CalculateHouses(jd, birth.Latitude, birth.Longitude)
	aspects := ephemeris.CalculateAspects(planets)

	chart := &domain.ChartData{
		Planets: planets,
		Houses:  houses,
		Ascendant: domain.Ascendant{
			Sign:   houses[0].Sign,
			Degree: houses[0].Degree,
		},
		Aspects: aspects,
	}

	s.log.Debug().
		Str("location", birth.Location).
		Str("ascendant", chart.Ascendant.Sign).
		Int("aspects", len(aspects)).
		Msg("Calculated natal chart")

	return chart, nil
}
