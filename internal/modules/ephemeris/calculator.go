// Package ephemeris approximates planetary positions, house cusps and
// aspects from a birth instant. The longitudes come from closed-form
// mean-motion formulas, not a real ephemeris: accuracy is entertainment
// grade and deliberately so. Downstream expectations are calibrated to
// these approximations, so do not swap in Swiss Ephemeris style data
// without revisiting every consumer.
package ephemeris

import (
	"math/rand"
	"time"

	"github.com/astralis/astro-server/internal/domain"
	"github.com/astralis/astro-server/pkg/astromath"
)

// RandSource supplies the uniform draws used for retrograde flags.
// *rand.Rand satisfies it. Injecting the source keeps chart generation
// reproducible under test and isolates concurrent calculators from each
// other (each calculator owns its source, callers must not share one
// *rand.Rand across goroutines).
type RandSource interface {
	Float64() float64
}

// planetModel holds the simplified mean-motion parameters for one body.
// retroThreshold is the uniform-draw cutoff above which the body is
// flagged retrograde; 1 disables the flag entirely (Sun, Moon).
type planetModel struct {
	name           domain.Planet
	epochLongitude float64 // Mean longitude at J2000, degrees
	meanMotion     float64 // Degrees per day
	retroThreshold float64
}

// Simplified mean angular velocities. The Sun and Moon use published mean
// longitude elements; the rest advance at a fixed per-day rate from 0 at
// the epoch. Not matched to true orbital mechanics.
var planetModels = []planetModel{
	{name: domain.PlanetSun, epochLongitude: 280.46, meanMotion: 0.9856474, retroThreshold: 1},
	{name: domain.PlanetMoon, epochLongitude: 218.316, meanMotion: 13.176396, retroThreshold: 1},
	{name: domain.PlanetMercury, epochLongitude: 0, meanMotion: 1.59, retroThreshold: 0.8},  // 20% retrograde
	{name: domain.PlanetVenus, epochLongitude: 0, meanMotion: 1.18, retroThreshold: 0.95},   // 5%
	{name: domain.PlanetMars, epochLongitude: 0, meanMotion: 0.524, retroThreshold: 0.9},    // 10%
	{name: domain.PlanetJupiter, epochLongitude: 0, meanMotion: 0.083, retroThreshold: 0.7}, // 30%
	{name: domain.PlanetSaturn, epochLongitude: 0, meanMotion: 0.034, retroThreshold: 0.7},  // 30%
}

// Calculator computes planetary positions for a birth instant
type Calculator struct {
	rnd RandSource
}

// NewCalculator creates a calculator with the given random source for
// retrograde flags. A nil source gets a time-seeded one.
func NewCalculator(rnd RandSource) *Calculator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Calculator{rnd: rnd}
}

// CalculatePlanetPositions returns the seven chart bodies for the given
// Julian Date, in fixed order (Sun, Moon, Mercury, Venus, Mars, Jupiter,
// Saturn). The latitude parameter is accepted for contract parity with
// the house calculation but does not enter the longitude math.
func (c *Calculator) CalculatePlanetPositions(jd float64, latitude float64) []domain.PlanetPosition {
	_ = latitude

	days := astromath.DaysSinceJ2000(jd)

	positions := make([]domain.PlanetPosition, 0, len(planetModels))
	for _, m := range planetModels {
		longitude := astromath.NormalizeDegrees(m.epochLongitude + m.meanMotion*days)

		retrograde := false
		if m.retroThreshold < 1 {
			retrograde = c.rnd.Float64() > m.retroThreshold
		}

		positions = append(positions, domain.PlanetPosition{
			Name:       m.name,
			Sign:       domain.ZodiacSigns[astromath.SignIndex(longitude)],
			Degree:     astromath.DegreeInSign(longitude),
			House:      houseForLongitude(longitude),
			Retrograde: retrograde,
		})
	}

	return positions
}

// houseForLongitude assigns a planet's house. In this simplified model the
// assignment collapses to the sign index plus one; planets are not placed
// against the computed house cusps. Kept for output compatibility with the
// stored charts this service replaces.
func houseForLongitude(longitude float64) int {
	return astromath.SignIndex(longitude)%12 + 1
}
