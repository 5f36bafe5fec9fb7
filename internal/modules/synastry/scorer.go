package synastry

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/astralis/astro-server/internal/domain"
	"github.com/astralis/astro-server/pkg/astromath"
)

// Scoring constants. Harmonious aspects (conjunction, sextile, trine)
// score high, hard aspects (square, opposition) low; the blend weighs
// aspects over sign matches 60/40.
const (
	synastryOrb = 8.0 // One orb for all synastry aspect types

	harmoniousAspectScore  = 80.0
	challengingAspectScore = 40.0
	neutralScore           = 50.0 // Default when no aspects or a planet is missing

	aspectBlendWeight = 0.6
	signBlendWeight   = 0.4

	sameElementScore       = 90
	compatibleElementScore = 75
	oppositeElementScore   = 50
	mixedElementScore      = 60

	insightThreshold = 75 // Sub-score needed for a sign insight strength

	maxStrengthAspects  = 5
	maxChallengeAspects = 3
)

// Pair weights applied before averaging. The checks are directional:
// person 1's Sun against person 2's Moon gets the luminary weight, not
// the reverse. Kept that way for score parity with previously stored
// results.
const (
	sunMoonWeight   = 3.0
	venusMarsWeight = 2.5
	moonMoonWeight  = 2.0
	defaultWeight   = 1.0
)

// importantPlanets restricts the cross-aspect search for relationship scoring
var importantPlanets = map[domain.Planet]bool{
	domain.PlanetSun:     true,
	domain.PlanetMoon:    true,
	domain.PlanetVenus:   true,
	domain.PlanetMars:    true,
	domain.PlanetMercury: true,
}

// synastryAspectNames maps exact angles to capitalized aspect names and
// whether the aspect is harmonious, checked in this order.
var synastryAspectTable = []struct {
	angle      float64
	name       string
	harmonious bool
}{
	{0, "Conjunction", true},
	{60, "Sextile", true},
	{90, "Square", false},
	{120, "Trine", true},
	{180, "Opposition", false},
}

// Scorer computes relationship compatibility between two natal charts
type Scorer struct {
	log zerolog.Logger
}

// NewScorer creates a new compatibility scorer
func NewScorer(log zerolog.Logger) *Scorer {
	return &Scorer{
		log: log.With().Str("service", "synastry").Logger(),
	}
}

// Calculate scores the compatibility of two charts. Pure and stateless:
// the same two charts always produce the same result. Charts missing a
// planet degrade to neutral sub-scores, never an error.
func (s *Scorer) Calculate(chart1, chart2 *domain.ChartData) CompatibilityResult {
	aspects, scores, weights := s.crossAspects(chart1, chart2)

	signCompat := SignCompatibility{
		SunSignMatch:   signMatchScore(chart1, chart2, domain.PlanetSun),
		MoonSignMatch:  signMatchScore(chart1, chart2, domain.PlanetMoon),
		VenusSignMatch: signMatchScore(chart1, chart2, domain.PlanetVenus),
		MarsSignMatch:  signMatchScore(chart1, chart2, domain.PlanetMars),
	}

	aspectScore := astromath.WeightedMean(scores, weights, neutralScore)
	signScore := astromath.Mean([]float64{
		float64(signCompat.SunSignMatch),
		float64(signCompat.MoonSignMatch),
		float64(signCompat.VenusSignMatch),
		float64(signCompat.MarsSignMatch),
	})

	overall := int(math.Round(aspectScore*aspectBlendWeight + signScore*signBlendWeight))

	result := CompatibilityResult{
		OverallScore:      overall,
		Compatibility:     levelFor(overall),
		Strengths:         buildStrengths(aspects, signCompat),
		Challenges:        buildChallenges(aspects),
		SynastryAspects:   aspects,
		ElementBalance:    elementBalance(chart1, chart2),
		SignCompatibility: signCompat,
	}

	s.log.Debug().
		Int("overall", overall).
		Str("level", string(result.Compatibility)).
		Int("aspects", len(aspects)).
		Msg("Scored compatibility")

	return result
}

// crossAspects finds every aspect between the important planets of the
// two charts, in discovery order (chart1 planet order outer, chart2
// inner). Also returns the parallel score and weight slices that feed
// the weighted average.
func (s *Scorer) crossAspects(chart1, chart2 *domain.ChartData) ([]SynastryAspect, []float64, []float64) {
	aspects := []SynastryAspect{}
	scores := []float64{}
	weights := []float64{}

	for _, p1 := range chart1.Planets {
		if !importantPlanets[p1.Name] {
			continue
		}
		for _, p2 := range chart2.Planets {
			if !importantPlanets[p2.Name] {
				continue
			}

			angle := astromath.Separation(p1.AbsoluteLongitude(), p2.AbsoluteLongitude())

			name, harmonious, ok := classifyAngle(angle)
			if !ok {
				continue
			}

			weight := pairWeight(p1.Name, p2.Name)
			score := challengingAspectScore
			if harmonious {
				score = harmoniousAspectScore
			}

			scores = append(scores, score)
			weights = append(weights, weight)

			aspects = append(aspects, SynastryAspect{
				Person1Planet: p1.Name,
				Person2Planet: p2.Name,
				Aspect:        name,
				Angle:         angle,
				IsHarmonious:  harmonious,
				Description:   describeAspect(p1.Name, p2.Name, name, harmonious),
			})
		}
	}

	return aspects, scores, weights
}

// classifyAngle matches a separation against the synastry aspect table
// with the flat 8 degree orb. First match wins; the windows do not
// overlap at this orb.
func classifyAngle(angle float64) (name string, harmonious, ok bool) {
	for _, a := range synastryAspectTable {
		if math.Abs(angle-a.angle) <= synastryOrb {
			return a.name, a.harmonious, true
		}
	}
	return "", false, false
}

func pairWeight(p1, p2 domain.Planet) float64 {
	if p1 == domain.PlanetSun && p2 == domain.PlanetMoon {
		return sunMoonWeight
	}
	if p1 == domain.PlanetVenus && p2 == domain.PlanetMars {
		return venusMarsWeight
	}
	if p1 == domain.PlanetMoon && p2 == domain.PlanetMoon {
		return moonMoonWeight
	}
	return defaultWeight
}

// signMatchScore compares the same planet's sign across the two charts
// by element relationship. Missing planets default to neutral.
func signMatchScore(chart1, chart2 *domain.ChartData, planet domain.Planet) int {
	p1 := chart1.FindPlanet(planet)
	p2 := chart2.FindPlanet(planet)
	if p1 == nil || p2 == nil {
		return neutralScore
	}
	return elementCompatibility(p1.Sign, p2.Sign)
}

// elementCompatibility scores two signs by their elements: same element
// 90, fire/air or earth/water 75, fire/water or earth/air 50, anything
// else 60.
func elementCompatibility(sign1, sign2 string) int {
	e1 := domain.SignElements[sign1]
	e2 := domain.SignElements[sign2]

	if e1 == e2 {
		return sameElementScore
	}

	if (e1 == domain.ElementFire && e2 == domain.ElementAir) ||
		(e1 == domain.ElementAir && e2 == domain.ElementFire) ||
		(e1 == domain.ElementEarth && e2 == domain.ElementWater) ||
		(e1 == domain.ElementWater && e2 == domain.ElementEarth) {
		return compatibleElementScore
	}

	if (e1 == domain.ElementFire && e2 == domain.ElementWater) ||
		(e1 == domain.ElementWater && e2 == domain.ElementFire) ||
		(e1 == domain.ElementEarth && e2 == domain.ElementAir) ||
		(e1 == domain.ElementAir && e2 == domain.ElementEarth) {
		return oppositeElementScore
	}

	return mixedElementScore
}

// elementBalance tallies the element of every planet across both charts
func elementBalance(chart1, chart2 *domain.ChartData) ElementBalance {
	var balance ElementBalance

	count := func(planets []domain.PlanetPosition) {
		for _, p := range planets {
			switch domain.SignElements[p.Sign] {
			case domain.ElementFire:
				balance.Fire++
			case domain.ElementEarth:
				balance.Earth++
			case domain.ElementAir:
				balance.Air++
			case domain.ElementWater:
				balance.Water++
			}
		}
	}

	count(chart1.Planets)
	count(chart2.Planets)

	return balance
}

// levelFor maps an overall score to its label, inclusive lower bounds
func levelFor(score int) Level {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 65:
		return LevelHigh
	case score >= 50:
		return LevelMedium
	default:
		return LevelLow
	}
}

// buildStrengths lists up to five harmonious aspects in discovery order,
// then the sun/moon/venus sign insights for sub-scores at or above the
// threshold, checked in that fixed order.
func buildStrengths(aspects []SynastryAspect, signCompat SignCompatibility) []string {
	strengths := []string{}

	added := 0
	for _, a := range aspects {
		if !a.IsHarmonious {
			continue
		}
		strengths = append(strengths, formatAspectLine(a))
		added++
		if added == maxStrengthAspects {
			break
		}
	}

	if signCompat.SunSignMatch >= insightThreshold {
		strengths = append(strengths, sunInsight)
	}
	if signCompat.MoonSignMatch >= insightThreshold {
		strengths = append(strengths, moonInsight)
	}
	if signCompat.VenusSignMatch >= insightThreshold {
		strengths = append(strengths, venusInsight)
	}

	return strengths
}

// buildChallenges lists up to three hard aspects in discovery order
func buildChallenges(aspects []SynastryAspect) []string {
	challenges := []string{}

	for _, a := range aspects {
		if a.IsHarmonious {
			continue
		}
		challenges = append(challenges, formatAspectLine(a))
		if len(challenges) == maxChallengeAspects {
			break
		}
	}

	return challenges
}

func formatAspectLine(a SynastryAspect) string {
	return fmt.Sprintf("%s-%s %s: %s", a.Person1Planet, a.Person2Planet, a.Aspect, a.Description)
}
