package synastry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/astralis/astro-server/internal/domain"
	"github.com/astralis/astro-server/internal/modules/ephemeris"
	"github.com/astralis/astro-server/pkg/astromath"
	"github.com/astralis/astro-server/pkg/logger"
)

func testScorer() *Scorer {
	return NewScorer(logger.New(logger.Config{Level: "error", Pretty: false}))
}

// chartWith builds a chart holding the given planets at absolute longitudes
func chartWith(planets map[domain.Planet]float64) *domain.ChartData {
	chart := &domain.ChartData{}
	for _, name := range domain.Planets {
		longitude, ok := planets[name]
		if !ok {
			continue
		}
		idx := int(longitude/30) % 12
		chart.Planets = append(chart.Planets, domain.PlanetPosition{
			Name:   name,
			Sign:   domain.ZodiacSigns[idx],
			Degree: math.Mod(longitude, 30),
		})
	}
	return chart
}

func TestCalculateSunTrineScenario(t *testing.T) {
	// Single cross-aspect: Sun trine Sun (harmonious, weight 1).
	// aspectScore = 80. Sun signs Aries/Leo share fire (90); the other
	// three planet pairs are missing (50 each), so signScore = 60.
	// overall = round(80*0.6 + 60*0.4) = 72 -> High.
	chart1 := chartWith(map[domain.Planet]float64{domain.PlanetSun: 0})
	chart2 := chartWith(map[domain.Planet]float64{domain.PlanetSun: 120})

	result := testScorer().Calculate(chart1, chart2)

	if result.OverallScore != 72 {
		t.Errorf("overall = %d, want 72", result.OverallScore)
	}
	if result.Compatibility != LevelHigh {
		t.Errorf("level = %s, want High", result.Compatibility)
	}
	if len(result.SynastryAspects) != 1 {
		t.Fatalf("expected 1 synastry aspect, got %d", len(result.SynastryAspects))
	}

	a := result.SynastryAspects[0]
	if a.Aspect != "Trine" || !a.IsHarmonious {
		t.Errorf("aspect = %+v, want harmonious Trine", a)
	}
	if a.Description != fallbackHarmonious {
		t.Errorf("description = %q, want generic fallback", a.Description)
	}

	if result.SignCompatibility.SunSignMatch != 90 {
		t.Errorf("sun match = %d, want 90", result.SignCompatibility.SunSignMatch)
	}
	if result.SignCompatibility.MoonSignMatch != 50 {
		t.Errorf("moon match = %d, want neutral 50 for missing planet", result.SignCompatibility.MoonSignMatch)
	}

	// Sun insight fires at 90 >= 75; the aspect strength precedes it
	if len(result.Strengths) != 2 || result.Strengths[1] != sunInsight {
		t.Errorf("strengths = %v, want aspect line then sun insight", result.Strengths)
	}
}

func TestCalculateWeightedSunMoon(t *testing.T) {
	// Sun(1) conj Moon(2): 80 * weight 3. Sun(1) square Sun(2): 40 * 1.
	// aspectScore = (240 + 40) / 4 = 70. All sign matches neutral or 50:
	// Aries vs Cancer is fire/water (50), the rest missing (50), so
	// signScore = 50 and overall = round(42 + 20) = 62 -> Medium.
	chart1 := chartWith(map[domain.Planet]float64{domain.PlanetSun: 0})
	chart2 := chartWith(map[domain.Planet]float64{
		domain.PlanetSun:  90,
		domain.PlanetMoon: 0,
	})

	result := testScorer().Calculate(chart1, chart2)

	if result.OverallScore != 62 {
		t.Errorf("overall = %d, want 62", result.OverallScore)
	}
	if result.Compatibility != LevelMedium {
		t.Errorf("level = %s, want Medium", result.Compatibility)
	}

	// Sun-Moon conjunction has a specific description
	var found bool
	for _, a := range result.SynastryAspects {
		if a.Person1Planet == domain.PlanetSun && a.Person2Planet == domain.PlanetMoon {
			found = true
			if a.Description != aspectDescriptions["Sun-Moon"]["Conjunction"] {
				t.Errorf("Sun-Moon description = %q", a.Description)
			}
		}
	}
	if !found {
		t.Error("expected a Sun-Moon aspect")
	}
}

func TestCalculateNoAspectsDefaultsNeutral(t *testing.T) {
	// Separation 40 matches no window; aspect score falls back to 50.
	// Aries vs Taurus is a mixed-element pair (60), rest neutral:
	// signScore = 52.5, overall = round(30 + 21) = 51 -> Medium.
	chart1 := chartWith(map[domain.Planet]float64{domain.PlanetSun: 0})
	chart2 := chartWith(map[domain.Planet]float64{domain.PlanetSun: 40})

	result := testScorer().Calculate(chart1, chart2)

	if len(result.SynastryAspects) != 0 {
		t.Fatalf("expected no aspects, got %+v", result.SynastryAspects)
	}
	if result.OverallScore != 51 {
		t.Errorf("overall = %d, want 51", result.OverallScore)
	}
}

func TestCalculateEmptyChartsStayInBounds(t *testing.T) {
	result := testScorer().Calculate(&domain.ChartData{}, &domain.ChartData{})

	if result.OverallScore != 50 {
		t.Errorf("overall = %d, want neutral 50", result.OverallScore)
	}
	if result.Compatibility != LevelMedium {
		t.Errorf("level = %s, want Medium", result.Compatibility)
	}
}

func TestLevelBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{80, LevelExcellent},
		{79, LevelHigh},
		{65, LevelHigh},
		{64, LevelMedium},
		{50, LevelMedium},
		{49, LevelLow},
		{0, LevelLow},
		{100, LevelExcellent},
	}

	for _, tt := range tests {
		if got := levelFor(tt.score); got != tt.want {
			t.Errorf("levelFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestElementCompatibilityMatrix(t *testing.T) {
	tests := []struct {
		sign1, sign2 string
		want         int
	}{
		{"Aries", "Leo", 90},        // fire-fire
		{"Taurus", "Virgo", 90},     // earth-earth
		{"Aries", "Gemini", 75},     // fire-air
		{"Libra", "Leo", 75},        // air-fire
		{"Taurus", "Cancer", 75},    // earth-water
		{"Pisces", "Capricorn", 75}, // water-earth
		{"Aries", "Cancer", 50},     // fire-water
		{"Scorpio", "Leo", 50},      // water-fire
		{"Taurus", "Gemini", 50},    // earth-air
		{"Aquarius", "Virgo", 50},   // air-earth
		{"Aries", "Taurus", 60},     // fire-earth falls through
		{"Gemini", "Cancer", 60},    // air-water falls through
	}

	for _, tt := range tests {
		if got := elementCompatibility(tt.sign1, tt.sign2); got != tt.want {
			t.Errorf("elementCompatibility(%s, %s) = %d, want %d", tt.sign1, tt.sign2, got, tt.want)
		}
	}
}

func TestElementBalanceSumsToFourteen(t *testing.T) {
	calc := ephemeris.NewCalculator(rand.New(rand.NewSource(3)))

	jd1 := astromath.JulianDate(1990, 5, 15, 14, 30)
	jd2 := astromath.JulianDate(1988, 12, 2, 9, 15)

	chart1 := &domain.ChartData{Planets: calc.CalculatePlanetPositions(jd1, 44.8)}
	chart2 := &domain.ChartData{Planets: calc.CalculatePlanetPositions(jd2, 40.4)}

	balance := testScorer().Calculate(chart1, chart2).ElementBalance
	sum := balance.Fire + balance.Earth + balance.Air + balance.Water
	if sum != 14 {
		t.Errorf("element balance sums to %d, want 14: %+v", sum, balance)
	}
}

func TestScoreBoundsAcrossGeneratedCharts(t *testing.T) {
	calc := ephemeris.NewCalculator(rand.New(rand.NewSource(9)))
	scorer := testScorer()

	dates := [][5]int{
		{1950, 1, 1, 0, 0},
		{1972, 6, 30, 18, 5},
		{1990, 5, 15, 14, 30},
		{2003, 3, 3, 3, 33},
		{2020, 2, 29, 23, 59},
	}

	charts := make([]*domain.ChartData, 0, len(dates))
	for _, d := range dates {
		jd := astromath.JulianDate(d[0], d[1], d[2], d[3], d[4])
		charts = append(charts, &domain.ChartData{Planets: calc.CalculatePlanetPositions(jd, 0)})
	}

	for i := range charts {
		for j := range charts {
			result := scorer.Calculate(charts[i], charts[j])
			if result.OverallScore < 0 || result.OverallScore > 100 {
				t.Errorf("score %d out of [0,100] for pair (%d,%d)", result.OverallScore, i, j)
			}
		}
	}
}

func TestStrengthAndChallengeCaps(t *testing.T) {
	// Stack both charts so every important-planet pair aspects exactly:
	// all five planets of each chart at the same longitude produces 25
	// conjunctions, 25 harmonious candidates and zero challenges.
	all := map[domain.Planet]float64{
		domain.PlanetSun:     10,
		domain.PlanetMoon:    10,
		domain.PlanetMercury: 10,
		domain.PlanetVenus:   10,
		domain.PlanetMars:    10,
	}
	result := testScorer().Calculate(chartWith(all), chartWith(all))

	if len(result.SynastryAspects) != 25 {
		t.Fatalf("expected 25 aspects, got %d", len(result.SynastryAspects))
	}

	// 5 aspect strengths plus sun/moon/venus insights (all same-element)
	if len(result.Strengths) != 8 {
		t.Errorf("strengths = %d entries, want 5 capped aspects + 3 insights: %v",
			len(result.Strengths), result.Strengths)
	}

	// All opposition layout: challenges capped at 3
	opposed := map[domain.Planet]float64{
		domain.PlanetSun:     190,
		domain.PlanetMoon:    190,
		domain.PlanetMercury: 190,
		domain.PlanetVenus:   190,
		domain.PlanetMars:    190,
	}
	result = testScorer().Calculate(chartWith(all), chartWith(opposed))
	if len(result.Challenges) != 3 {
		t.Errorf("challenges = %d entries, want cap of 3: %v", len(result.Challenges), result.Challenges)
	}
}

func TestDescribeAspectReversedKey(t *testing.T) {
	// Moon-Sun should find the Sun-Moon table through the reversed key
	desc := describeAspect(domain.PlanetMoon, domain.PlanetSun, "Trine", true)
	if desc != aspectDescriptions["Sun-Moon"]["Trine"] {
		t.Errorf("reversed lookup returned %q", desc)
	}

	// Unknown pair falls back by harmony
	if got := describeAspect(domain.PlanetMercury, domain.PlanetSaturn, "Square", false); got != fallbackChallenging {
		t.Errorf("fallback = %q, want %q", got, fallbackChallenging)
	}
}
