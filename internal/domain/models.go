package domain

import "time"

// Planet is a chart body name
type Planet string

const (
	PlanetSun     Planet = "Sun"
	PlanetMoon    Planet = "Moon"
	PlanetMercury Planet = "Mercury"
	PlanetVenus   Planet = "Venus"
	PlanetMars    Planet = "Mars"
	PlanetJupiter Planet = "Jupiter"
	PlanetSaturn  Planet = "Saturn"
)

// Planets lists every chart body in its fixed output order.
// Every natal chart carries exactly these seven, in this order.
var Planets = []Planet{
	PlanetSun,
	PlanetMoon,
	PlanetMercury,
	PlanetVenus,
	PlanetMars,
	PlanetJupiter,
	PlanetSaturn,
}

// ZodiacSigns lists the twelve signs in ecliptic order, 30 degrees each
// starting at 0 Aries.
var ZodiacSigns = []string{
	"Aries",
	"Taurus",
	"Gemini",
	"Cancer",
	"Leo",
	"Virgo",
	"Libra",
	"Scorpio",
	"Sagittarius",
	"Capricorn",
	"Aquarius",
	"Pisces",
}

// Element is one of the four classical elements
type Element string

const (
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementAir   Element = "air"
	ElementWater Element = "water"
)

// SignElements maps each zodiac sign to its element
var SignElements = map[string]Element{
	"Aries":       ElementFire,
	"Leo":         ElementFire,
	"Sagittarius": ElementFire,
	"Taurus":      ElementEarth,
	"Virgo":       ElementEarth,
	"Capricorn":   ElementEarth,
	"Gemini":      ElementAir,
	"Libra":       ElementAir,
	"Aquarius":    ElementAir,
	"Cancer":      ElementWater,
	"Scorpio":     ElementWater,
	"Pisces":      ElementWater,
}

// BirthData is the immutable input for a natal chart calculation.
// JSON field names match the chart payloads stored by the web layer.
type BirthData struct {
	Date      time.Time `json:"date"`
	Time      string    `json:"time"` // HH:MM, 24-hour
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timezone  string    `json:"timezone"` // IANA name, informational only
	Location  string    `json:"location"` // Free-text label
}

// PlanetPosition is one body's place in a chart. Sign plus degree encode an
// absolute ecliptic longitude: signIndex*30 + degree, in [0, 360).
type PlanetPosition struct {
	Name       Planet  `json:"name"`
	Sign       string  `json:"sign"`
	Degree     float64 `json:"degree"` // Within the sign, [0, 30)
	House      int     `json:"house"`  // 1-12
	Retrograde bool    `json:"retrograde"`
}

// AbsoluteLongitude reconstructs the position's ecliptic longitude in [0, 360).
func (p PlanetPosition) AbsoluteLongitude() float64 {
	return float64(SignIndexOf(p.Sign))*30 + p.Degree
}

// House is one of the twelve equal-house cusps
type House struct {
	Number int     `json:"number"` // 1-12
	Sign   string  `json:"sign"`
	Degree float64 `json:"degree"` // Cusp degree within the sign, [0, 30)
}

// AspectType is a classical aspect name (lowercase in natal charts)
type AspectType string

const (
	AspectConjunction AspectType = "conjunction"
	AspectSextile     AspectType = "sextile"
	AspectSquare      AspectType = "square"
	AspectTrine       AspectType = "trine"
	AspectOpposition  AspectType = "opposition"
)

// Aspect is a detected angular relationship between two chart bodies
type Aspect struct {
	Planet1 Planet     `json:"planet1"`
	Planet2 Planet     `json:"planet2"`
	Type    AspectType `json:"type"`
	Orb     float64    `json:"orb"` // Absolute deviation from the exact angle
}

// Ascendant mirrors the first house cusp
type Ascendant struct {
	Sign   string  `json:"sign"`
	Degree float64 `json:"degree"`
}

// ChartData is a complete computed natal chart. Produced once per birth
// record, never mutated, safe to serialize as-is.
type ChartData struct {
	Planets   []PlanetPosition `json:"planets"`
	Houses    []House          `json:"houses"`
	Ascendant Ascendant        `json:"ascendant"`
	Aspects   []Aspect         `json:"aspects"`
}

// FindPlanet returns the named planet's position, or nil when the chart
// lacks it. Synastry scoring degrades to neutral scores on nil.
func (c *ChartData) FindPlanet(name Planet) *PlanetPosition {
	for i := range c.Planets {
		if c.Planets[i].Name == name {
			return &c.Planets[i]
		}
	}
	return nil
}

// SignIndexOf returns a sign's position in the zodiac (0-11), or -1 for an
// unknown sign name.
func SignIndexOf(sign string) int {
	for i, s := range ZodiacSigns {
		if s == sign {
			return i
		}
	}
	return -1
}
