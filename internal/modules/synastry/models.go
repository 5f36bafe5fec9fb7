package synastry

import "github.com/astralis/astro-server/internal/domain"

// Level is the coarse compatibility label
type Level string

const (
	LevelLow       Level = "Low"
	LevelMedium    Level = "Medium"
	LevelHigh      Level = "High"
	LevelExcellent Level = "Excellent"
)

// SynastryAspect is one cross-chart aspect between the two people.
// The aspect name is capitalized here ("Trine"), unlike natal chart
// aspect types; stored result payloads depend on both spellings.
type SynastryAspect struct {
	Person1Planet domain.Planet `json:"person1Planet"`
	Person2Planet domain.Planet `json:"person2Planet"`
	Aspect        string        `json:"aspect"`
	Angle         float64       `json:"angle"`
	IsHarmonious  bool          `json:"isHarmonious"`
	Description   string        `json:"description"`
}

// ElementBalance tallies the element of every planet's sign across both
// charts combined. For two full charts the four counts sum to 14.
type ElementBalance struct {
	Fire  int `json:"fire"`
	Earth int `json:"earth"`
	Air   int `json:"air"`
	Water int `json:"water"`
}

// SignCompatibility holds the four same-planet sign sub-scores
type SignCompatibility struct {
	SunSignMatch   int `json:"sunSignMatch"`
	MoonSignMatch  int `json:"moonSignMatch"`
	VenusSignMatch int `json:"venusSignMatch"`
	MarsSignMatch  int `json:"marsSignMatch"`
}

// CompatibilityResult is the full synastry report for two charts
type CompatibilityResult struct {
	OverallScore      int               `json:"overallScore"` // 0-100
	Compatibility     Level             `json:"compatibility"`
	Strengths         []string          `json:"strengths"`
	Challenges        []string          `json:"challenges"`
	SynastryAspects   []SynastryAspect  `json:"synastryAspects"`
	ElementBalance    ElementBalance    `json:"elementBalance"`
	SignCompatibility SignCompatibility `json:"signCompatibility"`
}
