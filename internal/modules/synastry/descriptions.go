package synastry

import (
	"fmt"

	"github.com/astralis/astro-server/internal/domain"
)

// Fallback phrases when no planet-pair specific description exists
const (
	fallbackHarmonious  = "Harmonious energy flow"
	fallbackChallenging = "Growth through challenge"
)

// aspectDescriptions maps "{planet1}-{planet2}" keys to per-aspect
// narrative snippets. Looked up with the reversed key as well; anything
// not listed falls back to a generic phrase.
var aspectDescriptions = map[string]map[string]string{
	"Sun-Moon": {
		"Conjunction": "Strong emotional connection, you feel seen and understood",
		"Trine":       "Natural harmony between your identities and emotional needs",
		"Square":      "Different approaches to life can cause tension",
		"Opposition":  "Attraction of opposites, balancing act required",
	},
	"Venus-Mars": {
		"Conjunction": "Intense romantic and physical attraction",
		"Trine":       "Passionate connection flows naturally",
		"Square":      "Different love languages may clash",
		"Sextile":     "Playful romantic chemistry",
	},
	"Moon-Moon": {
		"Conjunction": "Deep emotional understanding",
		"Trine":       "Emotional support comes naturally",
		"Square":      "Different emotional needs",
	},
}

// Sign-compatibility insight strings, appended to strengths when the
// matching sub-score reaches the threshold. Checked in this order.
const (
	sunInsight   = "Your Sun signs are highly compatible - similar life approaches"
	moonInsight  = "Emotional compatibility is strong - you understand each other's needs"
	venusInsight = "Love languages align well - romantic harmony"
)

// describeAspect returns the narrative snippet for a planet pair and
// aspect, trying both key orders before falling back.
func describeAspect(planet1, planet2 domain.Planet, aspect string, harmonious bool) string {
	key := fmt.Sprintf("%s-%s", planet1, planet2)
	reverseKey := fmt.Sprintf("%s-%s", planet2, planet1)

	if byAspect, ok := aspectDescriptions[key]; ok {
		if desc, ok := byAspect[aspect]; ok {
			return desc
		}
	}
	if byAspect, ok := aspectDescriptions[reverseKey]; ok {
		if desc, ok := byAspect[aspect]; ok {
			return desc
		}
	}

	if harmonious {
		return fallbackHarmonious
	}
	return fallbackChallenging
}
