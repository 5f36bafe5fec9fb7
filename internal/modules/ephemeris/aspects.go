package ephemeris

import (
	"math"
	"sort"

	"github.com/astralis/astro-server/internal/domain"
	"github.com/astralis/astro-server/pkg/astromath"
)

// aspectWindow pairs an exact aspect angle with its orb tolerance
type aspectWindow struct {
	angle  float64
	kind   domain.AspectType
	maxOrb float64
}

// Classical aspect table. The windows do not overlap for adjacent angles,
// but the detection loop still checks every window per pair rather than
// assuming at most one match.
var aspectWindows = []aspectWindow{
	{angle: 0, kind: domain.AspectConjunction, maxOrb: 8},
	{angle: 60, kind: domain.AspectSextile, maxOrb: 6},
	{angle: 90, kind: domain.AspectSquare, maxOrb: 8},
	{angle: 120, kind: domain.AspectTrine, maxOrb: 8},
	{angle: 180, kind: domain.AspectOpposition, maxOrb: 8},
}

// CalculateAspects finds every classical aspect between the given planets.
// Each unordered pair is tested against all five windows; a pair registers
// a type when the shortest-arc separation deviates from the exact angle by
// no more than that type's orb. The result is sorted ascending by orb
// (tightest aspect first), with stable order for equal orbs so "top N"
// slices are deterministic.
func CalculateAspects(planets []domain.PlanetPosition) []domain.Aspect {
	aspects := []domain.Aspect{}

	for i := 0; i < len(planets); i++ {
		for j := i + 1; j < len(planets); j++ {
			sep := astromath.Separation(
				planets[i].AbsoluteLongitude(),
				planets[j].AbsoluteLongitude(),
			)

			for _, w := range aspectWindows {
				orb := math.Abs(sep - w.angle)
				if orb <= w.maxOrb {
					aspects = append(aspects, domain.Aspect{
						Planet1: planets[i].Name,
						Planet2: planets[j].Name,
						Type:    w.kind,
						Orb:     orb,
					})
				}
			}
		}
	}

	sort.SliceStable(aspects, func(a, b int) bool {
		return aspects[a].Orb < aspects[b].Orb
	})

	return aspects
}
