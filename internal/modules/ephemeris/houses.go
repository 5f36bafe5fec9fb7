package ephemeris

import (
	"github.com/astralis/astro-server/internal/domain"
	"github.com/astralis/astro-server/pkg/astromath"
)

// CalculateHouses returns the twelve house cusps for the given Julian Date
// and observer coordinates. This is an equal-house approximation keyed off
// local sidereal time: the first cusp sits at the LST longitude and each
// subsequent house starts exactly 30 degrees later. The first cusp doubles
// as the Ascendant.
//
// Known limitation: latitude is accepted but does not enter the cusp
// formula. A true Placidus calculation would use it; this model does not,
// and stored charts depend on the equal-house output.
func CalculateHouses(jd, latitude, longitude float64) []domain.House {
	_ = latitude

	days := astromath.DaysSinceJ2000(jd)
	lst := astromath.LocalSiderealTime(days, longitude)

	houses := make([]domain.House, 0, 12)
	for i := 0; i < 12; i++ {
		cusp := astromath.NormalizeDegrees(lst + float64(i)*30)

		houses = append(houses, domain.House{
			Number: i + 1,
			Sign:   domain.ZodiacSigns[astromath.SignIndex(cusp)],
			Degree: astromath.DegreeInSign(cusp),
		})
	}

	return houses
}
