package astromath

import "math"

// NormalizeDegrees wraps an angle into the [0, 360) range.
// Handles negative inputs (Go's math.Mod keeps the sign of the dividend).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Separation returns the shortest-arc angular separation between two
// ecliptic longitudes, in the [0, 180] range.
func Separation(long1, long2 float64) float64 {
	sep := math.Abs(long1 - long2)
	if sep > 180 {
		sep = 360 - sep
	}
	return sep
}

// SignIndex returns the zodiac sign index (0-11) for an absolute ecliptic
// longitude in [0, 360). Each sign spans exactly 30 degrees.
func SignIndex(longitude float64) int {
	return int(longitude/30) % 12
}

// DegreeInSign returns the position within a sign, in [0, 30).
func DegreeInSign(longitude float64) float64 {
	return math.Mod(longitude, 30)
}

// GreenwichMeanSiderealTime returns GMST in degrees for the given number
// of days since J2000.0, normalized to [0, 360).
func GreenwichMeanSiderealTime(daysSinceJ2000 float64) float64 {
	return NormalizeDegrees(280.46061837 + 360.98564736629*daysSinceJ2000)
}

// LocalSiderealTime returns the local sidereal time in degrees for the
// given days since J2000.0 and the observer's geographic longitude
// (east positive), normalized to [0, 360).
func LocalSiderealTime(daysSinceJ2000, longitude float64) float64 {
	return NormalizeDegrees(GreenwichMeanSiderealTime(daysSinceJ2000) + longitude)
}
