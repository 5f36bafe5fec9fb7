package astromath

// J2000 is the Julian Date of the J2000.0 epoch (2000-01-01 12:00 TT),
// the reference point for all mean-motion calculations.
const J2000 = 2451545.0

// JulianDate converts a civil (Gregorian) calendar date and 24-hour wall
// clock time to a Julian Date.
//
// Standard Gregorian-to-JDN algorithm:
//
//	a = floor((14 - month) / 12)
//	y = year + 4800 - a
//	m = month + 12*a - 3
//	JDN = day + floor((153m + 2)/5) + 365y + floor(y/4) - floor(y/100) + floor(y/400) - 32045
//
// The time of day is folded in as a fractional day. The function is pure:
// the same inputs always produce the same Julian Date.
func JulianDate(year, month, day, hour, minute int) float64 {
	dayFraction := (float64(hour) + float64(minute)/60.0) / 24.0

	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045

	return float64(jdn) + dayFraction
}

// DaysSinceJ2000 returns the number of days (fractional) between the given
// Julian Date and the J2000.0 epoch. Negative for instants before the epoch.
func DaysSinceJ2000(jd float64) float64 {
	return jd - J2000
}
