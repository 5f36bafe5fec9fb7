// Package numerology derives the seven Pythagorean numerology numbers
// from a birth date and full name. Fully independent of the astrology
// pipeline.
package numerology

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// letterValues maps A-Z to the Pythagorean digits, cycling 1-9:
// A/J/S=1, B/K/T=2, ... H/Q/Z=8, I/R=9.
var letterValues = [26]int{
	1, 2, 3, 4, 5, 6, 7, 8, 9, // A-I
	1, 2, 3, 4, 5, 6, 7, 8, 9, // J-R
	1, 2, 3, 4, 5, 6, 7, 8, // S-Z
}

// vowels used for the Soul Urge split. Y always counts as a consonant.
var vowels = map[rune]bool{'A': true, 'E': true, 'I': true, 'O': true, 'U': true}

// Profile holds the seven numerology numbers, each 1-9 or a master
// number (11, 22, 33). Derived purely from the inputs, never persisted.
type Profile struct {
	LifePathNumber     int `json:"lifePathNumber"`
	ExpressionNumber   int `json:"expressionNumber"`
	SoulUrgeNumber     int `json:"soulUrgeNumber"`
	PersonalityNumber  int `json:"personalityNumber"`
	BirthdayNumber     int `json:"birthdayNumber"`
	MaturityNumber     int `json:"maturityNumber"`
	PersonalYearNumber int `json:"personalYearNumber"`
}

// Calculator computes numerology profiles. The clock is injected so the
// Personal Year number (which depends on the current calendar year) is
// testable.
type Calculator struct {
	now func() time.Time
	log zerolog.Logger
}

// NewCalculator creates a calculator. A nil now function uses time.Now.
func NewCalculator(now func() time.Time, log zerolog.Logger) *Calculator {
	if now == nil {
		now = time.Now
	}
	return &Calculator{
		now: now,
		log: log.With().Str("service", "numerology").Logger(),
	}
}

// CalculateProfile assembles all seven numbers for a person. An empty or
// letter-free name degenerates to zero-valued name numbers rather than
// an error.
func (c *Calculator) CalculateProfile(birthDate time.Time, fullName string) Profile {
	lifePath := c.LifePathNumber(birthDate)
	expression := c.ExpressionNumber(fullName)

	profile := Profile{
		LifePathNumber:     lifePath,
		ExpressionNumber:   expression,
		SoulUrgeNumber:     c.SoulUrgeNumber(fullName),
		PersonalityNumber:  c.PersonalityNumber(fullName),
		BirthdayNumber:     ReduceToSingleDigit(birthDate.Day()),
		MaturityNumber:     ReduceToSingleDigit(lifePath + expression),
		PersonalYearNumber: c.PersonalYearNumber(birthDate),
	}

	c.log.Debug().
		Int("life_path", profile.LifePathNumber).
		Int("expression", profile.ExpressionNumber).
		Msg("Calculated numerology profile")

	return profile
}

// LifePathNumber reduces month, day and year separately before summing,
// then reduces the total. The per-component order matters: reducing the
// raw combined digits gives different results.
func (c *Calculator) LifePathNumber(birthDate time.Time) int {
	month := ReduceToSingleDigit(int(birthDate.Month()))
	day := ReduceToSingleDigit(birthDate.Day())
	year := ReduceToSingleDigit(birthDate.Year())

	return ReduceToSingleDigit(month + day + year)
}

// ExpressionNumber sums every letter of the name
func (c *Calculator) ExpressionNumber(fullName string) int {
	return ReduceToSingleDigit(nameSum(fullName, func(r rune) bool { return true }))
}

// SoulUrgeNumber sums only the vowels of the name
func (c *Calculator) SoulUrgeNumber(fullName string) int {
	return ReduceToSingleDigit(nameSum(fullName, func(r rune) bool { return vowels[r] }))
}

// PersonalityNumber sums only the consonants of the name
func (c *Calculator) PersonalityNumber(fullName string) int {
	return ReduceToSingleDigit(nameSum(fullName, func(r rune) bool { return !vowels[r] }))
}

// PersonalYearNumber combines the birth month and day with the current
// calendar year (not the birth year).
func (c *Calculator) PersonalYearNumber(birthDate time.Time) int {
	month := ReduceToSingleDigit(int(birthDate.Month()))
	day := ReduceToSingleDigit(birthDate.Day())
	year := ReduceToSingleDigit(c.now().Year())

	return ReduceToSingleDigit(month + day + year)
}

// ReduceToSingleDigit repeatedly sums decimal digits until a single
// digit remains, short-circuiting on the master numbers 11, 22 and 33.
// The master check runs at every step, so an intermediate sum of 11
// survives (29 -> 11, not 2).
func ReduceToSingleDigit(n int) int {
	for n > 9 {
		if n == 11 || n == 22 || n == 33 {
			return n
		}

		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}

// nameSum strips non-letters, uppercases, and sums the Pythagorean
// values of the letters the filter accepts.
func nameSum(fullName string, include func(rune) bool) int {
	sum := 0
	for _, r := range strings.ToUpper(fullName) {
		if r < 'A' || r > 'Z' {
			continue
		}
		if include(r) {
			sum += letterValues[r-'A']
		}
	}
	return sum
}
