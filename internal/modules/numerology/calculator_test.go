package numerology

import (
	"testing"
	"time"

	"github.com/astralis/astro-server/pkg/logger"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
}

func testCalculator() *Calculator {
	return NewCalculator(fixedNow, logger.New(logger.Config{Level: "error", Pretty: false}))
}

func TestReduceToSingleDigit(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"single digit passes through", 7, 7},
		{"zero passes through", 0, 0},
		{"simple reduction", 10, 1},
		{"master number returned directly", 22, 22},
		{"master number 11", 11, 11},
		{"master number 33", 33, 33},
		{"intermediate master preserved from 29", 29, 11},
		{"intermediate master preserved from 38", 38, 11},
		{"multi-step reduction", 1990, 1}, // 1990 -> 19 -> 10 -> 1
		{"large non-master", 999, 9},      // 999 -> 27 -> 9
		{"reduces into 22 midway", 499, 22}, // 499 -> 22, stays
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReduceToSingleDigit(tt.in); got != tt.want {
				t.Errorf("ReduceToSingleDigit(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestLifePathNumber(t *testing.T) {
	calc := testCalculator()

	// 1990-05-15: month 5, day 15 -> 6, year 1990 -> 19 -> 10 -> 1.
	// Components reduce before summing: 5 + 6 + 1 = 12 -> 3.
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	if got := calc.LifePathNumber(birth); got != 3 {
		t.Errorf("LifePathNumber(1990-05-15) = %d, want 3", got)
	}

	// 1988-11-29: month 11 stays master, day 29 -> 11, year 1988 -> 26 -> 8.
	// 11 + 11 + 8 = 30 -> 3.
	birth = time.Date(1988, 11, 29, 0, 0, 0, 0, time.UTC)
	if got := calc.LifePathNumber(birth); got != 3 {
		t.Errorf("LifePathNumber(1988-11-29) = %d, want 3", got)
	}
}

func TestNameNumbers(t *testing.T) {
	calc := testCalculator()

	// John Smith: letters sum 44 -> 8. Vowels O+I = 15 -> 6.
	// Consonants J+H+N+S+M+T+H = 29 -> 11 (master preserved).
	name := "John Smith"

	if got := calc.ExpressionNumber(name); got != 8 {
		t.Errorf("ExpressionNumber = %d, want 8", got)
	}
	if got := calc.SoulUrgeNumber(name); got != 6 {
		t.Errorf("SoulUrgeNumber = %d, want 6", got)
	}
	if got := calc.PersonalityNumber(name); got != 11 {
		t.Errorf("PersonalityNumber = %d, want 11", got)
	}
}

func TestNameNumbersIgnoreNonLetters(t *testing.T) {
	calc := testCalculator()

	plain := calc.ExpressionNumber("John Smith")

	if got := calc.ExpressionNumber("  john-SMITH!!!  "); got != plain {
		t.Errorf("punctuation changed the expression number: %d != %d", got, plain)
	}
}

func TestEmptyNameDegeneratesToZero(t *testing.T) {
	calc := testCalculator()

	for _, name := range []string{"", "123", "!!!", "   "} {
		if got := calc.ExpressionNumber(name); got != 0 {
			t.Errorf("ExpressionNumber(%q) = %d, want 0", name, got)
		}
		if got := calc.SoulUrgeNumber(name); got != 0 {
			t.Errorf("SoulUrgeNumber(%q) = %d, want 0", name, got)
		}
		if got := calc.PersonalityNumber(name); got != 0 {
			t.Errorf("PersonalityNumber(%q) = %d, want 0", name, got)
		}
	}
}

func TestPersonalYearUsesCurrentYear(t *testing.T) {
	calc := testCalculator()

	// Birth 1990-05-15 with the clock fixed to 2024: month 5, day 15 -> 6,
	// year 2024 -> 8. 5 + 6 + 8 = 19 -> 10 -> 1.
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	if got := calc.PersonalYearNumber(birth); got != 1 {
		t.Errorf("PersonalYearNumber = %d, want 1", got)
	}
}

func TestCalculateProfile(t *testing.T) {
	calc := testCalculator()
	birth := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)

	profile := calc.CalculateProfile(birth, "John Smith")

	want := Profile{
		LifePathNumber:     3,
		ExpressionNumber:   8,
		SoulUrgeNumber:     6,
		PersonalityNumber:  11,
		BirthdayNumber:     6,  // 15 -> 6
		MaturityNumber:     11, // 3 + 8 = 11, master preserved
		PersonalYearNumber: 1,
	}

	if profile != want {
		t.Errorf("CalculateProfile = %+v, want %+v", profile, want)
	}
}

func TestMeaningFor(t *testing.T) {
	if m := MeaningFor(11); m.Title != "The Master Intuitive" {
		t.Errorf("MeaningFor(11).Title = %q", m.Title)
	}
	// Out-of-table numbers fall back to 1
	if m := MeaningFor(0); m.Title != "The Leader" {
		t.Errorf("MeaningFor(0).Title = %q, want fallback to 1", m.Title)
	}
	if m := MeaningFor(42); m.Title != "The Leader" {
		t.Errorf("MeaningFor(42).Title = %q, want fallback to 1", m.Title)
	}
}
